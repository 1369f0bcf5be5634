// Copyright The Notary Project Authors.
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package nativehash_test

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/notaryproject/nativehash-go"
)

func Example() {
	provider, err := nativehash.Open[nativehash.SHA256](context.Background(), nativehash.ProviderOptions{})
	if err != nil {
		panic(err) // Handle error
	}
	defer provider.Close()

	session, err := provider.NewSession()
	if err != nil {
		panic(err) // Handle error
	}
	defer session.Close()

	session.Feed([]byte("hel"))
	session.Feed([]byte("lo"))

	// sum is a [32]byte; no other length can come out of a SHA256 session
	sum := session.Finish()
	fmt.Println(nativehash.Hex(sum))
}

func ExampleSession_Write() {
	provider, err := nativehash.Open[nativehash.SHA512](context.Background(), nativehash.ProviderOptions{})
	if err != nil {
		panic(err) // Handle error
	}
	defer provider.Close()

	f, err := os.Open("go.mod")
	if err != nil {
		panic(err) // Handle error
	}
	defer f.Close()

	session, err := provider.NewSession()
	if err != nil {
		panic(err) // Handle error
	}
	defer session.Close()

	if _, err := io.Copy(session, f); err != nil {
		panic(err) // Handle error
	}
	fmt.Println(nativehash.OCIDigest(session.Finish()))
}
