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

package nativehash

import (
	"strings"
	"testing"
)

func TestHex(t *testing.T) {
	tests := []struct {
		name string
		got  string
		want string
	}{
		{
			name: "md5 zero",
			got:  Hex(MD5{}),
			want: strings.Repeat("00", MD5Size),
		},
		{
			name: "sha1 leading and trailing bytes",
			got:  Hex(SHA1{0x01, 19: 0xfe}),
			want: "01" + strings.Repeat("00", 18) + "fe",
		},
		{
			name: "sha512 full width",
			got:  Hex(SHA512{63: 0xab}),
			want: strings.Repeat("00", 63) + "ab",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("Hex() = %s, want %s", tt.got, tt.want)
			}
		})
	}
}

func TestDigestLength(t *testing.T) {
	tests := []struct {
		name string
		got  int
		want int
	}{
		{name: "md5", got: DigestLength[MD5](), want: 16},
		{name: "sha1", got: DigestLength[SHA1](), want: 20},
		{name: "sha256", got: DigestLength[SHA256](), want: 32},
		{name: "sha384", got: DigestLength[SHA384](), want: 48},
		{name: "sha512", got: DigestLength[SHA512](), want: 64},
		{name: "sha3-256", got: DigestLength[SHA3_256](), want: 32},
		{name: "sha3-512", got: DigestLength[SHA3_512](), want: 64},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("DigestLength() = %d, want %d", tt.got, tt.want)
			}
		})
	}
}
