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

// Package nativehash hashes data through the operating system's native
// hashing service while keeping the digest length a property of the type.
//
// Each supported algorithm is a byte array type, e.g. SHA256 is [32]byte.
// A Session[SHA256] can therefore only ever produce a SHA256 value, and the
// output buffer handed to the native layer is that value itself.
package nativehash

import (
	"unsafe"

	"github.com/notaryproject/nativehash-go/internal/native"
	"github.com/opencontainers/go-digest"
)

// Digest lengths in bytes.
const (
	MD5Size      = 16
	SHA1Size     = 20
	SHA256Size   = 32
	SHA384Size   = 48
	SHA512Size   = 64
	SHA3_256Size = 32
	SHA3_512Size = 64
)

// Algorithm is satisfied by the digest types below. The array length of the
// type is the digest length; Descriptor returns the remaining static
// metadata and must not depend on the receiver's contents.
//
// A new algorithm is added by declaring a byte array type of the right length
// with a Descriptor method. The native services do not report their output
// length, so a wrong declaration is only caught by known-answer tests.
type Algorithm interface {
	~[16]byte | ~[20]byte | ~[32]byte | ~[48]byte | ~[64]byte
	Descriptor() Descriptor
}

// Descriptor identifies a hash algorithm.
type Descriptor struct {
	// Name is the lowercase algorithm name, e.g. "sha256".
	Name string

	// Native names the algorithm in the CNG and kernel crypto services.
	Native native.Algorithm

	// OCI is the algorithm identifier used in OCI digest strings.
	OCI digest.Algorithm
}

type (
	// MD5 is an MD5 digest.
	MD5 [MD5Size]byte

	// SHA1 is a SHA-1 digest.
	SHA1 [SHA1Size]byte

	// SHA256 is a SHA-256 digest.
	SHA256 [SHA256Size]byte

	// SHA384 is a SHA-384 digest.
	SHA384 [SHA384Size]byte

	// SHA512 is a SHA-512 digest.
	SHA512 [SHA512Size]byte

	// SHA3_256 is a SHA3-256 digest. CNG supports it from Windows 11.
	SHA3_256 [SHA3_256Size]byte

	// SHA3_512 is a SHA3-512 digest. CNG supports it from Windows 11.
	SHA3_512 [SHA3_512Size]byte
)

func (MD5) Descriptor() Descriptor {
	return Descriptor{Name: "md5", Native: native.Algorithm{CNG: "MD5", Kernel: "md5"}, OCI: "md5"}
}

func (SHA1) Descriptor() Descriptor {
	return Descriptor{Name: "sha1", Native: native.Algorithm{CNG: "SHA1", Kernel: "sha1"}, OCI: "sha1"}
}

func (SHA256) Descriptor() Descriptor {
	return Descriptor{Name: "sha256", Native: native.Algorithm{CNG: "SHA256", Kernel: "sha256"}, OCI: digest.SHA256}
}

func (SHA384) Descriptor() Descriptor {
	return Descriptor{Name: "sha384", Native: native.Algorithm{CNG: "SHA384", Kernel: "sha384"}, OCI: digest.SHA384}
}

func (SHA512) Descriptor() Descriptor {
	return Descriptor{Name: "sha512", Native: native.Algorithm{CNG: "SHA512", Kernel: "sha512"}, OCI: digest.SHA512}
}

func (SHA3_256) Descriptor() Descriptor {
	return Descriptor{Name: "sha3-256", Native: native.Algorithm{CNG: "SHA3-256", Kernel: "sha3-256"}, OCI: "sha3-256"}
}

func (SHA3_512) Descriptor() Descriptor {
	return Descriptor{Name: "sha3-512", Native: native.Algorithm{CNG: "SHA3-512", Kernel: "sha3-512"}, OCI: "sha3-512"}
}

// DigestLength returns the digest length of A in bytes.
func DigestLength[A Algorithm]() int {
	var d A
	return len(d)
}

// DescriptorOf returns the Descriptor of A.
func DescriptorOf[A Algorithm]() Descriptor {
	var d A
	return d.Descriptor()
}

// Hex returns d as lowercase hex.
func Hex[A Algorithm](d A) string {
	return OCIDigest(d).Encoded()
}

// OCIDigest returns d in OCI "<algorithm>:<hex>" form. Only the SHA-2
// algorithms registered by go-digest pass digest.Digest.Validate.
func OCIDigest[A Algorithm](d A) digest.Digest {
	return digest.NewDigestFromBytes(d.Descriptor().OCI, digestBytes(&d))
}

// digestBytes views d as a slice over its own storage. Every type in the
// Algorithm type set is a byte array, so the view is exactly len(*d) bytes.
func digestBytes[A Algorithm](d *A) []byte {
	return unsafe.Slice((*byte)(unsafe.Pointer(d)), len(*d))
}
