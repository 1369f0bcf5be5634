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

//go:build windows

package native

import (
	"fmt"
	"math"
	"unsafe"

	"golang.org/x/sys/windows"
)

// maxChunk bounds a single BCryptHashData call on every GOARCH.
const maxChunk = math.MaxInt32

var (
	modbcrypt = windows.NewLazySystemDLL("bcrypt.dll")

	procBCryptOpenAlgorithmProvider  = modbcrypt.NewProc("BCryptOpenAlgorithmProvider")
	procBCryptCloseAlgorithmProvider = modbcrypt.NewProc("BCryptCloseAlgorithmProvider")
	procBCryptCreateHash             = modbcrypt.NewProc("BCryptCreateHash")
	procBCryptHashData               = modbcrypt.NewProc("BCryptHashData")
	procBCryptFinishHash             = modbcrypt.NewProc("BCryptFinishHash")
	procBCryptDestroyHash            = modbcrypt.NewProc("BCryptDestroyHash")
)

// Provider is an open BCRYPT_ALG_HANDLE.
type Provider struct {
	handle uintptr
}

// Hash is an open BCRYPT_HASH_HANDLE. The hash object buffer is allocated
// by CNG.
type Hash struct {
	handle uintptr
}

// call invokes a bcrypt procedure and converts a non-zero NTSTATUS into an
// error. Callers pass pointers converted to uintptr in the argument list;
// uintptrescapes keeps their targets on the heap, since proc.Find may grow
// the stack before the native call writes through them.
//
//go:uintptrescapes
func call(proc *windows.LazyProc, args ...uintptr) error {
	if err := proc.Find(); err != nil {
		return err
	}
	r, _, _ := proc.Call(args...)
	if r != 0 {
		return fmt.Errorf("%s: %w", proc.Name, windows.NTStatus(uint32(r)))
	}
	return nil
}

// Open opens a CNG algorithm provider for alg. A non-empty implementation
// selects a specific CNG provider, e.g. "Microsoft Primitive Provider".
func Open(alg Algorithm, implementation string) (*Provider, error) {
	id, err := windows.UTF16PtrFromString(alg.CNG)
	if err != nil {
		return nil, err
	}
	var impl *uint16
	if implementation != "" {
		if impl, err = windows.UTF16PtrFromString(implementation); err != nil {
			return nil, err
		}
	}
	var handle uintptr
	if err := call(procBCryptOpenAlgorithmProvider,
		uintptr(unsafe.Pointer(&handle)),
		uintptr(unsafe.Pointer(id)),
		uintptr(unsafe.Pointer(impl)),
		0,
	); err != nil {
		return nil, err
	}
	return &Provider{handle: handle}, nil
}

// CreateHash creates a hash object with no secret and no flags.
func (p *Provider) CreateHash() (*Hash, error) {
	var handle uintptr
	if err := call(procBCryptCreateHash,
		p.handle,
		uintptr(unsafe.Pointer(&handle)),
		0, 0, // pbHashObject, cbHashObject
		0, 0, // pbSecret, cbSecret
		0,
	); err != nil {
		return nil, err
	}
	return &Hash{handle: handle}, nil
}

// Close closes the algorithm provider.
func (p *Provider) Close() error {
	return call(procBCryptCloseAlgorithmProvider, p.handle, 0)
}

// Write hashes p. BCryptHashData takes a ULONG length, so larger inputs are
// split.
func (h *Hash) Write(p []byte) error {
	for len(p) > 0 {
		n := len(p)
		if n > maxChunk {
			n = maxChunk
		}
		if err := call(procBCryptHashData,
			h.handle,
			uintptr(unsafe.Pointer(&p[0])),
			uintptr(n),
			0,
		); err != nil {
			return err
		}
		p = p[n:]
	}
	return nil
}

// Finish writes the digest into out. CNG fails with STATUS_INVALID_PARAMETER
// unless len(out) is exactly the digest length.
func (h *Hash) Finish(out []byte) error {
	if len(out) == 0 {
		return fmt.Errorf("BCryptFinishHash: %w", windows.STATUS_INVALID_PARAMETER)
	}
	return call(procBCryptFinishHash,
		h.handle,
		uintptr(unsafe.Pointer(&out[0])),
		uintptr(len(out)),
		0,
	)
}

// Destroy destroys the hash object.
func (h *Hash) Destroy() error {
	return call(procBCryptDestroyHash, h.handle)
}
