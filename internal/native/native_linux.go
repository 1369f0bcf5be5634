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

//go:build linux

package native

import (
	"fmt"
	"os"

	"golang.org/x/sys/unix"
)

// Provider is an AF_ALG socket bound to one hash algorithm.
type Provider struct {
	fd int
}

// Hash is an operation socket accepted from a Provider. Each one carries an
// independent hash state in the kernel.
type Hash struct {
	fd int
}

// Open binds an AF_ALG socket to alg. A non-empty implementation names a
// specific kernel driver, e.g. "sha256-generic", instead of alg.Kernel.
func Open(alg Algorithm, implementation string) (*Provider, error) {
	name := alg.Kernel
	if implementation != "" {
		name = implementation
	}
	fd, err := unix.Socket(unix.AF_ALG, unix.SOCK_SEQPACKET|unix.SOCK_CLOEXEC, 0)
	if err != nil {
		return nil, os.NewSyscallError("socket", err)
	}
	if err := unix.Bind(fd, &unix.SockaddrALG{Type: "hash", Name: name}); err != nil {
		unix.Close(fd)
		return nil, os.NewSyscallError("bind", err)
	}
	return &Provider{fd: fd}, nil
}

// CreateHash accepts a new operation socket. unix.Accept cannot be used: it
// tries to decode the peer address, which AF_ALG does not provide.
func (p *Provider) CreateHash() (*Hash, error) {
	for {
		fd, _, errno := unix.Syscall6(unix.SYS_ACCEPT4, uintptr(p.fd), 0, 0, unix.SOCK_CLOEXEC, 0, 0)
		switch errno {
		case 0:
			return &Hash{fd: int(fd)}, nil
		case unix.EINTR:
			continue
		default:
			return nil, os.NewSyscallError("accept4", errno)
		}
	}
}

// Close closes the bound socket. Operation sockets already accepted stay
// usable.
func (p *Provider) Close() error {
	return os.NewSyscallError("close", unix.Close(p.fd))
}

// Write hashes p. MSG_MORE keeps the kernel from finalizing between writes.
func (h *Hash) Write(p []byte) error {
	for len(p) > 0 {
		n, err := unix.SendmsgN(h.fd, p, nil, nil, unix.MSG_MORE)
		if err == unix.EINTR {
			continue
		}
		if err != nil {
			return os.NewSyscallError("sendmsg", err)
		}
		p = p[n:]
	}
	return nil
}

// Finish reads the digest into out. The kernel truncates silently when out
// is shorter than the digest and returns fewer bytes when it is longer; both
// are reported as errors.
func (h *Hash) Finish(out []byte) error {
	for {
		n, _, flags, _, err := unix.Recvmsg(h.fd, out, nil, 0)
		if err == unix.EINTR {
			continue
		}
		if err != nil {
			return os.NewSyscallError("recvmsg", err)
		}
		if flags&unix.MSG_TRUNC != 0 {
			return fmt.Errorf("digest is longer than the %d byte output buffer", len(out))
		}
		if n != len(out) {
			return fmt.Errorf("digest is %d bytes, output buffer is %d bytes", n, len(out))
		}
		return nil
	}
}

// Destroy closes the operation socket.
func (h *Hash) Destroy() error {
	return os.NewSyscallError("close", unix.Close(h.fd))
}
