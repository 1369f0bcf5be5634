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
	"context"

	"github.com/notaryproject/nativehash-go/internal/native"
	"github.com/notaryproject/nativehash-go/log"
)

// ProviderOptions contains parameters for Open.
type ProviderOptions struct {
	// Implementation optionally selects a specific native implementation:
	// a CNG provider name such as "Microsoft Primitive Provider" on Windows,
	// or a kernel driver name such as "sha256-generic" on Linux. Empty
	// selects the system default.
	Implementation string
}

// Provider is an open native algorithm provider for A. It creates Sessions
// and must be closed after every Session it created has terminated.
type Provider[A Algorithm] struct {
	p      *native.Provider
	logger log.Logger
}

// Open opens the native provider for algorithm A. The Logger carried by ctx,
// if any, is used by the Provider and its Sessions.
func Open[A Algorithm](ctx context.Context, opts ProviderOptions) (*Provider[A], error) {
	logger := log.GetLogger(ctx)
	desc := DescriptorOf[A]()
	p, err := native.Open(desc.Native, opts.Implementation)
	if err != nil {
		return nil, &OpenAlgorithmFailedError{Algorithm: desc.Name, Err: err}
	}
	if opts.Implementation != "" {
		logger.Debugf("opened native %s provider %q", desc.Name, opts.Implementation)
	} else {
		logger.Debugf("opened native %s provider", desc.Name)
	}
	return &Provider[A]{p: p, logger: logger}, nil
}

// Algorithm returns the Descriptor of A.
func (p *Provider[A]) Algorithm() Descriptor {
	return DescriptorOf[A]()
}

// NewSession starts a new hash computation.
func (p *Provider[A]) NewSession() (*Session[A], error) {
	if p.p == nil {
		return nil, ErrProviderClosed
	}
	h, err := p.p.CreateHash()
	if err != nil {
		return nil, &CreateHashFailedError{Algorithm: DescriptorOf[A]().Name, Err: err}
	}
	return newSession[A](h, p.logger), nil
}

// Close closes the provider. Subsequent calls are no-ops.
func (p *Provider[A]) Close() error {
	if p.p == nil {
		return nil
	}
	err := p.p.Close()
	p.p = nil
	p.logger.Debugf("closed native %s provider", DescriptorOf[A]().Name)
	return err
}
