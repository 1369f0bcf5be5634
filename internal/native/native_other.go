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

//go:build !linux && !windows

package native

// Provider is never constructed on this platform.
type Provider struct{}

// Hash is never constructed on this platform.
type Hash struct{}

// Open always fails with ErrUnsupportedPlatform.
func Open(alg Algorithm, implementation string) (*Provider, error) {
	return nil, ErrUnsupportedPlatform
}

func (p *Provider) CreateHash() (*Hash, error) { return nil, ErrUnsupportedPlatform }

func (p *Provider) Close() error { return ErrUnsupportedPlatform }

func (h *Hash) Write(p []byte) error { return ErrUnsupportedPlatform }

func (h *Hash) Finish(out []byte) error { return ErrUnsupportedPlatform }

func (h *Hash) Destroy() error { return ErrUnsupportedPlatform }
