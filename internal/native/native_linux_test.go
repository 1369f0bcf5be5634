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

package native

import (
	"encoding/hex"
	"testing"
)

var sha256Algorithm = Algorithm{CNG: "SHA256", Kernel: "sha256"}

func openOrSkip(t *testing.T, implementation string) *Provider {
	t.Helper()
	p, err := Open(sha256Algorithm, implementation)
	if err != nil {
		t.Skipf("AF_ALG sha256 unavailable: %v", err)
	}
	t.Cleanup(func() {
		if err := p.Close(); err != nil {
			t.Errorf("Close() error = %v", err)
		}
	})
	return p
}

func TestHashLifecycle(t *testing.T) {
	tests := []struct {
		name           string
		implementation string
		chunks         []string
		want           string
	}{
		{
			name: "empty",
			want: "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855",
		},
		{
			name:   "hello",
			chunks: []string{"hello"},
			want:   "2cf24dba5fb0a30e26e83b2ac5b9e29e1b161e5c1fa7425e73043362938b9824",
		},
		{
			name:   "hello in pieces",
			chunks: []string{"h", "", "ell", "o"},
			want:   "2cf24dba5fb0a30e26e83b2ac5b9e29e1b161e5c1fa7425e73043362938b9824",
		},
		{
			name:           "generic driver",
			implementation: "sha256-generic",
			chunks:         []string{"hello"},
			want:           "2cf24dba5fb0a30e26e83b2ac5b9e29e1b161e5c1fa7425e73043362938b9824",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := openOrSkip(t, tt.implementation)
			h, err := p.CreateHash()
			if err != nil {
				t.Fatalf("CreateHash() error = %v", err)
			}
			for _, c := range tt.chunks {
				if err := h.Write([]byte(c)); err != nil {
					t.Fatalf("Write() error = %v", err)
				}
			}
			out := make([]byte, 32)
			if err := h.Finish(out); err != nil {
				t.Fatalf("Finish() error = %v", err)
			}
			if got := hex.EncodeToString(out); got != tt.want {
				t.Errorf("digest = %s, want %s", got, tt.want)
			}
			if err := h.Destroy(); err != nil {
				t.Errorf("Destroy() error = %v", err)
			}
		})
	}
}

func TestFinishLengthMismatch(t *testing.T) {
	for _, size := range []int{20, 64} {
		p := openOrSkip(t, "")
		h, err := p.CreateHash()
		if err != nil {
			t.Fatalf("CreateHash() error = %v", err)
		}
		if err := h.Finish(make([]byte, size)); err == nil {
			t.Errorf("Finish() with %d byte buffer succeeded, want error", size)
		}
		if err := h.Destroy(); err != nil {
			t.Errorf("Destroy() error = %v", err)
		}
	}
}

func TestOpenUnknownAlgorithm(t *testing.T) {
	if _, err := Open(Algorithm{Kernel: "no-such-hash"}, ""); err == nil {
		t.Fatalf("Open() succeeded, want error")
	}
}
