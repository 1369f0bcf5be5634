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

// Package native holds the handle-based primitives of the operating system's
// hashing service: CNG (bcrypt.dll) on Windows and the kernel crypto API
// (AF_ALG) on Linux.
//
// Nothing in this package tracks handle validity. Callers own every Provider
// and Hash they create and must release each exactly once.
package native

import "errors"

// ErrUnsupportedPlatform is returned by Open on platforms without a native
// hashing backend.
var ErrUnsupportedPlatform = errors.New("native hashing service is not available on this platform")

// Algorithm names one hash algorithm in each native service.
type Algorithm struct {
	// CNG is the CNG algorithm identifier, e.g. "SHA256".
	CNG string

	// Kernel is the Linux crypto API algorithm name, e.g. "sha256".
	Kernel string
}
