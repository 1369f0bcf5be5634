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
	"errors"
	"fmt"

	"github.com/notaryproject/nativehash-go/internal/native"
)

// ErrUnsupportedPlatform is wrapped by the OpenAlgorithmFailedError returned
// on platforms without a native hashing service.
var ErrUnsupportedPlatform = native.ErrUnsupportedPlatform

// ErrSessionTerminated is wrapped by the InvariantViolationError raised when
// a Session is used after Finish or Close.
var ErrSessionTerminated = errors.New("hash session already terminated")

// ErrProviderClosed is returned by NewSession after the Provider is closed.
var ErrProviderClosed = errors.New("algorithm provider is closed")

// OpenAlgorithmFailedError is used when the native hashing service cannot
// open a provider for the requested algorithm, e.g. the algorithm is not
// available or the platform has no native service.
type OpenAlgorithmFailedError struct {
	Algorithm string
	Err       error
}

func (e *OpenAlgorithmFailedError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("failed to open native %s provider: %v", e.Algorithm, e.Err)
	}
	return fmt.Sprintf("failed to open native %s provider", e.Algorithm)
}

func (e *OpenAlgorithmFailedError) Unwrap() error {
	return e.Err
}

// CreateHashFailedError is used when the native hashing service cannot
// create a hash context, e.g. it ran out of handles.
type CreateHashFailedError struct {
	Algorithm string
	Err       error
}

func (e *CreateHashFailedError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("failed to create native %s hash: %v", e.Algorithm, e.Err)
	}
	return fmt.Sprintf("failed to create native %s hash", e.Algorithm)
}

func (e *CreateHashFailedError) Unwrap() error {
	return e.Err
}

// InvariantViolationError is the panic value raised by Session when an
// operation fails that the Session's own invariants rule out. It is never
// returned as an error: a digest computed past such a failure would not
// represent the input.
type InvariantViolationError struct {
	// Op is the Session operation, "feed" or "finish".
	Op string

	// Algorithm is the bound algorithm name.
	Algorithm string

	// Err is the native failure, or ErrSessionTerminated.
	Err error
}

func (e *InvariantViolationError) Error() string {
	return fmt.Sprintf("nativehash: %s %s: invariant violated: %v", e.Algorithm, e.Op, e.Err)
}

func (e *InvariantViolationError) Unwrap() error {
	return e.Err
}
