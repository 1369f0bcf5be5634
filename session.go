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
	"runtime"

	"github.com/notaryproject/nativehash-go/log"
)

// handle is the part of a native hash context a Session drives.
// *native.Hash implements it.
type handle interface {
	Write(p []byte) error
	Finish(out []byte) error
	Destroy() error
}

// Session is one in-progress native hash computation producing an A.
//
// A Session is active from creation until Finish or Close, whichever comes
// first; the native context is released exactly once on that transition.
// Any Feed or Finish after it panics. Sessions are not safe for concurrent
// use.
//
// The usual pattern is
//
//	s, err := provider.NewSession()
//	if err != nil {
//		return err
//	}
//	defer s.Close()
//	s.Feed(data)
//	sum := s.Finish()
type Session[A Algorithm] struct {
	h       handle
	logger  log.Logger
	cleanup runtime.Cleanup
	done    bool
}

// abandoned is what the runtime cleanup needs to release a session that
// became unreachable while still active. It must not reference the Session.
type abandoned struct {
	h         handle
	logger    log.Logger
	algorithm string
}

func newSession[A Algorithm](h handle, logger log.Logger) *Session[A] {
	s := &Session[A]{h: h, logger: logger}
	s.cleanup = runtime.AddCleanup(s, releaseAbandoned, abandoned{
		h:         h,
		logger:    logger,
		algorithm: DescriptorOf[A]().Name,
	})
	return s
}

func releaseAbandoned(a abandoned) {
	a.logger.Debugf("releasing unreachable %s hash session", a.algorithm)
	if err := a.h.Destroy(); err != nil {
		a.logger.Warnf("failed to release %s hash session: %v", a.algorithm, err)
	}
}

// Feed appends data to the computation. It may be called any number of
// times, including zero, before Finish.
//
// Feed panics with *InvariantViolationError if the session is terminated or
// the native call fails. The native failure modes are documented as an
// invalid handle or invalid flags (CNG), or a closed operation socket
// (AF_ALG); the handle is open while the session is active and no flags are
// ever passed. Treating a failure as fatal relies on that documented
// contract rather than on anything this package can check.
func (s *Session[A]) Feed(data []byte) {
	s.mustBeActive("feed")
	if err := s.h.Write(data); err != nil {
		panic(s.violation("feed", err))
	}
	// the runtime cleanup must not release the handle while Write runs
	runtime.KeepAlive(s)
}

// Write implements io.Writer on top of Feed. It never returns an error.
func (s *Session[A]) Write(p []byte) (int, error) {
	s.Feed(p)
	return len(p), nil
}

// Finish computes the digest, releases the native context and terminates
// the session. With no prior Feed it returns the digest of the empty input.
//
// The native layer writes straight into the returned value, whose length is
// fixed by A. CNG rejects a buffer of any other length, and AF_ALG reports a
// short or truncated digest, so a failure here means A was declared with the
// wrong length or the handle was invalid; Finish panics with
// *InvariantViolationError in both cases, after releasing the context.
func (s *Session[A]) Finish() A {
	s.mustBeActive("finish")
	var out A
	err := s.h.Finish(digestBytes(&out))
	s.terminate()
	if err != nil {
		panic(s.violation("finish", err))
	}
	return out
}

// Close abandons the session, releasing the native context without
// producing a digest. It is a no-op once the session has terminated, so it
// is safe to defer alongside Finish. A failed release cannot be acted on and
// is only logged.
func (s *Session[A]) Close() {
	if s.done {
		return
	}
	s.terminate()
}

func (s *Session[A]) terminate() {
	s.done = true
	s.cleanup.Stop()
	if err := s.h.Destroy(); err != nil {
		s.logger.Warnf("failed to release %s hash session: %v", DescriptorOf[A]().Name, err)
	}
	s.h = nil
}

func (s *Session[A]) mustBeActive(op string) {
	if s.done {
		panic(s.violation(op, ErrSessionTerminated))
	}
}

func (s *Session[A]) violation(op string, err error) *InvariantViolationError {
	return &InvariantViolationError{
		Op:        op,
		Algorithm: DescriptorOf[A]().Name,
		Err:       err,
	}
}
