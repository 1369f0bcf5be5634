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

// Package log lets callers observe the native hashing layer.
// Implement Logger and attach it with WithLogger to the context passed to
// nativehash.Open; sessions created by that provider log through it as well.
// github.com/sirupsen/logrus.Logger and the zap SugaredLogger satisfy Logger.
package log

import "context"

type contextKey int

// loggerKey is the associated key type for logger entry in context.
const loggerKey contextKey = iota

// Discard logs nothing. It is returned by GetLogger when the context carries
// no Logger.
var Discard Logger = discardLogger{}

// Logger is the subset of leveled logging used by nativehash.
type Logger interface {
	// Debugf logs a debug level message with format.
	Debugf(format string, args ...interface{})

	// Warnf logs a warn level message with format.
	Warnf(format string, args ...interface{})
}

// WithLogger returns a copy of ctx carrying logger.
func WithLogger(ctx context.Context, logger Logger) context.Context {
	return context.WithValue(ctx, loggerKey, logger)
}

// GetLogger returns the Logger in ctx, or Discard.
func GetLogger(ctx context.Context) Logger {
	if logger, ok := ctx.Value(loggerKey).(Logger); ok && logger != nil {
		return logger
	}
	return Discard
}

type discardLogger struct{}

func (discardLogger) Debugf(format string, args ...interface{}) {}
func (discardLogger) Warnf(format string, args ...interface{})  {}
