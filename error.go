// Copyright 2021-2022 Buf Technologies, Inc.
// Copyright 2025 The Thaumaturgia Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package thaum

import (
	"errors"
	"fmt"
)

// An Error captures a Code and an underlying Go error. Every failure reported
// by this module's codecs, fields, and registries can be cast to an *Error
// (using the standard library's errors.As), even after callers wrap it with
// additional context.
type Error struct {
	code Code
	err  error
}

// NewError annotates any Go error with a code.
func NewError(c Code, underlying error) *Error {
	return &Error{code: c, err: underlying}
}

// Errorf calls fmt.Errorf with the supplied template and arguments, then
// wraps the resulting error with the code. It's exported so that packages
// built on thaum report failures the same way.
func Errorf(c Code, template string, args ...any) *Error {
	return NewError(c, fmt.Errorf(template, args...))
}

func (e *Error) Error() string {
	if e.err == nil {
		return e.code.String()
	}
	text := e.err.Error()
	if text == "" {
		return e.code.String()
	}
	return e.code.String() + ": " + text
}

// Unwrap allows errors.Is and errors.As access to the underlying error.
func (e *Error) Unwrap() error {
	return e.err
}

// Code returns the error's code.
func (e *Error) Code() Code {
	return e.code
}

// CodeOf returns the error's code if it is or wraps an *Error and CodeUnknown
// otherwise.
func CodeOf(err error) Code {
	if thaumErr, ok := asError(err); ok {
		return thaumErr.Code()
	}
	return CodeUnknown
}

// IsCode reports whether err carries the given code.
func IsCode(err error, c Code) bool {
	return err != nil && CodeOf(err) == c
}

// errorf is the package-internal shorthand for Errorf.
func errorf(c Code, template string, args ...any) *Error {
	return Errorf(c, template, args...)
}

// asError uses errors.As to unwrap any error and look for a thaum *Error.
func asError(err error) (*Error, bool) {
	var te *Error
	ok := errors.As(err, &te)
	return te, ok
}

// wrapIfUncoded leaves coded errors unchanged and wraps anything else with
// the fallback code.
func wrapIfUncoded(err error, fallback Code) error {
	if err == nil {
		return nil
	}
	if _, ok := asError(err); ok {
		return err
	}
	return NewError(fallback, err)
}
