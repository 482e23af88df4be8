// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package errors provides a set of error functions that are helpful
// for logging errors, aborting on internal-consistency violations,
// and otherwise act as drop-in replacements for the standard
// library errors package.
package errors

import (
	"errors"
	"fmt"
	"log/slog"
	"runtime"
	"strconv"
)

// ErrInternal is the base error of every [InternalError]. Callers that
// recover from a [Fatalf] panic can test for it with [Is].
var ErrInternal = errors.New("internal consistency violation")

// InternalError is the value passed to panic by [Fatalf].
type InternalError struct {
	// Msg is the formatted message given to [Fatalf].
	Msg string

	// Stack is the call stack at the point of failure, if [Debug] is on.
	Stack []runtime.Frame
}

func (e *InternalError) Error() string {
	return e.Msg
}

// Unwrap returns [ErrInternal].
func (e *InternalError) Unwrap() error {
	return ErrInternal
}

// Fatalf reports an internal-consistency violation: data or program
// state that makes it impossible to continue without silently producing
// wrong results. It logs the formatted message at the error level and
// then panics with an [*InternalError], aborting the calling goroutine.
func Fatalf(format string, a ...any) {
	e := &InternalError{Msg: fmt.Sprintf(format, a...)}
	if Debug {
		e.Stack = Stack()
		slog.Error(e.Msg, "stack", StackString(e.Stack))
	} else {
		slog.Error(e.Msg)
	}
	panic(e)
}

// StackString formats the given frames as file:line function lines.
func StackString(frames []runtime.Frame) string {
	s := ""
	for _, f := range frames {
		s += f.File + ":" + strconv.Itoa(f.Line) + " " + f.Function + "\n"
	}
	return s
}

// New is a wrapper around the standard library [errors.New].
func New(text string) error {
	return errors.New(text)
}

// Is is a wrapper around the standard library [errors.Is].
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As is a wrapper around the standard library [errors.As].
func As(err error, target any) bool {
	return errors.As(err, target)
}

// Unwrap is a wrapper around the standard library [errors.Unwrap].
func Unwrap(err error) error {
	return errors.Unwrap(err)
}

// Join is a wrapper around the standard library [errors.Join].
func Join(errs ...error) error {
	return errors.Join(errs...)
}
