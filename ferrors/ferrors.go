// Copyright 2026 The memvfs Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package ferrors defines the domain error taxonomy that crosses the
// filesystem's boundary unchanged: callers switch on Kind, never on string
// matching. Programming errors (bounds violations, invalid enums) are not
// part of this taxonomy; they panic instead, per the fail-fast contract.
package ferrors

import "fmt"

// Kind identifies a domain error category. Domain errors propagate to the
// caller verbatim; they are never translated into a different Kind as they
// climb the stack.
type Kind int

const (
	// Io is a generic I/O failure, e.g. operating on a closed stream.
	Io Kind = iota
	NoSuchFile
	FileAlreadyExists
	NotDirectory
	IsDirectory
	DirectoryNotEmpty
	NotSymbolicLink
	Loop
	AccessDenied
	InvalidPath
	OutOfSpace
	ClosedFileSystem
	ClosedWatchService
	UnsupportedOperation
	IllegalArgument
	InvalidName
)

func (k Kind) String() string {
	switch k {
	case Io:
		return "Io"
	case NoSuchFile:
		return "NoSuchFile"
	case FileAlreadyExists:
		return "FileAlreadyExists"
	case NotDirectory:
		return "NotDirectory"
	case IsDirectory:
		return "IsDirectory"
	case DirectoryNotEmpty:
		return "DirectoryNotEmpty"
	case NotSymbolicLink:
		return "NotSymbolicLink"
	case Loop:
		return "Loop"
	case AccessDenied:
		return "AccessDenied"
	case InvalidPath:
		return "InvalidPath"
	case OutOfSpace:
		return "OutOfSpace"
	case ClosedFileSystem:
		return "ClosedFileSystem"
	case ClosedWatchService:
		return "ClosedWatchService"
	case UnsupportedOperation:
		return "UnsupportedOperation"
	case IllegalArgument:
		return "IllegalArgument"
	case InvalidName:
		return "InvalidName"
	default:
		return "Unknown"
	}
}

// Error is the concrete domain error type. Op names the failing operation
// (e.g. "open", "link", "truncate"); Path is the path involved, if any.
type Error struct {
	Kind Kind
	Op   string
	Path string
	Msg  string
	Err  error // wrapped cause, if any
}

func (e *Error) Error() string {
	switch {
	case e.Path != "" && e.Msg != "":
		return fmt.Sprintf("%s %s: %s: %s", e.Op, e.Path, e.Kind, e.Msg)
	case e.Path != "":
		return fmt.Sprintf("%s %s: %s", e.Op, e.Path, e.Kind)
	case e.Msg != "":
		return fmt.Sprintf("%s: %s: %s", e.Op, e.Kind, e.Msg)
	default:
		return fmt.Sprintf("%s: %s", e.Op, e.Kind)
	}
}

func (e *Error) Unwrap() error { return e.Err }

// Is reports whether target is an *Error with the same Kind, so callers can
// write errors.Is(err, ferrors.New(ferrors.NoSuchFile, "", "", "")).
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Kind == t.Kind
}

// New constructs a domain error of the given Kind.
func New(kind Kind, op, path, msg string) *Error {
	return &Error{Kind: kind, Op: op, Path: path, Msg: msg}
}

// Wrap constructs a domain error of the given Kind that also carries err as
// its underlying cause (for logging/tracing; callers should still switch on
// Kind, not on the wrapped error).
func Wrap(kind Kind, op, path string, err error) *Error {
	return &Error{Kind: kind, Op: op, Path: path, Err: err}
}

// KindOf returns the Kind carried by err if it is (or wraps) an *Error, and
// false otherwise.
func KindOf(err error) (Kind, bool) {
	var fe *Error
	if err == nil {
		return 0, false
	}
	if e, ok := err.(*Error); ok {
		return e.Kind, true
	}
	if u, ok := err.(interface{ Unwrap() error }); ok {
		return KindOf(u.Unwrap())
	}
	_ = fe
	return 0, false
}

// Is reports whether err is a domain error of the given Kind.
func Is(err error, kind Kind) bool {
	k, ok := KindOf(err)
	return ok && k == kind
}
