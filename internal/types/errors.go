//
// pcsolver - four-wide perfect-clear reachability and search engine
//
// MIT License
//
// Copyright (c) 2026 pcsolver contributors
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.
//

package types

import "fmt"

// IOError wraps a failure to read or write a data file. It is always
// surfaced to the caller, never retried.
type IOError struct {
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("io error on %s: %v", e.Path, e.Err)
}

func (e *IOError) Unwrap() error { return e.Err }

// ParseError wraps a malformed pieces, kicks, or PC-catalog file. Line is
// 1-based and zero when not applicable (e.g. a count mismatch spanning the
// whole file).
type ParseError struct {
	Path string
	Line int
	Msg  string
}

func (e *ParseError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("parse error in %s line %d: %s", e.Path, e.Line, e.Msg)
	}
	return fmt.Sprintf("parse error in %s: %s", e.Path, e.Msg)
}

// DomainError wraps an invalid request: a queue character outside the
// seven-shape alphabet, or a height bound too large for the Hash width.
type DomainError struct {
	Reason string
	Detail string
}

func (e *DomainError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("%s: %q", e.Reason, e.Detail)
	}
	return e.Reason
}

// NoResult is not an error. It documents the convention that NextBoards
// and PrevBoards return (nil, nil) when a shape has no legal placement or
// no prior board exists - callers must treat a nil, nil return as the
// normal empty-set signal, never as failure.
var NoResult error
