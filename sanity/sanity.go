// Copyright 2023 Tao Wang <wangtaoking1@qq.com>. All rights reserved.
// Use of this source code is governed by a MIT style
// license that can be found in the LICENSE file.

// Package sanity implements contract checks. A failed check is a bug in the
// calling code: it is logged and then turned into a panic carrying a
// *Violation, and it is never returned as an ordinary error.
package sanity

import (
	"fmt"

	"github.com/wangtaoking1/cli-base/errors"
	"github.com/wangtaoking1/cli-base/log"
)

// Kind identifies the sort of contract that was broken.
type Kind string

const (
	Precondition    Kind = "Precondition"
	Invariant       Kind = "Invariant"
	Postcondition   Kind = "Postcondition"
	UnreachableCode Kind = "Unreachable"
)

// Violation is the panic value raised by a failed check.
type Violation struct {
	Kind    Kind
	Message string
}

func (v *Violation) Error() string {
	if v.Kind == UnreachableCode {
		return fmt.Sprintf("Reached unreachable code: %s", v.Message)
	}

	return fmt.Sprintf("%s check failed: %s", v.Kind, v.Message)
}

// Pre checks a precondition of the calling function.
func Pre(cond bool, format string, args ...interface{}) {
	if !cond {
		fail(Precondition, format, args...)
	}
}

// Inv checks an invariant.
func Inv(cond bool, format string, args ...interface{}) {
	if !cond {
		fail(Invariant, format, args...)
	}
}

// Post checks a postcondition of the calling function.
func Post(cond bool, format string, args ...interface{}) {
	if !cond {
		fail(Postcondition, format, args...)
	}
}

// Unreachable marks a code path that must never be executed.
func Unreachable(format string, args ...interface{}) {
	fail(UnreachableCode, format, args...)
}

func fail(kind Kind, format string, args ...interface{}) {
	v := &Violation{Kind: kind, Message: fmt.Sprintf(format, args...)}
	log.Errorw("Contract violation", "kind", string(kind), "message", v.Message)

	panic(errors.WithStack(v))
}

// AsViolation extracts the *Violation from a recovered panic value.
func AsViolation(r interface{}) (*Violation, bool) {
	err, ok := r.(error)
	if !ok {
		return nil, false
	}
	var v *Violation
	if !errors.As(err, &v) {
		return nil, false
	}

	return v, true
}
