// Copyright 2023 Tao Wang <wangtaoking1@qq.com>. All rights reserved.
// Use of this source code is governed by a MIT style
// license that can be found in the LICENSE file.

package cmdline

import (
	"fmt"
)

// ValueError reports a value which is not acceptable for an option.
type ValueError struct {
	// Option is the option as typed on a command line, e.g. "--file".
	Option string
	// Value is the raw value provided by the user.
	Value string
	// Reason describes why Value was rejected.
	Reason string

	err error
}

// NewValueError creates a ValueError for the option rendered as option.
func NewValueError(option, value, reason string) *ValueError {
	return &ValueError{Option: option, Value: value, Reason: reason}
}

func newValueError(opt Option, value string, cause error) *ValueError {
	return &ValueError{
		Option: fmt.Sprintf("--%s", opt.LongName()),
		Value:  value,
		Reason: cause.Error(),
		err:    cause,
	}
}

func (e *ValueError) Error() string {
	return fmt.Sprintf("Invalid argument '%s' for option %s: %s", e.Value, e.Option, e.Reason)
}

// Unwrap returns the error that caused the rejection, if any.
func (e *ValueError) Unwrap() error {
	return e.err
}
