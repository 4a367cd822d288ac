// Copyright 2023 Tao Wang <wangtaoking1@qq.com>. All rights reserved.
// Use of this source code is governed by a MIT style
// license that can be found in the LICENSE file.

package sanity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func recovered(f func()) (r interface{}) {
	defer func() {
		r = recover()
	}()
	f()

	return nil
}

func TestChecks_Pass(t *testing.T) {
	assert.NotPanics(t, func() {
		Pre(true, "pre")
		Inv(true, "inv")
		Post(true, "post")
	})
}

func TestChecks_Fail(t *testing.T) {
	tests := []struct {
		name string
		f    func()
		kind Kind
		msg  string
	}{
		{
			name: "precondition",
			f:    func() { Pre(false, "value %d", 1) },
			kind: Precondition,
			msg:  "Precondition check failed: value 1",
		},
		{
			name: "invariant",
			f:    func() { Inv(false, "broken") },
			kind: Invariant,
			msg:  "Invariant check failed: broken",
		},
		{
			name: "postcondition",
			f:    func() { Post(false, "broken") },
			kind: Postcondition,
			msg:  "Postcondition check failed: broken",
		},
		{
			name: "unreachable",
			f:    func() { Unreachable("no way") },
			kind: UnreachableCode,
			msg:  "Reached unreachable code: no way",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.PanicsWithError(t, tt.msg, tt.f)

			v, ok := AsViolation(recovered(tt.f))
			assert.True(t, ok)
			assert.Equal(t, tt.kind, v.Kind)
		})
	}
}

func TestAsViolation_Other(t *testing.T) {
	_, ok := AsViolation("boom")
	assert.False(t, ok)

	_, ok = AsViolation(nil)
	assert.False(t, ok)
}
