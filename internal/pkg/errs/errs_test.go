//go:build unit

package errs_test

import (
	"errors"
	"fmt"
	"testing"

	"campsite-reservation/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
)

func TestKindOf(t *testing.T) {
	occupied := errs.Mark(errs.New("period occupied"), errs.ErrConflict)

	tests := []struct {
		name string
		err  error
		want error
	}{
		{name: "marked error", err: occupied, want: errs.ErrConflict},
		{name: "wrapped marked error", err: errs.Wrap(occupied, "create reservation"), want: errs.ErrConflict},
		{name: "std wrapped marked error", err: fmt.Errorf("tx: %w", occupied), want: errs.ErrConflict},
		{name: "kind itself", err: errs.ErrTransient, want: errs.ErrTransient},
		{name: "unmarked error", err: errors.New("boom"), want: nil},
		{name: "nil", err: nil, want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, errs.KindOf(tt.err))
		})
	}
}

func TestMark_NilError(t *testing.T) {
	assert.Equal(t, errs.ErrNotFound, errs.Mark(nil, errs.ErrNotFound))
	assert.Nil(t, errs.Wrap(nil, "ignored"))
}
