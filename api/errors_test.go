// File: api/errors_test.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package api_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/momentics/hioload-mem/api"
)

func TestErrorWrapsSentinel(t *testing.T) {
	err := api.NewError(api.ErrCodeOutOfRange, api.ErrOutOfRange, "index 7 is out of range").
		WithContext("index", 7).
		WithContext("size", 3)

	if !errors.Is(err, api.ErrOutOfRange) {
		t.Errorf("errors.Is failed for wrapped sentinel")
	}
	msg := err.Error()
	if !strings.Contains(msg, "index") || !strings.Contains(msg, "context") {
		t.Errorf("message lacks context: %q", msg)
	}

	var structured *api.Error
	if !errors.As(err, &structured) {
		t.Fatalf("errors.As failed")
	}
	if structured.Code != api.ErrCodeOutOfRange {
		t.Errorf("Code = %d", structured.Code)
	}
}

func TestPadToPointer(t *testing.T) {
	cases := map[uintptr]uintptr{
		0:               0,
		1:               api.PtrSize,
		api.PtrSize - 1: api.PtrSize,
		api.PtrSize:     api.PtrSize,
		api.PtrSize + 1: 2 * api.PtrSize,
	}
	for in, want := range cases {
		if got := api.PadToPointer(in); got != want {
			t.Errorf("PadToPointer(%d) = %d, want %d", in, got, want)
		}
	}
	if got := api.ItemSlotSize(0); got != api.PtrSize {
		t.Errorf("ItemSlotSize(0) = %d, want %d", got, api.PtrSize)
	}
}
