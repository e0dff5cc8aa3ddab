//go:build !ocr

package ocr

import (
	"errors"
	"testing"
)

func TestStubNew(t *testing.T) {
	c, err := New()
	if !errors.Is(err, ErrOCRNotEnabled) {
		t.Errorf("New() err = %v, want ErrOCRNotEnabled", err)
	}
	if err := c.Close(); err != nil {
		t.Errorf("Close on nil client: %v", err)
	}
}
