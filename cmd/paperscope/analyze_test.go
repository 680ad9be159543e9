package main

import (
	"errors"
	"testing"

	"github.com/pdiddy/paperscope/pkg/types"
)

func TestValidateFormat(t *testing.T) {
	for _, format := range []string{"", "yaml", "json"} {
		if err := validateFormat(format); err != nil {
			t.Errorf("validateFormat(%q) = %v, want nil", format, err)
		}
	}

	err := validateFormat("xml")
	if !errors.Is(err, types.ErrInvalidArgument) {
		t.Errorf("validateFormat(%q) = %v, want ErrInvalidArgument", "xml", err)
	}
}
