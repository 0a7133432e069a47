package errors

import (
	"math"
	"testing"
)

func TestValidateArea(t *testing.T) {
	tests := []struct {
		name     string
		w, h     float64
		wantCode Code
	}{
		{"valid", 200, 100, ""},
		{"missing", 0, 0, ErrCodeConfiguration},
		{"zero width", 0, 100, ErrCodeInvalidInput},
		{"zero height", 100, 0, ErrCodeInvalidInput},
		{"negative", -10, 100, ErrCodeInvalidInput},
		{"nan", math.NaN(), 100, ErrCodeInvalidInput},
		{"inf", 100, math.Inf(1), ErrCodeInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateArea("grid", tt.w, tt.h)
			if tt.wantCode == "" {
				if err != nil {
					t.Fatalf("ValidateArea(%g, %g) = %v, want nil", tt.w, tt.h, err)
				}
				return
			}
			if !Is(err, tt.wantCode) {
				t.Errorf("ValidateArea(%g, %g) = %v, want code %s", tt.w, tt.h, err, tt.wantCode)
			}
		})
	}
}

func TestValidateNonNegative(t *testing.T) {
	tests := []struct {
		name    string
		v       float64
		wantErr bool
	}{
		{"zero", 0, false},
		{"positive", 3.5, false},
		{"negative", -1, true},
		{"nan", math.NaN(), true},
		{"inf", math.Inf(1), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateNonNegative("padding", tt.v)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateNonNegative(%g) error = %v, wantErr %v", tt.v, err, tt.wantErr)
			}
		})
	}
}

func TestValidatePath(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"simple file", "out.svg", false},
		{"nested relative", "build/out.svg", false},
		{"absolute", "/tmp/out.svg", false},
		{"dotted name", "data..svg", false},

		{"empty", "", true},
		{"too long", string(make([]byte, 600)), true},
		{"traversal", "../out.svg", true},
		{"nested traversal", "a/../../out.svg", true},
		{"windows traversal", "a\\..\\out.svg", true},
		{"null byte", "out\x00.svg", true},
		{"newline", "out\n.svg", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePath(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidatePath(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestValidateFieldName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"simple", "groupid", false},
		{"with space", "group id", false},
		{"empty", "", true},
		{"blank", "   ", true},
		{"control", "group\tid", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateFieldName(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateFieldName(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}
