package clierr

import (
	"errors"
	"testing"
)

func TestError_Error(t *testing.T) {
	tests := []struct {
		name    string
		err     *Error
		wantMsg string
	}{
		{
			name:    "simple error message",
			err:     New(Validation, "invalid input", nil),
			wantMsg: "invalid input",
		},
		{
			name:    "error with underlying error",
			err:     New(Network, "request failed", errors.New("network timeout")),
			wantMsg: "request failed",
		},
		{
			name:    "empty message",
			err:     New(Internal, "", nil),
			wantMsg: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.wantMsg {
				t.Errorf("Error() = %v, want %v", got, tt.wantMsg)
			}
		})
	}
}

func TestError_Unwrap(t *testing.T) {
	tests := []struct {
		name    string
		err     *Error
		wantNil bool
	}{
		{
			name:    "no underlying error",
			err:     New(Validation, "test", nil),
			wantNil: true,
		},
		{
			name:    "with underlying error",
			err:     New(Auth, "test", errors.New("underlying")),
			wantNil: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.err.Unwrap()
			if (got == nil) != tt.wantNil {
				t.Errorf("Unwrap() nil = %v, want nil = %v", got == nil, tt.wantNil)
			}
		})
	}
}

func TestError_ErrorsIsAs(t *testing.T) {
	underlyingErr := errors.New("underlying error")
	cliErr := New(Auth, "session ended", underlyingErr)

	if !errors.Is(cliErr, underlyingErr) {
		t.Error("errors.Is should find underlying error")
	}

	var cliErrTarget *Error
	if !errors.As(cliErr, &cliErrTarget) {
		t.Error("errors.As should find Error type")
	}

	if cliErrTarget.Type != Auth {
		t.Errorf("errors.As Type = %v, want %v", cliErrTarget.Type, Auth)
	}
}

func TestError_Types(t *testing.T) {
	types := []Type{Validation, Auth, Permission, Network, Internal}
	expected := []string{"validation", "auth", "permission", "network", "internal"}

	for i, typ := range types {
		if string(typ) != expected[i] {
			t.Errorf("Type constant = %v, want %v", typ, expected[i])
		}
	}
}
