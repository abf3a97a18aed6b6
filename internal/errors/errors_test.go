package errors

import (
	stderrors "errors"
	"fmt"
	"testing"

	"statplug/domain/core"
)

func TestCodeFor(t *testing.T) {
	cases := []struct {
		err  error
		code string
	}{
		{core.NewInvalidInputError("empty table"), CodeInvalidInput},
		{core.NewSampleSizeError("t test", 2, 1), CodeInvalidInput},
		{fmt.Errorf("column: %w", core.ErrNonNumericCell), CodeInvalidInput},
		{core.NewInvalidParameterError("sigma", -1, "(0, +Inf)"), CodeInvalidParameter},
		{core.NewComputationError("t test", "zero variance"), CodeComputationError},
		{core.NewFormatError("not yaml"), CodeFormatError},
		{core.NewUnknownDistributionError("zeta"), CodeUnknownDistribution},
		{stderrors.New("boom"), CodeInternalError},
		{nil, ""},
	}
	for _, tc := range cases {
		if got := CodeFor(tc.err); got != tc.code {
			t.Errorf("CodeFor(%v) = %q, want %q", tc.err, got, tc.code)
		}
	}
}

func TestWrap_PreservesCodeAndSentinel(t *testing.T) {
	base := core.NewInvalidParameterError("p", 2, "[0, 1]")
	wrapped := Wrap(base, "construct binomial")

	if GetCode(wrapped) != CodeInvalidParameter {
		t.Errorf("code = %q", GetCode(wrapped))
	}
	if !core.IsInvalidParameter(wrapped) {
		t.Error("wrapping must keep the sentinel reachable via errors.Is")
	}
	if !IsAppError(wrapped) {
		t.Error("wrapped error should be an AppError")
	}
}

func TestWrap_Nil(t *testing.T) {
	if Wrap(nil, "context") != nil {
		t.Error("wrapping nil must stay nil")
	}
	if Wrapf(nil, "context %d", 1) != nil {
		t.Error("wrapping nil must stay nil")
	}
}

func TestAppError_Error(t *testing.T) {
	plain := New(CodeConfigInvalid, "bad gate")
	if plain.Error() != "bad gate" {
		t.Errorf("Error() = %q", plain.Error())
	}
	caused := Wrap(core.NewFormatError("truncated"), "load record")
	if caused.Error() != "load record: malformed distribution record: truncated" {
		t.Errorf("Error() = %q", caused.Error())
	}
}

func TestGetCode_PlainError(t *testing.T) {
	if got := GetCode(stderrors.New("boom")); got != CodeInternalError {
		t.Errorf("GetCode = %q", got)
	}
	if got := GetCode(NewConfigError("missing menu")); got != CodeConfigInvalid {
		t.Errorf("GetCode = %q", got)
	}
}
