package errors

import (
	stderrors "errors"
	"fmt"
	"testing"
)

func TestNew(t *testing.T) {
	err := New(ErrCodeInvalidInput, "bad coordinate %q", "junit")

	if err.Code != ErrCodeInvalidInput {
		t.Errorf("Code = %q, want %q", err.Code, ErrCodeInvalidInput)
	}
	if err.Message != `bad coordinate "junit"` {
		t.Errorf("Message = %q", err.Message)
	}
	if err.Cause != nil {
		t.Errorf("Cause = %v, want nil", err.Cause)
	}
}

func TestErrorString(t *testing.T) {
	err := New(ErrCodeFileNotFound, "can't find junit")
	want := "FILE_NOT_FOUND: can't find junit"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}

	wrapped := Wrap(ErrCodeNetwork, fmt.Errorf("connection refused"), "fetch failed")
	want = "NETWORK_ERROR: fetch failed: connection refused"
	if wrapped.Error() != want {
		t.Errorf("Error() = %q, want %q", wrapped.Error(), want)
	}
}

func TestWrapUnwrap(t *testing.T) {
	cause := stderrors.New("boom")
	err := Wrap(ErrCodeInternal, cause, "something failed")

	if !stderrors.Is(err, cause) {
		t.Error("errors.Is should find the wrapped cause")
	}
	if err.Unwrap() != cause {
		t.Errorf("Unwrap() = %v, want %v", err.Unwrap(), cause)
	}
}

func TestIs(t *testing.T) {
	err := New(ErrCodeFileNotFound, "missing")

	if !Is(err, ErrCodeFileNotFound) {
		t.Error("Is() should match the error's code")
	}
	if Is(err, ErrCodeNetwork) {
		t.Error("Is() should not match a different code")
	}
	if Is(stderrors.New("plain"), ErrCodeFileNotFound) {
		t.Error("Is() should not match a plain error")
	}
}

func TestIsThroughWrapping(t *testing.T) {
	inner := New(ErrCodeFileNotFound, "missing")
	outer := fmt.Errorf("while resolving: %w", inner)

	if !Is(outer, ErrCodeFileNotFound) {
		t.Error("Is() should unwrap fmt.Errorf chains")
	}
}

func TestIsNotFound(t *testing.T) {
	if !IsNotFound(New(ErrCodeFileNotFound, "gone")) {
		t.Error("IsNotFound() = false for FILE_NOT_FOUND")
	}
	if IsNotFound(New(ErrCodeInvalidPOM, "bad xml")) {
		t.Error("IsNotFound() = true for INVALID_POM")
	}
	if IsNotFound(nil) {
		t.Error("IsNotFound(nil) = true")
	}
}

func TestGetCode(t *testing.T) {
	if got := GetCode(New(ErrCodeTimeout, "slow")); got != ErrCodeTimeout {
		t.Errorf("GetCode() = %q, want %q", got, ErrCodeTimeout)
	}
	if got := GetCode(stderrors.New("plain")); got != "" {
		t.Errorf("GetCode() = %q, want empty", got)
	}
}

func TestUserMessage(t *testing.T) {
	if got := UserMessage(New(ErrCodeNetwork, "fetch failed")); got != "fetch failed" {
		t.Errorf("UserMessage() = %q, want %q", got, "fetch failed")
	}
	if got := UserMessage(stderrors.New("plain failure")); got != "plain failure" {
		t.Errorf("UserMessage() = %q, want %q", got, "plain failure")
	}
}
