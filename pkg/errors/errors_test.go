package errors

import (
	"errors"
	"strings"
	"testing"
)

func TestNew(t *testing.T) {
	err := New(ErrCodeConfigInvalid, "negative header height")

	if err == nil {
		t.Fatal("New should return non-nil error")
	}
	if err.Code != ErrCodeConfigInvalid {
		t.Errorf("Code = %v, want %v", err.Code, ErrCodeConfigInvalid)
	}
	if err.Message != "negative header height" {
		t.Errorf("Message = %v, want 'negative header height'", err.Message)
	}
	if err.Underlying != nil {
		t.Error("Underlying should be nil for New error")
	}
}

func TestWrap(t *testing.T) {
	underlying := errors.New("disk full")
	err := Wrap(underlying, ErrCodeStorageWrite, "failed to persist layout")

	if err == nil {
		t.Fatal("Wrap should return non-nil error")
	}
	if err.Underlying != underlying {
		t.Error("Underlying should be preserved")
	}
	if err.Code != ErrCodeStorageWrite {
		t.Errorf("Code = %v, want %v", err.Code, ErrCodeStorageWrite)
	}
	if !strings.Contains(err.Error(), "disk full") {
		t.Error("Error string should include underlying error")
	}
}

func TestWrap_Nil(t *testing.T) {
	if err := Wrap(nil, ErrCodeInternal, "ignored"); err != nil {
		t.Errorf("Wrap(nil) = %v, want nil", err)
	}
}

func TestWithContext(t *testing.T) {
	err := New(ErrCodeStateNotFound, "no stored layout").
		WithContext("container", "sidebar").
		WithContext("snapshot", "default")

	if got := err.Context["container"]; got != "sidebar" {
		t.Errorf("Context[container] = %v, want sidebar", got)
	}
	msg := err.Error()
	if !strings.Contains(msg, "STATE_NOT_FOUND") {
		t.Errorf("Error() = %q, want code included", msg)
	}
	if !strings.Contains(msg, "container") {
		t.Errorf("Error() = %q, want context included", msg)
	}
}

func TestUnwrap(t *testing.T) {
	underlying := errors.New("root cause")
	err := Wrap(underlying, ErrCodeStorageRead, "read failed")

	if !errors.Is(err, underlying) {
		t.Error("errors.Is should find the underlying error")
	}
}

func TestIsCode(t *testing.T) {
	err := New(ErrCodeBackendInit, "no terminal")

	if !IsCode(err, ErrCodeBackendInit) {
		t.Error("IsCode should match the error's code")
	}
	if IsCode(err, ErrCodeStorageOpen) {
		t.Error("IsCode should not match a different code")
	}
	if IsCode(nil, ErrCodeBackendInit) {
		t.Error("IsCode(nil) should be false")
	}
	if IsCode(errors.New("plain"), ErrCodeBackendInit) {
		t.Error("IsCode should be false for non-dockyard errors")
	}
}

func TestGetCode(t *testing.T) {
	if got := GetCode(nil); got != "" {
		t.Errorf("GetCode(nil) = %q, want empty", got)
	}
	if got := GetCode(errors.New("plain")); got != ErrCodeInternal {
		t.Errorf("GetCode(plain) = %q, want %q", got, ErrCodeInternal)
	}
	if got := GetCode(New(ErrCodeStateDecode, "bad json")); got != ErrCodeStateDecode {
		t.Errorf("GetCode = %q, want %q", got, ErrCodeStateDecode)
	}
}
