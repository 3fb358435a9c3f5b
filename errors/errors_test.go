package errors

import (
	stderrors "errors"
	"fmt"
	"strings"
	"testing"
)

func TestProviderError(t *testing.T) {
	err := Provider("102", "HTL", "Access is not active")

	if err.Code != ErrCodeProvider {
		t.Errorf("expected code %s, got %s", ErrCodeProvider, err.Code)
	}
	if err.ProviderCode != "102" || err.ProviderType != "HTL" {
		t.Errorf("provider fields not carried: %+v", err)
	}
	if !strings.Contains(err.Error(), "Access is not active") {
		t.Errorf("message missing from Error(): %s", err.Error())
	}
	if !IsProvider(err) {
		t.Error("IsProvider should be true")
	}
	if IsTransport(err) {
		t.Error("IsTransport should be false")
	}
}

func TestTransportWrapsCause(t *testing.T) {
	cause := fmt.Errorf("connection refused")
	err := Transport("post failed", cause)

	if !stderrors.Is(err, cause) {
		t.Error("expected errors.Is to find the cause")
	}
	if !IsTransport(err) {
		t.Error("IsTransport should be true")
	}
}

func TestDateFormatMessage(t *testing.T) {
	err := DateFormat("31-12-2020", "DD/MM/YYYY", nil)

	if !IsDateFormat(err) {
		t.Error("IsDateFormat should be true")
	}
	for _, want := range []string{"31-12-2020", "DD/MM/YYYY"} {
		if !strings.Contains(err.Message, want) {
			t.Errorf("message %q missing %q", err.Message, want)
		}
	}
}

func TestIsMatchesByCode(t *testing.T) {
	err := fmt.Errorf("wrapped: %w", ContractViolation("missing result node"))

	if !stderrors.Is(err, &Error{Code: ErrCodeContractViolation}) {
		t.Error("errors.Is should match by code through wrapping")
	}
	if stderrors.Is(err, &Error{Code: ErrCodeProvider}) {
		t.Error("errors.Is should not match a different code")
	}
}

func TestCodeOfNonAdapterError(t *testing.T) {
	if got := CodeOf(fmt.Errorf("plain")); got != "" {
		t.Errorf("expected empty code, got %s", got)
	}
}
