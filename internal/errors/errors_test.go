package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestCodeOfWalksChain(t *testing.T) {
	base := errors.New("disk gone")
	err := fmt.Errorf("search: %w", New(CodeStoreUnavailable, "open catalog", base))

	if got := CodeOf(err); got != CodeStoreUnavailable {
		t.Fatalf("expected %q, got %q", CodeStoreUnavailable, got)
	}
	if !IsCode(err, CodeStoreUnavailable) {
		t.Fatal("expected IsCode to match wrapped code")
	}
	if !errors.Is(err, base) {
		t.Fatal("expected wrapped cause to stay reachable")
	}
}

func TestCodeOfUnstructured(t *testing.T) {
	if got := CodeOf(errors.New("plain")); got != CodeUnknown {
		t.Fatalf("expected unknown code, got %q", got)
	}
	if got := CodeOf(nil); got != CodeUnknown {
		t.Fatalf("expected unknown code for nil, got %q", got)
	}
}

func TestErrorMessage(t *testing.T) {
	tests := []struct {
		name string
		err  Error
		want string
	}{
		{"MessageOnly", New(CodeNotFound, "item missing", nil), "item missing"},
		{"MessageAndCause", New(CodeLookupFailed, "search", errors.New("boom")), "search: boom"},
		{"CauseOnly", New(CodeLookupFailed, "", errors.New("boom")), "boom"},
		{"CodeOnly", New(CodeInvalidQuery, "", nil), "invalid_query"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}
