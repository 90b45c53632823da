package errors_test

import (
	stderrors "errors"
	"net/http"
	"testing"

	apperrors "github.com/mergington/activities/internal/platform/errors"
)

func TestErrorIsMatchesByCode(t *testing.T) {
	t.Parallel()

	err := apperrors.WithMetadata(apperrors.CodeActivityNotFound, "activity \"Quidditch\" is not in the catalog", map[string]string{"activity": "Quidditch"})
	if !stderrors.Is(err, apperrors.New(apperrors.CodeActivityNotFound, "")) {
		t.Fatal("expected code-based match")
	}
	if stderrors.Is(err, apperrors.New(apperrors.CodeAlreadyRegistered, "")) {
		t.Fatal("expected mismatch for different code")
	}
}

func TestErrorUnwrapReturnsCause(t *testing.T) {
	t.Parallel()

	cause := stderrors.New("boom")
	err := apperrors.Wrap(apperrors.CodeUnknown, "wrapped", cause)
	if !stderrors.Is(err, cause) {
		t.Fatalf("expected cause in chain, got %v", err)
	}
	if err.Error() != "wrapped" {
		t.Fatalf("Error() = %q, want %q", err.Error(), "wrapped")
	}
}

func TestHTTPStatusMapping(t *testing.T) {
	t.Parallel()

	cases := []struct {
		code apperrors.Code
		want int
	}{
		{apperrors.CodeActivityNotFound, http.StatusNotFound},
		{apperrors.CodeAlreadyRegistered, http.StatusBadRequest},
		{apperrors.CodeActivityNameEmpty, http.StatusBadRequest},
		{apperrors.CodeEmailEmpty, http.StatusBadRequest},
		{apperrors.CodeUnknown, http.StatusInternalServerError},
		{apperrors.Code("SOMETHING_ELSE"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		if got := tc.code.HTTPStatus(); got != tc.want {
			t.Fatalf("HTTPStatus(%s) = %d, want %d", tc.code, got, tc.want)
		}
	}
}
