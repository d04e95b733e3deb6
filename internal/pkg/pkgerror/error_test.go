package pkgerror

import (
	"errors"
	"net/http"
	"testing"
)

func TestErrorWrapsUnderlying(t *testing.T) {
	underlying := errors.New("boom")
	err := NewServer(underlying)

	var perr *Error
	if !errors.As(err, &perr) {
		t.Fatalf("expected *Error, got %T", err)
	}
	if !errors.Is(err, underlying) {
		t.Fatal("expected underlying error to be reachable via errors.Is")
	}
	if perr.Error() != "boom" {
		t.Fatalf("Error() = %q, want %q", perr.Error(), "boom")
	}
	if perr.Msg() != "Internal server error" {
		t.Fatalf("Msg() = %q", perr.Msg())
	}
}

func TestStatusCodeMapping(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want int
	}{
		{"unsupported media", NewUnsupportedMedia("Please upload a CSV file"), http.StatusUnsupportedMediaType},
		{"invalid format", NewBusiness("Error parsing CSV file", CodeInvalidFormat), http.StatusBadRequest},
		{"not found", NewBusiness("no table loaded", CodeNotFound), http.StatusNotFound},
		{"superseded", NewBusiness("superseded", CodeSuperseded), http.StatusConflict},
		{"invalid input", NewInvalidInput(errors.New("bad rows param")), http.StatusUnprocessableEntity},
		{"server", NewServer(errors.New("x")), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var perr *Error
			if !errors.As(tc.err, &perr) {
				t.Fatalf("expected *Error, got %T", tc.err)
			}
			if got := perr.StatusCode(); got != tc.want {
				t.Fatalf("StatusCode() = %d, want %d", got, tc.want)
			}
		})
	}
}

func TestBusinessMessageIsUserFacing(t *testing.T) {
	err := NewBusiness("CSV file is empty", CodeInvalidFormat)

	var perr *Error
	if !errors.As(err, &perr) {
		t.Fatalf("expected *Error, got %T", err)
	}
	if perr.Msg() != "CSV file is empty" {
		t.Fatalf("Msg() = %q", perr.Msg())
	}
	if perr.Type() != TypeBusiness {
		t.Fatalf("Type() = %v, want business", perr.Type())
	}
}
