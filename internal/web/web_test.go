package web

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prabhatsn1/trameapp/internal/pkg/pkgrouter"
	"github.com/prabhatsn1/trameapp/internal/pkg/pkguid"
)

func TestRegisterServesUploadPage(t *testing.T) {
	router := pkgrouter.NewRouter(pkguid.NewUUID())

	if err := Register(router, "http://localhost:8080"); err != nil {
		t.Fatalf("Register() err = %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if got := rec.Header().Get("Content-Type"); !strings.HasPrefix(got, "text/html") {
		t.Fatalf("content type = %q", got)
	}

	body := rec.Body.String()
	if !strings.Contains(body, "CSV Upload") {
		t.Fatal("page title missing")
	}
	if !strings.Contains(body, "http://localhost:8080") {
		t.Fatal("visualizer url not injected")
	}
}
