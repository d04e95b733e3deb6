package pkgrouter

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"reflect"
	"testing"

	"github.com/prabhatsn1/trameapp/internal/pkg/pkgerror"
)

type fixedGenerator struct{ value string }

func (g fixedGenerator) Generate() string { return g.value }

type namedResponse struct {
	Name string `json:"name"`
}

func (namedResponse) StatusCode() int { return http.StatusCreated }

func (namedResponse) Message() string { return "created" }

func TestChainOrder(t *testing.T) {
	order := make([]string, 0, 3)

	mw := func(name string) Middleware {
		return func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				order = append(order, name)
				next.ServeHTTP(w, r)
			})
		}
	}

	h := Chain(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		order = append(order, "handler")
	}), mw("mw1"), mw("mw2"))

	req := httptest.NewRequest(http.MethodGet, "http://example.com", nil)
	rec := httptest.NewRecorder()

	h.ServeHTTP(rec, req)

	if !reflect.DeepEqual(order, []string{"mw1", "mw2", "handler"}) {
		t.Fatalf("unexpected order: %#v", order)
	}
}

func TestRouterSuccessEnvelope(t *testing.T) {
	router := NewRouter(fixedGenerator{value: "cid"})
	router.POST("/things", func(ctx context.Context, r *http.Request) (any, error) {
		return namedResponse{Name: "thing-1"}, nil
	})

	req := httptest.NewRequest(http.MethodPost, "/things", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201", rec.Code)
	}

	var body struct {
		Message string        `json:"message"`
		Data    namedResponse `json:"data"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body.Message != "created" {
		t.Fatalf("message = %q", body.Message)
	}
	if body.Data.Name != "thing-1" {
		t.Fatalf("data.name = %q", body.Data.Name)
	}
}

func TestRouterNilResponseIsNoContent(t *testing.T) {
	router := NewRouter(fixedGenerator{value: "cid"})
	router.DELETE("/things", func(ctx context.Context, r *http.Request) (any, error) {
		return nil, nil
	})

	req := httptest.NewRequest(http.MethodDelete, "/things", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusNoContent {
		t.Fatalf("status = %d, want 204", rec.Code)
	}
}

func TestRouterErrorMapping(t *testing.T) {
	router := NewRouter(fixedGenerator{value: "cid"})
	router.GET("/known", func(ctx context.Context, r *http.Request) (any, error) {
		return nil, pkgerror.NewBusiness("CSV file is empty", pkgerror.CodeInvalidFormat)
	})
	router.GET("/unknown", func(ctx context.Context, r *http.Request) (any, error) {
		return nil, errors.New("raw error")
	})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/known", nil))
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("known status = %d, want 400", rec.Code)
	}

	var body struct {
		Message string `json:"message"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body.Message != "CSV file is empty" {
		t.Fatalf("message = %q", body.Message)
	}

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/unknown", nil))
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("unknown status = %d, want 500", rec.Code)
	}
}

func TestRouterRecoversPanic(t *testing.T) {
	router := NewRouter(fixedGenerator{value: "cid"})
	router.GET("/panic", func(ctx context.Context, r *http.Request) (any, error) {
		panic("boom")
	})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/panic", nil))

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", rec.Code)
	}
}

func TestMiddlewareCorrelationIDUsesHeader(t *testing.T) {
	gen := &countingGenerator{value: "generated"}
	mw := middlewareCorrelationID(gen)

	wrapped := mw(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "http://example.com", nil)
	req.Header.Set(HeaderCorrelationID, "header-cid")
	rec := httptest.NewRecorder()

	wrapped.ServeHTTP(rec, req)

	if got := rec.Header().Get(HeaderCorrelationID); got != "header-cid" {
		t.Fatalf("expected response cid header, got %q", got)
	}
	if gen.calls != 0 {
		t.Fatalf("expected generator not called, got %d calls", gen.calls)
	}
}

func TestMiddlewareCorrelationIDGeneratesWhenMissing(t *testing.T) {
	gen := &countingGenerator{value: "generated"}
	mw := middlewareCorrelationID(gen)

	wrapped := mw(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "http://example.com", nil)
	rec := httptest.NewRecorder()

	wrapped.ServeHTTP(rec, req)

	if got := rec.Header().Get(HeaderCorrelationID); got != "generated" {
		t.Fatalf("expected generated cid header, got %q", got)
	}
	if gen.calls != 1 {
		t.Fatalf("expected generator called once, got %d calls", gen.calls)
	}
}

func TestNormalizeCID(t *testing.T) {
	if got := normalizeCID("  abc  "); got != "abc" {
		t.Fatalf("expected trimmed value, got %q", got)
	}
	if got := normalizeCID("\n"); got != "" {
		t.Fatalf("expected empty for newline, got %q", got)
	}
	long := make([]byte, 200)
	for i := range long {
		long[i] = 'a'
	}
	if got := normalizeCID(string(long)); len(got) != 128 {
		t.Fatalf("expected length 128, got %d", len(got))
	}
}

type countingGenerator struct {
	value string
	calls int
}

func (g *countingGenerator) Generate() string {
	g.calls++
	return g.value
}
