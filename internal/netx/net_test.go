package netx

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestGetBody(t *testing.T) {
	t.Run("success 200 OK", func(t *testing.T) {
		var gotMethod, gotAccept string

		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotMethod = r.Method
			gotAccept = r.Header.Get("Accept")
			_, _ = w.Write([]byte(`[1,2,3]`))
		}))
		defer ts.Close()

		h := http.Header{}
		h.Set("Accept", "application/json")

		body, err := GetBody(context.Background(), ts.Client(), ts.URL+"/users?size=3", h)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if gotMethod != http.MethodGet {
			t.Fatalf("method = %q, want GET", gotMethod)
		}
		if gotAccept != "application/json" {
			t.Fatalf("Accept = %q, want application/json", gotAccept)
		}
		if string(body) != `[1,2,3]` {
			t.Fatalf("body = %q", string(body))
		}
	})

	t.Run("non-200 -> StatusError", func(t *testing.T) {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusTooManyRequests)
			_, _ = w.Write([]byte(strings.Repeat("x", 2*maxErrorBody)))
		}))
		defer ts.Close()

		_, err := GetBody(context.Background(), ts.Client(), ts.URL, nil)

		var se *StatusError
		if !errors.As(err, &se) {
			t.Fatalf("error = %v, want *StatusError", err)
		}
		if se.Code != http.StatusTooManyRequests {
			t.Fatalf("code = %d, want 429", se.Code)
		}
		if len(se.Body) != maxErrorBody {
			t.Fatalf("body length = %d, want %d", len(se.Body), maxErrorBody)
		}
		if !strings.Contains(err.Error(), "unexpected status 429") {
			t.Fatalf("error = %q, want to contain 429", err.Error())
		}
	})

	t.Run("bad url -> error", func(t *testing.T) {
		_, err := GetBody(context.Background(), http.DefaultClient, "://bad", nil)
		if err == nil {
			t.Fatal("expected error, got nil")
		}
	})
}
