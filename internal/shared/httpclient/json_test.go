package httpclient

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestPostJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("X-Key") != "secret" {
			t.Errorf("missing custom header")
		}
		if r.Header.Get("Content-Type") != "application/json" {
			t.Errorf("content type = %q", r.Header.Get("Content-Type"))
		}
		var in map[string]string
		_ = json.NewDecoder(r.Body).Decode(&in)
		_ = json.NewEncoder(w).Encode(map[string]string{"echo": in["msg"]})
	}))
	defer srv.Close()

	c := New("test", time.Second, map[string]string{"X-Key": "secret"})
	var out struct {
		Echo string `json:"echo"`
	}
	if err := c.PostJSON(context.Background(), srv.URL, map[string]string{"msg": "hi"}, &out); err != nil {
		t.Fatal(err)
	}
	if out.Echo != "hi" {
		t.Errorf("echo = %q", out.Echo)
	}
}

func TestPostJSONStatusError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "bad token", http.StatusUnauthorized)
	}))
	defer srv.Close()

	err := New("test", time.Second, nil).PostJSON(context.Background(), srv.URL, struct{}{}, nil)
	var se *StatusError
	if !errors.As(err, &se) {
		t.Fatalf("expected StatusError, got %v", err)
	}
	if se.Status != http.StatusUnauthorized || se.Body != "bad token" {
		t.Errorf("unexpected error: %+v", se)
	}
}

func TestPostJSONEmptyBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	var out map[string]interface{}
	if err := New("test", time.Second, nil).PostJSON(context.Background(), srv.URL, struct{}{}, &out); err != nil {
		t.Errorf("empty 2xx body should not fail: %v", err)
	}
}
