package ovh

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestGetProfile_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != profilePath {
			t.Fatalf("unexpected path: %s", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer tok123" {
			t.Fatalf("unexpected auth header: %q", got)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":"success","data":{"handle":"ab1234-ovh","customerCode":"1234-5678","email":"ops@example.com","state":"complete","kycValidated":true,"currency":{"code":"EUR","symbol":"€"}}}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "tok123", 5*time.Second)
	raw, err := c.GetProfile(context.Background())
	if err != nil {
		t.Fatalf("GetProfile error: %v", err)
	}
	if raw.Handle != "ab1234-ovh" || raw.Currency.Code != "EUR" || !raw.KYCValidated {
		t.Fatalf("unexpected profile: %+v", raw)
	}
}

func TestGetRefunds_ErrorEnvelope(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":"error","message":"upstream quota exceeded"}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "", 5*time.Second)
	_, err := c.GetRefunds(context.Background())
	if err == nil {
		t.Fatal("expected error for non-success envelope")
	}
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected *APIError, got %T: %v", err, err)
	}
	if apiErr.Message != "upstream quota exceeded" {
		t.Fatalf("unexpected message: %q", apiErr.Message)
	}
}

func TestGetEmailHistory_EmptyList(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"status":"success","data":[]}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "", 5*time.Second)
	raws, err := c.GetEmailHistory(context.Background())
	if err != nil {
		t.Fatalf("GetEmailHistory error: %v", err)
	}
	if len(raws) != 0 {
		t.Fatalf("expected empty list, got %d items", len(raws))
	}
}

func TestGet_NonJSONBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte("<html>502 Bad Gateway</html>"))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "", 5*time.Second)
	if _, err := c.GetProfile(context.Background()); err == nil {
		t.Fatal("expected error for non-JSON body")
	}
}
