package pagefetch

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

const samplePage = `<!DOCTYPE html>
<html lang="id-ID">
<head><title>@creator</title></head>
<body>
<script>{"user":{"uniqueId":"creator","region":"ID"}}</script>
<p>halo semua, salam dari jakarta</p>
</body>
</html>`

func TestFetchParsesDeclaredFields(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasPrefix(r.URL.Path, "/@") {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		fmt.Fprint(w, samplePage)
	}))
	defer srv.Close()

	client := New(WithBaseURL(srv.URL))
	page, err := client.Fetch(context.Background(), "@creator")
	if err != nil {
		t.Fatalf("Fetch: %v", err)
	}

	if page.Username != "creator" {
		t.Errorf("username = %q, want creator (@ stripped)", page.Username)
	}
	if page.Region != "ID" {
		t.Errorf("region = %q, want ID", page.Region)
	}
	if page.Language != "id-ID" {
		t.Errorf("language = %q, want id-ID", page.Language)
	}
	if page.Markup == "" {
		t.Error("raw markup should be preserved")
	}
	if !strings.Contains(page.BioText, "halo semua") {
		t.Errorf("bio text should contain page prose, got %q", page.BioText)
	}
}

func TestFetchNotFoundFailsWithoutRetry(t *testing.T) {
	requests := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		requests++
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	client := New(WithBaseURL(srv.URL))
	_, err := client.Fetch(context.Background(), "ghost")
	if !errors.Is(err, ErrFetchFailed) {
		t.Fatalf("err = %v, want ErrFetchFailed", err)
	}
	if requests != 1 {
		t.Errorf("404 should not be retried, server saw %d requests", requests)
	}
}

func TestFetchRetriesServerErrors(t *testing.T) {
	requests := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		requests++
		if requests < 3 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		fmt.Fprint(w, samplePage)
	}))
	defer srv.Close()

	client := New(WithBaseURL(srv.URL))
	page, err := client.Fetch(context.Background(), "creator")
	if err != nil {
		t.Fatalf("Fetch should succeed after retries: %v", err)
	}
	if requests != 3 {
		t.Errorf("server saw %d requests, want 3", requests)
	}
	if page.Region != "ID" {
		t.Errorf("region = %q, want ID", page.Region)
	}
}
