package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func TestParseBaseURL_DefaultsAndNormalizes(t *testing.T) {
	u, err := parseBaseURL("")
	if err != nil {
		t.Fatalf("parseBaseURL returned error: %v", err)
	}
	if u.Scheme != "http" {
		t.Fatalf("scheme = %q, want http", u.Scheme)
	}
	if u.Host != defaultBaseURL {
		t.Fatalf("host = %q, want %q", u.Host, defaultBaseURL)
	}

	u, err = parseBaseURL("http://example.com:9000/path?x=1#frag")
	if err != nil {
		t.Fatalf("parseBaseURL returned error: %v", err)
	}
	if u.Path != "" || u.RawQuery != "" || u.Fragment != "" {
		t.Fatalf("url not normalized: %q", u.String())
	}
}

func TestClient_ListBooksEncodesOnlyNonEmptyFilters(t *testing.T) {
	t.Parallel()

	var gotQueries []url.Values
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/books" {
			http.NotFound(w, r)
			return
		}
		gotQueries = append(gotQueries, r.URL.Query())
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode([]Book{
			{ID: 1, Title: "Dune", Author: "Herbert", Category: "Sci-Fi"},
		})
	}))
	t.Cleanup(server.Close)

	c, err := NewClient(server.URL)
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	t.Cleanup(cancel)

	books, err := c.ListBooks(ctx, Query{})
	if err != nil {
		t.Fatalf("ListBooks returned error: %v", err)
	}
	if len(books) != 1 || books[0].ID != 1 || books[0].Title != "Dune" {
		t.Fatalf("ListBooks = %#v, want 1 book id=1", books)
	}

	if _, err := c.ListBooks(ctx, Query{Text: " dune ", Category: "Sci-Fi"}); err != nil {
		t.Fatalf("ListBooks returned error: %v", err)
	}

	if len(gotQueries) != 2 {
		t.Fatalf("got %d requests, want 2", len(gotQueries))
	}
	if len(gotQueries[0]) != 0 {
		t.Fatalf("unfiltered request sent params: %v", gotQueries[0])
	}
	if gotQueries[1].Get("q") != "dune" || gotQueries[1].Get("category") != "Sci-Fi" {
		t.Fatalf("filtered request params = %v, want trimmed q and category", gotQueries[1])
	}
}

func TestClient_CreateBookSendsDraftPayload(t *testing.T) {
	t.Parallel()

	var gotBody Draft
	var gotContentType string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/api/books" {
			http.NotFound(w, r)
			return
		}
		gotContentType = r.Header.Get("Content-Type")
		raw, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(raw, &gotBody)
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(Book{ID: 7})
	}))
	t.Cleanup(server.Close)

	c, err := NewClient(server.URL)
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}

	draft := Draft{
		Title:           "Dune",
		Author:          "Herbert",
		Category:        "Sci-Fi",
		Description:     "Desert planet",
		TextSummary:     "Spice and sandworms.",
		CoverImageURL:   "https://example.com/dune.jpg",
		AudioSummaryURL: "https://example.com/dune.mp3",
	}
	if err := c.CreateBook(context.Background(), draft); err != nil {
		t.Fatalf("CreateBook returned error: %v", err)
	}
	if gotContentType != "application/json" {
		t.Fatalf("Content-Type = %q, want application/json", gotContentType)
	}
	if diff := cmp.Diff(draft, gotBody); diff != "" {
		t.Fatalf("payload mismatch (-want +got):\n%s", diff)
	}
}

func TestClient_CreateBookValidatesLocally(t *testing.T) {
	requested := false
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requested = true
	}))
	t.Cleanup(server.Close)

	c, err := NewClient(server.URL)
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}
	err = c.CreateBook(context.Background(), Draft{Title: "Dune"})
	if err == nil || err.Error() != "author is required" {
		t.Fatalf("CreateBook error = %v, want author is required", err)
	}
	if requested {
		t.Fatal("invalid draft reached the network")
	}
}

func TestClient_CreateBookSurfacesErrorBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "title required", http.StatusBadRequest)
	}))
	t.Cleanup(server.Close)

	c, err := NewClient(server.URL)
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}
	err = c.CreateBook(context.Background(), Draft{Title: "Dune", Author: "Herbert", Category: "Sci-Fi"})
	var statusErr *StatusError
	if !errors.As(err, &statusErr) {
		t.Fatalf("CreateBook error = %T (%v), want *StatusError", err, err)
	}
	if statusErr.Code != http.StatusBadRequest || statusErr.Error() != "title required" {
		t.Fatalf("StatusError = %d %q, want 400 with body text", statusErr.Code, statusErr.Error())
	}
}

func TestClient_DeleteBookTargetsID(t *testing.T) {
	t.Parallel()

	var gotMethod, gotPath string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		w.WriteHeader(http.StatusNoContent)
	}))
	t.Cleanup(server.Close)

	c, err := NewClient(server.URL)
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}
	if err := c.DeleteBook(context.Background(), 42); err != nil {
		t.Fatalf("DeleteBook returned error: %v", err)
	}
	if gotMethod != http.MethodDelete || gotPath != "/api/books/42" {
		t.Fatalf("request = %s %s, want DELETE /api/books/42", gotMethod, gotPath)
	}

	if err := c.DeleteBook(context.Background(), 0); err == nil {
		t.Fatal("DeleteBook(0) returned nil error, want error")
	}
}

func TestClient_PingAndTransportFailure(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/test" {
			http.NotFound(w, r)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	c, err := NewClient(server.URL)
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}
	if err := c.Ping(context.Background()); err != nil {
		t.Fatalf("Ping returned error: %v", err)
	}

	// Closed server exercises the transport-failure path.
	server.Close()
	err = c.Ping(context.Background())
	if err == nil || !strings.Contains(err.Error(), "execute request") {
		t.Fatalf("Ping error = %v, want execute request error", err)
	}
}

func TestClient_ListBooksDecodeError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte("{not-json"))
	}))
	t.Cleanup(server.Close)

	c, err := NewClient(server.URL)
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}
	_, err = c.ListBooks(context.Background(), Query{})
	if err == nil || !strings.Contains(err.Error(), "decode response") {
		t.Fatalf("ListBooks error = %v, want decode response error", err)
	}
}
