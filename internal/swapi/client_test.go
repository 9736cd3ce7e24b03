package swapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func TestParseBaseURL_DefaultsAndNormalizes(t *testing.T) {
	u, err := parseBaseURL("")
	if err != nil {
		t.Fatalf("parseBaseURL returned error: %v", err)
	}
	if u.String() != DefaultBaseURL {
		t.Fatalf("base = %q, want %q", u.String(), DefaultBaseURL)
	}

	u, err = parseBaseURL("example.com:1234/api?x=1#frag")
	if err != nil {
		t.Fatalf("parseBaseURL returned error: %v", err)
	}
	if u.Scheme != "https" {
		t.Fatalf("scheme = %q, want https", u.Scheme)
	}
	if u.Path != "/api/" || u.RawQuery != "" || u.Fragment != "" {
		t.Fatalf("url not normalized: %q", u.String())
	}
}

func TestParseBaseURL_RejectsMissingHost(t *testing.T) {
	if _, err := parseBaseURL("http://"); err == nil {
		t.Fatalf("parseBaseURL returned nil error, want missing host error")
	}
}

func TestClient_FetchFilmsAndCharacters(t *testing.T) {
	t.Parallel()

	var gotUserAgent string
	var server *httptest.Server
	server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUserAgent = r.Header.Get("User-Agent")
		w.Header().Set("Content-Type", "application/json")

		switch r.URL.Path {
		case "/api/films/":
			_ = json.NewEncoder(w).Encode(FilmListResponse{
				Count: 1,
				Results: []Film{{
					Title:       "A New Hope",
					ReleaseDate: "1977-05-25",
					Characters:  []string{server.URL + "/api/people/1/"},
				}},
			})
		case "/api/people/1/":
			_ = json.NewEncoder(w).Encode(Character{Name: "Luke Skywalker", Gender: "male", Height: "172"})
		case "/api/people/2/":
			_ = json.NewEncoder(w).Encode(Character{Name: "C-3PO", Gender: "n/a", Height: "167"})
		default:
			http.NotFound(w, r)
		}
	}))
	t.Cleanup(server.Close)

	c, err := NewClient(server.URL+"/api", 2*time.Second)
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	t.Cleanup(cancel)

	films, err := c.FetchFilms(ctx)
	if err != nil {
		t.Fatalf("FetchFilms returned error: %v", err)
	}
	if len(films) != 1 || films[0].Title != "A New Hope" {
		t.Fatalf("FetchFilms = %#v, want one film", films)
	}

	luke, err := c.FetchCharacter(ctx, films[0].Characters[0])
	if err != nil {
		t.Fatalf("FetchCharacter(absolute) returned error: %v", err)
	}
	if luke.Name != "Luke Skywalker" || luke.Height != "172" {
		t.Fatalf("FetchCharacter = %#v, want Luke", luke)
	}

	threepio, err := c.FetchCharacter(ctx, "people/2/")
	if err != nil {
		t.Fatalf("FetchCharacter(relative) returned error: %v", err)
	}
	if threepio.Name != "C-3PO" {
		t.Fatalf("FetchCharacter = %#v, want C-3PO", threepio)
	}

	if !strings.HasPrefix(gotUserAgent, "swcrawl/") {
		t.Fatalf("User-Agent = %q, want swcrawl/*", gotUserAgent)
	}
}

func TestClient_HTTPErrorAndDecodeError(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/films/":
			http.Error(w, "nope", http.StatusInternalServerError)
		case "/people/1/":
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte("{not-json"))
		default:
			http.NotFound(w, r)
		}
	}))
	t.Cleanup(server.Close)

	c, err := NewClient(server.URL, 0)
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}

	_, err = c.FetchFilms(context.Background())
	if err == nil || !strings.Contains(err.Error(), "returned status 500") {
		t.Fatalf("FetchFilms error = %v, want status 500 error", err)
	}

	_, err = c.FetchCharacter(context.Background(), "people/1/")
	if err == nil || !strings.Contains(err.Error(), "decode response") {
		t.Fatalf("FetchCharacter error = %v, want decode response error", err)
	}
}

func TestClient_FetchCharacterRequiresReference(t *testing.T) {
	c, err := NewClient("127.0.0.1:1", 0)
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}
	if _, err := c.FetchCharacter(context.Background(), "  "); err == nil {
		t.Fatalf("FetchCharacter returned nil error, want error")
	}
}

func TestClient_CancelledContextPropagates(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	t.Cleanup(server.Close)

	c, err := NewClient(server.URL, 0)
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = c.FetchFilms(ctx)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("FetchFilms error = %v, want context.Canceled", err)
	}
}
