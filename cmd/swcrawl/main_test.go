package main

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/five82/swcrawl/internal/state"
)

const filmsJSON = `{"count": 2, "next": null, "results": [
  {"title": "The Empire Strikes Back", "episode_id": 5, "director": "Irvin Kershner", "release_date": "1980-05-17", "characters": ["people/1/"]},
  {"title": "A New Hope", "episode_id": 4, "director": "George Lucas", "release_date": "1977-05-25", "characters": ["people/2/", "people/1/"]}
]}`

func newTestAPI(t *testing.T, failing string) {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case failing:
			http.Error(w, "boom", http.StatusInternalServerError)
		case "/api/films/":
			_, _ = fmt.Fprint(w, filmsJSON)
		case "/api/people/1/":
			_, _ = fmt.Fprint(w, `{"name": "Luke Skywalker", "gender": "male", "height": "172"}`)
		case "/api/people/2/":
			_, _ = fmt.Fprint(w, `{"name": "C-3PO", "gender": "n/a", "height": "167"}`)
		default:
			http.NotFound(w, r)
		}
	}))
	t.Cleanup(srv.Close)
	t.Setenv("SWCRAWL_API_BASE", srv.URL+"/api/")
}

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	configPath := filepath.Join(t.TempDir(), "missing.toml")
	cmd := newRootCommand()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(append(args, "--config", configPath))
	err := cmd.ExecuteContext(context.Background())
	return out.String(), errOut.String(), err
}

func TestRootRequiresTerminal(t *testing.T) {
	orig := isTerminal
	isTerminal = func() bool { return false }
	t.Cleanup(func() { isTerminal = orig })

	_, _, err := execute(t)
	if !errors.Is(err, errNoTerminal) {
		t.Fatalf("root error = %v, want errNoTerminal", err)
	}
}

func TestFilmsCommand(t *testing.T) {
	newTestAPI(t, "")

	out, stderr, err := execute(t, "films")
	if err != nil {
		t.Fatalf("films returned error: %v", err)
	}
	first := strings.Index(out, "A New Hope")
	second := strings.Index(out, "The Empire Strikes Back")
	if first < 0 || second < 0 || first > second {
		t.Fatalf("films not listed in release order:\n%s", out)
	}
	if !strings.Contains(out, "George Lucas") {
		t.Fatalf("films output missing director:\n%s", out)
	}
	if !strings.Contains(stderr, "film catalog loaded") {
		t.Fatalf("stderr missing log line: %q", stderr)
	}
}

func TestFilmsCommand_Failure(t *testing.T) {
	newTestAPI(t, "/api/films/")

	_, _, err := execute(t, "films")
	if !errors.Is(err, state.ErrFilmsLoad) {
		t.Fatalf("films error = %v, want ErrFilmsLoad", err)
	}
}

func TestCharactersCommand(t *testing.T) {
	newTestAPI(t, "")

	out, _, err := execute(t, "characters", "1", "--ordered")
	if err != nil {
		t.Fatalf("characters returned error: %v", err)
	}
	for _, want := range []string{"A New Hope (1977)", "Total: 2", "Sum: 339cm (11ft/12in)"} {
		if !strings.Contains(out, want) {
			t.Fatalf("output missing %q:\n%s", want, out)
		}
	}
	c3po := strings.Index(out, "C-3PO")
	luke := strings.Index(out, "Luke Skywalker")
	if c3po < 0 || luke < 0 || c3po > luke {
		t.Fatalf("--ordered did not keep movie order:\n%s", out)
	}
}

func TestCharactersCommand_PartialFailure(t *testing.T) {
	newTestAPI(t, "/api/people/2/")

	out, _, err := execute(t, "characters", "A New Hope")
	if !errors.Is(err, state.ErrCharactersLoad) {
		t.Fatalf("characters error = %v, want ErrCharactersLoad", err)
	}
	if !strings.Contains(out, "A New Hope (1977)") || !strings.Contains(out, "Total:") {
		t.Fatalf("partial report not printed:\n%s", out)
	}
}

func TestCharactersCommand_UnknownFilm(t *testing.T) {
	newTestAPI(t, "")

	out, _, err := execute(t, "characters", "Return of the Jedi")
	if err == nil || !strings.Contains(err.Error(), "no film titled") {
		t.Fatalf("characters error = %v, want unknown film", err)
	}
	if out != "" {
		t.Fatalf("unexpected output for unknown film:\n%s", out)
	}
}

func TestRenderTable(t *testing.T) {
	out := renderTable(
		[]string{"Name", "Height"},
		[][]string{{"R2-D2", "96"}, {"Yoda"}},
		[]columnAlignment{alignLeft, alignRight},
		[]string{"Total: 2", "Sum: 96cm (3ft/15in)"},
	)
	for _, want := range []string{"R2-D2", "Yoda", "Total: 2", "Sum: 96cm (3ft/15in)"} {
		if !strings.Contains(out, want) {
			t.Fatalf("table missing %q:\n%s", want, out)
		}
	}
	if renderTable(nil, nil, nil, nil) != "" {
		t.Fatalf("renderTable with no headers should be empty")
	}
}
