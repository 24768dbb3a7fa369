package golf

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"log/slog"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestHoles(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/holes", r.URL.Path)
		fmt.Fprint(w, `[{"id":"quine","name":"Quine","category":"Classic"},{"id":"fizz-buzz","name":"Fizz Buzz","category":"Classic"}]`)
	}))
	defer srv.Close()

	holes, err := NewClient(testLogger(), srv.URL).Holes(context.Background())
	require.NoError(t, err)
	require.Len(t, holes, 2)
	require.Equal(t, "quine", holes[0].ID)
	require.Equal(t, "Fizz Buzz", holes[1].Name)
}

func TestSolutionLogRetriesFlakyResponses(t *testing.T) {
	var mu sync.Mutex
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/solutions-log", r.URL.Path)
		require.Equal(t, "quine", r.URL.Query().Get("hole"))
		require.Equal(t, "rust", r.URL.Query().Get("lang"))

		mu.Lock()
		calls++
		flaky := calls <= 2
		mu.Unlock()
		if flaky {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		fmt.Fprint(w, `[{"golfer":"acotis","hole":"quine","lang":"rust","scoring":"bytes","bytes":45,"chars":40,"submitted":"2021-01-01T00:00:00Z"}]`)
	}))
	defer srv.Close()

	solutions, err := NewClient(testLogger(), srv.URL).SolutionLog(context.Background(), "quine", "rust")
	require.NoError(t, err)
	require.Len(t, solutions, 1)
	require.Equal(t, "acotis", solutions[0].Golfer)
	require.Equal(t, 45, solutions[0].Bytes)
	require.Equal(t, 3, calls)
}

func TestSolutionLogGivesUpAfterTenAttempts(t *testing.T) {
	var mu sync.Mutex
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		calls++
		mu.Unlock()
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	_, err := NewClient(testLogger(), srv.URL).SolutionLog(context.Background(), "quine", "rust")
	require.Error(t, err)
	require.Contains(t, err.Error(), `"quine"`)
	require.Equal(t, 10, calls)
}

func TestSolutionLogMalformedPayloadIsFatal(t *testing.T) {
	var mu sync.Mutex
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		calls++
		mu.Unlock()
		fmt.Fprint(w, `{"not":"a list"`)
	}))
	defer srv.Close()

	_, err := NewClient(testLogger(), srv.URL).SolutionLog(context.Background(), "quine", "rust")
	require.Error(t, err)
	require.Contains(t, err.Error(), "parse")
	require.Equal(t, 1, calls, "a parse error must not be retried")
}

func TestAllSolutionLogs(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hole := r.URL.Query().Get("hole")
		fmt.Fprintf(w, `[{"golfer":"acotis","hole":%q,"scoring":"bytes","bytes":10,"submitted":"2021-01-01T00:00:00Z"}]`, hole)
	}))
	defer srv.Close()

	holes := []Hole{
		{ID: "quine", Name: "Quine"},
		{ID: "fizz-buzz", Name: "Fizz Buzz"},
		{ID: "catalan-numbers", Name: "Catalan Numbers"},
	}
	logs, err := NewClient(testLogger(), srv.URL).AllSolutionLogs(context.Background(), holes, "rust")
	require.NoError(t, err)
	require.Len(t, logs, 3)
	for i, h := range holes {
		require.Equal(t, h.ID, logs[i].HoleID, "logs must come back in hole order")
		require.Equal(t, h.Name, logs[i].HoleName)
		require.Len(t, logs[i].Solutions, 1)
		require.Equal(t, h.ID, logs[i].Solutions[0].Hole)
	}
}

func TestAllSolutionLogsFailsTheWholeRun(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("hole") == "fizz-buzz" {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		fmt.Fprint(w, `[]`)
	}))
	defer srv.Close()

	holes := []Hole{{ID: "quine"}, {ID: "fizz-buzz"}}
	_, err := NewClient(testLogger(), srv.URL).AllSolutionLogs(context.Background(), holes, "rust")
	require.Error(t, err)
	require.Contains(t, err.Error(), "fizz-buzz")
}
