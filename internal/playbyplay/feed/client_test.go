package feed

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/radieske/nba-playbyplay-service/internal/shared/metrics"
)

const sampleDocument = `{
  "meta": {"version": 1},
  "game": {
    "gameId": "0022000180",
    "actions": [
      {"actionNumber": 1, "period": 1, "actionType": "period", "subType": "start", "scoreHome": "0", "scoreAway": "0"},
      {"actionNumber": 7, "period": 1, "teamTricode": "BOS", "playerName": "Brown", "actionType": "2pt",
       "shotResult": "Made", "scoreHome": "2", "scoreAway": "0", "pointsTotal": 2},
      null,
      {"actionNumber": 9, "period": 4, "actionType": "game", "subType": "end", "scoreHome": "102", "scoreAway": "98"}
    ]
  }
}`

func newTestClient(t *testing.T, h http.HandlerFunc) (*Client, prometheus.Gatherer) {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	reg := prometheus.NewRegistry()
	return New(srv.URL+"/", 2*time.Second, nil, metrics.NewRecorder(reg)), reg
}

func TestActionsDecodesTypedRecords(t *testing.T) {
	var gotPath, gotReferer string
	c, reg := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotReferer = r.Header.Get("Referer")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(sampleDocument))
	})

	actions, err := c.Actions(context.Background(), "0022000180")
	if err != nil {
		t.Fatalf("Actions: %v", err)
	}
	if gotPath != "/playbyplay_0022000180.json" {
		t.Errorf("unexpected path %q", gotPath)
	}
	if gotReferer != referer {
		t.Errorf("expected referer header, got %q", gotReferer)
	}
	if len(actions) != 4 {
		t.Fatalf("expected 4 records, got %d", len(actions))
	}
	if actions[2] != nil {
		t.Errorf("expected null record to decode as nil")
	}
	shot := actions[1]
	if tri, ok := shot.Tricode(); !ok || tri != "BOS" {
		t.Errorf("expected BOS, got %q", tri)
	}
	if h, ok := shot.ScoreHome.Get(); !ok || h != 2 {
		t.Errorf("expected string score decoded to 2, got %d", h)
	}
	if p, ok := shot.PointsTotal.Get(); !ok || p != 2 {
		t.Errorf("expected pointsTotal 2, got %d", p)
	}
	if n, _ := testutil.GatherAndCount(reg, "playbyplay_feed_fetch_total"); n != 1 {
		t.Errorf("expected one fetch series, got %d", n)
	}
}

func TestFetchNonSuccessStatus(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "AccessDenied", http.StatusForbidden)
	})
	_, err := c.Actions(context.Background(), "1")
	if !errors.Is(err, ErrUpstream) {
		t.Fatalf("expected ErrUpstream, got %v", err)
	}
}

func TestFetchMalformedPayload(t *testing.T) {
	for name, body := range map[string]string{
		"not json":   `<html>oops</html>`,
		"bad score":  `{"game":{"actions":[{"scoreHome":"two"}]}}`,
		"bad player": `{"game":{"actions":[{"playerName":42}]}}`,
	} {
		t.Run(name, func(t *testing.T) {
			c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(body))
			})
			if _, err := c.Actions(context.Background(), "1"); !errors.Is(err, ErrMalformed) {
				t.Fatalf("expected ErrMalformed, got %v", err)
			}
		})
	}
}

func TestFetchMissingActionsIsEmpty(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"game":{"gameId":"1"}}`))
	})
	actions, err := c.Actions(context.Background(), "1")
	if err != nil {
		t.Fatalf("Actions: %v", err)
	}
	if len(actions) != 0 {
		t.Fatalf("expected no actions, got %d", len(actions))
	}
}

func TestFetchRejectsEmptyGameID(t *testing.T) {
	c := New("http://127.0.0.1:1", time.Second, nil, nil)
	if _, err := c.Actions(context.Background(), " "); !errors.Is(err, ErrInvalidGameID) {
		t.Fatalf("expected ErrInvalidGameID, got %v", err)
	}
}

func TestFetchUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	base := srv.URL
	srv.Close()

	c := New(base, time.Second, nil, nil)
	if _, err := c.Actions(context.Background(), "1"); !errors.Is(err, ErrUpstream) {
		t.Fatalf("expected ErrUpstream, got %v", err)
	}
}

func TestDocumentURLEscapesGameID(t *testing.T) {
	c := New("https://cdn.nba.com/static/json/liveData/playbyplay", time.Second, nil, nil)
	got := c.DocumentURL("00/22")
	want := "https://cdn.nba.com/static/json/liveData/playbyplay/playbyplay_00%2F22.json"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}
