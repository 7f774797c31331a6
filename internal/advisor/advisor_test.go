package advisor

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/johannesE/2048/internal/game"
)

func chatServer(t *testing.T, content string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/chat/completions" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer test-key" {
			t.Errorf("Authorization = %q", got)
		}

		var req chatRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("cannot decode request: %v", err)
		}

		fmt.Fprintf(w, `{"choices":[{"message":{"role":"assistant","content":%q}}]}`, content)
	}))
}

func testBoard() game.Board {
	return game.Board{
		{0, 8, 2, 2},
		{4, 2, 0, 2},
		{0, 0, 0, 0},
		{0, 0, 0, 2},
	}
}

func TestSuggest(t *testing.T) {
	srv := chatServer(t, `{"direction":"left","rationale":"keeps the big tiles in one corner"}`)
	defer srv.Close()

	c := New(Config{BaseURL: srv.URL, APIKey: "test-key"})
	got, err := c.Suggest(context.Background(), testBoard())
	if err != nil {
		t.Fatalf("Suggest error: %v", err)
	}
	if got.Direction != game.Left {
		t.Errorf("Direction = %v, want left", got.Direction)
	}
	if got.Rationale == "" {
		t.Error("Rationale should carry the model's explanation")
	}
}

func TestSuggestFencedAnswer(t *testing.T) {
	srv := chatServer(t, "```json\n{\"direction\":\"down\",\"rationale\":\"builds the bottom row\"}\n```")
	defer srv.Close()

	c := New(Config{BaseURL: srv.URL, APIKey: "test-key"})
	got, err := c.Suggest(context.Background(), testBoard())
	if err != nil {
		t.Fatalf("Suggest error: %v", err)
	}
	if got.Direction != game.Down {
		t.Errorf("Direction = %v, want down", got.Direction)
	}
}

func TestSuggestRejectsUnknownDirection(t *testing.T) {
	srv := chatServer(t, `{"direction":"diagonal","rationale":"?"}`)
	defer srv.Close()

	c := New(Config{BaseURL: srv.URL, APIKey: "test-key"})
	_, err := c.Suggest(context.Background(), testBoard())
	if !errors.Is(err, ErrBadResponse) {
		t.Errorf("error = %v, want ErrBadResponse", err)
	}
}

func TestSuggestRejectsProse(t *testing.T) {
	srv := chatServer(t, "I would move left here.")
	defer srv.Close()

	c := New(Config{BaseURL: srv.URL, APIKey: "test-key"})
	_, err := c.Suggest(context.Background(), testBoard())
	if !errors.Is(err, ErrBadResponse) {
		t.Errorf("error = %v, want ErrBadResponse", err)
	}
}

func TestSuggestWithoutKey(t *testing.T) {
	c := New(Config{})
	if c.Ready() {
		t.Error("client without a key should not report ready")
	}
	_, err := c.Suggest(context.Background(), testBoard())
	if !errors.Is(err, ErrNoAPIKey) {
		t.Errorf("error = %v, want ErrNoAPIKey", err)
	}
}

func TestSuggestServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "overloaded", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	c := New(Config{BaseURL: srv.URL, APIKey: "test-key"})
	_, err := c.Suggest(context.Background(), testBoard())
	if !errors.Is(err, ErrUnavailable) {
		t.Errorf("error = %v, want ErrUnavailable", err)
	}
}

func TestSuggestHonorsContext(t *testing.T) {
	block := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		<-block
	}))
	defer srv.Close()
	defer close(block)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	c := New(Config{BaseURL: srv.URL, APIKey: "test-key"})
	_, err := c.Suggest(ctx, testBoard())
	if !errors.Is(err, ErrUnavailable) {
		t.Errorf("error = %v, want ErrUnavailable", err)
	}
}

func TestSuggestRejectsMalformedBoard(t *testing.T) {
	c := New(Config{APIKey: "test-key"})
	_, err := c.Suggest(context.Background(), game.Board{{3}})
	if !errors.Is(err, game.ErrMalformedBoard) {
		t.Errorf("error = %v, want ErrMalformedBoard", err)
	}
}

func TestBoardSnapshotNullables(t *testing.T) {
	snap, err := json.Marshal(boardSnapshot(game.Board{{0, 2}, {4, 0}}))
	if err != nil {
		t.Fatalf("marshal error: %v", err)
	}
	want := `[[null,2],[4,null]]`
	if string(snap) != want {
		t.Errorf("snapshot = %s, want %s", snap, want)
	}
}
