// Package advisor queries an OpenAI-compatible chat endpoint for a
// suggested 2048 move. It is a thin collaborator around the game core:
// it receives a board snapshot, returns a direction plus a rationale,
// and validates that the service answered inside the four-direction
// enumeration. Failures are reported as errors and must never block or
// alter gameplay; the caller decides how to surface them.
package advisor

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/johannesE/2048/internal/game"
)

const (
	// DefaultBaseURL is the OpenAI API endpoint.
	DefaultBaseURL = "https://api.openai.com/v1"

	// DefaultModel is a small, cheap model; a move hint does not need more.
	DefaultModel = "gpt-4o-mini"

	// DefaultTimeout bounds one advisory round trip.
	DefaultTimeout = 15 * time.Second
)

var (
	// ErrNoAPIKey means the client was never given a credential.
	ErrNoAPIKey = errors.New("advisor: no API key configured")

	// ErrUnavailable wraps transport and server-side failures.
	ErrUnavailable = errors.New("advisor: service unavailable")

	// ErrBadResponse means the service answered outside the contract,
	// including a direction outside {left, right, up, down}. Such a
	// suggestion is rejected, never forwarded as a move.
	ErrBadResponse = errors.New("advisor: malformed response")
)

const systemPrompt = `You are a 2048 assistant. The user sends the current ` +
	`board as JSON rows, null meaning an empty cell. Respond with a single ` +
	`JSON object {"direction": "...", "rationale": "..."} where direction is ` +
	`exactly one of "left", "right", "up", "down". No other text.`

// Suggestion is the advisory answer: one direction from the closed
// enumeration and a free-text rationale.
type Suggestion struct {
	Direction game.Direction
	Rationale string
}

// Config holds the client settings.
type Config struct {
	BaseURL string
	Model   string
	APIKey  string
	Timeout time.Duration
}

// Client talks to the advisory service.
type Client struct {
	cfg  Config
	http *http.Client
}

// New creates a client, filling unset fields with defaults.
func New(cfg Config) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Model == "" {
		cfg.Model = DefaultModel
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	return &Client{
		cfg:  cfg,
		http: &http.Client{Timeout: cfg.Timeout},
	}
}

// Ready reports whether the client has a credential to work with.
func (c *Client) Ready() bool {
	return c.cfg.APIKey != ""
}

// chat endpoint wire types, trimmed to the fields used.
type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

type suggestionPayload struct {
	Direction string `json:"direction"`
	Rationale string `json:"rationale"`
}

// Suggest sends the board snapshot and returns the suggested move.
// The board rows are serialized as nullable integers, null for empty.
func (c *Client) Suggest(ctx context.Context, board game.Board) (Suggestion, error) {
	if !c.Ready() {
		return Suggestion{}, ErrNoAPIKey
	}
	if err := board.Validate(); err != nil {
		return Suggestion{}, err
	}

	snapshot, err := json.Marshal(boardSnapshot(board))
	if err != nil {
		return Suggestion{}, fmt.Errorf("advisor: cannot encode board: %w", err)
	}

	reqBody, err := json.Marshal(chatRequest{
		Model: c.cfg.Model,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: string(snapshot)},
		},
	})
	if err != nil {
		return Suggestion{}, fmt.Errorf("advisor: cannot encode request: %w", err)
	}

	url := strings.TrimRight(c.cfg.BaseURL, "/") + "/chat/completions"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(reqBody))
	if err != nil {
		return Suggestion{}, fmt.Errorf("advisor: cannot build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)

	resp, err := c.http.Do(req)
	if err != nil {
		return Suggestion{}, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return Suggestion{}, fmt.Errorf("%w: status %d: %s", ErrUnavailable, resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var chat chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&chat); err != nil {
		return Suggestion{}, fmt.Errorf("%w: %v", ErrBadResponse, err)
	}
	if len(chat.Choices) == 0 {
		return Suggestion{}, fmt.Errorf("%w: no choices", ErrBadResponse)
	}

	return parseSuggestion(chat.Choices[0].Message.Content)
}

// parseSuggestion decodes the model's answer and enforces the closed
// direction enumeration.
func parseSuggestion(content string) (Suggestion, error) {
	var payload suggestionPayload
	if err := json.Unmarshal([]byte(extractJSON(content)), &payload); err != nil {
		return Suggestion{}, fmt.Errorf("%w: %v", ErrBadResponse, err)
	}

	dir, err := game.ParseDirection(strings.ToLower(strings.TrimSpace(payload.Direction)))
	if err != nil {
		return Suggestion{}, fmt.Errorf("%w: direction %q", ErrBadResponse, payload.Direction)
	}

	return Suggestion{Direction: dir, Rationale: payload.Rationale}, nil
}

// extractJSON pulls the first {...} object out of the content, since
// chat models occasionally wrap answers in code fences or prose.
func extractJSON(content string) string {
	start := strings.Index(content, "{")
	end := strings.LastIndex(content, "}")
	if start < 0 || end <= start {
		return content
	}
	return content[start : end+1]
}

// boardSnapshot converts a board into rows of nullable integers.
func boardSnapshot(b game.Board) [][]*int {
	rows := make([][]*int, b.Rows())
	for r, row := range b {
		rows[r] = make([]*int, len(row))
		for c := range row {
			if row[c] != 0 {
				v := row[c]
				rows[r][c] = &v
			}
		}
	}
	return rows
}
