// Package tui provides the Bubble Tea interface for the game: local
// play, the scoreboard screen, and SSH serving via Wish.
package tui

import (
	"context"
	"math/rand"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/johannesE/2048/internal/advisor"
	"github.com/johannesE/2048/internal/config"
	"github.com/johannesE/2048/internal/game"
	"github.com/johannesE/2048/internal/storage"
)

// hintMsg carries the outcome of an advisory request back into Update.
type hintMsg struct {
	suggestion advisor.Suggestion
	err        error
}

// GameModel runs one interactive game.
type GameModel struct {
	cfg     config.Config
	rules   game.Rules
	session *game.Session
	store   *storage.Store
	adv     *advisor.Client
	keys    *KeyMapper

	player  string
	seed    int64
	started time.Time

	width  int
	height int

	hint        *advisor.Suggestion
	hintErr     string
	hintPending bool

	// scores, when non-nil, overlays the high-score table on the game.
	scores *ScoreboardModel

	best     int
	saved    bool
	quitting bool
}

// rulesFromConfig maps the board configuration onto engine rules.
func rulesFromConfig(cfg config.Config) game.Rules {
	return game.Rules{
		Rows:     cfg.Board.Rows,
		Cols:     cfg.Board.Cols,
		Goal:     cfg.Board.Goal,
		FourProb: cfg.Board.FourProb,
		MinStart: cfg.Board.MinStartTiles,
	}
}

// NewGameModel creates a game model. A zero seed is replaced with the
// current time. The store may be nil; play then runs without
// persistence. The player name tags saved results (SSH username).
func NewGameModel(cfg config.Config, store *storage.Store, player string, seed int64, width, height int) GameModel {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	rules := rulesFromConfig(cfg)
	m := GameModel{
		cfg:     cfg,
		rules:   rules,
		session: game.NewSession(rules, rand.New(rand.NewSource(seed))),
		store:   store,
		adv:     advisor.New(advisor.Config{
			BaseURL: cfg.Advisor.BaseURL,
			Model:   cfg.Advisor.Model,
			APIKey:  cfg.Advisor.APIKey,
			Timeout: cfg.Advisor.Timeout(),
		}),
		keys:    NewKeyMapper(),
		player:  player,
		seed:    seed,
		started: time.Now(),
		width:   width,
		height:  height,
	}

	if store != nil {
		if high, err := store.HighScore(); err == nil {
			m.best = high
		}
	}
	return m
}

// Init implements tea.Model.
func (m GameModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if m.scores != nil {
			sb, cmd := m.scores.Update(msg)
			if next, ok := sb.(ScoreboardModel); ok {
				m.scores = &next
			}
			return m, cmd
		}
		return m, nil
	case hintMsg:
		m.hintPending = false
		if msg.err != nil {
			// Advisory failures never touch gameplay; show and move on.
			m.hint = nil
			m.hintErr = shortError(msg.err)
		} else {
			s := msg.suggestion
			m.hint = &s
			m.hintErr = ""
		}
		return m, nil
	}
	return m, nil
}

func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.scores != nil {
		return m.handleScoreboardKey(msg)
	}

	action, dir := m.keys.Map(msg)

	switch action {
	case ActionQuit, ActionBack:
		m.saveResult("quit")
		m.quitting = true
		return m, tea.Quit

	case ActionScores:
		sb := NewScoreboardModel(m.store, m.width, m.height)
		m.scores = &sb
		return m, nil

	case ActionRestart:
		if m.session.Status() != game.Playing {
			return m.restart()
		}
		return m, nil

	case ActionHint:
		if m.hintPending || m.session.Status() != game.Playing {
			return m, nil
		}
		if !m.adv.Ready() {
			m.hintErr = "no API key configured (run `2048 set-key`)"
			return m, nil
		}
		m.hintPending = true
		m.hintErr = ""
		return m, m.requestHint()

	case ActionMove:
		changed, err := m.session.Move(dir)
		if err != nil {
			// Unreachable with mapper-produced directions.
			m.hintErr = shortError(err)
			return m, nil
		}
		if changed {
			// The board moved on, any displayed hint is stale.
			m.hint = nil
			m.hintErr = ""
		}
		if m.session.Status() != game.Playing {
			m.saveResult(string(m.session.Status()))
		}
		return m, nil
	}

	return m, nil
}

// handleScoreboardKey routes keys while the score overlay is open.
// The overlay claims up/down for scrolling, so the game's mapper is
// bypassed until it closes.
func (m GameModel) handleScoreboardKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "t", "b", "esc":
		m.scores = nil
		return m, nil
	case "q", "ctrl+c":
		m.saveResult("quit")
		m.quitting = true
		return m, tea.Quit
	}

	sb := *m.scores
	var cmd tea.Cmd
	sb.table, cmd = sb.table.Update(msg)
	m.scores = &sb
	return m, cmd
}

// restart begins a fresh game with a new time-based seed.
func (m GameModel) restart() (tea.Model, tea.Cmd) {
	seed := time.Now().UnixNano()
	m.session = game.NewSession(m.rules, rand.New(rand.NewSource(seed)))
	m.seed = seed
	m.started = time.Now()
	m.hint = nil
	m.hintErr = ""
	m.hintPending = false
	m.saved = false
	return m, nil
}

// requestHint queries the advisor off the UI loop. The snapshot is
// taken now; gameplay continues regardless of how the call goes.
func (m GameModel) requestHint() tea.Cmd {
	board := m.session.Board()
	client := m.adv
	timeout := m.cfg.Advisor.Timeout()

	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		s, err := client.Suggest(ctx, board)
		return hintMsg{suggestion: s, err: err}
	}
}

// saveResult persists the game once, best-effort.
func (m *GameModel) saveResult(outcome string) {
	if m.saved || m.store == nil || m.session.Moves() == 0 {
		return
	}
	m.saved = true

	if m.session.Score() > m.best {
		m.best = m.session.Score()
	}

	//nolint:errcheck // Best-effort save
	m.store.SaveResult(storage.Result{
		Player:   m.player,
		Score:    m.session.Score(),
		MaxTile:  m.session.Board().MaxTile(),
		Moves:    m.session.Moves(),
		Outcome:  outcome,
		Duration: int(time.Since(m.started).Seconds()),
	})
}

// IsQuitting reports whether the user asked to leave.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// shortError trims an error for the status line.
func shortError(err error) string {
	s := err.Error()
	const maxLen = 70
	if len(s) > maxLen {
		s = s[:maxLen-3] + "..."
	}
	return s
}

// Run plays one interactive game in the local terminal.
func Run(cfg config.Config, store *storage.Store, seed int64, width, height int) error {
	model := NewGameModel(cfg, store, "", seed, width, height)

	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
