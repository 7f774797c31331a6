package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/johannesE/2048/internal/game"
)

const (
	tileWidth  = 7
	tileHeight = 3
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("229"))

	hudStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245"))

	boardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)

	hintStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("117")).
			Italic(true)

	warnStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("209"))

	wonStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("46"))

	lostStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("196"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	emptyTileStyle = lipgloss.NewStyle().
			Width(tileWidth).
			Height(tileHeight).
			Align(lipgloss.Center, lipgloss.Center).
			Background(lipgloss.Color("236")).
			Foreground(lipgloss.Color("240"))
)

// tileColors follows the classic palette, warming up as values grow.
var tileColors = map[int]string{
	2:    "252",
	4:    "223",
	8:    "215",
	16:   "209",
	32:   "203",
	64:   "196",
	128:  "221",
	256:  "220",
	512:  "214",
	1024: "208",
	2048: "226",
}

// tileStyle returns the style for a tile value. Values beyond the
// palette reuse the goal color.
func tileStyle(v int) lipgloss.Style {
	color, ok := tileColors[v]
	if !ok {
		color = tileColors[2048]
	}

	fg := "235"
	if v >= 8 {
		fg = "231"
	}

	return lipgloss.NewStyle().
		Width(tileWidth).
		Height(tileHeight).
		Align(lipgloss.Center, lipgloss.Center).
		Bold(v >= 128).
		Background(lipgloss.Color(color)).
		Foreground(lipgloss.Color(fg))
}

// renderBoard draws the grid as styled tile blocks.
func renderBoard(b game.Board) string {
	rows := make([]string, b.Rows())
	for r, row := range b {
		cells := make([]string, len(row))
		for c, v := range row {
			if v == 0 {
				cells[c] = emptyTileStyle.Render("·")
			} else {
				cells[c] = tileStyle(v).Render(strconv.Itoa(v))
			}
		}
		rows[r] = lipgloss.JoinHorizontal(lipgloss.Top, cells...)
	}
	return boardStyle.Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

// View implements tea.Model.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}

	if m.scores != nil {
		content := m.scores.View()
		if m.width > 0 && m.height > 0 {
			return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
		}
		return content
	}

	var b strings.Builder

	b.WriteString(titleStyle.Render("2048"))
	b.WriteString("\n")
	b.WriteString(hudStyle.Render(fmt.Sprintf("Score %d   Best %d   Moves %d", m.session.Score(), m.best, m.session.Moves())))
	b.WriteString("\n\n")

	b.WriteString(renderBoard(m.session.Board()))
	b.WriteString("\n")

	b.WriteString(m.statusLine())
	b.WriteString("\n")
	b.WriteString(helpStyle.Render("arrows/wasd move · ? hint · t scores · r restart · q quit"))

	content := b.String()
	if m.width > 0 && m.height > 0 {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
	}
	return content
}

// statusLine renders the win/loss banner or the current hint state.
func (m GameModel) statusLine() string {
	switch m.session.Status() {
	case game.Won:
		return wonStyle.Render(fmt.Sprintf("You made %d! Press r to play again.", m.rules.Goal))
	case game.Lost:
		return lostStyle.Render("No moves left. Press r to try again.")
	}

	switch {
	case m.hintPending:
		return hintStyle.Render("Asking the advisor...")
	case m.hintErr != "":
		return warnStyle.Render(m.hintErr)
	case m.hint != nil:
		return hintStyle.Render(fmt.Sprintf("Advisor: %s - %s", m.hint.Direction, m.hint.Rationale))
	}
	return ""
}
