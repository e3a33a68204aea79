package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-pong/internal/storage"
)

// maxResults is the number of recent matches shown on the title screen.
const maxResults = 5

// ResultsSource is the part of the ledger the results table reads.
type ResultsSource interface {
	RecentMatches(limit int) ([]storage.MatchEntry, error)
	Standings() (storage.Standings, error)
}

// Results shows the session ledger on the title screen.
type Results struct {
	source    ResultsSource
	table     table.Model
	standings storage.Standings
	rows      int
	err       error
}

// NewResults creates a results table reading from source. A nil source
// renders nothing.
func NewResults(source ResultsSource) *Results {
	r := &Results{source: source}
	r.table = r.createTable()
	return r
}

func (r *Results) createTable() table.Model {
	columns := []table.Column{
		{Title: "#", Width: 4},
		{Title: "Winner", Width: 8},
		{Title: "Score", Width: 7},
		{Title: "Time", Width: 8},
		{Title: "Finished", Width: 9},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(false),
		table.WithHeight(maxResults+1),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Cell
	t.SetStyles(s)
	return t
}

// Refresh reloads matches and standings from the ledger.
func (r *Results) Refresh() {
	if r.source == nil {
		return
	}

	matches, err := r.source.RecentMatches(maxResults)
	if err != nil {
		r.err = err
		return
	}
	standings, err := r.source.Standings()
	if err != nil {
		r.err = err
		return
	}
	r.err = nil
	r.standings = standings

	rows := make([]table.Row, len(matches))
	for i, m := range matches {
		rows[i] = table.Row{
			fmt.Sprintf("%d", m.ID),
			m.Winner,
			fmt.Sprintf("%d-%d", m.LeftScore, m.RightScore),
			m.Duration.Round(100 * time.Millisecond).String(),
			m.CreatedAt.Format("15:04:05"),
		}
	}
	r.rows = len(rows)
	r.table.SetRows(rows)
	r.table.GotoTop()
}

// View renders the standings line and the recent matches.
func (r *Results) View() string {
	if r.source == nil {
		return ""
	}
	muted := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	if r.err != nil {
		return muted.Render("results unavailable: " + r.err.Error())
	}
	if r.rows == 0 {
		return ""
	}

	header := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229")).Render(
		fmt.Sprintf("Session: %d matches  Left %d  Right %d",
			r.standings.Matches, r.standings.LeftWins, r.standings.RightWins),
	)
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
	return box.Render(lipgloss.JoinVertical(lipgloss.Left, header, r.table.View()))
}
