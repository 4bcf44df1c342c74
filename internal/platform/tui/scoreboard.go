package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/block-games/internal/registry"
	"github.com/vovakirdan/block-games/internal/storage"
)

// maxScores is the number of rounds listed per minigame.
const maxScores = 5

var (
	scoreTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("229"))
	scoreStatsStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245"))
	scoreEmptyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true)
	scoreBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)
)

// RenderScoreboard renders the top rounds of every registered minigame.
// It is printed after the program leaves the alternate screen.
func RenderScoreboard(store *storage.Store) (string, error) {
	stats, err := store.AllGamesStats()
	if err != nil {
		return "", fmt.Errorf("scoreboard: %w", err)
	}

	var sections []string
	for _, g := range registry.List() {
		scores, err := store.TopScores(g.ID, maxScores)
		if err != nil {
			return "", fmt.Errorf("scoreboard: %w", err)
		}
		sections = append(sections, renderGameScores(g.Title, stats[g.ID], scores))
	}
	return lipgloss.JoinVertical(lipgloss.Left, sections...), nil
}

func renderGameScores(title string, stats *storage.GameStats, scores []storage.ScoreEntry) string {
	var b strings.Builder
	b.WriteString(scoreTitleStyle.Render("HIGH SCORES - " + title))
	b.WriteString("\n")
	if stats != nil {
		b.WriteString(scoreStatsStyle.Render(statsLine(stats)))
		b.WriteString("\n")
	}

	if len(scores) == 0 {
		b.WriteString(scoreEmptyStyle.Render("No rounds finished this session."))
		return scoreBoxStyle.Render(b.String())
	}

	rows := make([]table.Row, len(scores))
	for i, s := range scores {
		level := "-"
		if s.Level > 0 {
			level = strconv.Itoa(s.Level)
		}
		rows[i] = table.Row{
			fmt.Sprintf("#%d", i+1),
			strconv.Itoa(s.Score),
			level,
			s.CreatedAt.Format("15:04:05"),
		}
	}

	t := table.New(
		table.WithColumns([]table.Column{
			{Title: "Rank", Width: 6},
			{Title: "Score", Width: 8},
			{Title: "Level", Width: 6},
			{Title: "Time", Width: 10},
		}),
		table.WithRows(rows),
		table.WithHeight(len(rows)+1),
	)
	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = lipgloss.NewStyle()
	t.SetStyles(s)

	b.WriteString(t.View())
	return scoreBoxStyle.Render(b.String())
}

// statsLine summarizes every round of one minigame.
func statsLine(gs *storage.GameStats) string {
	line := fmt.Sprintf("Rounds: %d  Best: %d  Avg: %.1f", gs.Rounds, gs.HighScore, gs.AvgScore)
	if gs.BestLevel > 0 {
		line += fmt.Sprintf("  Best level: %d", gs.BestLevel)
	}
	return line
}
