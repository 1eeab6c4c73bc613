package slack

import (
	"fmt"
	"strings"

	"github.com/Dmorales2498/Entes-Stats/internal/roster"
	"github.com/Dmorales2498/Entes-Stats/internal/stats"
	"github.com/slack-go/slack"
)

// formatResultNotification creates the Slack message for a recorded scoreline using Block Kit.
func (s *Notifier) formatResultNotification(match *roster.Match, summary stats.MatchSummary, record stats.TeamRecord) slack.Message {
	blocks := make([]slack.Block, 0)

	var headline string
	switch summary.Outcome {
	case stats.OutcomeWin:
		headline = fmt.Sprintf("⚽ %s won! ⚽", s.teamName)
	case stats.OutcomeDraw:
		headline = fmt.Sprintf("⚽ %s drew ⚽", s.teamName)
	case stats.OutcomeLoss:
		headline = fmt.Sprintf("⚽ %s lost ⚽", s.teamName)
	default:
		headline = "⚽ Match scheduled ⚽"
	}
	blocks = append(blocks, slack.NewHeaderBlock(slack.NewTextBlockObject("plain_text", headline, true, false)))

	opponent := summary.Opponent
	if opponent == "" {
		opponent = "---"
	}
	venue := "away"
	if match.IsHome {
		venue = "at home"
	}
	details := fmt.Sprintf("%s vs %s (%s)", match.Date, opponent, venue)
	if summary.TrackedGoals != nil && summary.OpponentGoals != nil {
		details += fmt.Sprintf("\n%s %d - %d %s", s.teamName, *summary.TrackedGoals, *summary.OpponentGoals, opponent)
	}
	blocks = append(blocks, slack.NewSectionBlock(slack.NewTextBlockObject("plain_text", details, false, false), nil, nil))

	recordText := fmt.Sprintf("Season so far: %dW %dD %dL, %d pts", record.Wins, record.Draws, record.Losses, record.Points)
	blocks = append(blocks, slack.NewContextBlock("", slack.NewTextBlockObject("plain_text", recordText, false, false)))

	return slack.NewBlockMessage(blocks...)
}

// formatLeaderboard creates the Slack message for a ranking using Block Kit.
func (s *Notifier) formatLeaderboard(metric stats.Metric, entries []stats.RankingEntry) slack.Message {
	blocks := make([]slack.Block, 0)

	headerText := slack.NewTextBlockObject("plain_text", fmt.Sprintf("🏆 Top %s 🏆", metric), true, false)
	blocks = append(blocks, slack.NewHeaderBlock(headerText))

	if len(entries) == 0 {
		blocks = append(blocks, slack.NewSectionBlock(slack.NewTextBlockObject("plain_text", "No stats recorded yet.", false, false), nil, nil))
		return slack.NewBlockMessage(blocks...)
	}

	var rows []string
	for i, entry := range entries {
		rows = append(rows, fmt.Sprintf("%d. %s: %d", i+1, entry.PlayerName, entry.Value))
	}
	blocks = append(blocks, slack.NewSectionBlock(slack.NewTextBlockObject("plain_text", strings.Join(rows, "\n"), false, false), nil, nil))

	return slack.NewBlockMessage(blocks...)
}

// formatTeamRecord creates the Slack message for the running team record.
func (s *Notifier) formatTeamRecord(record stats.TeamRecord) slack.Message {
	blocks := make([]slack.Block, 0)

	headerText := slack.NewTextBlockObject("plain_text", fmt.Sprintf("📊 %s record 📊", s.teamName), true, false)
	blocks = append(blocks, slack.NewHeaderBlock(headerText))

	body := fmt.Sprintf(
		"Played: %d\nWins: %d  Draws: %d  Losses: %d\nGoals: %d for / %d against (diff %+d)\nPoints: %d",
		record.Played, record.Wins, record.Draws, record.Losses,
		record.GoalsFor, record.GoalsAgainst, record.GoalDiff, record.Points,
	)
	blocks = append(blocks, slack.NewSectionBlock(slack.NewTextBlockObject("plain_text", body, false, false), nil, nil))

	return slack.NewBlockMessage(blocks...)
}
