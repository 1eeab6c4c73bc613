package stats

import (
	"sort"

	"github.com/Dmorales2498/Entes-Stats/internal/roster"
)

// MatchSummary is one match from the tracked team's perspective.
type MatchSummary struct {
	MatchID       int64   `json:"match_id"`
	Date          string  `json:"date"`
	Opponent      string  `json:"opponent,omitempty"`
	IsHome        bool    `json:"is_home"`
	TrackedGoals  *int    `json:"tracked_goals"`
	OpponentGoals *int    `json:"opponent_goals"`
	Outcome       Outcome `json:"outcome"`
}

// Summarize folds one match into the tracked team's perspective.
func Summarize(m roster.Match) MatchSummary {
	tracked, opponent := ResolveScoreline(m)
	s := MatchSummary{
		MatchID:       m.ID,
		Date:          m.Date,
		IsHome:        m.IsHome,
		TrackedGoals:  tracked,
		OpponentGoals: opponent,
		Outcome:       Classify(tracked, opponent),
	}
	if m.Opponent != nil {
		s.Opponent = *m.Opponent
	}
	return s
}

// MatchHistory lists matches most-recent-first. Same-date matches keep their
// insertion order (ascending id). A limit <= 0 returns all rows. Pending
// matches are included here; only the team record hides them.
func (e *Engine) MatchHistory(r roster.DateRange, limit int) ([]MatchSummary, error) {
	matches, err := e.store.ListMatches(r)
	if err != nil {
		return nil, err
	}

	summaries := make([]MatchSummary, 0, len(matches))
	for _, m := range matches {
		summaries = append(summaries, Summarize(m))
	}

	sort.Slice(summaries, func(i, j int) bool {
		if summaries[i].Date != summaries[j].Date {
			return summaries[i].Date > summaries[j].Date
		}
		return summaries[i].MatchID < summaries[j].MatchID
	})

	if limit > 0 && limit < len(summaries) {
		summaries = summaries[:limit]
	}
	return summaries, nil
}
