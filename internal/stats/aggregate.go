package stats

import "github.com/Dmorales2498/Entes-Stats/internal/roster"

// PlayerTotals aggregates every stat entry for one player.
//
// AppearancesCount is the number of stat rows credited to the player, not the
// sum of the optional appearances field; that sum is exposed separately as
// AppearancesSum. Rankings and the totals report use AppearancesCount.
type PlayerTotals struct {
	Goals            int `json:"goals"`
	Assists          int `json:"assists"`
	Contributions    int `json:"contributions"`
	AppearancesCount int `json:"appearances_count"`
	AppearancesSum   int `json:"appearances_sum"`
}

// TeamRecord is the tracked team's W/D/L record over a set of matches.
// Pending matches are invisible: they contribute to no counter at all.
type TeamRecord struct {
	Played       int `json:"played"`
	Wins         int `json:"wins"`
	Draws        int `json:"draws"`
	Losses       int `json:"losses"`
	GoalsFor     int `json:"goals_for"`
	GoalsAgainst int `json:"goals_against"`
	GoalDiff     int `json:"goal_diff"`
	Points       int `json:"points"`
}

// Totals sums goals and assists over all of the player's stat entries and
// counts the rows. A player with no entries gets all zeros, never an error.
func (e *Engine) Totals(playerID int64) (PlayerTotals, error) {
	entries, err := e.store.ListStatsForPlayer(playerID)
	if err != nil {
		return PlayerTotals{}, err
	}
	return reduceTotals(entries), nil
}

func reduceTotals(entries []roster.StatEntry) PlayerTotals {
	var t PlayerTotals
	for _, entry := range entries {
		t.Goals += entry.Goals
		t.Assists += entry.Assists
		t.AppearancesCount++
		if entry.Appearances != nil {
			t.AppearancesSum += *entry.Appearances
		}
	}
	t.Contributions = t.Goals + t.Assists
	return t
}

// TeamRecord reduces every match in range to the tracked team's record using
// standard 3-1-0 scoring. The range is inclusive on both ends.
func (e *Engine) TeamRecord(r roster.DateRange) (TeamRecord, error) {
	matches, err := e.store.ListMatches(r)
	if err != nil {
		return TeamRecord{}, err
	}

	var rec TeamRecord
	for _, m := range matches {
		tracked, opponent := ResolveScoreline(m)
		outcome := Classify(tracked, opponent)
		if outcome == OutcomePending {
			continue
		}
		rec.Played++
		rec.GoalsFor += *tracked
		rec.GoalsAgainst += *opponent
		switch outcome {
		case OutcomeWin:
			rec.Wins++
		case OutcomeDraw:
			rec.Draws++
		case OutcomeLoss:
			rec.Losses++
		}
	}
	rec.GoalDiff = rec.GoalsFor - rec.GoalsAgainst
	rec.Points = rec.Wins*3 + rec.Draws
	return rec, nil
}
