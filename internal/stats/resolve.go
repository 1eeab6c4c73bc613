package stats

import "github.com/Dmorales2498/Entes-Stats/internal/roster"

// ResolveScoreline maps a match's stored home/away scores onto the tracked
// team's perspective. When IsHome is true the tracked side is the home
// scoreline, otherwise the away one.
//
// A lone score on a partial record still passes through per the IsHome rule
// with the other side nil; callers must treat either side being nil as "no
// definitive scoreline", not only both.
func ResolveScoreline(m roster.Match) (tracked, opponent *int) {
	if m.HomeScore == nil && m.AwayScore == nil {
		return nil, nil
	}
	if m.IsHome {
		return m.HomeScore, m.AwayScore
	}
	return m.AwayScore, m.HomeScore
}
