package stats

// Outcome classifies a match from the tracked team's perspective.
type Outcome string

const (
	OutcomeWin     Outcome = "W"
	OutcomeDraw    Outcome = "D"
	OutcomeLoss    Outcome = "L"
	OutcomePending Outcome = "PENDING"
)

// Classify is total over all (int|nil, int|nil) pairs. Either side missing
// means the match has no definitive scoreline yet.
func Classify(tracked, opponent *int) Outcome {
	if tracked == nil || opponent == nil {
		return OutcomePending
	}
	switch {
	case *tracked > *opponent:
		return OutcomeWin
	case *tracked < *opponent:
		return OutcomeLoss
	default:
		return OutcomeDraw
	}
}
