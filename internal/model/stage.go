package model

// Stage is a stage of personal finance. Users advance by meeting the
// criteria for their current stage; the stage is always derived from
// the current numbers.
type Stage int

const (
	// StageSurvival: spending meets or exceeds income.
	StageSurvival Stage = iota
	// StageStability: positive excess income, building the emergency
	// fund and working the needs-to-excess ratio down to 2-to-1.
	StageStability
	// StageDebtPayoff: stable footing, clearing high-interest debt.
	StageDebtPayoff
	// StageIndependence: investing excess toward passive income.
	StageIndependence
)

var stageNames = [...]string{
	"Survival",
	"Stability",
	"Debt Payoff",
	"Independence",
}

var stageDescriptions = [...]string{
	"Get income above spending",
	"Build the buffer: 6-month emergency fund, 2:1 needs to excess",
	"Clear high-interest debt",
	"Grow the portfolio toward your passive income goal",
}

func (s Stage) String() string {
	if s < 0 || int(s) >= len(stageNames) {
		return "Unknown"
	}
	return stageNames[s]
}

// Description is a one-line summary of what the stage is about.
func (s Stage) Description() string {
	if s < 0 || int(s) >= len(stageDescriptions) {
		return ""
	}
	return stageDescriptions[s]
}
