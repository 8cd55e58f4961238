package model

// AllTimeKey is the period key of the unbounded window.
const AllTimeKey = 0

// PeriodDefinition is one named trailing window. Days == 0 means all-time.
type PeriodDefinition struct {
	Key   int
	Days  int
	Label string
}

// IsAllTime reports whether the window is unbounded.
func (p PeriodDefinition) IsAllTime() bool {
	return p.Days == 0
}

// PeriodDefinitions is the fixed window table evaluated on every run.
var PeriodDefinitions = []PeriodDefinition{
	{Key: 1, Days: 1, Label: "Last 24 Hours"},
	{Key: 3, Days: 3, Label: "Last 3 Days"},
	{Key: 7, Days: 7, Label: "Last 7 Days"},
	{Key: 30, Days: 30, Label: "Last 30 Days"},
	{Key: 180, Days: 180, Label: "Last 6 Months"},
	{Key: 365, Days: 365, Label: "Last Year"},
	{Key: AllTimeKey, Days: 0, Label: "All Time"},
}
