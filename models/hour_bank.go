package models

// HourBank is a client's purchased/consumed time allowance as reported by
// the API. It is fetched as a whole and never mutated locally; the domain
// store only admits a payload whose Available field is consistent with
// Total and Used.
type HourBank struct {
	// Plan is the purchased plan name (basic, standard, premium).
	Plan string `json:"plan"`

	// Total is the number of hours purchased with the plan.
	Total int `json:"total"`

	// Used is the number of hours already consumed by completed work.
	Used int `json:"used"`

	// Available is the server-derived remainder. The invariant
	// Available == Total - Used must hold for the value to be accepted
	// into client state.
	Available int `json:"available"`

	// CompletedTasks is the number of tasks finished against this bank.
	CompletedTasks int `json:"completedTasks"`

	// DetailedHours breaks the consumed hours down per completed task.
	DetailedHours []HourDetail `json:"detailedHours"`
}

// HourDetail is one line of the hour-bank consumption breakdown.
type HourDetail struct {
	Task           string `json:"task"`
	HoursSpent     int    `json:"hoursSpent"`
	CompletionDate string `json:"completionDate"`
}

// Consistent reports whether the server-derived Available field matches
// Total - Used.
func (b HourBank) Consistent() bool {
	return b.Available == b.Total-b.Used
}
