package domain

// AvailableCapacity snapshot of the evaluated limits
// Fields are nil for dimensions that were not evaluated
type AvailableCapacity struct {
	MaxGroups       *int
	CurrentGroups   *int
	RemainingGroups *int
	MaxPeople       *int
	CurrentPeople   *int
	RemainingPeople *int
}

// CapacityDecision is the result of a capacity evaluation
type CapacityDecision struct {
	CanBook           bool
	Reason            string // empty when admitted
	AvailableCapacity AvailableCapacity
	AppliedRules      int
}

// SlotBookings current totals at a single slot
type SlotBookings struct {
	Groups int
	People int
}
