package domain

import (
	"time"

	"github.com/m04kA/SMC-ReservationService/pkg/types"
)

// DateMode selects how a capacity rule matches dates
type DateMode string

const (
	DateModeSingle DateMode = "single"
	DateModeRange  DateMode = "range"
	DateModeWeekly DateMode = "weekly"
)

// ControlType declares which limits the rule is meant to control
type ControlType string

const (
	ControlGroups ControlType = "groups"
	ControlPeople ControlType = "people"
	ControlBoth   ControlType = "both"
)

// Dimension is a single limit a rule can enforce
type Dimension string

const (
	DimensionGroups   Dimension = "groups"
	DimensionPeople   Dimension = "people"
	DimensionPerGroup Dimension = "per_group"
)

// CapacityRule limits reservations inside a date/time window of a store
//
// Exactly one of Date, StartDate/EndDate, Weekday is meaningful depending on
// DateMode. Limits are nil when not controlled.
type CapacityRule struct {
	ID        int64
	StoreID   string
	Name      string
	DateMode  DateMode
	Date      *time.Time
	StartDate *time.Time
	EndDate   *time.Time
	Weekday   *int // 0 = Sunday
	StartTime types.TimeString
	EndTime   types.TimeString

	ControlType ControlType
	MaxGroups   *int
	MaxPeople   *int
	MaxPerGroup *int

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Dimensions returns the limits this rule enforces, in evaluation order
func (r *CapacityRule) Dimensions() []Dimension {
	dims := make([]Dimension, 0, 3)
	if r.MaxGroups != nil {
		dims = append(dims, DimensionGroups)
	}
	if r.MaxPeople != nil {
		dims = append(dims, DimensionPeople)
	}
	if r.MaxPerGroup != nil {
		dims = append(dims, DimensionPerGroup)
	}
	return dims
}

// Controls returns true if the rule enforces the given dimension
func (r *CapacityRule) Controls(d Dimension) bool {
	for _, dim := range r.Dimensions() {
		if dim == d {
			return true
		}
	}
	return false
}

// DefaultControlType derives the control type from the limits that are set
// A rule with only maxPerGroup is reported as groups
func (r *CapacityRule) DefaultControlType() ControlType {
	switch {
	case r.MaxGroups != nil && r.MaxPeople != nil:
		return ControlBoth
	case r.MaxPeople != nil:
		return ControlPeople
	default:
		return ControlGroups
	}
}
