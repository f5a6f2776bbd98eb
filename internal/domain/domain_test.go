package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func intPtr(v int) *int { return &v }

func TestCapacityRule_Dimensions(t *testing.T) {
	tests := []struct {
		name string
		rule CapacityRule
		want []Dimension
	}{
		{name: "none", rule: CapacityRule{}, want: []Dimension{}},
		{name: "groups only", rule: CapacityRule{MaxGroups: intPtr(10)}, want: []Dimension{DimensionGroups}},
		{
			name: "all in evaluation order",
			rule: CapacityRule{MaxPerGroup: intPtr(8), MaxPeople: intPtr(40), MaxGroups: intPtr(10)},
			want: []Dimension{DimensionGroups, DimensionPeople, DimensionPerGroup},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.rule.Dimensions())
		})
	}
}

func TestCapacityRule_Controls(t *testing.T) {
	rule := CapacityRule{MaxPeople: intPtr(40)}

	assert.True(t, rule.Controls(DimensionPeople))
	assert.False(t, rule.Controls(DimensionGroups))
}

func TestSeat_IsEligibleFor(t *testing.T) {
	seat := Seat{Capacity: 4, IsActive: true}

	assert.True(t, seat.IsEligibleFor(4))
	assert.True(t, seat.IsEligibleFor(1))
	assert.False(t, seat.IsEligibleFor(5))

	seat.IsLocked = true
	assert.False(t, seat.IsEligibleFor(2))

	seat.IsLocked, seat.IsActive = false, false
	assert.False(t, seat.IsEligibleFor(2))
}

func TestReservation_Status(t *testing.T) {
	r := Reservation{Status: StatusConfirmed}
	assert.False(t, r.IsCancelled())
	assert.True(t, r.CanBeCancelled())

	r.Status = StatusCancelled
	assert.True(t, r.IsCancelled())
	assert.False(t, r.CanBeCancelled())
}
