package domain

import "time"

// Seat is a bookable resource (table, counter, room)
type Seat struct {
	ID           int64
	StoreID      string
	Name         string
	Capacity     int // max party size
	IsActive     bool
	IsLocked     bool // manually disabled by staff
	DisplayOrder int
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// IsEligibleFor returns true if the seat may be assigned to a party of the given size
func (s *Seat) IsEligibleFor(people int) bool {
	return s.IsActive && !s.IsLocked && s.Capacity >= people
}

// SeatFilter фильтр выборки мест
type SeatFilter struct {
	StoreID       string
	MinCapacity   int     // 0 = без ограничения
	OnlyAvailable bool    // только активные и незаблокированные
	ExcludeIDs    []int64 // занятые места
}
