package domain

// Defaults
const (
	DefaultPeople = 1
)

// Business validation constants
const (
	MaxPeoplePerReservation = 100
	MaxRuleLimit            = 10000
	MaxNotesLength          = 500
	MaxCustomerNameLength   = 100
	MaxRuleNameLength       = 100
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Denial reasons shown to the customer as-is
const (
	ReasonGroupsFull       = "この時間帯は満席です（最大%d組）"
	ReasonPeopleExceeded   = "この時間帯は人数制限を超えています（最大%d人）"
	ReasonPerGroupExceeded = "1組の最大人数は%d人までです"
)
