package check_capacity

import (
	"github.com/m04kA/SMC-ReservationService/internal/api/handlers"
	checkCapacity "github.com/m04kA/SMC-ReservationService/internal/usecase/check_capacity"
)

// CheckCapacityRequest HTTP request model
type CheckCapacityRequest struct {
	Date   string `json:"date" validate:"required,datetime=2006-01-02"`
	Time   string `json:"time" validate:"required,hhmm"`
	People int    `json:"people" validate:"min=0,max=100"`
}

// AvailableCapacity поля присутствуют, только если соответствующее ограничение проверялось
type AvailableCapacity struct {
	MaxGroups       *int `json:"maxGroups,omitempty"`
	CurrentGroups   *int `json:"currentGroups,omitempty"`
	RemainingGroups *int `json:"remainingGroups,omitempty"`
	MaxPeople       *int `json:"maxPeople,omitempty"`
	CurrentPeople   *int `json:"currentPeople,omitempty"`
	RemainingPeople *int `json:"remainingPeople,omitempty"`
}

// CapacityDecisionResponse HTTP response model
type CapacityDecisionResponse struct {
	CanBook           bool              `json:"canBook"`
	Reason            string            `json:"reason"`
	AvailableCapacity AvailableCapacity `json:"availableCapacity"`
	AppliedRules      int               `json:"appliedRules"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CheckCapacityRequest) ToUseCaseRequest(storeID string) (*checkCapacity.Request, error) {
	date, err := handlers.ParseDate(r.Date)
	if err != nil {
		return nil, err
	}

	slot, err := handlers.ParseTime(r.Time)
	if err != nil {
		return nil, err
	}

	return &checkCapacity.Request{
		StoreID: storeID,
		Date:    date,
		Time:    slot,
		People:  r.People,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *checkCapacity.Response) *CapacityDecisionResponse {
	c := resp.AvailableCapacity
	return &CapacityDecisionResponse{
		CanBook: resp.CanBook,
		Reason:  resp.Reason,
		AvailableCapacity: AvailableCapacity{
			MaxGroups:       c.MaxGroups,
			CurrentGroups:   c.CurrentGroups,
			RemainingGroups: c.RemainingGroups,
			MaxPeople:       c.MaxPeople,
			CurrentPeople:   c.CurrentPeople,
			RemainingPeople: c.RemainingPeople,
		},
		AppliedRules: resp.AppliedRules,
	}
}
