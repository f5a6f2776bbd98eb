package models

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	"github.com/m04kA/SMC-ReservationService/pkg/types"
)

// Request модели

// RuleRequest запрос на создание или полную замену правила
type RuleRequest struct {
	Name        string  `json:"name"`
	DateMode    string  `json:"dateMode"`            // single | range | weekly
	Date        *string `json:"date,omitempty"`      // "2025-09-09" для single
	StartDate   *string `json:"startDate,omitempty"` // для range
	EndDate     *string `json:"endDate,omitempty"`   // для range
	Weekday     *int    `json:"weekday,omitempty"`   // 0 = воскресенье, для weekly
	StartTime   string  `json:"startTime"`           // "18:00"
	EndTime     string  `json:"endTime"`             // "21:00"
	ControlType string  `json:"controlType"`         // groups | people | both, пусто = по лимитам
	MaxGroups   *int    `json:"maxGroups,omitempty"`
	MaxPeople   *int    `json:"maxPeople,omitempty"`
	MaxPerGroup *int    `json:"maxPerGroup,omitempty"`
}

// ToDomainRule конвертирует request в domain правило
// Поля, не относящиеся к выбранному dateMode, отбрасываются
func (r *RuleRequest) ToDomainRule(storeID string) (*domain.CapacityRule, error) {
	rule := &domain.CapacityRule{
		StoreID:     storeID,
		Name:        r.Name,
		DateMode:    domain.DateMode(r.DateMode),
		StartTime:   types.TimeString(r.StartTime),
		EndTime:     types.TimeString(r.EndTime),
		ControlType: domain.ControlType(r.ControlType),
		MaxGroups:   r.MaxGroups,
		MaxPeople:   r.MaxPeople,
		MaxPerGroup: r.MaxPerGroup,
	}

	var err error
	switch rule.DateMode {
	case domain.DateModeSingle:
		if rule.Date, err = parseDate("date", r.Date); err != nil {
			return nil, err
		}
	case domain.DateModeRange:
		if rule.StartDate, err = parseDate("startDate", r.StartDate); err != nil {
			return nil, err
		}
		if rule.EndDate, err = parseDate("endDate", r.EndDate); err != nil {
			return nil, err
		}
	case domain.DateModeWeekly:
		rule.Weekday = r.Weekday
	}

	// controlType необязателен и выводится из заданных лимитов
	if rule.ControlType == "" {
		rule.ControlType = rule.DefaultControlType()
	}

	return rule, nil
}

func parseDate(field string, value *string) (*time.Time, error) {
	if value == nil {
		return nil, nil
	}
	parsed, err := time.Parse(domain.DateFormat, *value)
	if err != nil {
		return nil, fmt.Errorf("%s must be YYYY-MM-DD: %v", field, err)
	}
	return &parsed, nil
}

// Response модели

// RuleResponse ответ с данными правила
type RuleResponse struct {
	ID          int64     `json:"id"`
	StoreID     string    `json:"storeId"`
	Name        string    `json:"name"`
	DateMode    string    `json:"dateMode"`
	Date        *string   `json:"date,omitempty"`
	StartDate   *string   `json:"startDate,omitempty"`
	EndDate     *string   `json:"endDate,omitempty"`
	Weekday     *int      `json:"weekday,omitempty"`
	StartTime   string    `json:"startTime"`
	EndTime     string    `json:"endTime"`
	ControlType string    `json:"controlType"`
	MaxGroups   *int      `json:"maxGroups,omitempty"`
	MaxPeople   *int      `json:"maxPeople,omitempty"`
	MaxPerGroup *int      `json:"maxPerGroup,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// RuleListResponse ответ со списком правил
type RuleListResponse struct {
	Rules []RuleResponse `json:"rules"`
	Total int            `json:"total"`
}

// FromDomainRule конвертирует domain.CapacityRule в RuleResponse
func FromDomainRule(r *domain.CapacityRule) *RuleResponse {
	return &RuleResponse{
		ID:          r.ID,
		StoreID:     r.StoreID,
		Name:        r.Name,
		DateMode:    string(r.DateMode),
		Date:        formatDate(r.Date),
		StartDate:   formatDate(r.StartDate),
		EndDate:     formatDate(r.EndDate),
		Weekday:     r.Weekday,
		StartTime:   r.StartTime.String(),
		EndTime:     r.EndTime.String(),
		ControlType: string(r.ControlType),
		MaxGroups:   r.MaxGroups,
		MaxPeople:   r.MaxPeople,
		MaxPerGroup: r.MaxPerGroup,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}

// FromDomainRuleList конвертирует список правил, сохраняя порядок
func FromDomainRuleList(list []*domain.CapacityRule) *RuleListResponse {
	out := make([]RuleResponse, 0, len(list))
	for _, r := range list {
		out = append(out, *FromDomainRule(r))
	}
	return &RuleListResponse{Rules: out, Total: len(out)}
}

func formatDate(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(domain.DateFormat)
	return &s
}
