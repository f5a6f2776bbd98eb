package check_capacity

import (
	"time"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	"github.com/m04kA/SMC-ReservationService/pkg/types"
)

// IsApplicable решает, действует ли правило в слоте (date, slot)
// Даты сравниваются как строки YYYY-MM-DD, время как HH:MM, без перевода часовых поясов
func IsApplicable(rule *domain.CapacityRule, date time.Time, slot types.TimeString) bool {
	if !matchesDate(rule, date) {
		return false
	}
	// Окно включает обе границы
	return slot.Between(rule.StartTime, rule.EndTime)
}

func matchesDate(rule *domain.CapacityRule, date time.Time) bool {
	day := date.Format(domain.DateFormat)

	switch rule.DateMode {
	case domain.DateModeSingle:
		return rule.Date != nil && rule.Date.Format(domain.DateFormat) == day
	case domain.DateModeRange:
		if rule.StartDate == nil || rule.EndDate == nil {
			return false
		}
		return rule.StartDate.Format(domain.DateFormat) <= day && day <= rule.EndDate.Format(domain.DateFormat)
	case domain.DateModeWeekly:
		return rule.Weekday != nil && int(date.Weekday()) == *rule.Weekday
	default:
		return false
	}
}

// applicableRules оставляет правила, действующие в слоте, сохраняя исходный порядок
func applicableRules(rules []*domain.CapacityRule, date time.Time, slot types.TimeString) []*domain.CapacityRule {
	applicable := make([]*domain.CapacityRule, 0, len(rules))
	for _, rule := range rules {
		if IsApplicable(rule, date, slot) {
			applicable = append(applicable, rule)
		}
	}
	return applicable
}
