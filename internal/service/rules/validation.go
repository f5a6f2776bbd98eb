package rules

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
)

// validateRule проверяет согласованность правила перед записью
func validateRule(rule *domain.CapacityRule) error {
	if strings.TrimSpace(rule.StoreID) == "" {
		return fmt.Errorf("%w: storeId is required", ErrInvalidInput)
	}

	if utf8.RuneCountInString(rule.Name) > domain.MaxRuleNameLength {
		return fmt.Errorf("%w: name exceeds %d characters", ErrInvalidInput, domain.MaxRuleNameLength)
	}

	if err := validateDates(rule); err != nil {
		return err
	}

	if err := rule.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid startTime: %v", ErrInvalidInput, err)
	}
	if err := rule.EndTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid endTime: %v", ErrInvalidInput, err)
	}
	if rule.StartTime.IsAfter(rule.EndTime) {
		return fmt.Errorf("%w: startTime must not be after endTime", ErrInvalidInput)
	}

	if err := validateLimits(rule); err != nil {
		return err
	}

	return nil
}

func validateDates(rule *domain.CapacityRule) error {
	switch rule.DateMode {
	case domain.DateModeSingle:
		if rule.Date == nil {
			return fmt.Errorf("%w: date is required for single mode", ErrInvalidInput)
		}
	case domain.DateModeRange:
		if rule.StartDate == nil || rule.EndDate == nil {
			return fmt.Errorf("%w: startDate and endDate are required for range mode", ErrInvalidInput)
		}
		if rule.StartDate.Format(domain.DateFormat) > rule.EndDate.Format(domain.DateFormat) {
			return fmt.Errorf("%w: startDate must not be after endDate", ErrInvalidInput)
		}
	case domain.DateModeWeekly:
		if rule.Weekday == nil {
			return fmt.Errorf("%w: weekday is required for weekly mode", ErrInvalidInput)
		}
		if *rule.Weekday < 0 || *rule.Weekday > 6 {
			return fmt.Errorf("%w: weekday must be between 0 and 6", ErrInvalidInput)
		}
	default:
		return fmt.Errorf("%w: unknown dateMode %q", ErrInvalidInput, rule.DateMode)
	}
	return nil
}

func validateLimits(rule *domain.CapacityRule) error {
	limits := []struct {
		name  string
		value *int
	}{
		{"maxGroups", rule.MaxGroups},
		{"maxPeople", rule.MaxPeople},
		{"maxPerGroup", rule.MaxPerGroup},
	}
	for _, l := range limits {
		if l.value != nil && (*l.value <= 0 || *l.value > domain.MaxRuleLimit) {
			return fmt.Errorf("%w: %s must be between 1 and %d", ErrInvalidInput, l.name, domain.MaxRuleLimit)
		}
	}

	hasGroups, hasPeople := rule.MaxGroups != nil, rule.MaxPeople != nil
	if !hasGroups && !hasPeople && rule.MaxPerGroup == nil {
		return fmt.Errorf("%w: at least one of maxGroups, maxPeople, maxPerGroup is required", ErrInvalidInput)
	}

	// controlType называет лимиты, которые обязаны быть заданы; остальные лимиты допустимы.
	// Правило только с maxPerGroup не ограничивает ни группы, ни гостей слота
	perGroupOnly := !hasGroups && !hasPeople

	switch rule.ControlType {
	case domain.ControlGroups:
		if !hasGroups && !perGroupOnly {
			return fmt.Errorf("%w: controlType groups requires maxGroups", ErrInvalidInput)
		}
	case domain.ControlPeople:
		if !hasPeople && !perGroupOnly {
			return fmt.Errorf("%w: controlType people requires maxPeople", ErrInvalidInput)
		}
	case domain.ControlBoth:
		if (!hasGroups || !hasPeople) && !perGroupOnly {
			return fmt.Errorf("%w: controlType both requires maxGroups and maxPeople", ErrInvalidInput)
		}
	default:
		return fmt.Errorf("%w: unknown controlType %q", ErrInvalidInput, rule.ControlType)
	}
	return nil
}
