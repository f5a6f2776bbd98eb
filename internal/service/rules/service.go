package rules

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	ruleRepo "github.com/m04kA/SMC-ReservationService/internal/infra/storage/rule"
	"github.com/m04kA/SMC-ReservationService/internal/service/rules/models"
)

// Service сервис управления правилами вместимости
type Service struct {
	ruleRepo RuleRepository
	logger   Logger
}

// NewService создает новый экземпляр сервиса правил
func NewService(ruleRepo RuleRepository, logger Logger) *Service {
	return &Service{
		ruleRepo: ruleRepo,
		logger:   logger,
	}
}

// List возвращает правила магазина в порядке их применения
func (s *Service) List(ctx context.Context, storeID string) (*models.RuleListResponse, error) {
	s.logger.Info("List: fetching rules for store=%s", storeID)

	if strings.TrimSpace(storeID) == "" {
		return nil, fmt.Errorf("%w: storeId is required", ErrInvalidInput)
	}

	list, err := s.ruleRepo.ListByStore(ctx, storeID)
	if err != nil {
		s.logger.Error("List: repository error for store=%s: %v", storeID, err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainRuleList(list), nil
}

// Create создает правило для магазина
func (s *Service) Create(ctx context.Context, storeID string, req *models.RuleRequest) (*models.RuleResponse, error) {
	s.logger.Info("Create: creating rule for store=%s, dateMode=%s, controlType=%s", storeID, req.DateMode, req.ControlType)

	rule, err := req.ToDomainRule(storeID)
	if err != nil {
		s.logger.Warn("Create: invalid request: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if err := validateRule(rule); err != nil {
		s.logger.Warn("Create: validation failed: %v", err)
		return nil, err
	}

	created, err := s.ruleRepo.Create(ctx, rule)
	if err != nil {
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: successfully created rule id=%d", created.ID)
	return models.FromDomainRule(created), nil
}

// Update полностью заменяет правило, магазин правила не меняется
func (s *Service) Update(ctx context.Context, id int64, req *models.RuleRequest) (*models.RuleResponse, error) {
	s.logger.Info("Update: updating rule id=%d", id)

	existing, err := s.get(ctx, "Update", id)
	if err != nil {
		return nil, err
	}

	rule, err := req.ToDomainRule(existing.StoreID)
	if err != nil {
		s.logger.Warn("Update: invalid request: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	rule.ID = existing.ID
	rule.CreatedAt = existing.CreatedAt

	if err := validateRule(rule); err != nil {
		s.logger.Warn("Update: validation failed: %v", err)
		return nil, err
	}

	updated, err := s.ruleRepo.Update(ctx, rule)
	if err != nil {
		if errors.Is(err, ruleRepo.ErrRuleNotFound) {
			return nil, ErrRuleNotFound
		}
		s.logger.Error("Update: repository error for rule id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Update: successfully updated rule id=%d", id)
	return models.FromDomainRule(updated), nil
}

// Delete удаляет правило
func (s *Service) Delete(ctx context.Context, id int64) error {
	s.logger.Info("Delete: deleting rule id=%d", id)

	if id <= 0 {
		return fmt.Errorf("%w: rule id must be positive", ErrInvalidInput)
	}

	if err := s.ruleRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, ruleRepo.ErrRuleNotFound) {
			s.logger.Warn("Delete: rule id=%d not found", id)
			return ErrRuleNotFound
		}
		s.logger.Error("Delete: repository error for rule id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: successfully deleted rule id=%d", id)
	return nil
}

func (s *Service) get(ctx context.Context, op string, id int64) (*domain.CapacityRule, error) {
	if id <= 0 {
		return nil, fmt.Errorf("%w: rule id must be positive", ErrInvalidInput)
	}

	rule, err := s.ruleRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, ruleRepo.ErrRuleNotFound) {
			s.logger.Warn("%s: rule id=%d not found", op, id)
			return nil, ErrRuleNotFound
		}
		s.logger.Error("%s: repository error for rule id=%d: %v", op, id, err)
		return nil, fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
	}
	return rule, nil
}
