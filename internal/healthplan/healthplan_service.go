package healthplan

import (
	"context"
	"database/sql"
	"time"

	healthplanerrors "go-payroll/internal/healthplan/errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type Service interface {
	Create(ctx context.Context, req CreateHealthPlanRequest) (HealthPlanResponse, error)
	GetAll(ctx context.Context, filter GetHealthPlansFilterRequest) ([]HealthPlanResponse, error)
	GetByID(ctx context.Context, id string) (HealthPlanResponse, error)
	Update(ctx context.Context, id string, req UpdateHealthPlanRequest) (HealthPlanResponse, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	db     *sql.DB
	repo   Repository
	logger *zap.Logger
}

func NewService(db *sql.DB, repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("healthplan.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("healthplan.service")
	}
	return &service{db: db, repo: repo, logger: l}
}

func validatePlan(planType string, discount decimal.Decimal) error {
	if planType != TypeFonasa && planType != TypeIsapre {
		return healthplanerrors.ErrInvalidType
	}
	if discount.IsNegative() || discount.GreaterThan(decimal.NewFromInt(100)) {
		return healthplanerrors.ErrInvalidDiscount
	}
	return nil
}

func (s *service) Create(ctx context.Context, req CreateHealthPlanRequest) (HealthPlanResponse, error) {
	if err := validatePlan(req.Type, req.Discount); err != nil {
		return HealthPlanResponse{}, err
	}

	hp := &HealthPlan{
		ID:       uuid.New(),
		Type:     req.Type,
		Name:     req.Name,
		Discount: req.Discount,
	}
	if err := s.repo.Create(ctx, hp); err != nil {
		return HealthPlanResponse{}, mapRepositoryError(err)
	}

	s.logger.Info("health plan created",
		zap.String("health_plan_id", hp.ID.String()),
		zap.String("type", hp.Type),
		zap.String("discount", hp.Discount.String()),
	)

	return mapToResponse(*hp), nil
}

func (s *service) GetAll(ctx context.Context, filter GetHealthPlansFilterRequest) ([]HealthPlanResponse, error) {
	plans, err := s.repo.FindAll(ctx, filter.Type)
	if err != nil {
		return nil, mapRepositoryError(err)
	}

	res := make([]HealthPlanResponse, len(plans))
	for i, hp := range plans {
		res[i] = mapToResponse(hp)
	}
	return res, nil
}

func (s *service) GetByID(ctx context.Context, id string) (HealthPlanResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return HealthPlanResponse{}, healthplanerrors.ErrHealthPlanNotFound
	}

	hp, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return HealthPlanResponse{}, mapRepositoryError(err)
	}
	return mapToResponse(*hp), nil
}

func (s *service) Update(ctx context.Context, id string, req UpdateHealthPlanRequest) (HealthPlanResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return HealthPlanResponse{}, healthplanerrors.ErrHealthPlanNotFound
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return HealthPlanResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	hp, err := qtx.FindByID(ctx, id)
	if err != nil {
		return HealthPlanResponse{}, mapRepositoryError(err)
	}

	if req.Type != nil {
		hp.Type = *req.Type
	}
	if req.Name != nil {
		hp.Name = *req.Name
	}
	if req.Discount != nil {
		hp.Discount = *req.Discount
	}
	if err := validatePlan(hp.Type, hp.Discount); err != nil {
		return HealthPlanResponse{}, err
	}

	if err := qtx.Update(ctx, hp); err != nil {
		return HealthPlanResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		return HealthPlanResponse{}, err
	}

	return mapToResponse(*hp), nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return healthplanerrors.ErrHealthPlanNotFound
	}
	return mapRepositoryError(s.repo.Delete(ctx, id))
}

func mapToResponse(hp HealthPlan) HealthPlanResponse {
	return HealthPlanResponse{
		ID:        hp.ID.String(),
		Type:      hp.Type,
		Name:      hp.Name,
		Discount:  hp.Discount,
		CreatedAt: hp.CreatedAt.Format(time.RFC3339),
		UpdatedAt: hp.UpdatedAt.Format(time.RFC3339),
	}
}
