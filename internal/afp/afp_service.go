package afp

import (
	"context"
	"database/sql"
	"time"

	afperrors "go-payroll/internal/afp/errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var maxDiscount = decimal.NewFromInt(100)

type Service interface {
	Create(ctx context.Context, req CreateAFPRequest) (AFPResponse, error)
	GetAll(ctx context.Context) ([]AFPResponse, error)
	GetByID(ctx context.Context, id string) (AFPResponse, error)
	Update(ctx context.Context, id string, req UpdateAFPRequest) (AFPResponse, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	db   *sql.DB
	repo Repository
}

func NewService(db *sql.DB, repo Repository) Service {
	return &service{db: db, repo: repo}
}

func validateDiscount(d decimal.Decimal) error {
	if d.IsNegative() || d.GreaterThan(maxDiscount) {
		return afperrors.ErrInvalidDiscount
	}
	return nil
}

func (s *service) Create(ctx context.Context, req CreateAFPRequest) (AFPResponse, error) {
	if err := validateDiscount(req.Discount); err != nil {
		return AFPResponse{}, err
	}

	a := &AFP{
		ID:       uuid.New(),
		Name:     req.Name,
		Discount: req.Discount,
	}

	if err := s.repo.Create(ctx, a); err != nil {
		return AFPResponse{}, mapRepositoryError(err)
	}

	return mapToResponse(*a), nil
}

func (s *service) GetAll(ctx context.Context) ([]AFPResponse, error) {
	afps, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, mapRepositoryError(err)
	}

	return mapToListResponse(afps), nil
}

func (s *service) GetByID(ctx context.Context, id string) (AFPResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return AFPResponse{}, afperrors.ErrAFPNotFound
	}

	a, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return AFPResponse{}, mapRepositoryError(err)
	}

	return mapToResponse(*a), nil
}

func (s *service) Update(ctx context.Context, id string, req UpdateAFPRequest) (AFPResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return AFPResponse{}, afperrors.ErrAFPNotFound
	}
	if req.Discount != nil {
		if err := validateDiscount(*req.Discount); err != nil {
			return AFPResponse{}, err
		}
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return AFPResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	a, err := qtx.FindByID(ctx, id)
	if err != nil {
		return AFPResponse{}, mapRepositoryError(err)
	}

	if req.Name != nil {
		a.Name = *req.Name
	}
	if req.Discount != nil {
		a.Discount = *req.Discount
	}

	if err := qtx.Update(ctx, a); err != nil {
		return AFPResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		return AFPResponse{}, err
	}

	return mapToResponse(*a), nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return afperrors.ErrAFPNotFound
	}

	return mapRepositoryError(s.repo.Delete(ctx, id))
}

func mapToResponse(a AFP) AFPResponse {
	return AFPResponse{
		ID:        a.ID.String(),
		Name:      a.Name,
		Discount:  a.Discount,
		CreatedAt: a.CreatedAt.Format(time.RFC3339),
		UpdatedAt: a.UpdatedAt.Format(time.RFC3339),
	}
}

func mapToListResponse(afps []AFP) []AFPResponse {
	res := make([]AFPResponse, len(afps))
	for i, a := range afps {
		res[i] = mapToResponse(a)
	}
	return res
}
