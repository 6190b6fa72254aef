package healthplan

import (
	"context"
	"database/sql"

	"gorm.io/gorm"
)

type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, hp *HealthPlan) error
	FindAll(ctx context.Context, planType string) ([]HealthPlan, error)
	FindByID(ctx context.Context, id string) (*HealthPlan, error)
	Update(ctx context.Context, hp *HealthPlan) error
	Delete(ctx context.Context, id string) error
}

type repository struct {
	db *gorm.DB
	tx *sql.Tx
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{db: r.db, tx: tx}
}

func (r *repository) conn(ctx context.Context) *gorm.DB {
	db := r.db.WithContext(ctx)
	if r.tx != nil {
		db.Statement.ConnPool = r.tx
	}
	return db
}

func (r *repository) Create(ctx context.Context, hp *HealthPlan) error {
	return r.conn(ctx).Create(hp).Error
}

// FindAll lists plans ordered by type then name; an empty planType returns all.
func (r *repository) FindAll(ctx context.Context, planType string) ([]HealthPlan, error) {
	var plans []HealthPlan
	q := r.conn(ctx)
	if planType != "" {
		q = q.Where("type = ?", planType)
	}
	err := q.Order("type ASC").Order("name ASC").Find(&plans).Error
	return plans, err
}

func (r *repository) FindByID(ctx context.Context, id string) (*HealthPlan, error) {
	var hp HealthPlan
	if err := r.conn(ctx).First(&hp, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &hp, nil
}

func (r *repository) Update(ctx context.Context, hp *HealthPlan) error {
	return r.conn(ctx).Save(hp).Error
}

func (r *repository) Delete(ctx context.Context, id string) error {
	res := r.conn(ctx).Delete(&HealthPlan{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
