package afp

import (
	"context"
	"database/sql"

	"gorm.io/gorm"
)

type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, a *AFP) error
	FindAll(ctx context.Context) ([]AFP, error)
	FindByID(ctx context.Context, id string) (*AFP, error)
	Update(ctx context.Context, a *AFP) error
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
	return &repository{
		db: r.db,
		tx: tx,
	}
}

func (r *repository) conn(ctx context.Context) *gorm.DB {
	db := r.db.WithContext(ctx)
	if r.tx != nil {
		db.Statement.ConnPool = r.tx
	}
	return db
}

func (r *repository) Create(ctx context.Context, a *AFP) error {
	return r.conn(ctx).Create(a).Error
}

func (r *repository) FindAll(ctx context.Context) ([]AFP, error) {
	var afps []AFP
	err := r.conn(ctx).
		Order("name ASC").
		Find(&afps).Error
	return afps, err
}

func (r *repository) FindByID(ctx context.Context, id string) (*AFP, error) {
	var a AFP
	err := r.conn(ctx).First(&a, "id = ?", id).Error
	return &a, err
}

func (r *repository) Update(ctx context.Context, a *AFP) error {
	return r.conn(ctx).Save(a).Error
}

func (r *repository) Delete(ctx context.Context, id string) error {
	res := r.conn(ctx).Delete(&AFP{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
