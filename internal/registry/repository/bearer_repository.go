package repository

import (
	"context"

	"golang-stock-registry/internal/entity"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// BearerRepository defines the interface for bearer data operations.
// Methods taking a tx run inside that transaction; a nil tx uses the root handle.
type BearerRepository interface {
	FindByID(ctx context.Context, tx *gorm.DB, id uint) (*entity.Bearer, error)
	FindByName(ctx context.Context, tx *gorm.DB, name string) (*entity.Bearer, error)
	FindAll(ctx context.Context) ([]entity.Bearer, error)
	Create(ctx context.Context, tx *gorm.DB, name string) (*entity.Bearer, error)
	FindOrCreate(ctx context.Context, tx *gorm.DB, name string) (*entity.Bearer, error)
}

// NewBearerRepository creates a new GORM-based bearer repository.
func NewBearerRepository(db *gorm.DB) BearerRepository {
	return &bearerRepository{db: db}
}

type bearerRepository struct {
	db *gorm.DB
}

// FindByID retrieves a bearer by its ID.
func (r *bearerRepository) FindByID(ctx context.Context, tx *gorm.DB, id uint) (*entity.Bearer, error) {
	var bearer entity.Bearer
	if err := conn(ctx, r.db, tx).First(&bearer, id).Error; err != nil {
		return nil, translateError(err)
	}
	return &bearer, nil
}

// FindByName retrieves a bearer by its unique name.
func (r *bearerRepository) FindByName(ctx context.Context, tx *gorm.DB, name string) (*entity.Bearer, error) {
	var bearer entity.Bearer
	if err := conn(ctx, r.db, tx).Where("name = ?", name).First(&bearer).Error; err != nil {
		return nil, translateError(err)
	}
	return &bearer, nil
}

// FindAll retrieves all bearers ordered by ID.
func (r *bearerRepository) FindAll(ctx context.Context) ([]entity.Bearer, error) {
	var bearers []entity.Bearer
	if err := r.db.WithContext(ctx).Order("id").Find(&bearers).Error; err != nil {
		return nil, err
	}
	return bearers, nil
}

// Create inserts a new bearer. It fails with ErrConflict when the name is taken.
func (r *bearerRepository) Create(ctx context.Context, tx *gorm.DB, name string) (*entity.Bearer, error) {
	bearer := &entity.Bearer{Name: name}
	if err := conn(ctx, r.db, tx).Create(bearer).Error; err != nil {
		return nil, translateError(err)
	}
	return bearer, nil
}

// FindOrCreate returns the bearer with the given name, inserting it when missing.
// The insert ignores a unique conflict on name, so concurrent callers racing on a
// new name all end up with the single row that won.
func (r *bearerRepository) FindOrCreate(ctx context.Context, tx *gorm.DB, name string) (*entity.Bearer, error) {
	db := conn(ctx, r.db, tx)

	bearer := &entity.Bearer{Name: name}
	res := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "name"}},
		DoNothing: true,
	}).Create(bearer)
	if res.Error != nil {
		return nil, translateError(res.Error)
	}

	if res.RowsAffected > 0 && bearer.ID != 0 {
		return bearer, nil
	}

	return r.FindByName(ctx, tx, name)
}
