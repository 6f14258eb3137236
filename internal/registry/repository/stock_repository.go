package repository

import (
	"context"
	"time"

	"golang-stock-registry/internal/entity"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// StockChanges lists the fields an update writes. Nil fields are left untouched.
type StockChanges struct {
	Name     *string
	BearerID *uint
}

// IsEmpty reports whether the changes would not write anything.
func (c StockChanges) IsEmpty() bool {
	return c.Name == nil && c.BearerID == nil
}

// StockRepository defines the interface for stock data operations.
//
// Every read takes includeDeleted; soft-deleted rows are only returned when it is true.
// Methods taking a tx run inside that transaction; a nil tx uses the root handle.
type StockRepository interface {
	FindByBearer(ctx context.Context, tx *gorm.DB, bearerID, id uint, includeDeleted bool) (*entity.Stock, error)
	FindByID(ctx context.Context, tx *gorm.DB, id uint, includeDeleted bool) (*entity.Stock, error)
	LockByBearer(ctx context.Context, tx *gorm.DB, bearerID, id uint) (*entity.Stock, error)
	FindAllByBearer(ctx context.Context, bearerID uint, includeDeleted bool) ([]entity.Stock, error)
	Count(ctx context.Context, includeDeleted bool) (int64, error)
	NameTaken(ctx context.Context, tx *gorm.DB, name string, exceptID uint) (bool, error)
	Insert(ctx context.Context, tx *gorm.DB, stock *entity.Stock) error
	Update(ctx context.Context, tx *gorm.DB, stock *entity.Stock, changes StockChanges) error
	SoftDelete(ctx context.Context, tx *gorm.DB, stock *entity.Stock, at time.Time) error
}

// NewStockRepository creates a new GORM-based stock repository.
func NewStockRepository(db *gorm.DB) StockRepository {
	return &stockRepository{db: db}
}

type stockRepository struct {
	db *gorm.DB
}

// visible restricts a stock query to active rows unless includeDeleted is set.
func visible(includeDeleted bool) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if includeDeleted {
			return db
		}
		return db.Where("stocks.deleted_at IS NULL")
	}
}

// FindByBearer retrieves a stock by ID within a bearer's scope.
func (r *stockRepository) FindByBearer(ctx context.Context, tx *gorm.DB, bearerID, id uint, includeDeleted bool) (*entity.Stock, error) {
	var stock entity.Stock
	err := conn(ctx, r.db, tx).
		Scopes(visible(includeDeleted)).
		Where("stocks.bearer_id = ? AND stocks.id = ?", bearerID, id).
		First(&stock).Error
	if err != nil {
		return nil, translateError(err)
	}
	return &stock, nil
}

// LockByBearer retrieves an active stock within a bearer's scope and locks its row
// until tx ends. SQLite has no row locks; its single writer serializes instead.
func (r *stockRepository) LockByBearer(ctx context.Context, tx *gorm.DB, bearerID, id uint) (*entity.Stock, error) {
	var stock entity.Stock
	err := conn(ctx, r.db, tx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Scopes(visible(false)).
		Where("stocks.bearer_id = ? AND stocks.id = ?", bearerID, id).
		First(&stock).Error
	if err != nil {
		return nil, translateError(err)
	}
	return &stock, nil
}

// FindByID retrieves a stock by ID regardless of its owner.
func (r *stockRepository) FindByID(ctx context.Context, tx *gorm.DB, id uint, includeDeleted bool) (*entity.Stock, error) {
	var stock entity.Stock
	err := conn(ctx, r.db, tx).
		Scopes(visible(includeDeleted)).
		Where("stocks.id = ?", id).
		First(&stock).Error
	if err != nil {
		return nil, translateError(err)
	}
	return &stock, nil
}

// FindAllByBearer retrieves the stocks owned by a bearer ordered by ID.
func (r *stockRepository) FindAllByBearer(ctx context.Context, bearerID uint, includeDeleted bool) ([]entity.Stock, error) {
	var stocks []entity.Stock
	err := r.db.WithContext(ctx).
		Scopes(visible(includeDeleted)).
		Where("stocks.bearer_id = ?", bearerID).
		Order("stocks.id").
		Find(&stocks).Error
	if err != nil {
		return nil, err
	}
	return stocks, nil
}

// Count returns the number of stocks.
func (r *stockRepository) Count(ctx context.Context, includeDeleted bool) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&entity.Stock{}).Scopes(visible(includeDeleted)).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// NameTaken reports whether an active stock other than exceptID uses name.
// It is advisory only; the partial unique index is what guarantees uniqueness.
func (r *stockRepository) NameTaken(ctx context.Context, tx *gorm.DB, name string, exceptID uint) (bool, error) {
	var count int64
	err := conn(ctx, r.db, tx).
		Model(&entity.Stock{}).
		Scopes(visible(false)).
		Where("stocks.name = ? AND stocks.id <> ?", name, exceptID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// Insert creates a new active stock.
func (r *stockRepository) Insert(ctx context.Context, tx *gorm.DB, stock *entity.Stock) error {
	stock.DeletedAt = nil
	if err := conn(ctx, r.db, tx).Omit(clause.Associations).Create(stock).Error; err != nil {
		return translateError(err)
	}
	return nil
}

// Update writes the given changes to an active stock and applies them to stock.
func (r *stockRepository) Update(ctx context.Context, tx *gorm.DB, stock *entity.Stock, changes StockChanges) error {
	if changes.IsEmpty() {
		return nil
	}

	updates := map[string]interface{}{}
	if changes.Name != nil {
		updates["name"] = *changes.Name
	}
	if changes.BearerID != nil {
		updates["bearer_id"] = *changes.BearerID
	}

	res := conn(ctx, r.db, tx).
		Model(&entity.Stock{}).
		Where("id = ? AND deleted_at IS NULL", stock.ID).
		Updates(updates)
	if res.Error != nil {
		return translateError(res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}

	if changes.Name != nil {
		stock.Name = *changes.Name
	}
	if changes.BearerID != nil {
		stock.BearerID = *changes.BearerID
		stock.Bearer = nil
	}
	return nil
}

// SoftDelete marks an active stock as deleted at the given time. The row stays in
// the table and its name becomes available to new active stocks.
func (r *stockRepository) SoftDelete(ctx context.Context, tx *gorm.DB, stock *entity.Stock, at time.Time) error {
	res := conn(ctx, r.db, tx).
		Model(&entity.Stock{}).
		Where("id = ? AND deleted_at IS NULL", stock.ID).
		Update("deleted_at", at)
	if res.Error != nil {
		return translateError(res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}

	stock.DeletedAt = &at
	return nil
}
