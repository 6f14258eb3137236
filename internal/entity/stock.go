package entity

import "time"

// Stock is a named asset owned by exactly one bearer.
//
// DeletedAt is a plain nullable column rather than gorm.DeletedAt: visibility of
// soft-deleted rows is chosen explicitly by every query instead of a global scope.
// Active names are unique through the partial index idx_stocks_name_active.
type Stock struct {
	ID        uint       `gorm:"primaryKey" json:"id"`
	BearerID  uint       `gorm:"not null;index:idx_stocks_bearer_id" json:"bearer_id"`
	Name      string     `gorm:"type:text;not null;uniqueIndex:idx_stocks_name_active,where:deleted_at IS NULL" json:"name"`
	DeletedAt *time.Time `gorm:"index:idx_stocks_deleted_at" json:"deleted_at,omitempty"`
	CreatedAt time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
	Bearer    *Bearer    `gorm:"foreignKey:BearerID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"bearer,omitempty"`
}

// TableName specifies the table name for the Stock model.
func (Stock) TableName() string {
	return "stocks"
}

// IsActive reports whether the stock has not been soft-deleted.
func (s *Stock) IsActive() bool {
	return s.DeletedAt == nil
}
