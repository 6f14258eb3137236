package entity

import "time"

// Bearer owns stocks. Bearer names are unique and bearers are never deleted.
type Bearer struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"type:text;not null;uniqueIndex:idx_bearers_name" json:"name"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// TableName specifies the table name for the Bearer model.
func (Bearer) TableName() string {
	return "bearers"
}
