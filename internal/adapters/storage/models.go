package storage

import "time"

// KeyValueModel is the GORM model for the kv_entries table
type KeyValueModel struct {
	CreatedAt time.Time
	Key       string `gorm:"primaryKey"`
	UpdatedAt time.Time
	Value     string `gorm:"not null;default:''"`
}

// TableName specifies the table name for GORM
func (KeyValueModel) TableName() string { return "kv_entries" }
