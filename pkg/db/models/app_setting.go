package models

import "time"

// AppSetting is a single key/value row. The core keeps its small markers
// here: the swipe hint latch, the current region, the data version, and the
// current mode.
type AppSetting struct {
	Key       string `gorm:"type:text;primaryKey"`
	Value     string `gorm:"type:text;not null"`
	UpdatedAt time.Time
}

// TableName keeps the table aligned with the goose migrations.
func (AppSetting) TableName() string {
	return "app_settings"
}
