package settings

import (
	"context"
	"errors"
	"strconv"

	"github.com/angelmondragon/easydial-core/pkg/db/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Keys for the small persisted markers the core keeps outside the contact
// list.
const (
	KeyHasSeenSwipeHint    = "hasSeenSwipeHint"
	KeyCurrentRegion       = "currentRegion"
	KeyContactsDataVersion = "contactsDataVersion"
	KeyCurrentMode         = "currentMode"
)

// Repository reads and writes app_settings rows.
type Repository struct {
	db *gorm.DB
}

// NewRepository constructs a settings repository backed by the provided
// GORM connection.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) conn(ctx context.Context) *gorm.DB {
	if ctx == nil {
		return r.db
	}
	return r.db.WithContext(ctx)
}

// Get returns the raw value for key and whether it exists.
func (r *Repository) Get(ctx context.Context, key string) (string, bool, error) {
	var row models.AppSetting
	err := r.conn(ctx).First(&row, "key = ?", key).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return row.Value, true, nil
}

// Set upserts the value for key.
func (r *Repository) Set(ctx context.Context, key, value string) error {
	row := models.AppSetting{Key: key, Value: value}
	return r.conn(ctx).
		Clauses(clause.OnConflict{UpdateAll: true}).
		Create(&row).Error
}

// GetInt returns the value for key parsed as an integer.
func (r *Repository) GetInt(ctx context.Context, key string) (int, bool, error) {
	raw, ok, err := r.Get(ctx, key)
	if err != nil || !ok {
		return 0, ok, err
	}
	parsed, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false, nil
	}
	return parsed, true, nil
}

// SetInt stores an integer value for key.
func (r *Repository) SetInt(ctx context.Context, key string, value int) error {
	return r.Set(ctx, key, strconv.Itoa(value))
}

// GetBool returns the value for key parsed as a boolean.
func (r *Repository) GetBool(ctx context.Context, key string) (bool, bool, error) {
	raw, ok, err := r.Get(ctx, key)
	if err != nil || !ok {
		return false, ok, err
	}
	parsed, err := strconv.ParseBool(raw)
	if err != nil {
		return false, false, nil
	}
	return parsed, true, nil
}

// SetBool stores a boolean value for key.
func (r *Repository) SetBool(ctx context.Context, key string, value bool) error {
	return r.Set(ctx, key, strconv.FormatBool(value))
}
