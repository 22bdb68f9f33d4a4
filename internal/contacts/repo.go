package contacts

import (
	"context"

	"github.com/angelmondragon/easydial-core/pkg/db/models"
	"gorm.io/gorm"
)

// Repository reads and writes contact rows.
type Repository struct {
	db *gorm.DB
}

// NewRepository constructs a contact repository backed by the provided GORM
// connection.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) conn(ctx context.Context) *gorm.DB {
	if ctx == nil {
		return r.db
	}
	return r.db.WithContext(ctx)
}

// ListAll returns every stored contact ordered by position.
func (r *Repository) ListAll(ctx context.Context) ([]models.ContactRecord, error) {
	var rows []models.ContactRecord
	err := r.conn(ctx).Order("position asc").Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// ReplaceAll swaps the stored list for the given snapshot in one
// transaction, so readers never observe a half-written list.
func (r *Repository) ReplaceAll(ctx context.Context, records []models.ContactRecord) error {
	return r.conn(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&models.ContactRecord{}).Error
		if err != nil {
			return err
		}
		if len(records) == 0 {
			return nil
		}
		return tx.Create(&records).Error
	})
}
