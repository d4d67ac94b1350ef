// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"
	"time"

	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// kvRepository implements the repository.KeyValueStore interface.
type kvRepository struct {
	db *gorm.DB
}

// NewKVRepository is the constructor for kvRepository. It creates the kv_entries table when missing.
func NewKVRepository(ctx context.Context, db *gorm.DB) (repository.KeyValueStore, error) {
	if err := db.WithContext(ctx).AutoMigrate(&model.KVEntryModel{}); err != nil {
		return nil, errors.Wrap(err, "failed to migrate kv_entries")
	}

	return &kvRepository{
		db: db,
	}, nil
}

// Read returns the stored value for key.
func (repo *kvRepository) Read(ctx context.Context, key string) (string, bool, error) {
	var entry model.KVEntryModel

	if err := repo.db.WithContext(ctx).
		Where("key = ?", key).
		First(&entry).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", false, nil
		}

		return "", false, domainerrors.NewStorageExecuteError(err, "failed to read "+key)
	}

	return entry.Value, true, nil
}

// Write upserts the value for key.
func (repo *kvRepository) Write(ctx context.Context, key, value string) error {
	entry := &model.KVEntryModel{
		Key:       key,
		Value:     value,
		UpdatedAt: time.Now(),
	}

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
		}).
		Create(entry).Error; err != nil {
		return domainerrors.NewStorageExecuteError(err, "failed to write "+key)
	}

	return nil
}

// Remove deletes key.
func (repo *kvRepository) Remove(ctx context.Context, key string) error {
	if err := repo.db.WithContext(ctx).
		Where("key = ?", key).
		Delete(&model.KVEntryModel{}).Error; err != nil {
		return domainerrors.NewStorageExecuteError(err, "failed to remove "+key)
	}

	return nil
}

// Close is a no-op; the connection pool is closed by the fx lifecycle hook registered in New.
func (repo *kvRepository) Close() error {
	return nil
}
