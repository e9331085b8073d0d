package persistence

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/finanzas-genius/backend/internal/application/adapter"
	"github.com/finanzas-genius/backend/internal/integration/persistence/model"
)

// documentStore implements adapter.KVStore on a relational database, one row
// per storage key in the app_documents table. Works against both the sqlite
// and postgres drivers.
type documentStore struct {
	db *gorm.DB
}

// NewDocumentStore creates a database-backed KV store and ensures the
// app_documents table exists.
func NewDocumentStore(db *gorm.DB) (adapter.KVStore, error) {
	if err := db.AutoMigrate(&model.AppDocumentModel{}); err != nil {
		return nil, err
	}
	return &documentStore{
		db: db,
	}, nil
}

// Load returns the document stored under key, or (nil, nil) when absent.
func (s *documentStore) Load(ctx context.Context, key string) ([]byte, error) {
	var document model.AppDocumentModel
	result := s.db.WithContext(ctx).Where("key = ?", key).First(&document)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return document.Value, nil
}

// Save overwrites the document stored under key.
func (s *documentStore) Save(ctx context.Context, key string, value []byte) error {
	document := model.AppDocumentModel{Key: key, Value: value}
	result := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
		}).
		Create(&document)
	return result.Error
}

// DeleteAll removes every stored document.
func (s *documentStore) DeleteAll(ctx context.Context) error {
	result := s.db.WithContext(ctx).
		Session(&gorm.Session{AllowGlobalUpdate: true}).
		Delete(&model.AppDocumentModel{})
	return result.Error
}
