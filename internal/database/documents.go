package database

import (
	"context"
	"errors"
	"time"

	ierr "glass_office/internal/errors"
	"glass_office/internal/models"
	"glass_office/internal/store"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// DocumentStore keeps every collection in the documents table.
type DocumentStore struct {
	db *gorm.DB
}

func NewDocumentStore(db *gorm.DB) *DocumentStore {
	return &DocumentStore{db: db}
}

func (s *DocumentStore) Get(ctx context.Context, collection, key string) ([]byte, error) {
	var doc models.Document
	err := s.db.WithContext(ctx).
		Where("collection = ? AND doc_key = ?", collection, key).
		First(&doc).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, store.ErrKeyNotFound
		}
		return nil, ierr.Storage(err, "select "+collection)
	}
	return []byte(doc.Body), nil
}

func (s *DocumentStore) Set(ctx context.Context, collection, key string, value []byte) error {
	doc := models.Document{
		Collection: collection,
		Key:        key,
		Body:       string(value),
		UpdatedAt:  time.Now().UTC(),
	}
	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "collection"}, {Name: "doc_key"}},
		DoUpdates: clause.AssignmentColumns([]string{"body", "updated_at"}),
	}).Create(&doc).Error
	if err != nil {
		return ierr.Storage(err, "upsert "+collection)
	}
	return nil
}

func (s *DocumentStore) Delete(ctx context.Context, collection, key string) error {
	err := s.db.WithContext(ctx).
		Where("collection = ? AND doc_key = ?", collection, key).
		Delete(&models.Document{}).Error
	if err != nil {
		return ierr.Storage(err, "delete "+collection)
	}
	return nil
}

func (s *DocumentStore) List(ctx context.Context, collection string) ([]string, error) {
	var keys []string
	err := s.db.WithContext(ctx).
		Model(&models.Document{}).
		Where("collection = ?", collection).
		Order("doc_key").
		Pluck("doc_key", &keys).Error
	if err != nil {
		return nil, ierr.Storage(err, "list "+collection)
	}
	return keys, nil
}

// Ping reports whether the database is reachable.
func (s *DocumentStore) Ping(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}
