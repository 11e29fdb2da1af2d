package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"oakline/internal/metrics"
)

// documentRecord is the database row backing one document. The surrogate Seq
// key breaks creation-time ties so listing order stays stable.
type documentRecord struct {
	Seq        uint      `gorm:"primaryKey" json:"seq"`
	Collection string    `gorm:"uniqueIndex:idx_documents_collection_doc;size:64;not null" json:"collection"`
	DocID      string    `gorm:"column:doc_id;uniqueIndex:idx_documents_collection_doc;size:36;not null" json:"doc_id"`
	Payload    string    `gorm:"type:text;not null" json:"payload"`
	CreatedAt  time.Time `gorm:"index" json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// TableName specifies the table name for documentRecord
func (documentRecord) TableName() string {
	return "documents"
}

// GormStore is the production Store backed by the relational database.
// Documents are kept as JSON payloads; filter matching happens in memory
// after the collection read so behavior is identical across dialects.
type GormStore struct {
	db *gorm.DB
}

// NewGormStore creates a document store on top of the given database.
func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

// Migrate creates the documents table.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&documentRecord{})
}

// Insert implements Store.
func (s *GormStore) Insert(ctx context.Context, collection string, doc Document) (string, error) {
	id := uuid.NewString()
	now := time.Now().UTC()
	doc["id"] = id
	doc["createdAt"] = now.Format(time.RFC3339Nano)
	doc["updatedAt"] = now.Format(time.RFC3339Nano)

	payload, err := json.Marshal(doc)
	if err != nil {
		return "", fmt.Errorf("failed to marshal document: %w", err)
	}

	rec := documentRecord{
		Collection: collection,
		DocID:      id,
		Payload:    string(payload),
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	err = s.db.WithContext(ctx).Create(&rec).Error
	metrics.RecordStoreOperation("insert", err)
	if err != nil {
		return "", fmt.Errorf("failed to insert document: %w", err)
	}
	return id, nil
}

// Get implements Store.
func (s *GormStore) Get(ctx context.Context, collection, id string) (Document, error) {
	var rec documentRecord
	err := s.db.WithContext(ctx).
		Where("collection = ? AND doc_id = ?", collection, id).
		First(&rec).Error
	metrics.RecordStoreOperation("get", err)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to read document: %w", err)
	}
	return decodePayload(rec.Payload)
}

// Query implements Store.
func (s *GormStore) Query(ctx context.Context, collection string, q Query) ([]Document, error) {
	var recs []documentRecord
	order := "created_at ASC, seq ASC"
	if q.Desc {
		order = "created_at DESC, seq DESC"
	}
	err := s.db.WithContext(ctx).
		Where("collection = ?", collection).
		Order(order).
		Find(&recs).Error
	metrics.RecordStoreOperation("query", err)
	if err != nil {
		return nil, fmt.Errorf("failed to query documents: %w", err)
	}

	docs := make([]Document, 0, len(recs))
	for _, rec := range recs {
		doc, err := decodePayload(rec.Payload)
		if err != nil {
			return nil, err
		}
		if matches(doc, q.Filter) {
			docs = append(docs, doc)
		}
	}
	return docs, nil
}

// Update implements Store.
func (s *GormStore) Update(ctx context.Context, collection, id string, patch Document) error {
	var rec documentRecord
	err := s.db.WithContext(ctx).
		Where("collection = ? AND doc_id = ?", collection, id).
		First(&rec).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to read document: %w", err)
	}

	doc, err := decodePayload(rec.Payload)
	if err != nil {
		return err
	}
	for k, v := range patch {
		doc[k] = v
	}
	now := time.Now().UTC()
	doc["updatedAt"] = now.Format(time.RFC3339Nano)

	payload, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("failed to marshal document: %w", err)
	}
	err = s.db.WithContext(ctx).
		Model(&documentRecord{}).
		Where("collection = ? AND doc_id = ?", collection, id).
		Updates(map[string]any{"payload": string(payload), "updated_at": now}).Error
	metrics.RecordStoreOperation("update", err)
	return err
}

func decodePayload(payload string) (Document, error) {
	var doc Document
	if err := json.Unmarshal([]byte(payload), &doc); err != nil {
		return nil, fmt.Errorf("failed to unmarshal document: %w", err)
	}
	return doc, nil
}
