package model

import "time"

// AppDocumentModel represents the app_documents table: one row per storage
// key, holding the whole JSON document for that collection.
type AppDocumentModel struct {
	Key       string    `gorm:"type:varchar(50);primaryKey"`
	Value     []byte    `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

// TableName returns the table name for the AppDocumentModel.
func (AppDocumentModel) TableName() string {
	return "app_documents"
}
