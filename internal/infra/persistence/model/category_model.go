package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CategoryModel mirrors the 'category' table.
type CategoryModel struct {
	PKID      int64     `gorm:"column:pk_id;primaryKey;autoIncrement"`
	ID        uuid.UUID `gorm:"type:uuid;unique;not null"`
	Name      string    `gorm:"type:varchar(20);unique;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (CategoryModel) TableName() string {
	return "category"
}

// BeforeCreate assigns the public identifier when none was supplied.
func (m *CategoryModel) BeforeCreate(*gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}

	return nil
}
