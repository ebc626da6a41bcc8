package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TrainingCenterModel mirrors the 'training_center' table.
type TrainingCenterModel struct {
	PKID      int64     `gorm:"column:pk_id;primaryKey;autoIncrement"`
	ID        uuid.UUID `gorm:"type:uuid;unique;not null"`
	Name      string    `gorm:"type:varchar(20);unique;not null"`
	Address   *string   `gorm:"type:varchar(60)"`
	Owner     *string   `gorm:"type:varchar(30)"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (TrainingCenterModel) TableName() string {
	return "training_center"
}

// BeforeCreate assigns the public identifier when none was supplied.
func (m *TrainingCenterModel) BeforeCreate(*gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}

	return nil
}
