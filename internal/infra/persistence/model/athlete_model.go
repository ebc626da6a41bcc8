// Package model contains the GORM persistence models mirroring the database
// tables. They are kept separate from the domain entities so storage tags do
// not leak into the domain layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AthleteModel mirrors the 'athlete' table. The public UUID is assigned
// application-side on insert; pk_id is a bigserial assigned by the store.
type AthleteModel struct {
	PKID             int64     `gorm:"column:pk_id;primaryKey;autoIncrement"`
	ID               uuid.UUID `gorm:"type:uuid;unique;not null"`
	Name             string    `gorm:"type:varchar(50);not null"`
	CPF              string    `gorm:"column:cpf;type:varchar(11);unique;not null"`
	Age              *int
	Weight           *float64 `gorm:"type:decimal(10,2)"`
	Height           *float64 `gorm:"type:decimal(10,2)"`
	Sex              *string  `gorm:"type:varchar(1)"`
	TrainingCenterID *int64
	CategoryID       *int64
	CreatedAt        time.Time
	UpdatedAt        time.Time

	TrainingCenter *TrainingCenterModel `gorm:"foreignKey:TrainingCenterID;references:PKID"`
	Category       *CategoryModel       `gorm:"foreignKey:CategoryID;references:PKID"`
}

// TableName explicitly sets the table name for GORM.
func (AthleteModel) TableName() string {
	return "athlete"
}

// BeforeCreate assigns the public identifier when none was supplied, the
// same way the store assigns pk_id.
func (m *AthleteModel) BeforeCreate(*gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}

	return nil
}
