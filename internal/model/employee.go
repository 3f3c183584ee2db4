package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Employee is the persisted employee record
type Employee struct {
	ID           uint       `json:"id" gorm:"primarykey"`
	FirstName    string     `json:"first_name" gorm:"type:varchar(100);not null"`
	LastName     string     `json:"last_name" gorm:"type:varchar(100);not null"`
	Department   Department `json:"department" gorm:"type:smallint;not null;index"`
	EmailAddress *string    `json:"email_address" gorm:"type:varchar(200);index"`
	Phone        *string    `json:"phone" gorm:"type:varchar(20)"`
	IsActive     bool       `json:"is_active" gorm:"not null"`
	JoinedDate   time.Time  `json:"joined_date" gorm:"not null"`
	RowGUID      uuid.UUID  `json:"row_guid" gorm:"type:char(36);uniqueIndex;not null"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

// FullName is derived, never stored.
func (e *Employee) FullName() string {
	return e.FirstName + " " + e.LastName
}

// BeforeCreate assigns the secondary identifier.
func (e *Employee) BeforeCreate(tx *gorm.DB) error {
	if e.RowGUID == uuid.Nil {
		e.RowGUID = uuid.New()
	}
	return nil
}
