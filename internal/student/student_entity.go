package student

import (
	"time"

	"github.com/google/uuid"
)

const (
	StatusActive    = "active"
	StatusInactive  = "inactive"
	StatusGraduated = "graduated"
)

type Student struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	AdmissionNumber string    `gorm:"type:varchar(20);uniqueIndex;not null"`
	FullName        string    `gorm:"type:varchar(120);not null"`
	ClassID         uuid.UUID `gorm:"type:uuid;not null;index"`
	AdmissionYear   string    `gorm:"type:varchar(9);not null"`
	AdmissionTerm   string    `gorm:"type:varchar(30);not null"`
	DateOfBirth     time.Time `gorm:"type:date"`
	GuardianName    string    `gorm:"type:varchar(120)"`
	GuardianPhone   string    `gorm:"type:varchar(30)"`
	Status          string    `gorm:"type:varchar(20);not null;default:'active';index"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

func (Student) TableName() string {
	return "students"
}

// IsNewFor reports whether the student counts as newly admitted for the given
// term: admission year and session must both match. Anything else is a
// continuing student.
func (s *Student) IsNewFor(academicYear, session string) bool {
	return s.AdmissionYear == academicYear && s.AdmissionTerm == session
}
