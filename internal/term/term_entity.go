package term

import (
	"strconv"
	"time"

	"github.com/google/uuid"
)

type AcademicTerm struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	AcademicYear string    `gorm:"type:varchar(9);not null;index:idx_term_year_session,unique"`
	Session      string    `gorm:"type:varchar(30);not null;index:idx_term_year_session,unique"`
	StartDate    time.Time `gorm:"type:date;not null"`
	EndDate      time.Time `gorm:"type:date;not null"`
	IsCurrent    bool      `gorm:"not null;default:false;index"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (AcademicTerm) TableName() string {
	return "academic_terms"
}

// TermNumber parses the leading integer of the session label ("1st Term" -> 1).
// Returns 0 when the label does not start with a digit.
func (t *AcademicTerm) TermNumber() int {
	i := 0
	for i < len(t.Session) && t.Session[i] >= '0' && t.Session[i] <= '9' {
		i++
	}
	if i == 0 {
		return 0
	}
	n, err := strconv.Atoi(t.Session[:i])
	if err != nil {
		return 0
	}
	return n
}
