package consultations

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Service types offered on the site.
const (
	ServiceResidential = "residential"
	ServiceCommercial  = "commercial"
	ServiceVirtual     = "virtual"
)

// Request statuses. Any status may move to any other; there is no
// enforced ordering between them.
const (
	StatusNew        = "new"
	StatusContacted  = "contacted"
	StatusInProgress = "in-progress"
	StatusCompleted  = "completed"
)

// Consultation is a request submitted through the public contact form.
// The service enum is enforced by the store via the CHECK constraint;
// the handler only validates shape (email, phone, required fields).
type Consultation struct {
	ID      string `gorm:"type:uuid;primaryKey" json:"id"`
	Name    string `gorm:"not null" json:"name"`
	Email   string `gorm:"not null" json:"email"`
	Phone   string `gorm:"not null" json:"phone"`
	Service string `gorm:"not null;check:chk_consultations_service,service IN ('residential','commercial','virtual')" json:"service"`
	Message string `gorm:"type:text;not null" json:"message"`
	Status  string `gorm:"not null;default:'new'" json:"status"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (r *Consultation) BeforeCreate(tx *gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	if r.Status == "" {
		r.Status = StatusNew
	}
	return nil
}

// ValidStatus reports whether s is one of the closed status enum.
func ValidStatus(s string) bool {
	switch s {
	case StatusNew, StatusContacted, StatusInProgress, StatusCompleted:
		return true
	}
	return false
}
