package entity

import "time"

// Roles resolved into the session token. Staff create and submit, the head of
// the SPPG reviews and approves, admins additionally cancel approved plans.
const (
	RoleStaff  = "SPPG_STAFF"
	RoleKepala = "SPPG_KEPALA"
	RoleAdmin  = "SPPG_ADMIN"
)

// User is an operator account scoped to one tenant.
type User struct {
	ID     string `json:"id" gorm:"primaryKey;size:36"`
	SppgID string `json:"sppg_id" gorm:"size:36;not null;index"`

	Email        string `json:"email" gorm:"size:100;not null;uniqueIndex"`
	PasswordHash string `json:"-" gorm:"size:100;not null"`
	FullName     string `json:"full_name" gorm:"size:200;not null"`
	Role         string `json:"role" gorm:"size:20;not null;default:SPPG_STAFF"`

	IsActive    bool       `json:"is_active" gorm:"default:true"`
	LastLoginAt *time.Time `json:"last_login_at"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
	DeletedAt   *time.Time `json:"deleted_at,omitempty" gorm:"index"`
}

func (User) TableName() string {
	return "users"
}
