package models

import (
	"slices"
	"time"

	"github.com/lib/pq"
)

type Role string

const (
	RoleMusician Role = "musician"
	RoleBooker   Role = "booker"
)

func (r Role) Valid() bool {
	return r == RoleMusician || r == RoleBooker
}

// User mirrors an identity held by the hosted auth provider.
type User struct {
	ID         uint           `gorm:"primaryKey" json:"id"`
	ExternalID string         `gorm:"uniqueIndex;not null" json:"-"`
	Email      string         `gorm:"index" json:"email"`
	Name       string         `json:"name"`
	ImageURL   string         `json:"image_url"`
	Roles      pq.StringArray `gorm:"type:text[];not null;default:'{}'" json:"roles"`
	ActiveRole *Role          `gorm:"type:varchar(20)" json:"active_role"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`

	Musician *Musician `gorm:"foreignKey:UserID" json:"musician,omitempty"`
	Booker   *Booker   `gorm:"foreignKey:UserID" json:"booker,omitempty"`
}

func (u *User) HasRole(r Role) bool {
	return slices.Contains(u.Roles, string(r))
}

// CurrentRole returns the active role, falling back to the first held role.
func (u *User) CurrentRole() (Role, bool) {
	if u.ActiveRole != nil && u.HasRole(*u.ActiveRole) {
		return *u.ActiveRole, true
	}
	if len(u.Roles) > 0 {
		return Role(u.Roles[0]), true
	}
	return "", false
}
