package model

import (
	"time"
)

type UserRole string

const (
	Employee UserRole = "employee"
	HR       UserRole = "hr"
	Admin    UserRole = "admin"
)

// swagger:model User
type User struct {
	BaseModel
	Name      string    `gorm:"size:100;not null" json:"name"`
	Email     string    `gorm:"size:100;unique;not null" json:"email"`
	Password  string    `gorm:"size:100;not null" json:"-"`
	Role      UserRole  `gorm:"type:enum('employee','hr','admin');default:'employee'" json:"role"`
	TenantID  string    `gorm:"index;size:36;not null" json:"tenantId"`
	CompanyID string    `gorm:"index;type:varchar(36)" json:"companyId"`
	Disabled  bool      `gorm:"default:false" json:"disabled"`
	LastLogin time.Time `gorm:"default:CURRENT_TIMESTAMP(3)" json:"lastLogin"`
	LastSeen  time.Time `gorm:"default:CURRENT_TIMESTAMP(3)" json:"lastSeen"`
}

func (User) TableName() string {
	return "users"
}
