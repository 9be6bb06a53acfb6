package model

import "time"

// swagger:model Company
type Company struct {
	UUIDBase
	TenantScoped
	Name        string `gorm:"size:255;not null" json:"name"`
	LegalName   string `gorm:"size:255" json:"legalName"`
	TaxID       string `gorm:"size:50" json:"taxId"`
	Email       string `gorm:"size:255" json:"email"`
	Description string `gorm:"type:text" json:"description"`
}

func (Company) TableName() string {
	return "companies"
}

// swagger:model Department
type Department struct {
	UUIDBase
	TenantScoped
	CompanyID   string `gorm:"index;type:varchar(36)" json:"companyId"`
	Name        string `gorm:"size:255;not null" json:"name"`
	Description string `gorm:"type:text" json:"description"`
}

func (Department) TableName() string {
	return "departments"
}

// swagger:model Team
type Team struct {
	UUIDBase
	TenantScoped
	CompanyID    string `gorm:"index;type:varchar(36)" json:"companyId"`
	DepartmentID string `gorm:"index;type:varchar(36)" json:"departmentId"`
	Name         string `gorm:"size:255;not null" json:"name"`
	Description  string `gorm:"type:text" json:"description"`
}

func (Team) TableName() string {
	return "teams"
}

// swagger:model PerformanceCycle
type PerformanceCycle struct {
	UUIDBase
	TenantScoped
	CompanyID   string     `gorm:"index;type:varchar(36)" json:"companyId"`
	Name        string     `gorm:"size:255;not null" json:"name"`
	Description string     `gorm:"type:text" json:"description"`
	IsActive    bool       `gorm:"default:true" json:"isActive"`
	IsTimeBased bool       `gorm:"default:false" json:"isTimeBased"`
	StartDate   *time.Time `json:"startDate,omitempty"`
	EndDate     *time.Time `json:"endDate,omitempty"`
}

func (PerformanceCycle) TableName() string {
	return "performance_cycles"
}
