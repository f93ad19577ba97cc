package models

import "gorm.io/gorm"

// Department is an organizational unit within a company, grouping employees
type Department struct {
	gorm.Model
	CompanyID   uint   `json:"id_empresa" gorm:"index;not null"`
	Name        string `json:"nome" gorm:"not null"`
	Description string `json:"descritivo"`
}
