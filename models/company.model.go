package models

import "gorm.io/gorm"

// Company lifecycle status codes (stored, not derived)
const (
	CompanyStatusActive          = 1
	CompanyStatusInactive        = 2
	CompanyStatusPendingApproval = 3
)

// Company is a tenant organization owning departments, trainings and rewards
type Company struct {
	gorm.Model
	LegalName string `json:"razao_social" gorm:"not null"`
	TradeName string `json:"nome_fantasia" gorm:"not null"`
	Email     string `json:"email" gorm:"unique;not null"`
	TaxID     string `json:"cnpj" gorm:"not null"`
	Password  string `json:"-" gorm:"not null"`
	Status    int    `json:"status" gorm:"default:3"` // 1 active, 2 inactive, 3 pending approval
}
