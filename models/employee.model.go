package models

import "gorm.io/gorm"

// Employee lifecycle status codes
const (
	EmployeeStatusActive  = 1
	EmployeeStatusDeleted = 2
)

// Employee is an end-user who completes trainings and redeems rewards.
// WalletPoints is spendable and debited by redemptions; LifetimePoints is
// cumulative and only ever grows, it drives the ranking.
type Employee struct {
	gorm.Model
	DepartmentID   uint   `json:"id_departamento" gorm:"index;not null"`
	Name           string `json:"nome"`
	Email          string `json:"email" gorm:"unique;not null"`
	Password       string `json:"-" gorm:"not null"`
	Status         int    `json:"status" gorm:"default:1"` // 1 active, 2 soft-deleted
	WalletPoints   int    `json:"pontos_carteira" gorm:"default:0"`
	LifetimePoints int    `json:"total_pontos" gorm:"default:0"`
}
