package models

import "gorm.io/gorm"

// Redemption is an append-only record of a completed reward exchange.
// Rows are never mutated or deleted.
type Redemption struct {
	gorm.Model
	EmployeeID uint `json:"id_funcionario" gorm:"index;not null"`
	RewardID   uint `json:"id_recompensa" gorm:"index;not null"`
}
