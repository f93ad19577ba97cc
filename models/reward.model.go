package models

import "gorm.io/gorm"

// Reward is a catalog item redeemable for accumulated wallet points.
// Quantity is advisory: redemptions do not decrement it.
type Reward struct {
	gorm.Model
	CompanyID   uint   `json:"id_empresa" gorm:"index;not null"`
	Name        string `json:"nome" gorm:"not null"`
	Description string `json:"descricao"`
	PointPrice  int    `json:"preco_pontos" gorm:"not null"`
	Quantity    int    `json:"quantidade_disponivel" gorm:"default:0"`
}
