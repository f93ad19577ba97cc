package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Training is a course unit with structured content and a validity window.
// Content holds the opaque JSON blob produced by the authoring flow
// (summary, quiz, key topics). A nil start/end date means always active.
type Training struct {
	gorm.Model
	CompanyID    uint           `json:"id_empresa" gorm:"index;not null"`
	DepartmentID uint           `json:"id_departamento" gorm:"index;not null"`
	Title        string         `json:"titulo" gorm:"not null"`
	Description  string         `json:"descricao"`
	VideoURL     *string        `json:"video_url"`
	Content      datatypes.JSON `json:"conteudo_json"`
	StartDate    *time.Time     `json:"data_inicio"`
	EndDate      *time.Time     `json:"data_encerramento"`
}
