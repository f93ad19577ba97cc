package models

import (
	"time"

	"gorm.io/gorm"
)

// Progress status values. Transitions only move forward:
// PENDING -> IN_PROGRESS -> COMPLETED.
const (
	ProgressStatusPending    = "PENDING"
	ProgressStatusInProgress = "IN_PROGRESS"
	ProgressStatusCompleted  = "COMPLETED"
)

// Progress is the per-employee-per-training completion ledger. The composite
// unique index guarantees at most one row per (training, employee) pair even
// under concurrent writers.
type Progress struct {
	gorm.Model
	TrainingID     uint       `json:"id_treinamento" gorm:"uniqueIndex:idx_training_employee;not null"`
	EmployeeID     uint       `json:"id_funcionario" gorm:"uniqueIndex:idx_training_employee;not null"`
	Status         string     `json:"status" gorm:"default:'PENDING'"`
	StartedAt      time.Time  `json:"data_inicio"`
	FinalScore     *int       `json:"pontuacao_final"`
	CertificateURL *string    `json:"certificado_url"`
	CompletedAt    *time.Time `json:"data_conclusao"`
}
