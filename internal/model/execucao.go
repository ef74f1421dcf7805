package model

import (
	"time"
)

// Execucao is a student's log of a performed assignment. IDAluno is always
// the acting user, never client-supplied. Exercise entries are free-form and
// deliberately not validated against the assignment's exercise list.
type Execucao struct {
	ID           string           `gorm:"primaryKey;size:40" json:"id"`
	IDAluno      string           `gorm:"size:40;index;not null" json:"idAluno"`
	IDAtribuicao string           `gorm:"size:40;index;not null" json:"idAtribuicao"`
	DataExecucao time.Time        `json:"dataExecucao"`
	Duracao      int              `json:"duracao"`
	Exercicios   []map[string]any `gorm:"serializer:json" json:"exercicios"`
}

func (Execucao) TableName() string {
	return "execucoes"
}
