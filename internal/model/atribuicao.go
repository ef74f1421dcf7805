package model

import (
	"time"
)

const StatusAtivo = "ativo"

// Atribuicao links one treino to one aluno over a date range. The ids are
// by-value references; nothing checks they exist when the link is created.
type Atribuicao struct {
	ID          string    `gorm:"primaryKey;size:40" json:"id"`
	IDAluno     string    `gorm:"size:40;index;not null" json:"idAluno"`
	IDTreino    string    `gorm:"size:40;not null" json:"idTreino"`
	IDPersonal  string    `gorm:"size:40;index;not null" json:"idPersonal"`
	DataInicio  string    `gorm:"size:40" json:"dataInicio"`
	DataFim     *string   `gorm:"size:40" json:"dataFim,omitempty"`
	DiasSemana  []string  `gorm:"serializer:json" json:"diasSemana"`
	Status      string    `gorm:"size:40" json:"status"`
	DataCriacao time.Time `json:"dataCriacao"`
}

func (Atribuicao) TableName() string {
	return "atribuicoes"
}
