package model

import (
	"time"
)

type TipoUsuario string

const (
	TipoPersonal TipoUsuario = "personal"
	TipoAluno    TipoUsuario = "aluno"
)

// Medida is one weight/height snapshot in a student's history.
// The history is append-only: entries are never reordered or removed.
type Medida struct {
	Data   time.Time `json:"data"`
	Peso   float64   `json:"peso"`
	Altura float64   `json:"altura"`
}

// Usuario holds both roles in one collection, mirroring the wire contract.
// Trainer-only and student-only fields are pointers so they stay absent
// from JSON for the other role. SenhaHash never serializes.
type Usuario struct {
	ID          string      `gorm:"primaryKey;size:40" json:"id"`
	Tipo        TipoUsuario `gorm:"size:20;index;not null" json:"tipo"`
	Nome        string      `gorm:"size:100;not null" json:"nome"`
	Email       string      `gorm:"size:100;uniqueIndex;not null" json:"email"`
	SenhaHash   string      `gorm:"size:255;not null" json:"-"`
	Avatar      *string     `gorm:"type:text" json:"avatar,omitempty"`
	DataCriacao time.Time   `json:"dataCriacao"`

	// Personal
	Especializacao *string `gorm:"size:100" json:"especializacao,omitempty"`

	// Aluno
	CodigoPersonal   *string  `gorm:"size:40;index" json:"codigoPersonal,omitempty"`
	Idade            *int     `json:"idade,omitempty"`
	Peso             *float64 `json:"peso,omitempty"`
	Altura           *float64 `json:"altura,omitempty"`
	Sexo             *string  `gorm:"size:20" json:"sexo,omitempty"`
	Objetivo         *string  `gorm:"type:text" json:"objetivo,omitempty"`
	Restricoes       *string  `gorm:"type:text" json:"restricoes,omitempty"`
	HistoricoMedidas []Medida `gorm:"serializer:json" json:"historicoMedidas,omitempty"`
}

func (Usuario) TableName() string {
	return "usuarios"
}
