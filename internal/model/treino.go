package model

import (
	"time"
)

// Exercicio is embedded in its Treino; it has no collection of its own.
type Exercicio struct {
	ID          string   `json:"id"`
	Nome        string   `json:"nome"`
	Series      int      `json:"series"`
	Repeticoes  string   `json:"repeticoes"`
	Carga       *float64 `json:"carga,omitempty"`
	Descanso    int      `json:"descanso"`
	Observacoes *string  `json:"observacoes,omitempty"`
	VideoURL    *string  `json:"videoUrl,omitempty"`
	VideoLocal  *string  `json:"videoLocal,omitempty"`
}

// Treino is owned by exactly one personal (IDPersonal).
type Treino struct {
	ID               string      `gorm:"primaryKey;size:40" json:"id"`
	IDPersonal       string      `gorm:"size:40;index;not null" json:"idPersonal"`
	Nome             string      `gorm:"size:100;not null" json:"nome"`
	Descricao        *string     `gorm:"type:text" json:"descricao,omitempty"`
	Tipo             string      `gorm:"size:50" json:"tipo"`
	Duracao          int         `json:"duracao"`
	Nivel            string      `gorm:"size:50" json:"nivel"`
	Observacoes      *string     `gorm:"type:text" json:"observacoes,omitempty"`
	Exercicios       []Exercicio `gorm:"serializer:json" json:"exercicios"`
	DataCriacao      time.Time   `json:"dataCriacao"`
	DataUltimaEdicao time.Time   `json:"dataUltimaEdicao"`
}

func (Treino) TableName() string {
	return "treinos"
}
