package dto

import (
	"fitpro.com.br/fitnessproapi/internal/model"
)

type TreinoCreate struct {
	Nome        string            `json:"nome" binding:"required"`
	Descricao   *string           `json:"descricao"`
	Tipo        string            `json:"tipo" binding:"required"`
	Duracao     int               `json:"duracao" binding:"required"`
	Nivel       string            `json:"nivel" binding:"required"`
	Observacoes *string           `json:"observacoes"`
	Exercicios  []model.Exercicio `json:"exercicios"`
}

// TreinoUpdate carries partial fields; nil means "leave unchanged".
// A non-nil Exercicios replaces the whole list.
type TreinoUpdate struct {
	Nome        *string            `json:"nome"`
	Descricao   *string            `json:"descricao"`
	Tipo        *string            `json:"tipo"`
	Duracao     *int               `json:"duracao"`
	Nivel       *string            `json:"nivel"`
	Observacoes *string            `json:"observacoes"`
	Exercicios  *[]model.Exercicio `json:"exercicios"`
}

type TreinoBuscaFilter struct {
	Query string `form:"q"`
}
