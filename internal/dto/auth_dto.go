package dto

import (
	"fitpro.com.br/fitnessproapi/internal/model"
)

type PersonalCreate struct {
	Nome           string  `json:"nome" binding:"required"`
	Email          string  `json:"email" binding:"required,email"`
	Senha          string  `json:"senha" binding:"required"`
	Especializacao *string `json:"especializacao"`
	Avatar         *string `json:"avatar"`
}

type AlunoCreate struct {
	Nome           string  `json:"nome" binding:"required"`
	Email          string  `json:"email" binding:"required,email"`
	Senha          string  `json:"senha" binding:"required"`
	CodigoPersonal string  `json:"codigoPersonal" binding:"required"`
	Idade          int     `json:"idade" binding:"required"`
	Peso           float64 `json:"peso" binding:"required"`
	Altura         float64 `json:"altura" binding:"required"`
	Sexo           string  `json:"sexo" binding:"required"`
	Objetivo       *string `json:"objetivo"`
	Restricoes     *string `json:"restricoes"`
	Avatar         *string `json:"avatar"`
}

type LoginRequest struct {
	Email string `json:"email" binding:"required,email"`
	Senha string `json:"senha" binding:"required"`
	Tipo  string `json:"tipo" binding:"required,oneof=personal aluno"`
}

type LoginResponse struct {
	Token   string         `json:"token"`
	Usuario *model.Usuario `json:"usuario"`
}
