package dto

// AlunoPeloPersonalInput is the payload a personal sends when creating a
// student directly. Senha is optional; a default is applied server-side.
type AlunoPeloPersonalInput struct {
	Nome       string  `json:"nome" binding:"required"`
	Email      string  `json:"email" binding:"required,email"`
	Senha      *string `json:"senha"`
	Idade      int     `json:"idade" binding:"required"`
	Peso       float64 `json:"peso" binding:"required"`
	Altura     float64 `json:"altura" binding:"required"`
	Sexo       string  `json:"sexo" binding:"required"`
	Objetivo   *string `json:"objetivo"`
	Restricoes *string `json:"restricoes"`
	Avatar     *string `json:"avatar"`
}

type AdicionarMedida struct {
	Peso   float64 `json:"peso" binding:"required"`
	Altura float64 `json:"altura" binding:"required"`
}
