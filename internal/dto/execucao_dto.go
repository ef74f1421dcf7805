package dto

type ExecucaoCreate struct {
	IDAtribuicao string           `json:"idAtribuicao" binding:"required"`
	Duracao      int              `json:"duracao" binding:"required"`
	Exercicios   []map[string]any `json:"exercicios"`
}
