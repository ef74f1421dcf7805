package dto

type AtribuicaoCreate struct {
	IDAluno    string   `json:"idAluno" binding:"required"`
	IDTreino   string   `json:"idTreino" binding:"required"`
	DataInicio string   `json:"dataInicio" binding:"required"`
	DataFim    *string  `json:"dataFim"`
	DiasSemana []string `json:"diasSemana" binding:"required"`
}
