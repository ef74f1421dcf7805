package validator

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

func FormatValidationError(err error) string {
	if validationErrors, ok := err.(validator.ValidationErrors); ok {
		var messages []string
		for _, fieldError := range validationErrors {
			message := getFieldErrorMessage(fieldError)
			messages = append(messages, message)
		}
		return strings.Join(messages, "; ")
	}
	return err.Error()
}

func getFieldErrorMessage(fe validator.FieldError) string {
	field := getFieldName(fe.Field())

	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s é obrigatório", field)
	case "email":
		return fmt.Sprintf("%s deve ser um email válido", field)
	case "oneof":
		return fmt.Sprintf("%s deve ser um de: %s", field, fe.Param())
	case "min":
		if fe.Type().String() == "string" {
			return fmt.Sprintf("%s deve ter no mínimo %s caracteres", field, fe.Param())
		}
		return fmt.Sprintf("%s deve ser no mínimo %s", field, fe.Param())
	case "max":
		if fe.Type().String() == "string" {
			return fmt.Sprintf("%s deve ter no máximo %s caracteres", field, fe.Param())
		}
		return fmt.Sprintf("%s deve ser no máximo %s", field, fe.Param())
	default:
		return fmt.Sprintf("%s inválido", field)
	}
}

func getFieldName(field string) string {
	fieldNames := map[string]string{
		"Nome":           "Nome",
		"Email":          "Email",
		"Senha":          "Senha",
		"Tipo":           "Tipo",
		"CodigoPersonal": "Código do personal",
		"Idade":          "Idade",
		"Peso":           "Peso",
		"Altura":         "Altura",
		"Sexo":           "Sexo",
		"Duracao":        "Duração",
		"Nivel":          "Nível",
		"DataInicio":     "Data de início",
		"DiasSemana":     "Dias da semana",
		"IDAluno":        "Aluno",
		"IDTreino":       "Treino",
		"IDAtribuicao":   "Atribuição",
	}

	if name, ok := fieldNames[field]; ok {
		return name
	}
	return field
}
