package apperror

import (
	"errors"
	"net/http"
)

var (
	ErrNaoEncontrado          = errors.New("recurso não encontrado")
	ErrNaoAutenticado         = errors.New("não autorizado")
	ErrAcessoNegado           = errors.New("acesso negado")
	ErrEmailJaCadastrado      = errors.New("email já cadastrado")
	ErrCodigoPersonalInvalido = errors.New("código de personal inválido")
	ErrRequisicaoInvalida     = errors.New("requisição inválida")
	ErrLimiteExcedido         = errors.New("limite de requisições excedido")
	ErrIndisponivel           = errors.New("serviço indisponível")
	ErrInterno                = errors.New("erro interno do servidor")
)

// AppError is a custom error type that can hold an HTTP status code
type AppError struct {
	Code    int
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// New creates a new AppError
func New(code int, message string, err error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// MapErrorToStatus maps application errors to HTTP status codes.
// Duplicate emails and bad trainer codes surface as 400, per the wire contract.
func MapErrorToStatus(err error) int {
	if errors.Is(err, ErrNaoEncontrado) {
		return http.StatusNotFound
	}
	if errors.Is(err, ErrNaoAutenticado) {
		return http.StatusUnauthorized
	}
	if errors.Is(err, ErrAcessoNegado) {
		return http.StatusForbidden
	}
	if errors.Is(err, ErrEmailJaCadastrado) || errors.Is(err, ErrCodigoPersonalInvalido) || errors.Is(err, ErrRequisicaoInvalida) {
		return http.StatusBadRequest
	}
	if errors.Is(err, ErrLimiteExcedido) {
		return http.StatusTooManyRequests
	}
	if errors.Is(err, ErrIndisponivel) {
		return http.StatusServiceUnavailable
	}
	// Default to internal server error
	return http.StatusInternalServerError
}
