package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"fitpro.com.br/fitnessproapi/internal/dto"
	"fitpro.com.br/fitnessproapi/internal/model"
	"fitpro.com.br/fitnessproapi/internal/repository"
	"fitpro.com.br/fitnessproapi/pkg/apperror"
	"fitpro.com.br/fitnessproapi/pkg/idgen"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type AtribuicaoService interface {
	Criar(ctx context.Context, acting *model.Usuario, input dto.AtribuicaoCreate) (*model.Atribuicao, error)
	ListarDoAluno(ctx context.Context, idAluno string) ([]*model.Atribuicao, error)
	ListarDoPersonal(ctx context.Context, idPersonal string) ([]*model.Atribuicao, error)
	Atualizar(ctx context.Context, id string, campos map[string]any) (*model.Atribuicao, error)
}

type atribuicaoService struct {
	repo       repository.AtribuicaoRepository
	hub        *NotificationHub
	rdb        *redis.Client
	rateWindow time.Duration
	listLimit  int
}

func NewAtribuicaoService(repo repository.AtribuicaoRepository, hub *NotificationHub, rdb *redis.Client, rateWindow time.Duration, listLimit int) AtribuicaoService {
	return &atribuicaoService{
		repo:       repo,
		hub:        hub,
		rdb:        rdb,
		rateWindow: rateWindow,
		listLimit:  listLimit,
	}
}

// Criar links a treino to an aluno. Neither id is checked for existence;
// the link is by value only. Status always starts as "ativo".
func (s *atribuicaoService) Criar(ctx context.Context, acting *model.Usuario, input dto.AtribuicaoCreate) (*model.Atribuicao, error) {
	if acting.Tipo != model.TipoPersonal {
		return nil, apperror.ErrAcessoNegado
	}

	allowed, err := CheckAndSetRateLimit(ctx, s.rdb, acting.ID, "criar_atribuicao", s.rateWindow)
	if err != nil {
		return nil, err
	}
	if !allowed {
		return nil, apperror.ErrLimiteExcedido
	}

	atribuicao := &model.Atribuicao{
		ID:          idgen.New("ATRB"),
		IDAluno:     input.IDAluno,
		IDTreino:    input.IDTreino,
		IDPersonal:  acting.ID,
		DataInicio:  input.DataInicio,
		DataFim:     input.DataFim,
		DiasSemana:  input.DiasSemana,
		Status:      model.StatusAtivo,
		DataCriacao: time.Now().UTC(),
	}

	if err := s.repo.Create(ctx, atribuicao); err != nil {
		return nil, err
	}

	if s.hub != nil {
		s.hub.Notify(atribuicao.IDAluno, map[string]any{
			"evento":     "nova_atribuicao",
			"atribuicao": atribuicao,
		})
	}

	return atribuicao, nil
}

func (s *atribuicaoService) ListarDoAluno(ctx context.Context, idAluno string) ([]*model.Atribuicao, error) {
	return s.repo.FindByAluno(ctx, idAluno, s.listLimit)
}

func (s *atribuicaoService) ListarDoPersonal(ctx context.Context, idPersonal string) ([]*model.Atribuicao, error) {
	return s.repo.FindByPersonal(ctx, idPersonal, s.listLimit)
}

// Atualizar merges partial fields. Status is free-form: any value is
// accepted, there is no transition set to validate against.
func (s *atribuicaoService) Atualizar(ctx context.Context, id string, campos map[string]any) (*model.Atribuicao, error) {
	atribuicao, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.ErrNaoEncontrado
		}
		return nil, err
	}

	delete(campos, "id")
	delete(campos, "_id")

	payload, err := json.Marshal(campos)
	if err != nil {
		return nil, apperror.ErrRequisicaoInvalida
	}
	if err := json.Unmarshal(payload, atribuicao); err != nil {
		return nil, apperror.ErrRequisicaoInvalida
	}
	atribuicao.ID = id

	if err := s.repo.Save(ctx, atribuicao); err != nil {
		return nil, err
	}

	return atribuicao, nil
}
