package service

import (
	"context"
	"errors"
	"time"

	"fitpro.com.br/fitnessproapi/internal/dto"
	"fitpro.com.br/fitnessproapi/internal/model"
	"fitpro.com.br/fitnessproapi/internal/repository"
	"fitpro.com.br/fitnessproapi/pkg/apperror"
	"fitpro.com.br/fitnessproapi/pkg/idgen"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// descansoPadrao is the rest time, in seconds, applied when an exercise
// comes in without one.
const descansoPadrao = 60

type TreinoService interface {
	Criar(ctx context.Context, acting *model.Usuario, input dto.TreinoCreate) (*model.Treino, error)
	GetByID(ctx context.Context, id string) (*model.Treino, error)
	ListarDoPersonal(ctx context.Context, idPersonal string) ([]*model.Treino, error)
	Atualizar(ctx context.Context, acting *model.Usuario, id string, input dto.TreinoUpdate) (*model.Treino, error)
	Deletar(ctx context.Context, acting *model.Usuario, id string) error
	Buscar(ctx context.Context, acting *model.Usuario, query string) ([]TreinoDoc, error)
}

type treinoService struct {
	repo       repository.TreinoRepository
	search     SearchService
	rdb        *redis.Client
	rateWindow time.Duration
	listLimit  int
}

func NewTreinoService(repo repository.TreinoRepository, search SearchService, rdb *redis.Client, rateWindow time.Duration, listLimit int) TreinoService {
	return &treinoService{
		repo:       repo,
		search:     search,
		rdb:        rdb,
		rateWindow: rateWindow,
		listLimit:  listLimit,
	}
}

func (s *treinoService) Criar(ctx context.Context, acting *model.Usuario, input dto.TreinoCreate) (*model.Treino, error) {
	if acting.Tipo != model.TipoPersonal {
		return nil, apperror.ErrAcessoNegado
	}

	allowed, err := CheckAndSetRateLimit(ctx, s.rdb, acting.ID, "criar_treino", s.rateWindow)
	if err != nil {
		return nil, err
	}
	if !allowed {
		return nil, apperror.ErrLimiteExcedido
	}

	agora := time.Now().UTC()
	treino := &model.Treino{
		ID:               idgen.New("TREN"),
		IDPersonal:       acting.ID,
		Nome:             input.Nome,
		Descricao:        input.Descricao,
		Tipo:             input.Tipo,
		Duracao:          input.Duracao,
		Nivel:            input.Nivel,
		Observacoes:      input.Observacoes,
		Exercicios:       normalizarExercicios(input.Exercicios),
		DataCriacao:      agora,
		DataUltimaEdicao: agora,
	}

	if err := s.repo.Create(ctx, treino); err != nil {
		return nil, err
	}

	s.search.IndexTreino(treino)

	return treino, nil
}

func (s *treinoService) GetByID(ctx context.Context, id string) (*model.Treino, error) {
	treino, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.ErrNaoEncontrado
		}
		return nil, err
	}

	return treino, nil
}

func (s *treinoService) ListarDoPersonal(ctx context.Context, idPersonal string) ([]*model.Treino, error) {
	return s.repo.FindByPersonal(ctx, idPersonal, s.listLimit)
}

// Atualizar applies partial fields. Ownership folds into the lookup: a
// treino owned by someone else reads as not found. A supplied exercise list
// replaces the stored one wholesale; every update refreshes dataUltimaEdicao.
func (s *treinoService) Atualizar(ctx context.Context, acting *model.Usuario, id string, input dto.TreinoUpdate) (*model.Treino, error) {
	treino, err := s.repo.FindByIDEPersonal(ctx, id, acting.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.ErrNaoEncontrado
		}
		return nil, err
	}

	if input.Nome != nil {
		treino.Nome = *input.Nome
	}
	if input.Descricao != nil {
		treino.Descricao = input.Descricao
	}
	if input.Tipo != nil {
		treino.Tipo = *input.Tipo
	}
	if input.Duracao != nil {
		treino.Duracao = *input.Duracao
	}
	if input.Nivel != nil {
		treino.Nivel = *input.Nivel
	}
	if input.Observacoes != nil {
		treino.Observacoes = input.Observacoes
	}
	if input.Exercicios != nil {
		treino.Exercicios = normalizarExercicios(*input.Exercicios)
	}
	treino.DataUltimaEdicao = time.Now().UTC()

	if err := s.repo.Save(ctx, treino); err != nil {
		return nil, err
	}

	s.search.IndexTreino(treino)

	return treino, nil
}

// Deletar removes the treino only when acting is its owner; anything else
// reads as not found, never leaking another owner's resource.
func (s *treinoService) Deletar(ctx context.Context, acting *model.Usuario, id string) error {
	deleted, err := s.repo.DeleteByIDEPersonal(ctx, id, acting.ID)
	if err != nil {
		return err
	}
	if deleted == 0 {
		return apperror.ErrNaoEncontrado
	}

	s.search.RemoveTreino(id)

	return nil
}

// Buscar searches the acting personal's own workout library.
func (s *treinoService) Buscar(ctx context.Context, acting *model.Usuario, query string) ([]TreinoDoc, error) {
	if acting.Tipo != model.TipoPersonal {
		return nil, apperror.ErrAcessoNegado
	}

	return s.search.BuscarTreinos(acting.ID, query)
}

func normalizarExercicios(exercicios []model.Exercicio) []model.Exercicio {
	out := make([]model.Exercicio, len(exercicios))
	for i, ex := range exercicios {
		if ex.ID == "" {
			ex.ID = uuid.NewString()
		}
		if ex.Descanso == 0 {
			ex.Descanso = descansoPadrao
		}
		out[i] = ex
	}
	return out
}
