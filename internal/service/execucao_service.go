package service

import (
	"context"
	"time"

	"fitpro.com.br/fitnessproapi/internal/dto"
	"fitpro.com.br/fitnessproapi/internal/model"
	"fitpro.com.br/fitnessproapi/internal/repository"
	"fitpro.com.br/fitnessproapi/pkg/apperror"
	"fitpro.com.br/fitnessproapi/pkg/idgen"
	"github.com/redis/go-redis/v9"
)

type ExecucaoService interface {
	Criar(ctx context.Context, acting *model.Usuario, input dto.ExecucaoCreate) (*model.Execucao, error)
	ListarDoAluno(ctx context.Context, idAluno string) ([]*model.Execucao, error)
	ListarDaAtribuicao(ctx context.Context, idAtribuicao string) ([]*model.Execucao, error)
}

type execucaoService struct {
	repo           repository.ExecucaoRepository
	atribuicaoRepo repository.AtribuicaoRepository
	hub            *NotificationHub
	rdb            *redis.Client
	rateWindow     time.Duration
	listLimit      int
}

func NewExecucaoService(repo repository.ExecucaoRepository, atribuicaoRepo repository.AtribuicaoRepository, hub *NotificationHub, rdb *redis.Client, rateWindow time.Duration, listLimit int) ExecucaoService {
	return &execucaoService{
		repo:           repo,
		atribuicaoRepo: atribuicaoRepo,
		hub:            hub,
		rdb:            rdb,
		rateWindow:     rateWindow,
		listLimit:      listLimit,
	}
}

// Criar logs a performed session. IDAluno is always the acting user,
// overriding anything the client sent; dataExecucao is server time. The
// referenced atribuição is not checked for existence or ownership, and the
// exercise entries pass through unvalidated.
func (s *execucaoService) Criar(ctx context.Context, acting *model.Usuario, input dto.ExecucaoCreate) (*model.Execucao, error) {
	if acting.Tipo != model.TipoAluno {
		return nil, apperror.ErrAcessoNegado
	}

	allowed, err := CheckAndSetRateLimit(ctx, s.rdb, acting.ID, "criar_execucao", s.rateWindow)
	if err != nil {
		return nil, err
	}
	if !allowed {
		return nil, apperror.ErrLimiteExcedido
	}

	execucao := &model.Execucao{
		ID:           idgen.New("EXEC"),
		IDAluno:      acting.ID,
		IDAtribuicao: input.IDAtribuicao,
		DataExecucao: time.Now().UTC(),
		Duracao:      input.Duracao,
		Exercicios:   input.Exercicios,
	}

	if err := s.repo.Create(ctx, execucao); err != nil {
		return nil, err
	}

	// Best effort: when the referenced atribuição resolves, tell its personal.
	if s.hub != nil {
		if atribuicao, err := s.atribuicaoRepo.FindByID(ctx, input.IDAtribuicao); err == nil {
			s.hub.Notify(atribuicao.IDPersonal, map[string]any{
				"evento":   "nova_execucao",
				"execucao": execucao,
			})
		}
	}

	return execucao, nil
}

func (s *execucaoService) ListarDoAluno(ctx context.Context, idAluno string) ([]*model.Execucao, error) {
	return s.repo.FindByAluno(ctx, idAluno, s.listLimit)
}

func (s *execucaoService) ListarDaAtribuicao(ctx context.Context, idAtribuicao string) ([]*model.Execucao, error) {
	return s.repo.FindByAtribuicao(ctx, idAtribuicao, s.listLimit)
}
