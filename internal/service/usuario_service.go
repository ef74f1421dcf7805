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
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// senhaPadraoAluno is applied when a personal creates a student without a password.
const senhaPadraoAluno = "senha123"

// camposProtegidos cannot be touched through a profile update. The
// measurement history is included: it only grows through AdicionarMedida.
var camposProtegidos = []string{"id", "_id", "senha", "tipo", "dataCriacao", "historicoMedidas"}

type UsuarioService interface {
	GetByID(ctx context.Context, id string) (*model.Usuario, error)
	CriarAlunoPeloPersonal(ctx context.Context, acting *model.Usuario, input dto.AlunoPeloPersonalInput) (*model.Usuario, error)
	Atualizar(ctx context.Context, id string, campos map[string]any) (*model.Usuario, error)
	Deletar(ctx context.Context, id string) error
	AdicionarMedida(ctx context.Context, id string, input dto.AdicionarMedida) error
	ListarAlunosDoPersonal(ctx context.Context, idPersonal string) ([]*model.Usuario, error)
}

type usuarioService struct {
	repo      repository.UsuarioRepository
	listLimit int
}

func NewUsuarioService(repo repository.UsuarioRepository, listLimit int) UsuarioService {
	return &usuarioService{repo: repo, listLimit: listLimit}
}

func (s *usuarioService) GetByID(ctx context.Context, id string) (*model.Usuario, error) {
	usuario, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.ErrNaoEncontrado
		}
		return nil, err
	}

	return usuario, nil
}

func (s *usuarioService) CriarAlunoPeloPersonal(ctx context.Context, acting *model.Usuario, input dto.AlunoPeloPersonalInput) (*model.Usuario, error) {
	if acting.Tipo != model.TipoPersonal {
		return nil, apperror.ErrAcessoNegado
	}

	if _, err := s.repo.FindByEmail(ctx, input.Email); err == nil {
		return nil, apperror.ErrEmailJaCadastrado
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	senha := senhaPadraoAluno
	if input.Senha != nil && *input.Senha != "" {
		senha = *input.Senha
	}
	senhaHash, err := bcrypt.GenerateFromPassword([]byte(senha), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	agora := time.Now().UTC()
	aluno := &model.Usuario{
		ID:             idgen.New("ALN"),
		Tipo:           model.TipoAluno,
		Nome:           input.Nome,
		Email:          input.Email,
		SenhaHash:      string(senhaHash),
		CodigoPersonal: &acting.ID,
		Idade:          &input.Idade,
		Peso:           &input.Peso,
		Altura:         &input.Altura,
		Sexo:           &input.Sexo,
		Objetivo:       valueOrEmpty(input.Objetivo),
		Restricoes:     valueOrEmpty(input.Restricoes),
		Avatar:         input.Avatar,
		HistoricoMedidas: []model.Medida{
			{Data: agora, Peso: input.Peso, Altura: input.Altura},
		},
		DataCriacao: agora,
	}

	if err := s.repo.Create(ctx, aluno); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperror.ErrEmailJaCadastrado
		}
		return nil, err
	}

	return aluno, nil
}

// Atualizar applies a partial update. Protected fields are stripped from the
// payload before the merge, so id, tipo, senha and dataCriacao never change
// no matter what the client sends.
func (s *usuarioService) Atualizar(ctx context.Context, id string, campos map[string]any) (*model.Usuario, error) {
	usuario, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.ErrNaoEncontrado
		}
		return nil, err
	}

	for _, campo := range camposProtegidos {
		delete(campos, campo)
	}

	payload, err := json.Marshal(campos)
	if err != nil {
		return nil, apperror.ErrRequisicaoInvalida
	}
	if err := json.Unmarshal(payload, usuario); err != nil {
		return nil, apperror.ErrRequisicaoInvalida
	}

	if err := s.repo.Save(ctx, usuario); err != nil {
		// Email is updatable and carries a unique index.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperror.ErrEmailJaCadastrado
		}
		return nil, err
	}

	return usuario, nil
}

// Deletar is a hard delete. Dependent treinos, atribuições and execuções are
// left in place; dangling references are accepted behavior.
func (s *usuarioService) Deletar(ctx context.Context, id string) error {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if deleted == 0 {
		return apperror.ErrNaoEncontrado
	}

	return nil
}

// AdicionarMedida is deliberately not restricted to alunos; any existing
// user id is accepted, mirroring the source behavior.
func (s *usuarioService) AdicionarMedida(ctx context.Context, id string, input dto.AdicionarMedida) error {
	medida := model.Medida{
		Data:   time.Now().UTC(),
		Peso:   input.Peso,
		Altura: input.Altura,
	}

	if err := s.repo.AppendMedida(ctx, id, medida); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperror.ErrNaoEncontrado
		}
		return err
	}

	return nil
}

// ListarAlunosDoPersonal returns at most listLimit students; larger result
// sets are truncated at the documented cap.
func (s *usuarioService) ListarAlunosDoPersonal(ctx context.Context, idPersonal string) ([]*model.Usuario, error) {
	return s.repo.FindAlunosDoPersonal(ctx, idPersonal, s.listLimit)
}
