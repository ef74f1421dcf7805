package service

import (
	"context"
	"errors"
	"time"

	"fitpro.com.br/fitnessproapi/internal/dto"
	"fitpro.com.br/fitnessproapi/internal/model"
	"fitpro.com.br/fitnessproapi/internal/repository"
	"fitpro.com.br/fitnessproapi/internal/session"
	"fitpro.com.br/fitnessproapi/pkg/apperror"
	"fitpro.com.br/fitnessproapi/pkg/idgen"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type AuthService interface {
	CadastroPersonal(ctx context.Context, input dto.PersonalCreate) (*dto.LoginResponse, error)
	CadastroAluno(ctx context.Context, input dto.AlunoCreate) (*dto.LoginResponse, error)
	Login(ctx context.Context, input dto.LoginRequest) (*dto.LoginResponse, error)
	Logout(token string)
}

type authService struct {
	repo     repository.UsuarioRepository
	sessions *session.Registry
}

func NewAuthService(repo repository.UsuarioRepository, sessions *session.Registry) AuthService {
	return &authService{repo: repo, sessions: sessions}
}

// Passwords are stored as bcrypt hashes. The source system kept them in
// plaintext; the wire contract is unaffected by hashing, so this
// implementation hardens storage without changing any request or response.

func (s *authService) CadastroPersonal(ctx context.Context, input dto.PersonalCreate) (*dto.LoginResponse, error) {
	if err := s.checarEmailLivre(ctx, input.Email); err != nil {
		return nil, err
	}

	senhaHash, err := bcrypt.GenerateFromPassword([]byte(input.Senha), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	usuario := &model.Usuario{
		ID:             idgen.New("PT"),
		Tipo:           model.TipoPersonal,
		Nome:           input.Nome,
		Email:          input.Email,
		SenhaHash:      string(senhaHash),
		Especializacao: valueOrEmpty(input.Especializacao),
		Avatar:         input.Avatar,
		DataCriacao:    time.Now().UTC(),
	}

	if err := s.repo.Create(ctx, usuario); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperror.ErrEmailJaCadastrado
		}
		return nil, err
	}

	return s.buildLoginResponse(usuario), nil
}

func (s *authService) CadastroAluno(ctx context.Context, input dto.AlunoCreate) (*dto.LoginResponse, error) {
	if err := s.checarEmailLivre(ctx, input.Email); err != nil {
		return nil, err
	}

	personal, err := s.repo.FindByID(ctx, input.CodigoPersonal)
	if err != nil || personal.Tipo != model.TipoPersonal {
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		return nil, apperror.ErrCodigoPersonalInvalido
	}

	senhaHash, err := bcrypt.GenerateFromPassword([]byte(input.Senha), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	agora := time.Now().UTC()
	usuario := &model.Usuario{
		ID:             idgen.New("ALN"),
		Tipo:           model.TipoAluno,
		Nome:           input.Nome,
		Email:          input.Email,
		SenhaHash:      string(senhaHash),
		CodigoPersonal: &input.CodigoPersonal,
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

	if err := s.repo.Create(ctx, usuario); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperror.ErrEmailJaCadastrado
		}
		return nil, err
	}

	return s.buildLoginResponse(usuario), nil
}

func (s *authService) Login(ctx context.Context, input dto.LoginRequest) (*dto.LoginResponse, error) {
	usuario, err := s.repo.FindByEmailETipo(ctx, input.Email, model.TipoUsuario(input.Tipo))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.ErrNaoAutenticado
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(usuario.SenhaHash), []byte(input.Senha)); err != nil {
		return nil, apperror.ErrNaoAutenticado
	}

	// Prior tokens for the same user stay valid; logins stack.
	return s.buildLoginResponse(usuario), nil
}

// Logout always succeeds; revoking an unknown token is a no-op.
func (s *authService) Logout(token string) {
	s.sessions.Revoke(token)
}

func (s *authService) checarEmailLivre(ctx context.Context, email string) error {
	_, err := s.repo.FindByEmail(ctx, email)
	if err == nil {
		return apperror.ErrEmailJaCadastrado
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	return nil
}

func (s *authService) buildLoginResponse(usuario *model.Usuario) *dto.LoginResponse {
	token := s.sessions.Issue(usuario.ID)
	return &dto.LoginResponse{Token: token, Usuario: usuario}
}

func valueOrEmpty(s *string) *string {
	if s == nil {
		empty := ""
		return &empty
	}
	return s
}
