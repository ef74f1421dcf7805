package service

import (
	"context"
	"fmt"
	"testing"

	"fitpro.com.br/fitnessproapi/internal/dto"
	"fitpro.com.br/fitnessproapi/internal/model"
	"fitpro.com.br/fitnessproapi/internal/repository"
	"fitpro.com.br/fitnessproapi/internal/session"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const testListLimit = 1000

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&model.Usuario{},
		&model.Treino{},
		&model.Atribuicao{},
		&model.Execucao{},
	))

	return db
}

type testEnv struct {
	db       *gorm.DB
	sessions *session.Registry

	usuarioRepo repository.UsuarioRepository

	auth        AuthService
	usuarios    UsuarioService
	treinos     TreinoService
	atribuicoes AtribuicaoService
	execucoes   ExecucaoService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db := newTestDB(t)
	sessions := session.NewRegistry()

	usuarioRepo := repository.NewUsuarioRepository(db)
	treinoRepo := repository.NewTreinoRepository(db)
	atribuicaoRepo := repository.NewAtribuicaoRepository(db)
	execucaoRepo := repository.NewExecucaoRepository(db)

	hub := NewNotificationHub()
	search := NewSearchService(nil)

	return &testEnv{
		db:          db,
		sessions:    sessions,
		usuarioRepo: usuarioRepo,
		auth:        NewAuthService(usuarioRepo, sessions),
		usuarios:    NewUsuarioService(usuarioRepo, testListLimit),
		treinos:     NewTreinoService(treinoRepo, search, nil, 0, testListLimit),
		atribuicoes: NewAtribuicaoService(atribuicaoRepo, hub, nil, 0, testListLimit),
		execucoes:   NewExecucaoService(execucaoRepo, atribuicaoRepo, hub, nil, 0, testListLimit),
	}
}

func (e *testEnv) cadastrarPersonal(t *testing.T, email string) (*model.Usuario, string) {
	t.Helper()

	resp, err := e.auth.CadastroPersonal(context.Background(), dto.PersonalCreate{
		Nome:  "Personal Teste",
		Email: email,
		Senha: "segredo",
	})
	require.NoError(t, err)

	return resp.Usuario, resp.Token
}

func (e *testEnv) cadastrarAluno(t *testing.T, email, codigoPersonal string) (*model.Usuario, string) {
	t.Helper()

	resp, err := e.auth.CadastroAluno(context.Background(), dto.AlunoCreate{
		Nome:           "Aluno Teste",
		Email:          email,
		Senha:          "segredo",
		CodigoPersonal: codigoPersonal,
		Idade:          25,
		Peso:           80,
		Altura:         1.80,
		Sexo:           "M",
	})
	require.NoError(t, err)

	return resp.Usuario, resp.Token
}

func (e *testEnv) criarTreino(t *testing.T, personal *model.Usuario) *model.Treino {
	t.Helper()

	treino, err := e.treinos.Criar(context.Background(), personal, dto.TreinoCreate{
		Nome:    fmt.Sprintf("Treino de %s", personal.Nome),
		Tipo:    "musculacao",
		Duracao: 60,
		Nivel:   "iniciante",
		Exercicios: []model.Exercicio{
			{Nome: "Supino", Series: 3, Repeticoes: "10-12"},
		},
	})
	require.NoError(t, err)

	return treino
}
