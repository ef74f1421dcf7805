package server

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"fitpro.com.br/fitnessproapi/internal/config"
	"fitpro.com.br/fitnessproapi/internal/model"
	"fitpro.com.br/fitnessproapi/internal/session"
	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	gin.SetMode(gin.TestMode)

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

	cfg := &config.Config{
		AppEnv:    "test",
		ListLimit: 1000,
	}

	return New(db, session.NewRegistry(), nil, nil, nil, cfg)
}

// do runs one request against the router and decodes the JSON body into out
// when out is non-nil.
func do(t *testing.T, srv *Server, method, path, token string, body any, out any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	srv.Engine().ServeHTTP(rec, req)

	if out != nil {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), out), "body: %s", rec.Body.String())
	}

	return rec
}

type loginResult struct {
	Token   string         `json:"token"`
	Usuario map[string]any `json:"usuario"`
}

func cadastrarPersonalHTTP(t *testing.T, srv *Server, email string) loginResult {
	t.Helper()

	var result loginResult
	rec := do(t, srv, http.MethodPost, "/api/auth/cadastro/personal", "", map[string]any{
		"nome":  "Carlos Personal",
		"email": email,
		"senha": "segredo",
	}, &result)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	require.NotEmpty(t, result.Token)

	return result
}

func cadastrarAlunoHTTP(t *testing.T, srv *Server, email, codigoPersonal string) loginResult {
	t.Helper()

	var result loginResult
	rec := do(t, srv, http.MethodPost, "/api/auth/cadastro/aluno", "", map[string]any{
		"nome":           "Maria Aluna",
		"email":          email,
		"senha":          "segredo",
		"codigoPersonal": codigoPersonal,
		"idade":          28,
		"peso":           65.0,
		"altura":         1.65,
		"sexo":           "F",
	}, &result)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	require.NotEmpty(t, result.Token)

	return result
}

func TestHealth(t *testing.T) {
	srv := newTestServer(t)

	rec := do(t, srv, http.MethodGet, "/api/health", "", nil, nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "healthy")
}

func TestRequireAuth(t *testing.T) {
	srv := newTestServer(t)

	rec := do(t, srv, http.MethodGet, "/api/usuarios/me", "", nil, nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = do(t, srv, http.MethodGet, "/api/usuarios/me", "token-invalido", nil, nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRequireAuth_TokenViaQuerySomenteNoWebsocket(t *testing.T) {
	srv := newTestServer(t)
	personal := cadastrarPersonalHTTP(t, srv, "p@x.com")

	// Regular routes are header-only; tokens in URLs leak into logs.
	rec := do(t, srv, http.MethodGet, "/api/usuarios/me?token="+personal.Token, "", nil, nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	// The websocket route accepts it: auth passes, then the upgrade fails
	// because this is not a websocket handshake.
	rec = do(t, srv, http.MethodGet, "/api/notificacoes/ws?token="+personal.Token, "", nil, nil)
	assert.NotEqual(t, http.StatusUnauthorized, rec.Code)

	rec = do(t, srv, http.MethodGet, "/api/notificacoes/ws?token=invalido", "", nil, nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRequireAuth_FalhaDeArmazenamento(t *testing.T) {
	srv := newTestServer(t)
	personal := cadastrarPersonalHTTP(t, srv, "p@x.com")

	sqlDB, err := srv.db.DB()
	require.NoError(t, err)
	require.NoError(t, sqlDB.Close())

	// The token is valid; only the user lookup fails. That is a 500, not 401.
	rec := do(t, srv, http.MethodGet, "/api/usuarios/me", personal.Token, nil, nil)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestRequireAuth_UsuarioDeletado(t *testing.T) {
	srv := newTestServer(t)
	personal := cadastrarPersonalHTTP(t, srv, "p@x.com")
	id := personal.Usuario["id"].(string)

	rec := do(t, srv, http.MethodDelete, "/api/usuarios/"+id, personal.Token, nil, nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	// The token still exists in the registry but the user is gone.
	rec = do(t, srv, http.MethodGet, "/api/usuarios/me", personal.Token, nil, nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestLogout_InvalidaToken(t *testing.T) {
	srv := newTestServer(t)
	personal := cadastrarPersonalHTTP(t, srv, "p@x.com")

	rec := do(t, srv, http.MethodPost, "/api/auth/logout", personal.Token, nil, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = do(t, srv, http.MethodGet, "/api/usuarios/me", personal.Token, nil, nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	// Logging out again still answers 200.
	rec = do(t, srv, http.MethodPost, "/api/auth/logout", personal.Token, nil, nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestLogin_CredenciaisErradas(t *testing.T) {
	srv := newTestServer(t)
	cadastrarPersonalHTTP(t, srv, "p@x.com")

	rec := do(t, srv, http.MethodPost, "/api/auth/login", "", map[string]any{
		"email": "p@x.com",
		"senha": "errada",
		"tipo":  "personal",
	}, nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestCadastro_EmailDuplicado(t *testing.T) {
	srv := newTestServer(t)
	cadastrarPersonalHTTP(t, srv, "p@x.com")

	rec := do(t, srv, http.MethodPost, "/api/auth/cadastro/personal", "", map[string]any{
		"nome":  "Outro",
		"email": "p@x.com",
		"senha": "x",
	}, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAtualizarUsuario_EmailJaEmUso(t *testing.T) {
	srv := newTestServer(t)
	cadastrarPersonalHTTP(t, srv, "p@x.com")
	outro := cadastrarPersonalHTTP(t, srv, "q@x.com")

	rec := do(t, srv, http.MethodPut, "/api/usuarios/"+outro.Usuario["id"].(string), outro.Token, map[string]any{
		"email": "p@x.com",
	}, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code, rec.Body.String())
}

func TestCriarAtribuicao_DiasSemanaObrigatorio(t *testing.T) {
	srv := newTestServer(t)
	personal := cadastrarPersonalHTTP(t, srv, "p@x.com")
	aluno := cadastrarAlunoHTTP(t, srv, "a@x.com", personal.Usuario["id"].(string))

	rec := do(t, srv, http.MethodPost, "/api/atribuicoes", personal.Token, map[string]any{
		"idAluno":    aluno.Usuario["id"].(string),
		"idTreino":   "TREN-qualquer",
		"dataInicio": "2026-09-01",
	}, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code, rec.Body.String())
}

func TestSenhaNuncaSerializa(t *testing.T) {
	srv := newTestServer(t)
	personal := cadastrarPersonalHTTP(t, srv, "p@x.com")

	paths := []string{
		"/api/usuarios/me",
		"/api/usuarios/" + personal.Usuario["id"].(string),
	}
	for _, path := range paths {
		rec := do(t, srv, http.MethodGet, path, personal.Token, nil, nil)
		require.Equal(t, http.StatusOK, rec.Code)
		body := strings.ToLower(rec.Body.String())
		assert.NotContains(t, body, "senha")
		assert.NotContains(t, body, "$2a$")
	}
}

func TestBuscaTreinos_RestritaAPersonal(t *testing.T) {
	srv := newTestServer(t)
	personal := cadastrarPersonalHTTP(t, srv, "p@x.com")
	aluno := cadastrarAlunoHTTP(t, srv, "a@x.com", personal.Usuario["id"].(string))

	rec := do(t, srv, http.MethodGet, "/api/busca/treinos?q=supino", aluno.Token, nil, nil)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	// For a personal the route exists but no search backend is configured.
	rec = do(t, srv, http.MethodGet, "/api/busca/treinos?q=supino", personal.Token, nil, nil)
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestUpload_SemStorageConfigurado(t *testing.T) {
	srv := newTestServer(t)
	personal := cadastrarPersonalHTTP(t, srv, "p@x.com")

	rec := do(t, srv, http.MethodPost, "/api/upload", personal.Token, nil, nil)
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

// TestFluxoCompleto walks the whole coaching loop over HTTP: trainer signup,
// student signup against the trainer's code, workout creation, assignment,
// execution log and the student's execution history.
func TestFluxoCompleto(t *testing.T) {
	srv := newTestServer(t)

	personal := cadastrarPersonalHTTP(t, srv, "personal@x.com")
	personalID := personal.Usuario["id"].(string)

	aluno := cadastrarAlunoHTTP(t, srv, "aluno@x.com", personalID)
	alunoID := aluno.Usuario["id"].(string)
	assert.Equal(t, personalID, aluno.Usuario["codigoPersonal"])

	var treino map[string]any
	rec := do(t, srv, http.MethodPost, "/api/treinos", personal.Token, map[string]any{
		"nome":    "Full Body A",
		"tipo":    "musculacao",
		"duracao": 60,
		"nivel":   "iniciante",
		"exercicios": []map[string]any{
			{"nome": "Agachamento", "series": 4, "repeticoes": "8-10"},
		},
	}, &treino)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	treinoID := treino["id"].(string)
	assert.Equal(t, personalID, treino["idPersonal"])

	// O aluno não cria treinos.
	rec = do(t, srv, http.MethodPost, "/api/treinos", aluno.Token, map[string]any{
		"nome": "x", "tipo": "x", "duracao": 1, "nivel": "x",
	}, nil)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	var atribuicao map[string]any
	rec = do(t, srv, http.MethodPost, "/api/atribuicoes", personal.Token, map[string]any{
		"idAluno":    alunoID,
		"idTreino":   treinoID,
		"dataInicio": "2026-09-01",
		"diasSemana": []string{"terca", "quinta"},
	}, &atribuicao)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	atribuicaoID := atribuicao["id"].(string)
	assert.Equal(t, "ativo", atribuicao["status"])

	var execucao map[string]any
	rec = do(t, srv, http.MethodPost, "/api/execucoes", aluno.Token, map[string]any{
		"idAtribuicao": atribuicaoID,
		"duracao":      55,
		"exercicios": []map[string]any{
			{"nome": "Agachamento", "seriesFeitas": 4},
		},
	}, &execucao)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, alunoID, execucao["idAluno"])

	// O personal não registra execuções.
	rec = do(t, srv, http.MethodPost, "/api/execucoes", personal.Token, map[string]any{
		"idAtribuicao": atribuicaoID,
		"duracao":      10,
	}, nil)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	var execucoes []map[string]any
	rec = do(t, srv, http.MethodGet, fmt.Sprintf("/api/alunos/%s/execucoes", alunoID), aluno.Token, nil, &execucoes)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, execucoes, 1)
	assert.Equal(t, alunoID, execucoes[0]["idAluno"])
	assert.Equal(t, atribuicaoID, execucoes[0]["idAtribuicao"])

	var alunos []map[string]any
	rec = do(t, srv, http.MethodGet, fmt.Sprintf("/api/personal/%s/alunos", personalID), personal.Token, nil, &alunos)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, alunos, 1)
	assert.Equal(t, alunoID, alunos[0]["id"])
}

func TestAtualizarTreino_NaoVazaDeOutroDono(t *testing.T) {
	srv := newTestServer(t)
	dono := cadastrarPersonalHTTP(t, srv, "dono@x.com")
	intruso := cadastrarPersonalHTTP(t, srv, "intruso@x.com")

	var treino map[string]any
	rec := do(t, srv, http.MethodPost, "/api/treinos", dono.Token, map[string]any{
		"nome": "Meu", "tipo": "musculacao", "duracao": 30, "nivel": "iniciante",
	}, &treino)
	require.Equal(t, http.StatusOK, rec.Code)
	treinoID := treino["id"].(string)

	rec = do(t, srv, http.MethodPut, "/api/treinos/"+treinoID, intruso.Token, map[string]any{
		"nome": "Roubado",
	}, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = do(t, srv, http.MethodDelete, "/api/treinos/"+treinoID, intruso.Token, nil, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = do(t, srv, http.MethodDelete, "/api/treinos/"+treinoID, dono.Token, nil, nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}
