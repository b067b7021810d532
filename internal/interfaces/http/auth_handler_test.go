package http_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/gabiv12/panol-erp/internal/application/auth"
	"github.com/gabiv12/panol-erp/internal/domain/entity"
	apphttp "github.com/gabiv12/panol-erp/internal/interfaces/http"
)

type fakeUsuariosLogin struct {
	porUsername map[string]*entity.Usuario
}

func (r *fakeUsuariosLogin) Create(u *entity.Usuario) error {
	r.porUsername[u.Username] = u
	return nil
}

func (r *fakeUsuariosLogin) GetByID(string) (*entity.Usuario, error) { return nil, nil }

func (r *fakeUsuariosLogin) FindByUsername(username string) (*entity.Usuario, error) {
	return r.porUsername[username], nil
}

func (r *fakeUsuariosLogin) Update(*entity.Usuario) error             { return nil }
func (r *fakeUsuariosLogin) List(int, int) ([]*entity.Usuario, error) { return nil, nil }
func (r *fakeUsuariosLogin) Delete(string) error                      { return nil }

func buildLoginApp(t *testing.T, audit *fakeAuditRepo) *fiber.App {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("secreto123"), bcrypt.MinCost)
	require.NoError(t, err)
	repo := &fakeUsuariosLogin{porUsername: map[string]*entity.Usuario{
		testUsername: {
			ID:           testUserID,
			Username:     testUsername,
			PasswordHash: string(hash),
			Rol:          entity.RolPanol,
			Status:       entity.UsuarioActivo,
		},
	}}
	uc := auth.NewAuthUseCase(repo, auth.JWTConfig{Secret: testJWTSecret, ExpMinutes: testExpMin, Issuer: testIssuer})
	handler := apphttp.NewAuthHandler(uc, audit, zerolog.Nop())

	app := fiber.New()
	app.Post("/api/auth/login", handler.Login)
	return app
}

func postLogin(t *testing.T, app *fiber.App, body string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func TestLogin_ExitosoRegistraEventoDeAuditoria(t *testing.T) {
	audit := &fakeAuditRepo{}
	app := buildLoginApp(t, audit)

	resp := postLogin(t, app, `{"username":"pañolero","password":"secreto123"}`)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	require.Len(t, audit.eventos, 1)
	e := audit.eventos[0]
	assert.Equal(t, entity.AuditLogin, e.Action)
	assert.Equal(t, "auth", e.AppArea)
	assert.Equal(t, testUsername, e.Username)
	require.NotNil(t, e.UsuarioID)
	assert.Equal(t, testUserID, *e.UsuarioID)
	assert.Equal(t, "/api/auth/login", e.Path)
}

func TestLogin_FallidoNoSeAudita(t *testing.T) {
	audit := &fakeAuditRepo{}
	app := buildLoginApp(t, audit)

	resp := postLogin(t, app, `{"username":"pañolero","password":"incorrecta"}`)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	assert.Empty(t, audit.eventos)
}
