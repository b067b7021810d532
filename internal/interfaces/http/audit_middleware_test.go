package http_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gabiv12/panol-erp/internal/domain/entity"
	"github.com/gabiv12/panol-erp/internal/domain/repository"
	apphttp "github.com/gabiv12/panol-erp/internal/interfaces/http"
)

type fakeAuditRepo struct {
	eventos []*entity.AuditEvent
}

func (r *fakeAuditRepo) Create(e *entity.AuditEvent) error {
	r.eventos = append(r.eventos, e)
	return nil
}

func (r *fakeAuditRepo) List(repository.AuditFiltro, int, int) ([]*entity.AuditEvent, error) {
	return r.eventos, nil
}

func (r *fakeAuditRepo) PurgeOlderThan(t time.Time) (int64, error) { return 0, nil }

func buildAuditApp(repo *fakeAuditRepo) *fiber.App {
	app := fiber.New()
	api := app.Group("/api",
		apphttp.AuthMiddleware(testJWTSecret),
		apphttp.AuditMiddleware(repo, zerolog.Nop()),
	)
	api.Get("/productos", func(c *fiber.Ctx) error { return c.SendStatus(200) })
	api.Post("/inventario/movimientos", func(c *fiber.Ctx) error { return c.SendStatus(201) })
	api.Delete("/salidas/:id", func(c *fiber.Ctx) error { return c.SendStatus(204) })
	return app
}

func auditRequest(t *testing.T, app *fiber.App, method, target string) {
	t.Helper()
	req := httptest.NewRequest(method, target, nil)
	req.Header.Set("Authorization", tokenForRol(t, entity.RolPanol))
	req.Header.Set("X-Forwarded-For", "10.1.2.3, 172.16.0.1")
	_, err := app.Test(req, -1)
	require.NoError(t, err)
}

func TestAuditMiddleware_RegistraLaRequestAutenticada(t *testing.T) {
	repo := &fakeAuditRepo{}
	app := buildAuditApp(repo)

	auditRequest(t, app, http.MethodGet, "/api/productos?q=filtro")

	require.Len(t, repo.eventos, 1)
	e := repo.eventos[0]
	assert.Equal(t, testUsername, e.Username)
	assert.Equal(t, http.MethodGet, e.Method)
	assert.Equal(t, "/api/productos", e.Path)
	assert.Equal(t, 200, e.StatusCode)
	assert.Equal(t, "productos", e.AppArea)
	assert.Equal(t, entity.AuditView, e.Action)
	assert.Equal(t, "10.1.2.3", e.IP, "se toma el primer hop de X-Forwarded-For")
	require.NotNil(t, e.Extra)
	assert.Equal(t, "q=filtro", e.Extra["query"])
}

func TestAuditMiddleware_AccionPorMetodo(t *testing.T) {
	repo := &fakeAuditRepo{}
	app := buildAuditApp(repo)

	auditRequest(t, app, http.MethodPost, "/api/inventario/movimientos")
	auditRequest(t, app, http.MethodDelete, "/api/salidas/abc-123")

	require.Len(t, repo.eventos, 2)
	assert.Equal(t, entity.AuditCreate, repo.eventos[0].Action)
	assert.Equal(t, "inventario", repo.eventos[0].AppArea)
	assert.Equal(t, entity.AuditDelete, repo.eventos[1].Action)
	assert.Equal(t, "salidas", repo.eventos[1].AppArea)
}

func TestAuditMiddleware_EventoRetenidoNoCambiaConOtraRequest(t *testing.T) {
	repo := &fakeAuditRepo{}
	app := buildAuditApp(repo)

	auditRequest(t, app, http.MethodPost, "/api/inventario/movimientos")
	require.Len(t, repo.eventos, 1)
	primero := repo.eventos[0]

	// la segunda request recicla los buffers internos de fasthttp; el evento
	// ya entregado al repo tiene que seguir intacto
	auditRequest(t, app, http.MethodDelete, "/api/salidas/abc-123")

	assert.Equal(t, "/api/inventario/movimientos", primero.Path)
	assert.Equal(t, "inventario", primero.AppArea)
	assert.Equal(t, http.MethodPost, primero.Method)
	assert.Equal(t, "10.1.2.3", primero.IP)
}

func TestAuditMiddleware_RequestAnonimaNoSeAudita(t *testing.T) {
	repo := &fakeAuditRepo{}
	app := buildAuditApp(repo)

	// sin Authorization: el auth middleware corta con 401 y no hay username
	req := httptest.NewRequest(http.MethodGet, "/api/productos", nil)
	_, err := app.Test(req, -1)
	require.NoError(t, err)

	assert.Empty(t, repo.eventos)
}
