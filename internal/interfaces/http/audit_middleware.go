package http

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/gabiv12/panol-erp/internal/domain/entity"
	"github.com/gabiv12/panol-erp/internal/domain/repository"
)

// AuditMiddleware registra cada request autenticada de /api en el log de
// auditoría. Las fallas de escritura no cortan la respuesta: se loguean y
// se sigue.
func AuditMiddleware(repo repository.AuditRepository, log zerolog.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		username := GetUsername(c)
		if username == "" {
			// Requests anónimas (login fallido, health) no se auditan acá.
			return err
		}

		// fiber devuelve strings sobre buffers reusados de fasthttp; todo lo
		// que sobrevive al handler se copia antes de retener.
		path := utils.CopyString(c.Path())
		method := utils.CopyString(c.Method())
		e := &entity.AuditEvent{
			ID:         uuid.New().String(),
			CreatedAt:  start,
			Username:   username,
			Method:     method,
			Path:       path,
			StatusCode: c.Response().StatusCode(),
			DurationMs: int(time.Since(start).Milliseconds()),
			IP:         utils.CopyString(clientIP(c)),
			UserAgent:  utils.CopyString(c.Get("User-Agent")),
			AppArea:    appArea(path),
			Action:     auditAction(method),
		}
		if route := c.Route(); route != nil {
			e.ViewName = utils.CopyString(route.Path)
		}
		if userID := GetUserID(c); userID != "" {
			e.UsuarioID = &userID
		}
		if q := string(c.Request().URI().QueryString()); q != "" {
			e.Extra = map[string]string{"query": q}
		}

		if auditErr := repo.Create(e); auditErr != nil {
			log.Warn().Err(auditErr).Str("path", path).Msg("no se pudo registrar evento de auditoría")
		}
		return err
	}
}

// clientIP prefiere X-Forwarded-For (estamos detrás de un proxy en prod).
func clientIP(c *fiber.Ctx) string {
	if fwd := c.Get("X-Forwarded-For"); fwd != "" {
		if i := strings.IndexByte(fwd, ','); i > 0 {
			return strings.TrimSpace(fwd[:i])
		}
		return strings.TrimSpace(fwd)
	}
	return c.IP()
}

// appArea devuelve el primer segmento del path después de /api.
func appArea(path string) string {
	p := strings.TrimPrefix(path, "/api/")
	if i := strings.IndexByte(p, '/'); i > 0 {
		return p[:i]
	}
	return p
}

// auditAction deriva la acción del método HTTP. El login se audita aparte,
// desde el handler de auth (acá la request todavía es anónima).
func auditAction(method string) string {
	switch method {
	case fiber.MethodPost:
		return entity.AuditCreate
	case fiber.MethodPut, fiber.MethodPatch:
		return entity.AuditUpdate
	case fiber.MethodDelete:
		return entity.AuditDelete
	default:
		return entity.AuditView
	}
}
