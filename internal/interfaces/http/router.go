package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/gabiv12/panol-erp/internal/application/auth"
	"github.com/gabiv12/panol-erp/internal/application/flota"
	"github.com/gabiv12/panol-erp/internal/application/inventory"
	"github.com/gabiv12/panol-erp/internal/application/usecase"
	"github.com/gabiv12/panol-erp/internal/domain/entity"
	"github.com/gabiv12/panol-erp/internal/domain/repository"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC       *auth.AuthUseCase
	ProductoUC   *usecase.ProductoUseCase
	UbicacionUC  *usecase.UbicacionUseCase
	MovimientoUC *inventory.MovimientoUseCase
	ConsultaUC   *inventory.ConsultaStockUseCase
	ColectivoUC  *usecase.ColectivoUseCase
	ChoferUC     *usecase.ChoferUseCase
	ParteUC      *flota.ParteUseCase
	SalidaUC     *flota.SalidaUseCase
	UsuarioUC    *usecase.UsuarioUseCase
	AuditoriaUC  *usecase.AuditoriaUseCase
	AuditRepo    repository.AuditRepository
	JWTSecret    string
	Location     *time.Location
	Log          zerolog.Logger
}

// Router registra las rutas de la API. Todo lo que no es /auth exige Bearer
// token; las escrituras además exigen el rol del área (gerencia pasa siempre).
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC, deps.AuditRepo, deps.Log)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (Bearer + auditoría por request)
	protected := api.Group("/",
		AuthMiddleware(deps.JWTSecret),
		AuditMiddleware(deps.AuditRepo, deps.Log),
	)

	// Alta de usuarios: sólo gerencia
	authGroup.Post("/register",
		AuthMiddleware(deps.JWTSecret),
		AuditMiddleware(deps.AuditRepo, deps.Log),
		RequireRole(),
		authHandler.Register,
	)

	soloPanol := RequireRole(entity.RolPanol)
	soloDiagramador := RequireRole(entity.RolDiagramador)
	soloTaller := RequireRole(entity.RolTaller, entity.RolPanol)
	soloAdministracion := RequireRole(entity.RolAdministracion)
	soloGerencia := RequireRole()

	// Productos (catálogo del pañol; escrituras pañol)
	productos := protected.Group("/productos")
	productoHandler := NewProductoHandler(deps.ProductoUC)
	productos.Get("/", productoHandler.List)
	productos.Get("/:id", productoHandler.GetByID)
	productos.Post("/", soloPanol, productoHandler.Create)
	productos.Put("/:id", soloPanol, productoHandler.Update)
	productos.Delete("/:id", soloPanol, productoHandler.Delete)

	// Ubicaciones
	ubicaciones := protected.Group("/ubicaciones")
	ubicacionHandler := NewUbicacionHandler(deps.UbicacionUC)
	ubicaciones.Get("/", ubicacionHandler.List)
	ubicaciones.Get("/:id", ubicacionHandler.GetByID)
	ubicaciones.Post("/", soloPanol, ubicacionHandler.Create)
	ubicaciones.Put("/:id", soloPanol, ubicacionHandler.Update)
	ubicaciones.Delete("/:id", soloPanol, ubicacionHandler.Delete)

	// Inventario: libro de movimientos y stock derivado
	inv := protected.Group("/inventario")
	inventarioHandler := NewInventarioHandler(deps.MovimientoUC, deps.ConsultaUC)
	inv.Get("/stock", inventarioHandler.ListarStock)
	inv.Get("/stock/export.csv", inventarioHandler.ExportarStock)
	inv.Get("/stock/bajo-minimo", inventarioHandler.BajoMinimo)
	inv.Get("/movimientos", inventarioHandler.ListarMovimientos)
	inv.Post("/movimientos", soloPanol, inventarioHandler.RegistrarMovimiento)
	inv.Put("/movimientos/:id", soloPanol, inventarioHandler.ActualizarMovimiento)
	inv.Delete("/movimientos/:id", soloPanol, inventarioHandler.EliminarMovimiento)
	inv.Post("/reconciliar", soloGerencia, inventarioHandler.Reconciliar)

	// Flota: unidades y choferes (escrituras administración)
	colectivos := protected.Group("/colectivos")
	colectivoHandler := NewColectivoHandler(deps.ColectivoUC)
	colectivos.Get("/", colectivoHandler.List)
	colectivos.Get("/alertas", colectivoHandler.AlertasFlota)
	colectivos.Get("/:id", colectivoHandler.GetByID)
	colectivos.Get("/:id/alertas", colectivoHandler.Alertas)
	colectivos.Post("/", soloAdministracion, colectivoHandler.Create)
	colectivos.Put("/:id", soloAdministracion, colectivoHandler.Update)
	colectivos.Delete("/:id", soloAdministracion, colectivoHandler.Delete)

	choferes := protected.Group("/choferes")
	choferHandler := NewChoferHandler(deps.ChoferUC)
	choferes.Get("/", choferHandler.List)
	choferes.Get("/:id", choferHandler.GetByID)
	choferes.Post("/", soloAdministracion, choferHandler.Create)
	choferes.Put("/:id", soloAdministracion, choferHandler.Update)
	choferes.Delete("/:id", soloAdministracion, choferHandler.Delete)

	// Partes diarios de taller
	partes := protected.Group("/partes")
	parteHandler := NewParteHandler(deps.ParteUC)
	partes.Get("/", parteHandler.List)
	partes.Get("/:id", parteHandler.GetByID)
	partes.Post("/", soloTaller, parteHandler.Create)
	partes.Put("/:id", soloTaller, parteHandler.Update)
	partes.Delete("/:id", soloTaller, parteHandler.Delete)

	// Diagrama de salidas (escrituras diagramador)
	salidas := protected.Group("/salidas")
	salidaHandler := NewSalidaHandler(deps.SalidaUC, deps.Location)
	salidas.Get("/", salidaHandler.ListarDia)
	salidas.Get("/dual", salidaHandler.Dual)
	salidas.Get("/plan.pdf", salidaHandler.PlanDelDia)
	salidas.Post("/", soloDiagramador, salidaHandler.Create)
	salidas.Post("/copiar-dia", soloDiagramador, salidaHandler.CopiarDiaAnterior)
	salidas.Put("/:id", soloDiagramador, salidaHandler.Update)
	salidas.Delete("/:id", soloDiagramador, salidaHandler.Delete)

	// Usuarios y auditoría (sólo gerencia)
	usuarios := protected.Group("/usuarios", soloGerencia)
	usuarioHandler := NewUsuarioHandler(deps.UsuarioUC)
	usuarios.Get("/", usuarioHandler.List)
	usuarios.Get("/:id", usuarioHandler.GetByID)
	usuarios.Put("/:id", usuarioHandler.Update)
	usuarios.Delete("/:id", usuarioHandler.Delete)

	auditoria := protected.Group("/auditoria", soloGerencia)
	auditoriaHandler := NewAuditoriaHandler(deps.AuditoriaUC, deps.Location)
	auditoria.Get("/", auditoriaHandler.List)
	auditoria.Post("/purgar", auditoriaHandler.Purge)
}
