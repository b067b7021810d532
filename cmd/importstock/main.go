// Command importstock carga el stock inicial del pañol desde un CSV exportado
// de Excel (codigo_producto, codigo_ubicacion, cantidad, referencia, lote).
// Genera movimientos INGRESO a través del motor de stock, nunca escribe la
// tabla materializada a mano.
//
// Uso:
//
//	importstock --file inventario.csv --username pañolero [--dry-run]
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/gabiv12/panol-erp/internal/application/inventory"
	"github.com/gabiv12/panol-erp/internal/infrastructure/postgres"
	"github.com/gabiv12/panol-erp/pkg/config"
	"github.com/gabiv12/panol-erp/pkg/logger"
)

func main() {
	var (
		file        = flag.String("file", "", "ruta del CSV a importar (requerido)")
		username    = flag.String("username", "", "usuario que firma los movimientos (requerido)")
		delimiter   = flag.String("delimiter", "", "separador del CSV; vacío = autodetectar")
		defaultRef  = flag.String("default-ref", "stock inicial", "referencia para filas sin referencia")
		dryRun      = flag.Bool("dry-run", false, "validar y totalizar sin escribir nada")
		reconciliar = flag.Bool("reconciliar", false, "reconstruir stock desde el historial al terminar")
	)
	flag.Parse()

	if *file == "" || *username == "" {
		flag.Usage()
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "cargar configuración:", err)
		os.Exit(1)
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: "info"})

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	usuarioRepo := postgres.NewUsuarioRepository(pool)
	u, err := usuarioRepo.FindByUsername(*username)
	if err != nil {
		log.Fatal().Err(err).Msg("buscar usuario")
	}
	if u == nil {
		log.Fatal().Str("username", *username).Msg("usuario inexistente")
	}

	uc := inventory.NewMovimientoUseCase(
		postgres.NewTxRunner(pool),
		postgres.NewProductoRepository(pool),
		postgres.NewUbicacionRepository(pool),
		postgres.NewColectivoRepository(pool),
	)

	f, err := os.Open(*file)
	if err != nil {
		log.Fatal().Err(err).Msg("abrir archivo")
	}
	defer f.Close()

	opts := inventory.OpcionesImport{
		DefaultRef: *defaultRef,
		UsuarioID:  u.ID,
		DryRun:     *dryRun,
	}
	if *delimiter != "" {
		opts.Delimiter = rune((*delimiter)[0])
	}

	resumen, err := uc.ImportarStockInicial(ctx, f, opts)
	if err != nil {
		log.Fatal().Err(err).Msg("import fallido")
	}

	log.Info().
		Int("filas", resumen.Filas).
		Int("aplicadas", resumen.Aplicadas).
		Int("errores", len(resumen.Errores)).
		Bool("dry_run", *dryRun).
		Msg("import finalizado")
	for _, e := range resumen.Errores {
		log.Warn().Msg(e)
	}

	if *reconciliar && !*dryRun {
		r, err := uc.Reconciliar(ctx)
		if err != nil {
			log.Fatal().Err(err).Msg("reconciliación fallida")
		}
		log.Info().
			Int("movimientos", r.Movimientos).
			Int("pares", r.Pares).
			Msg("stock reconstruido desde el historial")
	}

	if len(resumen.Errores) > 0 {
		os.Exit(1)
	}
}
