package inventory_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gabiv12/panol-erp/internal/application/inventory"
	"github.com/gabiv12/panol-erp/internal/domain"
	"github.com/gabiv12/panol-erp/internal/domain/entity"
	"github.com/gabiv12/panol-erp/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

type parStock struct{ producto, ubicacion string }

type fakeStockRepo struct {
	filas map[parStock]*entity.Stock
}

func newFakeStockRepo() *fakeStockRepo {
	return &fakeStockRepo{filas: make(map[parStock]*entity.Stock)}
}

func (r *fakeStockRepo) Get(productoID, ubicacionID string) (*entity.Stock, error) {
	if s, ok := r.filas[parStock{productoID, ubicacionID}]; ok {
		copia := *s
		return &copia, nil
	}
	return nil, nil
}

func (r *fakeStockRepo) GetForUpdate(productoID, ubicacionID string) (*entity.Stock, error) {
	if s, ok := r.filas[parStock{productoID, ubicacionID}]; ok {
		copia := *s
		return &copia, nil
	}
	// igual que el repo real: fila en cero lista para upsert
	return &entity.Stock{ProductoID: productoID, UbicacionID: ubicacionID}, nil
}

func (r *fakeStockRepo) Upsert(stock *entity.Stock) error {
	copia := *stock
	r.filas[parStock{stock.ProductoID, stock.UbicacionID}] = &copia
	return nil
}

func (r *fakeStockRepo) ListDetalle(repository.StockFiltro, int, int) ([]*repository.StockDetalle, error) {
	return nil, nil
}

func (r *fakeStockRepo) ListBajoMinimo() ([]*repository.StockBajoMinimo, error) { return nil, nil }

func (r *fakeStockRepo) DeleteAll() error {
	r.filas = make(map[parStock]*entity.Stock)
	return nil
}

func (r *fakeStockRepo) cantidad(productoID, ubicacionID string) decimal.Decimal {
	if s, ok := r.filas[parStock{productoID, ubicacionID}]; ok {
		return s.Cantidad
	}
	return decimal.Zero
}

type fakeMovRepo struct {
	movs  map[string]*entity.Movimiento
	orden []string
}

func newFakeMovRepo() *fakeMovRepo {
	return &fakeMovRepo{movs: make(map[string]*entity.Movimiento)}
}

func (r *fakeMovRepo) Create(m *entity.Movimiento) error {
	copia := *m
	r.movs[m.ID] = &copia
	r.orden = append(r.orden, m.ID)
	return nil
}

func (r *fakeMovRepo) GetByID(id string) (*entity.Movimiento, error) {
	if m, ok := r.movs[id]; ok {
		copia := *m
		return &copia, nil
	}
	return nil, nil
}

func (r *fakeMovRepo) Update(m *entity.Movimiento) error {
	if _, ok := r.movs[m.ID]; !ok {
		return domain.ErrNotFound
	}
	copia := *m
	r.movs[m.ID] = &copia
	return nil
}

func (r *fakeMovRepo) Delete(id string) error {
	if _, ok := r.movs[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.movs, id)
	for i, v := range r.orden {
		if v == id {
			r.orden = append(r.orden[:i], r.orden[i+1:]...)
			break
		}
	}
	return nil
}

func (r *fakeMovRepo) List(repository.MovimientoFiltro, int, int) ([]*entity.Movimiento, error) {
	return r.ListTodos()
}

func (r *fakeMovRepo) ListTodos() ([]*entity.Movimiento, error) {
	out := make([]*entity.Movimiento, 0, len(r.orden))
	for _, id := range r.orden {
		copia := *r.movs[id]
		out = append(out, &copia)
	}
	return out, nil
}

// fakeTxRunner imita la atomicidad de la transacción: si fn falla, restaura el
// snapshot previo de ambos repos.
type fakeTxRunner struct {
	movRepo   *fakeMovRepo
	stockRepo *fakeStockRepo
}

func (tx *fakeTxRunner) Run(_ context.Context, fn func(
	movRepo repository.MovimientoRepository,
	stockRepo repository.StockRepository,
) error) error {
	movSnap := make(map[string]*entity.Movimiento, len(tx.movRepo.movs))
	for k, v := range tx.movRepo.movs {
		copia := *v
		movSnap[k] = &copia
	}
	ordenSnap := append([]string(nil), tx.movRepo.orden...)
	stockSnap := make(map[parStock]*entity.Stock, len(tx.stockRepo.filas))
	for k, v := range tx.stockRepo.filas {
		copia := *v
		stockSnap[k] = &copia
	}

	if err := fn(tx.movRepo, tx.stockRepo); err != nil {
		tx.movRepo.movs = movSnap
		tx.movRepo.orden = ordenSnap
		tx.stockRepo.filas = stockSnap
		return err
	}
	return nil
}

type fakeProductoRepo struct{ porID, porCodigo map[string]*entity.Producto }

func (r *fakeProductoRepo) Create(*entity.Producto) error { return nil }
func (r *fakeProductoRepo) GetByID(id string) (*entity.Producto, error) {
	return r.porID[id], nil
}
func (r *fakeProductoRepo) GetByCodigo(c string) (*entity.Producto, error) {
	return r.porCodigo[c], nil
}
func (r *fakeProductoRepo) Update(*entity.Producto) error { return nil }
func (r *fakeProductoRepo) List(repository.ProductoFiltro, int, int) ([]*entity.Producto, error) {
	return nil, nil
}
func (r *fakeProductoRepo) Delete(string) error { return nil }

type fakeUbicacionRepo struct{ porID, porCodigo map[string]*entity.Ubicacion }

func (r *fakeUbicacionRepo) Create(*entity.Ubicacion) error { return nil }
func (r *fakeUbicacionRepo) GetByID(id string) (*entity.Ubicacion, error) {
	return r.porID[id], nil
}
func (r *fakeUbicacionRepo) GetByCodigo(c string) (*entity.Ubicacion, error) {
	return r.porCodigo[c], nil
}
func (r *fakeUbicacionRepo) Update(*entity.Ubicacion) error { return nil }
func (r *fakeUbicacionRepo) List(repository.UbicacionFiltro, int, int) ([]*entity.Ubicacion, error) {
	return nil, nil
}
func (r *fakeUbicacionRepo) Delete(string) error { return nil }

type fakeColectivoRepo struct{ porID map[string]*entity.Colectivo }

func (r *fakeColectivoRepo) Create(*entity.Colectivo) error { return nil }
func (r *fakeColectivoRepo) GetByID(id string) (*entity.Colectivo, error) {
	return r.porID[id], nil
}
func (r *fakeColectivoRepo) GetByInterno(int) (*entity.Colectivo, error) { return nil, nil }
func (r *fakeColectivoRepo) Update(*entity.Colectivo) error              { return nil }
func (r *fakeColectivoRepo) List(repository.ColectivoFiltro, int, int) ([]*entity.Colectivo, error) {
	return nil, nil
}
func (r *fakeColectivoRepo) Delete(string) error { return nil }

// ──────────────────────────────────────────────────────────────────────────────
// Armado del entorno
// ──────────────────────────────────────────────────────────────────────────────

type entorno struct {
	uc    *inventory.MovimientoUseCase
	mov   *fakeMovRepo
	stock *fakeStockRepo
}

const (
	prodFiltro     = "prod-filtro"
	prodAceite     = "prod-aceite"
	ubicDeposito   = "ubic-deposito"
	ubicTaller     = "ubic-taller"
	ubicCuarentena = "ubic-cuarentena" // no permite transferencias
)

func nuevoEntorno() *entorno {
	productos := &fakeProductoRepo{
		porID: map[string]*entity.Producto{
			prodFiltro: {ID: prodFiltro, Codigo: "FIL-AC-001", Nombre: "Filtro de aceite"},
			prodAceite: {ID: prodAceite, Codigo: "ACE-15W40", Nombre: "Aceite 15W40"},
		},
		porCodigo: map[string]*entity.Producto{},
	}
	for _, p := range productos.porID {
		productos.porCodigo[p.Codigo] = p
	}
	ubicaciones := &fakeUbicacionRepo{
		porID: map[string]*entity.Ubicacion{
			ubicDeposito:   {ID: ubicDeposito, Codigo: "DP-A01", PermiteTransferencias: true},
			ubicTaller:     {ID: ubicTaller, Codigo: "TALLER", PermiteTransferencias: true},
			ubicCuarentena: {ID: ubicCuarentena, Codigo: "CUARENTENA"},
		},
		porCodigo: map[string]*entity.Ubicacion{},
	}
	for _, u := range ubicaciones.porID {
		ubicaciones.porCodigo[u.Codigo] = u
	}

	mov := newFakeMovRepo()
	stock := newFakeStockRepo()
	uc := inventory.NewMovimientoUseCase(
		&fakeTxRunner{movRepo: mov, stockRepo: stock},
		productos,
		ubicaciones,
		&fakeColectivoRepo{porID: map[string]*entity.Colectivo{}},
	)
	return &entorno{uc: uc, mov: mov, stock: stock}
}

func (e *entorno) registrar(t *testing.T, tipo string, cantidad int64) *entity.Movimiento {
	t.Helper()
	m, err := e.uc.RegistrarMovimiento(context.Background(), inventory.MovimientoInputDTO{
		ProductoID:  prodFiltro,
		UbicacionID: ubicDeposito,
		Tipo:        tipo,
		Cantidad:    decimal.NewFromInt(cantidad),
	})
	require.NoError(t, err)
	return m
}

// ──────────────────────────────────────────────────────────────────────────────
// Registrar
// ──────────────────────────────────────────────────────────────────────────────

func TestRegistrar_IngresoSumaStock(t *testing.T) {
	e := nuevoEntorno()
	m := e.registrar(t, entity.MovimientoINGRESO, 10)

	assert.True(t, decimal.NewFromInt(10).Equal(e.stock.cantidad(prodFiltro, ubicDeposito)),
		"el ingreso debe sumar al stock")
	guardado, err := e.mov.GetByID(m.ID)
	require.NoError(t, err)
	require.NotNil(t, guardado, "el movimiento debe quedar en el libro")
	assert.Equal(t, entity.MovimientoINGRESO, guardado.Tipo)
	assert.False(t, guardado.Fecha.IsZero(), "la fecha se asigna al crear")
}

func TestRegistrar_EgresoRestaStock(t *testing.T) {
	e := nuevoEntorno()
	e.registrar(t, entity.MovimientoINGRESO, 10)
	e.registrar(t, entity.MovimientoEGRESO, 4)

	assert.True(t, decimal.NewFromInt(6).Equal(e.stock.cantidad(prodFiltro, ubicDeposito)))
}

func TestRegistrar_EgresoSinStockSuficiente_Falla(t *testing.T) {
	e := nuevoEntorno()
	e.registrar(t, entity.MovimientoINGRESO, 3)

	_, err := e.uc.RegistrarMovimiento(context.Background(), inventory.MovimientoInputDTO{
		ProductoID:  prodFiltro,
		UbicacionID: ubicDeposito,
		Tipo:        entity.MovimientoEGRESO,
		Cantidad:    decimal.NewFromInt(5),
	})
	require.ErrorIs(t, err, domain.ErrStockInsuficiente)

	// ni el stock ni el libro deben haber cambiado
	assert.True(t, decimal.NewFromInt(3).Equal(e.stock.cantidad(prodFiltro, ubicDeposito)))
	movs, _ := e.mov.ListTodos()
	assert.Len(t, movs, 1, "el egreso rechazado no debe quedar en el libro")
}

func TestRegistrar_AjusteConSigno(t *testing.T) {
	e := nuevoEntorno()
	e.registrar(t, entity.MovimientoINGRESO, 10)

	_, err := e.uc.RegistrarMovimiento(context.Background(), inventory.MovimientoInputDTO{
		ProductoID:  prodFiltro,
		UbicacionID: ubicDeposito,
		Tipo:        entity.MovimientoAJUSTE,
		Cantidad:    decimal.NewFromInt(-3),
	})
	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(7).Equal(e.stock.cantidad(prodFiltro, ubicDeposito)),
		"el ajuste negativo debe restar")

	_, err = e.uc.RegistrarMovimiento(context.Background(), inventory.MovimientoInputDTO{
		ProductoID:  prodFiltro,
		UbicacionID: ubicDeposito,
		Tipo:        entity.MovimientoAJUSTE,
		Cantidad:    decimal.Zero,
	})
	assert.ErrorIs(t, err, domain.ErrMovimientoInvalido, "ajuste en cero no tiene sentido")
}

func TestRegistrar_AjusteNoDejaStockNegativo(t *testing.T) {
	e := nuevoEntorno()
	e.registrar(t, entity.MovimientoINGRESO, 2)

	_, err := e.uc.RegistrarMovimiento(context.Background(), inventory.MovimientoInputDTO{
		ProductoID:  prodFiltro,
		UbicacionID: ubicDeposito,
		Tipo:        entity.MovimientoAJUSTE,
		Cantidad:    decimal.NewFromInt(-5),
	})
	require.ErrorIs(t, err, domain.ErrStockInsuficiente)
	assert.True(t, decimal.NewFromInt(2).Equal(e.stock.cantidad(prodFiltro, ubicDeposito)))
}

func TestRegistrar_TransferenciaMueveEntreUbicaciones(t *testing.T) {
	e := nuevoEntorno()
	e.registrar(t, entity.MovimientoINGRESO, 10)

	m, err := e.uc.RegistrarMovimiento(context.Background(), inventory.MovimientoInputDTO{
		ProductoID:         prodFiltro,
		UbicacionID:        ubicDeposito,
		UbicacionDestinoID: ubicTaller,
		Tipo:               entity.MovimientoTRANSFERENCIA,
		Cantidad:           decimal.NewFromInt(4),
	})
	require.NoError(t, err)
	require.NotNil(t, m.UbicacionDestinoID)
	assert.Equal(t, ubicTaller, *m.UbicacionDestinoID)

	assert.True(t, decimal.NewFromInt(6).Equal(e.stock.cantidad(prodFiltro, ubicDeposito)))
	assert.True(t, decimal.NewFromInt(4).Equal(e.stock.cantidad(prodFiltro, ubicTaller)))
}

func TestRegistrar_TransferenciaSinStock_NoTocaDestino(t *testing.T) {
	e := nuevoEntorno()
	e.registrar(t, entity.MovimientoINGRESO, 2)

	_, err := e.uc.RegistrarMovimiento(context.Background(), inventory.MovimientoInputDTO{
		ProductoID:         prodFiltro,
		UbicacionID:        ubicDeposito,
		UbicacionDestinoID: ubicTaller,
		Tipo:               entity.MovimientoTRANSFERENCIA,
		Cantidad:           decimal.NewFromInt(5),
	})
	require.ErrorIs(t, err, domain.ErrStockInsuficiente)
	assert.True(t, decimal.NewFromInt(2).Equal(e.stock.cantidad(prodFiltro, ubicDeposito)))
	assert.True(t, decimal.Zero.Equal(e.stock.cantidad(prodFiltro, ubicTaller)))
}

func TestRegistrar_TransferenciaMismoOrigenYDestino_Falla(t *testing.T) {
	e := nuevoEntorno()
	_, err := e.uc.RegistrarMovimiento(context.Background(), inventory.MovimientoInputDTO{
		ProductoID:         prodFiltro,
		UbicacionID:        ubicDeposito,
		UbicacionDestinoID: ubicDeposito,
		Tipo:               entity.MovimientoTRANSFERENCIA,
		Cantidad:           decimal.NewFromInt(1),
	})
	assert.ErrorIs(t, err, domain.ErrMovimientoInvalido)
}

func TestRegistrar_TransferenciaAUbicacionQueNoPermite_Falla(t *testing.T) {
	e := nuevoEntorno()
	e.registrar(t, entity.MovimientoINGRESO, 5)

	_, err := e.uc.RegistrarMovimiento(context.Background(), inventory.MovimientoInputDTO{
		ProductoID:         prodFiltro,
		UbicacionID:        ubicDeposito,
		UbicacionDestinoID: ubicCuarentena,
		Tipo:               entity.MovimientoTRANSFERENCIA,
		Cantidad:           decimal.NewFromInt(1),
	})
	assert.ErrorIs(t, err, domain.ErrMovimientoInvalido)
}

func TestRegistrar_TipoDesconocido_Falla(t *testing.T) {
	e := nuevoEntorno()
	_, err := e.uc.RegistrarMovimiento(context.Background(), inventory.MovimientoInputDTO{
		ProductoID:  prodFiltro,
		UbicacionID: ubicDeposito,
		Tipo:        "PRESTAMO",
		Cantidad:    decimal.NewFromInt(1),
	})
	assert.ErrorIs(t, err, domain.ErrTipoMovimientoInvalido)
}

func TestRegistrar_ProductoInexistente_Falla(t *testing.T) {
	e := nuevoEntorno()
	_, err := e.uc.RegistrarMovimiento(context.Background(), inventory.MovimientoInputDTO{
		ProductoID:  "prod-fantasma",
		UbicacionID: ubicDeposito,
		Tipo:        entity.MovimientoINGRESO,
		Cantidad:    decimal.NewFromInt(1),
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Actualizar / Eliminar — revertir + aplicar
// ──────────────────────────────────────────────────────────────────────────────

func TestActualizar_RevierteElViejoYAplicaElNuevo(t *testing.T) {
	e := nuevoEntorno()
	m := e.registrar(t, entity.MovimientoINGRESO, 10)

	_, err := e.uc.ActualizarMovimiento(context.Background(), m.ID, inventory.MovimientoInputDTO{
		ProductoID:  prodFiltro,
		UbicacionID: ubicDeposito,
		Tipo:        entity.MovimientoINGRESO,
		Cantidad:    decimal.NewFromInt(4),
	})
	require.NoError(t, err)

	assert.True(t, decimal.NewFromInt(4).Equal(e.stock.cantidad(prodFiltro, ubicDeposito)),
		"editar equivale a eliminar + recrear: el stock refleja sólo la cantidad nueva")
}

func TestActualizar_CambioDeTipo(t *testing.T) {
	e := nuevoEntorno()
	e.registrar(t, entity.MovimientoINGRESO, 10)
	m := e.registrar(t, entity.MovimientoINGRESO, 5) // 15 en total

	// el segundo ingreso pasa a ser egreso: 10 - 5 = 5
	_, err := e.uc.ActualizarMovimiento(context.Background(), m.ID, inventory.MovimientoInputDTO{
		ProductoID:  prodFiltro,
		UbicacionID: ubicDeposito,
		Tipo:        entity.MovimientoEGRESO,
		Cantidad:    decimal.NewFromInt(5),
	})
	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(5).Equal(e.stock.cantidad(prodFiltro, ubicDeposito)))
}

func TestActualizar_FallaPreservaEstadoAnterior(t *testing.T) {
	e := nuevoEntorno()
	ingreso := e.registrar(t, entity.MovimientoINGRESO, 10)
	e.registrar(t, entity.MovimientoEGRESO, 8) // quedan 2

	// achicar el ingreso a 5 dejaría el stock en -3: debe fallar y no tocar nada
	_, err := e.uc.ActualizarMovimiento(context.Background(), ingreso.ID, inventory.MovimientoInputDTO{
		ProductoID:  prodFiltro,
		UbicacionID: ubicDeposito,
		Tipo:        entity.MovimientoINGRESO,
		Cantidad:    decimal.NewFromInt(5),
	})
	require.ErrorIs(t, err, domain.ErrStockInsuficiente)

	assert.True(t, decimal.NewFromInt(2).Equal(e.stock.cantidad(prodFiltro, ubicDeposito)),
		"el rollback debe preservar el stock anterior")
	guardado, _ := e.mov.GetByID(ingreso.ID)
	require.NotNil(t, guardado)
	assert.True(t, decimal.NewFromInt(10).Equal(guardado.Cantidad),
		"el movimiento no debe quedar a medio editar")
}

func TestActualizar_MovimientoInexistente_Falla(t *testing.T) {
	e := nuevoEntorno()
	_, err := e.uc.ActualizarMovimiento(context.Background(), "no-existe", inventory.MovimientoInputDTO{
		ProductoID:  prodFiltro,
		UbicacionID: ubicDeposito,
		Tipo:        entity.MovimientoINGRESO,
		Cantidad:    decimal.NewFromInt(1),
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestEliminar_RevierteElEfecto(t *testing.T) {
	e := nuevoEntorno()
	e.registrar(t, entity.MovimientoINGRESO, 10)
	egreso := e.registrar(t, entity.MovimientoEGRESO, 4) // quedan 6

	require.NoError(t, e.uc.EliminarMovimiento(context.Background(), egreso.ID))

	assert.True(t, decimal.NewFromInt(10).Equal(e.stock.cantidad(prodFiltro, ubicDeposito)),
		"eliminar el egreso devuelve el stock")
	guardado, _ := e.mov.GetByID(egreso.ID)
	assert.Nil(t, guardado, "el movimiento debe salir del libro")
}

func TestEliminar_IngresoYaConsumido_Falla(t *testing.T) {
	e := nuevoEntorno()
	ingreso := e.registrar(t, entity.MovimientoINGRESO, 10)
	e.registrar(t, entity.MovimientoEGRESO, 8) // quedan 2

	// revertir el ingreso dejaría el stock en -8
	err := e.uc.EliminarMovimiento(context.Background(), ingreso.ID)
	require.ErrorIs(t, err, domain.ErrStockInsuficiente)

	assert.True(t, decimal.NewFromInt(2).Equal(e.stock.cantidad(prodFiltro, ubicDeposito)))
	guardado, _ := e.mov.GetByID(ingreso.ID)
	assert.NotNil(t, guardado, "el movimiento no debe borrarse si la reversión falla")
}

// ──────────────────────────────────────────────────────────────────────────────
// Reconciliación
// ──────────────────────────────────────────────────────────────────────────────

func TestReconciliar_ReconstruyeDesdeElHistorial(t *testing.T) {
	e := nuevoEntorno()
	e.registrar(t, entity.MovimientoINGRESO, 10)
	e.registrar(t, entity.MovimientoEGRESO, 3)
	_, err := e.uc.RegistrarMovimiento(context.Background(), inventory.MovimientoInputDTO{
		ProductoID:         prodFiltro,
		UbicacionID:        ubicDeposito,
		UbicacionDestinoID: ubicTaller,
		Tipo:               entity.MovimientoTRANSFERENCIA,
		Cantidad:           decimal.NewFromInt(2),
	})
	require.NoError(t, err)

	// corromper la tabla materializada a propósito
	require.NoError(t, e.stock.Upsert(&entity.Stock{
		ProductoID:  prodFiltro,
		UbicacionID: ubicDeposito,
		Cantidad:    decimal.NewFromInt(999),
	}))

	resumen, err := e.uc.Reconciliar(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3, resumen.Movimientos)
	assert.Equal(t, 2, resumen.Pares)

	assert.True(t, decimal.NewFromInt(5).Equal(e.stock.cantidad(prodFiltro, ubicDeposito)),
		"10 - 3 - 2 transferidos")
	assert.True(t, decimal.NewFromInt(2).Equal(e.stock.cantidad(prodFiltro, ubicTaller)))
}
