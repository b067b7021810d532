package postgres_test

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gabiv12/panol-erp/internal/domain/repository"
	"github.com/gabiv12/panol-erp/internal/infrastructure/postgres"
)

// ──────────────────────────────────────────────────────────────────────────────
// Querier fake que captura el SQL generado
// ──────────────────────────────────────────────────────────────────────────────

type llamadaSQL struct {
	sql  string
	args []any
}

type fakeQuerier struct {
	execs   []llamadaSQL
	queries []llamadaSQL
}

func (q *fakeQuerier) Exec(_ context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	q.execs = append(q.execs, llamadaSQL{sql: sql, args: args})
	return pgconn.CommandTag{}, nil
}

func (q *fakeQuerier) Query(_ context.Context, sql string, args ...any) (pgx.Rows, error) {
	q.queries = append(q.queries, llamadaSQL{sql: sql, args: args})
	return filasVacias{}, nil
}

func (q *fakeQuerier) QueryRow(_ context.Context, sql string, args ...any) pgx.Row {
	q.queries = append(q.queries, llamadaSQL{sql: sql, args: args})
	return filaInexistente{}
}

type filasVacias struct{}

func (filasVacias) Close()                                       {}
func (filasVacias) Err() error                                   { return nil }
func (filasVacias) CommandTag() pgconn.CommandTag                { return pgconn.CommandTag{} }
func (filasVacias) FieldDescriptions() []pgconn.FieldDescription { return nil }
func (filasVacias) Next() bool                                   { return false }
func (filasVacias) Scan(...any) error                            { return nil }
func (filasVacias) Values() ([]any, error)                       { return nil, nil }
func (filasVacias) RawValues() [][]byte                          { return nil }
func (filasVacias) Conn() *pgx.Conn                              { return nil }

type filaInexistente struct{}

func (filaInexistente) Scan(...any) error { return pgx.ErrNoRows }

// ──────────────────────────────────────────────────────────────────────────────
// ListDetalle: paginación
// ──────────────────────────────────────────────────────────────────────────────

func TestStockRepo_ListDetalleSinLimiteTraeTodo(t *testing.T) {
	q := &fakeQuerier{}
	repo := postgres.NewStockRepository(q)

	_, err := repo.ListDetalle(repository.StockFiltro{SoloConStock: true}, 0, 0)
	require.NoError(t, err)

	require.Len(t, q.queries, 1)
	assert.NotContains(t, q.queries[0].sql, "LIMIT", "limit <= 0 no debe paginar (lo usa el export CSV)")
	assert.Contains(t, q.queries[0].sql, "s.cantidad <> 0")
	assert.Empty(t, q.queries[0].args)
}

func TestStockRepo_ListDetalleConLimitePagina(t *testing.T) {
	q := &fakeQuerier{}
	repo := postgres.NewStockRepository(q)

	_, err := repo.ListDetalle(repository.StockFiltro{ProductoID: "prod-1"}, 50, 100)
	require.NoError(t, err)

	require.Len(t, q.queries, 1)
	assert.Contains(t, q.queries[0].sql, "LIMIT $2 OFFSET $3")
	assert.Equal(t, []any{"prod-1", 50, 100}, q.queries[0].args)
}

// ──────────────────────────────────────────────────────────────────────────────
// GetForUpdate: la fila tiene que existir para que FOR UPDATE bloquee
// ──────────────────────────────────────────────────────────────────────────────

func TestStockRepo_GetForUpdateAseguraLaFilaAntesDeBloquear(t *testing.T) {
	q := &fakeQuerier{}
	repo := postgres.NewStockRepository(q)

	s, err := repo.GetForUpdate("prod-1", "ubic-1")
	require.NoError(t, err)
	require.NotNil(t, s)
	assert.True(t, s.Cantidad.IsZero())

	require.Len(t, q.execs, 1)
	assert.Contains(t, q.execs[0].sql, "ON CONFLICT (producto_id, ubicacion_id) DO NOTHING")
	assert.Equal(t, []any{"prod-1", "ubic-1"}, q.execs[0].args)

	require.Len(t, q.queries, 1)
	assert.Contains(t, q.queries[0].sql, "FOR UPDATE")
}
