package sqlutil_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/instock-api/internal/domain"
	"github.com/jhoicas/instock-api/internal/domain/entity"
	"github.com/jhoicas/instock-api/internal/domain/repository"
	"github.com/jhoicas/instock-api/internal/infrastructure/sqlutil"
)

func TestLikePattern_EscapaComodines(t *testing.T) {
	assert.Equal(t, "%wh-1%", sqlutil.LikePattern("wh-1"))
	assert.Equal(t, `%50\%%`, sqlutil.LikePattern("50%"))
	assert.Equal(t, `%a\_b%`, sqlutil.LikePattern("a_b"))
	assert.Equal(t, `%c:\\tmp%`, sqlutil.LikePattern(`c:\tmp`))
	assert.Equal(t, "%%", sqlutil.LikePattern(""))
}

func TestOrderBy_SinOrdenUsaDesempate(t *testing.T) {
	clause, err := sqlutil.OrderBy(nil, sqlutil.WarehouseColumns, "w.id")
	require.NoError(t, err)
	assert.Equal(t, " ORDER BY w.id ASC", clause)
}

func TestOrderBy_ColumnaPermitida(t *testing.T) {
	clause, err := sqlutil.OrderBy(&repository.Sort{Column: "warehouse_name", Order: repository.SortDesc},
		sqlutil.InventoryColumns, "i.id")
	require.NoError(t, err)
	assert.Equal(t, " ORDER BY w.warehouse_name DESC, i.id ASC", clause)

	clause, err = sqlutil.OrderBy(&repository.Sort{Column: "id", Order: repository.SortAsc},
		sqlutil.InventoryColumns, "i.id")
	require.NoError(t, err)
	assert.Equal(t, " ORDER BY i.id ASC", clause)
}

func TestOrderBy_RechazaColumnaDesconocida(t *testing.T) {
	_, err := sqlutil.OrderBy(&repository.Sort{Column: "id; DROP TABLE warehouses", Order: repository.SortAsc},
		sqlutil.WarehouseColumns, "w.id")
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))
	assert.Equal(t, domain.MsgInvalidSortColumn, err.Error())
}

func TestOrderBy_RechazaDireccionDesconocida(t *testing.T) {
	_, err := sqlutil.OrderBy(&repository.Sort{Column: "id", Order: "sideways"},
		sqlutil.WarehouseColumns, "w.id")
	require.Error(t, err)
	assert.Equal(t, domain.MsgInvalidSortOrder, err.Error())
}

// Las listas permitidas del dominio y los mapas SQL deben coincidir exactamente.
func TestColumnas_CoincidenConListasDelDominio(t *testing.T) {
	assert.Len(t, sqlutil.WarehouseColumns, len(entity.WarehouseSortColumns))
	for _, c := range entity.WarehouseSortColumns {
		assert.Contains(t, sqlutil.WarehouseColumns, c)
	}
	assert.Len(t, sqlutil.InventoryColumns, len(entity.InventorySortColumns))
	for _, c := range entity.InventorySortColumns {
		assert.Contains(t, sqlutil.InventoryColumns, c)
	}
}
