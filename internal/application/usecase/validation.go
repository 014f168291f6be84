package usecase

import (
	"strconv"
	"strings"

	"github.com/jhoicas/instock-api/internal/application/dto"
	"github.com/jhoicas/instock-api/internal/domain"
	"github.com/jhoicas/instock-api/internal/domain/repository"
	"github.com/shopspring/decimal"
)

func blank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// parseSort valida columna y dirección contra la lista permitida antes de que lleguen a la consulta.
func parseSort(column, order string, allowed []string) (*repository.Sort, error) {
	col := strings.ToLower(strings.TrimSpace(column))
	found := false
	for _, a := range allowed {
		if a == col {
			found = true
			break
		}
	}
	if !found {
		return nil, domain.NewValidationError(domain.MsgInvalidSortColumn)
	}
	switch repository.SortOrder(strings.ToLower(strings.TrimSpace(order))) {
	case repository.SortAsc:
		return &repository.Sort{Column: col, Order: repository.SortAsc}, nil
	case repository.SortDesc:
		return &repository.Sort{Column: col, Order: repository.SortDesc}, nil
	default:
		return nil, domain.NewValidationError(domain.MsgInvalidSortOrder)
	}
}

// parseWarehouseID interpreta warehouse_id; un valor no entero no puede resolver a ninguna bodega.
func parseWarehouseID(s dto.Scalar) (int64, error) {
	id, err := strconv.ParseInt(s.Text(), 10, 64)
	if err != nil || id <= 0 {
		return 0, domain.NewValidationError(domain.MsgInvalidWarehouseID)
	}
	return id, nil
}

// parseQuantity exige un decimal no negativo. Rechaza "abc", "NaN", "Infinity" y negativos.
func parseQuantity(s dto.Scalar) (decimal.Decimal, error) {
	q, err := decimal.NewFromString(s.Text())
	if err != nil || q.IsNegative() {
		return decimal.Zero, domain.NewValidationError(domain.MsgInvalidQuantity)
	}
	return q, nil
}

// inventoryFieldsPresent primer paso de validación de artículos: todos los campos obligatorios.
// quantity 0 cuenta como presente.
func inventoryFieldsPresent(in dto.InventoryRequest) bool {
	return in.WarehouseID.Present() &&
		!blank(in.ItemName) &&
		!blank(in.Description) &&
		!blank(in.Category) &&
		!blank(in.Status) &&
		in.Quantity.Present()
}
