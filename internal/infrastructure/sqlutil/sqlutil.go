// Package sqlutil reúne la construcción de fragmentos SQL compartida por los adaptadores relacionales.
package sqlutil

import (
	"strings"

	"github.com/jhoicas/instock-api/internal/domain"
	"github.com/jhoicas/instock-api/internal/domain/repository"
)

// WarehouseColumns columna ordenable → expresión SQL calificada (alias w = warehouses).
var WarehouseColumns = map[string]string{
	"id":               "w.id",
	"warehouse_name":   "w.warehouse_name",
	"address":          "w.address",
	"city":             "w.city",
	"country":          "w.country",
	"contact_name":     "w.contact_name",
	"contact_position": "w.contact_position",
	"contact_phone":    "w.contact_phone",
	"contact_email":    "w.contact_email",
	"created_at":       "w.created_at",
	"updated_at":       "w.updated_at",
}

// InventoryColumns columna ordenable → expresión SQL calificada (i = inventories, w = warehouses).
var InventoryColumns = map[string]string{
	"id":             "i.id",
	"warehouse_id":   "i.warehouse_id",
	"warehouse_name": "w.warehouse_name",
	"item_name":      "i.item_name",
	"description":    "i.description",
	"category":       "i.category",
	"status":         "i.status",
	"quantity":       "i.quantity",
	"created_at":     "i.created_at",
	"updated_at":     "i.updated_at",
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// LikePattern escapa los comodines de LIKE y envuelve s en %...% para búsqueda por subcadena.
func LikePattern(s string) string {
	return "%" + likeEscaper.Replace(s) + "%"
}

// OrderBy arma la cláusula ORDER BY. Solo acepta columnas presentes en columns;
// cualquier otra devuelve un error de validación sin tocar el SQL. tiebreak asegura un orden estable.
func OrderBy(sort *repository.Sort, columns map[string]string, tiebreak string) (string, error) {
	if sort == nil {
		return " ORDER BY " + tiebreak + " ASC", nil
	}
	expr, ok := columns[sort.Column]
	if !ok {
		return "", domain.NewValidationError(domain.MsgInvalidSortColumn)
	}
	dir := "ASC"
	switch sort.Order {
	case repository.SortAsc:
	case repository.SortDesc:
		dir = "DESC"
	default:
		return "", domain.NewValidationError(domain.MsgInvalidSortOrder)
	}
	if expr == tiebreak {
		return " ORDER BY " + expr + " " + dir, nil
	}
	return " ORDER BY " + expr + " " + dir + ", " + tiebreak + " ASC", nil
}
