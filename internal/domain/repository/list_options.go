package repository

// SortOrder dirección de ordenamiento.
type SortOrder string

const (
	SortAsc  SortOrder = "asc"
	SortDesc SortOrder = "desc"
)

// Sort orden solicitado. Column ya debe estar validada contra la lista permitida de la entidad.
type Sort struct {
	Column string
	Order  SortOrder
}

// ListOptions filtros de un listado. Search vacío no filtra; Sort nil usa el orden por defecto (id).
type ListOptions struct {
	Search string
	Sort   *Sort
}
