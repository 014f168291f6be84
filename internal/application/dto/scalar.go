package dto

import (
	"bytes"
	"encoding/json"
	"strings"
)

// Scalar valor JSON que puede llegar como número o como texto ("5" o 5).
// Conserva la representación textual para que la validación decida si es numérica.
// null o ausente dejan Set en false.
type Scalar struct {
	Raw string
	Set bool
}

// UnmarshalJSON acepta números, strings y cualquier otro valor (que fallará en la validación numérica).
func (s *Scalar) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*s = Scalar{}
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var str string
		if err := json.Unmarshal(data, &str); err != nil {
			return err
		}
		*s = Scalar{Raw: str, Set: true}
		return nil
	}
	*s = Scalar{Raw: string(data), Set: true}
	return nil
}

// MarshalJSON devuelve el texto original como string JSON, o null si no se envió.
func (s Scalar) MarshalJSON() ([]byte, error) {
	if !s.Set {
		return []byte("null"), nil
	}
	return json.Marshal(s.Raw)
}

// Present indica si el valor se envió y no está en blanco.
func (s Scalar) Present() bool {
	return s.Set && strings.TrimSpace(s.Raw) != ""
}

// Text devuelve el valor sin espacios alrededor.
func (s Scalar) Text() string {
	return strings.TrimSpace(s.Raw)
}

// NewScalar construye un Scalar presente a partir de texto (útil en tests y clientes).
func NewScalar(v string) Scalar {
	return Scalar{Raw: v, Set: true}
}
