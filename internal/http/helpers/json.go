// Package helpers agrupa utilidades compartidas por los controllers.
package helpers

import (
	"encoding/json"
	"net/http"

	httperrors "github.com/dropDatabas3/teamspace/internal/http/errors"
)

const (
	// ContentTypeJSON es el content type de todas las respuestas.
	ContentTypeJSON = "application/json; charset=utf-8"

	// MaxBodySize limita el tamaño del body de los requests (1MB).
	MaxBodySize = 1 << 20
)

// WriteJSON serializa v con el status indicado.
func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", ContentTypeJSON)
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// DecodeJSON parsea el body JSON del request en dst, limitando el tamaño.
// Retorna un AppError listo para escribir si el body no es JSON válido.
func DecodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, MaxBodySize)
	defer r.Body.Close()

	dec := json.NewDecoder(r.Body)
	if err := dec.Decode(dst); err != nil {
		return httperrors.ErrInvalidJSON.WithCause(err)
	}
	return nil
}
