// Package repository define las interfaces de repositorio de dominio.
//
// Estas interfaces representan contratos de negocio, independientes del
// almacenamiento subyacente. La implementación concreta vive en
// internal/store/pg.
//
// Convenciones:
//   - Context siempre es el primer parámetro
//   - Los métodos Get*/Update*/Delete* retornan ErrNotFound si el recurso no existe
//   - Los inputs de update usan punteros: nil = campo no tocado (partial update)
//   - Errores de dominio están en errors.go
package repository
