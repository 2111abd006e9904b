// Package extract turns an annotated struct declaration into the ordered
// sequence of fields the initializer templates are rendered from.
//
// Only named fields are accepted. Embedded fields, blank (_) fields, fields
// without a type and fields whose type is not one of
//   - a named type form (T, pkg.T, T[K], []T, map[K]V, ...)
//   - a pointer to a named type form
//   - a function signature
//   - a pointer to a function signature
//
// fail the extraction with an *ExpansionError. Methods are ignored.
package extract
