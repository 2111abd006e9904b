// Package gen renders initializers for annotated structs and assembles them
// into generated files.
//
// Generation approach uses text/template, with golang.org/x/tools/imports
// re-parsing and formatting every assembled file.
//
// For a struct T with fields f1..fN two initializers exist:
//   - NewT(f1, ..., fN) T sets every field from its argument (MemberStyle only)
//   - NewTFrom(src T, f1, ..., fN) T copies src and applies every non-nil
//     argument over it (both styles)
//
// In NewTFrom, pointer and function fields are passed as declared; any other
// field is taken by pointer.
package gen
