// Package plugin describes the transformations a host driver can invoke and
// maps their activation markers to them.
package plugin

import (
	"errors"
	"fmt"
	"slices"

	"easyinit/internal/syntax"
)

// ErrUnknownMarker is returned by Lookup for markers nobody registered.
var ErrUnknownMarker = errors.New("no transformation registered for marker")

// Context carries what an expansion may need beyond the declaration itself.
type Context struct {
	// Reserved are identifiers generated code must not shadow.
	Reserved []string
}

// ExpandFunc expands one annotated declaration into declaration source text.
// It must return either all declarations or an error, never both.
type ExpandFunc func(decl *syntax.Decl, ctx Context) ([]string, error)

// Descriptor is one transformation a host can invoke.
type Descriptor struct {
	Name   string     // Human-readable name, e.g. "EasyInit"
	Marker string     // Directive text without "//", e.g. "easyinit:generate"
	Expand ExpandFunc // Expansion handler
}

// Registry maps markers to descriptors. It is built once at startup and
// read-only afterwards.
type Registry struct {
	byMarker map[string]Descriptor
}

// New builds a Registry from descriptors. Markers must be unique and every
// descriptor needs an Expand function.
func New(descs ...Descriptor) (*Registry, error) {
	r := &Registry{byMarker: make(map[string]Descriptor, len(descs))}

	for _, d := range descs {
		if d.Marker == "" {
			return nil, fmt.Errorf("descriptor %q has no marker", d.Name)
		}
		if d.Expand == nil {
			return nil, fmt.Errorf("descriptor %q has no expand function", d.Name)
		}
		if prev, ok := r.byMarker[d.Marker]; ok {
			return nil, fmt.Errorf("marker %q registered by both %q and %q", d.Marker, prev.Name, d.Name)
		}

		r.byMarker[d.Marker] = d
	}

	return r, nil
}

// Lookup returns the descriptor registered for marker.
func (r *Registry) Lookup(marker string) (Descriptor, error) {
	d, ok := r.byMarker[marker]
	if !ok {
		return Descriptor{}, fmt.Errorf("%w: %q", ErrUnknownMarker, marker)
	}

	return d, nil
}

// Markers returns the registered markers in sorted order.
func (r *Registry) Markers() []string {
	out := make([]string, 0, len(r.byMarker))
	for m := range r.byMarker {
		out = append(out, m)
	}

	slices.Sort(out)

	return out
}
