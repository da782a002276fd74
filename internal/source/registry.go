// Package source provides the section-source strategies that turn the
// unusual-articles page into per-region title lists, plus a registry to
// select one by name.
package source

import (
	"fmt"

	"wikiweird/internal/ports"
)

// Registry keeps a mapping from strategy names to their implementations.
type Registry struct {
	sources map[string]ports.SectionSource
}

// NewRegistry builds an empty registry.
func NewRegistry() *Registry {
	return &Registry{sources: map[string]ports.SectionSource{}}
}

// Register adds or replaces a section source.
func (r *Registry) Register(src ports.SectionSource) {
	if r.sources == nil {
		r.sources = map[string]ports.SectionSource{}
	}
	r.sources[src.Name()] = src
}

// Resolve returns a source by name or an error if it is absent.
func (r *Registry) Resolve(name string) (ports.SectionSource, error) {
	if src, ok := r.sources[name]; ok {
		return src, nil
	}
	return nil, fmt.Errorf("section source %s is not registered", name)
}
