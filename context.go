package navbar

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackielii/ctxkey"
)

var registryCtx = ctxkey.New[*Registry]("navbar.registry", nil)

// WithRegistry returns a copy of ctx carrying reg.
func WithRegistry(ctx context.Context, reg *Registry) context.Context {
	return registryCtx.WithValue(ctx, reg)
}

// RegistryFrom returns the registry stored by WithRegistry, or nil.
func RegistryFrom(ctx context.Context) *Registry {
	return registryCtx.Value(ctx)
}

// PathFor returns the path of the entry labelled label in the context's registry.
// Views use it to link to navigation destinations without repeating paths.
func PathFor(ctx context.Context, label string) (string, error) {
	reg := RegistryFrom(ctx)
	if reg == nil {
		return "", errors.New("pathfor: registry not found in context")
	}
	for _, e := range reg.All() {
		if e.Label == label {
			return e.Path, nil
		}
	}
	return "", fmt.Errorf("pathfor: no entry labelled %q", label)
}
