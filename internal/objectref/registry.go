// Package objectref resolves generic (type, id) references back to concrete objects.
package objectref

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/aidar/teams/internal/domain"
)

// Resolver loads the object with the given id for one registered type.
type Resolver func(ctx context.Context, id int64) (any, error)

// Registry maps type tags to resolvers. Safe for concurrent use.
type Registry struct {
	mu        sync.RWMutex
	resolvers map[string]Resolver
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{resolvers: make(map[string]Resolver)}
}

// Register binds a type tag to its resolver, replacing any previous binding.
func (r *Registry) Register(tag string, resolver Resolver) {
	if tag == "" || resolver == nil {
		panic("objectref: empty tag or nil resolver")
	}

	r.mu.Lock()
	r.resolvers[tag] = resolver
	r.mu.Unlock()
}

// Registered reports whether tag has a resolver.
func (r *Registry) Registered(tag string) bool {
	r.mu.RLock()
	_, ok := r.resolvers[tag]
	r.mu.RUnlock()
	return ok
}

// Types returns the registered tags in sorted order.
func (r *Registry) Types() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	tags := make([]string, 0, len(r.resolvers))
	for tag := range r.resolvers {
		tags = append(tags, tag)
	}
	sort.Strings(tags)
	return tags
}

// Resolve loads the object ref points at.
func (r *Registry) Resolve(ctx context.Context, ref domain.ObjectRef) (any, error) {
	r.mu.RLock()
	resolver, ok := r.resolvers[ref.Type]
	r.mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w: %q", domain.ErrUnknownObjectType, ref.Type)
	}

	obj, err := resolver(ctx, ref.ID)
	if err != nil {
		return nil, fmt.Errorf("resolve %s: %w", ref, err)
	}
	return obj, nil
}
