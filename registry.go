package ashrand

import (
	"fmt"
	"sort"
)

// Factory constructs a fresh generator in its default self-seeded state.
type Factory func() Generator

// Registry is an explicit table from four-character algorithm tags to
// factories. It is built by whoever needs tag dispatch (a serializer, the
// config facade) rather than populated as ambient global state; two
// registries in one process are independent.
type Registry struct {
	factories map[string]Factory
}

// NewRegistry returns a registry pre-loaded with every built-in
// algorithm.
func NewRegistry() *Registry {
	r := &Registry{factories: make(map[string]Factory)}
	for tag, f := range map[string]Factory{
		TagSplitMix64:      func() Generator { return NewSplitMix64() },
		TagWyrand:          func() Generator { return NewWyrand() },
		TagLCG64:           func() Generator { return NewLCG64() },
		TagPCGRXSMXS:       func() Generator { return NewPCGRXSMXS() },
		TagLehmer128:       func() Generator { return NewLehmer128() },
		TagXoroshiro128PP:  func() Generator { return NewXoroshiro128PP() },
		TagXorshift128Plus: func() Generator { return NewXorshift128Plus() },
		TagRomuTrio:        func() Generator { return NewRomuTrio() },
		TagXoshiro256SS:    func() Generator { return NewXoshiro256SS() },
		TagXoshiro256PP:    func() Generator { return NewXoshiro256PP() },
		TagSFC64:           func() Generator { return NewSFC64() },
		TagJSF64:           func() Generator { return NewJSF64() },
		TagMinRandom:       func() Generator { return NewMinRandom() },
		TagMaxRandom:       func() Generator { return NewMaxRandom() },
	} {
		// Built-in tags are unique by construction; a clash here is a
		// programming error in this file.
		if err := r.Register(tag, f); err != nil {
			panic(err)
		}
	}
	return r
}

// Register adds a factory under tag. Tags must be exactly four characters
// and unused.
func (r *Registry) Register(tag string, f Factory) error {
	if len(tag) != 4 {
		return fmt.Errorf("tag %q must be four characters: %w", tag, ErrInvalidArgument)
	}
	if f == nil {
		return fmt.Errorf("nil factory for tag %q: %w", tag, ErrInvalidArgument)
	}
	if _, dup := r.factories[tag]; dup {
		return fmt.Errorf("tag %q already registered: %w", tag, ErrInvalidArgument)
	}
	r.factories[tag] = f
	return nil
}

// New constructs a fresh generator for tag.
func (r *Registry) New(tag string) (Generator, error) {
	f, ok := r.factories[tag]
	if !ok {
		return nil, fmt.Errorf("unknown algorithm tag %q: %w", tag, ErrInvalidArgument)
	}
	return f(), nil
}

// Tags lists the registered tags in stable order.
func (r *Registry) Tags() []string {
	tags := make([]string, 0, len(r.factories))
	for tag := range r.factories {
		tags = append(tags, tag)
	}
	sort.Strings(tags)
	return tags
}
