// Package stylevars holds process-wide style variables: named values that
// styling code reads directly instead of subscribing to the engine.
package stylevars

import (
	"sort"
	"strings"
	"sync"
)

// LightAngle is the variable the lighting engine mirrors its angle into.
const LightAngle = "--light-angle"

// Var is a single named style value.
type Var struct {
	Name  string
	Value string
}

// Store is a goroutine-safe set of style variables.
type Store struct {
	mu   sync.RWMutex
	vars map[string]string
}

var global = NewStore()

// Global returns the process-wide store.
func Global() *Store {
	return global
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{vars: make(map[string]string)}
}

// Set stores value under name.
func (s *Store) Set(name, value string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.vars[name] = value
}

// SetAll stores every variable in vars.
func (s *Store) SetAll(vars []Var) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, v := range vars {
		s.vars[v.Name] = v.Value
	}
}

// Get returns the value for name and whether it is set.
func (s *Store) Get(name string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.vars[name]
	return v, ok
}

// Snapshot returns all variables sorted by name.
func (s *Store) Snapshot() []Var {
	s.mu.RLock()
	out := make([]Var, 0, len(s.vars))
	for name, value := range s.vars {
		out = append(out, Var{Name: name, Value: value})
	}
	s.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Render writes the store as a :root custom property block.
func (s *Store) Render() string {
	return Render(s.Snapshot())
}

// Render formats vars, in the given order, as a :root custom property block.
func Render(vars []Var) string {
	var sb strings.Builder
	sb.WriteString(":root {\n")
	for _, v := range vars {
		sb.WriteString("  ")
		sb.WriteString(v.Name)
		sb.WriteString(": ")
		sb.WriteString(v.Value)
		sb.WriteString(";\n")
	}
	sb.WriteString("}\n")
	return sb.String()
}
