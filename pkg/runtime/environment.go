package runtime

import (
	"fmt"
	"sort"
	"sync"
)

// UndefinedVariableError is returned when a name is not bound anywhere in the
// scope chain.
type UndefinedVariableError struct {
	Name string
}

func (e *UndefinedVariableError) Error() string {
	return fmt.Sprintf("Undefined variable '%s'.", e.Name)
}

// Environment is one lexical scope of Orlang bindings.
type Environment struct {
	values map[string]Value
	parent *Environment
	mu     sync.RWMutex
}

// NewEnvironment creates a new environment, optionally nested under a parent.
func NewEnvironment(parent *Environment) *Environment {
	return &Environment{
		values: make(map[string]Value),
		parent: parent,
	}
}

// Parent exposes the enclosing scope (nil when global).
func (e *Environment) Parent() *Environment {
	e.mu.RLock()
	parent := e.parent
	e.mu.RUnlock()
	return parent
}

// Define binds name in the current scope, replacing any earlier binding of
// the same name in this scope.
func (e *Environment) Define(name string, value Value) {
	if value == nil {
		value = NilValue{}
	}
	e.mu.Lock()
	e.values[name] = value
	e.mu.Unlock()
}

// Assign updates the binding in the nearest scope that defines name. It never
// creates a binding.
func (e *Environment) Assign(name string, value Value) error {
	if value == nil {
		value = NilValue{}
	}
	for scope := e; scope != nil; scope = scope.Parent() {
		scope.mu.Lock()
		if _, ok := scope.values[name]; ok {
			scope.values[name] = value
			scope.mu.Unlock()
			return nil
		}
		scope.mu.Unlock()
	}
	return &UndefinedVariableError{Name: name}
}

// Get retrieves a binding, searching outward through the scope chain.
func (e *Environment) Get(name string) (Value, error) {
	for scope := e; scope != nil; scope = scope.Parent() {
		scope.mu.RLock()
		v, ok := scope.values[name]
		scope.mu.RUnlock()
		if ok {
			return v, nil
		}
	}
	return nil, &UndefinedVariableError{Name: name}
}

// Has reports whether the binding exists anywhere in the scope chain.
func (e *Environment) Has(name string) bool {
	_, err := e.Get(name)
	return err == nil
}

// Keys returns the names bound in this scope in sorted order.
func (e *Environment) Keys() []string {
	e.mu.RLock()
	keys := make([]string, 0, len(e.values))
	for k := range e.values {
		keys = append(keys, k)
	}
	e.mu.RUnlock()
	sort.Strings(keys)
	return keys
}

// Snapshot returns a copy of the bindings of this scope.
func (e *Environment) Snapshot() map[string]Value {
	e.mu.RLock()
	out := make(map[string]Value, len(e.values))
	for k, v := range e.values {
		out[k] = v
	}
	e.mu.RUnlock()
	return out
}
