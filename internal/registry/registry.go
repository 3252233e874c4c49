// Package registry stores registered argument specs, preserving the order
// in which distinct names were first added so that help screens render
// deterministically.
package registry

// Spec is a single registered argument: the exact flag token used as the
// lookup key, and the description shown on the help screen. Specs are
// immutable once stored; re-adding a name replaces its spec wholesale.
type Spec struct {
	Name        string
	Description string
}

// Registry maps flag names to their specs, insertion-ordered.
type Registry struct {
	order []string
	specs map[string]Spec
}

// New returns an empty registry.
func New() *Registry {
	return &Registry{specs: make(map[string]Spec)}
}

// Add registers name with the given description. Re-adding an existing
// name overwrites its description but keeps its original position.
func (r *Registry) Add(name, description string) {
	if _, exists := r.specs[name]; !exists {
		r.order = append(r.order, name)
	}

	r.specs[name] = Spec{Name: name, Description: description}
}

// Has reports whether name has been registered.
func (r *Registry) Has(name string) bool {
	_, exists := r.specs[name]

	return exists
}

// Get returns the spec registered under name.
func (r *Registry) Get(name string) (Spec, bool) {
	spec, exists := r.specs[name]

	return spec, exists
}

// Len returns the number of distinct registered names.
func (r *Registry) Len() int {
	return len(r.order)
}

// Specs returns all specs in first-insertion order.
func (r *Registry) Specs() []Spec {
	specs := make([]Spec, 0, len(r.order))
	for _, name := range r.order {
		specs = append(specs, r.specs[name])
	}

	return specs
}
