package mods

import "fmt"

// Registry is the set of mods known to the game, in registration order.
type Registry struct {
	mods   []Mod
	byName map[string]Mod
}

func NewRegistry(mods ...Mod) (*Registry, error) {
	r := &Registry{byName: map[string]Mod{}}
	for _, m := range mods {
		if err := r.Register(m); nil != err {
			return nil, err
		}
	}
	return r, nil
}

// DefaultRegistry holds every mod shipped with the game.
func DefaultRegistry() *Registry {
	r, err := NewRegistry(Auto{})
	if nil != err {
		panic(err)
	}
	return r
}

func (r *Registry) Register(m Mod) error {
	if nil == m {
		return ErrNilMod
	}
	if _, ok := r.byName[m.Name()]; ok {
		return fmt.Errorf("%w: %s", ErrDuplicateMod, m.Name())
	}
	r.mods = append(r.mods, m)
	r.byName[m.Name()] = m
	return nil
}

func (r *Registry) Get(name string) (Mod, bool) {
	m, ok := r.byName[name]
	return m, ok
}

func (r *Registry) All() []Mod {
	return append([]Mod(nil), r.mods...)
}

// Visible lists the mods that are offered in mod selection. Hidden mods can
// still be activated through Resolve.
func (r *Registry) Visible() []Mod {
	visible := []Mod{}
	for _, m := range r.mods {
		if m.Visible() {
			visible = append(visible, m)
		}
	}
	return visible
}

// Resolve turns a list of names into the active mod list, keeping the given
// order. A mod can only be active once.
func (r *Registry) Resolve(names []string) ([]Mod, error) {
	active := make([]Mod, 0, len(names))
	seen := map[string]bool{}
	for _, name := range names {
		m, ok := r.byName[name]
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrUnknownMod, name)
		}
		if seen[name] {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateMod, name)
		}
		seen[name] = true
		active = append(active, m)
	}
	return active, nil
}
