package settings

// Accessor bundles the per-variable operations the registry exposes for one
// declared name: a getter, a setter, a presence check, and a truthiness
// check for boolean variables. These are thin pass-throughs to the
// registry; any accessor surface (generated methods, templates, RPC) can be
// built on top of this table.
type Accessor struct {
	Get     func() (any, error)
	Set     func(value any) error
	Present func() (bool, error)

	// True is non-nil only for boolean variables.
	True func() (bool, error)
}

// Accessors builds the dispatch table mapping each declared variable name
// to its accessor functions. Build it once after declaration is complete;
// a table built earlier does not see later declarations.
func (r *Registry) Accessors() map[string]Accessor {
	out := make(map[string]Accessor, len(r.order))
	for _, name := range r.order {
		name := name
		acc := Accessor{
			Get:     func() (any, error) { return r.Get(name) },
			Set:     func(value any) error { return r.Set(name, value) },
			Present: func() (bool, error) { return r.IsPresent(name) },
		}
		if r.specs[name].Type == TypeBool {
			acc.True = func() (bool, error) {
				value, err := r.Get(name)
				if err != nil {
					return false, err
				}
				b, ok := value.(bool)
				return ok && b, nil
			}
		}
		out[name] = acc
	}
	return out
}
