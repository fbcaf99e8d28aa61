package localize

// Key is a typed localization key: a stable lookup name identifying the
// message, plus the ordered payload values substituted into the translated
// template. The name alone selects the translation; payload shape never
// influences the lookup.
//
// Applications define their closed key set as constructor functions, one per
// variant, so the compiler enforces each variant's payload shape:
//
//	func Welcome() localize.Key {
//		return localize.NewKey("welcome")
//	}
//
//	func PointsEarned(count int) localize.Key {
//		return localize.NewKey("pointsEarned", count)
//	}
type Key struct {
	name    string
	payload []any
}

// NewKey creates a Key with the given lookup name and associated payload
// values in declaration order.
func NewKey(name string, payload ...any) Key {
	return Key{name: name, payload: payload}
}

// Name returns the lookup name used to resolve the translation template.
func (k Key) Name() string {
	return k.name
}

// Payload returns a copy of the raw associated values in declaration order,
// before any flattening or coercion.
func (k Key) Payload() []any {
	if len(k.payload) == 0 {
		return nil
	}
	out := make([]any, len(k.payload))
	copy(out, k.payload)
	return out
}
