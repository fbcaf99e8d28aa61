package localize

// Table provides translated templates keyed by a Key's lookup name.
// Implementations must be safe for concurrent use; the formatter treats them
// as read-only. Locale selection, file loading, and caching are the
// implementation's concern, not the formatter's.
type Table interface {
	// Lookup returns the template for the given lookup name.
	// The second return value reports whether a template exists; the
	// formatter falls back to the name itself when it does not.
	Lookup(name string) (template string, ok bool)
}

// TableFunc adapts a plain function to the Table interface.
type TableFunc func(name string) (string, bool)

// Lookup calls f(name).
func (f TableFunc) Lookup(name string) (string, bool) {
	return f(name)
}

// StaticTable is an in-memory Table backed by a plain map.
// It must not be mutated after it is handed to a Formatter.
type StaticTable map[string]string

// Lookup returns the template stored under name.
func (t StaticTable) Lookup(name string) (string, bool) {
	template, ok := t[name]
	return template, ok
}
