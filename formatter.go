package localize

import (
	"fmt"

	"golang.org/x/text/message"
)

// Formatter renders typed localization keys as display strings.
// It is immutable after creation, making it safe for concurrent use.
type Formatter struct {
	table   Table
	printer *message.Printer

	missingKeyHandler   func(name string)
	droppedValueHandler func(name string, value any)
}

// New creates a Formatter that resolves templates through the given table.
// All configuration happens during construction, making the instance
// immutable and thread-safe from creation.
func New(table Table, opts ...Option) (*Formatter, error) {
	if table == nil {
		return nil, fmt.Errorf("table cannot be nil")
	}

	f := &Formatter{table: table}
	for _, opt := range opts {
		if err := opt(f); err != nil {
			return nil, fmt.Errorf("failed to apply option: %w", err)
		}
	}

	return f, nil
}

// Format renders the key's translation with its payload substituted in
// positional order.
//
// The template is resolved by the key's lookup name alone. A missing entry
// falls back to rendering the name itself. Payload values are flattened and
// coerced into format arguments; values that cannot serve as arguments are
// silently omitted. Format never fails: a template whose verbs do not match
// the surviving arguments degrades per Go fmt rules.
func (f *Formatter) Format(key Key) string {
	name := key.Name()

	template, ok := f.table.Lookup(name)
	if !ok {
		if f.missingKeyHandler != nil {
			f.missingKeyHandler(name)
		}
		template = name
	}

	var dropped func(any)
	if f.droppedValueHandler != nil {
		dropped = func(value any) {
			f.droppedValueHandler(name, value)
		}
	}

	args := make([]any, 0, len(key.payload))
	for _, value := range key.payload {
		args = appendArgs(args, value, dropped)
	}

	// No arguments means no substitution; the template passes through
	// verbatim, leaving any placeholders unresolved.
	if len(args) == 0 {
		return template
	}

	if f.printer != nil {
		return f.printer.Sprintf(template, args...)
	}
	return fmt.Sprintf(template, args...)
}
