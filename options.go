package localize

import (
	"fmt"

	"golang.org/x/text/message"
)

// Option configures the Formatter during construction.
type Option func(*Formatter) error

// WithPrinter replaces the default fmt-based substitution engine with a
// locale-aware x/text message printer. Arguments are then rendered with the
// printer's locale conventions (digit grouping, etc.).
func WithPrinter(printer *message.Printer) Option {
	return func(f *Formatter) error {
		if printer == nil {
			return fmt.Errorf("printer cannot be nil")
		}
		f.printer = printer
		return nil
	}
}

// WithMissingKeyHandler sets a handler called when the table has no template
// for a key's lookup name. The formatter still falls back to rendering the
// name itself; the handler only observes. Useful for logging missing
// translations during development.
func WithMissingKeyHandler(handler func(name string)) Option {
	return func(f *Formatter) error {
		f.missingKeyHandler = handler
		return nil
	}
}

// WithDroppedValueHandler sets a handler called for each payload value that
// cannot be coerced to a format argument. Such values are omitted from the
// argument list either way; the handler only observes.
func WithDroppedValueHandler(handler func(name string, value any)) Option {
	return func(f *Formatter) error {
		f.droppedValueHandler = handler
		return nil
	}
}
