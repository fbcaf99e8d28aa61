// Package localize maps strongly-typed localization keys to formatted,
// locale-specific display strings.
//
// A Key pairs a stable lookup name with the ordered payload values that get
// substituted into the translated template. The Formatter resolves the
// template through a Table (any key/template provider) and applies
// positional printf-style substitution. Both failure modes degrade instead
// of erroring: a missing template renders the lookup name itself, and
// payload values that cannot serve as format arguments are silently omitted.
//
// # Basic Usage
//
// Define the application's key set as typed constructors and format them
// against a table:
//
//	import "github.com/localizekit/localize"
//
//	func Welcome() localize.Key {
//		return localize.NewKey("welcome")
//	}
//
//	func PointsEarned(count int) localize.Key {
//		return localize.NewKey("pointsEarned", count)
//	}
//
//	formatter, err := localize.New(localize.StaticTable{
//		"welcome":      "Welcome!",
//		"pointsEarned": "You earned %d points",
//	})
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	formatter.Format(Welcome())        // "Welcome!"
//	formatter.Format(PointsEarned(5))  // "You earned 5 points"
//
// Constructors are the closed variant set: each one fixes its payload shape
// at compile time, and the lookup name stays independent of the payload.
//
// # Payload Flattening
//
// Payload values become format arguments in declaration order. A slice or
// array payload is spliced element-wise in place rather than passed as a
// single argument:
//
//	localize.NewKey("topScores", []int{9, 7, 5})
//	// template "Top three: %d, %d, %d" -> "Top three: 9, 7, 5"
//
// []byte is the exception: it stays one string-like argument. Values with no
// positional rendering (structs, maps, nil) are dropped from the argument
// list; WithDroppedValueHandler observes them:
//
//	formatter, _ := localize.New(table,
//		localize.WithDroppedValueHandler(func(name string, value any) {
//			slog.Warn("unformattable payload", "key", name, "value", value)
//		}),
//	)
//
// # String Tables
//
// Table is the seam to whatever owns translations. StaticTable covers fixed
// in-process tables, TableFunc adapts closures, and the goi18n subpackage
// bridges a go-i18n Localizer. Loading, locale selection, and caching belong
// to the provider behind the interface; the formatter only calls Lookup.
//
//	table := localize.TableFunc(func(name string) (string, bool) {
//		return catalog.Message(currentLocale, name)
//	})
//
// # Missing Translations
//
// A name with no table entry renders as the name itself, so untranslated
// keys stay visible instead of failing:
//
//	formatter.Format(localize.NewKey("unmapped")) // "unmapped"
//
// WithMissingKeyHandler hooks these for logging during development:
//
//	formatter, _ := localize.New(table,
//		localize.WithMissingKeyHandler(func(name string) {
//			slog.Warn("missing translation", "key", name)
//		}),
//	)
//
// # Locale-Aware Rendering
//
// By default substitution uses fmt. WithPrinter swaps in an x/text message
// printer so arguments render with locale conventions:
//
//	printer := message.NewPrinter(language.German)
//	formatter, _ := localize.New(table, localize.WithPrinter(printer))
//	formatter.Format(PointsEarned(12345)) // digit grouping per locale
//
// # Concurrency
//
// A Formatter is immutable after New and safe for concurrent use, provided
// the table behind it is not mutated. Format is a pure function of the key
// and the table contents.
package localize
