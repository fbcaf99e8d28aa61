// Package goi18n exposes a go-i18n Localizer as a localize.Table, so
// translations managed by go-i18n bundles (message files, locale fallback
// chains) can back a localize.Formatter.
//
//	bundle := i18n.NewBundle(language.English)
//	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)
//	// load message files into the bundle...
//
//	localizer := i18n.NewLocalizer(bundle, "fr", "en")
//	formatter, err := localize.New(goi18n.NewTable(localizer))
//
// Message texts should carry printf verbs; the adapter hands the raw
// localized text to the formatter, which performs the positional
// substitution.
package goi18n

import (
	"github.com/nicksnyder/go-i18n/v2/i18n"

	"github.com/localizekit/localize"
)

// Ensure Table implements the localize.Table interface.
var _ localize.Table = (*Table)(nil)

// Table is a thin read-only adapter over a go-i18n Localizer.
type Table struct {
	localizer *i18n.Localizer
}

// NewTable creates a Table backed by the given localizer.
func NewTable(localizer *i18n.Localizer) *Table {
	if localizer == nil {
		panic("goi18n: localizer is not provided")
	}
	return &Table{localizer: localizer}
}

// Lookup resolves name through the localizer. Any localization failure,
// including an unknown message id, reports ok=false so the formatter applies
// its own fallback.
func (t *Table) Lookup(name string) (string, bool) {
	msg, err := t.localizer.Localize(&i18n.LocalizeConfig{MessageID: name})
	if err != nil {
		return "", false
	}
	return msg, true
}
