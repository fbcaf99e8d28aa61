package goi18n_test

import (
	"testing"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/pelletier/go-toml/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"github.com/localizekit/localize"
	"github.com/localizekit/localize/goi18n"
)

func newLocalizer(t *testing.T, langs ...string) *i18n.Localizer {
	t.Helper()

	bundle := i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	_, err := bundle.ParseMessageFileBytes([]byte(
		"welcome = \"Welcome!\"\n"+
			"pointsEarned = \"You earned %d points\"\n",
	), "active.en.toml")
	require.NoError(t, err)

	_, err = bundle.ParseMessageFileBytes([]byte(
		"welcome = \"Bienvenue !\"\n",
	), "active.fr.toml")
	require.NoError(t, err)

	return i18n.NewLocalizer(bundle, langs...)
}

func TestNewTable(t *testing.T) {
	t.Run("panics on nil localizer", func(t *testing.T) {
		assert.Panics(t, func() {
			goi18n.NewTable(nil)
		})
	})
}

func TestLookup(t *testing.T) {
	t.Run("resolves message for requested language", func(t *testing.T) {
		table := goi18n.NewTable(newLocalizer(t, "fr", "en"))

		template, ok := table.Lookup("welcome")
		assert.True(t, ok)
		assert.Equal(t, "Bienvenue !", template)
	})

	t.Run("falls back through the language chain", func(t *testing.T) {
		table := goi18n.NewTable(newLocalizer(t, "fr", "en"))

		template, ok := table.Lookup("pointsEarned")
		assert.True(t, ok)
		assert.Equal(t, "You earned %d points", template)
	})

	t.Run("reports unknown message id", func(t *testing.T) {
		table := goi18n.NewTable(newLocalizer(t, "en"))

		template, ok := table.Lookup("unmapped")
		assert.False(t, ok)
		assert.Empty(t, template)
	})
}

func TestFormatterIntegration(t *testing.T) {
	formatter, err := localize.New(goi18n.NewTable(newLocalizer(t, "en")))
	require.NoError(t, err)

	t.Run("formats localized template with payload", func(t *testing.T) {
		got := formatter.Format(localize.NewKey("pointsEarned", 5))
		assert.Equal(t, "You earned 5 points", got)
	})

	t.Run("missing message renders the lookup name", func(t *testing.T) {
		got := formatter.Format(localize.NewKey("unmapped"))
		assert.Equal(t, "unmapped", got)
	})
}
