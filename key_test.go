package localize_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/localizekit/localize"
)

func TestNewKey(t *testing.T) {
	t.Run("name is independent of payload", func(t *testing.T) {
		withPayload := localize.NewKey("greeting", "John")
		withoutPayload := localize.NewKey("greeting")

		assert.Equal(t, "greeting", withPayload.Name())
		assert.Equal(t, "greeting", withoutPayload.Name())
	})

	t.Run("payload preserves declaration order", func(t *testing.T) {
		key := localize.NewKey("transfer", "alice", "bob", 42)

		assert.Equal(t, []any{"alice", "bob", 42}, key.Payload())
	})

	t.Run("empty payload returns nil", func(t *testing.T) {
		key := localize.NewKey("welcome")

		assert.Nil(t, key.Payload())
	})

	t.Run("payload returns a copy", func(t *testing.T) {
		key := localize.NewKey("greeting", "John")

		payload := key.Payload()
		payload[0] = "mutated"

		assert.Equal(t, []any{"John"}, key.Payload())
	})
}
