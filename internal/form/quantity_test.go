package form_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"backoffice-dashboard/internal/form"
)

func TestQuantity(t *testing.T) {
	t.Run("new quantity is committed", func(t *testing.T) {
		q := form.NewQuantity(1)
		assert.Equal(t, form.QuantityCommitted, q.State())
		assert.Equal(t, "1", q.Raw())
		assert.True(t, q.Positive())
	})

	t.Run("typing does not touch the committed value", func(t *testing.T) {
		q := form.NewQuantity(2)
		q.Type("5")
		assert.Equal(t, form.QuantityTyping, q.State())
		assert.Equal(t, 2, q.Committed())
		_, ok := q.Value()
		assert.False(t, ok)
	})

	t.Run("blur commits and normalizes", func(t *testing.T) {
		q := form.NewQuantity(2)
		q.Type(" 05 ")
		q.Blur()
		n, ok := q.Value()
		assert.True(t, ok)
		assert.Equal(t, 5, n)
		assert.Equal(t, "5", q.Raw())
	})

	t.Run("blur on garbage clears and invalidates", func(t *testing.T) {
		q := form.NewQuantity(2)
		q.Type("abc")
		q.Blur()
		assert.Equal(t, form.QuantityInvalid, q.State())
		assert.Equal(t, "", q.Raw())
		assert.Equal(t, 2, q.Committed())
		assert.False(t, q.Positive())
	})

	t.Run("blur on empty buffer invalidates", func(t *testing.T) {
		q := form.NewQuantity(3)
		q.Type("")
		q.Blur()
		assert.Equal(t, form.QuantityInvalid, q.State())
	})

	t.Run("zero commits but is not positive", func(t *testing.T) {
		q := form.NewQuantity(1)
		q.Type("0")
		q.Blur()
		n, ok := q.Value()
		assert.True(t, ok)
		assert.Equal(t, 0, n)
		assert.False(t, q.Positive())
	})

	t.Run("invalid recovers after valid typing", func(t *testing.T) {
		q := form.NewQuantity(1)
		q.Type("x")
		q.Blur()
		q.Type("4")
		q.Blur()
		n, ok := q.Value()
		assert.True(t, ok)
		assert.Equal(t, 4, n)
	})

	t.Run("restore", func(t *testing.T) {
		same := form.RestoreQuantity(2, "2")
		assert.Equal(t, form.QuantityCommitted, same.State())

		edited := form.RestoreQuantity(2, "5")
		assert.Equal(t, form.QuantityTyping, edited.State())
		edited.Blur()
		n, _ := edited.Value()
		assert.Equal(t, 5, n)
	})
}
