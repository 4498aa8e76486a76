package statusmap_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/statusmap"
)

func TestNew_Construction(t *testing.T) {
	t.Parallel()

	t.Run("registers sources and targets as nodes", func(t *testing.T) {
		t.Parallel()

		m, err := statusmap.New(
			statusmap.WithTargets("pending", "processing", "cancelled"),
			statusmap.WithTargets("processing", "shipped"),
		)
		require.NoError(t, err)

		assert.True(t, m.Has("pending"))
		assert.True(t, m.Has("processing"))
		assert.True(t, m.Has("cancelled"))
		// Auto-registered target without its own entry.
		assert.True(t, m.Has("shipped"))
		assert.False(t, m.Has("delivered"))
		assert.Equal(t, 4, m.Len())
	})

	t.Run("terminal status has no successors", func(t *testing.T) {
		t.Parallel()

		m, err := statusmap.New(
			statusmap.WithTargets("active", "archived"),
			statusmap.WithTargets("archived"),
		)
		require.NoError(t, err)

		succ, err := m.Successors("archived")
		require.NoError(t, err)
		assert.Empty(t, succ)
	})

	t.Run("iteration order follows declaration order", func(t *testing.T) {
		t.Parallel()

		m, err := statusmap.New(
			statusmap.WithTargets("draft", "review"),
			statusmap.WithTargets("review", "approved", "rejected"),
			statusmap.WithTargets("approved", "published"),
		)
		require.NoError(t, err)

		// Sources first, then targets in encounter order.
		want := []statusmap.Status{"draft", "review", "approved", "rejected", "published"}
		assert.Equal(t, want, m.Statuses())

		var iterated []statusmap.Status
		for s := range m.All() {
			iterated = append(iterated, s)
		}
		assert.Equal(t, want, iterated)
	})

	t.Run("construction is deterministic", func(t *testing.T) {
		t.Parallel()

		build := func() *statusmap.StatusMap {
			return statusmap.MustNew(
				statusmap.WithTargets("a", "b", "c"),
				statusmap.WithTargets("b", "d"),
			)
		}

		first := build()
		second := build()
		assert.Equal(t, first.Statuses(), second.Statuses())
		assert.Equal(t, first.Len(), second.Len())
	})

	t.Run("mixed plain and annotated forms", func(t *testing.T) {
		t.Parallel()

		m, err := statusmap.New(
			statusmap.WithTargets("pending", "processing"),
			statusmap.WithAnnotatedTargets("processing",
				statusmap.To("shipped", statusmap.WithValidations("check_inventory", "charge_payment")),
				statusmap.To("cancelled"),
			),
		)
		require.NoError(t, err)

		assert.Equal(t, 4, m.Len())
		require.NoError(t, m.ValidateTransition("processing", "shipped"))
		require.NoError(t, m.ValidateTransition("processing", "cancelled"))
	})

	t.Run("empty map is allowed", func(t *testing.T) {
		t.Parallel()

		m, err := statusmap.New()
		require.NoError(t, err)
		assert.Equal(t, 0, m.Len())
		assert.Empty(t, m.Statuses())
	})

	t.Run("empty status name fails", func(t *testing.T) {
		t.Parallel()

		_, err := statusmap.New(statusmap.WithTargets("", "next"))
		require.Error(t, err)
		assert.True(t, statusmap.IsInvalidSpecificationError(err))
	})

	t.Run("empty target name fails", func(t *testing.T) {
		t.Parallel()

		_, err := statusmap.New(statusmap.WithTargets("start", ""))
		require.Error(t, err)
		assert.True(t, statusmap.IsInvalidSpecificationError(err))
	})

	t.Run("duplicate source declaration fails", func(t *testing.T) {
		t.Parallel()

		_, err := statusmap.New(
			statusmap.WithTargets("a", "b"),
			statusmap.WithTargets("a", "c"),
		)
		require.Error(t, err)
		assert.True(t, statusmap.IsInvalidSpecificationError(err))
		assert.Contains(t, err.Error(), "declared more than once")
	})

	t.Run("duplicate edge fails", func(t *testing.T) {
		t.Parallel()

		_, err := statusmap.New(statusmap.WithTargets("a", "b", "b"))
		require.Error(t, err)
		assert.True(t, statusmap.IsInvalidSpecificationError(err))
	})

	t.Run("invalid cache capacity fails", func(t *testing.T) {
		t.Parallel()

		_, err := statusmap.New(
			statusmap.WithTargets("a", "b"),
			statusmap.WithCacheCapacity(0),
		)
		require.Error(t, err)
		assert.True(t, statusmap.IsInvalidSpecificationError(err))
	})

	t.Run("nil shared cache fails", func(t *testing.T) {
		t.Parallel()

		_, err := statusmap.New(
			statusmap.WithTargets("a", "b"),
			statusmap.WithCache(nil),
		)
		require.Error(t, err)
		assert.True(t, statusmap.IsInvalidSpecificationError(err))
	})
}

func TestMustNew_PanicsOnInvalidSpec(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() {
		statusmap.MustNew(statusmap.WithTargets("a", "a", "a"))
	})
}

func TestFromTable(t *testing.T) {
	t.Parallel()

	t.Run("builds from next-state table", func(t *testing.T) {
		t.Parallel()

		m, err := statusmap.New(statusmap.FromTable(map[statusmap.Status][]statusmap.Status{
			"new":     {"booting"},
			"booting": {"running", "error"},
			"running": {"stopped"},
			"stopped": nil,
			"error":   nil,
		}))
		require.NoError(t, err)

		assert.Equal(t, 5, m.Len())
		require.NoError(t, m.ValidateTransition("booting", "running"))
		require.NoError(t, m.ValidateTransition("booting", "error"))
	})

	t.Run("sorted sources give deterministic order", func(t *testing.T) {
		t.Parallel()

		table := map[statusmap.Status][]statusmap.Status{
			"c": {"a"},
			"a": {"b"},
			"b": {"c"},
		}

		first, err := statusmap.New(statusmap.FromTable(table))
		require.NoError(t, err)
		second, err := statusmap.New(statusmap.FromTable(table))
		require.NoError(t, err)

		assert.Equal(t, []statusmap.Status{"a", "b", "c"}, first.Statuses())
		assert.Equal(t, first.Statuses(), second.Statuses())
	})
}

func TestStatusMap_ReadSurface(t *testing.T) {
	t.Parallel()

	m := statusmap.MustNew(
		statusmap.WithTargets("draft", "review"),
		statusmap.WithTargets("review", "approved", "rejected"),
	)

	t.Run("successors in declared order", func(t *testing.T) {
		t.Parallel()

		succ, err := m.Successors("review")
		require.NoError(t, err)
		assert.Equal(t, []statusmap.Status{"approved", "rejected"}, succ)
	})

	t.Run("successors of unknown status", func(t *testing.T) {
		t.Parallel()

		_, err := m.Successors("missing")
		require.Error(t, err)
		assert.True(t, statusmap.IsStatusNotFoundError(err))
	})

	t.Run("statuses returns a copy", func(t *testing.T) {
		t.Parallel()

		statuses := m.Statuses()
		statuses[0] = "mutated"
		assert.Equal(t, statusmap.Status("draft"), m.Statuses()[0])
	})

	t.Run("string representation", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "StatusMap(statuses=[draft review approved rejected])", m.String())
	})
}

func TestStatusMap_Validations(t *testing.T) {
	t.Parallel()

	m := statusmap.MustNew(
		statusmap.WithTargets("pending", "cancelled"),
		statusmap.WithAnnotatedTargets("processing",
			statusmap.To("shipped",
				statusmap.WithValidations("check_inventory", "charge_payment"),
				statusmap.WithMeta("notify", true),
			),
			statusmap.To("cancelled"),
		),
	)

	t.Run("returns declared hooks in order", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, []string{"check_inventory", "charge_payment"}, m.Validations("processing", "shipped"))
	})

	t.Run("empty for annotated edge without hooks", func(t *testing.T) {
		t.Parallel()

		assert.Empty(t, m.Validations("processing", "cancelled"))
	})

	t.Run("empty for plain edge", func(t *testing.T) {
		t.Parallel()

		assert.Empty(t, m.Validations("pending", "cancelled"))
	})

	t.Run("empty for absent edge and absent statuses", func(t *testing.T) {
		t.Parallel()

		assert.Empty(t, m.Validations("pending", "shipped"))
		assert.Empty(t, m.Validations("nope", "shipped"))
		assert.Empty(t, m.Validations("pending", "nope"))
	})

	t.Run("attributes expose meta for annotated edges", func(t *testing.T) {
		t.Parallel()

		attrs, ok := m.Attributes("processing", "shipped")
		require.True(t, ok)
		assert.Equal(t, true, attrs.Meta["notify"])

		_, ok = m.Attributes("pending", "cancelled")
		assert.False(t, ok)
	})
}
