package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "github.com/mutline/mutline/internal/model"
)

func TestApplyMutation(t *testing.T) {
	lines := []string{
		"def is_empty(self):\n",
		"    return self.size == 0\n",
		"\n",
	}

	mu := m.Mutation{
		Operator: m.OperatorRelational,
		LineNo:   2,
		ColStart: 20,
		ColEnd:   24,
		Before:   " == ",
		After:    " != ",
	}

	t.Run("changes exactly the recorded line", func(t *testing.T) {
		mutated, err := ApplyMutation(lines, mu)
		require.NoError(t, err)

		require.Len(t, mutated, len(lines))
		assert.Equal(t, "    return self.size != 0\n", mutated[1])

		changed := 0

		for i := range lines {
			if lines[i] != mutated[i] {
				changed++
				assert.Equal(t, mu.LineNo, i+1)
			}
		}

		assert.Equal(t, 1, changed)
	})

	t.Run("never modifies the input", func(t *testing.T) {
		_, err := ApplyMutation(lines, mu)
		require.NoError(t, err)

		assert.Equal(t, "    return self.size == 0\n", lines[1])
	})

	t.Run("stale before text", func(t *testing.T) {
		stale := mu
		stale.Before = " <= "

		mutated, err := ApplyMutation(lines, stale)
		require.ErrorIs(t, err, ErrStaleLocation)
		assert.Nil(t, mutated)
		assert.Equal(t, "    return self.size == 0\n", lines[1])
	})

	t.Run("line out of range", func(t *testing.T) {
		bad := mu
		bad.LineNo = 42

		_, err := ApplyMutation(lines, bad)
		require.ErrorIs(t, err, ErrStaleLocation)
	})

	t.Run("span out of range", func(t *testing.T) {
		bad := mu
		bad.ColEnd = 400

		_, err := ApplyMutation(lines, bad)
		require.ErrorIs(t, err, ErrStaleLocation)
	})

	t.Run("mutation against an already mutated line is rejected", func(t *testing.T) {
		first, err := ApplyMutation(lines, mu)
		require.NoError(t, err)

		shifted := append([]string{"# header\n"}, first...)

		_, err = ApplyMutation(shifted, mu)
		require.ErrorIs(t, err, ErrStaleLocation)
	})
}
