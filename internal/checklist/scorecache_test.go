package checklist

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"chaincheck/internal/threat"
)

func TestScoreCache(t *testing.T) {
	c := newScoreCache()

	_, ok := c.Overall(threat.LevelBasic)
	assert.False(t, ok)

	gen := c.Generation()
	c.SetOverall(threat.LevelBasic, 40, gen)
	c.SetCategory(threat.LevelBasic, "wallet", 67, gen)
	c.SetOverall(threat.LevelAll, 55, gen)

	score, ok := c.Overall(threat.LevelBasic)
	assert.True(t, ok)
	assert.Equal(t, 40, score)

	score, ok = c.Category(threat.LevelBasic, "wallet")
	assert.True(t, ok)
	assert.Equal(t, 67, score)

	_, ok = c.Category(threat.LevelBasic, "defi")
	assert.False(t, ok)

	t.Run("InvalidateLevel clears only that level", func(t *testing.T) {
		c.InvalidateLevel(threat.LevelBasic)
		_, ok := c.Overall(threat.LevelBasic)
		assert.False(t, ok)
		_, ok = c.Category(threat.LevelBasic, "wallet")
		assert.False(t, ok)

		score, ok := c.Overall(threat.LevelAll)
		assert.True(t, ok)
		assert.Equal(t, 55, score)
	})

	t.Run("Invalidate clears everything", func(t *testing.T) {
		c.SetOverall(threat.LevelBasic, 40, c.Generation())
		c.Invalidate()
		_, ok := c.Overall(threat.LevelBasic)
		assert.False(t, ok)
		_, ok = c.Overall(threat.LevelAll)
		assert.False(t, ok)
	})
}

func TestScoreCacheDropsStaleFills(t *testing.T) {
	c := newScoreCache()

	// A fill computed before an invalidation must not land after it.
	gen := c.Generation()
	c.Invalidate()
	c.SetCategory(threat.LevelBasic, "wallet", 67, gen)
	c.SetOverall(threat.LevelBasic, 40, gen)

	_, ok := c.Category(threat.LevelBasic, "wallet")
	assert.False(t, ok, "stale category fill must be dropped")
	_, ok = c.Overall(threat.LevelBasic)
	assert.False(t, ok, "stale overall fill must be dropped")

	t.Run("InvalidateLevel also advances the generation", func(t *testing.T) {
		gen := c.Generation()
		c.InvalidateLevel(threat.LevelAll)
		c.SetCategory(threat.LevelBasic, "wallet", 67, gen)
		_, ok := c.Category(threat.LevelBasic, "wallet")
		assert.False(t, ok)
	})

	t.Run("current generation still fills", func(t *testing.T) {
		c.SetCategory(threat.LevelBasic, "wallet", 67, c.Generation())
		score, ok := c.Category(threat.LevelBasic, "wallet")
		assert.True(t, ok)
		assert.Equal(t, 67, score)
	})
}

func TestPercentage(t *testing.T) {
	assert.Equal(t, 0, percentage(0, 0), "zero relevant items scores 0")
	assert.Equal(t, 0, percentage(0, 10))
	assert.Equal(t, 67, percentage(2, 3))
	assert.Equal(t, 33, percentage(1, 3))
	assert.Equal(t, 13, percentage(1, 8))
	assert.Equal(t, 100, percentage(8, 8))
}
