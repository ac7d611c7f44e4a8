package pattern

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNames(t *testing.T) {
	assert.Equal(t, []Name{BossRain, BossSpiral, MiniBossFan}, Names())
}

// TestLoad_AllPatterns tests that every embedded pattern parses
func TestLoad_AllPatterns(t *testing.T) {
	for _, name := range Names() {
		bml, err := Load(name)
		require.NoError(t, err, name)
		assert.NotNil(t, bml)

		again, err := Load(name)
		require.NoError(t, err)
		assert.Same(t, bml, again, "parsed patterns are cached")
	}
}

func TestLoad_Unknown(t *testing.T) {
	_, err := Load("nope")
	assert.Error(t, err)
}

func TestNewEmitter_IncompleteOptions(t *testing.T) {
	_, err := NewEmitter(MiniBossFan, Options{})
	assert.Error(t, err)
}

// TestEmitter_FiresMovingBullets tests that each pattern fires bullets from
// the shooter position that then move away from it
func TestEmitter_FiresMovingBullets(t *testing.T) {
	for _, name := range Names() {
		var fired []Bullet
		e, err := NewEmitter(name, Options{
			Shooter: func() (float64, float64) { return 400, 100 },
			Target:  func() (float64, float64) { return 400, 500 },
			OnFire:  func(b Bullet) { fired = append(fired, b) },
		})
		require.NoError(t, err, name)

		for i := 0; i < 120; i++ {
			require.NoError(t, e.Update())
		}
		assert.Equal(t, 120, e.Ticks())
		require.NotEmpty(t, fired, name)

		b := fired[0]
		for i := 0; i < 10; i++ {
			require.NoError(t, b.Update())
		}
		x, y := b.Position()
		dx, dy := x-400, y-100
		assert.Greater(t, dx*dx+dy*dy, 1.0, name)
	}
}
