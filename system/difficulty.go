package system

import (
	"math"

	"github.com/lixenwraith/nova-strike/parameter"
)

// DifficultyCurve maps a wave number to enemy count and stat scaling
// Pure data, no state; monotonic non-decreasing for Scaling >= 1
type DifficultyCurve struct {
	Base         float64
	Increment    float64
	Scaling      float64
	MaxAlive     int
	BossInterval int
}

// DefaultCurve returns the tuned session curve
func DefaultCurve() DifficultyCurve {
	return DifficultyCurve{
		Base:         parameter.WaveBaseCount,
		Increment:    parameter.WaveCountIncrement,
		Scaling:      parameter.WaveScaling,
		MaxAlive:     parameter.MaxEnemiesAlive,
		BossInterval: parameter.WaveBossInterval,
	}
}

// EnemyCount returns the standard batch size for wave, capped at MaxAlive
// count = min(round((base + (wave-1)·increment) · scaling^((wave-1)·0.1)), maxAlive)
func (c DifficultyCurve) EnemyCount(wave int) int {
	if wave < 1 {
		wave = 1
	}
	linear := c.Base + float64(wave-1)*c.Increment
	scaled := linear * math.Pow(c.Scaling, float64(wave-1)*0.1)
	count := int(math.Round(scaled))
	if c.MaxAlive > 0 && count > c.MaxAlive {
		count = c.MaxAlive
	}
	if count < 1 {
		count = 1
	}
	return count
}

// IsBossWave reports the boss-wave override: a single boss replaces the
// standard batch entirely
func (c DifficultyCurve) IsBossWave(wave int) bool {
	return c.BossInterval > 0 && wave%c.BossInterval == 0
}

// StatMultiplier scales enemy health and kill awards with the wave's
// exponential growth term
func (c DifficultyCurve) StatMultiplier(wave int) float64 {
	if wave < 1 {
		wave = 1
	}
	return math.Pow(c.Scaling, float64(wave-1)*0.1)
}
