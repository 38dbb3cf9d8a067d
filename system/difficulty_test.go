package system

import (
	"math"
	"testing"
)

func testCurve() DifficultyCurve {
	return DifficultyCurve{
		Base:         5,
		Increment:    2,
		Scaling:      1.2,
		MaxAlive:     40,
		BossInterval: 5,
	}
}

// TestEnemyCountWaveOne verifies the curve starts at the base count
func TestEnemyCountWaveOne(t *testing.T) {
	c := testCurve()
	if got := c.EnemyCount(1); got != 5 {
		t.Errorf("Wave 1: expected 5, got %d", got)
	}
}

// TestEnemyCountFormula verifies the count against the closed form
func TestEnemyCountFormula(t *testing.T) {
	c := testCurve()
	for wave := 1; wave <= 20; wave++ {
		linear := c.Base + float64(wave-1)*c.Increment
		want := int(math.Round(linear * math.Pow(c.Scaling, float64(wave-1)*0.1)))
		if want > c.MaxAlive {
			want = c.MaxAlive
		}
		if got := c.EnemyCount(wave); got != want {
			t.Errorf("Wave %d: expected %d, got %d", wave, want, got)
		}
	}
}

// TestEnemyCountMonotonic verifies counts never decrease as waves advance
func TestEnemyCountMonotonic(t *testing.T) {
	c := testCurve()
	prev := 0
	for wave := 1; wave <= 50; wave++ {
		got := c.EnemyCount(wave)
		if got < prev {
			t.Errorf("Wave %d count %d below wave %d count %d", wave, got, wave-1, prev)
		}
		prev = got
	}
}

// TestEnemyCountCap verifies the alive cap bounds the batch size
func TestEnemyCountCap(t *testing.T) {
	c := testCurve()
	if got := c.EnemyCount(1000); got != c.MaxAlive {
		t.Errorf("Expected cap %d, got %d", c.MaxAlive, got)
	}
}

// TestIsBossWave verifies the interval override
func TestIsBossWave(t *testing.T) {
	c := testCurve()
	for wave := 1; wave <= 20; wave++ {
		want := wave%5 == 0
		if got := c.IsBossWave(wave); got != want {
			t.Errorf("Wave %d: boss=%v, expected %v", wave, got, want)
		}
	}

	// Interval zero disables boss waves entirely
	c.BossInterval = 0
	for wave := 1; wave <= 20; wave++ {
		if c.IsBossWave(wave) {
			t.Errorf("Wave %d flagged boss with interval 0", wave)
		}
	}
}

// TestStatMultiplierGrowth verifies scaling starts at 1 and grows
func TestStatMultiplierGrowth(t *testing.T) {
	c := testCurve()
	if got := c.StatMultiplier(1); math.Abs(got-1) > 1e-12 {
		t.Errorf("Wave 1 multiplier: expected 1, got %v", got)
	}
	prev := 0.0
	for wave := 1; wave <= 30; wave++ {
		got := c.StatMultiplier(wave)
		if got <= prev {
			t.Errorf("Wave %d multiplier %v not increasing from %v", wave, got, prev)
		}
		prev = got
	}

	// Wave 11 is exactly one full scaling step
	if got := c.StatMultiplier(11); math.Abs(got-1.2) > 1e-12 {
		t.Errorf("Wave 11 multiplier: expected 1.2, got %v", got)
	}
}

// TestDefaultCurveMatchesParameters verifies the tuned curve wiring
func TestDefaultCurveMatchesParameters(t *testing.T) {
	c := DefaultCurve()
	if c.Base != 5 || c.Increment != 2 || c.Scaling != 1.2 || c.BossInterval != 5 {
		t.Errorf("Unexpected default curve: %+v", c)
	}
}
