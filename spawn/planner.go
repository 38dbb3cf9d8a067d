// Package spawn computes world positions for new entities
// Patterns place by sequence index; validation keeps spawns off obstacles
// and outside the minimum distance to the target, with a bounded retry and
// an unconditional fallback so a position is always returned
package spawn

import (
	"math"

	"github.com/lixenwraith/nova-strike/core"
	"github.com/lixenwraith/nova-strike/engine"
	"github.com/lixenwraith/nova-strike/parameter"
	"github.com/lixenwraith/nova-strike/vmath"
)

// goldenAngle is the spiral pattern step, 137.5° in radians
const goldenAngle = 137.5 * math.Pi / 180

// Planner computes and validates spawn positions
type Planner struct {
	rng       *vmath.FastRand
	obstacles engine.ObstacleQuery
}

func NewPlanner(rng *vmath.FastRand, obstacles engine.ObstacleQuery) *Planner {
	if obstacles == nil {
		obstacles = engine.OpenField{}
	}
	return &Planner{rng: rng, obstacles: obstacles}
}

// Position returns the raw pattern position for sequence index
// expected is the planned total count, used by index-distributed patterns
func (p *Planner) Position(pattern core.SpawnPattern, center vmath.Vec2, index, expected int, radius float64) vmath.Vec2 {
	switch pattern {
	case core.PatternGrid:
		return p.gridPosition(center, index, expected, radius)
	case core.PatternRing:
		return p.ringPosition(center, index, expected, radius)
	case core.PatternSpiral:
		return p.spiralPosition(center, index, radius)
	case core.PatternRandom:
		return p.randomPosition(center, radius)
	default:
		return p.circlePosition(center, radius)
	}
}

// circlePosition picks a uniform direction at 0.8–1.0 of radius
func (p *Planner) circlePosition(center vmath.Vec2, radius float64) vmath.Vec2 {
	dist := p.rng.Range(0.8*radius, radius)
	return center.Add(p.rng.UnitVec2().Scale(dist))
}

// gridPosition arranges index into a square lattice of side
// ceil(sqrt(expected)), spaced evenly across a 2·radius square
func (p *Planner) gridPosition(center vmath.Vec2, index, expected int, radius float64) vmath.Vec2 {
	if expected < 1 {
		expected = 1
	}
	side := int(math.Ceil(math.Sqrt(float64(expected))))
	spacing := 2 * radius / float64(side)
	col := index % side
	row := index / side
	return vmath.Vec2{
		X: center.X - radius + spacing*(float64(col)+0.5),
		Y: center.Y - radius + spacing*(float64(row)+0.5),
	}
}

// ringPosition spaces index evenly around a full circle at radius
func (p *Planner) ringPosition(center vmath.Vec2, index, expected int, radius float64) vmath.Vec2 {
	if expected < 1 {
		expected = 1
	}
	angle := 2 * math.Pi * float64(index) / float64(expected)
	return center.Add(vmath.FromAngle(angle).Scale(radius))
}

// spiralPosition follows a golden-angle spiral outward from center
func (p *Planner) spiralPosition(center vmath.Vec2, index int, radius float64) vmath.Vec2 {
	angle := float64(index) * goldenAngle
	dist := math.Sqrt(float64(index)) * radius / 5
	return center.Add(vmath.FromAngle(angle).Scale(dist))
}

// randomPosition picks a uniform point inside the disc of radius
func (p *Planner) randomPosition(center vmath.Vec2, radius float64) vmath.Vec2 {
	dist := radius * math.Sqrt(p.rng.Float64())
	return center.Add(p.rng.UnitVec2().Scale(dist))
}

// IsValid rejects positions closer than minDistance to the target or
// blocked by an obstacle
func (p *Planner) IsValid(pos, target vmath.Vec2, minDistance float64) bool {
	if pos.Distance(target) < minDistance {
		return false
	}
	return !p.obstacles.IsBlocked(pos)
}

// Plan returns a validated position for sequence index
// Invalid pattern positions retry with the circle algorithm up to the retry
// limit, then fall back to target + random-direction × radius unconditionally.
// Never fails: a position is always returned
func (p *Planner) Plan(pattern core.SpawnPattern, center vmath.Vec2, index, expected int, radius float64, target vmath.Vec2, minDistance float64) vmath.Vec2 {
	pos := p.Position(pattern, center, index, expected, radius)
	if p.IsValid(pos, target, minDistance) {
		return pos
	}

	for i := 0; i < parameter.SpawnRetryLimit; i++ {
		pos = p.circlePosition(center, radius)
		if p.IsValid(pos, target, minDistance) {
			return pos
		}
	}

	return target.Add(p.rng.UnitVec2().Scale(radius))
}
