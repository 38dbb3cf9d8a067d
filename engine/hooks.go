package engine

import (
	"github.com/lixenwraith/nova-strike/vmath"
)

// Collaborator interfaces to the excluded layers (render, physics, audio,
// progression). The core calls these and never waits on them.

// ObstacleQuery answers spawn placement collision checks
type ObstacleQuery interface {
	IsBlocked(pos vmath.Vec2) bool
}

// ScoreSink receives kill awards for external progression systems
type ScoreSink interface {
	OnEnemyKilled(score, xp int)
}

// CuePlayer plays fire-and-forget audio/particle cues
type CuePlayer interface {
	PlayCue(name string, pos vmath.Vec2)
}

// OpenField is an ObstacleQuery with no obstacles
type OpenField struct{}

func (OpenField) IsBlocked(vmath.Vec2) bool { return false }

// NopScore discards kill awards
type NopScore struct{}

func (NopScore) OnEnemyKilled(int, int) {}

// NopCues discards cues
type NopCues struct{}

func (NopCues) PlayCue(string, vmath.Vec2) {}
