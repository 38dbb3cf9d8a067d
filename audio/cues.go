// Package audio plays short synthesized cues for game events
// Cues are fire-and-forget; a failed init degrades to silence so the
// simulation never depends on a working audio device
package audio

import (
	"log"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/nova-strike/vmath"
)

const sampleRate = beep.SampleRate(44100)

// cueSpec is one synthesized tone: pitch and length
type cueSpec struct {
	freq float64
	dur  time.Duration
}

// cueTable maps cue names to tones. Unknown names fall back to a soft blip
var cueTable = map[string]cueSpec{
	"enemy-spawn":    {220, 40 * time.Millisecond},
	"boss-spawn":     {110, 300 * time.Millisecond},
	"enemy-death":    {440, 60 * time.Millisecond},
	"explosion":      {90, 200 * time.Millisecond},
	"player-hit":     {160, 120 * time.Millisecond},
	"wave-clear":     {660, 250 * time.Millisecond},
	"level-up":       {880, 300 * time.Millisecond},
	"synergy":        {990, 200 * time.Millisecond},
	"charge":         {130, 150 * time.Millisecond},
	"kamikaze-arm":   {520, 80 * time.Millisecond},
	"swarm-dive":     {390, 80 * time.Millisecond},
	"berserker-rage": {150, 200 * time.Millisecond},
	"ground-pound":   {70, 250 * time.Millisecond},
	"teleport":       {740, 90 * time.Millisecond},
	"summon":         {330, 120 * time.Millisecond},
	"heal":           {590, 100 * time.Millisecond},
	"curse":          {240, 180 * time.Millisecond},
	"boss-phase":     {100, 350 * time.Millisecond},
	"boss-spread":    {300, 100 * time.Millisecond},
}

var defaultCue = cueSpec{500, 50 * time.Millisecond}

// Player synthesizes cues through the system speaker
// Implements engine.CuePlayer
type Player struct {
	enabled bool
}

// NewPlayer initializes the speaker. With mute set, or when the device
// cannot be opened, the player stays silent and PlayCue is a no-op
func NewPlayer(mute bool) *Player {
	if mute {
		return &Player{}
	}
	if err := speaker.Init(sampleRate, sampleRate.N(50*time.Millisecond)); err != nil {
		log.Printf("audio: speaker init failed, running silent: %v", err)
		return &Player{}
	}
	return &Player{enabled: true}
}

// PlayCue queues the named tone; position is accepted for interface
// symmetry but cues are not spatialized
func (p *Player) PlayCue(name string, pos vmath.Vec2) {
	if !p.enabled {
		return
	}
	spec, ok := cueTable[name]
	if !ok {
		spec = defaultCue
	}
	tone, err := generators.SineTone(sampleRate, spec.freq)
	if err != nil {
		return
	}
	speaker.Play(beep.Take(sampleRate.N(spec.dur), tone))
}

// Close releases the speaker
func (p *Player) Close() error {
	if !p.enabled {
		return nil
	}
	speaker.Close()
	return nil
}
