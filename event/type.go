package event

// EventType identifies the kind of game event
type EventType int

const (
	// === Wave Events ===

	// EventWaveStarted announces a new wave
	// Trigger: WaveScheduler entering SpawningWave | Payload: *WaveStartedPayload
	EventWaveStarted EventType = iota

	// EventWaveCleared fires when the last enemy of a wave dies
	// Trigger: WaveScheduler WaitingForClear -> Breaking | Payload: *WaveClearedPayload
	EventWaveCleared

	// EventGameReset requests all systems to return to session-start state
	// Trigger: front-end restart | Payload: nil
	EventGameReset

	// === Enemy Events ===

	// EventEnemySpawned announces a new enemy instance
	// Trigger: WaveScheduler or summoner | Payload: *EnemySpawnedPayload
	EventEnemySpawned

	// EventEnemyKilled carries the score/XP award for a death
	// Trigger: World health reaching zero | Payload: *EnemyKilledPayload
	EventEnemyKilled

	// EventEnemyShot is a ranged attack leaving the core
	// Projectile flight and collision resolve in the front-end collaborator
	// Trigger: BehaviorSystem | Payload: *EnemyShotPayload
	EventEnemyShot

	// EventExplosion is a death-time or ability area effect
	// Trigger: kamikaze death, berserker ground-pound | Payload: *ExplosionPayload
	EventExplosion

	// EventPlayerHit is damage the core deals to the target
	// Trigger: contact, explosion, resolved shot | Payload: *PlayerHitPayload
	EventPlayerHit

	// EventCurseApplied is the necromancer slow debuff on the target
	// Trigger: NecromancerBehavior | Payload: *CurseAppliedPayload
	EventCurseApplied

	// === Progression Events ===

	// EventLevelUp presents an upgrade choice set
	// Trigger: UpgradeEngine XP threshold | Payload: *LevelUpPayload
	EventLevelUp

	// EventUpgradeApplied confirms a build mutation
	// Trigger: UpgradeEngine.Apply | Payload: *UpgradeAppliedPayload
	EventUpgradeApplied

	// EventSynergyActivated fires once per synergy key
	// Trigger: UpgradeEngine.Apply | Payload: *SynergyActivatedPayload
	EventSynergyActivated
)
