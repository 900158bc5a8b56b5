package game

// Play space. Every coordinate in the core is normalized to this square.
const (
	BoundMin = -1.0
	BoundMax = 1.0
)

// Actor movement.
const (
	PlayerSpeed    = 0.01 // per tick
	PlayerHalfSize = 0.1  // body half extent used by guarded bindings
)

// Enemy wandering.
const (
	EnemyCount   = 3
	WanderSpeed  = 0.005 // per tick
	WanderPeriod = 2.0   // seconds between direction re-rolls
)

// Projectiles.
const (
	PlayerShotSpeed = 0.05 // per tick, horizontal only
	EnemyShotSpeed  = 0.02 // per tick, any angle
	EnemyFirePeriod = 0.75 // seconds between enemy throws
)

// Collision boxes, as half extents applied to both axes.
const (
	BodyHitRadius    = 0.1  // actor body vs enemy body
	AxeHitRadius     = 0.03 // enemy axe vs actor
	ShotHitRadius    = 0.1  // player shot vs enemy
	RespawnExclusion = 0.2  // respawned enemy vs each actor
)

// MaxRespawnAttempts bounds rejection sampling for respawn placement.
// Two 0.4-wide exclusion boxes cover at most 8% of the square, so
// exhausting this many draws means the RNG or the actor state is broken.
const MaxRespawnAttempts = 4096

// Spawn points.
var (
	playerSpawns = [PlayerCount]Vec2{
		PlayerA: {X: 0, Y: 0},
		PlayerB: {X: 0.5, Y: 0.5},
	}
	enemySpawns = [EnemyCount]Vec2{
		{X: 0.3, Y: 0.3},
		{X: -0.5, Y: -0.2},
		{X: 0.7, Y: -0.5},
	}
)
