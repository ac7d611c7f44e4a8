package game

import "github.com/simukka/starship-espace/config"

// Playfield and timing
const (
	WIDTH         = 800
	HEIGHT        = 600
	FrameDuration = 1000.0 / config.FramesPerSecond // ms
)

// LocalPlayerID is passed to the scoreboard for kills by the local ship.
const LocalPlayerID = 0

// Player ship
const (
	PlayerSize         = 50
	PlayerStartX       = WIDTH / 2
	PlayerStartY       = HEIGHT - 75
	PlayerSpeed        = 6
	PlayerReload       = 8
	PlayerBulletW      = 4
	PlayerBulletH      = 10
	PlayerBulletSpeed  = 10
	PlayerBulletDamage = 1
)

// Enemies and hazards
const (
	EnemySize      = 60
	EnemyTypeCount = config.EnemyTypeCount

	EnemyBulletSize  = 6
	EnemyBulletSpeed = 4
	SpreadAngle      = 0.26 // radians between spread shots
	BurstShots       = 3
	BurstGap         = 6 // ticks between burst shots

	LaserW     = 6
	LaserH     = 40
	LaserSpeed = 6
	LaserLife  = 120

	WaveBulletSize = 8
	EmitterMaxLife = 600

	MiniBossW     = 120
	MiniBossH     = 80
	MiniBossStopY = 90
	MiniBossSpeed = 2
	MiniBossFire  = 150

	BossW     = 220
	BossH     = 120
	BossStopY = 110
	BossSpeed = 1.2
	BossFire  = 420

	PowerUpSize  = 24
	PowerUpSpeed = 1.5

	RiposteW      = 14
	RiposteLife   = 20
	RiposteDamage = 2

	// Off-screen margin before an entity is dropped
	Margin = 80

	// Broadphase cell size, larger than enemy plus bullet extents
	GridCell = 128
)
