package systems

import (
	"math"
	"math/rand"

	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/pong/config"
)

// Spark components
type (
	sparkPos  struct{ X, Y float64 }
	sparkVel  struct{ X, Y float64 }
	sparkLife struct{ Remaining, Total float64 }
)

// sparkDrag is the per-millisecond velocity retention.
const sparkDrag = 0.996

// Spark is a read-only view of one live spark.
type Spark struct {
	X, Y float64
	Life float64 // 1 when emitted, falling to 0
}

// SparkSystem manages short-lived cosmetic sparks thrown off by contacts.
// Sparks live in their own ECS world and never touch the match.
type SparkSystem struct {
	world  *ecs.World
	mapper *ecs.Map3[sparkPos, sparkVel, sparkLife]
	filter *ecs.Filter3[sparkPos, sparkVel, sparkLife]
	rng    *rand.Rand

	perHit int
	lifeMS float64
	speed  float64

	count int
	dead  []ecs.Entity
}

// NewSparkSystem creates an empty spark system.
func NewSparkSystem(cfg config.FXConfig, rng *rand.Rand) *SparkSystem {
	world := ecs.NewWorld()
	return &SparkSystem{
		world:  world,
		mapper: ecs.NewMap3[sparkPos, sparkVel, sparkLife](world),
		filter: ecs.NewFilter3[sparkPos, sparkVel, sparkLife](world),
		rng:    rng,
		perHit: cfg.SparksPerHit,
		lifeMS: cfg.SparkLifeMS,
		speed:  cfg.SparkSpeed,
	}
}

// Emit throws a burst of sparks from (x, y).
// dirX > 0 sprays right, dirX < 0 sprays left, 0 sprays in all directions.
func (s *SparkSystem) Emit(x, y, dirX float64) {
	if s.lifeMS <= 0 {
		return
	}
	for i := 0; i < s.perHit; i++ {
		var angle float64
		if dirX == 0 {
			angle = s.rng.Float64() * 2 * math.Pi
		} else {
			angle = (s.rng.Float64()*2 - 1) * math.Pi / 3
		}
		speed := s.speed * (0.5 + s.rng.Float64())
		vx := math.Cos(angle) * speed
		if dirX < 0 {
			vx = -vx
		}
		vy := math.Sin(angle) * speed
		life := s.lifeMS * (0.6 + 0.4*s.rng.Float64())

		s.mapper.NewEntity(&sparkPos{X: x, Y: y}, &sparkVel{X: vx, Y: vy}, &sparkLife{Remaining: life, Total: life})
		s.count++
	}
}

// Update ages and moves all sparks by dt milliseconds, removing expired ones.
func (s *SparkSystem) Update(dt float64) {
	if s.count == 0 {
		return
	}
	drag := math.Pow(sparkDrag, dt)

	// Entities cannot be removed while the query holds the world
	s.dead = s.dead[:0]
	query := s.filter.Query()
	for query.Next() {
		pos, vel, life := query.Get()
		life.Remaining -= dt
		if life.Remaining <= 0 {
			s.dead = append(s.dead, query.Entity())
			continue
		}
		pos.X += vel.X * dt
		pos.Y += vel.Y * dt
		vel.X *= drag
		vel.Y *= drag
	}

	for _, e := range s.dead {
		s.world.RemoveEntity(e)
		s.count--
	}
}

// Each calls fn for every live spark.
func (s *SparkSystem) Each(fn func(Spark)) {
	if s.count == 0 {
		return
	}
	query := s.filter.Query()
	for query.Next() {
		pos, _, life := query.Get()
		fn(Spark{X: pos.X, Y: pos.Y, Life: life.Remaining / life.Total})
	}
}

// Count returns the number of live sparks.
func (s *SparkSystem) Count() int {
	return s.count
}

// Clear removes every spark.
func (s *SparkSystem) Clear() {
	if s.count == 0 {
		return
	}
	s.dead = s.dead[:0]
	query := s.filter.Query()
	for query.Next() {
		s.dead = append(s.dead, query.Entity())
	}
	for _, e := range s.dead {
		s.world.RemoveEntity(e)
	}
	s.count = 0
}
