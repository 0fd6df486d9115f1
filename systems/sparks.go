// Package systems holds the per-frame simulation systems.
package systems

import (
	"math"
	"math/rand"

	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/emberfield/components"
)

const (
	// maxSparks caps the spark population across all bursts.
	maxSparks = 512

	// sparkDamping is the per-second velocity decay rate.
	sparkDamping = 3.5

	// sparkLift is the upward drift in pixels per second squared.
	sparkLift = 26.0
)

// SparkDraw is a render snapshot of one live spark.
type SparkDraw struct {
	X, Y   float32
	Radius float32
	Fade   float32 // 1 at spawn, 0 at cull
	Warmth float32
}

// SparkSystem spawns, integrates, and culls click sparks.
type SparkSystem struct {
	world  *ecs.World
	mapper *ecs.Map3[components.Position, components.Velocity, components.Spark]
	filter *ecs.Filter3[components.Position, components.Velocity, components.Spark]
	rng    *rand.Rand
	count  int
}

// NewSparkSystem creates a spark system over the given world.
func NewSparkSystem(world *ecs.World, seed int64) *SparkSystem {
	return &SparkSystem{
		world:  world,
		mapper: ecs.NewMap3[components.Position, components.Velocity, components.Spark](world),
		filter: ecs.NewFilter3[components.Position, components.Velocity, components.Spark](world),
		rng:    rand.New(rand.NewSource(seed)),
	}
}

// Burst emits a radial spray of sparks at the given point.
func (s *SparkSystem) Burst(x, y float32) {
	count := 10 + s.rng.Intn(7)
	for i := 0; i < count; i++ {
		if s.count >= maxSparks {
			return
		}

		angle := s.rng.Float64() * 2 * math.Pi
		speed := 60 + s.rng.Float32()*120

		pos := components.Position{
			X: x + (s.rng.Float32()-0.5)*6,
			Y: y + (s.rng.Float32()-0.5)*6,
		}
		vel := components.Velocity{
			X: float32(math.Cos(angle)) * speed,
			Y: float32(math.Sin(angle))*speed - 30,
		}
		spark := components.Spark{
			Lifetime: 0.5 + s.rng.Float32()*0.5,
			Size:     1.5 + s.rng.Float32()*2,
			Warmth:   0.55 + s.rng.Float32()*0.45,
		}

		s.mapper.NewEntity(&pos, &vel, &spark)
		s.count++
	}
}

// Update integrates all sparks by dt seconds and culls the expired.
func (s *SparkSystem) Update(dt float32) {
	if dt <= 0 {
		return
	}

	damp := float32(math.Exp(-float64(dt) * sparkDamping))

	// First pass: integrate and collect expired entities. Removal must
	// wait until query iteration completes.
	var expired []ecs.Entity

	query := s.filter.Query()
	for query.Next() {
		pos, vel, spark := query.Get()

		spark.Age += dt
		if spark.Age >= spark.Lifetime {
			expired = append(expired, query.Entity())
			continue
		}

		vel.X *= damp
		vel.Y = vel.Y*damp - sparkLift*dt
		pos.X += vel.X * dt
		pos.Y += vel.Y * dt
	}

	// Second pass: remove expired sparks.
	for _, e := range expired {
		s.mapper.Remove(e)
		s.count--
	}
}

// Snapshot appends a draw record for every live spark to dst and
// returns it. Pass the previous frame's slice to reuse its capacity.
func (s *SparkSystem) Snapshot(dst []SparkDraw) []SparkDraw {
	dst = dst[:0]

	query := s.filter.Query()
	for query.Next() {
		pos, _, spark := query.Get()

		fade := 1 - spark.Age/spark.Lifetime
		if fade < 0 {
			fade = 0
		}

		dst = append(dst, SparkDraw{
			X:      pos.X,
			Y:      pos.Y,
			Radius: spark.Size * (0.5 + 0.5*fade),
			Fade:   fade,
			Warmth: spark.Warmth,
		})
	}
	return dst
}

// Count returns the number of live sparks.
func (s *SparkSystem) Count() int {
	return s.count
}
