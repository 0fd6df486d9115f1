package systems

import (
	"testing"

	"github.com/mlange-42/ark/ecs"
)

func TestBurstSpawnsSparks(t *testing.T) {
	world := ecs.NewWorld()
	sys := NewSparkSystem(world, 42)

	sys.Burst(100, 100)

	if sys.Count() < 10 || sys.Count() > 16 {
		t.Errorf("expected 10-16 sparks from one burst, got %d", sys.Count())
	}

	draws := sys.Snapshot(nil)
	if len(draws) != sys.Count() {
		t.Errorf("expected snapshot of %d sparks, got %d", sys.Count(), len(draws))
	}

	for i, d := range draws {
		if d.Fade != 1 {
			t.Errorf("spark %d: expected full fade at spawn, got %v", i, d.Fade)
		}
		if d.Radius <= 0 {
			t.Errorf("spark %d: expected positive radius, got %v", i, d.Radius)
		}
		if d.Warmth < 0.55 || d.Warmth > 1 {
			t.Errorf("spark %d: expected warmth in [0.55, 1], got %v", i, d.Warmth)
		}
	}
}

func TestBurstDeterministic(t *testing.T) {
	a := NewSparkSystem(ecs.NewWorld(), 7)
	b := NewSparkSystem(ecs.NewWorld(), 7)

	a.Burst(50, 60)
	b.Burst(50, 60)
	a.Update(0.1)
	b.Update(0.1)

	da := a.Snapshot(nil)
	db := b.Snapshot(nil)

	if len(da) != len(db) {
		t.Fatalf("expected equal spark counts, got %d and %d", len(da), len(db))
	}
	for i := range da {
		if da[i] != db[i] {
			t.Errorf("spark %d diverged: %+v vs %+v", i, da[i], db[i])
		}
	}
}

func TestUpdateMovesAndFadesSparks(t *testing.T) {
	sys := NewSparkSystem(ecs.NewWorld(), 42)
	sys.Burst(200, 200)

	before := sys.Snapshot(nil)
	sys.Update(0.3)
	after := sys.Snapshot(nil)

	// Minimum lifetime is 0.5s, so nothing expires at 0.3s.
	if len(after) != len(before) {
		t.Fatalf("expected no culls at 0.3s, got %d -> %d", len(before), len(after))
	}

	moved := 0
	for i := range after {
		if after[i].X != before[i].X || after[i].Y != before[i].Y {
			moved++
		}
		if after[i].Fade >= before[i].Fade {
			t.Errorf("spark %d: expected fade to drop, got %v -> %v", i, before[i].Fade, after[i].Fade)
		}
	}
	if moved == 0 {
		t.Error("expected sparks to move")
	}
}

func TestUpdateCullsExpiredSparks(t *testing.T) {
	sys := NewSparkSystem(ecs.NewWorld(), 42)
	sys.Burst(10, 10)

	// Maximum lifetime is 1.0s.
	for i := 0; i < 12; i++ {
		sys.Update(0.1)
	}

	if sys.Count() != 0 {
		t.Errorf("expected all sparks culled after 1.2s, got %d", sys.Count())
	}
	if draws := sys.Snapshot(nil); len(draws) != 0 {
		t.Errorf("expected empty snapshot after cull, got %d", len(draws))
	}
}

func TestBurstRespectsCap(t *testing.T) {
	sys := NewSparkSystem(ecs.NewWorld(), 42)

	for i := 0; i < 100; i++ {
		sys.Burst(float32(i), float32(i))
	}

	if sys.Count() > maxSparks {
		t.Errorf("expected at most %d sparks, got %d", maxSparks, sys.Count())
	}
	if sys.Count() == 0 {
		t.Error("expected cap to still allow sparks")
	}
}

func TestUpdateZeroDtIsNoop(t *testing.T) {
	sys := NewSparkSystem(ecs.NewWorld(), 42)
	sys.Burst(0, 0)

	before := sys.Snapshot(nil)
	sys.Update(0)
	after := sys.Snapshot(nil)

	for i := range after {
		if after[i] != before[i] {
			t.Errorf("spark %d changed on zero dt: %+v vs %+v", i, before[i], after[i])
		}
	}
}

func TestSnapshotReusesCapacity(t *testing.T) {
	sys := NewSparkSystem(ecs.NewWorld(), 42)
	sys.Burst(5, 5)

	buf := sys.Snapshot(nil)
	cap1 := cap(buf)
	buf = sys.Snapshot(buf)
	if cap(buf) != cap1 {
		t.Errorf("expected snapshot to reuse capacity %d, got %d", cap1, cap(buf))
	}
}
