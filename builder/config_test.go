// Package builder contains unit tests for the configuration primitives
// (builderConfig and BuilderOption) to ensure correct application and override behavior.
package builder

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/strassen/matrix"
)

// TestBuilderConfigDefaults verifies the zero-option configuration.
func TestBuilderConfigDefaults(t *testing.T) {
	t.Parallel()

	cfg := newBuilderConfig()
	if cfg.rng != nil {
		t.Errorf("default rng: expected nil, got %v", cfg.rng)
	}
	if cfg.lo != DefaultMin || cfg.hi != DefaultMax {
		t.Errorf("default range: expected [%d,%d], got [%d,%d]", DefaultMin, DefaultMax, cfg.lo, cfg.hi)
	}
	if len(cfg.storeOpts) != 0 {
		t.Errorf("default storeOpts: expected none, got %d", len(cfg.storeOpts))
	}
}

// TestRandOptions verifies WithRand/WithSeed precedence (last wins) and nil-panics.
func TestRandOptions(t *testing.T) {
	t.Parallel()

	r := rand.New(rand.NewSource(1))
	if cfg := newBuilderConfig(WithRand(r)); cfg.rng != r {
		t.Errorf("WithRand: expected the provided rng")
	}
	if cfg := newBuilderConfig(WithRand(r), WithSeed(2)); cfg.rng == r || cfg.rng == nil {
		t.Errorf("WithSeed after WithRand: expected a fresh seeded rng")
	}

	defer func() {
		if recover() == nil {
			t.Errorf("WithRand(nil): expected panic")
		}
	}()
	_ = WithRand(nil)
}

// TestRangeAndStoreOptions verifies WithRange bounds and WithStoreOptions accumulation.
func TestRangeAndStoreOptions(t *testing.T) {
	t.Parallel()

	cfg := newBuilderConfig(
		WithRange(0, 9),
		WithStoreOptions(matrix.WithBoundsCheck(false)),
		WithStoreOptions(matrix.WithBoundsCheck(true)),
		nil, // ignored
	)
	if cfg.lo != 0 || cfg.hi != 9 {
		t.Errorf("WithRange: expected [0,9], got [%d,%d]", cfg.lo, cfg.hi)
	}
	if len(cfg.storeOpts) != 2 {
		t.Fatalf("WithStoreOptions: expected 2 options, got %d", len(cfg.storeOpts))
	}
	if !matrix.NewOptions(cfg.storeOpts...).BoundsCheck() {
		t.Errorf("WithStoreOptions: expected the later option to win")
	}

	for _, bad := range [][2]int64{{1, 0}, {-1 << 63, 1<<63 - 1}} {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("WithRange(%d,%d): expected panic", bad[0], bad[1])
				}
			}()
			_ = WithRange(bad[0], bad[1])
		}()
	}
}
