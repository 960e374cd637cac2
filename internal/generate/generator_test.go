package generate

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pylon-delta/internal/gamemap"
)

func testConfig(seed int64) *Config {
	return &Config{
		MapWidth:           80,
		MapHeight:          45,
		MaxRooms:           30,
		RoomMinSize:        6,
		RoomMaxSize:        10,
		MaxMonstersPerRoom: 2,
		HostileTable: []SpawnEntry{
			{Name: "Robot", Glyph: "R", MaxHP: 10, Defense: 0, Power: 3, SightRange: 8, Weight: 80},
			{Name: "Drone", Glyph: "D", MaxHP: 16, Defense: 1, Power: 4, SightRange: 8, Weight: 20},
		},
		Rand: rand.New(rand.NewSource(seed)),
	}
}

// reachable flood-fills walkable tiles from (x, y), diagonals included.
func reachable(m *gamemap.GameMap, x, y int) map[[2]int]bool {
	seen := map[[2]int]bool{{x, y}: true}
	frontier := [][2]int{{x, y}}
	for len(frontier) > 0 {
		cur := frontier[len(frontier)-1]
		frontier = frontier[:len(frontier)-1]
		for dy := -1; dy <= 1; dy++ {
			for dx := -1; dx <= 1; dx++ {
				next := [2]int{cur[0] + dx, cur[1] + dy}
				if seen[next] || !m.IsWalkable(next[0], next[1]) {
					continue
				}
				seen[next] = true
				frontier = append(frontier, next)
			}
		}
	}
	return seen
}

func TestPlayerStartsOnWalkableTile(t *testing.T) {
	for seed := int64(1); seed <= 10; seed++ {
		res := Generate(testConfig(seed))
		assert.True(t, res.Map.IsWalkable(res.PlayerX, res.PlayerY),
			"seed %d: player start (%d,%d) not walkable", seed, res.PlayerX, res.PlayerY)
	}
}

func TestEveryFloorTileReachableFromStart(t *testing.T) {
	// Rooms are only ever carved connected to the previous room, so the
	// entire walkable area must be one component.
	for seed := int64(1); seed <= 10; seed++ {
		res := Generate(testConfig(seed))
		seen := reachable(res.Map, res.PlayerX, res.PlayerY)

		for y := 0; y < res.Map.Height; y++ {
			for x := 0; x < res.Map.Width; x++ {
				if res.Map.IsWalkable(x, y) {
					require.True(t, seen[[2]int{x, y}],
						"seed %d: walkable tile (%d,%d) unreachable from player start", seed, x, y)
				}
			}
		}
	}
}

func TestHostilesSpawnOnDistinctWalkableTiles(t *testing.T) {
	for seed := int64(1); seed <= 10; seed++ {
		res := Generate(testConfig(seed))
		used := map[[2]int]bool{{res.PlayerX, res.PlayerY}: true}
		for _, s := range res.Hostiles {
			assert.True(t, res.Map.IsWalkable(s.X, s.Y), "seed %d: hostile on wall", seed)
			assert.False(t, used[[2]int{s.X, s.Y}], "seed %d: two spawns share (%d,%d)", seed, s.X, s.Y)
			used[[2]int{s.X, s.Y}] = true
		}
	}
}

func TestSameSeedSameLevel(t *testing.T) {
	a := Generate(testConfig(99))
	b := Generate(testConfig(99))

	require.Equal(t, a.PlayerX, b.PlayerX)
	require.Equal(t, a.PlayerY, b.PlayerY)
	require.Equal(t, a.Hostiles, b.Hostiles)
	for y := 0; y < a.Map.Height; y++ {
		for x := 0; x < a.Map.Width; x++ {
			require.Equal(t, a.Map.At(x, y).Walkable, b.Map.At(x, y).Walkable,
				"tile (%d,%d) differs between identically seeded runs", x, y)
		}
	}
}

func TestSingleRoomHasNoCorridors(t *testing.T) {
	cfg := testConfig(7)
	cfg.MaxRooms = 1
	res := Generate(cfg)

	// With one accepted room and no corridors the walkable area is exactly
	// one solid rectangle, with the player at its center.
	minX, minY, maxX, maxY := res.Map.Width, res.Map.Height, -1, -1
	count := 0
	for y := 0; y < res.Map.Height; y++ {
		for x := 0; x < res.Map.Width; x++ {
			if !res.Map.IsWalkable(x, y) {
				continue
			}
			count++
			if x < minX {
				minX = x
			}
			if y < minY {
				minY = y
			}
			if x > maxX {
				maxX = x
			}
			if y > maxY {
				maxY = y
			}
		}
	}
	require.Positive(t, count, "one room must always be carved")
	assert.Equal(t, (maxX-minX+1)*(maxY-minY+1), count, "walkable area should be a solid rectangle")
	assert.Equal(t, (minX+maxX)/2, res.PlayerX)
	assert.Equal(t, (minY+maxY)/2, res.PlayerY)
}

func TestArchetypeMixFollowsWeights(t *testing.T) {
	robots, drones := 0, 0
	for seed := int64(1); seed <= 40; seed++ {
		res := Generate(testConfig(seed))
		for _, s := range res.Hostiles {
			switch s.Entry.Name {
			case "Robot":
				robots++
			case "Drone":
				drones++
			}
		}
	}
	total := robots + drones
	require.Greater(t, total, 100, "expected a decent sample of spawns")
	// 80/20 split with generous slack.
	ratio := float64(robots) / float64(total)
	assert.InDelta(t, 0.8, ratio, 0.12, "robot share %f far from weight table", ratio)
}

func TestNoHostileOnPlayerStart(t *testing.T) {
	for seed := int64(1); seed <= 40; seed++ {
		res := Generate(testConfig(seed))
		for _, s := range res.Hostiles {
			require.False(t, s.X == res.PlayerX && s.Y == res.PlayerY,
				"seed %d: hostile spawned on the player start", seed)
		}
	}
}

func TestOverlappingCandidatesRejected(t *testing.T) {
	// On a map barely bigger than one room, every candidate after the first
	// must intersect it and be skipped, leaving a single solid rectangle no
	// matter how many attempts were allowed.
	cfg := testConfig(11)
	cfg.MapWidth, cfg.MapHeight = 13, 13
	cfg.RoomMinSize, cfg.RoomMaxSize = 10, 10
	cfg.MaxRooms = 30
	cfg.MaxMonstersPerRoom = 0
	res := Generate(cfg)

	count := 0
	for y := 0; y < res.Map.Height; y++ {
		for x := 0; x < res.Map.Width; x++ {
			if res.Map.IsWalkable(x, y) {
				count++
			}
		}
	}
	assert.Equal(t, 9*9, count, "exactly one 10-room interior should be carved")
}

func TestEmptyHostileTableSpawnsNothing(t *testing.T) {
	cfg := testConfig(3)
	cfg.HostileTable = nil
	res := Generate(cfg)
	assert.Empty(t, res.Hostiles)
}
