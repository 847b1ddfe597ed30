package hunt

import "github.com/KirkDiggler/hunt-ballistics/internal/errors"

// Obstacle is a penetration category a round passes through before hitting.
type Obstacle string

// Obstacle categories. The names are the authoritative wire values.
const (
	ObstacleNone           Obstacle = "None"
	ObstacleOneWoodenWall  Obstacle = "1 Wooden Wall"
	ObstacleTwoWoodenWalls Obstacle = "2 Wooden Walls"
	ObstacleThreeWooden    Obstacle = "3 Wooden Walls"
	ObstacleOneMetalWall   Obstacle = "1 Metal wall"
	ObstacleMetalAndWood   Obstacle = "1 Metal + 1 Wood"
	ObstacleTwoMetalWalls  Obstacle = "2 Metal Walls"
	ObstacleFourWooden     Obstacle = "4 Wooden Walls"
	ObstacleFiveWooden     Obstacle = "5 Wooden Walls"
	ObstacleSixWooden      Obstacle = "6 Wooden Walls"
	ObstacleSevenWooden    Obstacle = "7 Wooden Walls"
	ObstacleSmallTree      Obstacle = "Small Tree"
	ObstacleLargeTree      Obstacle = "Large Tree"
	ObstacleOneBrick       Obstacle = "1 Brick"
	ObstacleThickBrick     Obstacle = "Thick Brick"
)

var obstacles = []Obstacle{
	ObstacleNone,
	ObstacleOneWoodenWall,
	ObstacleTwoWoodenWalls,
	ObstacleThreeWooden,
	ObstacleOneMetalWall,
	ObstacleMetalAndWood,
	ObstacleTwoMetalWalls,
	ObstacleFourWooden,
	ObstacleFiveWooden,
	ObstacleSixWooden,
	ObstacleSevenWooden,
	ObstacleSmallTree,
	ObstacleLargeTree,
	ObstacleOneBrick,
	ObstacleThickBrick,
}

// Obstacles returns None followed by the 14 categories in table order.
func Obstacles() []Obstacle {
	out := make([]Obstacle, len(obstacles))
	copy(out, obstacles)
	return out
}

// Index returns the position of o in Obstacles(), or -1. The zero value is
// None.
func (o Obstacle) Index() int {
	if o == "" {
		return 0
	}
	for i, candidate := range obstacles {
		if candidate == o {
			return i
		}
	}
	return -1
}

// ParseObstacle rejects names outside the fixed set. An empty name means None.
func ParseObstacle(name string) (Obstacle, error) {
	if name == "" {
		return ObstacleNone, nil
	}
	o := Obstacle(name)
	if o.Index() < 0 {
		return "", errors.InvalidArgumentf("unknown obstacle category %q", name).
			WithReason(ReasonInvalidObstacleCategory).
			WithMeta("obstacle", name)
	}
	return o, nil
}
