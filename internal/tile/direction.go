package tile

import "math"

// Direction is the dominant edge orientation of a tile.
//
// The non-None values are ordered by vote priority: when two directions tie
// for the most votes, the one declared first wins.
type Direction uint8

const (
	// None means no direction collected enough votes; the tile is filled by
	// luminance.
	None Direction = iota
	// Vertical edges have a gradient near 0° or 180°.
	Vertical
	// Horizontal edges have a gradient near 90° or 270°.
	Horizontal
	// Diagonal1 edges have a gradient near 45° or 225° ('/' with y pointing down).
	Diagonal1
	// Diagonal2 edges have a gradient near 135° or 315° ('\' with y pointing down).
	Diagonal2
)

// NumDirections is the number of voting buckets (every Direction but None).
const NumDirections = 4

// String returns the direction name.
func (d Direction) String() string {
	switch d {
	case None:
		return "none"
	case Vertical:
		return "vertical"
	case Horizontal:
		return "horizontal"
	case Diagonal1:
		return "diagonal1"
	case Diagonal2:
		return "diagonal2"
	default:
		return "invalid"
	}
}

// Bucket returns the voting bucket of d in [0, NumDirections) and false for
// None or invalid values.
func (d Direction) Bucket() (int, bool) {
	if d < Vertical || d > Diagonal2 {
		return 0, false
	}
	return int(d - Vertical), true
}

// FromBucket is the inverse of Direction.Bucket.
func FromBucket(b int) Direction {
	if b < 0 || b >= NumDirections {
		return None
	}
	return Vertical + Direction(b)
}

// angleBuckets maps round(θ/45°) for θ in [0°, 180°] to a direction.
var angleBuckets = [5]Direction{Vertical, Diagonal1, Horizontal, Diagonal2, Vertical}

// Classify maps a gradient angle in radians to the nearest of the four
// directions. Opposite gradients (θ and θ+180°) fold onto the same direction,
// and each direction owns a 45° wide sector centered on its axis. Angles
// exactly between two sectors round away from zero.
func Classify(angle float32) Direction {
	deg := math.Mod(float64(angle)*180/math.Pi, 180)
	if deg < 0 {
		deg += 180
	}
	return angleBuckets[int(math.Round(deg/45))]
}
