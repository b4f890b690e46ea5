// Package points generates the random 2D samples that fill the benchmark's
// vertex buffer. Coordinates are in normalized device space.
package points

import (
	"math/rand"
	"time"
)

const (
	// CoordsPerPoint is the number of float32 coordinates per point (x, y).
	CoordsPerPoint = 2
	// Stride is the size of one point in bytes.
	Stride = CoordsPerPoint * 4
)

// InitialFill returns count points with x in [-1,0) and y in [-1,1), drawn
// from a time-seeded source. The negative x half-plane marks points that no
// window rewrite has touched yet.
func InitialFill(count int) []float32 {
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	return generate(count, rng, -1)
}

// Window returns batchSize points with x in [0,1) and y in [-1,1), drawn
// from a source seeded by seed. The same seed and size always produce the
// same samples, independent of any prior call.
func Window(batchSize int, seed int64) []float32 {
	rng := rand.New(rand.NewSource(seed))
	return generate(batchSize, rng, 0)
}

func generate(count int, rng *rand.Rand, xMin float32) []float32 {
	buf := make([]float32, 0, count*CoordsPerPoint)
	for i := 0; i < count; i++ {
		buf = append(buf, xMin+rng.Float32())
		buf = append(buf, rng.Float32()*2-1)
	}
	return buf
}
