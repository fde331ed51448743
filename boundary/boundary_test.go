package boundary_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/stepheight/boundary"
)

const eps = 1e-12

// TestGenerate_Nominal checks the six limits for W=2 centred at 0.
func TestGenerate_Nominal(t *testing.T) {
	b := boundary.DefaultGenerator().Generate(-1, 1)

	assert.InDelta(t, -3.0, b.X1, eps)
	assert.InDelta(t, -5.0/3.0, b.X2, eps)
	assert.InDelta(t, -1.0/3.0, b.X3, eps)
	assert.InDelta(t, 1.0/3.0, b.X4, eps)
	assert.InDelta(t, 5.0/3.0, b.X5, eps)
	assert.InDelta(t, 3.0, b.X6, eps)
	assert.Equal(t, 2.0, b.FeatureWidth)
	assert.Equal(t, 2.0, b.WallWidth)
}

// TestGenerateWithWalls_Trapezoid moves the reference windows out by the
// wall offset while the feature window stays on the edges.
func TestGenerateWithWalls_Trapezoid(t *testing.T) {
	b := boundary.DefaultGenerator().GenerateWithWalls(-1, 1, -2, 2)

	assert.InDelta(t, -4.0, b.X1, eps)
	assert.InDelta(t, -4.0+4.0/3.0, b.X2, eps)
	assert.InDelta(t, -1.0/3.0, b.X3, eps)
	assert.InDelta(t, 1.0/3.0, b.X4, eps)
	assert.InDelta(t, 4.0-4.0/3.0, b.X5, eps)
	assert.InDelta(t, 4.0, b.X6, eps)
	assert.Equal(t, 2.0, b.FeatureWidth)
	assert.Equal(t, 4.0, b.WallWidth)
}

// TestGenerateWithWalls_ClampsInnerWalls verifies that walls inside the edge
// pair are widened onto the edges.
func TestGenerateWithWalls_ClampsInnerWalls(t *testing.T) {
	g := boundary.DefaultGenerator()

	assert.Equal(t, g.Generate(-1, 1), g.GenerateWithWalls(-1, 1, -0.5, 0.5))
	assert.Equal(t, g.GenerateWithWalls(-1, 1, -2, 1), g.GenerateWithWalls(-1, 1, -2, 0))
}

// TestGenerate_Degenerate tolerates coinciding edges.
func TestGenerate_Degenerate(t *testing.T) {
	b := boundary.DefaultGenerator().Generate(5, 5)

	assert.Equal(t, 0.0, b.FeatureWidth)
	for _, x := range []float64{b.X1, b.X2, b.X3, b.X4, b.X5, b.X6} {
		assert.Equal(t, 5.0, x)
	}
}

// TestGenerate_OrderingAndSymmetry checks the ordering invariants and the
// order-independence of the arguments over random inputs.
func TestGenerate_OrderingAndSymmetry(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	g := boundary.DefaultGenerator()

	for i := 0; i < 1000; i++ {
		l := rng.Float64()*2e-3 - 1e-3
		r := rng.Float64()*2e-3 - 1e-3
		lw := l - rng.Float64()*1e-4
		rw := r + rng.Float64()*1e-4

		b := g.GenerateWithWalls(l, r, lw, rw)
		require.GreaterOrEqual(t, b.FeatureWidth, 0.0)
		require.LessOrEqual(t, b.X1, b.X2)
		require.LessOrEqual(t, b.X2, b.X5)
		require.LessOrEqual(t, b.X5, b.X6)
		require.LessOrEqual(t, b.X1, b.X3)
		require.LessOrEqual(t, b.X3, b.X4)
		require.LessOrEqual(t, b.X4, b.X6)

		require.Equal(t, b, g.GenerateWithWalls(r, l, rw, lw), "swapped arguments")
		require.Equal(t, g.Generate(l, r), g.Generate(r, l), "swapped edges")
	}
}

// TestNewGenerator_Validation rejects lengths that break the ordering.
func TestNewGenerator_Validation(t *testing.T) {
	cases := []struct {
		name    string
		e, a, c float64
		ok      bool
	}{
		{"Nominal", 3, 2.0 / 3.0, 1.0 / 3.0, true},
		{"Tight", 3, 1, 1, true},
		{"ShortSpan", 0.5, 0.1, 0.1, false},
		{"ReferenceTooLong", 3, 1.5, 0.3, false},
		{"ZeroFeature", 3, 0.5, 0, false},
		{"FeatureWiderThanEdges", 3, 0.5, 1.2, false},
		{"NaN", math.NaN(), 0.5, 0.3, false},
		{"Inf", 3, math.Inf(1), 0.3, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g, err := boundary.NewGenerator(tc.e, tc.a, tc.c)
			if !tc.ok {
				assert.ErrorIs(t, err, boundary.ErrInvalidDomainLengths)
				return
			}
			require.NoError(t, err)
			e, a, c := g.Lengths()
			assert.Equal(t, [3]float64{tc.e, tc.a, tc.c}, [3]float64{e, a, c})
		})
	}
}

// TestBoundaries_Membership checks the closed-interval predicates.
func TestBoundaries_Membership(t *testing.T) {
	b := boundary.DefaultGenerator().Generate(-1, 1)

	assert.True(t, b.InLeftReference(b.X1))
	assert.True(t, b.InLeftReference(b.X2))
	assert.False(t, b.InLeftReference(b.X2+1e-9))
	assert.True(t, b.InRightReference(2))
	assert.True(t, b.InReference(-2))
	assert.False(t, b.InReference(0))
	assert.True(t, b.InFeature(0))
	assert.False(t, b.InFeature(0.5))
	assert.True(t, b.Covers(-3, 3))
	assert.False(t, b.Covers(-2.9, 3))

	moved := b.Translate(10)
	assert.InDelta(t, 7.0, moved.X1, eps)
	assert.InDelta(t, 13.0, moved.X6, eps)
	assert.Equal(t, b.FeatureWidth, moved.FeatureWidth)
}
