package bspline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestPhiIndices tests exact scaling-function enumeration.
func TestPhiIndices(t *testing.T) {
	tests := []struct {
		order int
		want  []ScaleShift
	}{
		{1, []ScaleShift{{0, 0}}},
		{2, []ScaleShift{{0, -1}, {0, 0}}},
		{3, []ScaleShift{{0, -2}, {0, -1}, {0, 0}}},
		{5, []ScaleShift{{0, -4}, {0, -3}, {0, -2}, {0, -1}, {0, 0}}},
	}

	for _, tt := range tests {
		got, err := PhiIndices(tt.order)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, "order %d", tt.order)
	}
}

// TestPsiIndices_Order1 tests the smallest wavelet enumeration.
func TestPsiIndices_Order1(t *testing.T) {
	got, err := PsiIndices(1)
	require.NoError(t, err)
	assert.Equal(t, []ScaleShift{{0, 0}, {1, 0}, {1, 1}}, got)
}

// TestPsiIndices_Order2 tests shifts below zero and scale-major ordering.
func TestPsiIndices_Order2(t *testing.T) {
	got, err := PsiIndices(2)
	require.NoError(t, err)
	assert.Equal(t, []ScaleShift{
		{0, -1}, {0, 0},
		{1, -1}, {1, 0}, {1, 1},
		{2, -1}, {2, 0}, {2, 1}, {2, 2}, {2, 3},
	}, got)
}

// TestPsiIndices_Order3Bounds tests the per-scale shift ranges of order 3.
func TestPsiIndices_Order3Bounds(t *testing.T) {
	got, err := PsiIndices(3)
	require.NoError(t, err)
	require.Len(t, got, 27)

	perScale := map[int][2]int{}
	for _, idx := range got {
		r, ok := perScale[idx.J]
		if !ok {
			r = [2]int{idx.K, idx.K}
		}
		r[0] = min(r[0], idx.K)
		r[1] = max(r[1], idx.K)
		perScale[idx.J] = r
	}
	assert.Equal(t, map[int][2]int{
		0: {-3, 0},
		1: {-3, 1},
		2: {-3, 3},
		3: {-3, 7},
	}, perScale)
}

// TestPsiIndices_Ordering tests that j never decreases and k increases
// within each j.
func TestPsiIndices_Ordering(t *testing.T) {
	for order := 1; order <= 8; order++ {
		got, err := PsiIndices(order)
		require.NoError(t, err)
		for i := 1; i < len(got); i++ {
			prev, cur := got[i-1], got[i]
			if cur.J == prev.J {
				assert.Equal(t, prev.K+1, cur.K, "order %d at %d", order, i)
			} else {
				assert.Equal(t, prev.J+1, cur.J, "order %d at %d", order, i)
				assert.Equal(t, psiShiftMin(order), cur.K, "order %d at %d", order, i)
			}
		}
		assert.Equal(t, order, got[len(got)-1].J)
		assert.Equal(t, 1<<order-1, got[len(got)-1].K)
	}
}

// TestLengths tests closed-form lengths against enumeration.
func TestLengths(t *testing.T) {
	known := map[int][3]int{
		1: {1, 3, 4},
		2: {2, 10, 12},
		3: {3, 27, 30},
		4: {4, 66, 70},
		5: {5, 153, 158},
	}

	for order := 1; order <= 10; order++ {
		phi, err := PhiIndices(order)
		require.NoError(t, err)
		psi, err := PsiIndices(order)
		require.NoError(t, err)

		pl, err := PhiLen(order)
		require.NoError(t, err)
		sl, err := PsiLen(order)
		require.NoError(t, err)
		fl, err := FeatureLength(order)
		require.NoError(t, err)

		assert.Equal(t, len(phi), pl, "order %d", order)
		assert.Equal(t, len(psi), sl, "order %d", order)
		assert.Equal(t, pl+sl, fl, "order %d", order)

		if want, ok := known[order]; ok {
			assert.Equal(t, want, [3]int{pl, sl, fl}, "order %d", order)
		}
	}
}

// TestIndices_InvalidOrder tests structural order validation.
func TestIndices_InvalidOrder(t *testing.T) {
	for _, order := range []int{0, -1, MaxOrder + 1} {
		_, err := PhiIndices(order)
		assert.ErrorIs(t, err, ErrInvalidOrder)
		_, err = PsiIndices(order)
		assert.ErrorIs(t, err, ErrInvalidOrder)
		_, err = PhiLen(order)
		assert.ErrorIs(t, err, ErrInvalidOrder)
		_, err = PsiLen(order)
		assert.ErrorIs(t, err, ErrInvalidOrder)
		_, err = FeatureLength(order)
		assert.ErrorIs(t, err, ErrInvalidOrder)

		var ioe *InvalidOrderError
		require.ErrorAs(t, err, &ioe)
		assert.Equal(t, order, ioe.Order)
	}
}

// TestFeatureLength_MaxOrder tests the closed form at the upper limit
// without enumerating.
func TestFeatureLength_MaxOrder(t *testing.T) {
	fl, err := FeatureLength(MaxOrder)
	require.NoError(t, err)
	assert.Equal(t, MaxOrder+(1<<(MaxOrder+1)-1)+(MaxOrder+1)*(1<<(MaxOrder-1)-1), fl)
	assert.Less(t, fl, 1_000_000)
}
