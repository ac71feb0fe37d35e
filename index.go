package bspline

// ScaleShift identifies one dilated, translated copy of phi or psi:
// f_{J,K}(x) = 2^(J/2) * f(2^J*x - K).
type ScaleShift struct {
	J int // dilation (scale) level
	K int // translation (shift)
}

// PhiIndices returns the scaling-function indices of an order:
// J = 0 and K from -(order-1) up to 0.
func PhiIndices(order int) ([]ScaleShift, error) {
	if err := checkOrder(order); err != nil {
		return nil, err
	}
	out := make([]ScaleShift, 0, phiLen(order))
	for k := -(order - 1); k <= 0; k++ {
		out = append(out, ScaleShift{J: 0, K: k})
	}
	return out, nil
}

// PsiIndices returns the wavelet indices of an order. For each J from 0 to
// order (outer loop, ascending), K runs from -2^(order-1)+1 up to 2^J-1.
func PsiIndices(order int) ([]ScaleShift, error) {
	if err := checkOrder(order); err != nil {
		return nil, err
	}
	out := make([]ScaleShift, 0, psiLen(order))
	kMin := psiShiftMin(order)
	for j := 0; j <= order; j++ {
		for k := kMin; k <= 1<<j-1; k++ {
			out = append(out, ScaleShift{J: j, K: k})
		}
	}
	return out, nil
}

// PhiLen returns the number of scaling-function features of an order.
func PhiLen(order int) (int, error) {
	if err := checkOrder(order); err != nil {
		return 0, err
	}
	return phiLen(order), nil
}

// PsiLen returns the number of wavelet features of an order.
func PsiLen(order int) (int, error) {
	if err := checkOrder(order); err != nil {
		return 0, err
	}
	return psiLen(order), nil
}

// FeatureLength returns PhiLen + PsiLen, the width of one feature vector.
func FeatureLength(order int) (int, error) {
	if err := checkOrder(order); err != nil {
		return 0, err
	}
	return phiLen(order) + psiLen(order), nil
}

func phiLen(n int) int {
	return n
}

// psiLen sums 2^j + 2^(n-1) - 1 over j = 0..n.
func psiLen(n int) int {
	return (1<<(n+1) - 1) + (n+1)*(1<<(n-1)-1)
}

func psiShiftMin(n int) int {
	return -(1 << (n - 1)) + 1
}
