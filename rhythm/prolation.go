package rhythm

import "fmt"

// AdjustExtraCount bounds a signed extra count against a base
// numerator so a division's prolation stays in range no matter how
// large the requested extra count is.
//
// Non-negative extra counts reduce modulo the base numerator itself.
// Negative extra counts reduce modulo ceil(base/2) and stay negative:
// halving the unprolated count is the practical limit before the
// figure degenerates to a single event, so contraction uses the
// smaller modulus deliberately.
func AdjustExtraCount(baseNumerator, extraCount int) (int, error) {
	if baseNumerator <= 0 {
		return 0, fmt.Errorf("base numerator must be positive, got %d", baseNumerator)
	}
	if extraCount >= 0 {
		return extraCount % baseNumerator, nil
	}
	modulus := (baseNumerator + 1) / 2
	return -((-extraCount) % modulus), nil
}

// prolatedNumerators applies cyclic extra counts to the scaled
// division numerators. An empty extraCounts slice leaves the
// numerators untouched.
func prolatedNumerators(numerators []int, extraCounts []int) ([]int, error) {
	prolated := make([]int, len(numerators))
	for i, numerator := range numerators {
		extra := 0
		if len(extraCounts) > 0 {
			extra = extraCounts[i%len(extraCounts)]
		}
		adjusted, err := AdjustExtraCount(numerator, extra)
		if err != nil {
			return nil, err
		}
		prolated[i] = numerator + adjusted
	}
	return prolated, nil
}
