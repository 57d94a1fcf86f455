// Package sequence provides integer-sequence utilities for the rhythm
// generators: weight sums, cyclic rotation, and weighted splitting of
// signed count sequences.
//
// Throughout this package the weight of a count is its absolute value;
// the sign marks a count as pitched (positive) or rest (negative) and
// is preserved when a count is split across a boundary.
package sequence

import "fmt"

// Weight returns the sum of absolute values.
func Weight(seq []int) int {
	total := 0
	for _, n := range seq {
		total += abs(n)
	}
	return total
}

// CumulativeSums returns the running absolute-weight totals of seq,
// starting at zero. The result has len(seq)+1 entries.
func CumulativeSums(seq []int) []int {
	sums := make([]int, 0, len(seq)+1)
	total := 0
	sums = append(sums, total)
	for _, n := range seq {
		total += abs(n)
		sums = append(sums, total)
	}
	return sums
}

// Rotate rotates seq to the right by n positions; negative n rotates
// left. Returns a new slice.
func Rotate(seq []int, n int) []int {
	out := make([]int, 0, len(seq))
	if len(seq) == 0 {
		return out
	}
	n = ((n % len(seq)) + len(seq)) % len(seq)
	out = append(out, seq[len(seq)-n:]...)
	out = append(out, seq[:len(seq)-n]...)
	return out
}

// RepeatToWeight repeats seq cyclically until the total weight equals
// weight exactly, truncating the final count as needed. The truncated
// count keeps its sign.
func RepeatToWeight(seq []int, weight int) ([]int, error) {
	if weight < 0 {
		return nil, fmt.Errorf("weight must be nonnegative, got %d", weight)
	}
	if Weight(seq) == 0 {
		return nil, fmt.Errorf("cannot repeat zero-weight sequence to weight %d", weight)
	}
	var out []int
	total := 0
	for total < weight {
		for _, n := range seq {
			w := abs(n)
			if w == 0 {
				continue
			}
			if total+w <= weight {
				out = append(out, n)
				total += w
			} else {
				remaining := weight - total
				out = append(out, sign(n)*remaining)
				total = weight
			}
			if total == weight {
				break
			}
		}
	}
	return out, nil
}

// TruncateToWeight returns the prefix of seq whose total weight equals
// weight exactly, truncating the count that straddles the boundary.
func TruncateToWeight(seq []int, weight int) ([]int, error) {
	if weight < 0 {
		return nil, fmt.Errorf("weight must be nonnegative, got %d", weight)
	}
	if Weight(seq) < weight {
		return nil, fmt.Errorf("sequence weight %d is less than %d", Weight(seq), weight)
	}
	var out []int
	total := 0
	for _, n := range seq {
		if total == weight {
			break
		}
		w := abs(n)
		if w == 0 {
			continue
		}
		if total+w <= weight {
			out = append(out, n)
			total += w
		} else {
			out = append(out, sign(n)*(weight-total))
			total = weight
		}
	}
	return out, nil
}

// SplitByWeights splits seq into consecutive parts whose absolute
// weights equal weights exactly. A count straddling a part boundary is
// split, each piece keeping the count's sign. With overhang, any
// remaining counts are appended as one final part. Returns an error
// when seq carries less weight than the targets require.
func SplitByWeights(seq []int, weights []int, overhang bool) ([][]int, error) {
	type item struct {
		magnitude int
		sign      int
	}
	queue := make([]item, 0, len(seq))
	for _, n := range seq {
		if n == 0 {
			continue
		}
		queue = append(queue, item{magnitude: abs(n), sign: sign(n)})
	}
	parts := make([][]int, 0, len(weights)+1)
	for _, target := range weights {
		if target < 0 {
			return nil, fmt.Errorf("split weight must be nonnegative, got %d", target)
		}
		part := []int{}
		need := target
		for need > 0 {
			if len(queue) == 0 {
				return nil, fmt.Errorf("sequence is too short to split at weights %v", weights)
			}
			head := &queue[0]
			if head.magnitude <= need {
				part = append(part, head.sign*head.magnitude)
				need -= head.magnitude
				queue = queue[1:]
			} else {
				part = append(part, head.sign*need)
				head.magnitude -= need
				need = 0
			}
		}
		parts = append(parts, part)
	}
	if overhang && len(queue) > 0 {
		part := make([]int, 0, len(queue))
		for _, it := range queue {
			part = append(part, it.sign*it.magnitude)
		}
		parts = append(parts, part)
	}
	return parts, nil
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

func sign(n int) int {
	if n < 0 {
		return -1
	}
	return 1
}
