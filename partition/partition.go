// Package partition groups generated durations against meter
// boundaries. A group holds the items whose time spans fall entirely
// inside one target span, and only when those items cover the span
// exactly; a span that is straddled or only partially covered yields
// an empty group.
package partition

import (
	"errors"
	"fmt"

	"github.com/Abjad/abjad-ext-rmakers-sub000/duration"
)

// ErrDurationMismatch is returned when the items and the targets do not
// cover the same total duration.
var ErrDurationMismatch = errors.New("items and targets cover different total durations")

// Groups partitions items by the consecutive target spans. Item and
// target durations advance time by their absolute values, so rests
// participate like pitched entries. Signs are preserved in the output.
func Groups(items []duration.Duration, targets []duration.Duration) ([][]duration.Duration, error) {
	for i, target := range targets {
		if target.Denominator == 0 || target.Sign() <= 0 {
			return nil, fmt.Errorf("target %d must be positive, got %s", i, target)
		}
	}
	itemTotal := duration.FromInt(0)
	for _, item := range items {
		itemTotal = itemTotal.Add(item.Abs())
	}
	targetTotal := duration.Sum(targets)
	if !itemTotal.Equal(targetTotal) {
		return nil, fmt.Errorf("%w: items %s, targets %s", ErrDurationMismatch, itemTotal, targetTotal)
	}

	type span struct {
		start duration.Duration
		stop  duration.Duration
	}
	spans := make([]span, len(items))
	cursor := duration.FromInt(0)
	for i, item := range items {
		next := cursor.Add(item.Abs())
		spans[i] = span{start: cursor, stop: next}
		cursor = next
	}

	groups := make([][]duration.Duration, len(targets))
	start := duration.FromInt(0)
	index := 0
	for g, target := range targets {
		stop := start.Add(target)
		group := []duration.Duration{}
		groupTotal := duration.FromInt(0)
		for index < len(items) && spans[index].stop.Cmp(stop) <= 0 {
			if spans[index].start.Cmp(start) >= 0 {
				group = append(group, items[index])
				groupTotal = groupTotal.Add(items[index].Abs())
			}
			index++
		}
		// A group covers its target exactly or not at all.
		if !groupTotal.Equal(target) {
			group = []duration.Duration{}
		}
		groups[g] = group
		start = stop
	}
	return groups, nil
}
