// Package rhythm generates grouped rhythmic events from declarative
// pattern specifications.
//
// Three generators turn a list of target divisions (exact rational
// durations) into one numeric map per division: an ordered list of
// signed durations where positive entries are pitched attacks and
// negative entries are rests:
//
//   - Talea reads a cyclic count pattern across the divisions,
//     resuming from caller-owned State.
//   - Incised builds prefix/middle/suffix triples from independent
//     prefix and suffix patterns, statelessly.
//   - Accelerando interpolates a duration curve across each division
//     and quantizes it back to exact rationals.
//
// A downstream leaf builder turns numeric-map entries into notes and
// rests, honoring Spelling constraints; this package returns raw
// unconstrained durations only.
package rhythm
