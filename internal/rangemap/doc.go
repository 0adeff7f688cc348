// Package rangemap composes piecewise-linear remappings of unsigned integers.
//
// A Rule translates the half-open source interval [Source, Source+Len) onto
// [Dest, Dest+Len) by a constant offset. A Stage is a set of rules whose source
// domains are expected to be pairwise disjoint; values outside every domain pass
// through unchanged. A Pipeline applies stages in order.
//
// # Points and spans
//
// Single values are mapped with MapPoint. Whole spans are mapped with MapSpan,
// which splits a span at rule boundaries and relabels each covered piece, so one
// input span may come out as several. Splitting never creates or loses points:
// the union of the output spans always holds exactly as many points as the input.
//
// # Overlapping rules
//
// Disjointness of rule domains inside a stage is not enforced. When domains
// overlap, the first rule (in stage order) that covers a point wins for
// MapPoint, and MapSpan hands each piece to the first rule that claims it.
// Stage.Conflicts reports offending rule pairs for callers that want to reject
// such input up front.
//
// # Overflow
//
// Arithmetic is done in uint64 without overflow checks. Source+Len and
// Dest+Len are assumed to fit.
package rangemap
