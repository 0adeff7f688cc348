// Package match offers "did you mean" suggestions for mistyped names.
//
// Key functions:
//   - Levenshtein: edit distance between two strings, counted in runes
//   - Normalize: case-folds and strips separators before comparing
//   - Suggest: ranks candidates close to a mistyped name
package match
