// Package diagnostic collects coded errors, warnings and notes produced while
// checking puzzle input.
//
// Checks report every problem they find instead of stopping at the first one.
// Callers decide what is fatal by looking at HasErrors.
package diagnostic
