// Package puzzle names the days of the puzzle set and locates their input.
//
// Inputs live at <dir>/<day>/input.txt, where <day> is the lower-case day
// name such as "day5".
package puzzle
