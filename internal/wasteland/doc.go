// Package wasteland walks the desert network of left/right nodes.
//
// The input is an instruction line of L and R followed by node lines such
// as "AAA = (BBB, CCC)". Instructions repeat forever. Part 1 counts steps
// from AAA to ZZZ. Part 2 starts on every node ending in A at once and
// counts steps until all of them stand on nodes ending in Z.
package wasteland
