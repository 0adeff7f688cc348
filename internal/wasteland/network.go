package wasteland

import (
	"errors"
	"fmt"
	"strings"

	"aoc-2023/internal/common"
	"aoc-2023/internal/puzzle"
)

var (
	// ErrUnknownNode is returned when a walk reaches a name with no node line.
	ErrUnknownNode = errors.New("unknown node")

	// ErrUnreachable is returned when a walk loops without reaching a goal.
	ErrUnreachable = errors.New("goal is unreachable")

	// ErrNoStart is returned when part 2 finds no node ending in A.
	ErrNoStart = errors.New("no start nodes")
)

// Node holds the two exits of one node.
type Node struct {
	Left, Right string
}

// Network is the parsed puzzle.
type Network struct {
	Instructions string
	Nodes        map[string]Node

	order []string
}

// Names lists node names in input order.
func (n *Network) Names() []string {
	return n.order
}

// Next follows one instruction from name.
func (n *Network) Next(name string, dir byte) (string, error) {
	node, ok := n.Nodes[name]
	if !ok {
		return "", fmt.Errorf("%w %q", ErrUnknownNode, name)
	}

	if dir == 'L' {
		return node.Left, nil
	}

	return node.Right, nil
}

// Steps counts instructions taken from start until done reports true. The
// start node itself is never tested. A walk that revisits the same node at
// the same instruction offset is looping and fails with ErrUnreachable.
func (n *Network) Steps(start string, done func(string) bool) (int, error) {
	if len(n.Instructions) == 0 {
		return 0, ErrUnreachable
	}

	type state struct {
		name string
		pos  int
	}

	seen := make(map[state]struct{})
	cur := start

	for steps := 0; ; steps++ {
		pos := steps % len(n.Instructions)

		st := state{name: cur, pos: pos}
		if _, ok := seen[st]; ok {
			return 0, fmt.Errorf("from %s: %w", start, ErrUnreachable)
		}
		seen[st] = struct{}{}

		next, err := n.Next(cur, n.Instructions[pos])
		if err != nil {
			return 0, err
		}

		cur = next
		if done(cur) {
			return steps + 1, nil
		}
	}
}

// Ghosts counts steps for every node ending in A to stand on a node ending
// in Z at the same time. Each ghost's first arrival is taken as its cycle
// length and the answer is their LCM.
func (n *Network) Ghosts() (int64, error) {
	var lcm int64

	for _, name := range n.order {
		if !strings.HasSuffix(name, "A") {
			continue
		}

		steps, err := n.Steps(name, func(s string) bool { return strings.HasSuffix(s, "Z") })
		if err != nil {
			return 0, err
		}

		if lcm == 0 {
			lcm = int64(steps)
			continue
		}

		lcm = common.LCM(lcm, int64(steps))
	}

	if lcm == 0 {
		return 0, ErrNoStart
	}

	return lcm, nil
}

// Part1 counts steps from AAA to ZZZ.
func Part1(input string) (int, error) {
	n, err := Parse(input)
	if err != nil {
		return 0, err
	}

	return n.Steps("AAA", func(s string) bool { return s == "ZZZ" })
}

// Part2 counts steps until every ghost stands on a Z node.
func Part2(input string) (int64, error) {
	n, err := Parse(input)
	if err != nil {
		return 0, err
	}

	return n.Ghosts()
}

// Solve computes both parts.
func Solve(input string) (puzzle.Answer, error) {
	n, err := Parse(input)
	if err != nil {
		return puzzle.Answer{}, err
	}

	p2, err := n.Ghosts()
	if err != nil {
		return puzzle.Answer{}, fmt.Errorf("part 2: %w", err)
	}

	// ghost-only networks have no AAA to start part 1 from
	if _, ok := n.Nodes["AAA"]; !ok {
		return puzzle.OnlyPart2(p2), nil
	}

	p1, err := n.Steps("AAA", func(s string) bool { return s == "ZZZ" })
	if err != nil {
		return puzzle.Answer{}, fmt.Errorf("part 1: %w", err)
	}

	return puzzle.Both(int64(p1), p2), nil
}
