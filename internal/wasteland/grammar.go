package wasteland

import (
	"fmt"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

type networkGrammar struct {
	Instructions string         `parser:"Newline* @Ident Newline+"`
	Nodes        []*nodeGrammar `parser:"@@*"`
}

type nodeGrammar struct {
	Pos   lexer.Position
	Name  string `parser:"@Ident \"=\" \"(\""`
	Left  string `parser:"@Ident \",\""`
	Right string `parser:"@Ident \")\" Newline+"`
}

var networkLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Ident", Pattern: `[A-Za-z0-9]+`},
	{Name: "Punct", Pattern: `[=(),]`},
	{Name: "Newline", Pattern: `\r?\n`},
	{Name: "Whitespace", Pattern: `[ \t]+`},
})

var networkParser = participle.MustBuild[networkGrammar](
	participle.Lexer(networkLexer),
	participle.Elide("Whitespace"),
)

// Parse reads an instruction line and the node table.
func Parse(input string) (*Network, error) {
	// Every node line must end in a newline, including the last one.
	parsed, err := networkParser.ParseString("", input+"\n")
	if err != nil {
		return nil, fmt.Errorf("failed to parse network: %w", err)
	}

	for i, c := range parsed.Instructions {
		if c != 'L' && c != 'R' {
			return nil, fmt.Errorf("instruction %d: want L or R, got %q", i+1, c)
		}
	}

	n := &Network{
		Instructions: parsed.Instructions,
		Nodes:        make(map[string]Node, len(parsed.Nodes)),
	}

	for _, ng := range parsed.Nodes {
		if _, dup := n.Nodes[ng.Name]; dup {
			return nil, fmt.Errorf("line %d: node %s defined twice", ng.Pos.Line, ng.Name)
		}

		n.Nodes[ng.Name] = Node{Left: ng.Left, Right: ng.Right}
		n.order = append(n.order, ng.Name)
	}

	return n, nil
}
