package almanac

import (
	"errors"
	"fmt"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"

	"aoc-2023/internal/common"
	"aoc-2023/internal/rangemap"
)

// ErrNoStages is returned when the text holds seeds but no stage blocks.
var ErrNoStages = errors.New("almanac has no stages")

// almanacGrammar is the participle grammar for puzzle text.
// Newlines are significant so that every rule stays on its own line.
type almanacGrammar struct {
	Seeds  []string        `parser:"Newline* \"seeds\" \":\" @Int* Newline+"`
	Stages []*stageGrammar `parser:"@@*"`
}

type stageGrammar struct {
	Pos   lexer.Position
	Name  string         `parser:"@Ident \"map\" \":\" Newline+"`
	Rules []*ruleGrammar `parser:"@@*"`
}

type ruleGrammar struct {
	Pos    lexer.Position
	Fields []string `parser:"@Int+ Newline+"`
}

// almanacLexer splits puzzle text into tokens.
var almanacLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Int", Pattern: `[0-9]+`},
	{Name: "Ident", Pattern: `[A-Za-z][A-Za-z0-9_-]*`},
	{Name: "Punct", Pattern: `:`},
	{Name: "Newline", Pattern: `\r?\n`},
	{Name: "Whitespace", Pattern: `[ \t]+`},
})

var almanacParser = participle.MustBuild[almanacGrammar](
	participle.Lexer(almanacLexer),
	participle.Elide("Whitespace"),
)

// Parse parses puzzle text into an almanac.
func Parse(text string) (*Almanac, error) {
	// Every rule line must end in a newline, including the last one.
	parsed, err := almanacParser.ParseString("", text+"\n")
	if err != nil {
		return nil, fmt.Errorf("failed to parse almanac: %w", err)
	}

	seeds := make([]uint64, 0, len(parsed.Seeds))
	for _, raw := range parsed.Seeds {
		v, err := common.ParseInt[uint64](raw)
		if err != nil {
			return nil, fmt.Errorf("seeds: %w", err)
		}

		seeds = append(seeds, v)
	}

	if len(parsed.Stages) == 0 {
		return nil, ErrNoStages
	}

	stages := make([]rangemap.Stage, 0, len(parsed.Stages))
	for _, sg := range parsed.Stages {
		stage, err := sg.build()
		if err != nil {
			return nil, err
		}

		stages = append(stages, stage)
	}

	return &Almanac{Seeds: seeds, Pipeline: rangemap.Pipeline{Stages: stages}}, nil
}

func (sg *stageGrammar) build() (rangemap.Stage, error) {
	stage := rangemap.Stage{Name: sg.Name}

	for _, rg := range sg.Rules {
		r, err := rg.build()
		if err != nil {
			return stage, fmt.Errorf("line %d: %s: %w", rg.Pos.Line, sg.Name, err)
		}

		stage.Rules = append(stage.Rules, r)
	}

	return stage, nil
}

func (rg *ruleGrammar) build() (rangemap.Rule, error) {
	if len(rg.Fields) != 3 {
		return rangemap.Rule{}, fmt.Errorf("rule needs 3 fields (dest source length), got %d", len(rg.Fields))
	}

	nums := make([]uint64, 3)
	for i, raw := range rg.Fields {
		v, err := common.ParseInt[uint64](raw)
		if err != nil {
			return rangemap.Rule{}, err
		}

		nums[i] = v
	}

	return rangemap.NewRule(nums[0], nums[1], nums[2])
}
