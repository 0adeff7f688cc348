package almanac

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"aoc-2023/internal/common"
	"aoc-2023/internal/rangemap"
)

// document is the YAML form of an almanac.
type document struct {
	Seeds  []uint64        `yaml:"seeds,flow"`
	Stages []stageDocument `yaml:"stages"`
}

type stageDocument struct {
	Name  string     `yaml:"name,omitempty"`
	Rules []ruleNode `yaml:"rules"`
}

// ruleNode is a rule written either as "dest source length" or as a mapping
// with dest, source and length keys.
type ruleNode rangemap.Rule

type ruleMapping struct {
	Dest   *uint64 `yaml:"dest"`
	Source *uint64 `yaml:"source"`
	Length *uint64 `yaml:"length"`
}

// UnmarshalYAML accepts the text shorthand or the explicit mapping.
func (r *ruleNode) UnmarshalYAML(node *yaml.Node) error {
	var dest, source, length uint64

	switch node.Kind {
	case yaml.ScalarNode:
		nums, err := common.ParseInts[uint64](node.Value)
		if err != nil {
			return fmt.Errorf("line %d: %w", node.Line, err)
		}

		if len(nums) != 3 {
			return fmt.Errorf("line %d: rule %q needs 3 fields (dest source length), got %d", node.Line, node.Value, len(nums))
		}

		dest, source, length = nums[0], nums[1], nums[2]

	case yaml.MappingNode:
		var m ruleMapping
		if err := node.Decode(&m); err != nil {
			return err
		}

		if m.Dest == nil || m.Source == nil || m.Length == nil {
			return fmt.Errorf("line %d: rule needs dest, source and length", node.Line)
		}

		dest, source, length = *m.Dest, *m.Source, *m.Length

	default:
		return fmt.Errorf("line %d: expected rule string or mapping, got %v", node.Line, node.Kind)
	}

	rule, err := rangemap.NewRule(dest, source, length)
	if err != nil {
		return fmt.Errorf("line %d: %w", node.Line, err)
	}

	*r = ruleNode(rule)

	return nil
}

// MarshalYAML writes the text shorthand.
func (r ruleNode) MarshalYAML() (any, error) {
	return rangemap.Rule(r).String(), nil
}

// ParseYAML parses the YAML form of an almanac.
func ParseYAML(data []byte) (*Almanac, error) {
	var doc document

	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse almanac YAML: %w", err)
	}

	if len(doc.Stages) == 0 {
		return nil, ErrNoStages
	}

	a := &Almanac{Seeds: doc.Seeds}

	for _, sd := range doc.Stages {
		stage := rangemap.Stage{Name: sd.Name}
		for _, rn := range sd.Rules {
			stage.Rules = append(stage.Rules, rangemap.Rule(rn))
		}

		a.Pipeline.Stages = append(a.Pipeline.Stages, stage)
	}

	return a, nil
}

// MarshalYAML serializes an almanac to its YAML form.
func MarshalYAML(a *Almanac) ([]byte, error) {
	doc := document{Seeds: a.Seeds}

	for _, s := range a.Pipeline.Stages {
		sd := stageDocument{Name: s.Name, Rules: make([]ruleNode, 0, len(s.Rules))}
		for _, r := range s.Rules {
			sd.Rules = append(sd.Rules, ruleNode(r))
		}

		doc.Stages = append(doc.Stages, sd)
	}

	return yaml.Marshal(&doc)
}

// File permission for written almanacs.
const filePerm = 0o644

// WriteYAML writes the YAML form of an almanac to path.
func WriteYAML(a *Almanac, path string) error {
	data, err := MarshalYAML(a)
	if err != nil {
		return fmt.Errorf("failed to marshal almanac: %w", err)
	}

	if err := os.WriteFile(path, data, filePerm); err != nil {
		return fmt.Errorf("failed to write almanac %s: %w", path, err)
	}

	return nil
}
