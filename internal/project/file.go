package project

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/alexiusacademia/loadcomb/internal/codes"
	"github.com/alexiusacademia/loadcomb/internal/combo"
)

// fileDoc is the on-disk project description. JSON documents decode too.
type fileDoc struct {
	Types      []fileType   `yaml:"types"`
	Strategies yaml.Node    `yaml:"strategies"`
	Loads      []fileLoad   `yaml:"loads"`
	Strength   fileSequence `yaml:"strength"`
	Service    fileSequence `yaml:"service"`
}

type fileType struct {
	Name     string `yaml:"name"`
	Strategy string `yaml:"strategy"`
}

type fileLoad struct {
	Name string `yaml:"name"`
	Type string `yaml:"type"`
}

type fileSequence struct {
	Start   yaml.Node   `yaml:"start"`
	Presets []string    `yaml:"presets"`
	Cases   []yaml.Node `yaml:"cases"`
}

// LoadFile reads a project description from a YAML or JSON file
func LoadFile(path string, ids IDGenerator) (*Project, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	p, err := Decode(bytes.NewReader(data), ids)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return p, nil
}

// Decode builds a project from a YAML or JSON description. Every entity is
// created through the regular project operations so the same rules apply
// as for interactive edits.
func Decode(r io.Reader, ids IDGenerator) (*Project, error) {
	var doc fileDoc
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil && err != io.EOF {
		return nil, fmt.Errorf("decode project: %w", err)
	}

	p := New(ids)

	for _, t := range doc.Types {
		if err := p.AddType(t.Name); err != nil {
			return nil, err
		}
		if t.Strategy != "" {
			if err := setStrategyText(p, t.Name, t.Strategy); err != nil {
				return nil, err
			}
		}
	}

	strategies, err := orderedPairs(&doc.Strategies, "strategies")
	if err != nil {
		return nil, err
	}
	for _, kv := range strategies {
		if err := setStrategyText(p, kv.Type, kv.Value); err != nil {
			return nil, err
		}
	}

	for i, l := range doc.Loads {
		if _, err := p.AddLoad(l.Name, l.Type); err != nil {
			return nil, fmt.Errorf("loads[%d]: %w", i, err)
		}
	}

	for _, s := range []struct {
		seq Sequence
		doc fileSequence
	}{{Strength, doc.Strength}, {Service, doc.Service}} {
		if err := decodeSequence(p, s.seq, s.doc); err != nil {
			return nil, err
		}
	}

	return p, nil
}

func decodeSequence(p *Project, seq Sequence, doc fileSequence) error {
	if start := scalarText(&doc.Start); start != "" {
		p.SetStart(seq, start)
	}

	for _, id := range doc.Presets {
		preset, ok := codes.FindPreset(id)
		if !ok {
			return fmt.Errorf("%s: preset %q: %w", seq, id, ErrNotFound)
		}
		if _, err := p.ApplyPreset(seq, preset); err != nil {
			return err
		}
	}

	for i := range doc.Cases {
		where := fmt.Sprintf("%s.cases[%d]", seq, i)
		factors, err := orderedPairs(&doc.Cases[i], where)
		if err != nil {
			return err
		}
		c := p.AddCase(seq)
		for _, f := range factors {
			if err := p.SetFactor(seq, c.ID, f.Type, f.Value); err != nil {
				return fmt.Errorf("%s: %w", where, err)
			}
		}
	}
	return nil
}

func setStrategyText(p *Project, loadType, raw string) error {
	s, err := combo.ParseStrategy(raw)
	if err != nil {
		return fmt.Errorf("load type %q: %w", loadType, err)
	}
	return p.SetStrategy(loadType, s)
}

// orderedPairs reads a mapping node as key/value pairs in document order.
// Go maps would lose the column order that expansion depends on.
func orderedPairs(n *yaml.Node, where string) (combo.Factors, error) {
	if n.Kind == 0 || scalarIsNull(n) {
		return nil, nil
	}
	if n.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("%s: line %d: expected a mapping of load type to value", where, n.Line)
	}
	pairs := make(combo.Factors, 0, len(n.Content)/2)
	for i := 0; i+1 < len(n.Content); i += 2 {
		key, val := n.Content[i], n.Content[i+1]
		if val.Kind != yaml.ScalarNode {
			return nil, fmt.Errorf("%s: line %d: value of %q must be a scalar", where, val.Line, key.Value)
		}
		pairs.Set(key.Value, scalarText(val))
	}
	return pairs, nil
}

func scalarText(n *yaml.Node) string {
	if n.Kind != yaml.ScalarNode || scalarIsNull(n) {
		return ""
	}
	return n.Value
}

func scalarIsNull(n *yaml.Node) bool {
	return n.Kind == yaml.ScalarNode && n.ShortTag() == "!!null"
}
