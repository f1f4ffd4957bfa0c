package ingest

import (
	"context"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/logindomarcio/permuta-magis-v3/preference"
)

// YAMLSource reads a list of participant mappings, either as the document root
// or under a top-level "participants" key:
//
//	participants:
//	  - Nome: Ana
//	    Origem: TJSP
//	    Destino 1: TJRJ
type YAMLSource struct {
	Path string
}

// Name implements Source.
func (s *YAMLSource) Name() string { return "yaml:" + s.Path }

// Rows implements Source.
func (s *YAMLSource) Rows(ctx context.Context) ([]preference.Row, error) {
	data, err := os.ReadFile(s.Path)
	if err != nil {
		return nil, fmt.Errorf("ingest: read %s: %w", s.Path, err)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	rows, err := ParseYAML(data)
	if err != nil {
		return nil, fmt.Errorf("ingest: %s: %w", s.Path, err)
	}

	return rows, nil
}

// ParseYAML decodes participant rows from a YAML document. Scalars of any type
// become their text; null values and nested structures count as absent.
func ParseYAML(data []byte) ([]preference.Row, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse yaml: %w", err)
	}
	if len(doc.Content) == 0 {
		return nil, nil
	}

	list := doc.Content[0]
	if list.Kind == yaml.MappingNode {
		list = mappingValue(list, "participants")
		if list == nil {
			return nil, fmt.Errorf("parse yaml: missing participants list")
		}
	}
	if list.Kind != yaml.SequenceNode {
		return nil, fmt.Errorf("parse yaml: line %d: expected a list of participants", list.Line)
	}

	rows := make([]preference.Row, 0, len(list.Content))
	for _, item := range list.Content {
		if item.Kind != yaml.MappingNode {
			return nil, fmt.Errorf("parse yaml: line %d: participant must be a mapping", item.Line)
		}
		row := make(preference.Row, len(item.Content)/2)
		for i := 0; i+1 < len(item.Content); i += 2 {
			key, value := item.Content[i], item.Content[i+1]
			if value.Kind != yaml.ScalarNode || value.Tag == "!!null" {
				continue
			}
			row[key.Value] = value.Value
		}
		rows = append(rows, row)
	}

	return rows, nil
}

// mappingValue returns the value node of key in a mapping node, or nil.
func mappingValue(m *yaml.Node, key string) *yaml.Node {
	for i := 0; i+1 < len(m.Content); i += 2 {
		if m.Content[i].Value == key {
			return m.Content[i+1]
		}
	}

	return nil
}
