package cmdparse

import (
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// LoadYAML compiles a schema from YAML.
func LoadYAML(b []byte) (*Command, error) {
	var d schemaDoc
	if err := yaml.Unmarshal(b, &d); err != nil {
		return nil, errors.Wrap(err, "decoding yaml schema")
	}
	return d.compile()
}

func (sl *stringList) UnmarshalYAML(n *yaml.Node) error {
	switch n.Kind {
	case yaml.ScalarNode:
		if n.Tag == "!!null" {
			return nil
		}
		*sl = stringList{n.Value}
		return nil
	case yaml.SequenceNode:
		ss := stringList{}
		for _, c := range n.Content {
			if c.Kind != yaml.ScalarNode {
				return errors.Errorf("line %d: default values must be scalars", c.Line)
			}
			ss = append(ss, c.Value)
		}
		*sl = ss
		return nil
	}
	return errors.Errorf("line %d: default must be a value or a list of values", n.Line)
}
