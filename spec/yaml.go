package spec

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

// YAML artifact form:
//
//	events:
//	  on_temp:
//	    - temperature: float64
//	  on_position:
//	    - x: int
//	    - y: int
//	  on_shutdown: []
//
// Event and parameter order follow document order, which is why parsing
// walks yaml.Node directly instead of decoding into a map.

// ParseYAML parses the YAML artifact form of a specification. Type tags are
// resolved with TypeOf; unknown tags yield unchecked parameters.
func ParseYAML(data []byte) (Spec, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("spec: parse: %w", err)
	}
	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 {
		return nil, errors.New("spec: empty document")
	}
	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return nil, errors.New("spec: top level must be a mapping")
	}

	var events *yaml.Node
	for i := 0; i+1 < len(root.Content); i += 2 {
		if root.Content[i].Value == "events" {
			events = root.Content[i+1]
		}
	}
	if events == nil {
		return nil, errors.New(`spec: missing "events" key`)
	}
	if events.Kind != yaml.MappingNode {
		return nil, errors.New(`spec: "events" must be a mapping`)
	}

	var s Spec
	for i := 0; i+1 < len(events.Content); i += 2 {
		name := events.Content[i].Value
		def := EventDef{Name: name}

		params := events.Content[i+1]
		switch params.Kind {
		case yaml.SequenceNode:
			for _, item := range params.Content {
				if item.Kind != yaml.MappingNode || len(item.Content) != 2 {
					return nil, fmt.Errorf("spec: event %q: parameter entries must be single name: type pairs", name)
				}
				def.Params = append(def.Params, Param{
					Name: item.Content[0].Value,
					Type: TypeOf(item.Content[1].Value),
				})
			}
		case yaml.ScalarNode:
			if params.Tag != "!!null" {
				return nil, fmt.Errorf("spec: event %q: parameters must be a sequence", name)
			}
		default:
			return nil, fmt.Errorf("spec: event %q: parameters must be a sequence", name)
		}

		s = append(s, def)
	}
	return s, nil
}
