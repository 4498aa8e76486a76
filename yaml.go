package statusmap

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// yamlEntry is one element of the YAML specification sequence. The "to" node
// is kept raw because it accepts two shapes: a sequence of target statuses,
// or a mapping from target status to an attribute bag.
type yamlEntry struct {
	Status Status    `yaml:"status"`
	To     yaml.Node `yaml:"to"`
}

type yamlAttrs struct {
	Validation []string `yaml:"validation"`
}

// NewFromYAML builds a status map from a YAML specification document:
//
//	- status: pending
//	  to: [processing, cancelled]
//	- status: processing
//	  to:
//	    shipped:
//	      validation: [check_inventory]
//	- status: cancelled
//
// Entries without "to" declare terminal statuses. Both "to" shapes may be
// mixed across entries; attribute keys other than "validation" are kept as
// edge meta. Sequence order defines status iteration order. Additional
// options are applied after the parsed entries.
func NewFromYAML(r io.Reader, opts ...Option) (*StatusMap, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, &ErrInvalidSpecification{Reason: "read yaml specification", Err: err}
	}

	var entries []yamlEntry
	if err := yaml.Unmarshal(data, &entries); err != nil {
		return nil, &ErrInvalidSpecification{Reason: "parse yaml specification", Err: err}
	}

	parsed := make([]Option, 0, len(entries)+len(opts))
	for _, entry := range entries {
		opt, err := entry.option()
		if err != nil {
			return nil, err
		}
		parsed = append(parsed, opt)
	}

	return New(append(parsed, opts...)...)
}

func (e yamlEntry) option() (Option, error) {
	switch e.To.Kind {
	case 0, yaml.ScalarNode:
		// Absent or explicit null: terminal status. Any other scalar is a
		// shape error.
		if e.To.Kind == yaml.ScalarNode && e.To.Tag != "!!null" {
			return nil, NewErrInvalidSpecification(
				fmt.Sprintf("status '%s': 'to' must be a sequence or mapping, got scalar '%s'", e.Status, e.To.Value))
		}
		return WithTargets(e.Status), nil

	case yaml.SequenceNode:
		var targets []Status
		if err := e.To.Decode(&targets); err != nil {
			return nil, &ErrInvalidSpecification{
				Reason: fmt.Sprintf("status '%s': decode targets", e.Status),
				Err:    err,
			}
		}
		return WithTargets(e.Status, targets...), nil

	case yaml.MappingNode:
		targets, err := decodeAnnotatedTargets(e.Status, &e.To)
		if err != nil {
			return nil, err
		}
		return WithAnnotatedTargets(e.Status, targets...), nil

	default:
		return nil, NewErrInvalidSpecification(
			fmt.Sprintf("status '%s': 'to' must be a sequence or mapping", e.Status))
	}
}

// decodeAnnotatedTargets walks the mapping node pairwise to preserve the
// declared target order, which plain map decoding would lose.
func decodeAnnotatedTargets(from Status, node *yaml.Node) ([]AnnotatedTarget, error) {
	targets := make([]AnnotatedTarget, 0, len(node.Content)/2)

	for i := 0; i+1 < len(node.Content); i += 2 {
		keyNode, valNode := node.Content[i], node.Content[i+1]

		var target Status
		if err := keyNode.Decode(&target); err != nil {
			return nil, &ErrInvalidSpecification{
				Reason: fmt.Sprintf("status '%s': decode target name", from),
				Err:    err,
			}
		}

		attrs := EdgeAttributes{}
		if valNode.Kind == yaml.MappingNode {
			var known yamlAttrs
			if err := valNode.Decode(&known); err != nil {
				return nil, &ErrInvalidSpecification{
					Reason: fmt.Sprintf("transition from '%s' to '%s': decode attributes", from, target),
					Err:    err,
				}
			}
			attrs.Validations = known.Validation

			var raw map[string]any
			if err := valNode.Decode(&raw); err != nil {
				return nil, &ErrInvalidSpecification{
					Reason: fmt.Sprintf("transition from '%s' to '%s': decode attributes", from, target),
					Err:    err,
				}
			}
			delete(raw, "validation")
			if len(raw) > 0 {
				attrs.Meta = raw
			}
		} else if valNode.Kind != 0 && valNode.Tag != "!!null" {
			return nil, NewErrInvalidSpecification(
				fmt.Sprintf("transition from '%s' to '%s': attributes must be a mapping", from, target))
		}

		targets = append(targets, AnnotatedTarget{Target: target, Attrs: attrs})
	}

	return targets, nil
}
