// classlist.go: source dataset class vocabulary parsing
package vocab

import (
	"fmt"
	"strconv"

	"gopkg.in/yaml.v3"
)

// ClassList is the ordered class vocabulary of one source dataset: position =
// integer index used in that dataset's label files. YOLO data.yaml files
// declare it either as a list
//
//	names: ['car', 'auto']
//
// or as an index map
//
//	names:
//	  0: car
//	  1: auto
//
// and this type accepts both.
type ClassList []string

// maxClassIndex bounds map-form class indices. The index map is densified
// into a slice, so an absurd index in a corrupt declaration must be rejected
// up front instead of sizing the allocation.
const maxClassIndex = 4096

// UnmarshalYAML implements yaml.Unmarshaler.
func (cl *ClassList) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.SequenceNode:
		names := make([]string, 0, len(value.Content))
		for _, item := range value.Content {
			var name string
			if err := item.Decode(&name); err != nil {
				return fmt.Errorf("class list entry: %w", err)
			}
			names = append(names, name)
		}
		*cl = names
		return nil

	case yaml.MappingNode:
		// Mapping content alternates key, value nodes.
		entries := make(map[int]string, len(value.Content)/2)
		maxIndex := -1
		for i := 0; i+1 < len(value.Content); i += 2 {
			idx, err := strconv.Atoi(value.Content[i].Value)
			if err != nil {
				return fmt.Errorf("class index %q: %w", value.Content[i].Value, err)
			}
			if idx < 0 {
				return fmt.Errorf("negative class index %d", idx)
			}
			if idx > maxClassIndex {
				return fmt.Errorf("class index %d exceeds the maximum of %d", idx, maxClassIndex)
			}
			var name string
			if err := value.Content[i+1].Decode(&name); err != nil {
				return fmt.Errorf("class name for index %d: %w", idx, err)
			}
			entries[idx] = name
			if idx > maxIndex {
				maxIndex = idx
			}
		}
		names := make([]string, maxIndex+1)
		for idx, name := range entries {
			names[idx] = name
		}
		*cl = names
		return nil

	default:
		return fmt.Errorf("names must be a list or an index map, got yaml kind %d", value.Kind)
	}
}

// Name returns the class name at the given index. The boolean is false when
// the index is outside the vocabulary.
func (cl ClassList) Name(index int) (string, bool) {
	if index < 0 || index >= len(cl) {
		return "", false
	}
	return cl[index], true
}
