// mapping.go: source class name to master class resolution
package vocab

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/atcc-vision/atcc-go/internal/errors"
)

// dropValue marks a source class whose instances are discarded outright.
const dropValue = "drop"

// Mapping is an immutable lookup from source class name (exact match, case
// and format sensitive) to a master class. Names mapped to "drop" and names
// absent from the table both resolve to not-found; the caller drops the
// instance either way.
type Mapping struct {
	classes map[string]MasterClass
	dropped map[string]struct{}
}

// Resolve looks up a source class name. The boolean is false when the name is
// unmapped or explicitly dropped.
func (m *Mapping) Resolve(name string) (MasterClass, bool) {
	c, ok := m.classes[name]
	return c, ok
}

// Dropped reports whether the name is explicitly mapped to drop, as opposed
// to simply unknown. Informational only, both cases discard the instance.
func (m *Mapping) Dropped(name string) bool {
	_, ok := m.dropped[name]
	return ok
}

// Len returns the number of entries, dropped names included.
func (m *Mapping) Len() int {
	return len(m.classes) + len(m.dropped)
}

// NewMapping builds a Mapping from name -> canonical master class name, with
// "drop" as the discard marker.
func NewMapping(table map[string]string) (*Mapping, error) {
	m := &Mapping{
		classes: make(map[string]MasterClass, len(table)),
		dropped: make(map[string]struct{}),
	}
	for name, target := range table {
		if target == dropValue {
			m.dropped[name] = struct{}{}
			continue
		}
		c, ok := MasterClassByName(target)
		if !ok {
			return nil, errors.Newf("unknown master class %q for source class %q", target, name).
				Component("vocab").
				Category(errors.CategoryClassMapping).
				Build()
		}
		m.classes[name] = c
	}
	return m, nil
}

// LoadMapping reads a YAML mapping file of the form
//
//	car: car
//	auto: 3-wheeler
//	tractor: drop
//
// and builds a Mapping from it.
func LoadMapping(path string) (*Mapping, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.New(err).
			Component("vocab").
			Category(errors.CategoryFileIO).
			FileContext(path).
			Build()
	}

	table := make(map[string]string)
	if err := yaml.Unmarshal(data, &table); err != nil {
		return nil, errors.New(err).
			Component("vocab").
			Category(errors.CategoryFileParsing).
			FileContext(path).
			Build()
	}

	return NewMapping(table)
}

// DefaultMapping covers the label vocabularies of the source datasets the
// project has collected so far. Names not listed here are dropped.
func DefaultMapping() *Mapping {
	m, err := NewMapping(map[string]string{
		// two wheelers
		"two wheeler": "2-wheeler",
		"2-wheeler":   "2-wheeler",
		"motorcycle":  "2-wheeler",
		"motorbike":   "2-wheeler",
		"scooter":     "2-wheeler",
		// three wheelers
		"three wheeler": "3-wheeler",
		"3-wheeler":     "3-wheeler",
		"auto":          "3-wheeler",
		"autorickshaw":  "3-wheeler",
		"rickshaw":      "3-wheeler",
		// buses
		"bus":     "bus",
		"minibus": "bus",
		// light commercial vehicles
		"lcv":        "lcv",
		"van":        "lcv",
		"pickup":     "lcv",
		"mini-truck": "lcv",
		"tempo":      "lcv",
		// cars
		"car":  "car",
		"jeep": "car",
		"suv":  "car",
		// trucks by axle count
		"truck":            "2-axle-truck",
		"lorry":            "2-axle-truck",
		"2-axle-truck":     "2-axle-truck",
		"3-axle-truck":     "3-axle-truck",
		"multi-axle-truck": "multi-axle-truck",
		"trailer":          "multi-axle-truck",
		// non-motorized
		"bicycle":  "bicycle",
		"cycle":    "bicycle",
		"handcart": "handcart",
		"cart":     "handcart",
		// people
		"person":     "person",
		"pedestrian": "person",
		// present in some sources but not part of the target schema
		"tractor": "drop",
		"jcb":     "drop",
		"animal":  "drop",
	})
	if err != nil {
		// The built-in table only references canonical names.
		panic(err)
	}
	return m
}
