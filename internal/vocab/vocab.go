// Package vocab defines the master class vocabulary of the merged vehicle
// dataset and the mapping from heterogeneous source class names into it.
package vocab

import "fmt"

// MasterClass is an index into the fixed 11-class target schema. The indices
// are stable: they are written verbatim into merged label files and data.yaml.
type MasterClass int

const (
	TwoWheeler MasterClass = iota
	ThreeWheeler
	Bus
	LCV
	Car
	TwoAxleTruck
	ThreeAxleTruck
	MultiAxleTruck
	Bicycle
	Handcart
	Person

	// NumClasses is the size of the master vocabulary.
	NumClasses = 11
)

// masterNames are the canonical class names, position = master index.
var masterNames = [NumClasses]string{
	"2-wheeler",
	"3-wheeler",
	"bus",
	"lcv",
	"car",
	"2-axle-truck",
	"3-axle-truck",
	"multi-axle-truck",
	"bicycle",
	"handcart",
	"person",
}

// Name returns the canonical name of the master class, or an empty string for
// an out-of-range value.
func (c MasterClass) Name() string {
	if !c.Valid() {
		return ""
	}
	return masterNames[c]
}

// Valid reports whether c is within the master vocabulary.
func (c MasterClass) Valid() bool {
	return c >= 0 && c < NumClasses
}

func (c MasterClass) String() string {
	if !c.Valid() {
		return fmt.Sprintf("MasterClass(%d)", int(c))
	}
	return masterNames[c]
}

// MasterNames returns the master vocabulary in index order.
func MasterNames() []string {
	names := make([]string, NumClasses)
	copy(names, masterNames[:])
	return names
}

// MasterClassByName resolves a canonical class name to its master index.
func MasterClassByName(name string) (MasterClass, bool) {
	for i, n := range masterNames {
		if n == name {
			return MasterClass(i), true
		}
	}
	return 0, false
}
