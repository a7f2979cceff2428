package vocab

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestMasterVocabulary_StableIndices(t *testing.T) {
	t.Parallel()

	// These indices are written into merged label files and must never move.
	expected := map[MasterClass]string{
		TwoWheeler:     "2-wheeler",
		ThreeWheeler:   "3-wheeler",
		Bus:            "bus",
		LCV:            "lcv",
		Car:            "car",
		TwoAxleTruck:   "2-axle-truck",
		ThreeAxleTruck: "3-axle-truck",
		MultiAxleTruck: "multi-axle-truck",
		Bicycle:        "bicycle",
		Handcart:       "handcart",
		Person:         "person",
	}

	require.Len(t, expected, NumClasses)
	for class, name := range expected {
		assert.Equal(t, name, class.Name())
	}

	assert.Equal(t, MasterClass(4), Car)
	assert.Equal(t, MasterClass(10), Person)
}

func TestMasterClassByName(t *testing.T) {
	t.Parallel()

	c, ok := MasterClassByName("car")
	require.True(t, ok)
	assert.Equal(t, Car, c)

	_, ok = MasterClassByName("hovercraft")
	assert.False(t, ok)
}

func TestMasterClass_Valid(t *testing.T) {
	t.Parallel()

	assert.True(t, TwoWheeler.Valid())
	assert.True(t, Person.Valid())
	assert.False(t, MasterClass(-1).Valid())
	assert.False(t, MasterClass(NumClasses).Valid())
	assert.Empty(t, MasterClass(99).Name())
}

func TestMapping_Resolve(t *testing.T) {
	t.Parallel()

	m, err := NewMapping(map[string]string{
		"car":         "car",
		"auto":        "3-wheeler",
		"two wheeler": "2-wheeler",
		"tractor":     "drop",
	})
	require.NoError(t, err)

	tests := []struct {
		name   string
		source string
		want   MasterClass
		found  bool
	}{
		{"direct name", "car", Car, true},
		{"renamed class", "auto", ThreeWheeler, true},
		{"spaced name", "two wheeler", TwoWheeler, true},
		{"explicit drop", "tractor", 0, false},
		{"unmapped name", "spaceship", 0, false},
		{"case sensitive", "Car", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := m.Resolve(tt.source)
			assert.Equal(t, tt.found, ok)
			if tt.found {
				assert.Equal(t, tt.want, got)
			}
		})
	}

	assert.True(t, m.Dropped("tractor"))
	assert.False(t, m.Dropped("spaceship"))
}

func TestNewMapping_UnknownTarget(t *testing.T) {
	t.Parallel()

	_, err := NewMapping(map[string]string{"car": "sedan"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "sedan")
}

func TestDefaultMapping(t *testing.T) {
	t.Parallel()

	m := DefaultMapping()

	c, ok := m.Resolve("auto")
	require.True(t, ok)
	assert.Equal(t, ThreeWheeler, c)

	c, ok = m.Resolve("truck")
	require.True(t, ok)
	assert.Equal(t, TwoAxleTruck, c)

	_, ok = m.Resolve("tractor")
	assert.False(t, ok)
	assert.True(t, m.Dropped("tractor"))
}

func TestLoadMapping(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "classmap.yaml")
	content := "car: car\nauto: 3-wheeler\ntractor: drop\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	m, err := LoadMapping(path)
	require.NoError(t, err)
	assert.Equal(t, 3, m.Len())

	c, ok := m.Resolve("auto")
	require.True(t, ok)
	assert.Equal(t, ThreeWheeler, c)

	_, err = LoadMapping(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)
}

func TestClassList_ListForm(t *testing.T) {
	t.Parallel()

	var doc struct {
		Names ClassList `yaml:"names"`
	}
	require.NoError(t, yaml.Unmarshal([]byte("names: ['car', 'auto']\n"), &doc))
	assert.Equal(t, ClassList{"car", "auto"}, doc.Names)

	name, ok := doc.Names.Name(1)
	require.True(t, ok)
	assert.Equal(t, "auto", name)

	_, ok = doc.Names.Name(2)
	assert.False(t, ok)
	_, ok = doc.Names.Name(-1)
	assert.False(t, ok)
}

func TestClassList_MapForm(t *testing.T) {
	t.Parallel()

	var doc struct {
		Names ClassList `yaml:"names"`
	}
	content := "names:\n  0: car\n  1: auto\n  3: bus\n"
	require.NoError(t, yaml.Unmarshal([]byte(content), &doc))

	// Sparse indices leave gaps as empty names.
	assert.Equal(t, ClassList{"car", "auto", "", "bus"}, doc.Names)
}

func TestClassList_BadForms(t *testing.T) {
	t.Parallel()

	var doc struct {
		Names ClassList `yaml:"names"`
	}
	assert.Error(t, yaml.Unmarshal([]byte("names: 12\n"), &doc))
	assert.Error(t, yaml.Unmarshal([]byte("names:\n  car: 0\n"), &doc))
	assert.Error(t, yaml.Unmarshal([]byte("names:\n  -1: car\n"), &doc))

	// A corrupt declaration with an absurd index must error out, not size a
	// dense table from it.
	assert.Error(t, yaml.Unmarshal([]byte("names:\n  1099511627775: car\n"), &doc))
	assert.Error(t, yaml.Unmarshal([]byte("names:\n  4097: car\n"), &doc))
}
