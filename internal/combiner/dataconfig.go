// dataconfig.go: reading source data.yaml declarations and writing the merged one
package combiner

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/atcc-vision/atcc-go/internal/errors"
	"github.com/atcc-vision/atcc-go/internal/vocab"
)

// dataConfigName is the per-dataset configuration file declaring the class
// vocabulary, as used by YOLO-style datasets.
const dataConfigName = "data.yaml"

// sourceDataConfig is the subset of a source dataset's data.yaml the combiner
// needs: the ordered class vocabulary.
type sourceDataConfig struct {
	Names vocab.ClassList `yaml:"names"`
}

// loadSourceVocabulary parses <dataset>/data.yaml and returns its class list.
func loadSourceVocabulary(datasetDir string) (vocab.ClassList, error) {
	path := filepath.Join(datasetDir, dataConfigName)
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.New(err).
			Component("combiner").
			Category(errors.CategoryNotFound).
			FileContext(path).
			Build()
	}

	var cfg sourceDataConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, errors.New(err).
			Component("combiner").
			Category(errors.CategoryFileParsing).
			FileContext(path).
			Build()
	}
	if len(cfg.Names) == 0 {
		return nil, errors.Newf("no class names declared in %s", path).
			Component("combiner").
			Category(errors.CategoryFileParsing).
			Build()
	}

	return cfg.Names, nil
}

// mergedDataConfig is the aggregate data.yaml written at the merged dataset
// root. Field order matches the file layout the training config expects.
type mergedDataConfig struct {
	Path  string         `yaml:"path"`
	Train string         `yaml:"train"`
	Val   string         `yaml:"val"`
	Test  string         `yaml:"test"`
	NC    int            `yaml:"nc"`
	Names map[int]string `yaml:"names"`
}

// writeMergedDataConfig writes <outputDir>/data.yaml declaring the master
// vocabulary and the relative image split paths.
func writeMergedDataConfig(outputDir string) error {
	names := make(map[int]string, vocab.NumClasses)
	for i, name := range vocab.MasterNames() {
		names[i] = name
	}

	cfg := mergedDataConfig{
		Path:  ".",
		Train: "train/images",
		Val:   "val/images",
		Test:  "test/images",
		NC:    vocab.NumClasses,
		Names: names,
	}

	data, err := yaml.Marshal(&cfg)
	if err != nil {
		return errors.New(err).
			Component("combiner").
			Category(errors.CategoryFileIO).
			Context("operation", "marshal-data-config").
			Build()
	}

	path := filepath.Join(outputDir, dataConfigName)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.New(err).
			Component("combiner").
			Category(errors.CategoryFileIO).
			FileContext(path).
			Build()
	}

	return nil
}
