// Package combiner merges heterogeneous annotated object-detection datasets
// into one directory tree with a normalized class schema. Source label
// vocabularies are remapped into the fixed master vocabulary, image files are
// renamed collision-free, and per-class instance counts are tallied.
package combiner

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/atcc-vision/atcc-go/internal/conf"
	"github.com/atcc-vision/atcc-go/internal/errors"
	"github.com/atcc-vision/atcc-go/internal/vocab"
)

// labelExtension is the text label file extension, shared by source and
// merged datasets.
const labelExtension = ".txt"

// minLabelFields is the minimum number of whitespace-delimited fields in a
// label line: class index plus four bounding box fields. Extra fields are
// passed through unchanged.
const minLabelFields = 5

// splitDirs maps source split directory names to output split names. A source
// split literally named "valid" is written to the output split "val".
var splitDirs = []struct {
	source string
	output string
}{
	{"train", "train"},
	{"valid", "val"},
	{"val", "val"},
	{"test", "test"},
}

// outputSplits are the merged dataset split names.
var outputSplits = []string{"train", "val", "test"}

// Combiner merges the source datasets found under SourceDir into OutputDir.
type Combiner struct {
	sourceDir  string
	outputDir  string
	pattern    string
	extensions map[string]struct{}
	mapping    *vocab.Mapping
	log        *slog.Logger

	// usedIDs tracks every identifier handed out during the run, so output
	// filenames stay unique even across datasets with identical file names.
	usedIDs map[string]struct{}
}

// New creates a Combiner from the combine settings. A nil logger disables
// logging.
func New(settings *conf.CombineSettings, mapping *vocab.Mapping, log *slog.Logger) *Combiner {
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	exts := make(map[string]struct{}, len(settings.Extensions))
	for _, ext := range settings.Extensions {
		exts[strings.ToLower(ext)] = struct{}{}
	}
	return &Combiner{
		sourceDir:  settings.SourceDir,
		outputDir:  settings.OutputDir,
		pattern:    settings.Pattern,
		extensions: exts,
		mapping:    mapping,
		log:        log,
		usedIDs:    make(map[string]struct{}),
	}
}

// Run processes every candidate dataset directory and writes the merged
// dataset. Structural problems with individual datasets, splits or label
// lines are skipped and reported; the run itself only fails when the output
// tree or the aggregate data.yaml cannot be written.
func (c *Combiner) Run() (*Stats, error) {
	if err := c.createOutputDirs(); err != nil {
		return nil, err
	}

	datasets, err := c.findDatasets()
	if err != nil {
		return nil, err
	}
	c.log.Info("combine run starting", "source", c.sourceDir, "datasets", len(datasets))

	stats := &Stats{}
	for _, dir := range datasets {
		dsStats := c.processDataset(dir)
		stats.Merge(dsStats)
	}

	if err := writeMergedDataConfig(c.outputDir); err != nil {
		return nil, err
	}

	c.log.Info("combine run finished",
		"datasets", stats.Datasets,
		"skipped", stats.Skipped,
		"pairs", stats.Pairs,
		"instances", stats.Instances())
	return stats, nil
}

// createOutputDirs creates every output split's images and labels directory.
func (c *Combiner) createOutputDirs() error {
	for _, split := range outputSplits {
		for _, sub := range []string{"images", "labels"} {
			dir := filepath.Join(c.outputDir, split, sub)
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return errors.New(err).
					Component("combiner").
					Category(errors.CategoryFileIO).
					Context("operation", "create-output-dirs").
					FileContext(dir).
					Build()
			}
		}
	}
	return nil
}

// findDatasets returns the candidate dataset directories under the source
// root, identified by the configured name pattern.
func (c *Combiner) findDatasets() ([]string, error) {
	matches, err := filepath.Glob(filepath.Join(c.sourceDir, c.pattern))
	if err != nil {
		return nil, errors.New(err).
			Component("combiner").
			Category(errors.CategoryConfiguration).
			Context("pattern", c.pattern).
			Build()
	}

	var dirs []string
	for _, m := range matches {
		info, err := os.Stat(m)
		if err != nil || !info.IsDir() {
			continue
		}
		dirs = append(dirs, m)
	}
	return dirs, nil
}

// processDataset merges one source dataset. A dataset without a parsable
// class vocabulary is skipped entirely.
func (c *Combiner) processDataset(dir string) *Stats {
	stats := &Stats{}

	classes, err := loadSourceVocabulary(dir)
	if err != nil {
		c.log.Warn("skipping dataset, cannot load class vocabulary", "dataset", dir, "error", err)
		stats.Skipped++
		return stats
	}

	c.log.Info("processing dataset", "dataset", dir, "classes", len(classes))
	stats.Datasets++

	for _, split := range splitDirs {
		splitStats := c.processSplit(dir, split.source, split.output, classes)
		stats.Merge(splitStats)
	}
	return stats
}

// processSplit copies every supported image of one source split and rewrites
// its label file. A split missing its images or labels directory is skipped.
func (c *Combiner) processSplit(datasetDir, sourceSplit, outputSplit string, classes vocab.ClassList) *Stats {
	stats := &Stats{}

	imagesDir := filepath.Join(datasetDir, sourceSplit, "images")
	labelsDir := filepath.Join(datasetDir, sourceSplit, "labels")

	entries, err := os.ReadDir(imagesDir)
	if err != nil {
		// The split does not exist in this dataset.
		return stats
	}
	if info, err := os.Stat(labelsDir); err != nil || !info.IsDir() {
		// Images without a labels directory: the split is incomplete, skip it.
		c.log.Warn("skipping split, labels directory missing",
			"dataset", datasetDir, "split", sourceSplit)
		return stats
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if _, ok := c.extensions[strings.ToLower(filepath.Ext(name))]; !ok {
			continue
		}

		id := c.uniqueID()
		outName := id + "_" + name

		srcImage := filepath.Join(imagesDir, name)
		dstImage := filepath.Join(c.outputDir, outputSplit, "images", outName)
		if err := copyFile(srcImage, dstImage); err != nil {
			c.log.Warn("failed to copy image", "image", srcImage, "error", err)
			continue
		}
		stats.Images++

		stem := strings.TrimSuffix(name, filepath.Ext(name))
		srcLabel := filepath.Join(labelsDir, stem+labelExtension)
		data, err := os.ReadFile(srcLabel)
		if err != nil {
			// No matching label file: the image stays as an orphan and
			// contributes nothing to statistics.
			continue
		}

		lines := c.remapLabelLines(string(data), classes, stats)
		if len(lines) == 0 {
			continue
		}

		outStem := strings.TrimSuffix(outName, filepath.Ext(outName))
		dstLabel := filepath.Join(c.outputDir, outputSplit, "labels", outStem+labelExtension)
		if err := os.WriteFile(dstLabel, []byte(strings.Join(lines, "\n")+"\n"), 0o644); err != nil {
			c.log.Warn("failed to write label file", "label", dstLabel, "error", err)
			continue
		}
		stats.Pairs++
	}

	return stats
}

// remapLabelLines rewrites label lines into the master vocabulary. Lines with
// too few fields, an out-of-range class index or an unmapped class name are
// dropped individually. Surviving instances are counted into stats.
func (c *Combiner) remapLabelLines(content string, classes vocab.ClassList, stats *Stats) []string {
	var out []string
	for _, line := range strings.Split(content, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) < minLabelFields {
			continue
		}

		index, err := strconv.Atoi(fields[0])
		if err != nil {
			continue
		}
		name, ok := classes.Name(index)
		if !ok {
			continue
		}
		master, ok := c.mapping.Resolve(name)
		if !ok {
			continue
		}

		fields[0] = strconv.Itoa(int(master))
		out = append(out, strings.Join(fields, " "))
		stats.Classes[master]++
	}
	return out
}

// uniqueID returns a short random identifier that has not been handed out
// during this run.
func (c *Combiner) uniqueID() string {
	for {
		id := strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
		if _, taken := c.usedIDs[id]; !taken {
			c.usedIDs[id] = struct{}{}
			return id
		}
	}
}

// copyFile copies src to dst, truncating dst if it exists.
func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}

	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
