// stats.go: per-class instance statistics accumulated over a combine run
package combiner

import (
	"fmt"
	"io"

	"github.com/atcc-vision/atcc-go/internal/vocab"
)

// Stats accumulates the results of processing one or more source datasets.
// It is an explicit value threaded through each processing step, merged at
// the end, so there is no hidden shared state.
type Stats struct {
	// Pairs is the number of image/label pairs written to the merged dataset.
	// Orphan images (no surviving label lines) are not counted.
	Pairs int
	// Images is the number of image files copied, orphans included.
	Images int
	// Datasets is the number of source datasets processed.
	Datasets int
	// Skipped is the number of candidate datasets skipped for a missing
	// class-vocabulary declaration.
	Skipped int
	// Classes counts emitted label instances per master class index.
	Classes [vocab.NumClasses]int
}

// Instances returns the total number of label lines retained across all
// processed datasets.
func (s *Stats) Instances() int {
	total := 0
	for _, n := range s.Classes {
		total += n
	}
	return total
}

// Merge folds other into s.
func (s *Stats) Merge(other *Stats) {
	s.Pairs += other.Pairs
	s.Images += other.Images
	s.Datasets += other.Datasets
	s.Skipped += other.Skipped
	for i, n := range other.Classes {
		s.Classes[i] += n
	}
}

// Report writes a human-readable class distribution summary.
func (s *Stats) Report(w io.Writer) {
	fmt.Fprintf(w, "Merged %d image/label pairs from %d datasets (%d skipped, %d images copied)\n",
		s.Pairs, s.Datasets, s.Skipped, s.Images)

	total := s.Instances()
	fmt.Fprintf(w, "Class distribution (%d instances):\n", total)
	for i, count := range s.Classes {
		pct := 0.0
		if total > 0 {
			pct = float64(count) / float64(total) * 100
		}
		fmt.Fprintf(w, "  %2d  %-18s %8d  %5.1f%%\n", i, vocab.MasterClass(i).Name(), count, pct)
	}
}
