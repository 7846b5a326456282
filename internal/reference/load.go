package reference

import (
	"context"
	_ "embed"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/abhisek/weakspot/internal/band"
)

//go:embed sample.csv
var sampleCSV string

// SampleSource is the Source label of the embedded dataset.
const SampleSource = "builtin:sample"

var header = []string{"student_id", "subject", "difficulty", "confidence", "quiz_score", "pass_mark", "band"}

// Load reads the dataset at path, or the embedded sample when path is empty.
func Load(ctx context.Context, path string) (*Dataset, error) {
	if path == "" {
		return Parse(ctx, strings.NewReader(sampleCSV), SampleSource)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open reference dataset: %w", err)
	}
	defer f.Close()
	return Parse(ctx, f, path)
}

// Parse reads CSV records from r. The header row is required; columns are
// matched by name so their order may vary. Rows that fail to parse are
// skipped and counted.
func Parse(ctx context.Context, r io.Reader, source string) (*Dataset, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	cr.FieldsPerRecord = -1

	head, err := cr.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("reference dataset %s: empty file", source)
		}
		return nil, fmt.Errorf("read header: %w", err)
	}
	cols, err := columnIndex(head)
	if err != nil {
		return nil, fmt.Errorf("reference dataset %s: %w", source, err)
	}

	ds := &Dataset{Source: source}
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		row, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			ds.Skipped++
			continue
		}
		rec, knownBand, ok := parseRow(row, cols)
		if !ok {
			ds.Skipped++
			continue
		}
		if !knownBand {
			ds.UnknownBands++
		}
		ds.Records = append(ds.Records, rec)
	}
	return ds, nil
}

func columnIndex(head []string) (map[string]int, error) {
	idx := make(map[string]int, len(head))
	for i, h := range head {
		idx[strings.ToLower(strings.TrimSpace(h))] = i
	}
	var missing []string
	for _, h := range header {
		if _, ok := idx[h]; !ok {
			missing = append(missing, h)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("missing columns: %s", strings.Join(missing, ", "))
	}
	return idx, nil
}

// parseRow also reports whether the band label was recognised.
func parseRow(row []string, cols map[string]int) (TrainingRecord, bool, bool) {
	get := func(name string) string {
		i := cols[name]
		if i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}
	atoi := func(name string) (int, bool) {
		n, err := strconv.Atoi(get(name))
		return n, err == nil
	}

	subject := get("subject")
	if subject == "" {
		return TrainingRecord{}, false, false
	}
	difficulty, ok1 := atoi("difficulty")
	confidence, ok2 := atoi("confidence")
	score, ok3 := atoi("quiz_score")
	passMark, ok4 := atoi("pass_mark")
	if !ok1 || !ok2 || !ok3 || !ok4 {
		return TrainingRecord{}, false, false
	}
	if score < 0 || passMark < 0 {
		return TrainingRecord{}, false, false
	}

	b, known := band.Lookup(get("band"))
	return TrainingRecord{
		StudentID:  get("student_id"),
		Subject:    subject,
		Difficulty: difficulty,
		Confidence: confidence,
		QuizScore:  score,
		PassMark:   passMark,
		Band:       b,
	}, known, true
}
