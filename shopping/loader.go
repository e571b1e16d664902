package shopping

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"os"
	"strconv"
	"time"
)

// Sentinel errors for dataset handling.
var (
	// ErrBadRecord indicates a cell that cannot be converted for its column.
	ErrBadRecord = errors.New("shopping: malformed record")

	// ErrEmptyDataset indicates no usable data rows.
	ErrEmptyDataset = errors.New("shopping: empty dataset")

	// ErrMismatchedLengths indicates label/prediction slices of
	// differing lengths.
	ErrMismatchedLengths = errors.New("shopping: mismatched lengths")
)

// TestFraction is the share of rows held out for evaluation.
const TestFraction = 0.4

// Dataset pairs evidence rows with purchase labels (1 = revenue).
type Dataset struct {
	Evidence [][]float64
	Labels   []int
}

// Column conversion groups, keyed by CSV header name.
var (
	intColumns = map[string]struct{}{
		"Administrative": {}, "Informational": {}, "ProductRelated": {},
		"OperatingSystems": {}, "Browser": {}, "Region": {}, "TrafficType": {},
	}
	floatColumns = map[string]struct{}{
		"Administrative_Duration": {}, "Informational_Duration": {},
		"ProductRelated_Duration": {}, "BounceRates": {}, "ExitRates": {},
		"PageValues": {}, "SpecialDay": {},
	}
	months = []string{
		"Jan", "Feb", "Mar", "Apr", "May", "June",
		"Jul", "Aug", "Sep", "Oct", "Nov", "Dec",
	}
)

// Load reads the shopping CSV, converting each column per its header.
// The last column must be the Revenue label (TRUE/FALSE).
func Load(path string) (*Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("shopping: open data file: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	header, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("shopping: read header: %w", err)
	}

	d := &Dataset{}
	for {
		rec, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("shopping: read data file: %w", err)
		}
		row := make([]float64, 0, len(rec)-1)
		for i := 0; i < len(rec)-1; i++ {
			v, err := convertCell(header[i], rec[i])
			if err != nil {
				return nil, err
			}
			row = append(row, v)
		}
		d.Evidence = append(d.Evidence, row)
		if rec[len(rec)-1] == "TRUE" {
			d.Labels = append(d.Labels, 1)
		} else {
			d.Labels = append(d.Labels, 0)
		}
	}
	if len(d.Evidence) == 0 {
		return nil, ErrEmptyDataset
	}

	return d, nil
}

// convertCell converts one cell according to its column name.
func convertCell(column, cell string) (float64, error) {
	if _, ok := intColumns[column]; ok {
		n, err := strconv.Atoi(cell)
		if err != nil {
			return 0, fmt.Errorf("%w: %s=%q", ErrBadRecord, column, cell)
		}

		return float64(n), nil
	}
	if _, ok := floatColumns[column]; ok {
		v, err := strconv.ParseFloat(cell, 64)
		if err != nil {
			return 0, fmt.Errorf("%w: %s=%q", ErrBadRecord, column, cell)
		}

		return v, nil
	}
	switch column {
	case "VisitorType":
		if cell == "Returning_Visitor" {
			return 1, nil
		}

		return 0, nil
	case "Weekend":
		if cell == "TRUE" {
			return 1, nil
		}

		return 0, nil
	default: // Month
		for i, m := range months {
			if cell == m {
				return float64(i), nil
			}
		}

		return 0, fmt.Errorf("%w: %s=%q", ErrBadRecord, column, cell)
	}
}

// Split shuffles the dataset and holds out testFraction of the rows.
// A nil rng means time-seeded. Returns ErrEmptyDataset when either
// side would be empty.
func (d *Dataset) Split(testFraction float64, rng *rand.Rand) (train, test *Dataset, err error) {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	n := len(d.Evidence)
	testN := int(float64(n) * testFraction)
	if testN == 0 || testN == n {
		return nil, nil, ErrEmptyDataset
	}

	perm := rng.Perm(n)
	train, test = &Dataset{}, &Dataset{}
	for i, idx := range perm {
		dst := train
		if i < testN {
			dst = test
		}
		dst.Evidence = append(dst.Evidence, d.Evidence[idx])
		dst.Labels = append(dst.Labels, d.Labels[idx])
	}

	return train, test, nil
}
