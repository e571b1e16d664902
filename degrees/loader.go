package degrees

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/AndrewS622/Introduction-to-Artificial-Intelligence/graph"
)

// Data holds the loaded actor–movie network and the name index used to
// resolve human-entered names.
type Data struct {
	People map[string]*Person
	Movies map[string]*Movie

	// names maps a lowercased person name to the IDs bearing it.
	names map[string][]string

	// g is the bipartite person–movie graph, built on first query.
	g *graph.Graph
}

// LoadData reads people.csv, movies.csv and stars.csv from dir.
// Each file must carry a header row; stars rows referencing unknown
// people or movies are skipped, matching the course data sets which
// contain dangling references.
func LoadData(dir string) (*Data, error) {
	d := &Data{
		People: make(map[string]*Person),
		Movies: make(map[string]*Movie),
		names:  make(map[string][]string),
	}

	if err := readCSV(filepath.Join(dir, "people.csv"), 3, func(rec []string) {
		p := &Person{ID: rec[0], Name: rec[1], Birth: rec[2], Movies: make(map[string]struct{})}
		d.People[p.ID] = p
		key := strings.ToLower(p.Name)
		d.names[key] = append(d.names[key], p.ID)
	}); err != nil {
		return nil, err
	}

	if err := readCSV(filepath.Join(dir, "movies.csv"), 3, func(rec []string) {
		m := &Movie{ID: rec[0], Title: rec[1], Year: rec[2], Stars: make(map[string]struct{})}
		d.Movies[m.ID] = m
	}); err != nil {
		return nil, err
	}

	if err := readCSV(filepath.Join(dir, "stars.csv"), 2, func(rec []string) {
		personID, movieID := rec[0], rec[1]
		p, okP := d.People[personID]
		m, okM := d.Movies[movieID]
		if !okP || !okM {
			return
		}
		p.Movies[movieID] = struct{}{}
		m.Stars[personID] = struct{}{}
	}); err != nil {
		return nil, err
	}

	return d, nil
}

// readCSV streams path, skips the header, and calls fn per record.
// Records shorter than minFields are rejected.
func readCSV(path string, minFields int, fn func(rec []string)) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("degrees: open data file: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1

	// header
	if _, err = r.Read(); err != nil {
		return fmt.Errorf("degrees: read header of %s: %w", filepath.Base(path), err)
	}
	for {
		rec, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("degrees: read %s: %w", filepath.Base(path), err)
		}
		if len(rec) < minFields {
			return fmt.Errorf("degrees: malformed record in %s: %q", filepath.Base(path), rec)
		}
		fn(rec)
	}

	return nil
}

// PersonIDs resolves name (case-insensitive) to the matching person IDs.
// Returns ErrPersonNotFound if the name is unknown. Multiple IDs mean
// the name is ambiguous; the caller decides which to use.
func (d *Data) PersonIDs(name string) ([]string, error) {
	ids := d.names[strings.ToLower(name)]
	if len(ids) == 0 {
		return nil, fmt.Errorf("%w: %q", ErrPersonNotFound, name)
	}

	return ids, nil
}
