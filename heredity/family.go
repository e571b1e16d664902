package heredity

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
)

// ErrBadFamily indicates malformed family data.
var ErrBadFamily = errors.New("heredity: invalid family data")

// Person is one family member. Trait is nil when unobserved.
type Person struct {
	Name   string
	Mother string // empty when no listed parents
	Father string
	Trait  *bool
}

// Family maps member names to their records.
type Family map[string]*Person

// Names returns all member names, sorted.
func (f Family) Names() []string {
	names := make([]string, 0, len(f))
	for n := range f {
		names = append(names, n)
	}
	sort.Strings(names)

	return names
}

// LoadFamily reads a CSV with header name,mother,father,trait.
// mother and father must both be blank or both name family members;
// trait must be "1", "0", or blank.
func LoadFamily(path string) (Family, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("heredity: open family file: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	if _, err = r.Read(); err != nil {
		return nil, fmt.Errorf("heredity: read header: %w", err)
	}

	fam := make(Family)
	for {
		rec, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("heredity: read family file: %w", err)
		}
		if len(rec) < 4 || rec[0] == "" {
			return nil, fmt.Errorf("%w: malformed record %q", ErrBadFamily, rec)
		}
		p := &Person{Name: rec[0], Mother: rec[1], Father: rec[2]}
		switch rec[3] {
		case "1":
			t := true
			p.Trait = &t
		case "0":
			t := false
			p.Trait = &t
		case "":
			// unobserved
		default:
			return nil, fmt.Errorf("%w: trait %q for %s", ErrBadFamily, rec[3], p.Name)
		}
		fam[p.Name] = p
	}

	// parents both present or both absent, and known to the family
	for _, p := range fam {
		if (p.Mother == "") != (p.Father == "") {
			return nil, fmt.Errorf("%w: %s has exactly one listed parent", ErrBadFamily, p.Name)
		}
		for _, parent := range []string{p.Mother, p.Father} {
			if parent == "" {
				continue
			}
			if _, ok := fam[parent]; !ok {
				return nil, fmt.Errorf("%w: unknown parent %q of %s", ErrBadFamily, parent, p.Name)
			}
		}
	}

	return fam, nil
}
