package degrees

import "errors"

// Sentinel errors for degrees queries.
var (
	// ErrPersonNotFound indicates a queried name matches nobody in the data set.
	ErrPersonNotFound = errors.New("degrees: person not found")

	// ErrNoConnection indicates the two actors are not connected.
	ErrNoConnection = errors.New("degrees: no connection between actors")
)

// Person is one row of people.csv plus the set of movies the person
// starred in.
type Person struct {
	ID     string
	Name   string
	Birth  string
	Movies map[string]struct{}
}

// Movie is one row of movies.csv plus the set of people starring in it.
type Movie struct {
	ID    string
	Title string
	Year  string
	Stars map[string]struct{}
}

// Step is one link in a connection chain: Person starred in Movie
// together with the previous person in the chain.
type Step struct {
	MovieID  string
	PersonID string
}
