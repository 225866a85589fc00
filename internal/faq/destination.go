package faq

import "fmt"

// Destination is a page a result can navigate to.
type Destination string

// Known destinations.
const (
	NoDestination         Destination = ""
	DestinationCaseStudy1 Destination = "case-study-1"
	DestinationCaseStudy3 Destination = "case-study-3"
	DestinationContact    Destination = "contact"
	DestinationAbout      Destination = "about"
)

var knownDestinations = map[Destination]bool{
	NoDestination:         true,
	DestinationCaseStudy1: true,
	DestinationCaseStudy3: true,
	DestinationContact:    true,
	DestinationAbout:      true,
}

// ParseDestination converts a configured name into a Destination.
func ParseDestination(s string) (Destination, error) {
	d := Destination(s)
	if !d.Valid() {
		return NoDestination, fmt.Errorf("unknown destination %q", s)
	}
	return d, nil
}

// Valid reports whether d is a known destination.
func (d Destination) Valid() bool {
	return knownDestinations[d]
}

// Page returns the page file name, e.g. "contact.html", or "" for
// NoDestination.
func (d Destination) Page() string {
	if d == NoDestination {
		return ""
	}
	return string(d) + ".html"
}
