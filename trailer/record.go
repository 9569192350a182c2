// Package trailer finds the one promotional video shown for an item.
package trailer

import "github.com/marquee-cli/marquee/catalog"

type Status int

const (
	Unresolved Status = iota
	Found
	NotFound
)

func (s Status) String() string {
	switch s {
	case Found:
		return "found"
	case NotFound:
		return "not found"
	default:
		return "unresolved"
	}
}

// Record is the resolution state of one item's trailer. Key is the YouTube
// video key and is set only when Status is Found.
type Record struct {
	ID     catalog.ID
	Status Status
	Key    string
}

// Terminal reports whether the record is a final answer.
func (r Record) Terminal() bool {
	return r.Status == Found || r.Status == NotFound
}

func notFound(id catalog.ID) Record {
	return Record{ID: id, Status: NotFound}
}
