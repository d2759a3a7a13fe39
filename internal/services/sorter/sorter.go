// Package sorter orders file references by one of the supported criteria.
package sorter

import (
	"cmp"
	"slices"
	"strings"

	"filesort/internal/domain"
)

// Criterion selects the ordering applied to a set of files.
type Criterion int

const (
	Alphabetical Criterion = iota
	ReverseAlphabetical
	CreatedAscending
	CreatedDescending
	ModifiedDescending
	ModifiedAscending
)

type criterionInfo struct {
	verb    string
	label   string
	compare func(a, b domain.FileReference) int
}

//nolint:gochecknoglobals // Static criterion table
var criteria = map[Criterion]criterionInfo{
	Alphabetical: {
		verb:    "alphabetical",
		label:   "Alphabetical order",
		compare: byName,
	},
	ReverseAlphabetical: {
		verb:    "reverse_alphabetical",
		label:   "Reverse alphabetical order",
		compare: reversed(byName),
	},
	CreatedAscending: {
		verb:    "created",
		label:   "Created (oldest to newest)",
		compare: byCreated,
	},
	CreatedDescending: {
		verb:    "reverse_created",
		label:   "Created (newest to oldest)",
		compare: reversed(byCreated),
	},
	ModifiedDescending: {
		verb:    "modified",
		label:   "Modified (newest to oldest)",
		compare: reversed(byModified),
	},
	ModifiedAscending: {
		verb:    "reverse_modified",
		label:   "Modified (oldest to newest)",
		compare: byModified,
	},
}

// All returns every criterion in declaration order.
func All() []Criterion {
	return []Criterion{
		Alphabetical,
		ReverseAlphabetical,
		CreatedAscending,
		CreatedDescending,
		ModifiedDescending,
		ModifiedAscending,
	}
}

// Verb returns the script verb that selects c.
func (c Criterion) Verb() string {
	return criteria[c].verb
}

// Label returns the heading printed before the sorted names.
func (c Criterion) Label() string {
	return criteria[c].label
}

func (c Criterion) String() string {
	return c.Verb()
}

// Sort returns a stably sorted copy of refs.
func Sort(refs []domain.FileReference, c Criterion) []domain.FileReference {
	out := slices.Clone(refs)
	info, ok := criteria[c]
	if !ok {
		return out
	}
	slices.SortStableFunc(out, info.compare)
	return out
}

// Names returns the names of refs, in order.
func Names(refs []domain.FileReference) []string {
	names := make([]string, len(refs))
	for i, ref := range refs {
		names[i] = ref.Name
	}
	return names
}

func byName(a, b domain.FileReference) int {
	return strings.Compare(a.Name, b.Name)
}

// Times are compared at millisecond precision.
func byCreated(a, b domain.FileReference) int {
	return cmp.Compare(a.Created.UnixMilli(), b.Created.UnixMilli())
}

func byModified(a, b domain.FileReference) int {
	return cmp.Compare(a.Modified.UnixMilli(), b.Modified.UnixMilli())
}

func reversed(f func(a, b domain.FileReference) int) func(a, b domain.FileReference) int {
	return func(a, b domain.FileReference) int {
		return f(b, a)
	}
}
