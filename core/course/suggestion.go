package course

import (
	"golang.org/x/text/cases"
)

const (
	// MaxSuggestions caps the number of suggestions returned to callers
	MaxSuggestions = 10
	// MinSuggestPrefixLength is the shortest prefix worth a completion lookup
	MinSuggestPrefixLength = 2
)

type uniqueStrings struct {
	fold cases.Caser
	m    map[string]struct{}
	l    []string
}

func newUniqueStrings(cap int) uniqueStrings {
	return uniqueStrings{
		fold: cases.Fold(),
		m:    make(map[string]struct{}, cap),
		l:    make([]string, 0, cap),
	}
}

// add keeps the first spelling seen for every case-folded value
func (u *uniqueStrings) add(ss ...string) {
	for _, s := range ss {
		key := u.fold.String(s)
		if _, ok := u.m[key]; ok {
			continue
		}

		u.m[key] = struct{}{}
		u.l = append(u.l, s)
	}
}

func (u *uniqueStrings) list() []string {
	return u.l
}

// ReduceSuggestions removes case-insensitive duplicates while keeping the
// first-seen order and spelling, drops empty titles, and caps the
// list at MaxSuggestions.
func ReduceSuggestions(titles []string) []string {
	u := newUniqueStrings(MaxSuggestions)
	for _, t := range titles {
		if t == "" {
			continue
		}
		if len(u.list()) == MaxSuggestions {
			break
		}
		u.add(t)
	}
	return u.list()
}
