package processor

import (
	"sort"

	"github.com/woozymasta/geodots/internal/geo"
)

// ContinentIndex maps a continent label to its country names in input order.
type ContinentIndex struct {
	groups map[geo.Continent][]string
}

// GroupByContinent builds the continent index for features.
// Features lacking a name or continent are skipped here; the projector reports them.
func GroupByContinent(features []geo.Feature) ContinentIndex {
	seen := make(map[geo.Continent]struct{})
	for _, f := range features {
		if f.Properties.Continent != nil {
			seen[*f.Properties.Continent] = struct{}{}
		}
	}

	// one slice per key, never a shared one
	groups := make(map[geo.Continent][]string, len(seen))
	for c := range seen {
		groups[c] = make([]string, 0)
	}

	idx := ContinentIndex{groups: groups}
	for _, f := range features {
		p := f.Properties
		if p.Continent == nil || p.Name == nil {
			continue
		}
		idx.add(*p.Continent, *p.Name)
	}

	return idx
}

func (idx *ContinentIndex) add(c geo.Continent, country string) {
	if idx.groups == nil {
		idx.groups = make(map[geo.Continent][]string)
	}
	idx.groups[c] = append(idx.groups[c], country)
}

// Continents returns the distinct labels, sorted.
func (idx ContinentIndex) Continents() []geo.Continent {
	out := make([]geo.Continent, 0, len(idx.groups))
	for c := range idx.groups {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Countries returns a copy of the country names grouped under c.
func (idx ContinentIndex) Countries(c geo.Continent) []string {
	list, ok := idx.groups[c]
	if !ok {
		return nil
	}
	out := make([]string, len(list))
	copy(out, list)
	return out
}

// Len returns the number of distinct continents.
func (idx ContinentIndex) Len() int {
	return len(idx.groups)
}

// Map returns a copy of the index suitable for serialization.
func (idx ContinentIndex) Map() map[geo.Continent][]string {
	out := make(map[geo.Continent][]string, len(idx.groups))
	for c := range idx.groups {
		out[c] = idx.Countries(c)
	}
	return out
}
