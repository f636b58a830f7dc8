package store

import (
	"sort"
	"strings"

	"github.com/vikass-pal/campusconnect/internal/app/models"
)

// SortOrder enumerates the supported list orderings.
type SortOrder string

const (
	SortNewest  SortOrder = "newest"
	SortOldest  SortOrder = "oldest"
	SortPopular SortOrder = "popular"
)

// FilterSpec describes a query over a collection snapshot. All fields are
// optional; absent fields do not constrain the result.
type FilterSpec struct {
	// Query is matched case-insensitively as a substring against title and
	// description, plus tags for resources and category for events. An
	// entity is kept when ANY of those fields matches.
	Query string
	// Category keeps only events with this exact category.
	Category string
	// Type keeps only resources with this exact type.
	Type string
	// Tags keeps entities sharing at least one tag with this set.
	Tags []string
	// SortBy orders the result; ties keep their prior relative order.
	SortBy SortOrder
}

// FilterResources returns a filtered, sorted view of the given snapshot.
// Pure function: the input slice is not mutated and equal inputs produce
// equal output.
func FilterResources(snapshot []models.Resource, spec FilterSpec) []models.Resource {
	out := make([]models.Resource, 0, len(snapshot))
	for _, r := range snapshot {
		if spec.Query != "" && !resourceMatchesQuery(r, spec.Query) {
			continue
		}
		if spec.Type != "" && string(r.Type) != spec.Type {
			continue
		}
		if len(spec.Tags) > 0 && !sharesTag(r.Tags, spec.Tags) {
			continue
		}
		out = append(out, r)
	}

	switch spec.SortBy {
	case SortNewest:
		sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	case SortOldest:
		sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	case SortPopular:
		sort.SliceStable(out, func(i, j int) bool { return len(out[i].Likes) > len(out[j].Likes) })
	}

	return out
}

// FilterEvents returns a filtered, sorted view of the given snapshot.
func FilterEvents(snapshot []models.Event, spec FilterSpec) []models.Event {
	out := make([]models.Event, 0, len(snapshot))
	for _, e := range snapshot {
		if spec.Query != "" && !eventMatchesQuery(e, spec.Query) {
			continue
		}
		if spec.Category != "" && e.Category != spec.Category {
			continue
		}
		out = append(out, e)
	}

	switch spec.SortBy {
	case SortNewest:
		sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	case SortOldest:
		sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	case SortPopular:
		sort.SliceStable(out, func(i, j int) bool { return len(out[i].Attendees) > len(out[j].Attendees) })
	}

	return out
}

func resourceMatchesQuery(r models.Resource, query string) bool {
	q := strings.ToLower(query)
	if strings.Contains(strings.ToLower(r.Title), q) ||
		strings.Contains(strings.ToLower(r.Description), q) {
		return true
	}
	for _, tag := range r.Tags {
		if strings.Contains(strings.ToLower(tag), q) {
			return true
		}
	}
	return false
}

func eventMatchesQuery(e models.Event, query string) bool {
	q := strings.ToLower(query)
	return strings.Contains(strings.ToLower(e.Title), q) ||
		strings.Contains(strings.ToLower(e.Description), q) ||
		strings.Contains(strings.ToLower(e.Category), q)
}

// sharesTag reports whether have and want intersect. OR semantics within
// the filter tag set.
func sharesTag(have, want []string) bool {
	for _, w := range want {
		for _, h := range have {
			if strings.EqualFold(h, w) {
				return true
			}
		}
	}
	return false
}
