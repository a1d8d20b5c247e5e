package services

import "github.com/musicorai90/lca/app/models"

// DedupeEnrollments merges per-subject enrollment lists into one
// deduplicated set, preserving first-seen order. A student enrolled in
// several subjects taught by the same teacher appears once per
// enrollment row, never twice for the same row.
func DedupeEnrollments(lists ...[]*models.Enrollment) []*models.Enrollment {
	seen := make(map[string]bool)
	var out []*models.Enrollment
	for _, list := range lists {
		for _, e := range list {
			if seen[e.ID] {
				continue
			}
			seen[e.ID] = true
			out = append(out, e)
		}
	}
	return out
}
