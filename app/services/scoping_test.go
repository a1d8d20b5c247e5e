package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/musicorai90/lca/app/models"
)

func enrollment(id string) *models.Enrollment {
	return &models.Enrollment{ID: id, SubjectID: "sj", StudentID: "st"}
}

func TestDedupeEnrollmentsMergesAcrossSubjects(t *testing.T) {
	math := []*models.Enrollment{enrollment("e1"), enrollment("e2")}
	physics := []*models.Enrollment{enrollment("e2"), enrollment("e3")}

	out := DedupeEnrollments(math, physics)

	ids := make([]string, len(out))
	for i, e := range out {
		ids[i] = e.ID
	}
	assert.Equal(t, []string{"e1", "e2", "e3"}, ids)
}

func TestDedupeEnrollmentsPreservesOrder(t *testing.T) {
	out := DedupeEnrollments(
		[]*models.Enrollment{enrollment("b"), enrollment("a")},
		[]*models.Enrollment{enrollment("a"), enrollment("c"), enrollment("b")},
	)

	ids := make([]string, len(out))
	for i, e := range out {
		ids[i] = e.ID
	}
	assert.Equal(t, []string{"b", "a", "c"}, ids)
}

func TestDedupeEnrollmentsEmpty(t *testing.T) {
	assert.Empty(t, DedupeEnrollments())
	assert.Empty(t, DedupeEnrollments(nil, nil))
}
