package service

import (
	"testing"

	"learnify_backend/internal/model"

	"github.com/stretchr/testify/assert"
)

func TestComputeMatchesWeighting(t *testing.T) {
	categories := []model.CategoryAccuracy{
		{Category: "logic", Attempts: 3, Accuracy: 80},
		{Category: "data", Attempts: 2, Accuracy: 60},
		{Category: "fundamentals", Attempts: 4, Accuracy: 70},
	}

	matches := computeMatches(categories)
	assert.Len(t, matches, 4)

	// 0.4*80 + 0.3*60 + 0.3*70 = 71
	assert.Equal(t, "Backend Developer", matches[0].Role)
	assert.Equal(t, 71, matches[0].Match)
	assert.Equal(t, []string{"fundamentals", "logic"}, matches[0].Strengths)

	// 0.5*60 + 0.3*80 + 0.2*70 = 68
	assert.Equal(t, "Data Analyst", matches[1].Role)
	assert.Equal(t, 68, matches[1].Match)

	// web 类别没有数据，只计 0.4*70 + 0.4*80 = 60
	assert.Equal(t, "QA Engineer", matches[2].Role)
	assert.Equal(t, 60, matches[2].Match)

	// 0.3*70 + 0.2*80 = 37
	assert.Equal(t, "Frontend Developer", matches[3].Role)
	assert.Equal(t, 37, matches[3].Match)
}

func TestComputeMatchesSortedDescending(t *testing.T) {
	categories := []model.CategoryAccuracy{
		{Category: "web", Attempts: 1, Accuracy: 90},
	}

	matches := computeMatches(categories)
	for i := 1; i < len(matches); i++ {
		assert.GreaterOrEqual(t, matches[i-1].Match, matches[i].Match)
	}
	assert.Equal(t, "Frontend Developer", matches[0].Role)
	assert.Equal(t, []string{"web"}, matches[0].Strengths)
}

func TestComputeMatchesNoStrengthsBelowThreshold(t *testing.T) {
	categories := []model.CategoryAccuracy{
		{Category: "logic", Attempts: 1, Accuracy: 50},
		{Category: "data", Attempts: 1, Accuracy: 40},
	}

	for _, m := range computeMatches(categories) {
		assert.Empty(t, m.Strengths, "accuracy below 70 must not count as a strength for %s", m.Role)
	}
}
