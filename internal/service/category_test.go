package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"showcase/internal/model"
)

func categorized(category model.Category) model.Project {
	return model.Project{Category: category, Status: model.ProjectStatusActive}
}

func TestCategories(t *testing.T) {
	tests := []struct {
		name     string
		projects []model.Project
		expected []string
	}{
		{
			name:     "empty collection still yields All",
			projects: nil,
			expected: []string{"All"},
		},
		{
			name: "distinct categories in first-seen order",
			projects: []model.Project{
				categorized(model.CategoryWeb),
				categorized(model.CategoryAIML),
				categorized(model.CategoryWeb),
				categorized(model.CategoryMobile),
				categorized(model.CategoryAIML),
			},
			expected: []string{"All", "web", "ai-ml", "mobile"},
		},
		{
			name: "single category",
			projects: []model.Project{
				categorized(model.CategoryIoT),
				categorized(model.CategoryIoT),
			},
			expected: []string{"All", "iot"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Categories(tt.projects))
		})
	}
}

func TestCountFor(t *testing.T) {
	projects := []model.Project{
		categorized(model.CategoryWeb),
		categorized(model.CategoryWeb),
		categorized(model.CategoryAIML),
		categorized(model.CategoryMobile),
	}

	assert.Equal(t, 4, CountFor(CategoryAll, projects))
	assert.Equal(t, 2, CountFor("web", projects))
	assert.Equal(t, 1, CountFor("ai-ml", projects))
	assert.Equal(t, 0, CountFor("robotics", projects))
	assert.Equal(t, 0, CountFor("nonsense", projects))
	assert.Equal(t, 0, CountFor("web", nil))
}
