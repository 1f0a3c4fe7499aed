package repository

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"

	"showcase/internal/model"
)

func TestNormalizeProject_ShortDescription(t *testing.T) {
	t.Run("long description is truncated to 150 runes plus ellipsis", func(t *testing.T) {
		p := &model.Project{Description: strings.Repeat("a", 200)}
		NormalizeProject(p)

		assert.Equal(t, strings.Repeat("a", 150)+"...", p.ShortDescription)
	})

	t.Run("short description always carries the ellipsis suffix", func(t *testing.T) {
		p := &model.Project{Description: "brief"}
		NormalizeProject(p)

		assert.Equal(t, "brief...", p.ShortDescription)
	})

	t.Run("truncation counts runes not bytes", func(t *testing.T) {
		p := &model.Project{Description: strings.Repeat("é", 200)}
		NormalizeProject(p)

		trimmed := strings.TrimSuffix(p.ShortDescription, "...")
		assert.Equal(t, 150, utf8.RuneCountInString(trimmed))
		assert.True(t, utf8.ValidString(p.ShortDescription))
	})

	t.Run("stored short description wins", func(t *testing.T) {
		p := &model.Project{
			Description:      strings.Repeat("a", 200),
			ShortDescription: "hand-written summary",
		}
		NormalizeProject(p)

		assert.Equal(t, "hand-written summary", p.ShortDescription)
	})

	t.Run("empty description stays empty", func(t *testing.T) {
		p := &model.Project{}
		NormalizeProject(p)

		assert.Empty(t, p.ShortDescription)
	})
}

func TestNormalizeProject_Defaults(t *testing.T) {
	p := &model.Project{Description: "something"}
	NormalizeProject(p)

	assert.Equal(t, "/placeholder-project.jpg", p.Thumbnail)
	assert.NotNil(t, p.TeamMembers)
	assert.Empty(t, p.TeamMembers)
	assert.NotNil(t, p.Tags)
	assert.NotNil(t, p.Technologies)
	assert.Equal(t, model.ProjectStatusActive, p.Status)
	assert.Equal(t, model.CategoryOther, p.Category)
}

func TestNormalizeProject_KeepsStoredValues(t *testing.T) {
	p := &model.Project{
		Description:  "something",
		Thumbnail:    "/uploads/real.png",
		Tags:         []string{"vision"},
		Technologies: []string{"Go"},
		TeamMembers:  []model.TeamMember{{Name: "Asha Nair"}},
		Status:       model.ProjectStatusArchived,
		Category:     model.CategoryAIML,
	}
	NormalizeProject(p)

	assert.Equal(t, "/uploads/real.png", p.Thumbnail)
	assert.Equal(t, []string{"vision"}, p.Tags)
	assert.Equal(t, []string{"Go"}, p.Technologies)
	assert.Len(t, p.TeamMembers, 1)
	assert.Equal(t, model.ProjectStatusArchived, p.Status)
	assert.Equal(t, model.CategoryAIML, p.Category)
}

func TestNormalizeAll(t *testing.T) {
	projects := []model.Project{
		{Description: "first"},
		{Description: "second", Thumbnail: "/uploads/own.png"},
	}
	normalizeAll(projects)

	assert.Equal(t, "/placeholder-project.jpg", projects[0].Thumbnail)
	assert.Equal(t, "/uploads/own.png", projects[1].Thumbnail)
	assert.Equal(t, "first...", projects[0].ShortDescription)
	assert.Equal(t, "second...", projects[1].ShortDescription)
}
