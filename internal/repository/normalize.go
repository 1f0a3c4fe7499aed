package repository

import "showcase/internal/model"

const (
	// shortDescriptionLimit is counted in runes. The stored value may be
	// non-ASCII; truncating on bytes could split a character in half.
	shortDescriptionLimit = 150
	placeholderThumbnail  = "/placeholder-project.jpg"
)

// NormalizeProject fills defaults for optional stored fields at read time.
// Every repository read funnels through here so no call site can drift.
func NormalizeProject(p *model.Project) {
	if p.ShortDescription == "" && p.Description != "" {
		runes := []rune(p.Description)
		if len(runes) > shortDescriptionLimit {
			runes = runes[:shortDescriptionLimit]
		}
		p.ShortDescription = string(runes) + "..."
	}
	if p.Thumbnail == "" {
		p.Thumbnail = placeholderThumbnail
	}
	if p.TeamMembers == nil {
		p.TeamMembers = []model.TeamMember{}
	}
	if p.Tags == nil {
		p.Tags = []string{}
	}
	if p.Technologies == nil {
		p.Technologies = []string{}
	}
	if p.Status == "" {
		p.Status = model.ProjectStatusActive
	}
	if p.Category == "" {
		p.Category = model.CategoryOther
	}
}

func normalizeAll(projects []model.Project) {
	for i := range projects {
		NormalizeProject(&projects[i])
	}
}
