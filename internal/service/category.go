package service

import "showcase/internal/model"

// CategoryAll is the universal pseudo-category shown first in filter UIs.
const CategoryAll = "All"

// Categories derives the filter list for a project collection: "All" first,
// then each distinct category actually present, in first-seen order. Pure
// function of its input, no I/O.
func Categories(projects []model.Project) []string {
	out := []string{CategoryAll}
	seen := make(map[model.Category]struct{}, len(model.Categories))
	for _, p := range projects {
		if _, ok := seen[p.Category]; ok {
			continue
		}
		seen[p.Category] = struct{}{}
		out = append(out, string(p.Category))
	}
	return out
}

// CountFor counts projects matching a category exactly; the "All"
// pseudo-category counts everything.
func CountFor(category string, projects []model.Project) int {
	if category == CategoryAll {
		return len(projects)
	}
	count := 0
	for _, p := range projects {
		if string(p.Category) == category {
			count++
		}
	}
	return count
}
