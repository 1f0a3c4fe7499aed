package service

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"showcase/internal/cache"
	"showcase/internal/errors"
	"showcase/internal/model"
	"showcase/internal/repository"
)

const projectCacheTTL = 5 * time.Minute

// ProjectInput carries the caller-provided fields for a new project.
// Votes, featured flag, status and timestamps are always server-assigned.
type ProjectInput struct {
	Title            string
	Description      string
	ShortDescription string
	Thumbnail        string
	DemoVideoURL     string
	GithubURL        string
	LiveURL          string
	DocumentationURL string
	TeamMembers      []model.TeamMember
	Tags             []string
	Technologies     []string
	Category         model.Category
}

// UserStats summarizes one owner's projects for the dashboard.
type UserStats struct {
	TotalProjects    int             `json:"total_projects"`
	TotalVotes       int64           `json:"total_votes"`
	FeaturedProjects int             `json:"featured_projects"`
	AverageVotes     decimal.Decimal `json:"average_votes"`
}

// PlatformStats summarizes the whole collection for the admin console.
type PlatformStats struct {
	TotalProjects     int   `json:"total_projects"`
	TotalVotes        int64 `json:"total_votes"`
	FeaturedProjects  int   `json:"featured_projects"`
	ActiveProjects    int   `json:"active_projects"`
	ProjectsThisMonth int   `json:"projects_this_month"`
}

// ProjectService handles project reads, owner dashboards and admin mutations.
type ProjectService interface {
	GetProject(ctx context.Context, id uuid.UUID) (*model.Project, error)
	ListPublic(ctx context.Context, category string) ([]model.Project, error)
	ListAllProjects(ctx context.Context) ([]model.Project, error)
	ListByOwner(ctx context.Context, userID uuid.UUID) ([]model.Project, error)
	CreateProject(ctx context.Context, input ProjectInput, createdBy uuid.UUID) (*model.Project, error)
	DeleteProject(ctx context.Context, id uuid.UUID) error
	ToggleFeatured(ctx context.Context, id uuid.UUID) (*model.Project, error)
	SetStatus(ctx context.Context, id uuid.UUID, status model.ProjectStatus) (*model.Project, error)
	UserStats(ctx context.Context, userID uuid.UUID) (*UserStats, error)
	PlatformStats(ctx context.Context) (*PlatformStats, error)
	ImportProjects(ctx context.Context, inputs []ProjectInput, createdBy uuid.UUID) (int, error)
}

type projectService struct {
	repo  repository.ProjectRepository
	cache *cache.Client
}

// NewProjectService creates a new project service.
func NewProjectService(repo repository.ProjectRepository, cache *cache.Client) ProjectService {
	return &projectService{
		repo:  repo,
		cache: cache,
	}
}

func (s *projectService) cacheKey(id uuid.UUID) string {
	return fmt.Sprintf("project:%s", id.String())
}

func (s *projectService) invalidate(ctx context.Context, id uuid.UUID) {
	_ = s.cache.Delete(ctx, s.cacheKey(id))
	_ = s.cache.Delete(ctx, leaderboardCacheKey)
}

// GetProject retrieves a project by ID with caching.
func (s *projectService) GetProject(ctx context.Context, id uuid.UUID) (*model.Project, error) {
	if data, _ := s.cache.Get(ctx, s.cacheKey(id)); data != nil {
		var cached model.Project
		if err := json.Unmarshal(data, &cached); err == nil {
			return &cached, nil
		}
	}

	project, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.ErrProjectNotFound
		}
		return nil, err
	}

	if payload, err := json.Marshal(project); err == nil {
		_ = s.cache.Set(ctx, s.cacheKey(id), payload, projectCacheTTL)
	}

	return project, nil
}

// ListPublic lists active projects newest first, optionally narrowed to one
// category. "All" (or empty) means no filter.
func (s *projectService) ListPublic(ctx context.Context, category string) ([]model.Project, error) {
	if category == "" || category == CategoryAll {
		return s.repo.ListActive(ctx)
	}
	if !model.ValidCategory(model.Category(category)) {
		return nil, errors.ErrInvalidCategory
	}
	return s.repo.ListActiveByCategory(ctx, model.Category(category))
}

// ListAllProjects lists every project including drafts and archived ones.
func (s *projectService) ListAllProjects(ctx context.Context) ([]model.Project, error) {
	return s.repo.ListAll(ctx)
}

// ListByOwner lists a user's projects newest first.
func (s *projectService) ListByOwner(ctx context.Context, userID uuid.UUID) ([]model.Project, error) {
	return s.repo.ListByOwner(ctx, userID)
}

// CreateProject stores a new project with server-assigned defaults.
func (s *projectService) CreateProject(ctx context.Context, input ProjectInput, createdBy uuid.UUID) (*model.Project, error) {
	if createdBy == uuid.Nil {
		return nil, errors.ErrNotAuthenticated
	}
	if input.Category != "" && !model.ValidCategory(input.Category) {
		return nil, errors.ErrInvalidCategory
	}

	project := &model.Project{
		Title:            input.Title,
		Description:      input.Description,
		ShortDescription: input.ShortDescription,
		Thumbnail:        input.Thumbnail,
		DemoVideoURL:     input.DemoVideoURL,
		GithubURL:        input.GithubURL,
		LiveURL:          input.LiveURL,
		DocumentationURL: input.DocumentationURL,
		TeamMembers:      input.TeamMembers,
		Tags:             input.Tags,
		Technologies:     input.Technologies,
		Votes:            0,
		Featured:         false,
		Status:           model.ProjectStatusActive,
		Category:         input.Category,
		CreatedBy:        createdBy,
	}
	if project.Category == "" {
		project.Category = model.CategoryOther
	}

	if err := s.repo.Create(ctx, project); err != nil {
		return nil, fmt.Errorf("create project: %w", err)
	}

	repository.NormalizeProject(project)
	s.invalidate(ctx, project.ID)
	return project, nil
}

// DeleteProject permanently removes a project from the store.
func (s *projectService) DeleteProject(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return errors.ErrProjectNotFound
		}
		return err
	}
	s.invalidate(ctx, id)
	return nil
}

// ToggleFeatured flips the featured flag.
func (s *projectService) ToggleFeatured(ctx context.Context, id uuid.UUID) (*model.Project, error) {
	project, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.ErrProjectNotFound
		}
		return nil, err
	}

	project.Featured = !project.Featured
	if err := s.repo.Update(ctx, project); err != nil {
		return nil, fmt.Errorf("update project: %w", err)
	}

	s.invalidate(ctx, id)
	return project, nil
}

// SetStatus moves a project between active, archived and draft.
func (s *projectService) SetStatus(ctx context.Context, id uuid.UUID, status model.ProjectStatus) (*model.Project, error) {
	switch status {
	case model.ProjectStatusActive, model.ProjectStatusArchived, model.ProjectStatusDraft:
	default:
		return nil, fmt.Errorf("unknown status %q", status)
	}

	project, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.ErrProjectNotFound
		}
		return nil, err
	}

	project.Status = status
	if err := s.repo.Update(ctx, project); err != nil {
		return nil, fmt.Errorf("update project: %w", err)
	}

	s.invalidate(ctx, id)
	return project, nil
}

// UserStats aggregates an owner's projects for the dashboard.
func (s *projectService) UserStats(ctx context.Context, userID uuid.UUID) (*UserStats, error) {
	projects, err := s.repo.ListByOwner(ctx, userID)
	if err != nil {
		return nil, err
	}

	stats := &UserStats{
		TotalProjects: len(projects),
		AverageVotes:  decimal.Zero,
	}
	for _, p := range projects {
		stats.TotalVotes += p.Votes
		if p.Featured {
			stats.FeaturedProjects++
		}
	}
	if stats.TotalProjects > 0 {
		stats.AverageVotes = decimal.NewFromInt(stats.TotalVotes).
			Div(decimal.NewFromInt(int64(stats.TotalProjects))).
			Round(1)
	}
	return stats, nil
}

// PlatformStats aggregates the whole collection for the admin console.
func (s *projectService) PlatformStats(ctx context.Context) (*PlatformStats, error) {
	projects, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	stats := &PlatformStats{TotalProjects: len(projects)}
	for _, p := range projects {
		stats.TotalVotes += p.Votes
		if p.Featured {
			stats.FeaturedProjects++
		}
		if p.Status == model.ProjectStatusActive {
			stats.ActiveProjects++
		}
		if p.CreatedAt.After(monthStart) {
			stats.ProjectsThisMonth++
		}
	}
	return stats, nil
}

// ImportProjects bulk-creates projects, skipping invalid entries.
func (s *projectService) ImportProjects(ctx context.Context, inputs []ProjectInput, createdBy uuid.UUID) (int, error) {
	count := 0
	for _, input := range inputs {
		if input.Title == "" || input.Description == "" {
			continue
		}
		if _, err := s.CreateProject(ctx, input, createdBy); err != nil {
			return count, fmt.Errorf("import project %q: %w", input.Title, err)
		}
		count++
	}
	return count, nil
}
