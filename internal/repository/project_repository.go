package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"showcase/internal/model"
)

// ProjectRepository defines project persistence operations. Every read
// returns normalized projects (see NormalizeProject).
type ProjectRepository interface {
	Create(ctx context.Context, project *model.Project) error
	Update(ctx context.Context, project *model.Project) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Project, error)
	ListAll(ctx context.Context) ([]model.Project, error)
	ListActive(ctx context.Context) ([]model.Project, error)
	ListActiveByCategory(ctx context.Context, category model.Category) ([]model.Project, error)
	ListByOwner(ctx context.Context, userID uuid.UUID) ([]model.Project, error)
	ListTopByVotes(ctx context.Context, n int) ([]model.Project, error)
	ListActiveLimited(ctx context.Context, n int) ([]model.Project, error)
}

type projectRepository struct {
	db      *gorm.DB
	timeout time.Duration
}

// NewProjectRepository creates a new project repository.
func NewProjectRepository(db *gorm.DB, timeout time.Duration) ProjectRepository {
	return &projectRepository{db: db, timeout: timeout}
}

// Create creates a new project.
func (r *projectRepository) Create(ctx context.Context, project *model.Project) error {
	ctx, cancel := storeCtx(ctx, r.timeout)
	defer cancel()
	return translateErr(r.db.WithContext(ctx).Create(project).Error)
}

// Update updates an existing project.
func (r *projectRepository) Update(ctx context.Context, project *model.Project) error {
	ctx, cancel := storeCtx(ctx, r.timeout)
	defer cancel()
	return translateErr(r.db.WithContext(ctx).Save(project).Error)
}

// Delete permanently removes a project. There is no soft delete.
func (r *projectRepository) Delete(ctx context.Context, id uuid.UUID) error {
	ctx, cancel := storeCtx(ctx, r.timeout)
	defer cancel()
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Project{})
	if res.Error != nil {
		return translateErr(res.Error)
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// FindByID finds a project by ID.
func (r *projectRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Project, error) {
	ctx, cancel := storeCtx(ctx, r.timeout)
	defer cancel()
	var project model.Project
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&project).Error; err != nil {
		return nil, translateErr(err)
	}
	NormalizeProject(&project)
	return &project, nil
}

// ListAll lists every project regardless of status, newest first.
func (r *projectRepository) ListAll(ctx context.Context) ([]model.Project, error) {
	ctx, cancel := storeCtx(ctx, r.timeout)
	defer cancel()
	var projects []model.Project
	if err := r.db.WithContext(ctx).Order("created_at DESC").Find(&projects).Error; err != nil {
		return nil, translateErr(err)
	}
	normalizeAll(projects)
	return projects, nil
}

// ListActive lists active projects, newest first.
func (r *projectRepository) ListActive(ctx context.Context) ([]model.Project, error) {
	ctx, cancel := storeCtx(ctx, r.timeout)
	defer cancel()
	var projects []model.Project
	if err := r.db.WithContext(ctx).
		Where("status = ?", model.ProjectStatusActive).
		Order("created_at DESC").
		Find(&projects).Error; err != nil {
		return nil, translateErr(err)
	}
	normalizeAll(projects)
	return projects, nil
}

// ListActiveByCategory lists active projects in one category, newest first.
func (r *projectRepository) ListActiveByCategory(ctx context.Context, category model.Category) ([]model.Project, error) {
	ctx, cancel := storeCtx(ctx, r.timeout)
	defer cancel()
	var projects []model.Project
	if err := r.db.WithContext(ctx).
		Where("status = ? AND category = ?", model.ProjectStatusActive, category).
		Order("created_at DESC").
		Find(&projects).Error; err != nil {
		return nil, translateErr(err)
	}
	normalizeAll(projects)
	return projects, nil
}

// ListByOwner lists a user's projects, newest first.
func (r *projectRepository) ListByOwner(ctx context.Context, userID uuid.UUID) ([]model.Project, error) {
	ctx, cancel := storeCtx(ctx, r.timeout)
	defer cancel()
	var projects []model.Project
	if err := r.db.WithContext(ctx).
		Where("created_by = ?", userID).
		Order("created_at DESC").
		Find(&projects).Error; err != nil {
		return nil, translateErr(err)
	}
	normalizeAll(projects)
	return projects, nil
}

// ListTopByVotes lists the top n active projects ordered by votes descending.
func (r *projectRepository) ListTopByVotes(ctx context.Context, n int) ([]model.Project, error) {
	ctx, cancel := storeCtx(ctx, r.timeout)
	defer cancel()
	var projects []model.Project
	if err := r.db.WithContext(ctx).
		Where("status = ?", model.ProjectStatusActive).
		Order("votes DESC").
		Limit(n).
		Find(&projects).Error; err != nil {
		return nil, translateErr(err)
	}
	normalizeAll(projects)
	return projects, nil
}

// ListActiveLimited fetches up to n active projects in no particular order.
// It backs the leaderboard's degraded path when the ordered query fails.
func (r *projectRepository) ListActiveLimited(ctx context.Context, n int) ([]model.Project, error) {
	ctx, cancel := storeCtx(ctx, r.timeout)
	defer cancel()
	var projects []model.Project
	if err := r.db.WithContext(ctx).
		Where("status = ?", model.ProjectStatusActive).
		Limit(n).
		Find(&projects).Error; err != nil {
		return nil, translateErr(err)
	}
	normalizeAll(projects)
	return projects, nil
}
