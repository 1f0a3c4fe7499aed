package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"showcase/internal/errors"
	"showcase/internal/model"
)

func TestProjectService_GetProject(t *testing.T) {
	projectID := uuid.New()

	t.Run("found", func(t *testing.T) {
		mockRepo := new(MockProjectRepository)
		mockRepo.On("FindByID", mock.Anything, projectID).
			Return(&model.Project{ID: projectID, Title: "Smart Campus Navigator"}, nil)

		service := NewProjectService(mockRepo, nil)
		project, err := service.GetProject(context.Background(), projectID)

		assert.NoError(t, err)
		assert.Equal(t, projectID, project.ID)
		mockRepo.AssertExpectations(t)
	})

	t.Run("missing", func(t *testing.T) {
		mockRepo := new(MockProjectRepository)
		mockRepo.On("FindByID", mock.Anything, projectID).
			Return(nil, gorm.ErrRecordNotFound)

		service := NewProjectService(mockRepo, nil)
		project, err := service.GetProject(context.Background(), projectID)

		assert.ErrorIs(t, err, errors.ErrProjectNotFound)
		assert.Nil(t, project)
	})
}

func TestProjectService_ListPublic(t *testing.T) {
	actives := []model.Project{{Title: "a"}, {Title: "b"}}

	t.Run("no filter lists all actives", func(t *testing.T) {
		mockRepo := new(MockProjectRepository)
		mockRepo.On("ListActive", mock.Anything).Return(actives, nil)

		service := NewProjectService(mockRepo, nil)
		projects, err := service.ListPublic(context.Background(), "")

		assert.NoError(t, err)
		assert.Len(t, projects, 2)
		mockRepo.AssertExpectations(t)
	})

	t.Run("All pseudo-category means no filter", func(t *testing.T) {
		mockRepo := new(MockProjectRepository)
		mockRepo.On("ListActive", mock.Anything).Return(actives, nil)

		service := NewProjectService(mockRepo, nil)
		_, err := service.ListPublic(context.Background(), CategoryAll)

		assert.NoError(t, err)
		mockRepo.AssertNotCalled(t, "ListActiveByCategory", mock.Anything, mock.Anything)
	})

	t.Run("known category narrows the query", func(t *testing.T) {
		mockRepo := new(MockProjectRepository)
		mockRepo.On("ListActiveByCategory", mock.Anything, model.CategoryWeb).
			Return(actives[:1], nil)

		service := NewProjectService(mockRepo, nil)
		projects, err := service.ListPublic(context.Background(), "web")

		assert.NoError(t, err)
		assert.Len(t, projects, 1)
		mockRepo.AssertExpectations(t)
	})

	t.Run("unknown category is rejected without touching the store", func(t *testing.T) {
		mockRepo := new(MockProjectRepository)

		service := NewProjectService(mockRepo, nil)
		projects, err := service.ListPublic(context.Background(), "blockchain")

		assert.ErrorIs(t, err, errors.ErrInvalidCategory)
		assert.Nil(t, projects)
		mockRepo.AssertNotCalled(t, "ListActiveByCategory", mock.Anything, mock.Anything)
	})
}

func TestProjectService_CreateProject(t *testing.T) {
	creator := uuid.New()

	t.Run("server assigns defaults", func(t *testing.T) {
		mockRepo := new(MockProjectRepository)
		mockRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.Project")).Return(nil)

		service := NewProjectService(mockRepo, nil)
		project, err := service.CreateProject(context.Background(), ProjectInput{
			Title:       "Hostel Mess Feedback Board",
			Description: "A lightweight web board for menu ratings.",
		}, creator)

		assert.NoError(t, err)
		assert.Equal(t, int64(0), project.Votes)
		assert.False(t, project.Featured)
		assert.Equal(t, model.ProjectStatusActive, project.Status)
		assert.Equal(t, model.CategoryOther, project.Category)
		assert.Equal(t, creator, project.CreatedBy)
		mockRepo.AssertExpectations(t)
	})

	t.Run("unauthenticated creator", func(t *testing.T) {
		service := NewProjectService(new(MockProjectRepository), nil)
		_, err := service.CreateProject(context.Background(), ProjectInput{Title: "x"}, uuid.Nil)

		assert.ErrorIs(t, err, errors.ErrNotAuthenticated)
	})

	t.Run("unknown category", func(t *testing.T) {
		service := NewProjectService(new(MockProjectRepository), nil)
		_, err := service.CreateProject(context.Background(), ProjectInput{
			Title:    "x",
			Category: model.Category("quantum"),
		}, creator)

		assert.ErrorIs(t, err, errors.ErrInvalidCategory)
	})
}

func TestProjectService_DeleteProject(t *testing.T) {
	projectID := uuid.New()

	t.Run("missing project", func(t *testing.T) {
		mockRepo := new(MockProjectRepository)
		mockRepo.On("Delete", mock.Anything, projectID).Return(gorm.ErrRecordNotFound)

		service := NewProjectService(mockRepo, nil)
		err := service.DeleteProject(context.Background(), projectID)

		assert.ErrorIs(t, err, errors.ErrProjectNotFound)
	})

	t.Run("deleted", func(t *testing.T) {
		mockRepo := new(MockProjectRepository)
		mockRepo.On("Delete", mock.Anything, projectID).Return(nil)

		service := NewProjectService(mockRepo, nil)
		assert.NoError(t, service.DeleteProject(context.Background(), projectID))
		mockRepo.AssertExpectations(t)
	})
}

func TestProjectService_ToggleFeatured(t *testing.T) {
	projectID := uuid.New()

	mockRepo := new(MockProjectRepository)
	mockRepo.On("FindByID", mock.Anything, projectID).
		Return(&model.Project{ID: projectID, Featured: false}, nil)
	mockRepo.On("Update", mock.Anything, mock.MatchedBy(func(p *model.Project) bool {
		return p.Featured
	})).Return(nil)

	service := NewProjectService(mockRepo, nil)
	project, err := service.ToggleFeatured(context.Background(), projectID)

	assert.NoError(t, err)
	assert.True(t, project.Featured)
	mockRepo.AssertExpectations(t)
}

func TestProjectService_SetStatus(t *testing.T) {
	projectID := uuid.New()

	t.Run("archive", func(t *testing.T) {
		mockRepo := new(MockProjectRepository)
		mockRepo.On("FindByID", mock.Anything, projectID).
			Return(&model.Project{ID: projectID, Status: model.ProjectStatusActive}, nil)
		mockRepo.On("Update", mock.Anything, mock.MatchedBy(func(p *model.Project) bool {
			return p.Status == model.ProjectStatusArchived
		})).Return(nil)

		service := NewProjectService(mockRepo, nil)
		project, err := service.SetStatus(context.Background(), projectID, model.ProjectStatusArchived)

		assert.NoError(t, err)
		assert.Equal(t, model.ProjectStatusArchived, project.Status)
		mockRepo.AssertExpectations(t)
	})

	t.Run("unknown status is rejected without touching the store", func(t *testing.T) {
		mockRepo := new(MockProjectRepository)

		service := NewProjectService(mockRepo, nil)
		_, err := service.SetStatus(context.Background(), projectID, model.ProjectStatus("hidden"))

		assert.Error(t, err)
		mockRepo.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
	})
}

func TestProjectService_UserStats(t *testing.T) {
	userID := uuid.New()

	t.Run("averages round to one decimal", func(t *testing.T) {
		mockRepo := new(MockProjectRepository)
		mockRepo.On("ListByOwner", mock.Anything, userID).Return([]model.Project{
			{Votes: 10, Featured: true},
			{Votes: 5},
			{Votes: 1},
		}, nil)

		service := NewProjectService(mockRepo, nil)
		stats, err := service.UserStats(context.Background(), userID)

		assert.NoError(t, err)
		assert.Equal(t, 3, stats.TotalProjects)
		assert.Equal(t, int64(16), stats.TotalVotes)
		assert.Equal(t, 1, stats.FeaturedProjects)
		// 16 / 3 = 5.333..., rounded to 5.3
		assert.True(t, stats.AverageVotes.Equal(decimal.RequireFromString("5.3")))
	})

	t.Run("no projects means zero average, not a division error", func(t *testing.T) {
		mockRepo := new(MockProjectRepository)
		mockRepo.On("ListByOwner", mock.Anything, userID).Return([]model.Project{}, nil)

		service := NewProjectService(mockRepo, nil)
		stats, err := service.UserStats(context.Background(), userID)

		assert.NoError(t, err)
		assert.Equal(t, 0, stats.TotalProjects)
		assert.True(t, stats.AverageVotes.IsZero())
	})
}

func TestProjectService_PlatformStats(t *testing.T) {
	now := time.Now()
	lastMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()).Add(-time.Hour)

	mockRepo := new(MockProjectRepository)
	mockRepo.On("ListAll", mock.Anything).Return([]model.Project{
		{Votes: 3, Featured: true, Status: model.ProjectStatusActive, CreatedAt: now},
		{Votes: 2, Status: model.ProjectStatusArchived, CreatedAt: lastMonth},
		{Votes: 0, Status: model.ProjectStatusActive, CreatedAt: lastMonth},
	}, nil)

	service := NewProjectService(mockRepo, nil)
	stats, err := service.PlatformStats(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, 3, stats.TotalProjects)
	assert.Equal(t, int64(5), stats.TotalVotes)
	assert.Equal(t, 1, stats.FeaturedProjects)
	assert.Equal(t, 2, stats.ActiveProjects)
	assert.Equal(t, 1, stats.ProjectsThisMonth)
}

func TestProjectService_ImportProjects(t *testing.T) {
	creator := uuid.New()

	mockRepo := new(MockProjectRepository)
	mockRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.Project")).Return(nil)

	service := NewProjectService(mockRepo, nil)
	count, err := service.ImportProjects(context.Background(), []ProjectInput{
		{Title: "First", Description: "ok"},
		{Title: "", Description: "no title, skipped"},
		{Title: "Third", Description: "ok"},
		{Title: "no description, skipped"},
	}, creator)

	assert.NoError(t, err)
	assert.Equal(t, 2, count)
	mockRepo.AssertNumberOfCalls(t, "Create", 2)
}
