package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"showcase/internal/model"
)

func activeProject(title string, votes int64) model.Project {
	return model.Project{
		Title:  title,
		Votes:  votes,
		Status: model.ProjectStatusActive,
	}
}

func TestLeaderboardService_TopProjects_OrderedPath(t *testing.T) {
	// Store-side ordering of votes [10, 30, 20, 5] limited to 3.
	mockRepo := new(MockProjectRepository)
	mockRepo.On("ListTopByVotes", mock.Anything, 3).Return([]model.Project{
		activeProject("first", 30),
		activeProject("second", 20),
		activeProject("third", 10),
	}, nil)

	service := NewLeaderboardService(mockRepo, nil)
	ranked, err := service.TopProjects(context.Background(), 3)

	assert.NoError(t, err)
	assert.Len(t, ranked, 3)
	for i, votes := range []int64{30, 20, 10} {
		assert.Equal(t, i, ranked[i].Rank)
		assert.Equal(t, votes, ranked[i].Project.Votes)
	}
	assert.Equal(t, "gold", ranked[0].Tier)
	assert.Equal(t, "silver", ranked[1].Tier)
	assert.Equal(t, "bronze", ranked[2].Tier)
	mockRepo.AssertExpectations(t)
	mockRepo.AssertNotCalled(t, "ListActiveLimited", mock.Anything, mock.Anything)
}

func TestLeaderboardService_TopProjects_FallbackSortsCandidates(t *testing.T) {
	// The degraded path must sort whatever the unordered fetch returned,
	// independent of input order.
	mockRepo := new(MockProjectRepository)
	mockRepo.On("ListTopByVotes", mock.Anything, 2).Return(nil, assert.AnError)
	mockRepo.On("ListActiveLimited", mock.Anything, 2).Return([]model.Project{
		activeProject("a", 7),
		activeProject("b", 2),
		activeProject("c", 9),
		activeProject("d", 1),
	}, nil)

	service := NewLeaderboardService(mockRepo, nil)
	ranked, err := service.TopProjects(context.Background(), 2)

	assert.NoError(t, err)
	assert.Len(t, ranked, 2)
	assert.Equal(t, int64(9), ranked[0].Project.Votes)
	assert.Equal(t, int64(7), ranked[1].Project.Votes)
	assert.Equal(t, 0, ranked[0].Rank)
	assert.Equal(t, 1, ranked[1].Rank)
	mockRepo.AssertExpectations(t)
}

func TestLeaderboardService_TopProjects_FewerThanN(t *testing.T) {
	mockRepo := new(MockProjectRepository)
	mockRepo.On("ListTopByVotes", mock.Anything, 5).Return([]model.Project{
		activeProject("only-one", 4),
		activeProject("only-two", 1),
	}, nil)

	service := NewLeaderboardService(mockRepo, nil)
	ranked, err := service.TopProjects(context.Background(), 5)

	assert.NoError(t, err)
	assert.Len(t, ranked, 2)
	assert.Equal(t, 0, ranked[0].Rank)
	assert.Equal(t, 1, ranked[1].Rank)
	mockRepo.AssertExpectations(t)
}

func TestLeaderboardService_TopProjects_FallbackFetchFails(t *testing.T) {
	mockRepo := new(MockProjectRepository)
	mockRepo.On("ListTopByVotes", mock.Anything, 3).Return(nil, assert.AnError)
	mockRepo.On("ListActiveLimited", mock.Anything, 3).Return(nil, assert.AnError)

	service := NewLeaderboardService(mockRepo, nil)
	ranked, err := service.TopProjects(context.Background(), 3)

	assert.Error(t, err)
	assert.Nil(t, ranked)
	mockRepo.AssertExpectations(t)
}

func TestRankTier(t *testing.T) {
	assert.Equal(t, "gold", RankTier(0))
	assert.Equal(t, "silver", RankTier(1))
	assert.Equal(t, "bronze", RankTier(2))
	assert.Equal(t, "", RankTier(3))
	assert.Equal(t, "", RankTier(42))
}

func TestRankLabel(t *testing.T) {
	tests := []struct {
		rank  int
		label string
	}{
		{0, "1st"},
		{1, "2nd"},
		{2, "3rd"},
		{3, "4th"},
		{10, "11th"},
		{11, "12th"},
		{12, "13th"},
		{20, "21st"},
		{21, "22nd"},
		{22, "23rd"},
		{23, "24th"},
		{110, "111th"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.label, RankLabel(tt.rank))
	}
}
