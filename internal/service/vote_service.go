package service

import (
	"context"
	stderrors "errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"showcase/internal/cache"
	"showcase/internal/errors"
	"showcase/internal/model"
	"showcase/internal/repository"
)

// VoteService applies a single user's vote to a project, enforcing at most
// one vote per (user, project) pair through the durable vote ledger.
type VoteService interface {
	Vote(ctx context.Context, projectID, userID uuid.UUID) (newCount int64, err error)
	HasVoted(ctx context.Context, userID, projectID uuid.UUID) (bool, error)
}

type voteService struct {
	voteRepo repository.VoteRepository
	cache    *cache.Client
}

// NewVoteService creates a new vote service.
func NewVoteService(voteRepo repository.VoteRepository, cache *cache.Client) VoteService {
	return &voteService{
		voteRepo: voteRepo,
		cache:    cache,
	}
}

// Vote records one vote and returns the project's new count. The ledger
// insert and the counter increment commit as a single transaction; a failure
// anywhere rolls both back, so the count can never drift from the ledger.
func (s *voteService) Vote(ctx context.Context, projectID, userID uuid.UUID) (int64, error) {
	if userID == uuid.Nil {
		return 0, errors.ErrNotAuthenticated
	}

	var newCount int64
	err := s.voteRepo.WithTransaction(ctx, func(ctx context.Context, txRepo repository.VoteRepository) error {
		// Lock the project row so concurrent votes serialize on the counter.
		project, err := txRepo.FindProjectForUpdate(ctx, projectID)
		if err != nil {
			if stderrors.Is(err, gorm.ErrRecordNotFound) {
				return errors.ErrProjectNotFound
			}
			return err
		}

		voted, err := txRepo.Exists(ctx, userID, projectID)
		if err != nil {
			return err
		}
		if voted {
			return errors.ErrAlreadyVoted
		}

		vote := &model.Vote{
			ProjectID: projectID,
			UserID:    userID,
		}
		if err := txRepo.Create(ctx, vote); err != nil {
			return err
		}

		if err := txRepo.IncrementProjectVotes(ctx, projectID); err != nil {
			return err
		}

		newCount = project.Votes + 1
		return nil
	})
	if err != nil {
		return 0, err
	}

	// Invalidate cached reads that embed the stale count.
	_ = s.cache.Delete(ctx, fmt.Sprintf("project:%s", projectID.String()))
	_ = s.cache.Delete(ctx, leaderboardCacheKey)

	return newCount, nil
}

// HasVoted reports whether the user already voted for the project.
func (s *voteService) HasVoted(ctx context.Context, userID, projectID uuid.UUID) (bool, error) {
	if userID == uuid.Nil {
		return false, errors.ErrNotAuthenticated
	}
	return s.voteRepo.Exists(ctx, userID, projectID)
}
