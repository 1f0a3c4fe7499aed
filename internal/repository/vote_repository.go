package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"showcase/internal/model"
)

// VoteRepository defines vote-ledger persistence operations. The ledger insert
// and the counter increment live here together so a single transaction can
// cover both.
type VoteRepository interface {
	Create(ctx context.Context, vote *model.Vote) error
	Exists(ctx context.Context, userID, projectID uuid.UUID) (bool, error)
	FindProjectForUpdate(ctx context.Context, projectID uuid.UUID) (*model.Project, error)
	IncrementProjectVotes(ctx context.Context, projectID uuid.UUID) error
	// WithTransaction executes fn against a repository bound to one database
	// transaction; fn returning an error rolls everything back.
	WithTransaction(ctx context.Context, fn func(ctx context.Context, repo VoteRepository) error) error
}

type voteRepository struct {
	db      *gorm.DB
	timeout time.Duration
}

// NewVoteRepository creates a new vote repository.
func NewVoteRepository(db *gorm.DB, timeout time.Duration) VoteRepository {
	return &voteRepository{db: db, timeout: timeout}
}

// Create inserts a ledger entry.
func (r *voteRepository) Create(ctx context.Context, vote *model.Vote) error {
	ctx, cancel := storeCtx(ctx, r.timeout)
	defer cancel()
	return translateErr(r.db.WithContext(ctx).Create(vote).Error)
}

// Exists reports whether the (user, project) pair already voted.
func (r *voteRepository) Exists(ctx context.Context, userID, projectID uuid.UUID) (bool, error) {
	ctx, cancel := storeCtx(ctx, r.timeout)
	defer cancel()
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Vote{}).
		Where("user_id = ? AND project_id = ?", userID, projectID).
		Count(&count).Error
	if err != nil {
		return false, translateErr(err)
	}
	return count > 0, nil
}

// FindProjectForUpdate fetches a project with a row-level lock for update.
func (r *voteRepository) FindProjectForUpdate(ctx context.Context, projectID uuid.UUID) (*model.Project, error) {
	ctx, cancel := storeCtx(ctx, r.timeout)
	defer cancel()
	var project model.Project
	if err := r.db.WithContext(ctx).Set("gorm:query_option", "FOR UPDATE").
		Where("id = ?", projectID).First(&project).Error; err != nil {
		return nil, translateErr(err)
	}
	return &project, nil
}

// IncrementProjectVotes bumps the stored counter atomically. This is an
// in-place expression, not read-modify-write, so concurrent votes on the
// same project cannot lose updates.
func (r *voteRepository) IncrementProjectVotes(ctx context.Context, projectID uuid.UUID) error {
	ctx, cancel := storeCtx(ctx, r.timeout)
	defer cancel()
	return translateErr(r.db.WithContext(ctx).Model(&model.Project{}).
		Where("id = ?", projectID).
		Update("votes", gorm.Expr("votes + ?", 1)).Error)
}

// WithTransaction executes a function within a database transaction.
func (r *voteRepository) WithTransaction(ctx context.Context, fn func(ctx context.Context, repo VoteRepository) error) error {
	ctx, cancel := storeCtx(ctx, r.timeout)
	defer cancel()
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		txRepo := &voteRepository{db: tx}
		return fn(ctx, txRepo)
	})
	return translateErr(err)
}
