package repository

import (
	"context"
	stderrors "errors"
	"time"

	"showcase/internal/errors"
)

// storeCtx bounds a store call with the configured timeout. A zero timeout
// leaves the caller's context untouched.
func storeCtx(ctx context.Context, d time.Duration) (context.Context, context.CancelFunc) {
	if d <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, d)
}

// translateErr surfaces deadline expiry as the distinct timeout failure kind.
// Every other error passes through untouched so callers can still match
// gorm.ErrRecordNotFound and friends.
func translateErr(err error) error {
	if err == nil {
		return nil
	}
	if stderrors.Is(err, context.DeadlineExceeded) {
		return errors.ErrStoreTimeout
	}
	return err
}
