package repository

import (
	"context"

	"personal-site/internal/domain"
)

// CommentRepository defines persistence operations for Comment entities.
// Comments are append-only: no update or delete exists.
type CommentRepository interface {
	Init(ctx context.Context) error
	Create(ctx context.Context, comment *domain.Comment) (int64, error)
	ListNewestFirst(ctx context.Context) ([]domain.Comment, error)
}
