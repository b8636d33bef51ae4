package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"personal-site/internal/domain"
	"personal-site/internal/repository"
)

// ErrNotAuthenticated indicates an append attempt without an established identity.
var ErrNotAuthenticated = errors.New("not authenticated")

// CommentService describes the public comment board.
type CommentService interface {
	List(ctx context.Context) ([]domain.Comment, error)
	Append(ctx context.Context, content string, commenter domain.Identity) (*domain.Comment, error)
}

type commentService struct {
	comments repository.CommentRepository
	location *time.Location
}

// NewCommentService builds a board that stamps every comment in loc.
// The timestamp is taken fresh at each append.
func NewCommentService(comments repository.CommentRepository, loc *time.Location) CommentService {
	if loc == nil {
		loc = time.UTC
	}
	return &commentService{comments: comments, location: loc}
}

func (s *commentService) List(ctx context.Context) ([]domain.Comment, error) {
	comments, err := s.comments.ListNewestFirst(ctx)
	if err != nil {
		return nil, fmt.Errorf("list comments: %w", err)
	}
	return comments, nil
}

func (s *commentService) Append(ctx context.Context, content string, commenter domain.Identity) (*domain.Comment, error) {
	if commenter == nil || !commenter.IsAuthenticated() {
		return nil, ErrNotAuthenticated
	}

	comment := &domain.Comment{
		Content: content,
		Posted:  time.Now().In(s.location),
	}
	if user := domain.UserOf(commenter); user != nil {
		id := user.ID
		comment.CommenterID = &id
		comment.Commenter = user.Username
	}

	if _, err := s.comments.Create(ctx, comment); err != nil {
		return nil, fmt.Errorf("append comment: %w", err)
	}
	return comment, nil
}
