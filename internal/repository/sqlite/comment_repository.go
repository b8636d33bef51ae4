package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"personal-site/internal/domain"
	"personal-site/internal/repository"
)

const createCommentsTable = `
CREATE TABLE IF NOT EXISTS comments (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	content TEXT NOT NULL,
	posted DATETIME NOT NULL,
	commenter_id INTEGER NULL REFERENCES users(id)
);
`

type CommentRepository struct {
	db *sql.DB
}

func NewCommentRepository(db *sql.DB) repository.CommentRepository {
	return &CommentRepository{db: db}
}

func (r *CommentRepository) Init(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, createCommentsTable); err != nil {
		return fmt.Errorf("create comments table: %w", err)
	}
	return nil
}

func (r *CommentRepository) Create(ctx context.Context, comment *domain.Comment) (int64, error) {
	content := comment.Content
	if len([]rune(content)) > domain.MaxCommentLength {
		// storage bound, mirrors a VARCHAR(4096) column
		content = string([]rune(content)[:domain.MaxCommentLength])
		comment.Content = content
	}

	res, err := r.db.ExecContext(ctx, `
INSERT INTO comments (content, posted, commenter_id)
VALUES (?, ?, ?)`,
		content,
		comment.Posted,
		comment.CommenterID,
	)
	if err != nil {
		return 0, fmt.Errorf("insert comment: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("comment last insert id: %w", err)
	}
	comment.ID = id
	return id, nil
}

func (r *CommentRepository) ListNewestFirst(ctx context.Context) ([]domain.Comment, error) {
	rows, err := r.db.QueryContext(ctx, `
SELECT c.id, c.content, c.posted, c.commenter_id, COALESCE(u.username, '')
FROM comments c
LEFT JOIN users u ON u.id = c.commenter_id
ORDER BY c.posted DESC, c.id DESC`,
	)
	if err != nil {
		return nil, fmt.Errorf("query comments: %w", err)
	}
	defer rows.Close()

	var comments []domain.Comment
	for rows.Next() {
		var (
			c           domain.Comment
			commenterID sql.NullInt64
		)
		if err := rows.Scan(&c.ID, &c.Content, &c.Posted, &commenterID, &c.Commenter); err != nil {
			return nil, fmt.Errorf("scan comment: %w", err)
		}
		if commenterID.Valid {
			id := commenterID.Int64
			c.CommenterID = &id
		}
		comments = append(comments, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate comments: %w", err)
	}
	return comments, nil
}
