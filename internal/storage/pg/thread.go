package pg

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/anonboard-dev/anonboard/internal/domain"
	internal_errors "github.com/anonboard-dev/anonboard/internal/errors"
	"github.com/anonboard-dev/anonboard/internal/ownership"
)

func (s *Storage) CreateThread(ctx context.Context, data domain.ThreadCreationData) (domain.Thread, error) {
	thread := domain.Thread{
		Title:       data.Title,
		Body:        data.Body,
		AuthorName:  data.AuthorName,
		IsAnonymous: data.IsAnonymous,
		OwnerToken:  data.OwnerToken,
		Replies:     []domain.Reply{},
	}
	err := s.withTx(ctx, func(tx *sql.Tx) error {
		return tx.QueryRowContext(ctx, `
            INSERT INTO threads (title, body, author_name, is_anonymous, owner_token)
            VALUES ($1, $2, $3, $4, $5)
            RETURNING id, created_at
        `, data.Title, data.Body, data.AuthorName, data.IsAnonymous, data.OwnerToken,
		).Scan(&thread.Id, &thread.CreatedAt)
	})
	if err != nil {
		return domain.Thread{}, fmt.Errorf("failed to insert thread: %w", err)
	}
	return thread, nil
}

// Threads returns every thread, newest first, with replies eagerly attached
// in insertion order. Owner tokens are not loaded; they are only exposed at
// creation time.
func (s *Storage) Threads(ctx context.Context) ([]domain.Thread, error) {
	rows, err := s.db.QueryContext(ctx, `
        SELECT id, title, body, author_name, is_anonymous, created_at
        FROM threads
        ORDER BY created_at DESC, id DESC
    `)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch threads: %w", err)
	}
	defer rows.Close()

	var threads []domain.Thread
	threadIdx := make(map[domain.ThreadId]int)
	for rows.Next() {
		var t domain.Thread
		if err := rows.Scan(&t.Id, &t.Title, &t.Body, &t.AuthorName, &t.IsAnonymous, &t.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan thread: %w", err)
		}
		t.Replies = []domain.Reply{}
		threads = append(threads, t)
		threadIdx[t.Id] = len(threads) - 1
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	replyRows, err := s.db.QueryContext(ctx, `
        SELECT id, thread_id, parent_id, body, author_name, is_anonymous, created_at
        FROM replies
        ORDER BY id
    `)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch replies: %w", err)
	}
	defer replyRows.Close()

	for replyRows.Next() {
		var r domain.Reply
		if err := replyRows.Scan(&r.Id, &r.ThreadId, &r.ParentId, &r.Body, &r.AuthorName, &r.IsAnonymous, &r.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan reply: %w", err)
		}
		if idx, ok := threadIdx[r.ThreadId]; ok {
			threads[idx].Replies = append(threads[idx].Replies, r)
		}
	}
	if err = replyRows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return threads, nil
}

// DeleteThread checks ownership and removes the thread with all its replies
// in one transaction.
func (s *Storage) DeleteThread(ctx context.Context, id domain.ThreadId, proof ownership.Proof) error {
	return s.withTx(ctx, func(tx *sql.Tx) error {
		var ownerToken string
		err := tx.QueryRowContext(ctx,
			"SELECT owner_token FROM threads WHERE id = $1", id,
		).Scan(&ownerToken)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return internal_errors.NotFound("Thread not found")
			}
			return fmt.Errorf("failed to fetch thread owner: %w", err)
		}

		if err := ownership.Authorize(ownerToken, proof); err != nil {
			return err
		}

		if _, err := tx.ExecContext(ctx, "DELETE FROM replies WHERE thread_id = $1", id); err != nil {
			return fmt.Errorf("failed to delete thread replies: %w", err)
		}
		if _, err := tx.ExecContext(ctx, "DELETE FROM threads WHERE id = $1", id); err != nil {
			return fmt.Errorf("failed to delete thread: %w", err)
		}
		return nil
	})
}
