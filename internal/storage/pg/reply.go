package pg

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"github.com/anonboard-dev/anonboard/internal/domain"
	internal_errors "github.com/anonboard-dev/anonboard/internal/errors"
	"github.com/anonboard-dev/anonboard/internal/ownership"
	"github.com/anonboard-dev/anonboard/internal/tree"
)

// CreateReply verifies the referential invariants inside the insert
// transaction: the thread must exist and the parent, when given, must be a
// reply of that same thread.
func (s *Storage) CreateReply(ctx context.Context, data domain.ReplyCreationData) (domain.Reply, error) {
	reply := domain.Reply{
		ThreadId:    data.ThreadId,
		ParentId:    data.ParentId,
		Body:        data.Body,
		AuthorName:  data.AuthorName,
		IsAnonymous: data.IsAnonymous,
		OwnerToken:  data.OwnerToken,
	}
	err := s.withTx(ctx, func(tx *sql.Tx) error {
		var exists bool
		err := tx.QueryRowContext(ctx,
			"SELECT EXISTS (SELECT 1 FROM threads WHERE id = $1)", data.ThreadId,
		).Scan(&exists)
		if err != nil {
			return fmt.Errorf("failed to validate thread: %w", err)
		}
		if !exists {
			return internal_errors.NotFound("Thread not found")
		}

		if data.ParentId != nil {
			var parentThreadId domain.ThreadId
			err := tx.QueryRowContext(ctx,
				"SELECT thread_id FROM replies WHERE id = $1", *data.ParentId,
			).Scan(&parentThreadId)
			if errors.Is(err, sql.ErrNoRows) || (err == nil && parentThreadId != data.ThreadId) {
				return internal_errors.BadRequest("Invalid parent reply")
			}
			if err != nil {
				return fmt.Errorf("failed to validate parent reply: %w", err)
			}
		}

		return tx.QueryRowContext(ctx, `
            INSERT INTO replies (thread_id, parent_id, body, author_name, is_anonymous, owner_token)
            VALUES ($1, $2, $3, $4, $5, $6)
            RETURNING id, created_at
        `, data.ThreadId, data.ParentId, data.Body, data.AuthorName, data.IsAnonymous, data.OwnerToken,
		).Scan(&reply.Id, &reply.CreatedAt)
	})
	if err != nil {
		var statusErr *internal_errors.ErrorWithStatusCode
		if errors.As(err, &statusErr) {
			return domain.Reply{}, err
		}
		return domain.Reply{}, fmt.Errorf("failed to insert reply: %w", err)
	}
	return reply, nil
}

// DeleteReply checks ownership, computes the descendant closure of the
// reply and deletes exactly that set, all within a single transaction so
// observers never see a partially removed subtree.
func (s *Storage) DeleteReply(ctx context.Context, threadId domain.ThreadId, replyId domain.ReplyId, proof ownership.Proof) error {
	return s.withTx(ctx, func(tx *sql.Tx) error {
		var ownerToken string
		var actualThreadId domain.ThreadId
		err := tx.QueryRowContext(ctx,
			"SELECT owner_token, thread_id FROM replies WHERE id = $1", replyId,
		).Scan(&ownerToken, &actualThreadId)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return internal_errors.NotFound("Reply not found")
			}
			return fmt.Errorf("failed to fetch reply owner: %w", err)
		}
		if actualThreadId != threadId {
			return internal_errors.NotFound("Reply not found")
		}

		if err := ownership.Authorize(ownerToken, proof); err != nil {
			return err
		}

		rows, err := tx.QueryContext(ctx,
			"SELECT id, parent_id FROM replies WHERE thread_id = $1", threadId,
		)
		if err != nil {
			return fmt.Errorf("failed to fetch thread replies: %w", err)
		}
		defer rows.Close()

		var nodes []tree.Node
		for rows.Next() {
			var n tree.Node
			if err := rows.Scan(&n.Id, &n.Parent); err != nil {
				return fmt.Errorf("failed to scan reply node: %w", err)
			}
			nodes = append(nodes, n)
		}
		if err := rows.Err(); err != nil {
			return fmt.Errorf("rows iteration error: %w", err)
		}

		closure := tree.Closure(nodes, replyId)
		if _, err := tx.ExecContext(ctx,
			"DELETE FROM replies WHERE id = ANY($1)", pq.Array(closure),
		); err != nil {
			return fmt.Errorf("failed to delete reply closure: %w", err)
		}
		return nil
	})
}
