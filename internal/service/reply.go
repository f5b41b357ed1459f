package service

import (
	"context"
	"strings"

	"github.com/anonboard-dev/anonboard/internal/domain"
	"github.com/anonboard-dev/anonboard/internal/ownership"
	"github.com/anonboard-dev/anonboard/internal/utils"
)

type ReplyService interface {
	Create(ctx context.Context, data domain.ReplyCreationData, user *domain.User) (domain.Reply, error)
	Delete(ctx context.Context, threadId domain.ThreadId, replyId domain.ReplyId, proof ownership.Proof) error
}

type ReplyStorage interface {
	// CreateReply fails with a 404 when the thread is absent and a 400 when
	// the parent does not exist or belongs to a different thread.
	CreateReply(ctx context.Context, data domain.ReplyCreationData) (domain.Reply, error)
	// DeleteReply removes the reply and its whole descendant subtree in one
	// transaction.
	DeleteReply(ctx context.Context, threadId domain.ThreadId, replyId domain.ReplyId, proof ownership.Proof) error
}

type Reply struct {
	storage ReplyStorage
}

func NewReply(storage ReplyStorage) *Reply {
	return &Reply{storage}
}

func (s *Reply) Create(ctx context.Context, data domain.ReplyCreationData, user *domain.User) (domain.Reply, error) {
	data.Body = utils.SanitizeText(strings.TrimSpace(data.Body))

	authorName, err := resolveAuthorName(data.AuthorName, data.IsAnonymous, user)
	if err != nil {
		return domain.Reply{}, err
	}
	data.AuthorName = authorName

	if data.OwnerToken == "" {
		data.OwnerToken = utils.GenerateOwnerToken()
	}

	return s.storage.CreateReply(ctx, data)
}

func (s *Reply) Delete(ctx context.Context, threadId domain.ThreadId, replyId domain.ReplyId, proof ownership.Proof) error {
	return s.storage.DeleteReply(ctx, threadId, replyId, proof)
}
