package service

import (
	"context"
	"strings"

	"github.com/anonboard-dev/anonboard/internal/domain"
	internal_errors "github.com/anonboard-dev/anonboard/internal/errors"
	"github.com/anonboard-dev/anonboard/internal/ownership"
	"github.com/anonboard-dev/anonboard/internal/utils"
)

type ThreadService interface {
	Create(ctx context.Context, data domain.ThreadCreationData, user *domain.User) (domain.Thread, error)
	List(ctx context.Context) ([]domain.Thread, error)
	Delete(ctx context.Context, id domain.ThreadId, proof ownership.Proof) error
}

type ThreadStorage interface {
	CreateThread(ctx context.Context, data domain.ThreadCreationData) (domain.Thread, error)
	Threads(ctx context.Context) ([]domain.Thread, error)
	DeleteThread(ctx context.Context, id domain.ThreadId, proof ownership.Proof) error
}

type Thread struct {
	storage ThreadStorage
}

func NewThread(storage ThreadStorage) *Thread {
	return &Thread{storage}
}

func (s *Thread) Create(ctx context.Context, data domain.ThreadCreationData, user *domain.User) (domain.Thread, error) {
	data.Title = utils.SanitizeText(strings.TrimSpace(data.Title))
	data.Body = utils.SanitizeText(strings.TrimSpace(data.Body))

	authorName, err := resolveAuthorName(data.AuthorName, data.IsAnonymous, user)
	if err != nil {
		return domain.Thread{}, err
	}
	data.AuthorName = authorName

	if data.OwnerToken == "" {
		data.OwnerToken = utils.GenerateOwnerToken()
	}

	return s.storage.CreateThread(ctx, data)
}

func (s *Thread) List(ctx context.Context) ([]domain.Thread, error) {
	return s.storage.Threads(ctx)
}

func (s *Thread) Delete(ctx context.Context, id domain.ThreadId, proof ownership.Proof) error {
	return s.storage.DeleteThread(ctx, id, proof)
}

// resolveAuthorName applies the anonymity rules shared by threads and
// replies: anonymous posts never store a name, non-anonymous posts need an
// explicit name or an authenticated username to fall back on.
func resolveAuthorName(supplied *string, isAnonymous bool, user *domain.User) (*string, error) {
	if isAnonymous {
		return nil, nil
	}
	if supplied != nil {
		if name := utils.SanitizeText(strings.TrimSpace(*supplied)); name != "" {
			return &name, nil
		}
	}
	if user != nil && user.Username != "" {
		name := user.Username
		return &name, nil
	}
	return nil, internal_errors.BadRequest("authorName is required when posting non-anonymously")
}
