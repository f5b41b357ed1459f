package handler

import (
	"context"

	"github.com/go-chi/chi/v5"

	"github.com/anonboard-dev/anonboard/internal/config"
	"github.com/anonboard-dev/anonboard/internal/domain"
	"github.com/anonboard-dev/anonboard/internal/ownership"
)

// --- Shared mocks for handler tests ---

type MockThreadService struct {
	createFunc func(ctx context.Context, data domain.ThreadCreationData, user *domain.User) (domain.Thread, error)
	listFunc   func(ctx context.Context) ([]domain.Thread, error)
	deleteFunc func(ctx context.Context, id domain.ThreadId, proof ownership.Proof) error
}

func (m *MockThreadService) Create(ctx context.Context, data domain.ThreadCreationData, user *domain.User) (domain.Thread, error) {
	if m.createFunc != nil {
		return m.createFunc(ctx, data, user)
	}
	return domain.Thread{Id: 1, Title: data.Title, Body: data.Body, OwnerToken: "generated-token", Replies: []domain.Reply{}}, nil
}

func (m *MockThreadService) List(ctx context.Context) ([]domain.Thread, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx)
	}
	return nil, nil
}

func (m *MockThreadService) Delete(ctx context.Context, id domain.ThreadId, proof ownership.Proof) error {
	if m.deleteFunc != nil {
		return m.deleteFunc(ctx, id, proof)
	}
	return nil
}

type MockReplyService struct {
	createFunc func(ctx context.Context, data domain.ReplyCreationData, user *domain.User) (domain.Reply, error)
	deleteFunc func(ctx context.Context, threadId domain.ThreadId, replyId domain.ReplyId, proof ownership.Proof) error
}

func (m *MockReplyService) Create(ctx context.Context, data domain.ReplyCreationData, user *domain.User) (domain.Reply, error) {
	if m.createFunc != nil {
		return m.createFunc(ctx, data, user)
	}
	return domain.Reply{Id: 1, ThreadId: data.ThreadId, OwnerToken: "generated-token"}, nil
}

func (m *MockReplyService) Delete(ctx context.Context, threadId domain.ThreadId, replyId domain.ReplyId, proof ownership.Proof) error {
	if m.deleteFunc != nil {
		return m.deleteFunc(ctx, threadId, replyId, proof)
	}
	return nil
}

type MockAuthService struct {
	signupFunc func(ctx context.Context, creds domain.Credentials) (domain.User, string, error)
	signinFunc func(ctx context.Context, creds domain.Credentials) (domain.User, string, error)
	meFunc     func(ctx context.Context, id domain.UserId) (domain.User, error)
}

func (m *MockAuthService) Signup(ctx context.Context, creds domain.Credentials) (domain.User, string, error) {
	if m.signupFunc != nil {
		return m.signupFunc(ctx, creds)
	}
	return domain.User{Id: 1, Username: creds.Username, Email: creds.Email}, "mock-token", nil
}

func (m *MockAuthService) Signin(ctx context.Context, creds domain.Credentials) (domain.User, string, error) {
	if m.signinFunc != nil {
		return m.signinFunc(ctx, creds)
	}
	return domain.User{Id: 1, Username: creds.Username}, "mock-token", nil
}

func (m *MockAuthService) Me(ctx context.Context, id domain.UserId) (domain.User, error) {
	if m.meFunc != nil {
		return m.meFunc(ctx, id)
	}
	return domain.User{Id: id}, nil
}

type MockHealthChecker struct {
	pingFunc func(ctx context.Context) error
}

func (m *MockHealthChecker) Ping(ctx context.Context) error {
	if m.pingFunc != nil {
		return m.pingFunc(ctx)
	}
	return nil
}

// testRouter wires a handler with mocked services into the real routes.
func testRouter(h *Handler) *chi.Mux {
	r := chi.NewRouter()
	r.Get("/health", h.Health)
	r.Get("/ready", h.Ready)
	r.Route("/threads", func(r chi.Router) {
		r.Get("/", h.ListThreads)
		r.Post("/", h.CreateThread)
		r.Post("/{thread}/replies", h.CreateReply)
		r.Delete("/{thread}", h.DeleteThread)
		r.Delete("/{thread}/replies/{reply}", h.DeleteReply)
	})
	r.Route("/auth", func(r chi.Router) {
		r.Post("/signup", h.Signup)
		r.Post("/signin", h.Signin)
		r.Get("/me", h.Me)
	})
	return r
}

func newTestHandler() *Handler {
	return New(&MockAuthService{}, &MockThreadService{}, &MockReplyService{}, &MockHealthChecker{}, &config.Config{})
}
