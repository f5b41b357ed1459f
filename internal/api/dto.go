// Package api holds the request/response DTOs of the HTTP surface.
package api

import (
	"time"

	"github.com/anonboard-dev/anonboard/internal/domain"
)

// --- Requests ---

type CreateThreadRequest struct {
	Title       string  `json:"title" validate:"required,min=3,max=200"`
	Body        string  `json:"body" validate:"required,min=1,max=4000"`
	AuthorName  *string `json:"authorName,omitempty" validate:"omitempty,max=100"`
	IsAnonymous bool    `json:"isAnonymous"`
	OwnerToken  *string `json:"ownerToken,omitempty" validate:"omitempty,min=8,max=64"`
}

type CreateReplyRequest struct {
	Body        string  `json:"body" validate:"required,min=1,max=4000"`
	ParentId    *int64  `json:"parentId,omitempty"`
	AuthorName  *string `json:"authorName,omitempty" validate:"omitempty,max=100"`
	IsAnonymous bool    `json:"isAnonymous"`
	OwnerToken  *string `json:"ownerToken,omitempty" validate:"omitempty,min=8,max=64"`
}

type SignupRequest struct {
	Username string `json:"username" validate:"required,min=3,max=60"`
	Email    string `json:"email" validate:"required,email,max=140"`
	Password string `json:"password" validate:"required,min=8"`
}

// Either username or email identifies the account.
type SigninRequest struct {
	Username string `json:"username,omitempty" validate:"required_without=Email"`
	Email    string `json:"email,omitempty" validate:"required_without=Username"`
	Password string `json:"password" validate:"required"`
}

// --- Responses ---

type ReplyResponse struct {
	Id          int64     `json:"id"`
	ThreadId    int64     `json:"threadId"`
	ParentId    *int64    `json:"parentId"`
	Body        string    `json:"body"`
	AuthorName  *string   `json:"authorName"`
	IsAnonymous bool      `json:"isAnonymous"`
	CreatedAt   time.Time `json:"createdAt"`
}

type ThreadResponse struct {
	Id          int64           `json:"id"`
	Title       string          `json:"title"`
	Body        string          `json:"body"`
	AuthorName  *string         `json:"authorName"`
	IsAnonymous bool            `json:"isAnonymous"`
	CreatedAt   time.Time       `json:"createdAt"`
	Replies     []ReplyResponse `json:"replies"`
}

// Creation responses additionally expose the owner token; it is never
// included when listing.
type CreatedThreadResponse struct {
	ThreadResponse
	OwnerToken string `json:"ownerToken"`
}

type CreatedReplyResponse struct {
	ReplyResponse
	OwnerToken string `json:"ownerToken"`
}

type UserResponse struct {
	Id        int64     `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
}

type TokenResponse struct {
	AccessToken string       `json:"accessToken"`
	TokenType   string       `json:"tokenType"`
	User        UserResponse `json:"user"`
}

type HealthResponse struct {
	Ok bool `json:"ok"`
}

// --- Converters ---

func NewReplyResponse(r domain.Reply) ReplyResponse {
	return ReplyResponse{
		Id:          r.Id,
		ThreadId:    r.ThreadId,
		ParentId:    r.ParentId,
		Body:        r.Body,
		AuthorName:  r.AuthorName,
		IsAnonymous: r.IsAnonymous,
		CreatedAt:   r.CreatedAt,
	}
}

func NewThreadResponse(t domain.Thread) ThreadResponse {
	replies := make([]ReplyResponse, len(t.Replies))
	for i, r := range t.Replies {
		replies[i] = NewReplyResponse(r)
	}
	return ThreadResponse{
		Id:          t.Id,
		Title:       t.Title,
		Body:        t.Body,
		AuthorName:  t.AuthorName,
		IsAnonymous: t.IsAnonymous,
		CreatedAt:   t.CreatedAt,
		Replies:     replies,
	}
}

func NewUserResponse(u domain.User) UserResponse {
	return UserResponse{
		Id:        u.Id,
		Username:  u.Username,
		Email:     u.Email,
		CreatedAt: u.CreatedAt,
	}
}
