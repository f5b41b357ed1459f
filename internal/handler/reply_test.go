package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anonboard-dev/anonboard/internal/api"
	"github.com/anonboard-dev/anonboard/internal/domain"
	internal_errors "github.com/anonboard-dev/anonboard/internal/errors"
	"github.com/anonboard-dev/anonboard/internal/ownership"
)

func TestCreateReplyHandler(t *testing.T) {
	t.Run("valid request is a 201 with owner token", func(t *testing.T) {
		var captured domain.ReplyCreationData
		h := newTestHandler()
		h.reply = &MockReplyService{createFunc: func(ctx context.Context, data domain.ReplyCreationData, user *domain.User) (domain.Reply, error) {
			captured = data
			return domain.Reply{Id: 7, ThreadId: data.ThreadId, ParentId: data.ParentId, Body: data.Body, OwnerToken: "reply-token"}, nil
		}}
		router := testRouter(h)

		body := []byte(`{"body": "r2", "parentId": 3, "isAnonymous": true}`)
		req := httptest.NewRequest(http.MethodPost, "/threads/42/replies", bytes.NewBuffer(body))
		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)

		require.Equal(t, http.StatusCreated, rr.Code)
		assert.Equal(t, domain.ThreadId(42), captured.ThreadId)
		require.NotNil(t, captured.ParentId)
		assert.Equal(t, domain.ReplyId(3), *captured.ParentId)

		var resp api.CreatedReplyResponse
		require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
		assert.Equal(t, "reply-token", resp.OwnerToken)
	})

	t.Run("missing thread is a 404", func(t *testing.T) {
		h := newTestHandler()
		h.reply = &MockReplyService{createFunc: func(ctx context.Context, data domain.ReplyCreationData, user *domain.User) (domain.Reply, error) {
			return domain.Reply{}, internal_errors.NotFound("Thread not found")
		}}
		router := testRouter(h)

		body := []byte(`{"body": "r1", "isAnonymous": true}`)
		req := httptest.NewRequest(http.MethodPost, "/threads/9000/replies", bytes.NewBuffer(body))
		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})

	t.Run("invalid parent is a 400", func(t *testing.T) {
		h := newTestHandler()
		h.reply = &MockReplyService{createFunc: func(ctx context.Context, data domain.ReplyCreationData, user *domain.User) (domain.Reply, error) {
			return domain.Reply{}, internal_errors.BadRequest("Invalid parent reply")
		}}
		router := testRouter(h)

		body := []byte(`{"body": "r1", "parentId": 999, "isAnonymous": true}`)
		req := httptest.NewRequest(http.MethodPost, "/threads/42/replies", bytes.NewBuffer(body))
		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("empty body is a 400", func(t *testing.T) {
		h := newTestHandler()
		router := testRouter(h)

		body := []byte(`{"body": "", "isAnonymous": true}`)
		req := httptest.NewRequest(http.MethodPost, "/threads/42/replies", bytes.NewBuffer(body))
		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestDeleteReplyHandler(t *testing.T) {
	t.Run("both ids and the token reach the service", func(t *testing.T) {
		var gotThreadId domain.ThreadId
		var gotReplyId domain.ReplyId
		var gotProof ownership.Proof
		h := newTestHandler()
		h.reply = &MockReplyService{deleteFunc: func(ctx context.Context, threadId domain.ThreadId, replyId domain.ReplyId, proof ownership.Proof) error {
			gotThreadId, gotReplyId, gotProof = threadId, replyId, proof
			return nil
		}}
		router := testRouter(h)

		req := httptest.NewRequest(http.MethodDelete, "/threads/42/replies/7", nil)
		req.Header.Set("X-Owner-Token", "tok-123")
		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusNoContent, rr.Code)
		assert.Equal(t, domain.ThreadId(42), gotThreadId)
		assert.Equal(t, domain.ReplyId(7), gotReplyId)
		assert.Equal(t, "tok-123", gotProof.Token)
	})

	t.Run("missing token is a 403", func(t *testing.T) {
		h := newTestHandler()
		h.reply = &MockReplyService{deleteFunc: func(ctx context.Context, threadId domain.ThreadId, replyId domain.ReplyId, proof ownership.Proof) error {
			return internal_errors.Forbidden("Owner token required")
		}}
		router := testRouter(h)

		req := httptest.NewRequest(http.MethodDelete, "/threads/42/replies/7", nil)
		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusForbidden, rr.Code)
	})

	t.Run("reply from another thread is a 404", func(t *testing.T) {
		h := newTestHandler()
		h.reply = &MockReplyService{deleteFunc: func(ctx context.Context, threadId domain.ThreadId, replyId domain.ReplyId, proof ownership.Proof) error {
			return internal_errors.NotFound("Reply not found")
		}}
		router := testRouter(h)

		req := httptest.NewRequest(http.MethodDelete, "/threads/1/replies/7", nil)
		req.Header.Set("X-Owner-Token", "tok")
		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}
