package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/anonboard-dev/anonboard/internal/api"
	"github.com/anonboard-dev/anonboard/internal/domain"
	mw "github.com/anonboard-dev/anonboard/internal/middleware"
	"github.com/anonboard-dev/anonboard/internal/utils"
)

func (h *Handler) CreateReply(w http.ResponseWriter, r *http.Request) {
	threadId, err := parseIntParam(chi.URLParam(r, "thread"), "thread ID")
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	var body api.CreateReplyRequest
	if err := utils.DecodeValidate(r.Body, &body); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	creation := domain.ReplyCreationData{
		ThreadId:    threadId,
		ParentId:    body.ParentId,
		Body:        body.Body,
		AuthorName:  body.AuthorName,
		IsAnonymous: body.IsAnonymous,
	}
	if body.OwnerToken != nil {
		creation.OwnerToken = *body.OwnerToken
	}

	reply, err := h.reply.Create(r.Context(), creation, mw.GetUserFromContext(r))
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	response := api.CreatedReplyResponse{
		ReplyResponse: api.NewReplyResponse(reply),
		OwnerToken:    reply.OwnerToken,
	}
	writeJSON(w, http.StatusCreated, response)
}

func (h *Handler) DeleteReply(w http.ResponseWriter, r *http.Request) {
	threadId, err := parseIntParam(chi.URLParam(r, "thread"), "thread ID")
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	replyId, err := parseIntParam(chi.URLParam(r, "reply"), "reply ID")
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.reply.Delete(r.Context(), threadId, replyId, ownerProof(r)); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
