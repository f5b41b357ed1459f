package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/anonboard-dev/anonboard/internal/api"
	"github.com/anonboard-dev/anonboard/internal/domain"
	mw "github.com/anonboard-dev/anonboard/internal/middleware"
	"github.com/anonboard-dev/anonboard/internal/utils"
)

func (h *Handler) CreateThread(w http.ResponseWriter, r *http.Request) {
	var body api.CreateThreadRequest
	if err := utils.DecodeValidate(r.Body, &body); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	creation := domain.ThreadCreationData{
		Title:       body.Title,
		Body:        body.Body,
		AuthorName:  body.AuthorName,
		IsAnonymous: body.IsAnonymous,
	}
	if body.OwnerToken != nil {
		creation.OwnerToken = *body.OwnerToken
	}

	thread, err := h.thread.Create(r.Context(), creation, mw.GetUserFromContext(r))
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	response := api.CreatedThreadResponse{
		ThreadResponse: api.NewThreadResponse(thread),
		OwnerToken:     thread.OwnerToken,
	}
	writeJSON(w, http.StatusCreated, response)
}

func (h *Handler) ListThreads(w http.ResponseWriter, r *http.Request) {
	threads, err := h.thread.List(r.Context())
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	response := make([]api.ThreadResponse, len(threads))
	for i, t := range threads {
		response[i] = api.NewThreadResponse(t)
	}
	writeJSON(w, http.StatusOK, response)
}

func (h *Handler) DeleteThread(w http.ResponseWriter, r *http.Request) {
	threadId, err := parseIntParam(chi.URLParam(r, "thread"), "thread ID")
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.thread.Delete(r.Context(), threadId, ownerProof(r)); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
