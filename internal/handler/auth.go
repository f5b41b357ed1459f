package handler

import (
	"net/http"

	"github.com/anonboard-dev/anonboard/internal/api"
	"github.com/anonboard-dev/anonboard/internal/domain"
	mw "github.com/anonboard-dev/anonboard/internal/middleware"
	"github.com/anonboard-dev/anonboard/internal/utils"
)

const tokenTypeBearer = "bearer"

func (h *Handler) Signup(w http.ResponseWriter, r *http.Request) {
	var body api.SignupRequest
	if err := utils.DecodeValidate(r.Body, &body); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	user, token, err := h.auth.Signup(r.Context(), domain.Credentials{
		Username: body.Username,
		Email:    body.Email,
		Password: body.Password,
	})
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, api.TokenResponse{
		AccessToken: token,
		TokenType:   tokenTypeBearer,
		User:        api.NewUserResponse(user),
	})
}

func (h *Handler) Signin(w http.ResponseWriter, r *http.Request) {
	var body api.SigninRequest
	if err := utils.DecodeValidate(r.Body, &body); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	user, token, err := h.auth.Signin(r.Context(), domain.Credentials{
		Username: body.Username,
		Email:    body.Email,
		Password: body.Password,
	})
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	writeJSON(w, http.StatusOK, api.TokenResponse{
		AccessToken: token,
		TokenType:   tokenTypeBearer,
		User:        api.NewUserResponse(user),
	})
}

func (h *Handler) Me(w http.ResponseWriter, r *http.Request) {
	claims := mw.GetUserFromContext(r)
	if claims == nil {
		http.Error(w, "Please sign in", http.StatusUnauthorized)
		return
	}

	user, err := h.auth.Me(r.Context(), claims.Id)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	writeJSON(w, http.StatusOK, api.NewUserResponse(user))
}
