package handler

import (
	"codevault/internal/http/payload"
	"errors"
	"net/http"
	"strings"
)

type syncUserResponse struct {
	Success bool `json:"success"`
	Data    any  `json:"data"`
	IsNew   bool `json:"isNew"`
}

func (h *VaultHandler) HandleSyncUser(w http.ResponseWriter, r *http.Request) {
	requestId := h.requestID(r)

	var req payload.SyncUserRequest
	if err := h.requestValidator.DecodeAndValidateJSONPayload(r, &req); err != nil {
		h.respondBadRequest(w, err, SyncUser, requestId)
		return
	}

	// when a sync token secret is configured the caller must present the
	// identity provider's token for the subject it claims
	if h.identity != nil {
		token := bearerToken(r)
		if token == "" {
			h.respond(w, Response{Error: "authorization token is required"}, http.StatusUnauthorized, requestId)
			h.logs.Errorw("missing authorization token", "handler", SyncUser, "request_id", requestId)
			return
		}

		sub, err := h.identity.Subject(token)
		if err != nil {
			h.respond(w, Response{Error: "invalid authorization token"}, http.StatusUnauthorized, requestId)
			h.logs.Errorw("token validation failed", "error", err, "handler", SyncUser, "request_id", requestId)
			return
		}

		if sub != req.IdentitySubject {
			h.respond(w, Response{Error: "token subject mismatch"}, http.StatusForbidden, requestId)
			h.logs.Errorw("token subject mismatch", "handler", SyncUser, "request_id", requestId)
			return
		}
	}

	user, created, err := h.vault.SyncUser(r.Context(), req.ToMessage())
	if err != nil {
		h.respondCoreError(w, err, SyncUser, requestId)
		return
	}

	code := http.StatusOK
	if created {
		code = http.StatusCreated
	}

	h.respond(w, syncUserResponse{Success: true, Data: user, IsNew: created}, code, requestId)
}

func (h *VaultHandler) HandleGetUserByWallet(w http.ResponseWriter, r *http.Request) {
	requestId := h.requestID(r)

	walletAddress := r.PathValue("walletAddress")
	if walletAddress == "" {
		h.respondBadRequest(w, errors.New("walletAddress is required"), GetUserByWallet, requestId)
		return
	}

	user, err := h.vault.GetUserByWallet(r.Context(), walletAddress)
	if err != nil {
		h.respondCoreError(w, err, GetUserByWallet, requestId)
		return
	}

	h.respondData(w, user, http.StatusOK, requestId)
}

func bearerToken(r *http.Request) string {
	auth := r.Header.Get("Authorization")
	if auth == "" {
		return ""
	}
	return strings.TrimSpace(strings.TrimPrefix(auth, "Bearer "))
}
