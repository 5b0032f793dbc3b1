package handler

import (
	"codevault/internal/http/payload"
	"errors"
	"net/http"
)

func (h *VaultHandler) HandleCheckAccess(w http.ResponseWriter, r *http.Request) {
	requestId := h.requestID(r)

	query := r.URL.Query()
	projectID := query.Get("projectId")
	walletAddress := query.Get("walletAddress")

	if projectID == "" || walletAddress == "" {
		h.respondBadRequest(w, errors.New("projectId and walletAddress are required"), CheckAccess, requestId)
		return
	}

	entitlement, err := h.vault.CheckAccess(r.Context(), projectID, walletAddress)
	if err != nil {
		h.respondCoreError(w, err, CheckAccess, requestId)
		return
	}

	h.respondData(w, entitlement, http.StatusOK, requestId)
}

func (h *VaultHandler) HandleGrantAccess(w http.ResponseWriter, r *http.Request) {
	requestId := h.requestID(r)

	var req payload.GrantAccessRequest
	if err := h.requestValidator.DecodeAndValidateJSONPayload(r, &req); err != nil {
		h.respondBadRequest(w, err, GrantAccess, requestId)
		return
	}

	grant, err := h.vault.GrantAccess(r.Context(), req.ToMessage())
	if err != nil {
		h.respondCoreError(w, err, GrantAccess, requestId)
		return
	}

	h.respondData(w, grant, http.StatusCreated, requestId)
}

func (h *VaultHandler) HandleListUserAccess(w http.ResponseWriter, r *http.Request) {
	requestId := h.requestID(r)

	walletAddress := r.PathValue("walletAddress")
	if walletAddress == "" {
		h.respondBadRequest(w, errors.New("walletAddress is required"), ListUserAccess, requestId)
		return
	}

	grants, err := h.vault.ListWalletAccess(r.Context(), walletAddress)
	if err != nil {
		h.respondCoreError(w, err, ListUserAccess, requestId)
		return
	}

	h.respondData(w, grants, http.StatusOK, requestId)
}
