package handler

import (
	"codevault/internal/http/payload"
	"errors"
	"net/http"
)

func (h *VaultHandler) HandleCreateProject(w http.ResponseWriter, r *http.Request) {
	requestId := h.requestID(r)

	var req payload.CreateProjectRequest
	if err := h.requestValidator.DecodeAndValidateJSONPayload(r, &req); err != nil {
		h.respondBadRequest(w, err, CreateProject, requestId)
		return
	}

	project, err := h.vault.CreateProject(r.Context(), req.ToMessage())
	if err != nil {
		h.respondCoreError(w, err, CreateProject, requestId)
		return
	}

	h.respondData(w, project, http.StatusCreated, requestId)
}

func (h *VaultHandler) HandleListProjects(w http.ResponseWriter, r *http.Request) {
	requestId := h.requestID(r)

	projects, err := h.vault.ListPublishedProjects(r.Context())
	if err != nil {
		h.respondCoreError(w, err, ListProjects, requestId)
		return
	}

	h.respondData(w, projects, http.StatusOK, requestId)
}

func (h *VaultHandler) HandleGetProject(w http.ResponseWriter, r *http.Request) {
	requestId := h.requestID(r)

	project, err := h.vault.GetProject(r.Context(), r.PathValue("id"))
	if err != nil {
		h.respondCoreError(w, err, GetProject, requestId)
		return
	}

	h.respondData(w, project, http.StatusOK, requestId)
}

func (h *VaultHandler) HandleListOwnerProjects(w http.ResponseWriter, r *http.Request) {
	requestId := h.requestID(r)

	walletAddress := r.PathValue("walletAddress")
	if walletAddress == "" {
		h.respondBadRequest(w, errors.New("walletAddress is required"), ListOwnerProjects, requestId)
		return
	}

	projects, err := h.vault.ListProjectsByOwner(r.Context(), walletAddress)
	if err != nil {
		h.respondCoreError(w, err, ListOwnerProjects, requestId)
		return
	}

	h.respondData(w, projects, http.StatusOK, requestId)
}

func (h *VaultHandler) HandleUpdateProject(w http.ResponseWriter, r *http.Request) {
	requestId := h.requestID(r)

	var req payload.UpdateProjectRequest
	if err := h.requestValidator.DecodeAndValidateJSONPayload(r, &req); err != nil {
		h.respondBadRequest(w, err, UpdateProject, requestId)
		return
	}

	project, err := h.vault.UpdateProject(r.Context(), r.PathValue("id"), req.WalletAddress, req.ToMessage())
	if err != nil {
		h.respondCoreError(w, err, UpdateProject, requestId)
		return
	}

	h.respondData(w, project, http.StatusOK, requestId)
}
