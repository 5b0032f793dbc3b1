package handler

import (
	"codevault/internal/core"
	"codevault/internal/http/handler/middleware"
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"
)

var (
	SyncUser        = "POST /api/users/sync"
	GetUserByWallet = "GET /api/users/{walletAddress}"

	CreateProject     = "POST /api/projects"
	ListProjects      = "GET /api/projects"
	GetProject        = "GET /api/projects/{id}"
	ListOwnerProjects = "GET /api/projects/owner/{walletAddress}"
	UpdateProject     = "PUT /api/projects/{id}"

	CheckAccess    = "GET /api/access/check"
	GrantAccess    = "POST /api/access/grant"
	ListUserAccess = "GET /api/access/user/{walletAddress}"

	CreateTransaction       = "POST /api/transactions"
	ConfirmTransaction      = "PUT /api/transactions/{id}/confirm"
	FailTransaction         = "PUT /api/transactions/{id}/fail"
	ListUserTransactions    = "GET /api/transactions/user/{walletAddress}"
	ListProjectTransactions = "GET /api/transactions/project/{projectId}"
)

type VaultHandler struct {
	logs             *zap.SugaredLogger
	requestValidator RequestValidator
	vault            VaultService
	identity         TokenVerifier
}

// NewVaultHandler wires the HTTP layer. identity may be nil, in which
// case user-sync calls skip the identity-token check.
func NewVaultHandler(logger *zap.SugaredLogger, requestValidator RequestValidator, vaultService VaultService, identity TokenVerifier) *VaultHandler {
	return &VaultHandler{
		logs:             logger,
		requestValidator: requestValidator,
		vault:            vaultService,
		identity:         identity,
	}
}

// Register attaches all routes to the mux.
func (h *VaultHandler) Register(mux *http.ServeMux) {
	mux.HandleFunc(SyncUser, h.HandleSyncUser)
	mux.HandleFunc(GetUserByWallet, h.HandleGetUserByWallet)

	mux.HandleFunc(CreateProject, h.HandleCreateProject)
	mux.HandleFunc(ListProjects, h.HandleListProjects)
	mux.HandleFunc(GetProject, h.HandleGetProject)
	mux.HandleFunc(ListOwnerProjects, h.HandleListOwnerProjects)
	mux.HandleFunc(UpdateProject, h.HandleUpdateProject)

	mux.HandleFunc(CheckAccess, h.HandleCheckAccess)
	mux.HandleFunc(GrantAccess, h.HandleGrantAccess)
	mux.HandleFunc(ListUserAccess, h.HandleListUserAccess)

	mux.HandleFunc(CreateTransaction, h.HandleCreateTransaction)
	mux.HandleFunc(ConfirmTransaction, h.HandleConfirmTransaction)
	mux.HandleFunc(FailTransaction, h.HandleFailTransaction)
	mux.HandleFunc(ListUserTransactions, h.HandleListUserTransactions)
	mux.HandleFunc(ListProjectTransactions, h.HandleListProjectTransactions)
}

func (h *VaultHandler) requestID(r *http.Request) string {
	requestId := ""
	reqIdCtx := r.Context().Value(middleware.RequestIDKey)
	if reqIdCtx != nil {
		requestId = reqIdCtx.(string)
	}
	return requestId
}

func (h *VaultHandler) respond(w http.ResponseWriter, resp any, code int, requestId string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		http.Error(w, oopsErr, http.StatusInternalServerError)
		h.logs.Errorw("failed to encode response",
			"error", err,
			"request_id", requestId)
	}
}

func (h *VaultHandler) respondData(w http.ResponseWriter, data any, code int, requestId string) {
	h.respond(w, Response{Success: true, Data: data}, code, requestId)
}

func (h *VaultHandler) respondBadRequest(w http.ResponseWriter, err error, handlerName, requestId string) {
	h.respond(w, Response{Error: err.Error()}, http.StatusBadRequest, requestId)
	h.logs.Errorw("invalid request payload",
		"error", err,
		"handler", handlerName,
		"request_id", requestId)
}

// respondCoreError maps core sentinel errors onto the HTTP taxonomy:
// invalid input 400, missing entity 404, ownership 403, conflicting
// state or duplicate key 409, anything else a generic 500.
func (h *VaultHandler) respondCoreError(w http.ResponseWriter, err error, handlerName, requestId string) {
	code := http.StatusInternalServerError
	message := oopsErr

	switch {
	case errors.Is(err, core.ErrInvalidID),
		errors.Is(err, core.ErrInvalidAccessType),
		errors.Is(err, core.ErrInvalidTransactionType),
		errors.Is(err, core.ErrNegativeAmount),
		errors.Is(err, core.ErrPaymentNotVerified):
		code = http.StatusBadRequest
		message = err.Error()
	case errors.Is(err, core.ErrUserNotFound),
		errors.Is(err, core.ErrProjectNotFound),
		errors.Is(err, core.ErrTransactionNotFound):
		code = http.StatusNotFound
		message = err.Error()
	case errors.Is(err, core.ErrNotProjectOwner):
		code = http.StatusForbidden
		message = err.Error()
	case errors.Is(err, core.ErrDuplicateTxHash),
		errors.Is(err, core.ErrTransactionFinalized):
		code = http.StatusConflict
		message = err.Error()
	}

	h.respond(w, Response{Error: message}, code, requestId)
	h.logs.Errorw("request failed",
		"error", err,
		"handler", handlerName,
		"request_id", requestId)
}
