package handler

import (
	"codevault/internal/http/payload"
	"errors"
	"net/http"
)

func (h *VaultHandler) HandleCreateTransaction(w http.ResponseWriter, r *http.Request) {
	requestId := h.requestID(r)

	var req payload.CreateTransactionRequest
	if err := h.requestValidator.DecodeAndValidateJSONPayload(r, &req); err != nil {
		h.respondBadRequest(w, err, CreateTransaction, requestId)
		return
	}

	txn, err := h.vault.CreateTransaction(r.Context(), req.ToMessage())
	if err != nil {
		h.respondCoreError(w, err, CreateTransaction, requestId)
		return
	}

	h.logs.Infow("transaction created",
		"transactionId", txn.ID,
		"handler", CreateTransaction,
		"request_id", requestId)

	h.respondData(w, txn, http.StatusCreated, requestId)
}

func (h *VaultHandler) HandleConfirmTransaction(w http.ResponseWriter, r *http.Request) {
	requestId := h.requestID(r)

	var req payload.ConfirmTransactionRequest
	if err := h.requestValidator.DecodeAndValidateJSONPayload(r, &req); err != nil {
		h.respondBadRequest(w, err, ConfirmTransaction, requestId)
		return
	}

	txn, err := h.vault.ConfirmTransaction(r.Context(), r.PathValue("id"), req.TxHash, req.BlockNumber)
	if err != nil {
		h.respondCoreError(w, err, ConfirmTransaction, requestId)
		return
	}

	h.logs.Infow("transaction confirmed",
		"transactionId", txn.ID,
		"status", txn.Status,
		"handler", ConfirmTransaction,
		"request_id", requestId)

	h.respondData(w, txn, http.StatusOK, requestId)
}

func (h *VaultHandler) HandleFailTransaction(w http.ResponseWriter, r *http.Request) {
	requestId := h.requestID(r)

	txn, err := h.vault.FailTransaction(r.Context(), r.PathValue("id"))
	if err != nil {
		h.respondCoreError(w, err, FailTransaction, requestId)
		return
	}

	h.respondData(w, txn, http.StatusOK, requestId)
}

func (h *VaultHandler) HandleListUserTransactions(w http.ResponseWriter, r *http.Request) {
	requestId := h.requestID(r)

	walletAddress := r.PathValue("walletAddress")
	if walletAddress == "" {
		h.respondBadRequest(w, errors.New("walletAddress is required"), ListUserTransactions, requestId)
		return
	}

	txns, err := h.vault.ListWalletTransactions(r.Context(), walletAddress)
	if err != nil {
		h.respondCoreError(w, err, ListUserTransactions, requestId)
		return
	}

	h.respondData(w, txns, http.StatusOK, requestId)
}

func (h *VaultHandler) HandleListProjectTransactions(w http.ResponseWriter, r *http.Request) {
	requestId := h.requestID(r)

	txns, err := h.vault.ListProjectTransactions(r.Context(), r.PathValue("projectId"))
	if err != nil {
		h.respondCoreError(w, err, ListProjectTransactions, requestId)
		return
	}

	h.respondData(w, txns, http.StatusOK, requestId)
}
