package handler

import (
	"codevault/internal/core"
	"context"
	"net/http"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name VaultService . VaultService
type VaultService interface {
	SyncUser(ctx context.Context, msg core.SyncUserMessage) (core.User, bool, error)
	GetUserByWallet(ctx context.Context, walletAddress string) (core.User, error)

	CreateProject(ctx context.Context, msg core.ProjectMessage) (core.Project, error)
	GetProject(ctx context.Context, projectID string) (core.Project, error)
	ListPublishedProjects(ctx context.Context) ([]core.Project, error)
	ListProjectsByOwner(ctx context.Context, walletAddress string) ([]core.Project, error)
	UpdateProject(ctx context.Context, projectID, callerWallet string, msg core.UpdateProjectMessage) (core.Project, error)

	CheckAccess(ctx context.Context, projectID, walletAddress string) (core.Entitlement, error)
	GrantAccess(ctx context.Context, msg core.GrantMessage) (core.Access, error)
	ListWalletAccess(ctx context.Context, walletAddress string) ([]core.Access, error)

	CreateTransaction(ctx context.Context, msg core.CreateTransactionMessage) (core.Transaction, error)
	ConfirmTransaction(ctx context.Context, transactionID, txHash string, blockNumber int64) (core.Transaction, error)
	FailTransaction(ctx context.Context, transactionID string) (core.Transaction, error)
	ListWalletTransactions(ctx context.Context, walletAddress string) ([]core.Transaction, error)
	ListProjectTransactions(ctx context.Context, projectID string) ([]core.Transaction, error)
}

//counterfeiter:generate -o fake -fake-name RequestValidator . RequestValidator
type RequestValidator interface {
	DecodeAndValidateJSONPayload(r *http.Request, object any) error
}

//counterfeiter:generate -o fake -fake-name TokenVerifier . TokenVerifier
type TokenVerifier interface {
	Subject(token string) (string, error)
}
