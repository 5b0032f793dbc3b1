package core

import (
	"codevault/internal/chain"
	"codevault/internal/repository"
	"context"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name Repository . Repository
type Repository interface {
	UpsertUser(ctx context.Context, user repository.User) (repository.User, bool, error)
	GetUserByWallet(ctx context.Context, walletAddress string) (repository.User, error)

	CreateProject(ctx context.Context, project repository.Project) (repository.Project, error)
	GetProjectByID(ctx context.Context, id string) (repository.Project, error)
	UpdateProject(ctx context.Context, project repository.Project) (repository.Project, error)
	ListPublishedProjects(ctx context.Context) ([]repository.Project, error)
	ListProjectsByOwner(ctx context.Context, walletAddress string) ([]repository.Project, error)

	UpsertAccess(ctx context.Context, grant repository.Access) (repository.Access, error)
	ListAccessForProjectWallet(ctx context.Context, projectID, walletAddress string) ([]repository.Access, error)
	ListAccessByWallet(ctx context.Context, walletAddress string) ([]repository.Access, error)

	CreateTransaction(ctx context.Context, txn repository.Transaction) (repository.Transaction, error)
	GetTransactionByID(ctx context.Context, id string) (repository.Transaction, error)
	ConfirmTransactionAndGrant(ctx context.Context, id string, txHash string, blockNumber int64) (repository.Transaction, bool, error)
	FailTransaction(ctx context.Context, id string) (repository.Transaction, bool, error)
	ListTransactionsByWallet(ctx context.Context, walletAddress string) ([]repository.Transaction, error)
	ListTransactionsByProject(ctx context.Context, projectID string) ([]repository.Transaction, error)
}

//counterfeiter:generate -o fake -fake-name ChainVerifier . ChainVerifier
type ChainVerifier interface {
	VerifyTransaction(ctx context.Context, txHash string) (chain.Confirmation, error)
}
