package core

import (
	"codevault/internal/chain"
	"codevault/internal/db"
	"codevault/internal/repository"
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var timeNow = time.Now

var ErrInvalidID error = errors.New("invalid id")
var ErrUserNotFound error = errors.New("user not found")
var ErrProjectNotFound error = errors.New("project not found")
var ErrTransactionNotFound error = errors.New("transaction not found")
var ErrInvalidAccessType error = errors.New(`accessType must be "view" or "download"`)
var ErrInvalidTransactionType error = errors.New(`type must be "view_purchase" or "download_purchase"`)
var ErrNegativeAmount error = errors.New("amount must not be negative")
var ErrNotProjectOwner error = errors.New("caller is not the project owner")
var ErrDuplicateTxHash error = errors.New("transaction hash already recorded")
var ErrTransactionFinalized error = errors.New("transaction already finalized")
var ErrPaymentNotVerified error = errors.New("payment could not be verified on chain")

// Vault implements the marketplace rules: user sync, project listings,
// access resolution and the purchase transaction lifecycle.
type Vault struct {
	logs     *zap.SugaredLogger
	repo     Repository
	verifier ChainVerifier
}

// NewVault wires the service. verifier may be nil, in which case confirm
// operations trust the supplied payment proof without a chain lookup.
func NewVault(logger *zap.SugaredLogger, repo Repository, verifier ChainVerifier) *Vault {
	return &Vault{
		logs:     logger,
		repo:     repo,
		verifier: verifier,
	}
}

// SyncUser finds or creates the user for an identity-provider subject.
// The second return value reports whether the user was created.
func (v *Vault) SyncUser(ctx context.Context, msg SyncUserMessage) (User, bool, error) {
	user, created, err := v.repo.UpsertUser(ctx, repository.User{
		IdentitySubject: msg.IdentitySubject,
		WalletAddress:   normalizeWallet(msg.WalletAddress),
		Email:           strings.ToLower(strings.TrimSpace(msg.Email)),
	})
	if err != nil {
		return User{}, false, fmt.Errorf("upsert user: %w", err)
	}

	if created {
		v.logs.Infow("user created", "identitySubject", user.IdentitySubject, "wallet", user.WalletAddress)
	}

	return userFromRepo(user), created, nil
}

func (v *Vault) GetUserByWallet(ctx context.Context, walletAddress string) (User, error) {
	user, err := v.repo.GetUserByWallet(ctx, normalizeWallet(walletAddress))
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return User{}, ErrUserNotFound
		}
		return User{}, fmt.Errorf("get user by wallet: %w", err)
	}

	return userFromRepo(user), nil
}

func (v *Vault) CreateProject(ctx context.Context, msg ProjectMessage) (Project, error) {
	if msg.PriceView < 0 || msg.PriceDownload < 0 {
		return Project{}, ErrNegativeAmount
	}

	project, err := v.repo.CreateProject(ctx, repository.Project{
		Title:              msg.Title,
		Description:        msg.Description,
		OwnerWalletAddress: normalizeWallet(msg.OwnerWalletAddress),
		PriceView:          msg.PriceView,
		PriceDownload:      msg.PriceDownload,
		IsPublished:        msg.IsPublished,
		Technologies:       msg.Technologies,
		Images:             msg.Images,
		ArchiveURL:         msg.ArchiveURL,
	})
	if err != nil {
		return Project{}, fmt.Errorf("create project: %w", err)
	}

	v.logs.Infow("project created", "projectId", project.ID, "owner", project.OwnerWalletAddress)

	return projectFromRepo(project), nil
}

func (v *Vault) GetProject(ctx context.Context, projectID string) (Project, error) {
	project, err := v.findProject(ctx, projectID)
	if err != nil {
		return Project{}, err
	}

	return projectFromRepo(project), nil
}

func (v *Vault) ListPublishedProjects(ctx context.Context) ([]Project, error) {
	projects, err := v.repo.ListPublishedProjects(ctx)
	if err != nil {
		return nil, fmt.Errorf("list published projects: %w", err)
	}

	records := make([]Project, len(projects))
	for i, p := range projects {
		records[i] = projectFromRepo(p)
	}
	return records, nil
}

func (v *Vault) ListProjectsByOwner(ctx context.Context, walletAddress string) ([]Project, error) {
	projects, err := v.repo.ListProjectsByOwner(ctx, normalizeWallet(walletAddress))
	if err != nil {
		return nil, fmt.Errorf("list projects by owner: %w", err)
	}

	records := make([]Project, len(projects))
	for i, p := range projects {
		records[i] = projectFromRepo(p)
	}
	return records, nil
}

// UpdateProject applies a partial update. Only the owner wallet may mutate
// a project.
func (v *Vault) UpdateProject(ctx context.Context, projectID, callerWallet string, msg UpdateProjectMessage) (Project, error) {
	project, err := v.findProject(ctx, projectID)
	if err != nil {
		return Project{}, err
	}

	if project.OwnerWalletAddress != normalizeWallet(callerWallet) {
		return Project{}, ErrNotProjectOwner
	}

	if msg.Title != nil {
		project.Title = *msg.Title
	}
	if msg.Description != nil {
		project.Description = *msg.Description
	}
	if msg.PriceView != nil {
		if *msg.PriceView < 0 {
			return Project{}, ErrNegativeAmount
		}
		project.PriceView = *msg.PriceView
	}
	if msg.PriceDownload != nil {
		if *msg.PriceDownload < 0 {
			return Project{}, ErrNegativeAmount
		}
		project.PriceDownload = *msg.PriceDownload
	}
	if msg.IsPublished != nil {
		project.IsPublished = *msg.IsPublished
	}
	if msg.Technologies != nil {
		project.Technologies = msg.Technologies
	}
	if msg.Images != nil {
		project.Images = msg.Images
	}
	if msg.ArchiveURL != nil {
		project.ArchiveURL = *msg.ArchiveURL
	}

	updated, err := v.repo.UpdateProject(ctx, project)
	if err != nil {
		return Project{}, fmt.Errorf("update project: %w", err)
	}

	return projectFromRepo(updated), nil
}

// CheckAccess resolves the effective entitlement for a (project, wallet)
// pair. The owner check comes first and short-circuits the access lookup
// entirely.
func (v *Vault) CheckAccess(ctx context.Context, projectID, walletAddress string) (Entitlement, error) {
	project, err := v.findProject(ctx, projectID)
	if err != nil {
		return Entitlement{}, err
	}

	wallet := normalizeWallet(walletAddress)

	if project.OwnerWalletAddress == wallet {
		return Entitlement{
			HasViewAccess:     true,
			HasDownloadAccess: true,
			IsOwner:           true,
		}, nil
	}

	grants, err := v.repo.ListAccessForProjectWallet(ctx, project.ID, wallet)
	if err != nil {
		return Entitlement{}, fmt.Errorf("list access records: %w", err)
	}

	hasDownload := false
	hasView := false
	for _, g := range grants {
		if g.AccessType == repository.AccessTypeDownload {
			hasDownload = true
		}
		if g.AccessType == repository.AccessTypeView {
			hasView = true
		}
	}

	return Entitlement{
		// download implies view
		HasViewAccess:     hasView || hasDownload,
		HasDownloadAccess: hasDownload,
		IsOwner:           false,
	}, nil
}

// GrantAccess upserts the unique (project, wallet, access type) record.
// Replays refresh the grant rather than duplicating it.
func (v *Vault) GrantAccess(ctx context.Context, msg GrantMessage) (Access, error) {
	if msg.AccessType != repository.AccessTypeView && msg.AccessType != repository.AccessTypeDownload {
		return Access{}, ErrInvalidAccessType
	}

	project, err := v.findProject(ctx, msg.ProjectID)
	if err != nil {
		return Access{}, err
	}

	grant, err := v.repo.UpsertAccess(ctx, repository.Access{
		ProjectID:       project.ID,
		WalletAddress:   normalizeWallet(msg.WalletAddress),
		AccessType:      msg.AccessType,
		GrantedAt:       timeNow(),
		TxHash:          msg.TxHash,
		OnChainVerified: msg.TxHash != "",
	})
	if err != nil {
		return Access{}, fmt.Errorf("upsert access: %w", err)
	}

	v.logs.Infow("access granted",
		"projectId", grant.ProjectID,
		"wallet", grant.WalletAddress,
		"accessType", grant.AccessType,
		"onChainVerified", grant.OnChainVerified)

	return accessFromRepo(grant), nil
}

func (v *Vault) ListWalletAccess(ctx context.Context, walletAddress string) ([]Access, error) {
	grants, err := v.repo.ListAccessByWallet(ctx, normalizeWallet(walletAddress))
	if err != nil {
		return nil, fmt.Errorf("list access by wallet: %w", err)
	}

	records := make([]Access, len(grants))
	for i, g := range grants {
		records[i] = accessFromRepo(g)
	}
	return records, nil
}

// CreateTransaction records a purchase intent in the pending state. No
// access is granted until the transaction confirms.
func (v *Vault) CreateTransaction(ctx context.Context, msg CreateTransactionMessage) (Transaction, error) {
	if msg.Type != repository.TypeViewPurchase && msg.Type != repository.TypeDownloadPurchase {
		return Transaction{}, ErrInvalidTransactionType
	}
	if msg.Amount < 0 {
		return Transaction{}, ErrNegativeAmount
	}

	project, err := v.findProject(ctx, msg.ProjectID)
	if err != nil {
		return Transaction{}, err
	}

	currency := msg.Currency
	if currency == "" {
		currency = "USD"
	}

	var txHash *string
	if msg.TxHash != "" {
		txHash = &msg.TxHash
	}

	txn, err := v.repo.CreateTransaction(ctx, repository.Transaction{
		WalletAddress: normalizeWallet(msg.WalletAddress),
		ProjectID:     project.ID,
		Amount:        msg.Amount,
		Currency:      currency,
		Type:          msg.Type,
		TxHash:        txHash,
		ChainID:       msg.ChainID,
	})
	if err != nil {
		if errors.Is(err, db.ErrDuplicateKey) {
			return Transaction{}, ErrDuplicateTxHash
		}
		return Transaction{}, fmt.Errorf("create transaction: %w", err)
	}

	v.logs.Infow("transaction created",
		"transactionId", txn.ID,
		"projectId", txn.ProjectID,
		"wallet", txn.WalletAddress,
		"type", txn.Type,
		"amount", txn.Amount)

	return transactionFromRepo(txn), nil
}

// ConfirmTransaction moves a pending transaction to confirmed and grants
// the purchased access in one atomic store transaction. Confirming an
// already-confirmed transaction is a no-op that returns the record
// unchanged. When a chain verifier is configured and a tx hash is
// supplied, the receipt is checked first; an unverifiable proof fails the
// transaction instead.
func (v *Vault) ConfirmTransaction(ctx context.Context, transactionID, txHash string, blockNumber int64) (Transaction, error) {
	if err := validateID(transactionID); err != nil {
		return Transaction{}, err
	}

	if v.verifier != nil && txHash != "" {
		conf, err := v.verifier.VerifyTransaction(ctx, txHash)
		if err != nil {
			if errors.Is(err, chain.ErrTxNotFound) || errors.Is(err, chain.ErrTxReverted) {
				v.logs.Errorw("payment proof rejected", "transactionId", transactionID, "txHash", txHash, "error", err)
				if _, _, failErr := v.repo.FailTransaction(ctx, transactionID); failErr != nil {
					v.logs.Errorw("failed to mark transaction failed", "transactionId", transactionID, "error", failErr)
				}
				return Transaction{}, fmt.Errorf("%w: %s", ErrPaymentNotVerified, err)
			}
			return Transaction{}, fmt.Errorf("verify payment proof: %w", err)
		}
		if blockNumber == 0 {
			blockNumber = conf.BlockNumber
		}
	}

	txn, transitioned, err := v.repo.ConfirmTransactionAndGrant(ctx, transactionID, txHash, blockNumber)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return Transaction{}, ErrTransactionNotFound
		}
		if errors.Is(err, db.ErrDuplicateKey) {
			return Transaction{}, ErrDuplicateTxHash
		}
		return Transaction{}, fmt.Errorf("confirm transaction: %w", err)
	}

	if !transitioned {
		if txn.Status == repository.StatusFailed {
			return Transaction{}, ErrTransactionFinalized
		}
		// already confirmed; replay is a no-op
		return transactionFromRepo(txn), nil
	}

	v.logs.Infow("transaction confirmed and access granted",
		"transactionId", txn.ID,
		"projectId", txn.ProjectID,
		"wallet", txn.WalletAddress,
		"type", txn.Type)

	return transactionFromRepo(txn), nil
}

// FailTransaction moves a pending transaction to failed. Failing an
// already-failed transaction is a no-op; failing a confirmed one is a
// conflict.
func (v *Vault) FailTransaction(ctx context.Context, transactionID string) (Transaction, error) {
	if err := validateID(transactionID); err != nil {
		return Transaction{}, err
	}

	txn, transitioned, err := v.repo.FailTransaction(ctx, transactionID)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return Transaction{}, ErrTransactionNotFound
		}
		return Transaction{}, fmt.Errorf("fail transaction: %w", err)
	}

	if !transitioned && txn.Status == repository.StatusConfirmed {
		return Transaction{}, ErrTransactionFinalized
	}

	if transitioned {
		v.logs.Infow("transaction failed", "transactionId", txn.ID, "wallet", txn.WalletAddress)
	}

	return transactionFromRepo(txn), nil
}

func (v *Vault) ListWalletTransactions(ctx context.Context, walletAddress string) ([]Transaction, error) {
	txns, err := v.repo.ListTransactionsByWallet(ctx, normalizeWallet(walletAddress))
	if err != nil {
		return nil, fmt.Errorf("list transactions by wallet: %w", err)
	}

	return transactionsFromRepo(txns), nil
}

func (v *Vault) ListProjectTransactions(ctx context.Context, projectID string) ([]Transaction, error) {
	if err := validateID(projectID); err != nil {
		return nil, err
	}

	txns, err := v.repo.ListTransactionsByProject(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("list transactions by project: %w", err)
	}

	return transactionsFromRepo(txns), nil
}

func (v *Vault) findProject(ctx context.Context, projectID string) (repository.Project, error) {
	if err := validateID(projectID); err != nil {
		return repository.Project{}, err
	}

	project, err := v.repo.GetProjectByID(ctx, projectID)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return repository.Project{}, ErrProjectNotFound
		}
		return repository.Project{}, fmt.Errorf("get project: %w", err)
	}

	return project, nil
}

func validateID(id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidID, id)
	}
	return nil
}

func normalizeWallet(addr string) string {
	return strings.ToLower(strings.TrimSpace(addr))
}
