package repository

import (
	"codevault/internal/db"
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// VaultRepository persists marketplace entities through an injected store.
type VaultRepository struct {
	store *db.Store
}

func NewVaultRepository(store *db.Store) *VaultRepository {
	return &VaultRepository{
		store: store,
	}
}

func (r *VaultRepository) MigrateTables() error {
	err := r.store.Migrate(&User{}, &Project{}, &Access{}, &Transaction{})
	if err != nil {
		return fmt.Errorf("migrate table(s): %w", err)
	}

	return nil
}

func (r *VaultRepository) gorm(ctx context.Context) *gorm.DB {
	return r.store.DB().WithContext(ctx)
}

// UpsertUser is an atomic find-or-create keyed by identity subject. A
// concurrent first sync for the same subject resolves to a single row.
// The second return value reports whether a new user was created.
func (r *VaultRepository) UpsertUser(ctx context.Context, user User) (User, bool, error) {
	user.ID = uuid.NewString()

	err := r.gorm(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "identity_subject"}},
		DoUpdates: clause.Assignments(map[string]any{
			"wallet_address": user.WalletAddress,
			// a sync without an email must not erase a stored one
			"email":      gorm.Expr("CASE WHEN excluded.email = '' THEN users.email ELSE excluded.email END"),
			"updated_at": time.Now().UTC(),
		}),
	}).Create(&user).Error
	if err != nil {
		return User{}, false, fmt.Errorf("upsert user: %w", db.Translate(err))
	}

	var saved User
	err = r.gorm(ctx).First(&saved, "identity_subject = ?", user.IdentitySubject).Error
	if err != nil {
		return User{}, false, fmt.Errorf("reload user: %w", db.Translate(err))
	}

	// on conflict the pre-existing row keeps its id
	created := saved.ID == user.ID

	return saved, created, nil
}

func (r *VaultRepository) GetUserByWallet(ctx context.Context, walletAddress string) (User, error) {
	var user User
	err := r.gorm(ctx).First(&user, "wallet_address = ?", walletAddress).Error
	if err != nil {
		return User{}, fmt.Errorf("get user by wallet: %w", db.Translate(err))
	}

	return user, nil
}

func (r *VaultRepository) CreateProject(ctx context.Context, project Project) (Project, error) {
	project.ID = uuid.NewString()

	err := r.gorm(ctx).Create(&project).Error
	if err != nil {
		return Project{}, fmt.Errorf("create project: %w", db.Translate(err))
	}

	return project, nil
}

func (r *VaultRepository) GetProjectByID(ctx context.Context, id string) (Project, error) {
	var project Project
	err := r.gorm(ctx).First(&project, "id = ?", id).Error
	if err != nil {
		return Project{}, fmt.Errorf("get project by id: %w", db.Translate(err))
	}

	return project, nil
}

func (r *VaultRepository) UpdateProject(ctx context.Context, project Project) (Project, error) {
	err := r.gorm(ctx).Save(&project).Error
	if err != nil {
		return Project{}, fmt.Errorf("update project: %w", db.Translate(err))
	}

	return project, nil
}

func (r *VaultRepository) ListPublishedProjects(ctx context.Context) ([]Project, error) {
	projects := []Project{}
	err := r.gorm(ctx).Where("is_published = ?", true).Order("created_at DESC").Find(&projects).Error
	if err != nil {
		return nil, fmt.Errorf("list published projects: %w", db.Translate(err))
	}

	return projects, nil
}

func (r *VaultRepository) ListProjectsByOwner(ctx context.Context, walletAddress string) ([]Project, error) {
	projects := []Project{}
	err := r.gorm(ctx).Where("owner_wallet_address = ?", walletAddress).Order("created_at DESC").Find(&projects).Error
	if err != nil {
		return nil, fmt.Errorf("list projects by owner: %w", db.Translate(err))
	}

	return projects, nil
}

// UpsertAccess writes the unique (project, wallet, access type) grant.
// Replays refresh granted_at; they never downgrade on_chain_verified and
// never erase a stored tx hash.
func (r *VaultRepository) UpsertAccess(ctx context.Context, grant Access) (Access, error) {
	err := upsertAccess(r.gorm(ctx), grant)
	if err != nil {
		return Access{}, fmt.Errorf("upsert access: %w", db.Translate(err))
	}

	var saved Access
	err = r.gorm(ctx).
		First(&saved, "project_id = ? AND wallet_address = ? AND access_type = ?",
			grant.ProjectID, grant.WalletAddress, grant.AccessType).Error
	if err != nil {
		return Access{}, fmt.Errorf("reload access: %w", db.Translate(err))
	}

	return saved, nil
}

func upsertAccess(tx *gorm.DB, grant Access) error {
	grant.ID = uuid.NewString()

	return tx.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "project_id"}, {Name: "wallet_address"}, {Name: "access_type"}},
		DoUpdates: clause.Assignments(map[string]any{
			"granted_at":        grant.GrantedAt,
			"tx_hash":           gorm.Expr("CASE WHEN excluded.tx_hash = '' THEN accesses.tx_hash ELSE excluded.tx_hash END"),
			"on_chain_verified": gorm.Expr("accesses.on_chain_verified OR excluded.on_chain_verified"),
		}),
	}).Create(&grant).Error
}

func (r *VaultRepository) ListAccessForProjectWallet(ctx context.Context, projectID, walletAddress string) ([]Access, error) {
	grants := []Access{}
	err := r.gorm(ctx).
		Where("project_id = ? AND wallet_address = ?", projectID, walletAddress).
		Find(&grants).Error
	if err != nil {
		return nil, fmt.Errorf("list access for project and wallet: %w", db.Translate(err))
	}

	return grants, nil
}

func (r *VaultRepository) ListAccessByWallet(ctx context.Context, walletAddress string) ([]Access, error) {
	grants := []Access{}
	err := r.gorm(ctx).
		Where("wallet_address = ?", walletAddress).
		Order("granted_at DESC").
		Find(&grants).Error
	if err != nil {
		return nil, fmt.Errorf("list access by wallet: %w", db.Translate(err))
	}

	return grants, nil
}

func (r *VaultRepository) CreateTransaction(ctx context.Context, txn Transaction) (Transaction, error) {
	txn.ID = uuid.NewString()
	txn.Status = StatusPending

	err := r.gorm(ctx).Create(&txn).Error
	if err != nil {
		return Transaction{}, fmt.Errorf("create transaction: %w", db.Translate(err))
	}

	return txn, nil
}

func (r *VaultRepository) GetTransactionByID(ctx context.Context, id string) (Transaction, error) {
	var txn Transaction
	err := r.gorm(ctx).First(&txn, "id = ?", id).Error
	if err != nil {
		return Transaction{}, fmt.Errorf("get transaction by id: %w", db.Translate(err))
	}

	return txn, nil
}

// ConfirmTransactionAndGrant moves a pending transaction to confirmed and
// upserts the derived access grant as one database transaction. The status
// update is guarded on the pending state so the transition happens exactly
// once; a replay finds zero affected rows and returns the current record
// with transitioned == false.
func (r *VaultRepository) ConfirmTransactionAndGrant(ctx context.Context, id string, txHash string, blockNumber int64) (Transaction, bool, error) {
	var txn Transaction
	transitioned := false

	err := r.gorm(ctx).Transaction(func(tx *gorm.DB) error {
		updates := map[string]any{"status": StatusConfirmed}
		if txHash != "" {
			updates["tx_hash"] = txHash
		}
		if blockNumber > 0 {
			updates["block_number"] = blockNumber
		}

		res := tx.Model(&Transaction{}).
			Where("id = ? AND status = ?", id, StatusPending).
			Updates(updates)
		if res.Error != nil {
			return fmt.Errorf("confirm transaction: %w", res.Error)
		}

		if err := tx.First(&txn, "id = ?", id).Error; err != nil {
			return fmt.Errorf("reload transaction: %w", err)
		}

		if res.RowsAffected == 0 {
			// already confirmed or failed; no side effects on replay
			return nil
		}
		transitioned = true

		accessType := AccessTypeView
		if txn.Type == TypeDownloadPurchase {
			accessType = AccessTypeDownload
		}

		grant := Access{
			ProjectID:       txn.ProjectID,
			WalletAddress:   txn.WalletAddress,
			AccessType:      accessType,
			GrantedAt:       time.Now().UTC(),
			OnChainVerified: txn.TxHash != nil && *txn.TxHash != "",
		}
		if txn.TxHash != nil {
			grant.TxHash = *txn.TxHash
		}

		if err := upsertAccess(tx, grant); err != nil {
			return fmt.Errorf("grant access: %w", err)
		}

		return nil
	})
	if err != nil {
		return Transaction{}, false, db.Translate(err)
	}

	return txn, transitioned, nil
}

// FailTransaction moves a pending transaction to failed, guarded the same
// way as the confirm transition.
func (r *VaultRepository) FailTransaction(ctx context.Context, id string) (Transaction, bool, error) {
	var txn Transaction
	transitioned := false

	err := r.gorm(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&Transaction{}).
			Where("id = ? AND status = ?", id, StatusPending).
			Update("status", StatusFailed)
		if res.Error != nil {
			return fmt.Errorf("fail transaction: %w", res.Error)
		}

		if err := tx.First(&txn, "id = ?", id).Error; err != nil {
			return fmt.Errorf("reload transaction: %w", err)
		}

		transitioned = res.RowsAffected > 0
		return nil
	})
	if err != nil {
		return Transaction{}, false, db.Translate(err)
	}

	return txn, transitioned, nil
}

func (r *VaultRepository) ListTransactionsByWallet(ctx context.Context, walletAddress string) ([]Transaction, error) {
	txns := []Transaction{}
	err := r.gorm(ctx).
		Where("wallet_address = ?", walletAddress).
		Order("created_at DESC").
		Find(&txns).Error
	if err != nil {
		return nil, fmt.Errorf("list transactions by wallet: %w", db.Translate(err))
	}

	return txns, nil
}

func (r *VaultRepository) ListTransactionsByProject(ctx context.Context, projectID string) ([]Transaction, error) {
	txns := []Transaction{}
	err := r.gorm(ctx).
		Where("project_id = ?", projectID).
		Order("created_at DESC").
		Find(&txns).Error
	if err != nil {
		return nil, fmt.Errorf("list transactions by project: %w", db.Translate(err))
	}

	return txns, nil
}
