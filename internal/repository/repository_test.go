package repository_test

import (
	"context"
	"path/filepath"
	"time"

	"codevault/internal/db"
	"codevault/internal/repository"

	"github.com/google/uuid"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

// The repository runs against a real sqlite store so the upsert clauses
// and the guarded status transitions are exercised as actual SQL.
var _ = Describe("VaultRepository", func() {
	var (
		store *db.Store
		repo  *repository.VaultRepository
		ctx   context.Context
	)

	BeforeEach(func() {
		var err error
		store, err = db.NewSQLiteStore(filepath.Join(GinkgoT().TempDir(), "vault.db"))
		Expect(err).NotTo(HaveOccurred())

		repo = repository.NewVaultRepository(store)
		Expect(repo.MigrateTables()).To(Succeed())

		ctx = context.Background()
	})

	AfterEach(func() {
		Expect(store.Close()).To(Succeed())
	})

	Describe("UpsertUser", func() {
		It("creates a user on first sync", func() {
			user, created, err := repo.UpsertUser(ctx, repository.User{
				IdentitySubject: "auth0|abc",
				WalletAddress:   "0xaa11",
				Email:           "dev@example.com",
			})

			Expect(err).NotTo(HaveOccurred())
			Expect(created).To(BeTrue())
			Expect(user.ID).NotTo(BeEmpty())
		})

		It("resolves a repeat sync to the existing row", func() {
			first, _, err := repo.UpsertUser(ctx, repository.User{
				IdentitySubject: "auth0|abc",
				WalletAddress:   "0xaa11",
				Email:           "dev@example.com",
			})
			Expect(err).NotTo(HaveOccurred())

			second, created, err := repo.UpsertUser(ctx, repository.User{
				IdentitySubject: "auth0|abc",
				WalletAddress:   "0xbb22",
			})
			Expect(err).NotTo(HaveOccurred())
			Expect(created).To(BeFalse())
			Expect(second.ID).To(Equal(first.ID))
			Expect(second.WalletAddress).To(Equal("0xbb22"))
			// a sync without an email keeps the stored one
			Expect(second.Email).To(Equal("dev@example.com"))
		})

		It("overwrites the stored email when a new one arrives", func() {
			_, _, err := repo.UpsertUser(ctx, repository.User{
				IdentitySubject: "auth0|abc",
				WalletAddress:   "0xaa11",
				Email:           "old@example.com",
			})
			Expect(err).NotTo(HaveOccurred())

			user, _, err := repo.UpsertUser(ctx, repository.User{
				IdentitySubject: "auth0|abc",
				WalletAddress:   "0xaa11",
				Email:           "new@example.com",
			})
			Expect(err).NotTo(HaveOccurred())
			Expect(user.Email).To(Equal("new@example.com"))
		})
	})

	Describe("GetUserByWallet", func() {
		It("returns the store's not found error for unknown wallets", func() {
			_, err := repo.GetUserByWallet(ctx, "0xmissing")
			Expect(err).To(MatchError(db.ErrNotFound))
		})
	})

	Describe("UpsertAccess", func() {
		var projectID string

		BeforeEach(func() {
			projectID = uuid.NewString()
		})

		It("keeps one row per project, wallet and access type", func() {
			first, err := repo.UpsertAccess(ctx, repository.Access{
				ProjectID:     projectID,
				WalletAddress: "0xbuyer",
				AccessType:    repository.AccessTypeView,
				GrantedAt:     time.Now().UTC(),
			})
			Expect(err).NotTo(HaveOccurred())

			second, err := repo.UpsertAccess(ctx, repository.Access{
				ProjectID:     projectID,
				WalletAddress: "0xbuyer",
				AccessType:    repository.AccessTypeView,
				GrantedAt:     time.Now().UTC(),
			})
			Expect(err).NotTo(HaveOccurred())
			Expect(second.ID).To(Equal(first.ID))

			grants, err := repo.ListAccessForProjectWallet(ctx, projectID, "0xbuyer")
			Expect(err).NotTo(HaveOccurred())
			Expect(grants).To(HaveLen(1))
		})

		It("stores view and download grants side by side", func() {
			for _, accessType := range []string{repository.AccessTypeView, repository.AccessTypeDownload} {
				_, err := repo.UpsertAccess(ctx, repository.Access{
					ProjectID:     projectID,
					WalletAddress: "0xbuyer",
					AccessType:    accessType,
					GrantedAt:     time.Now().UTC(),
				})
				Expect(err).NotTo(HaveOccurred())
			}

			grants, err := repo.ListAccessForProjectWallet(ctx, projectID, "0xbuyer")
			Expect(err).NotTo(HaveOccurred())
			Expect(grants).To(HaveLen(2))
		})

		It("never downgrades a verified grant and never erases its hash", func() {
			_, err := repo.UpsertAccess(ctx, repository.Access{
				ProjectID:       projectID,
				WalletAddress:   "0xbuyer",
				AccessType:      repository.AccessTypeDownload,
				GrantedAt:       time.Now().UTC(),
				TxHash:          "0xfeed",
				OnChainVerified: true,
			})
			Expect(err).NotTo(HaveOccurred())

			replay, err := repo.UpsertAccess(ctx, repository.Access{
				ProjectID:     projectID,
				WalletAddress: "0xbuyer",
				AccessType:    repository.AccessTypeDownload,
				GrantedAt:     time.Now().UTC(),
			})
			Expect(err).NotTo(HaveOccurred())
			Expect(replay.OnChainVerified).To(BeTrue())
			Expect(replay.TxHash).To(Equal("0xfeed"))
		})
	})

	Describe("CreateTransaction", func() {
		var projectID string

		BeforeEach(func() {
			projectID = uuid.NewString()
		})

		It("records the transaction as pending", func() {
			txn, err := repo.CreateTransaction(ctx, repository.Transaction{
				WalletAddress: "0xbuyer",
				ProjectID:     projectID,
				Amount:        4.99,
				Currency:      "USD",
				Type:          repository.TypeViewPurchase,
			})

			Expect(err).NotTo(HaveOccurred())
			Expect(txn.Status).To(Equal(repository.StatusPending))
			Expect(txn.ID).NotTo(BeEmpty())
		})

		It("rejects a tx hash that was already recorded", func() {
			hash := "0xfeed"
			_, err := repo.CreateTransaction(ctx, repository.Transaction{
				WalletAddress: "0xbuyer",
				ProjectID:     projectID,
				Amount:        4.99,
				Currency:      "USD",
				Type:          repository.TypeViewPurchase,
				TxHash:        &hash,
			})
			Expect(err).NotTo(HaveOccurred())

			sameHash := "0xfeed"
			_, err = repo.CreateTransaction(ctx, repository.Transaction{
				WalletAddress: "0xother",
				ProjectID:     projectID,
				Amount:        4.99,
				Currency:      "USD",
				Type:          repository.TypeViewPurchase,
				TxHash:        &sameHash,
			})
			Expect(err).To(MatchError(db.ErrDuplicateKey))
		})

		It("allows many transactions without a tx hash", func() {
			for i := 0; i < 2; i++ {
				_, err := repo.CreateTransaction(ctx, repository.Transaction{
					WalletAddress: "0xbuyer",
					ProjectID:     projectID,
					Amount:        4.99,
					Currency:      "USD",
					Type:          repository.TypeViewPurchase,
				})
				Expect(err).NotTo(HaveOccurred())
			}

			txns, err := repo.ListTransactionsByWallet(ctx, "0xbuyer")
			Expect(err).NotTo(HaveOccurred())
			Expect(txns).To(HaveLen(2))
		})
	})

	Describe("ConfirmTransactionAndGrant", func() {
		var (
			projectID string
			pending   repository.Transaction
		)

		BeforeEach(func() {
			projectID = uuid.NewString()

			var err error
			pending, err = repo.CreateTransaction(ctx, repository.Transaction{
				WalletAddress: "0xbuyer",
				ProjectID:     projectID,
				Amount:        9.99,
				Currency:      "USD",
				Type:          repository.TypeDownloadPurchase,
			})
			Expect(err).NotTo(HaveOccurred())
		})

		It("confirms the transaction and grants the purchased access", func() {
			txn, transitioned, err := repo.ConfirmTransactionAndGrant(ctx, pending.ID, "0xfeed", 42)

			Expect(err).NotTo(HaveOccurred())
			Expect(transitioned).To(BeTrue())
			Expect(txn.Status).To(Equal(repository.StatusConfirmed))
			Expect(txn.TxHash).NotTo(BeNil())
			Expect(*txn.TxHash).To(Equal("0xfeed"))
			Expect(txn.BlockNumber).To(Equal(int64(42)))

			grants, err := repo.ListAccessForProjectWallet(ctx, projectID, "0xbuyer")
			Expect(err).NotTo(HaveOccurred())
			Expect(grants).To(HaveLen(1))
			Expect(grants[0].AccessType).To(Equal(repository.AccessTypeDownload))
			Expect(grants[0].TxHash).To(Equal("0xfeed"))
			Expect(grants[0].OnChainVerified).To(BeTrue())
		})

		It("grants view access for a view purchase", func() {
			viewTxn, err := repo.CreateTransaction(ctx, repository.Transaction{
				WalletAddress: "0xreader",
				ProjectID:     projectID,
				Amount:        2.99,
				Currency:      "USD",
				Type:          repository.TypeViewPurchase,
			})
			Expect(err).NotTo(HaveOccurred())

			_, _, err = repo.ConfirmTransactionAndGrant(ctx, viewTxn.ID, "", 0)
			Expect(err).NotTo(HaveOccurred())

			grants, err := repo.ListAccessForProjectWallet(ctx, projectID, "0xreader")
			Expect(err).NotTo(HaveOccurred())
			Expect(grants).To(HaveLen(1))
			Expect(grants[0].AccessType).To(Equal(repository.AccessTypeView))
			Expect(grants[0].OnChainVerified).To(BeFalse())
		})

		It("makes the replay of a confirm a no-op", func() {
			_, transitioned, err := repo.ConfirmTransactionAndGrant(ctx, pending.ID, "0xfeed", 42)
			Expect(err).NotTo(HaveOccurred())
			Expect(transitioned).To(BeTrue())

			txn, transitioned, err := repo.ConfirmTransactionAndGrant(ctx, pending.ID, "0xfeed", 42)
			Expect(err).NotTo(HaveOccurred())
			Expect(transitioned).To(BeFalse())
			Expect(txn.Status).To(Equal(repository.StatusConfirmed))

			grants, err := repo.ListAccessForProjectWallet(ctx, projectID, "0xbuyer")
			Expect(err).NotTo(HaveOccurred())
			Expect(grants).To(HaveLen(1))
		})

		It("does not confirm a failed transaction", func() {
			_, transitioned, err := repo.FailTransaction(ctx, pending.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(transitioned).To(BeTrue())

			txn, transitioned, err := repo.ConfirmTransactionAndGrant(ctx, pending.ID, "0xfeed", 42)
			Expect(err).NotTo(HaveOccurred())
			Expect(transitioned).To(BeFalse())
			Expect(txn.Status).To(Equal(repository.StatusFailed))

			grants, err := repo.ListAccessForProjectWallet(ctx, projectID, "0xbuyer")
			Expect(err).NotTo(HaveOccurred())
			Expect(grants).To(BeEmpty())
		})

		It("returns not found for an unknown transaction", func() {
			_, _, err := repo.ConfirmTransactionAndGrant(ctx, uuid.NewString(), "", 0)
			Expect(err).To(MatchError(db.ErrNotFound))
		})
	})

	Describe("FailTransaction", func() {
		It("moves a pending transaction to failed exactly once", func() {
			pending, err := repo.CreateTransaction(ctx, repository.Transaction{
				WalletAddress: "0xbuyer",
				ProjectID:     uuid.NewString(),
				Amount:        9.99,
				Currency:      "USD",
				Type:          repository.TypeViewPurchase,
			})
			Expect(err).NotTo(HaveOccurred())

			txn, transitioned, err := repo.FailTransaction(ctx, pending.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(transitioned).To(BeTrue())
			Expect(txn.Status).To(Equal(repository.StatusFailed))

			_, transitioned, err = repo.FailTransaction(ctx, pending.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(transitioned).To(BeFalse())
		})
	})

	Describe("Projects", func() {
		It("lists only published projects, newest first", func() {
			published, err := repo.CreateProject(ctx, repository.Project{
				Title:              "Published",
				Description:        "desc",
				OwnerWalletAddress: "0xowner",
				IsPublished:        true,
			})
			Expect(err).NotTo(HaveOccurred())

			_, err = repo.CreateProject(ctx, repository.Project{
				Title:              "Draft",
				Description:        "desc",
				OwnerWalletAddress: "0xowner",
			})
			Expect(err).NotTo(HaveOccurred())

			projects, err := repo.ListPublishedProjects(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(projects).To(HaveLen(1))
			Expect(projects[0].ID).To(Equal(published.ID))

			owned, err := repo.ListProjectsByOwner(ctx, "0xowner")
			Expect(err).NotTo(HaveOccurred())
			Expect(owned).To(HaveLen(2))
		})

		It("round-trips the serialized list fields", func() {
			created, err := repo.CreateProject(ctx, repository.Project{
				Title:              "Stacked",
				Description:        "desc",
				OwnerWalletAddress: "0xowner",
				Technologies:       []string{"go", "postgres"},
				Images:             []string{"cover.png"},
			})
			Expect(err).NotTo(HaveOccurred())

			loaded, err := repo.GetProjectByID(ctx, created.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(loaded.Technologies).To(Equal([]string{"go", "postgres"}))
			Expect(loaded.Images).To(Equal([]string{"cover.png"}))
		})

		It("persists partial updates through Save", func() {
			created, err := repo.CreateProject(ctx, repository.Project{
				Title:              "Before",
				Description:        "desc",
				OwnerWalletAddress: "0xowner",
			})
			Expect(err).NotTo(HaveOccurred())

			created.Title = "After"
			created.IsPublished = true
			updated, err := repo.UpdateProject(ctx, created)
			Expect(err).NotTo(HaveOccurred())
			Expect(updated.Title).To(Equal("After"))

			loaded, err := repo.GetProjectByID(ctx, created.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(loaded.Title).To(Equal("After"))
			Expect(loaded.IsPublished).To(BeTrue())
		})
	})
})
