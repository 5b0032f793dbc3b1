package core_test

import (
	"context"
	"errors"

	"codevault/internal/chain"
	"codevault/internal/core"
	"codevault/internal/core/fake"
	"codevault/internal/db"
	"codevault/internal/repository"

	"github.com/google/uuid"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
)

var _ = Describe("Vault", func() {
	var (
		fakeRepo     *fake.Repository
		fakeVerifier *fake.ChainVerifier
		fakeLogger   *zap.SugaredLogger
		ctx          context.Context

		vault *core.Vault

		fakeErr error
	)

	BeforeEach(func() {
		fakeRepo = new(fake.Repository)
		fakeVerifier = new(fake.ChainVerifier)
		fakeLogger = zap.NewNop().Sugar()
		ctx = context.Background()

		vault = core.NewVault(fakeLogger, fakeRepo, nil)

		fakeErr = errors.New("fake error")
	})

	Describe("SyncUser", func() {
		var (
			msg     core.SyncUserMessage
			user    core.User
			created bool
			err     error
		)

		BeforeEach(func() {
			msg = core.SyncUserMessage{
				IdentitySubject: "auth0|abc123",
				WalletAddress:   "0xABCDEF0123",
				Email:           " Dev@Example.COM ",
			}
		})

		JustBeforeEach(func() {
			user, created, err = vault.SyncUser(ctx, msg)
		})

		When("the subject is new", func() {
			BeforeEach(func() {
				fakeRepo.UpsertUserReturns(repository.User{
					ID:              uuid.NewString(),
					IdentitySubject: msg.IdentitySubject,
					WalletAddress:   "0xabcdef0123",
				}, true, nil)
			})

			It("creates the user with normalized wallet and email", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(created).To(BeTrue())
				Expect(user.WalletAddress).To(Equal("0xabcdef0123"))

				Expect(fakeRepo.UpsertUserCallCount()).To(Equal(1))
				_, argUser := fakeRepo.UpsertUserArgsForCall(0)
				Expect(argUser.WalletAddress).To(Equal("0xabcdef0123"))
				Expect(argUser.Email).To(Equal("dev@example.com"))
			})
		})

		When("the subject already exists", func() {
			BeforeEach(func() {
				fakeRepo.UpsertUserReturns(repository.User{
					ID:              uuid.NewString(),
					IdentitySubject: msg.IdentitySubject,
				}, false, nil)
			})

			It("reports the user as existing", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(created).To(BeFalse())
			})
		})

		When("the upsert fails", func() {
			BeforeEach(func() {
				fakeRepo.UpsertUserReturns(repository.User{}, false, fakeErr)
			})

			It("returns the error", func() {
				Expect(err).To(MatchError(fakeErr))
			})
		})
	})

	Describe("GetUserByWallet", func() {
		var (
			user core.User
			err  error
		)

		JustBeforeEach(func() {
			user, err = vault.GetUserByWallet(ctx, "0xAA11")
		})

		When("the user exists", func() {
			BeforeEach(func() {
				fakeRepo.GetUserByWalletReturns(repository.User{WalletAddress: "0xaa11"}, nil)
			})

			It("looks the wallet up lowercased", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(user.WalletAddress).To(Equal("0xaa11"))

				_, argWallet := fakeRepo.GetUserByWalletArgsForCall(0)
				Expect(argWallet).To(Equal("0xaa11"))
			})
		})

		When("the user does not exist", func() {
			BeforeEach(func() {
				fakeRepo.GetUserByWalletReturns(repository.User{}, db.ErrNotFound)
			})

			It("returns user not found", func() {
				Expect(err).To(MatchError(core.ErrUserNotFound))
			})
		})
	})

	Describe("CheckAccess", func() {
		var (
			projectID   string
			wallet      string
			entitlement core.Entitlement
			err         error
		)

		BeforeEach(func() {
			projectID = uuid.NewString()
			wallet = "0xBUYER1"

			fakeRepo.GetProjectByIDReturns(repository.Project{
				ID:                 projectID,
				OwnerWalletAddress: "0xowner1",
			}, nil)
		})

		JustBeforeEach(func() {
			entitlement, err = vault.CheckAccess(ctx, projectID, wallet)
		})

		When("the caller is the project owner", func() {
			BeforeEach(func() {
				wallet = "0xOWNER1"
			})

			It("grants everything without consulting access records", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(entitlement.IsOwner).To(BeTrue())
				Expect(entitlement.HasViewAccess).To(BeTrue())
				Expect(entitlement.HasDownloadAccess).To(BeTrue())
				Expect(fakeRepo.ListAccessForProjectWalletCallCount()).To(Equal(0))
			})
		})

		When("the wallet holds a view grant", func() {
			BeforeEach(func() {
				fakeRepo.ListAccessForProjectWalletReturns([]repository.Access{
					{AccessType: repository.AccessTypeView},
				}, nil)
			})

			It("resolves view access only", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(entitlement.HasViewAccess).To(BeTrue())
				Expect(entitlement.HasDownloadAccess).To(BeFalse())
				Expect(entitlement.IsOwner).To(BeFalse())

				_, argProject, argWallet := fakeRepo.ListAccessForProjectWalletArgsForCall(0)
				Expect(argProject).To(Equal(projectID))
				Expect(argWallet).To(Equal("0xbuyer1"))
			})
		})

		When("the wallet holds a download grant", func() {
			BeforeEach(func() {
				fakeRepo.ListAccessForProjectWalletReturns([]repository.Access{
					{AccessType: repository.AccessTypeDownload},
				}, nil)
			})

			It("resolves view access as well", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(entitlement.HasViewAccess).To(BeTrue())
				Expect(entitlement.HasDownloadAccess).To(BeTrue())
			})
		})

		When("the wallet holds no grants", func() {
			BeforeEach(func() {
				fakeRepo.ListAccessForProjectWalletReturns([]repository.Access{}, nil)
			})

			It("resolves no access", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(entitlement.HasViewAccess).To(BeFalse())
				Expect(entitlement.HasDownloadAccess).To(BeFalse())
			})
		})

		When("the project id is not a uuid", func() {
			BeforeEach(func() {
				projectID = "not-a-uuid"
			})

			It("returns invalid id", func() {
				Expect(err).To(MatchError(core.ErrInvalidID))
				Expect(fakeRepo.GetProjectByIDCallCount()).To(Equal(0))
			})
		})

		When("the project does not exist", func() {
			BeforeEach(func() {
				fakeRepo.GetProjectByIDReturns(repository.Project{}, db.ErrNotFound)
			})

			It("returns project not found", func() {
				Expect(err).To(MatchError(core.ErrProjectNotFound))
			})
		})
	})

	Describe("GrantAccess", func() {
		var (
			msg   core.GrantMessage
			grant core.Access
			err   error
		)

		BeforeEach(func() {
			msg = core.GrantMessage{
				ProjectID:     uuid.NewString(),
				WalletAddress: "0xBUYER1",
				AccessType:    repository.AccessTypeDownload,
				TxHash:        "0xfeed",
			}

			fakeRepo.GetProjectByIDReturns(repository.Project{ID: msg.ProjectID}, nil)
		})

		JustBeforeEach(func() {
			grant, err = vault.GrantAccess(ctx, msg)
		})

		When("the grant is valid", func() {
			BeforeEach(func() {
				fakeRepo.UpsertAccessReturns(repository.Access{
					ProjectID:       msg.ProjectID,
					WalletAddress:   "0xbuyer1",
					AccessType:      repository.AccessTypeDownload,
					TxHash:          msg.TxHash,
					OnChainVerified: true,
				}, nil)
			})

			It("upserts the grant with a normalized wallet", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(grant.AccessType).To(Equal(repository.AccessTypeDownload))
				Expect(grant.OnChainVerified).To(BeTrue())

				Expect(fakeRepo.UpsertAccessCallCount()).To(Equal(1))
				_, argGrant := fakeRepo.UpsertAccessArgsForCall(0)
				Expect(argGrant.WalletAddress).To(Equal("0xbuyer1"))
				Expect(argGrant.TxHash).To(Equal("0xfeed"))
				Expect(argGrant.OnChainVerified).To(BeTrue())
			})
		})

		When("no tx hash accompanies the grant", func() {
			BeforeEach(func() {
				msg.TxHash = ""
				fakeRepo.UpsertAccessReturns(repository.Access{}, nil)
			})

			It("records the grant as not chain verified", func() {
				Expect(err).NotTo(HaveOccurred())
				_, argGrant := fakeRepo.UpsertAccessArgsForCall(0)
				Expect(argGrant.OnChainVerified).To(BeFalse())
			})
		})

		When("the access type is unknown", func() {
			BeforeEach(func() {
				msg.AccessType = "upload"
			})

			It("rejects the grant before touching the store", func() {
				Expect(err).To(MatchError(core.ErrInvalidAccessType))
				Expect(fakeRepo.UpsertAccessCallCount()).To(Equal(0))
			})
		})

		When("the project does not exist", func() {
			BeforeEach(func() {
				fakeRepo.GetProjectByIDReturns(repository.Project{}, db.ErrNotFound)
			})

			It("returns project not found", func() {
				Expect(err).To(MatchError(core.ErrProjectNotFound))
			})
		})
	})

	Describe("CreateTransaction", func() {
		var (
			msg core.CreateTransactionMessage
			txn core.Transaction
			err error
		)

		BeforeEach(func() {
			msg = core.CreateTransactionMessage{
				WalletAddress: "0xBUYER1",
				ProjectID:     uuid.NewString(),
				Amount:        9.99,
				Type:          repository.TypeDownloadPurchase,
			}

			fakeRepo.GetProjectByIDReturns(repository.Project{ID: msg.ProjectID}, nil)
		})

		JustBeforeEach(func() {
			txn, err = vault.CreateTransaction(ctx, msg)
		})

		When("the purchase intent is valid", func() {
			BeforeEach(func() {
				fakeRepo.CreateTransactionReturns(repository.Transaction{
					ID:       uuid.NewString(),
					Status:   repository.StatusPending,
					Currency: "USD",
				}, nil)
			})

			It("records a pending transaction with USD as default currency", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(txn.Status).To(Equal(repository.StatusPending))

				Expect(fakeRepo.CreateTransactionCallCount()).To(Equal(1))
				_, argTxn := fakeRepo.CreateTransactionArgsForCall(0)
				Expect(argTxn.WalletAddress).To(Equal("0xbuyer1"))
				Expect(argTxn.Currency).To(Equal("USD"))
				Expect(argTxn.TxHash).To(BeNil())
			})
		})

		When("the intent carries a tx hash", func() {
			BeforeEach(func() {
				msg.TxHash = "0xfeed"
				fakeRepo.CreateTransactionReturns(repository.Transaction{}, nil)
			})

			It("stores the hash", func() {
				Expect(err).NotTo(HaveOccurred())
				_, argTxn := fakeRepo.CreateTransactionArgsForCall(0)
				Expect(argTxn.TxHash).NotTo(BeNil())
				Expect(*argTxn.TxHash).To(Equal("0xfeed"))
			})
		})

		When("the transaction type is unknown", func() {
			BeforeEach(func() {
				msg.Type = "subscription"
			})

			It("rejects the intent", func() {
				Expect(err).To(MatchError(core.ErrInvalidTransactionType))
				Expect(fakeRepo.CreateTransactionCallCount()).To(Equal(0))
			})
		})

		When("the amount is negative", func() {
			BeforeEach(func() {
				msg.Amount = -1
			})

			It("rejects the intent", func() {
				Expect(err).To(MatchError(core.ErrNegativeAmount))
			})
		})

		When("the project does not exist", func() {
			BeforeEach(func() {
				fakeRepo.GetProjectByIDReturns(repository.Project{}, db.ErrNotFound)
			})

			It("returns project not found", func() {
				Expect(err).To(MatchError(core.ErrProjectNotFound))
			})
		})

		When("the tx hash was already recorded", func() {
			BeforeEach(func() {
				msg.TxHash = "0xfeed"
				fakeRepo.CreateTransactionReturns(repository.Transaction{}, db.ErrDuplicateKey)
			})

			It("returns duplicate tx hash", func() {
				Expect(err).To(MatchError(core.ErrDuplicateTxHash))
			})
		})
	})

	Describe("ConfirmTransaction", func() {
		var (
			transactionID string
			txHash        string
			blockNumber   int64
			txn           core.Transaction
			err           error
		)

		BeforeEach(func() {
			transactionID = uuid.NewString()
			txHash = "0xfeed"
			blockNumber = 42
		})

		JustBeforeEach(func() {
			txn, err = vault.ConfirmTransaction(ctx, transactionID, txHash, blockNumber)
		})

		When("the transaction is pending", func() {
			BeforeEach(func() {
				fakeRepo.ConfirmTransactionAndGrantReturns(repository.Transaction{
					ID:     transactionID,
					Status: repository.StatusConfirmed,
				}, true, nil)
			})

			It("confirms it and reports the record", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(txn.Status).To(Equal(repository.StatusConfirmed))

				Expect(fakeRepo.ConfirmTransactionAndGrantCallCount()).To(Equal(1))
				_, argID, argHash, argBlock := fakeRepo.ConfirmTransactionAndGrantArgsForCall(0)
				Expect(argID).To(Equal(transactionID))
				Expect(argHash).To(Equal(txHash))
				Expect(argBlock).To(Equal(int64(42)))
			})
		})

		When("the transaction was already confirmed", func() {
			BeforeEach(func() {
				fakeRepo.ConfirmTransactionAndGrantReturns(repository.Transaction{
					ID:     transactionID,
					Status: repository.StatusConfirmed,
				}, false, nil)
			})

			It("treats the replay as a no-op", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(txn.Status).To(Equal(repository.StatusConfirmed))
			})
		})

		When("the transaction already failed", func() {
			BeforeEach(func() {
				fakeRepo.ConfirmTransactionAndGrantReturns(repository.Transaction{
					ID:     transactionID,
					Status: repository.StatusFailed,
				}, false, nil)
			})

			It("returns a finalized conflict", func() {
				Expect(err).To(MatchError(core.ErrTransactionFinalized))
			})
		})

		When("the transaction id is not a uuid", func() {
			BeforeEach(func() {
				transactionID = "nope"
			})

			It("returns invalid id", func() {
				Expect(err).To(MatchError(core.ErrInvalidID))
				Expect(fakeRepo.ConfirmTransactionAndGrantCallCount()).To(Equal(0))
			})
		})

		When("the transaction does not exist", func() {
			BeforeEach(func() {
				fakeRepo.ConfirmTransactionAndGrantReturns(repository.Transaction{}, false, db.ErrNotFound)
			})

			It("returns transaction not found", func() {
				Expect(err).To(MatchError(core.ErrTransactionNotFound))
			})
		})

		Context("with a chain verifier configured", func() {
			BeforeEach(func() {
				vault = core.NewVault(fakeLogger, fakeRepo, fakeVerifier)
			})

			When("the receipt checks out", func() {
				BeforeEach(func() {
					blockNumber = 0
					fakeVerifier.VerifyTransactionReturns(chain.Confirmation{
						TxHash:      txHash,
						BlockNumber: 77,
					}, nil)
					fakeRepo.ConfirmTransactionAndGrantReturns(repository.Transaction{
						ID:     transactionID,
						Status: repository.StatusConfirmed,
					}, true, nil)
				})

				It("confirms with the block number from the receipt", func() {
					Expect(err).NotTo(HaveOccurred())

					Expect(fakeVerifier.VerifyTransactionCallCount()).To(Equal(1))
					_, argHash := fakeVerifier.VerifyTransactionArgsForCall(0)
					Expect(argHash).To(Equal(txHash))

					_, _, _, argBlock := fakeRepo.ConfirmTransactionAndGrantArgsForCall(0)
					Expect(argBlock).To(Equal(int64(77)))
				})
			})

			When("the receipt is missing on chain", func() {
				BeforeEach(func() {
					fakeVerifier.VerifyTransactionReturns(chain.Confirmation{}, chain.ErrTxNotFound)
					fakeRepo.FailTransactionReturns(repository.Transaction{
						ID:     transactionID,
						Status: repository.StatusFailed,
					}, true, nil)
				})

				It("fails the transaction and rejects the proof", func() {
					Expect(err).To(MatchError(core.ErrPaymentNotVerified))
					Expect(fakeRepo.FailTransactionCallCount()).To(Equal(1))
					Expect(fakeRepo.ConfirmTransactionAndGrantCallCount()).To(Equal(0))
				})
			})

			When("the transfer reverted on chain", func() {
				BeforeEach(func() {
					fakeVerifier.VerifyTransactionReturns(chain.Confirmation{}, chain.ErrTxReverted)
					fakeRepo.FailTransactionReturns(repository.Transaction{}, true, nil)
				})

				It("fails the transaction and rejects the proof", func() {
					Expect(err).To(MatchError(core.ErrPaymentNotVerified))
					Expect(fakeRepo.FailTransactionCallCount()).To(Equal(1))
				})
			})

			When("the rpc node is unreachable", func() {
				BeforeEach(func() {
					fakeVerifier.VerifyTransactionReturns(chain.Confirmation{}, fakeErr)
				})

				It("returns the transport error without failing the transaction", func() {
					Expect(err).To(MatchError(fakeErr))
					Expect(fakeRepo.FailTransactionCallCount()).To(Equal(0))
					Expect(fakeRepo.ConfirmTransactionAndGrantCallCount()).To(Equal(0))
				})
			})

			When("no tx hash is supplied", func() {
				BeforeEach(func() {
					txHash = ""
					fakeRepo.ConfirmTransactionAndGrantReturns(repository.Transaction{
						ID:     transactionID,
						Status: repository.StatusConfirmed,
					}, true, nil)
				})

				It("skips the chain lookup", func() {
					Expect(err).NotTo(HaveOccurred())
					Expect(fakeVerifier.VerifyTransactionCallCount()).To(Equal(0))
				})
			})
		})
	})

	Describe("FailTransaction", func() {
		var (
			transactionID string
			txn           core.Transaction
			err           error
		)

		BeforeEach(func() {
			transactionID = uuid.NewString()
		})

		JustBeforeEach(func() {
			txn, err = vault.FailTransaction(ctx, transactionID)
		})

		When("the transaction is pending", func() {
			BeforeEach(func() {
				fakeRepo.FailTransactionReturns(repository.Transaction{
					ID:     transactionID,
					Status: repository.StatusFailed,
				}, true, nil)
			})

			It("marks it failed", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(txn.Status).To(Equal(repository.StatusFailed))
			})
		})

		When("the transaction already failed", func() {
			BeforeEach(func() {
				fakeRepo.FailTransactionReturns(repository.Transaction{
					ID:     transactionID,
					Status: repository.StatusFailed,
				}, false, nil)
			})

			It("treats the replay as a no-op", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(txn.Status).To(Equal(repository.StatusFailed))
			})
		})

		When("the transaction was confirmed", func() {
			BeforeEach(func() {
				fakeRepo.FailTransactionReturns(repository.Transaction{
					ID:     transactionID,
					Status: repository.StatusConfirmed,
				}, false, nil)
			})

			It("returns a finalized conflict", func() {
				Expect(err).To(MatchError(core.ErrTransactionFinalized))
			})
		})

		When("the transaction does not exist", func() {
			BeforeEach(func() {
				fakeRepo.FailTransactionReturns(repository.Transaction{}, false, db.ErrNotFound)
			})

			It("returns transaction not found", func() {
				Expect(err).To(MatchError(core.ErrTransactionNotFound))
			})
		})
	})

	Describe("UpdateProject", func() {
		var (
			projectID string
			caller    string
			msg       core.UpdateProjectMessage
			project   core.Project
			err       error
		)

		BeforeEach(func() {
			projectID = uuid.NewString()
			caller = "0xOWNER1"

			newTitle := "Refined title"
			msg = core.UpdateProjectMessage{Title: &newTitle}

			fakeRepo.GetProjectByIDReturns(repository.Project{
				ID:                 projectID,
				Title:              "Old title",
				OwnerWalletAddress: "0xowner1",
			}, nil)
		})

		JustBeforeEach(func() {
			project, err = vault.UpdateProject(ctx, projectID, caller, msg)
		})

		When("the owner updates a field", func() {
			BeforeEach(func() {
				fakeRepo.UpdateProjectReturns(repository.Project{
					ID:                 projectID,
					Title:              "Refined title",
					OwnerWalletAddress: "0xowner1",
				}, nil)
			})

			It("persists the merged record", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(project.Title).To(Equal("Refined title"))

				_, argProject := fakeRepo.UpdateProjectArgsForCall(0)
				Expect(argProject.Title).To(Equal("Refined title"))
			})
		})

		When("someone else tries to update", func() {
			BeforeEach(func() {
				caller = "0xIMPOSTOR"
			})

			It("rejects the update", func() {
				Expect(err).To(MatchError(core.ErrNotProjectOwner))
				Expect(fakeRepo.UpdateProjectCallCount()).To(Equal(0))
			})
		})

		When("a negative price is supplied", func() {
			BeforeEach(func() {
				bad := -5.0
				msg = core.UpdateProjectMessage{PriceView: &bad}
			})

			It("rejects the update", func() {
				Expect(err).To(MatchError(core.ErrNegativeAmount))
			})
		})
	})

	Describe("ListProjectTransactions", func() {
		When("the project id is not a uuid", func() {
			It("returns invalid id", func() {
				_, err := vault.ListProjectTransactions(ctx, "nope")
				Expect(err).To(MatchError(core.ErrInvalidID))
				Expect(fakeRepo.ListTransactionsByProjectCallCount()).To(Equal(0))
			})
		})

		When("transactions exist", func() {
			It("returns the records", func() {
				projectID := uuid.NewString()
				fakeRepo.ListTransactionsByProjectReturns([]repository.Transaction{
					{ProjectID: projectID},
					{ProjectID: projectID},
				}, nil)

				txns, err := vault.ListProjectTransactions(ctx, projectID)
				Expect(err).NotTo(HaveOccurred())
				Expect(txns).To(HaveLen(2))
			})
		})
	})
})
