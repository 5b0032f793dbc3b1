package chain_test

import (
	"context"
	"errors"
	"math/big"

	"codevault/internal/chain"
	"codevault/internal/chain/fake"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Verifier", func() {
	var (
		fakeClient *fake.RPCClient
		verifier   *chain.Verifier
		ctx        context.Context

		txHash       string
		confirmation chain.Confirmation
		err          error
	)

	BeforeEach(func() {
		fakeClient = new(fake.RPCClient)
		verifier = chain.NewVerifier(fakeClient)
		ctx = context.Background()

		txHash = "0x00000000000000000000000000000000000000000000000000000000000feed1"
	})

	JustBeforeEach(func() {
		confirmation, err = verifier.VerifyTransaction(ctx, txHash)
	})

	When("the receipt is mined and successful", func() {
		BeforeEach(func() {
			fakeClient.TransactionReceiptReturns(&types.Receipt{
				Status:      types.ReceiptStatusSuccessful,
				BlockNumber: big.NewInt(1234),
			}, nil)
		})

		It("returns the confirmation", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(confirmation.BlockNumber).To(Equal(int64(1234)))
			Expect(confirmation.TxHash).To(Equal(common.HexToHash(txHash).Hex()))

			Expect(fakeClient.TransactionReceiptCallCount()).To(Equal(1))
			_, argHash := fakeClient.TransactionReceiptArgsForCall(0)
			Expect(argHash).To(Equal(common.HexToHash(txHash)))
		})
	})

	When("the node has no receipt for the hash", func() {
		BeforeEach(func() {
			fakeClient.TransactionReceiptReturns(nil, ethereum.NotFound)
		})

		It("reports the transaction as not found", func() {
			Expect(err).To(MatchError(chain.ErrTxNotFound))
		})
	})

	When("the transaction reverted", func() {
		BeforeEach(func() {
			fakeClient.TransactionReceiptReturns(&types.Receipt{
				Status:      types.ReceiptStatusFailed,
				BlockNumber: big.NewInt(1234),
			}, nil)
		})

		It("reports the revert", func() {
			Expect(err).To(MatchError(chain.ErrTxReverted))
		})
	})

	When("the node call fails", func() {
		BeforeEach(func() {
			fakeClient.TransactionReceiptReturns(nil, errors.New("connection refused"))
		})

		It("returns the transport error as is", func() {
			Expect(err).To(HaveOccurred())
			Expect(errors.Is(err, chain.ErrTxNotFound)).To(BeFalse())
			Expect(errors.Is(err, chain.ErrTxReverted)).To(BeFalse())
		})
	})
})
