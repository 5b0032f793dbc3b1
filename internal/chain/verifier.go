package chain

import (
	"context"
	"errors"
	"fmt"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
)

var ErrTxNotFound error = errors.New("transaction not found on chain")
var ErrTxReverted error = errors.New("transaction reverted on chain")

// Confirmation is the proof extracted from a mined receipt.
type Confirmation struct {
	TxHash      string
	BlockNumber int64
}

// Verifier checks payment proofs against an RPC node.
type Verifier struct {
	client RPCClient
}

func NewVerifier(client RPCClient) *Verifier {
	return &Verifier{
		client: client,
	}
}

// VerifyTransaction looks up the receipt for txHash. A missing receipt
// means the transaction is unknown or not yet mined; a receipt with a
// failed status means the transfer reverted. Both are verification
// failures, not transport errors.
func (v *Verifier) VerifyTransaction(ctx context.Context, txHash string) (Confirmation, error) {
	hash := common.HexToHash(txHash)

	receipt, err := v.client.TransactionReceipt(ctx, hash)
	if err != nil {
		if errors.Is(err, ethereum.NotFound) {
			return Confirmation{}, fmt.Errorf("receipt for %q: %w", txHash, ErrTxNotFound)
		}
		return Confirmation{}, fmt.Errorf("fetching receipt for %q: %w", txHash, err)
	}

	if receipt.Status != types.ReceiptStatusSuccessful {
		return Confirmation{}, fmt.Errorf("receipt for %q: %w", txHash, ErrTxReverted)
	}

	return Confirmation{
		TxHash:      hash.Hex(),
		BlockNumber: receipt.BlockNumber.Int64(),
	}, nil
}
