package payload

import (
	"codevault/internal/core"

	"github.com/jellydator/validation"
)

type CreateTransactionRequest struct {
	WalletAddress string   `json:"walletAddress"`
	ProjectID     string   `json:"projectId"`
	Amount        *float64 `json:"amount"`
	Currency      string   `json:"currency,omitempty"`
	Type          string   `json:"type"`
	TxHash        string   `json:"txHash,omitempty"`
	ChainID       string   `json:"chainId,omitempty"`
}

func (c CreateTransactionRequest) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.WalletAddress, validation.Required, validation.Match(hexRegex)),
		validation.Field(&c.ProjectID, validation.Required),
		validation.Field(&c.Amount, validation.NotNil, validation.Min(0.0)),
		validation.Field(&c.Type, validation.Required, validation.In("view_purchase", "download_purchase")),
		validation.Field(&c.TxHash, validation.Match(hexRegex)),
	)
}

func (c CreateTransactionRequest) ToMessage() core.CreateTransactionMessage {
	amount := 0.0
	if c.Amount != nil {
		amount = *c.Amount
	}

	return core.CreateTransactionMessage{
		WalletAddress: c.WalletAddress,
		ProjectID:     c.ProjectID,
		Amount:        amount,
		Currency:      c.Currency,
		Type:          c.Type,
		TxHash:        c.TxHash,
		ChainID:       c.ChainID,
	}
}

type ConfirmTransactionRequest struct {
	TxHash      string `json:"txHash,omitempty"`
	BlockNumber int64  `json:"blockNumber,omitempty"`
}

func (c ConfirmTransactionRequest) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.TxHash, validation.Match(hexRegex)),
		validation.Field(&c.BlockNumber, validation.Min(int64(0))),
	)
}
