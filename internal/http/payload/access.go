package payload

import (
	"codevault/internal/core"

	"github.com/jellydator/validation"
)

type GrantAccessRequest struct {
	ProjectID     string `json:"projectId"`
	WalletAddress string `json:"walletAddress"`
	AccessType    string `json:"accessType"`
	TxHash        string `json:"txHash,omitempty"`
}

func (g GrantAccessRequest) Validate() error {
	return validation.ValidateStruct(&g,
		validation.Field(&g.ProjectID, validation.Required),
		validation.Field(&g.WalletAddress, validation.Required, validation.Match(hexRegex)),
		validation.Field(&g.AccessType, validation.Required, validation.In("view", "download")),
		validation.Field(&g.TxHash, validation.Match(hexRegex)),
	)
}

func (g GrantAccessRequest) ToMessage() core.GrantMessage {
	return core.GrantMessage{
		ProjectID:     g.ProjectID,
		WalletAddress: g.WalletAddress,
		AccessType:    g.AccessType,
		TxHash:        g.TxHash,
	}
}
