package payload

import (
	"codevault/internal/core"

	"github.com/jellydator/validation"
)

type SyncUserRequest struct {
	IdentitySubject string `json:"identitySubject"`
	WalletAddress   string `json:"walletAddress"`
	Email           string `json:"email,omitempty"`
}

func (s SyncUserRequest) Validate() error {
	return validation.ValidateStruct(&s,
		validation.Field(&s.IdentitySubject, validation.Required),
		validation.Field(&s.WalletAddress, validation.Required, validation.Match(hexRegex)),
	)
}

func (s SyncUserRequest) ToMessage() core.SyncUserMessage {
	return core.SyncUserMessage{
		IdentitySubject: s.IdentitySubject,
		WalletAddress:   s.WalletAddress,
		Email:           s.Email,
	}
}
