package core

import (
	"codevault/internal/repository"
	"time"
)

type User struct {
	ID              string    `json:"id"`
	IdentitySubject string    `json:"identitySubject"`
	WalletAddress   string    `json:"walletAddress"`
	Email           string    `json:"email,omitempty"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

type Project struct {
	ID                 string    `json:"id"`
	Title              string    `json:"title"`
	Description        string    `json:"description"`
	OwnerWalletAddress string    `json:"ownerWalletAddress"`
	PriceView          float64   `json:"priceView"`
	PriceDownload      float64   `json:"priceDownload"`
	IsPublished        bool      `json:"isPublished"`
	Technologies       []string  `json:"technologies"`
	Images             []string  `json:"images"`
	ArchiveURL         string    `json:"archiveUrl,omitempty"`
	CreatedAt          time.Time `json:"createdAt"`
	UpdatedAt          time.Time `json:"updatedAt"`
}

type Access struct {
	ID              string    `json:"id"`
	ProjectID       string    `json:"projectId"`
	WalletAddress   string    `json:"walletAddress"`
	AccessType      string    `json:"accessType"`
	GrantedAt       time.Time `json:"grantedAt"`
	TxHash          string    `json:"txHash,omitempty"`
	OnChainVerified bool      `json:"onChainVerified"`
}

type Transaction struct {
	ID            string    `json:"id"`
	WalletAddress string    `json:"walletAddress"`
	ProjectID     string    `json:"projectId"`
	Amount        float64   `json:"amount"`
	Currency      string    `json:"currency"`
	TxHash        string    `json:"txHash,omitempty"`
	Status        string    `json:"status"`
	Type          string    `json:"type"`
	ChainID       string    `json:"chainId,omitempty"`
	BlockNumber   int64     `json:"blockNumber,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// Entitlement is the effective access for a (project, wallet) pair.
// The owner always has both flags; download implies view.
type Entitlement struct {
	HasViewAccess     bool `json:"hasViewAccess"`
	HasDownloadAccess bool `json:"hasDownloadAccess"`
	IsOwner           bool `json:"isOwner"`
}

type SyncUserMessage struct {
	IdentitySubject string
	WalletAddress   string
	Email           string
}

type ProjectMessage struct {
	Title              string
	Description        string
	OwnerWalletAddress string
	PriceView          float64
	PriceDownload      float64
	IsPublished        bool
	Technologies       []string
	Images             []string
	ArchiveURL         string
}

// UpdateProjectMessage carries a partial update; nil fields are left as is.
type UpdateProjectMessage struct {
	Title         *string
	Description   *string
	PriceView     *float64
	PriceDownload *float64
	IsPublished   *bool
	Technologies  []string
	Images        []string
	ArchiveURL    *string
}

type GrantMessage struct {
	ProjectID     string
	WalletAddress string
	AccessType    string
	TxHash        string
}

type CreateTransactionMessage struct {
	WalletAddress string
	ProjectID     string
	Amount        float64
	Currency      string
	Type          string
	TxHash        string
	ChainID       string
}

func userFromRepo(u repository.User) User {
	return User{
		ID:              u.ID,
		IdentitySubject: u.IdentitySubject,
		WalletAddress:   u.WalletAddress,
		Email:           u.Email,
		CreatedAt:       u.CreatedAt,
		UpdatedAt:       u.UpdatedAt,
	}
}

func projectFromRepo(p repository.Project) Project {
	return Project{
		ID:                 p.ID,
		Title:              p.Title,
		Description:        p.Description,
		OwnerWalletAddress: p.OwnerWalletAddress,
		PriceView:          p.PriceView,
		PriceDownload:      p.PriceDownload,
		IsPublished:        p.IsPublished,
		Technologies:       p.Technologies,
		Images:             p.Images,
		ArchiveURL:         p.ArchiveURL,
		CreatedAt:          p.CreatedAt,
		UpdatedAt:          p.UpdatedAt,
	}
}

func accessFromRepo(a repository.Access) Access {
	return Access{
		ID:              a.ID,
		ProjectID:       a.ProjectID,
		WalletAddress:   a.WalletAddress,
		AccessType:      a.AccessType,
		GrantedAt:       a.GrantedAt,
		TxHash:          a.TxHash,
		OnChainVerified: a.OnChainVerified,
	}
}

func transactionFromRepo(t repository.Transaction) Transaction {
	txHash := ""
	if t.TxHash != nil {
		txHash = *t.TxHash
	}

	return Transaction{
		ID:            t.ID,
		WalletAddress: t.WalletAddress,
		ProjectID:     t.ProjectID,
		Amount:        t.Amount,
		Currency:      t.Currency,
		TxHash:        txHash,
		Status:        t.Status,
		Type:          t.Type,
		ChainID:       t.ChainID,
		BlockNumber:   t.BlockNumber,
		CreatedAt:     t.CreatedAt,
		UpdatedAt:     t.UpdatedAt,
	}
}

func transactionsFromRepo(txns []repository.Transaction) []Transaction {
	records := make([]Transaction, len(txns))
	for i, t := range txns {
		records[i] = transactionFromRepo(t)
	}
	return records
}
