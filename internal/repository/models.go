package repository

import "time"

const (
	AccessTypeView     = "view"
	AccessTypeDownload = "download"

	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
	StatusFailed    = "failed"

	TypeViewPurchase     = "view_purchase"
	TypeDownloadPurchase = "download_purchase"
)

type User struct {
	ID              string    `gorm:"primaryKey;autoIncrement:false;size:36"`
	IdentitySubject string    `gorm:"type:varchar(255);uniqueIndex;not null"` // subject id at the identity provider
	WalletAddress   string    `gorm:"size:66;index;not null"`                 // lowercased
	Email           string    `gorm:"type:varchar(255)"`
	CreatedAt       time.Time `gorm:"not null"`
	UpdatedAt       time.Time `gorm:"not null"`
}

type Project struct {
	ID                 string    `gorm:"primaryKey;autoIncrement:false;size:36"`
	Title              string    `gorm:"type:varchar(200);not null"`
	Description        string    `gorm:"type:text;not null"`
	OwnerWalletAddress string    `gorm:"size:66;index;not null"` // lowercased
	PriceView          float64   `gorm:"not null;default:0"`
	PriceDownload      float64   `gorm:"not null;default:0"`
	IsPublished        bool      `gorm:"not null;default:false;index"`
	Technologies       []string  `gorm:"serializer:json;type:text"`
	Images             []string  `gorm:"serializer:json;type:text"`
	ArchiveURL         string    `gorm:"type:text"`
	CreatedAt          time.Time `gorm:"not null;index"`
	UpdatedAt          time.Time `gorm:"not null"`
}

// Access is the durable entitlement record. One row per
// (project, wallet, access type); the composite unique index is the
// idempotency key for grants.
type Access struct {
	ID              string    `gorm:"primaryKey;autoIncrement:false;size:36"`
	ProjectID       string    `gorm:"size:36;uniqueIndex:idx_access_grant_key;not null"`
	WalletAddress   string    `gorm:"size:66;uniqueIndex:idx_access_grant_key;index:idx_access_wallet_type;not null"`
	AccessType      string    `gorm:"type:varchar(16);uniqueIndex:idx_access_grant_key;index:idx_access_wallet_type;not null"`
	GrantedAt       time.Time `gorm:"not null"`
	TxHash          string    `gorm:"size:66"`
	OnChainVerified bool      `gorm:"not null;default:false"`
}

type Transaction struct {
	ID            string    `gorm:"primaryKey;autoIncrement:false;size:36"`
	WalletAddress string    `gorm:"size:66;index:idx_tx_wallet_status;not null"` // lowercased buyer wallet
	ProjectID     string    `gorm:"size:36;index:idx_tx_project_status;not null"`
	Amount        float64   `gorm:"not null"`
	Currency      string    `gorm:"type:varchar(8);not null;default:'USD'"`
	TxHash        *string   `gorm:"size:66;uniqueIndex"` // nullable so the unique index only covers real hashes
	Status        string    `gorm:"type:varchar(16);not null;default:'pending';index:idx_tx_wallet_status;index:idx_tx_project_status"`
	Type          string    `gorm:"type:varchar(32);not null"`
	ChainID       string    `gorm:"type:varchar(32)"`
	BlockNumber   int64     `gorm:"not null;default:0"`
	CreatedAt     time.Time `gorm:"not null;index"`
	UpdatedAt     time.Time `gorm:"not null"`
}
