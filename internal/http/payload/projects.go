package payload

import (
	"codevault/internal/core"

	"github.com/jellydator/validation"
)

type CreateProjectRequest struct {
	Title              string   `json:"title"`
	Description        string   `json:"description"`
	OwnerWalletAddress string   `json:"ownerWalletAddress"`
	PriceView          float64  `json:"priceView"`
	PriceDownload      float64  `json:"priceDownload"`
	IsPublished        bool     `json:"isPublished"`
	Technologies       []string `json:"technologies"`
	Images             []string `json:"images"`
	ArchiveURL         string   `json:"archiveUrl,omitempty"`
}

func (c CreateProjectRequest) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.Title, validation.Required, validation.Length(1, 200)),
		validation.Field(&c.Description, validation.Required, validation.Length(1, 5000)),
		validation.Field(&c.OwnerWalletAddress, validation.Required, validation.Match(hexRegex)),
		validation.Field(&c.PriceView, validation.Min(0.0)),
		validation.Field(&c.PriceDownload, validation.Min(0.0)),
	)
}

func (c CreateProjectRequest) ToMessage() core.ProjectMessage {
	return core.ProjectMessage{
		Title:              c.Title,
		Description:        c.Description,
		OwnerWalletAddress: c.OwnerWalletAddress,
		PriceView:          c.PriceView,
		PriceDownload:      c.PriceDownload,
		IsPublished:        c.IsPublished,
		Technologies:       c.Technologies,
		Images:             c.Images,
		ArchiveURL:         c.ArchiveURL,
	}
}

// UpdateProjectRequest is a partial update; omitted fields keep their
// stored values. WalletAddress identifies the caller for the owner check.
type UpdateProjectRequest struct {
	WalletAddress string   `json:"walletAddress"`
	Title         *string  `json:"title,omitempty"`
	Description   *string  `json:"description,omitempty"`
	PriceView     *float64 `json:"priceView,omitempty"`
	PriceDownload *float64 `json:"priceDownload,omitempty"`
	IsPublished   *bool    `json:"isPublished,omitempty"`
	Technologies  []string `json:"technologies,omitempty"`
	Images        []string `json:"images,omitempty"`
	ArchiveURL    *string  `json:"archiveUrl,omitempty"`
}

func (u UpdateProjectRequest) Validate() error {
	return validation.ValidateStruct(&u,
		validation.Field(&u.WalletAddress, validation.Required, validation.Match(hexRegex)),
		validation.Field(&u.Title, validation.Length(1, 200)),
		validation.Field(&u.Description, validation.Length(1, 5000)),
		validation.Field(&u.PriceView, validation.Min(0.0)),
		validation.Field(&u.PriceDownload, validation.Min(0.0)),
	)
}

func (u UpdateProjectRequest) ToMessage() core.UpdateProjectMessage {
	return core.UpdateProjectMessage{
		Title:         u.Title,
		Description:   u.Description,
		PriceView:     u.PriceView,
		PriceDownload: u.PriceDownload,
		IsPublished:   u.IsPublished,
		Technologies:  u.Technologies,
		Images:        u.Images,
		ArchiveURL:    u.ArchiveURL,
	}
}
