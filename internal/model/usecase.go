package model

import "time"

// UseCaseStatus enumerates the lifecycle states of a listed use case.
type UseCaseStatus string

const (
	UseCaseStatusDraft     UseCaseStatus = "draft"
	UseCaseStatusPublished UseCaseStatus = "published"
)

// Seller identifies the author of a use case as shown on catalog cards.
type Seller struct {
	ID       string `json:"id" db:"seller_id"`
	Name     string `json:"name" db:"seller_name"`
	Verified bool   `json:"verified" db:"seller_verified"`
}

// UseCase represents a listed AI solution offering in the marketplace.
//
// Price is the display string shown on cards (e.g. "$49"); PriceCents is the
// canonical amount in minor currency units. When both are set, PriceCents
// equals round(numeric value of Price x 100).
type UseCase struct {
	ID                  string        `json:"id" db:"id"`
	Title               string        `json:"title" db:"title"`
	Description         string        `json:"description" db:"description"`
	ImplementationGuide string        `json:"implementationGuide,omitempty" db:"implementation_guide"`
	Category            string        `json:"category" db:"category"`
	Rating              float64       `json:"rating" db:"rating"`
	Reviews             int           `json:"reviews" db:"reviews"`
	Price               string        `json:"price" db:"price"`
	PriceCents          int64         `json:"priceCents" db:"price_cents"`
	ROI                 string        `json:"roi,omitempty" db:"roi"`
	TimeToImplement     string        `json:"timeToImplement,omitempty" db:"time_to_implement"`
	Tags                []string      `json:"tags,omitempty" db:"tags"`
	ToolsRequired       []string      `json:"toolsRequired,omitempty" db:"tools_required"`
	Featured            bool          `json:"featured" db:"featured"`
	Status              UseCaseStatus `json:"status" db:"status"`
	Seller              Seller        `json:"seller"`
	CreatedAt           time.Time     `json:"createdAt" db:"created_at"`
	UpdatedAt           time.Time     `json:"updatedAt" db:"updated_at"`
}

// SubmissionRequest is the request payload for creating a use case listing.
// Tags and ToolsRequired arrive as raw comma-separated strings and are
// normalised into arrays only at submission time.
type SubmissionRequest struct {
	Title               string `json:"title"`
	Description         string `json:"description"`
	ImplementationGuide string `json:"implementationGuide"`
	Price               string `json:"price"`
	Category            string `json:"category"`
	Tags                string `json:"tags"`
	ToolsRequired       string `json:"toolsRequired"`
	Status              string `json:"status"`
}
