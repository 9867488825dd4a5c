package model

// Category is a fixed classification bucket used to filter the catalog.
// IDs are slugs; "all" is reserved and matches every use case.
type Category struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Icon  string `json:"icon"`
	Count int    `json:"count"`
}

// CategoryAll is the reserved identifier that matches every use case.
const CategoryAll = "all"
