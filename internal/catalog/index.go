package catalog

import "usecase-market/internal/model"

// categories is the fixed category index driving the filter UI and the
// category predicate. Counts are fixture data, not live catalog counts.
var categories = []model.Category{
	{ID: model.CategoryAll, Name: "All Categories", Icon: "search", Count: 547},
	{ID: "automation", Name: "Process Automation", Icon: "bot", Count: 142},
	{ID: "customer-service", Name: "Customer Service", Icon: "message-square", Count: 89},
	{ID: "content", Name: "Content Generation", Icon: "file-text", Count: 76},
	{ID: "analytics", Name: "Data Analytics", Icon: "bar-chart", Count: 64},
	{ID: "ecommerce", Name: "E-commerce", Icon: "shopping-cart", Count: 52},
	{ID: "computer-vision", Name: "Computer Vision", Icon: "image", Count: 43},
	{ID: "hr", Name: "Human Resources", Icon: "users", Count: 38},
}

// Categories returns the category index. Callers receive a copy and cannot
// modify the index.
func Categories() []model.Category {
	out := make([]model.Category, len(categories))
	copy(out, categories)
	return out
}

// CategoryByID looks up a category by its slug.
func CategoryByID(id string) (model.Category, bool) {
	for _, c := range categories {
		if c.ID == id {
			return c, true
		}
	}
	return model.Category{}, false
}
