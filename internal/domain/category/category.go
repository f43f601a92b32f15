package category

// Category is a backend category record.
type Category struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// MinimalCategory is the create/edit payload.
type MinimalCategory struct {
	ID   int64  `json:"id,omitempty"`
	Name string `json:"name"`
}
