package journal

// ListRequest represents a paginated list request
type ListRequest struct {
	Limit  int `json:"limit,omitempty"`
	Offset int `json:"offset,omitempty"`
}

// Validate validates and normalizes list request parameters
func (req *ListRequest) Validate() {
	if req.Limit <= 0 {
		req.Limit = 50
	}
	if req.Offset < 0 {
		req.Offset = 0
	}
	if req.Limit > 200 {
		req.Limit = 200
	}
}
