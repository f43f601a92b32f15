package shop

// Shop mirrors the backend shop record. Fields are passed through as returned.
type Shop struct {
	ID           int64          `json:"id"`
	Name         string         `json:"name"`
	InVacations  bool           `json:"inVacations"`
	CreatedAt    string         `json:"createdAt"` // yyyy-MM-dd
	NbProducts   *int64         `json:"nbProducts,omitempty"`
	NbCategories *int64         `json:"nbCategories,omitempty"`
	OpeningHours []OpeningHours `json:"openingHours"`
}

// OpeningHours is one opening slot. Day follows the backend numbering.
type OpeningHours struct {
	ID      int64  `json:"id,omitempty"`
	Day     int    `json:"day"`
	OpenAt  string `json:"openAt"`
	CloseAt string `json:"closeAt"`
}

// MinimalShop is the create/edit payload.
type MinimalShop struct {
	ID           int64          `json:"id,omitempty"`
	Name         string         `json:"name"`
	InVacations  bool           `json:"inVacations"`
	OpeningHours []OpeningHours `json:"openingHours"`
}

// SortField values accepted by the backend sortBy parameter.
const (
	SortByName       = "name"
	SortByCreatedAt  = "createdAt"
	SortByNbProducts = "nbProducts"
)

// SortFields lists the sort options offered by the console.
func SortFields() []string {
	return []string{SortByName, SortByCreatedAt, SortByNbProducts}
}
