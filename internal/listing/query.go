package listing

import (
	"net/url"
	"strconv"
	"strings"
)

// Backend paths used by the shop listing.
const (
	ShopsPath       = "/shops"
	ShopsSearchPath = "/shops/search"
)

// Mode is the listing strategy that decides which query parameters are sent.
type Mode int

const (
	ModePlain Mode = iota
	ModeSorted
	ModeFiltered
	ModeSearched
)

func (m Mode) String() string {
	switch m {
	case ModeSorted:
		return "sorted"
	case ModeFiltered:
		return "filtered"
	case ModeSearched:
		return "searched"
	default:
		return "plain"
	}
}

// State is the raw set of UI selections for a listing. Several fields may be
// set at once; Request picks one mode by precedence.
type State struct {
	Page    int    `json:"page"`
	Sort    string `json:"sort,omitempty"`
	Filters string `json:"filters,omitempty"`
	Search  string `json:"search,omitempty"`
}

// Mode returns the active mode: search, then sort, then filter, then plain.
func (s State) Mode() Mode {
	switch {
	case s.Search != "":
		return ModeSearched
	case s.Sort != "":
		return ModeSorted
	case s.Filters != "":
		return ModeFiltered
	default:
		return ModePlain
	}
}

// Request builds the outbound request for s with the given page size.
func (s State) Request(size int) Request {
	page := s.Page
	if page < 0 {
		page = 0
	}
	req := Request{Page: page, Size: size, Mode: s.Mode()}
	switch req.Mode {
	case ModeSearched:
		fp := ParseFilters(s.Filters)
		req.Search = SearchParams{
			Page:          page,
			Size:          size,
			Query:         s.Search,
			InVacations:   fp.InVacations,
			CreatedAfter:  fp.CreatedAfter,
			CreatedBefore: fp.CreatedBefore,
		}
	case ModeSorted:
		req.Sort = s.Sort
	case ModeFiltered:
		req.Filters = s.Filters
	}
	return req
}

// SearchParams are the parameters of a /shops/search call.
type SearchParams struct {
	Page          int
	Size          int
	Query         string
	InVacations   *bool
	CreatedAfter  string
	CreatedBefore string
}

// Encode renders the search parameters as a query string. page and size are
// always present; the others only when defined and non-empty. Keys keep
// their insertion order.
func (sp SearchParams) Encode() string {
	q := query{}
	q.add("page", strconv.Itoa(sp.Page))
	q.add("size", strconv.Itoa(sp.Size))
	if sp.Query != "" {
		q.add("query", sp.Query)
	}
	if sp.InVacations != nil {
		q.add(KeyInVacations, strconv.FormatBool(*sp.InVacations))
	}
	if sp.CreatedAfter != "" {
		q.add(KeyCreatedAfter, sp.CreatedAfter)
	}
	if sp.CreatedBefore != "" {
		q.add(KeyCreatedBefore, sp.CreatedBefore)
	}
	return q.encode()
}

// Request is one listing call, fully resolved to a single mode.
type Request struct {
	Page    int
	Size    int
	Mode    Mode
	Sort    string
	Filters string
	Search  SearchParams
}

// Path is the backend path for the request's mode.
func (r Request) Path() string {
	if r.Mode == ModeSearched {
		return ShopsSearchPath
	}
	return ShopsPath
}

// RawQuery is the query string (without '?') for the request's mode.
func (r Request) RawQuery() string {
	base := "page=" + strconv.Itoa(r.Page) + "&size=" + strconv.Itoa(r.Size)
	switch r.Mode {
	case ModeSearched:
		return r.Search.Encode()
	case ModeSorted:
		// raw append, like the filter string
		return base + "&sortBy=" + r.Sort
	case ModeFiltered:
		// raw append; the filter string is not re-escaped
		if r.Filters != "" && !strings.HasPrefix(r.Filters, "&") {
			return base + "&" + r.Filters
		}
		return base + r.Filters
	default:
		return base
	}
}

// URL is Path plus RawQuery.
func (r Request) URL() string {
	return r.Path() + "?" + r.RawQuery()
}

type query []string

func (q *query) add(key, value string) {
	*q = append(*q, url.QueryEscape(key)+"="+url.QueryEscape(value))
}

func (q query) encode() string {
	return strings.Join(q, "&")
}
