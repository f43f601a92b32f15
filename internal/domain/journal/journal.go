package journal

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"
)

// Action is a mutating console action.
type Action string

const (
	ActionCreate Action = "create"
	ActionEdit   Action = "edit"
	ActionDelete Action = "delete"
	ActionAttach Action = "attach"
)

// Resource is the kind of backend record an action touched.
type Resource string

const (
	ResourceShop     Resource = "shop"
	ResourceProduct  Resource = "product"
	ResourceCategory Resource = "category"
)

// Outcome records whether the backend accepted the action.
type Outcome string

const (
	OutcomeSuccess Outcome = "success"
	OutcomeFailure Outcome = "failure"
)

// Entry is one journal line.
type Entry struct {
	ID         int64     `json:"id"`
	SessionID  string    `json:"sessionId"`
	Action     Action    `json:"action"`
	Resource   Resource  `json:"resource"`
	ResourceID int64     `json:"resourceId,omitempty"`
	Outcome    Outcome   `json:"outcome"`
	Detail     string    `json:"detail,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
}

const maxDetail = 500

// NewEntry builds an entry for the outcome of an action. err may be nil.
func NewEntry(sessionID string, action Action, resource Resource, resourceID int64, err error) (*Entry, error) {
	if action == "" || resource == "" {
		return nil, fmt.Errorf("journal entry needs an action and a resource")
	}
	e := &Entry{
		SessionID:  strings.TrimSpace(sessionID),
		Action:     action,
		Resource:   resource,
		ResourceID: resourceID,
		Outcome:    OutcomeSuccess,
		CreatedAt:  time.Now().UTC(),
	}
	if err != nil {
		e.Outcome = OutcomeFailure
		e.Detail = truncate(err.Error(), maxDetail)
	}
	return e, nil
}

// truncate cuts s to at most n bytes without splitting a rune.
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n]
}
