package model

// Actions recorded in the audit log.
const (
	ActionCreate = "create"
	ActionUpdate = "update"
	ActionDelete = "delete"
)

// Entities an audit entry can refer to.
const (
	EntityShows = "shows"
	EntityMerch = "merch"
)

// AuditEntry is an immutable record of one admin mutation.  Entries are
// stored newest first in admin-audit.json and are never modified or
// pruned by the application; only backup files are capped.
type AuditEntry struct {
	ID        string `json:"id"`
	Actor     string `json:"actor"`
	Action    string `json:"action"`
	Entity    string `json:"entity"`
	EntityID  string `json:"entityId"`
	CreatedAt string `json:"createdAt"`
	// Details holds a serialized before/after snapshot where one applies:
	// after only for create, before and after for update, before only
	// for delete.
	Details string `json:"details,omitempty"`
}

// Validate checks the stored form of an audit entry.
func (a AuditEntry) Validate() error {
	fe := FieldErrors{}
	if a.ID == "" {
		fe["id"] = "required"
	}
	if a.Actor == "" {
		fe["actor"] = "required"
	}
	switch a.Action {
	case ActionCreate, ActionUpdate, ActionDelete:
	default:
		fe["action"] = "must be create, update or delete"
	}
	switch a.Entity {
	case EntityShows, EntityMerch:
	default:
		fe["entity"] = "must be shows or merch"
	}
	if a.EntityID == "" {
		fe["entityId"] = "required"
	}
	if !validTimestamp(a.CreatedAt) {
		fe["createdAt"] = "must be an RFC 3339 timestamp"
	}
	if len(fe) > 0 {
		return fe
	}
	return nil
}
