// Package service implements the admin mutations: validated
// create/update/delete against the content store, each paired with
// exactly one audit entry. Authentication is not this layer's concern;
// the session middleware guards every route that reaches it.
package service

import (
	"encoding/json"

	"github.com/google/uuid"

	"github.com/bandland/bandland/internal/model"
	"github.com/bandland/bandland/internal/store"
)

// Admin applies admin mutations to the content collections.  On any
// validation failure nothing is written and nothing is audited; a
// successful call performs one collection write plus one audit append.
type Admin struct {
	store *store.Store
}

// NewAdmin returns a mutation service over the given store.
func NewAdmin(s *store.Store) *Admin {
	return &Admin{store: s}
}

// CreateShow validates in, assigns a fresh id and timestamps, appends
// the show to the collection and records a create audit entry under
// actor, the session principal the mutation ran as.
func (a *Admin) CreateShow(actor string, in model.ShowInput) (model.Show, error) {
	in.Normalize()
	if fe := in.Validate(); len(fe) > 0 {
		return model.Show{}, fe
	}

	now := model.Now()
	next := model.Show{
		ID:        uuid.NewString(),
		Date:      in.Date,
		Venue:     in.Venue,
		City:      in.City,
		Price:     in.Price,
		TicketURL: in.TicketURL,
		ImageURL:  in.ImageURL,
		CreatedAt: now,
		UpdatedAt: now,
	}

	shows, err := a.store.Shows.Read()
	if err != nil {
		return model.Show{}, err
	}
	if _, err := a.store.Shows.Write(append(shows, next)); err != nil {
		return model.Show{}, err
	}
	if err := a.logAudit(actor, model.ActionCreate, model.EntityShows, next.ID, snapshot{After: next}); err != nil {
		return model.Show{}, err
	}
	return next, nil
}

// UpdateShow merges validated input over the existing record.  The id
// and createdAt are preserved; updatedAt is refreshed.  Optional fields
// submitted empty are cleared, matching the admin form, which always
// submits every field.
func (a *Admin) UpdateShow(actor, id string, in model.ShowInput) (model.Show, error) {
	in.Normalize()
	if fe := in.Validate(); len(fe) > 0 {
		return model.Show{}, fe
	}

	shows, err := a.store.Shows.Read()
	if err != nil {
		return model.Show{}, err
	}
	idx := -1
	for i := range shows {
		if shows[i].ID == id {
			idx = i
			break
		}
	}
	if idx == -1 {
		return model.Show{}, store.ErrNotFound
	}

	before := shows[idx]
	next := before
	next.Date = in.Date
	next.Venue = in.Venue
	next.City = in.City
	next.Price = in.Price
	next.TicketURL = in.TicketURL
	next.ImageURL = in.ImageURL
	next.UpdatedAt = model.Now()

	shows[idx] = next
	if _, err := a.store.Shows.Write(shows); err != nil {
		return model.Show{}, err
	}
	if err := a.logAudit(actor, model.ActionUpdate, model.EntityShows, next.ID, snapshot{Before: before, After: next}); err != nil {
		return model.Show{}, err
	}
	return next, nil
}

// DeleteShow removes the show with the given id.  A missing id is
// ErrNotFound with no write and no audit entry.
func (a *Admin) DeleteShow(actor, id string) error {
	shows, err := a.store.Shows.Read()
	if err != nil {
		return err
	}
	kept := make([]model.Show, 0, len(shows))
	var removed *model.Show
	for i := range shows {
		if shows[i].ID == id {
			r := shows[i]
			removed = &r
			continue
		}
		kept = append(kept, shows[i])
	}
	if removed == nil {
		return store.ErrNotFound
	}
	if _, err := a.store.Shows.Write(kept); err != nil {
		return err
	}
	return a.logAudit(actor, model.ActionDelete, model.EntityShows, id, snapshot{Before: *removed})
}

// CreateMerch validates in and appends a new merch item, mirroring
// CreateShow.
func (a *Admin) CreateMerch(actor string, in model.MerchInput) (model.MerchItem, error) {
	in.Normalize()
	if fe := in.Validate(); len(fe) > 0 {
		return model.MerchItem{}, fe
	}

	now := model.Now()
	next := model.MerchItem{
		ID:          uuid.NewString(),
		Name:        in.Name,
		Description: in.Description,
		Price:       in.Price,
		Href:        in.Href,
		ImageURL:    in.ImageURL,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	items, err := a.store.Merch.Read()
	if err != nil {
		return model.MerchItem{}, err
	}
	if _, err := a.store.Merch.Write(append(items, next)); err != nil {
		return model.MerchItem{}, err
	}
	if err := a.logAudit(actor, model.ActionCreate, model.EntityMerch, next.ID, snapshot{After: next}); err != nil {
		return model.MerchItem{}, err
	}
	return next, nil
}

// UpdateMerch merges validated input over the existing item.
func (a *Admin) UpdateMerch(actor, id string, in model.MerchInput) (model.MerchItem, error) {
	in.Normalize()
	if fe := in.Validate(); len(fe) > 0 {
		return model.MerchItem{}, fe
	}

	items, err := a.store.Merch.Read()
	if err != nil {
		return model.MerchItem{}, err
	}
	idx := -1
	for i := range items {
		if items[i].ID == id {
			idx = i
			break
		}
	}
	if idx == -1 {
		return model.MerchItem{}, store.ErrNotFound
	}

	before := items[idx]
	next := before
	next.Name = in.Name
	next.Description = in.Description
	next.Price = in.Price
	next.Href = in.Href
	next.ImageURL = in.ImageURL
	next.UpdatedAt = model.Now()

	items[idx] = next
	if _, err := a.store.Merch.Write(items); err != nil {
		return model.MerchItem{}, err
	}
	if err := a.logAudit(actor, model.ActionUpdate, model.EntityMerch, next.ID, snapshot{Before: before, After: next}); err != nil {
		return model.MerchItem{}, err
	}
	return next, nil
}

// DeleteMerch removes the merch item with the given id.
func (a *Admin) DeleteMerch(actor, id string) error {
	items, err := a.store.Merch.Read()
	if err != nil {
		return err
	}
	kept := make([]model.MerchItem, 0, len(items))
	var removed *model.MerchItem
	for i := range items {
		if items[i].ID == id {
			r := items[i]
			removed = &r
			continue
		}
		kept = append(kept, items[i])
	}
	if removed == nil {
		return store.ErrNotFound
	}
	if _, err := a.store.Merch.Write(kept); err != nil {
		return err
	}
	return a.logAudit(actor, model.ActionDelete, model.EntityMerch, id, snapshot{Before: *removed})
}

// snapshot is the serialized form of an audit entry's details field.
// Create carries after only, delete carries before only, update both.
type snapshot struct {
	Before any `json:"before,omitempty"`
	After  any `json:"after,omitempty"`
}

// logAudit appends one audit entry for a completed mutation.  The
// before/after snapshots exist only long enough to serialize into the
// details field.
func (a *Admin) logAudit(actor, action, entity, entityID string, details snapshot) error {
	detail, err := json.Marshal(details)
	if err != nil {
		return err
	}
	return a.store.AppendAudit(model.AuditEntry{
		ID:        uuid.NewString(),
		Actor:     actor,
		Action:    action,
		Entity:    entity,
		EntityID:  entityID,
		CreatedAt: model.Now(),
		Details:   string(detail),
	})
}
