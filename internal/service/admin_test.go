package service_test

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/bandland/bandland/internal/model"
	"github.com/bandland/bandland/internal/service"
	"github.com/bandland/bandland/internal/store"
)

func newAdmin(t *testing.T) (*service.Admin, *store.Store) {
	t.Helper()
	dir := t.TempDir()
	st := store.New(dir, filepath.Join(dir, ".history"))
	return service.NewAdmin(st), st
}

func TestCreateShow(t *testing.T) {
	admin, st := newAdmin(t)

	show, err := admin.CreateShow("admin", model.ShowInput{
		Date:  "2026-03-15T20:00:00+02:00",
		Venue: "The Waiting Room",
		City:  "Cape Town, WC",
	})
	if err != nil {
		t.Fatalf("CreateShow returned error: %v", err)
	}
	if show.ID == "" {
		t.Fatal("expected a generated id")
	}
	if show.CreatedAt == "" || show.CreatedAt != show.UpdatedAt {
		t.Fatalf("createdAt/updatedAt mismatch: %q vs %q", show.CreatedAt, show.UpdatedAt)
	}

	shows, err := st.Shows.Read()
	if err != nil {
		t.Fatalf("read shows: %v", err)
	}
	if len(shows) != 1 || shows[0].ID != show.ID {
		t.Fatalf("unexpected shows collection: %+v", shows)
	}

	audit, err := st.Audit.Read()
	if err != nil {
		t.Fatalf("read audit: %v", err)
	}
	if len(audit) != 1 {
		t.Fatalf("got %d audit entries, want 1", len(audit))
	}
	entry := audit[0]
	if entry.Action != model.ActionCreate || entry.Entity != model.EntityShows {
		t.Fatalf("unexpected audit entry: %+v", entry)
	}
	if entry.EntityID != show.ID {
		t.Fatalf("audit entityId = %q, want %q", entry.EntityID, show.ID)
	}
	if entry.Actor != "admin" {
		t.Fatalf("audit actor = %q, want admin", entry.Actor)
	}
	if !strings.Contains(entry.Details, `"after"`) || strings.Contains(entry.Details, `"before"`) {
		t.Fatalf("create details should carry only an after snapshot: %s", entry.Details)
	}
}

func TestCreateShowValidationFailureWritesNothing(t *testing.T) {
	admin, st := newAdmin(t)

	_, err := admin.CreateShow("admin", model.ShowInput{
		Date:      "not-a-date",
		Venue:     "",
		City:      "Cape Town, WC",
		TicketURL: "nope",
	})
	var fe model.FieldErrors
	if !errors.As(err, &fe) {
		t.Fatalf("expected FieldErrors, got %v", err)
	}
	for _, field := range []string{"date", "venue", "ticketUrl"} {
		if _, ok := fe[field]; !ok {
			t.Fatalf("expected error for field %q, got %v", field, fe)
		}
	}

	if _, err := os.Stat(st.Shows.Path()); !errors.Is(err, os.ErrNotExist) {
		t.Fatal("validation failure must not create the collection file")
	}
	audit, err := st.Audit.Read()
	if err != nil {
		t.Fatalf("read audit: %v", err)
	}
	if len(audit) != 0 {
		t.Fatalf("validation failure must not be audited: %+v", audit)
	}
}

func TestUpdateMerchPriceOnly(t *testing.T) {
	admin, st := newAdmin(t)

	seed := model.MerchItem{
		ID:        "m1",
		Name:      "Tour Tee",
		Price:     "R250",
		Href:      "https://shop.example.com/tee",
		CreatedAt: "2025-06-01T10:00:00Z",
		UpdatedAt: "2025-06-01T10:00:00Z",
	}
	if _, err := st.Merch.Write([]model.MerchItem{seed}); err != nil {
		t.Fatalf("seed merch: %v", err)
	}

	updated, err := admin.UpdateMerch("admin", "m1", model.MerchInput{
		Name:  seed.Name,
		Price: "R300",
		Href:  seed.Href,
	})
	if err != nil {
		t.Fatalf("UpdateMerch returned error: %v", err)
	}
	if updated.Price != "R300" {
		t.Fatalf("price = %q, want R300", updated.Price)
	}
	if updated.Name != seed.Name || updated.Href != seed.Href || updated.ID != seed.ID {
		t.Fatalf("unrelated fields changed: %+v", updated)
	}
	if updated.CreatedAt != seed.CreatedAt {
		t.Fatalf("createdAt changed: %q", updated.CreatedAt)
	}
	if updated.UpdatedAt == seed.UpdatedAt {
		t.Fatal("updatedAt did not advance")
	}

	audit, err := st.Audit.Read()
	if err != nil {
		t.Fatalf("read audit: %v", err)
	}
	if len(audit) != 1 || audit[0].Action != model.ActionUpdate {
		t.Fatalf("unexpected audit log: %+v", audit)
	}
	details := audit[0].Details
	if !strings.Contains(details, `"before"`) || !strings.Contains(details, `"after"`) {
		t.Fatalf("update details need both snapshots: %s", details)
	}
	if !strings.Contains(details, "R250") || !strings.Contains(details, "R300") {
		t.Fatalf("snapshots should show the price change: %s", details)
	}
}

func TestUpdateShowNotFound(t *testing.T) {
	admin, _ := newAdmin(t)

	_, err := admin.UpdateShow("admin", "missing", model.ShowInput{
		Date:  "2026-03-15T20:00:00+02:00",
		Venue: "V",
		City:  "C",
	})
	if !errors.Is(err, store.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestDeleteShow(t *testing.T) {
	admin, st := newAdmin(t)

	show, err := admin.CreateShow("admin", model.ShowInput{
		Date:  "2026-03-15T20:00:00+02:00",
		Venue: "The Waiting Room",
		City:  "Cape Town, WC",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if err := admin.DeleteShow("admin", show.ID); err != nil {
		t.Fatalf("DeleteShow returned error: %v", err)
	}
	shows, err := st.Shows.Read()
	if err != nil {
		t.Fatalf("read shows: %v", err)
	}
	if len(shows) != 0 {
		t.Fatalf("show was not removed: %+v", shows)
	}

	audit, err := st.Audit.Read()
	if err != nil {
		t.Fatalf("read audit: %v", err)
	}
	if len(audit) != 2 {
		t.Fatalf("got %d audit entries, want create+delete", len(audit))
	}
	// Newest first: the delete entry leads.
	if audit[0].Action != model.ActionDelete {
		t.Fatalf("newest entry action = %q, want delete", audit[0].Action)
	}
	if !strings.Contains(audit[0].Details, `"before"`) || strings.Contains(audit[0].Details, `"after"`) {
		t.Fatalf("delete details should carry only a before snapshot: %s", audit[0].Details)
	}
}

func TestDeleteShowNotFoundIsSideEffectFree(t *testing.T) {
	admin, st := newAdmin(t)

	seed := model.Show{
		ID: "s1", Date: "2026-03-15T20:00:00+02:00", Venue: "V", City: "C",
		CreatedAt: "2026-01-01T00:00:00Z", UpdatedAt: "2026-01-01T00:00:00Z",
	}
	if _, err := st.Shows.Write([]model.Show{seed}); err != nil {
		t.Fatalf("seed: %v", err)
	}
	before, err := os.ReadFile(st.Shows.Path())
	if err != nil {
		t.Fatal(err)
	}

	if err := admin.DeleteShow("admin", "does-not-exist"); !errors.Is(err, store.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	after, err := os.ReadFile(st.Shows.Path())
	if err != nil {
		t.Fatal(err)
	}
	if string(before) != string(after) {
		t.Fatal("no-op delete rewrote the collection file")
	}
	audit, err := st.Audit.Read()
	if err != nil {
		t.Fatalf("read audit: %v", err)
	}
	if len(audit) != 0 {
		t.Fatalf("no-op delete produced audit entries: %+v", audit)
	}
}

func TestUpdateClearsOptionalFields(t *testing.T) {
	admin, st := newAdmin(t)

	created, err := admin.CreateShow("admin", model.ShowInput{
		Date:      "2026-03-15T20:00:00+02:00",
		Venue:     "The Waiting Room",
		City:      "Cape Town, WC",
		Price:     "R150",
		TicketURL: "https://tickets.example.com/1",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	updated, err := admin.UpdateShow("admin", created.ID, model.ShowInput{
		Date:  created.Date,
		Venue: created.Venue,
		City:  created.City,
		// price and ticketUrl submitted empty: the form clears them.
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Price != "" || updated.TicketURL != "" {
		t.Fatalf("optional fields were not cleared: %+v", updated)
	}

	shows, err := st.Shows.Read()
	if err != nil {
		t.Fatal(err)
	}
	if shows[0].Price != "" || shows[0].TicketURL != "" {
		t.Fatalf("cleared fields persisted: %+v", shows[0])
	}
}
