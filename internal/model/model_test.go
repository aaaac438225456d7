package model_test

import (
	"testing"

	"github.com/bandland/bandland/internal/model"
)

func TestShowInputValidate(t *testing.T) {
	in := model.ShowInput{
		Date:  "2026-03-15T20:00:00+02:00",
		Venue: "The Waiting Room",
		City:  "Cape Town, WC",
	}
	if fe := in.Validate(); len(fe) != 0 {
		t.Fatalf("valid input rejected: %v", fe)
	}

	in = model.ShowInput{
		Date:      "2026-03-15 20:00",
		Venue:     " ",
		City:      "",
		TicketURL: "ticket",
		ImageURL:  "ftp://img",
	}
	in.Normalize()
	fe := in.Validate()
	for _, field := range []string{"date", "venue", "city", "ticketUrl", "imageUrl"} {
		if _, ok := fe[field]; !ok {
			t.Fatalf("expected error for %q, got %v", field, fe)
		}
	}
}

func TestShowInputNormalizeTrims(t *testing.T) {
	in := model.ShowInput{Venue: "  The Armchair  ", City: "\tDurban "}
	in.Normalize()
	if in.Venue != "The Armchair" || in.City != "Durban" {
		t.Fatalf("not trimmed: %+v", in)
	}
}

func TestMerchInputValidate(t *testing.T) {
	in := model.MerchInput{
		Name:  "Tour Tee",
		Price: "R250",
		Href:  "https://shop.example.com/tee",
	}
	if fe := in.Validate(); len(fe) != 0 {
		t.Fatalf("valid input rejected: %v", fe)
	}

	in = model.MerchInput{Href: "shop.example.com"}
	fe := in.Validate()
	for _, field := range []string{"name", "price", "href"} {
		if _, ok := fe[field]; !ok {
			t.Fatalf("expected error for %q, got %v", field, fe)
		}
	}
}

func TestAuditEntryValidate(t *testing.T) {
	entry := model.AuditEntry{
		ID:        "1",
		Actor:     "admin",
		Action:    model.ActionUpdate,
		Entity:    model.EntityMerch,
		EntityID:  "m1",
		CreatedAt: "2026-01-01T00:00:00Z",
	}
	if err := entry.Validate(); err != nil {
		t.Fatalf("valid entry rejected: %v", err)
	}

	entry.Action = "rename"
	entry.Entity = "posters"
	if err := entry.Validate(); err == nil {
		t.Fatal("expected rejection of unknown action/entity")
	}
}

func TestFieldErrorsMessage(t *testing.T) {
	fe := model.FieldErrors{"venue": "required", "date": "bad"}
	if fe.Error() != "date: bad; venue: required" {
		t.Fatalf("unexpected message: %q", fe.Error())
	}
}
