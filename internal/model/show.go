package model

// Show represents one upcoming or past live date.  Shows are persisted
// as a JSON array in shows.json, in insertion order.
//
// Fields:
//
//	ID        – unique identifier, assigned once at creation.
//	Date      – when the show happens, RFC 3339 with timezone offset.
//	Venue     – venue name.
//	City      – city (free-form, e.g. "Cape Town, WC").
//	Price     – optional display price (free-form string).
//	TicketURL – optional link to the ticket vendor.
//	ImageURL  – optional poster image.
//	CreatedAt – set once when the record is created.
//	UpdatedAt – refreshed on every mutation.
//
// Timestamps stay strings end to end so a read-then-write round trip
// reproduces the file byte for byte.
type Show struct {
	ID        string `json:"id"`
	Date      string `json:"date"`
	Venue     string `json:"venue"`
	City      string `json:"city"`
	Price     string `json:"price,omitempty"`
	TicketURL string `json:"ticketUrl,omitempty"`
	ImageURL  string `json:"imageUrl,omitempty"`
	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

// Validate checks the stored form of a show.  The store runs this over
// every record before a collection touches disk.
func (s Show) Validate() error {
	fe := FieldErrors{}
	if s.ID == "" {
		fe["id"] = "required"
	}
	if !validTimestamp(s.Date) {
		fe["date"] = "must be an RFC 3339 timestamp with offset"
	}
	if s.Venue == "" {
		fe["venue"] = "required"
	}
	if s.City == "" {
		fe["city"] = "required"
	}
	if s.TicketURL != "" && !validURL(s.TicketURL) {
		fe["ticketUrl"] = "must be a valid URL"
	}
	if s.ImageURL != "" && !validURL(s.ImageURL) {
		fe["imageUrl"] = "must be a valid URL"
	}
	if !validTimestamp(s.CreatedAt) {
		fe["createdAt"] = "must be an RFC 3339 timestamp"
	}
	if !validTimestamp(s.UpdatedAt) {
		fe["updatedAt"] = "must be an RFC 3339 timestamp"
	}
	if len(fe) > 0 {
		return fe
	}
	return nil
}

// ShowInput carries the user-editable fields of a show as submitted by
// the admin form.  Optional fields are cleared when submitted empty.
type ShowInput struct {
	Date      string `json:"date" form:"date"`
	Venue     string `json:"venue" form:"venue"`
	City      string `json:"city" form:"city"`
	Price     string `json:"price" form:"price"`
	TicketURL string `json:"ticketUrl" form:"ticketUrl"`
	ImageURL  string `json:"imageUrl" form:"imageUrl"`
}

// Normalize trims surrounding whitespace from every field.
func (in *ShowInput) Normalize() {
	in.Date = trim(in.Date)
	in.Venue = trim(in.Venue)
	in.City = trim(in.City)
	in.Price = trim(in.Price)
	in.TicketURL = trim(in.TicketURL)
	in.ImageURL = trim(in.ImageURL)
}

// Validate checks the normalized input and returns per-field errors.
func (in ShowInput) Validate() FieldErrors {
	fe := FieldErrors{}
	if in.Date == "" {
		fe["date"] = "required"
	} else if !validTimestamp(in.Date) {
		fe["date"] = "must be an RFC 3339 timestamp with offset"
	}
	if in.Venue == "" {
		fe["venue"] = "required"
	}
	if in.City == "" {
		fe["city"] = "required"
	}
	if in.TicketURL != "" && !validURL(in.TicketURL) {
		fe["ticketUrl"] = "must be a valid URL"
	}
	if in.ImageURL != "" && !validURL(in.ImageURL) {
		fe["imageUrl"] = "must be a valid URL"
	}
	return fe
}
