package model

// MerchItem represents one item in the merch store, persisted as a JSON
// array in merch.json.  Href points at the external shop page; the site
// never sells anything itself.
type MerchItem struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Price       string `json:"price"`
	Href        string `json:"href"`
	ImageURL    string `json:"imageUrl,omitempty"`
	CreatedAt   string `json:"createdAt"`
	UpdatedAt   string `json:"updatedAt"`
}

// Validate checks the stored form of a merch item.
func (m MerchItem) Validate() error {
	fe := FieldErrors{}
	if m.ID == "" {
		fe["id"] = "required"
	}
	if m.Name == "" {
		fe["name"] = "required"
	}
	if m.Price == "" {
		fe["price"] = "required"
	}
	if !validURL(m.Href) {
		fe["href"] = "must be a valid URL"
	}
	if m.ImageURL != "" && !validURL(m.ImageURL) {
		fe["imageUrl"] = "must be a valid URL"
	}
	if !validTimestamp(m.CreatedAt) {
		fe["createdAt"] = "must be an RFC 3339 timestamp"
	}
	if !validTimestamp(m.UpdatedAt) {
		fe["updatedAt"] = "must be an RFC 3339 timestamp"
	}
	if len(fe) > 0 {
		return fe
	}
	return nil
}

// MerchInput carries the user-editable fields of a merch item.
type MerchInput struct {
	Name        string `json:"name" form:"name"`
	Description string `json:"description" form:"description"`
	Price       string `json:"price" form:"price"`
	Href        string `json:"href" form:"href"`
	ImageURL    string `json:"imageUrl" form:"imageUrl"`
}

// Normalize trims surrounding whitespace from every field.
func (in *MerchInput) Normalize() {
	in.Name = trim(in.Name)
	in.Description = trim(in.Description)
	in.Price = trim(in.Price)
	in.Href = trim(in.Href)
	in.ImageURL = trim(in.ImageURL)
}

// Validate checks the normalized input and returns per-field errors.
func (in MerchInput) Validate() FieldErrors {
	fe := FieldErrors{}
	if in.Name == "" {
		fe["name"] = "required"
	}
	if in.Price == "" {
		fe["price"] = "required"
	}
	if in.Href == "" {
		fe["href"] = "required"
	} else if !validURL(in.Href) {
		fe["href"] = "must be a valid URL"
	}
	if in.ImageURL != "" && !validURL(in.ImageURL) {
		fe["imageUrl"] = "must be a valid URL"
	}
	return fe
}
