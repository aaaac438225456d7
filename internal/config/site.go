package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Social is one outbound social link shown in the site footer.
type Social struct {
	Label string `yaml:"label" json:"label"`
	Href  string `yaml:"href" json:"href"`
}

// Site is the static descriptor of the band site: name, blurb, booking
// contact and social links.  It is presentation data consumed by the
// rendering layer, kept in a YAML file next to the deployment so it can
// change without a rebuild.
type Site struct {
	Name         string   `yaml:"name" json:"name"`
	Description  string   `yaml:"description" json:"description"`
	ContactEmail string   `yaml:"contact_email" json:"contactEmail"`
	Socials      []Social `yaml:"socials" json:"socials"`
}

// DefaultSite is served when no site descriptor file exists.
func DefaultSite() Site {
	return Site{
		Name:         "Bandland",
		Description:  "Official landing page. Music, shows, and merch coming soon.",
		ContactEmail: "info@bandland.com",
	}
}

// LoadSite reads the YAML site descriptor at path.  A missing file
// falls back to DefaultSite; a malformed file is an error so a typo
// does not silently blank the site.
func LoadSite(path string) (Site, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return DefaultSite(), nil
	}
	if err != nil {
		return Site{}, fmt.Errorf("read site descriptor: %w", err)
	}
	site := DefaultSite()
	if err := yaml.Unmarshal(data, &site); err != nil {
		return Site{}, fmt.Errorf("parse site descriptor: %w", err)
	}
	return site, nil
}
