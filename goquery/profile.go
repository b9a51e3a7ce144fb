package goquery

import (
	"fmt"
	"os"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"gopkg.in/yaml.v3"
)

// Profile lists the CSS selectors used to read a note page.
// Every list is ordered from the most specific known page variant to the
// most generic fallback; the first match wins.
type Profile struct {
	Title []string `yaml:"title"`
	Body  []string `yaml:"body"`

	// Strip lists the interactive or decorative elements removed from the
	// body before its text is read.
	Strip []string `yaml:"strip"`

	// Region lists the engagement region containers. The last match in the
	// document is used.
	Region    []string `yaml:"region"`
	Likes     []string `yaml:"likes"`
	Favorites []string `yaml:"favorites"`
	Comments  []string `yaml:"comments"`

	// BottomBar lists the broader regions scanned for generic counters when
	// the engagement region yields no counts.
	BottomBar []string `yaml:"bottom_bar"`
	Count     string   `yaml:"count"`
}

// DefaultProfile returns the selectors for the current XiaoHongShu web markup.
func DefaultProfile() *Profile {
	return &Profile{
		Title: []string{
			"#detail-title",
			".note-detail .title",
			".note-content .title",
			".title",
			"h1",
		},
		Body: []string{
			"#detail-desc .note-text",
			".note-content .content",
			".note-detail .content",
			".content",
			".note-desc",
		},
		Strip: []string{
			"a",
			"button",
			".interact-item",
			".location-info",
			".ip-location",
			"script",
			"style",
		},
		Region: []string{
			".interact-container",
			".engage-bar-container",
		},
		Likes: []string{
			".like-wrapper .count",
			"span.count[selected-disabled-search]",
		},
		Favorites: []string{
			".collect-wrapper .count",
		},
		Comments: []string{
			".chat-wrapper .count",
		},
		BottomBar: []string{
			".engage-bar",
			".interactions",
			".buttons",
		},
		Count: ".count",
	}
}

// Validate returns an error if any selector list is empty.
func (p *Profile) Validate() error {
	return validation.ValidateStruct(p,
		validation.Field(&p.Title, validation.Required),
		validation.Field(&p.Body, validation.Required),
		validation.Field(&p.Strip, validation.Required),
		validation.Field(&p.Region, validation.Required),
		validation.Field(&p.Likes, validation.Required),
		validation.Field(&p.Favorites, validation.Required),
		validation.Field(&p.Comments, validation.Required),
		validation.Field(&p.BottomBar, validation.Required),
		validation.Field(&p.Count, validation.Required),
	)
}

// LoadProfile reads a YAML profile from path. Lists missing from the file
// keep their default selectors. Environment variables in the file are expanded.
func LoadProfile(path string) (*Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read profile %s: %w", path, err)
	}

	p := DefaultProfile()
	if err := yaml.Unmarshal([]byte(os.ExpandEnv(string(data))), p); err != nil {
		return nil, fmt.Errorf("failed to parse profile %s: %w", path, err)
	}

	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("profile validation failed: %w", err)
	}

	return p, nil
}
