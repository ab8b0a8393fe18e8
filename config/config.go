package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// NavLink is a single entry in the navigation bar.
type NavLink struct {
	Href string `toml:"href"`
	Text string `toml:"text"`
}

// Site holds the page chrome rendered on every view.
type Site struct {
	Title    string    `toml:"title"`
	Author   string    `toml:"author"`
	NavLinks []NavLink `toml:"nav_links"`
}

// Mail holds the SMTP relay settings and the account used to authenticate.
// It is read once at startup and handed to the mailer at construction.
type Mail struct {
	Host     string
	Port     int
	Account  string
	Password string
}

func (m Mail) Addr() string {
	return fmt.Sprintf("%s:%d", m.Host, m.Port)
}

func DefaultSite() Site {
	return Site{
		Title:  "My Blog",
		Author: "Anonymous",
		NavLinks: []NavLink{
			{Href: "/about", Text: "About"},
			{Href: "/contact", Text: "Contact"},
		},
	}
}

// LoadSite reads the site chrome from a TOML file.
func LoadSite(path string) (Site, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Site{}, fmt.Errorf("error reading site config file: %w", err)
	}

	site := DefaultSite()
	if err := toml.Unmarshal(data, &site); err != nil {
		return Site{}, fmt.Errorf("error parsing site config file: %w", err)
	}
	return site, nil
}
