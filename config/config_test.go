package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/Rodrigo-Rojo/blog/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadSite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "site.toml")
	content := `
title = "Rodrigo's Blog"
author = "Rodrigo"

[[nav_links]]
href = "/about"
text = "About Me"

[[nav_links]]
href = "/contact"
text = "Get In Touch"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	site, err := config.LoadSite(path)
	require.NoError(t, err)
	assert.Equal(t, "Rodrigo's Blog", site.Title)
	assert.Equal(t, "Rodrigo", site.Author)
	require.Len(t, site.NavLinks, 2)
	assert.Equal(t, "/about", site.NavLinks[0].Href)
	assert.Equal(t, "Get In Touch", site.NavLinks[1].Text)
}

func TestLoadSiteMissingFile(t *testing.T) {
	_, err := config.LoadSite(filepath.Join(t.TempDir(), "nope.toml"))
	assert.Error(t, err)
}

func TestMailAddr(t *testing.T) {
	m := config.Mail{Host: "smtp.example.com", Port: 587}
	assert.Equal(t, "smtp.example.com:587", m.Addr())
}
