package service

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"coinbot/models"
)

func TestNewCatalog_Validation(t *testing.T) {
	tests := []struct {
		name  string
		items []models.Item
	}{
		{"empty", nil},
		{"zero id", []models.Item{{ID: 0, Name: "x", Price: 10}}},
		{"negative id", []models.Item{{ID: -1, Name: "x", Price: 10}}},
		{"zero price", []models.Item{{ID: 1, Name: "x", Price: 0}}},
		{"duplicate id", []models.Item{
			{ID: 1, Name: "x", Price: 10},
			{ID: 1, Name: "y", Price: 20},
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewCatalog(tt.items)
			assert.Error(t, err)
		})
	}
}

func TestDefaultCatalog(t *testing.T) {
	catalog := DefaultCatalog()
	assert.NotEmpty(t, catalog.Items())

	item, ok := catalog.ItemByID(1)
	assert.True(t, ok)
	assert.Equal(t, "Fishing Rod", item.Name)

	_, ok = catalog.ItemByID(999)
	assert.False(t, ok)
}

func TestLoadCatalogFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.toml")
	content := `
[[items]]
id = 1
name = "Mystery Box"
price = 75
description = "Who knows what's inside."

[[items]]
id = 2
name = "VIP Badge"
price = 1000
description = "Shiny."
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	catalog, err := LoadCatalogFile(path)
	require.NoError(t, err)
	require.Len(t, catalog.Items(), 2)

	item, ok := catalog.ItemByID(2)
	require.True(t, ok)
	assert.Equal(t, "VIP Badge", item.Name)
	assert.Equal(t, int64(1000), item.Price)
}

func TestLoadCatalogFile_Invalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.toml")
	content := `
[[items]]
id = 1
name = "Freebie"
price = 0
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	_, err := LoadCatalogFile(path)
	assert.Error(t, err)

	_, err = LoadCatalogFile(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}
