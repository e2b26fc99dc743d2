package seed

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"petcare-hub/internal/domain/lostfound"

	"cloud.google.com/go/civil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault_LoadsEmbeddedCatalog(t *testing.T) {
	c, err := Default()
	require.NoError(t, err)

	assert.Len(t, c.AdoptionPets, 8)
	assert.Len(t, c.Products, 8)
	assert.Len(t, c.Articles, 6)
	assert.Len(t, c.Videos, 4)
	assert.Len(t, c.LostFound, 5)
	assert.Len(t, c.GroomingServices, 6)
	assert.Len(t, c.Groomers, 3)
	assert.Len(t, c.EmergencyContacts, 3)
	assert.Len(t, c.FirstAidTips, 4)

	assert.Equal(t, int64(4999), c.Products[0].PriceCents)
	assert.Equal(t, civil.Date{Year: 2025, Month: time.January, Day: 15}, c.Articles[0].PublishedOn)
	assert.Equal(t, lostfound.KindFound, c.LostFound[3].Kind)
	assert.Equal(t, "Basic Bath & Brush", c.GroomingServices[0].Name)
	assert.Equal(t, 5.0, c.Groomers[2].Rating)
}

func TestLoad_FromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	body := `
products:
  - {id: "p1", name: Bowl, category: Food, price_cents: 999, in_stock: true}
lost_found:
  - {id: r1, kind: lost, name: Rex, type: Dog, location: Park, date: "2025-03-01"}
`
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	c, err := Load(path)
	require.NoError(t, err)
	require.Len(t, c.Products, 1)
	assert.Empty(t, c.AdoptionPets)
	require.Len(t, c.LostFound, 1)
	assert.Equal(t, lostfound.StatusOpen, c.LostFound[0].Status)
}

func TestParse_Rejects(t *testing.T) {
	cases := map[string]string{
		"unknown field": `products: [{id: "1", nombre: X}]`,
		"duplicate id":  `groomers: [{id: "1", name: A}, {id: "1", name: B}]`,
		"missing id":    `videos: [{title: X}]`,
		"bad kind":      `lost_found: [{id: x, kind: stolen, date: "2025-01-01"}]`,
		"bad date":      `lost_found: [{id: x, kind: lost, date: "2025-02-30"}]`,
		"bad severity":  `first_aid_tips: [{title: X, severity: mild}]`,
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Parse([]byte(body))
			assert.ErrorIs(t, err, ErrInvalidCatalog)
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
