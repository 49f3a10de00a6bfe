package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func strptr(s string) *string { return &s }

func floatptr(f float64) *float64 { return &f }

func sample() Property {
	return Property{
		Title:          "Villa",
		Location:       "Accra",
		Description:    "desc",
		Price:          500000,
		PropertyType:   PropertyTypeHouse,
		Tags:           "luxury",
		PropertyStatus: StatusAvailable,
		Bedroom:        3,
		Bathrooms:      2,
		Garage:         true,
		SquareFeet:     2400,
		Media: Media{
			Images: []string{"https://cdn.example/1.jpg", "https://cdn.example/2.jpg"},
			Video:  "https://cdn.example/tour.mp4",
		},
		SalesSupport: SalesSupport{
			Name:           "Ama",
			PhoneNumber:    "+233200000001",
			WhatsappNumber: "+233200000002",
			Avatar:         "https://cdn.example/ama.png",
		},
	}
}

func TestApplyUpdateReplacesOnlySuppliedFields(t *testing.T) {
	p := sample()

	p.ApplyUpdate(PropertyUpdate{
		Title: strptr("Renamed"),
		Price: floatptr(450000),
	})

	assert.Equal(t, "Renamed", p.Title)
	assert.Equal(t, 450000.0, p.Price)
	assert.Equal(t, "Accra", p.Location)
	assert.Equal(t, 3, p.Bedroom)
	assert.Equal(t, sample().Media, p.Media)
	assert.Equal(t, sample().SalesSupport, p.SalesSupport)
}

func TestApplyUpdateContactFieldsMergeIndependently(t *testing.T) {
	p := sample()

	p.ApplyUpdate(PropertyUpdate{PhoneNumber: strptr("+233555000000")})

	assert.Equal(t, "+233555000000", p.SalesSupport.PhoneNumber)
	assert.Equal(t, "Ama", p.SalesSupport.Name)
	assert.Equal(t, "+233200000002", p.SalesSupport.WhatsappNumber)
	assert.Equal(t, "https://cdn.example/ama.png", p.SalesSupport.Avatar)
}

func TestApplyUpdateAssetsReplacedPerKind(t *testing.T) {
	p := sample()

	p.ApplyUpdate(PropertyUpdate{Images: []string{"https://cdn.example/new.jpg"}})
	assert.Equal(t, []string{"https://cdn.example/new.jpg"}, p.Media.Images)
	assert.Equal(t, "https://cdn.example/tour.mp4", p.Media.Video)

	p.ApplyUpdate(PropertyUpdate{Video: strptr("https://cdn.example/new.mp4")})
	assert.Equal(t, "https://cdn.example/new.mp4", p.Media.Video)
	assert.Equal(t, []string{"https://cdn.example/new.jpg"}, p.Media.Images)
}

func TestApplyUpdateEmptyIsNoOp(t *testing.T) {
	p := sample()
	p.ApplyUpdate(PropertyUpdate{})
	assert.Equal(t, sample(), p)
}

func TestApplyDefaults(t *testing.T) {
	p := Property{Title: "Bare"}
	p.ApplyDefaults()

	assert.Equal(t, StatusAvailable, p.PropertyStatus)
	assert.Equal(t, DefaultAvatarURL, p.SalesSupport.Avatar)
	assert.NotNil(t, p.Media.Images)
	assert.Empty(t, p.Media.Images)
}

func TestApplyDefaultsDoesNotOverride(t *testing.T) {
	p := sample()
	p.PropertyStatus = StatusSold
	p.ApplyDefaults()

	assert.Equal(t, StatusSold, p.PropertyStatus)
	assert.Equal(t, "https://cdn.example/ama.png", p.SalesSupport.Avatar)
}
