package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func formContext(t *testing.T, body string) echo.Context {
	t.Helper()
	req := httptest.NewRequest(http.MethodPatch, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	return echo.New().NewContext(req, httptest.NewRecorder())
}

func TestBindUpdateRequestOnlySuppliedFields(t *testing.T) {
	c := formContext(t, "title=New&price=250000&garage=false")

	update, err := bindUpdateRequest(c)
	require.NoError(t, err)

	require.NotNil(t, update.Title)
	assert.Equal(t, "New", *update.Title)
	require.NotNil(t, update.Price)
	assert.Equal(t, 250000.0, *update.Price)
	require.NotNil(t, update.Garage)
	assert.False(t, *update.Garage)

	assert.Nil(t, update.Location)
	assert.Nil(t, update.Description)
	assert.Nil(t, update.Bedroom)
	assert.Nil(t, update.PropertyStatus)
	assert.Nil(t, update.Images)
	assert.Nil(t, update.Video)
}

func TestBindUpdateRequestEmptyBody(t *testing.T) {
	update, err := bindUpdateRequest(formContext(t, ""))
	require.NoError(t, err)
	assert.Nil(t, update.Title)
	assert.Nil(t, update.Price)
	assert.Nil(t, update.Garage)
}

func TestBindUpdateRequestRejectsBadEnum(t *testing.T) {
	_, err := bindUpdateRequest(formContext(t, "propertyStatus=pending"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "propertyStatus")
}

func TestBindUpdateRequestRejectsBadNumber(t *testing.T) {
	_, err := bindUpdateRequest(formContext(t, "price=lots"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "price")
}

func TestCreateRequestValidate(t *testing.T) {
	base := CreatePropertyRequest{
		Title:          "Villa",
		Location:       "Accra",
		Description:    "desc",
		Price:          1000,
		PropertyType:   "house",
		Tags:           "luxury",
		Name:           "Ama",
		PhoneNumber:    "+233",
		WhatsappNumber: "+233",
	}
	require.NoError(t, base.Validate())

	missing := base
	missing.Description = ""
	assert.Error(t, missing.Validate())

	noPrice := base
	noPrice.Price = 0
	assert.Error(t, noPrice.Validate())

	badTag := base
	badTag.Tags = "palatial"
	assert.Error(t, badTag.Validate())

	negative := base
	negative.Bedroom = -1
	assert.Error(t, negative.Validate())
}
