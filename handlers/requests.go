package handlers

import (
	"fmt"
	"net/url"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/Dave-funds/betahome/models"
	"github.com/Dave-funds/betahome/utils"
)

// CreatePropertyRequest holds the textual fields of a new listing.
type CreatePropertyRequest struct {
	Title          string
	Location       string
	Description    string
	Price          float64
	PropertyType   string
	Tags           string
	PropertyStatus string
	Bedroom        int
	Bathrooms      int
	Garage         bool
	SquareFeet     float64
	Name           string
	PhoneNumber    string
	WhatsappNumber string
}

func bindCreateRequest(c echo.Context) (*CreatePropertyRequest, error) {
	values, err := c.FormParams()
	if err != nil {
		return nil, fmt.Errorf("invalid request body")
	}

	req := &CreatePropertyRequest{
		Title:          values.Get("title"),
		Location:       values.Get("location"),
		Description:    values.Get("description"),
		PropertyType:   values.Get("propertyType"),
		Tags:           values.Get("tags"),
		PropertyStatus: values.Get("propertyStatus"),
		Name:           values.Get("name"),
		PhoneNumber:    values.Get("phoneNumber"),
		WhatsappNumber: values.Get("whatsappNumber"),
	}

	if req.Price, err = parseFloat(values, "price"); err != nil {
		return nil, err
	}
	if req.SquareFeet, err = parseFloat(values, "squareFeet"); err != nil {
		return nil, err
	}
	if req.Bedroom, err = parseInt(values, "bedroom"); err != nil {
		return nil, err
	}
	if req.Bathrooms, err = parseInt(values, "bathrooms"); err != nil {
		return nil, err
	}
	if req.Garage, err = parseBool(values, "garage"); err != nil {
		return nil, err
	}
	return req, nil
}

func (r *CreatePropertyRequest) Validate() error {
	for field, value := range map[string]string{
		"title":          r.Title,
		"location":       r.Location,
		"description":    r.Description,
		"name":           r.Name,
		"phoneNumber":    r.PhoneNumber,
		"whatsappNumber": r.WhatsappNumber,
	} {
		if value == "" {
			return fmt.Errorf("%s is required", field)
		}
	}
	if r.Price <= 0 {
		return fmt.Errorf("price is required")
	}
	if r.PropertyType != "" && !utils.IsValidPropertyType(r.PropertyType) {
		return fmt.Errorf("invalid propertyType %q", r.PropertyType)
	}
	if r.Tags != "" && !utils.IsValidTag(r.Tags) {
		return fmt.Errorf("invalid tags %q", r.Tags)
	}
	if r.PropertyStatus != "" && !utils.IsValidPropertyStatus(r.PropertyStatus) {
		return fmt.Errorf("invalid propertyStatus %q", r.PropertyStatus)
	}
	if r.Bedroom < 0 || r.Bathrooms < 0 || r.SquareFeet < 0 {
		return fmt.Errorf("bedroom, bathrooms and squareFeet must not be negative")
	}
	return nil
}

// ToProperty builds the document shell; media and avatar are attached by the
// handler once the uploads have resolved.
func (r *CreatePropertyRequest) ToProperty() *models.Property {
	return &models.Property{
		Title:          r.Title,
		Location:       r.Location,
		Description:    r.Description,
		Price:          r.Price,
		PropertyType:   r.PropertyType,
		Tags:           r.Tags,
		PropertyStatus: r.PropertyStatus,
		Bedroom:        r.Bedroom,
		Bathrooms:      r.Bathrooms,
		Garage:         r.Garage,
		SquareFeet:     r.SquareFeet,
		SalesSupport: models.SalesSupport{
			Name:           r.Name,
			PhoneNumber:    r.PhoneNumber,
			WhatsappNumber: r.WhatsappNumber,
		},
	}
}

// bindUpdateRequest reads a partial edit. A field is part of the update only
// when its form key was actually submitted, so omitted fields keep their
// stored values.
func bindUpdateRequest(c echo.Context) (models.PropertyUpdate, error) {
	var update models.PropertyUpdate

	values, err := c.FormParams()
	if err != nil {
		return update, fmt.Errorf("invalid request body")
	}

	update.Title = formString(values, "title")
	update.Location = formString(values, "location")
	update.Description = formString(values, "description")
	update.Name = formString(values, "name")
	update.PhoneNumber = formString(values, "phoneNumber")
	update.WhatsappNumber = formString(values, "whatsappNumber")

	if v := formString(values, "propertyType"); v != nil {
		if !utils.IsValidPropertyType(*v) {
			return update, fmt.Errorf("invalid propertyType %q", *v)
		}
		update.PropertyType = v
	}
	if v := formString(values, "tags"); v != nil {
		if !utils.IsValidTag(*v) {
			return update, fmt.Errorf("invalid tags %q", *v)
		}
		update.Tags = v
	}
	if v := formString(values, "propertyStatus"); v != nil {
		if !utils.IsValidPropertyStatus(*v) {
			return update, fmt.Errorf("invalid propertyStatus %q", *v)
		}
		update.PropertyStatus = v
	}

	if v, has := values["price"]; has {
		price, err := strconv.ParseFloat(v[0], 64)
		if err != nil {
			return update, fmt.Errorf("invalid price %q", v[0])
		}
		update.Price = &price
	}
	if v, has := values["squareFeet"]; has {
		sqft, err := strconv.ParseFloat(v[0], 64)
		if err != nil {
			return update, fmt.Errorf("invalid squareFeet %q", v[0])
		}
		update.SquareFeet = &sqft
	}
	if v, has := values["bedroom"]; has {
		bedroom, err := strconv.Atoi(v[0])
		if err != nil {
			return update, fmt.Errorf("invalid bedroom %q", v[0])
		}
		update.Bedroom = &bedroom
	}
	if v, has := values["bathrooms"]; has {
		bathrooms, err := strconv.Atoi(v[0])
		if err != nil {
			return update, fmt.Errorf("invalid bathrooms %q", v[0])
		}
		update.Bathrooms = &bathrooms
	}
	if v, has := values["garage"]; has {
		garage, err := strconv.ParseBool(v[0])
		if err != nil {
			return update, fmt.Errorf("invalid garage %q", v[0])
		}
		update.Garage = &garage
	}
	return update, nil
}

func formString(values url.Values, key string) *string {
	if v, has := values[key]; has {
		return &v[0]
	}
	return nil
}

func parseFloat(values url.Values, key string) (float64, error) {
	v := values.Get(key)
	if v == "" {
		return 0, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q", key, v)
	}
	return f, nil
}

func parseInt(values url.Values, key string) (int, error) {
	v := values.Get(key)
	if v == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q", key, v)
	}
	return n, nil
}

func parseBool(values url.Values, key string) (bool, error) {
	v := values.Get(key)
	if v == "" {
		return false, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("invalid %s %q", key, v)
	}
	return b, nil
}
