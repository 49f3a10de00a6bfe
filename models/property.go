package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	PropertyTypeHouse = "house"
	PropertyTypeLand  = "land"

	StatusAvailable = "available"
	StatusSold      = "sold"
)

// DefaultAvatarURL is used when a listing is created without an avatar file.
const DefaultAvatarURL = "https://static-00.iconduck.com/assets.00/avatar-default-symbolic-icon-479x512-n8sg74wg.png"

// PropertyTags are the accepted values for the tags field.
var PropertyTags = []string{"luxury", "affordable", "comfortable", "spacious"}

type Media struct {
	Images []string `bson:"images" json:"images"`
	Video  string   `bson:"video" json:"video"`
}

// SalesSupport is the contact person attached to a listing.
type SalesSupport struct {
	Name           string `bson:"name" json:"name"`
	PhoneNumber    string `bson:"phoneNumber" json:"phoneNumber"`
	WhatsappNumber string `bson:"whatsappNumber" json:"whatsappNumber"`
	Avatar         string `bson:"avatar" json:"avatar"`
}

type Property struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title          string             `bson:"title" json:"title"`
	Location       string             `bson:"location" json:"location"`
	Description    string             `bson:"description" json:"description"`
	Price          float64            `bson:"price" json:"price"`
	PropertyType   string             `bson:"propertyType" json:"propertyType"`
	Tags           string             `bson:"tags" json:"tags"`
	PropertyStatus string             `bson:"propertyStatus" json:"propertyStatus"`
	Bedroom        int                `bson:"bedroom" json:"bedroom"`
	Bathrooms      int                `bson:"bathrooms" json:"bathrooms"`
	Garage         bool               `bson:"garage" json:"garage"`
	SquareFeet     float64            `bson:"squareFeet" json:"squareFeet"`
	Media          Media              `bson:"media" json:"media"`
	SalesSupport   SalesSupport       `bson:"salesSupport" json:"salesSupport"`
	CreatedAt      time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt      time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// PropertyUpdate carries a partial edit. A nil field means "keep the stored
// value"; asset fields are set only when the corresponding file was
// re-uploaded in the request.
type PropertyUpdate struct {
	Title          *string
	Location       *string
	Description    *string
	Price          *float64
	PropertyType   *string
	Tags           *string
	PropertyStatus *string
	Bedroom        *int
	Bathrooms      *int
	Garage         *bool
	SquareFeet     *float64
	Name           *string
	PhoneNumber    *string
	WhatsappNumber *string
	Avatar         *string
	Images         []string
	Video          *string
}

// ApplyUpdate merges u into p field by field.
func (p *Property) ApplyUpdate(u PropertyUpdate) {
	if u.Title != nil {
		p.Title = *u.Title
	}
	if u.Location != nil {
		p.Location = *u.Location
	}
	if u.Description != nil {
		p.Description = *u.Description
	}
	if u.Price != nil {
		p.Price = *u.Price
	}
	if u.PropertyType != nil {
		p.PropertyType = *u.PropertyType
	}
	if u.Tags != nil {
		p.Tags = *u.Tags
	}
	if u.PropertyStatus != nil {
		p.PropertyStatus = *u.PropertyStatus
	}
	if u.Bedroom != nil {
		p.Bedroom = *u.Bedroom
	}
	if u.Bathrooms != nil {
		p.Bathrooms = *u.Bathrooms
	}
	if u.Garage != nil {
		p.Garage = *u.Garage
	}
	if u.SquareFeet != nil {
		p.SquareFeet = *u.SquareFeet
	}
	if u.Name != nil {
		p.SalesSupport.Name = *u.Name
	}
	if u.PhoneNumber != nil {
		p.SalesSupport.PhoneNumber = *u.PhoneNumber
	}
	if u.WhatsappNumber != nil {
		p.SalesSupport.WhatsappNumber = *u.WhatsappNumber
	}
	if u.Avatar != nil {
		p.SalesSupport.Avatar = *u.Avatar
	}
	if u.Images != nil {
		p.Media.Images = u.Images
	}
	if u.Video != nil {
		p.Media.Video = *u.Video
	}
}

// ApplyDefaults fills the fields the catalog defaults on create.
func (p *Property) ApplyDefaults() {
	if p.PropertyStatus == "" {
		p.PropertyStatus = StatusAvailable
	}
	if p.SalesSupport.Avatar == "" {
		p.SalesSupport.Avatar = DefaultAvatarURL
	}
	if p.Media.Images == nil {
		p.Media.Images = []string{}
	}
}
