package routes

import (
	"github.com/labstack/echo/v4"

	"github.com/Dave-funds/betahome/handlers"
	"github.com/Dave-funds/betahome/middleware"
)

type Controllers struct {
	Property *handlers.PropertyController
	User     *handlers.UserController
	Saved    *handlers.SavedController
	Enquiry  *handlers.EnquiryController
}

func RegisterRoutes(e *echo.Echo, c Controllers) {
	e.GET("/health", handlers.HealthCheck)

	e.GET("/properties", c.Property.ListProperties)
	e.POST("/properties", c.Property.CreateProperty)
	e.GET("/properties/recent", c.Property.RecentProperties)
	e.GET("/properties/featured", c.Property.FeaturedProperties)
	e.GET("/properties/:propertyId", c.Property.GetProperty)
	e.PATCH("/properties/:propertyId", c.Property.UpdateProperty)
	e.DELETE("/properties/:propertyId", c.Property.DeleteProperty)

	e.POST("/properties/:propertyId/enquiries", c.Enquiry.CreateEnquiry)

	e.POST("/auth/register", c.User.Register)
	e.POST("/auth/login", c.User.Login)

	auth := middleware.JWTMiddleware()
	e.GET("/auth/me", c.User.GetProfile, auth)
	e.GET("/enquiries", c.Enquiry.ListEnquiries, auth)
	e.POST("/properties/:propertyId/saved", c.Saved.SaveProperty, auth)
	e.GET("/saved", c.Saved.ListSaved, auth)
	e.DELETE("/saved/:propertyId", c.Saved.RemoveSaved, auth)
}
