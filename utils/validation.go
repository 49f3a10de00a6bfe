package utils

import (
	"github.com/Dave-funds/betahome/models"
)

func IsValidPropertyType(t string) bool {
	return t == models.PropertyTypeHouse || t == models.PropertyTypeLand
}

func IsValidPropertyStatus(s string) bool {
	return s == models.StatusAvailable || s == models.StatusSold
}

func IsValidTag(tag string) bool {
	for _, t := range models.PropertyTags {
		if tag == t {
			return true
		}
	}
	return false
}
