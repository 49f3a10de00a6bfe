package repository

import (
	"testing"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestBuildFilterEmpty(t *testing.T) {
	filter := buildFilter(ListQuery{})
	if len(filter) != 0 {
		t.Errorf("empty query should build an empty filter, got %v", filter)
	}
}

func TestBuildFilterCaseInsensitiveRegex(t *testing.T) {
	filter := buildFilter(ListQuery{Location: "accra", PropertyType: "hou"})

	loc, ok := filter["location"].(bson.M)
	if !ok {
		t.Fatalf("location filter = %v, want bson.M", filter["location"])
	}
	if loc["$regex"] != "accra" || loc["$options"] != "i" {
		t.Errorf("location filter = %v, want case-insensitive regex", loc)
	}

	typ, ok := filter["propertyType"].(bson.M)
	if !ok {
		t.Fatalf("propertyType filter = %v, want bson.M", filter["propertyType"])
	}
	if typ["$regex"] != "hou" || typ["$options"] != "i" {
		t.Errorf("propertyType filter = %v, want case-insensitive regex", typ)
	}
}

func TestBuildFilterBedroomExact(t *testing.T) {
	three := 3
	filter := buildFilter(ListQuery{Bedroom: &three})
	if filter["bedroom"] != 3 {
		t.Errorf("bedroom filter = %v, want exact 3", filter["bedroom"])
	}
}

func TestBuildFilterExcludeID(t *testing.T) {
	id := primitive.NewObjectID()
	filter := buildFilter(ListQuery{ExcludeID: id})

	ne, ok := filter["_id"].(bson.M)
	if !ok {
		t.Fatalf("_id filter = %v, want bson.M", filter["_id"])
	}
	if ne["$ne"] != id {
		t.Errorf("_id filter = %v, want $ne %s", ne, id.Hex())
	}
}

func TestSortSpecDefault(t *testing.T) {
	for _, sortBy := range []string{"", "createdAt", "bogus", "price; drop"} {
		spec := sortSpec(sortBy)
		if len(spec) != 1 || spec[0].Key != "createdAt" || spec[0].Value != -1 {
			t.Errorf("sortSpec(%q) = %v, want createdAt descending", sortBy, spec)
		}
	}
}

func TestSortSpecWhitelistedField(t *testing.T) {
	spec := sortSpec("price")
	if len(spec) != 2 {
		t.Fatalf("sortSpec(price) = %v, want field + tie-break", spec)
	}
	if spec[0].Key != "price" || spec[0].Value != 1 {
		t.Errorf("primary sort = %v, want price ascending", spec[0])
	}
	if spec[1].Key != "createdAt" || spec[1].Value != -1 {
		t.Errorf("tie-break = %v, want createdAt descending", spec[1])
	}
}
