package utils

import "testing"

func TestIsValidPropertyType(t *testing.T) {
	valid := []string{"house", "land"}
	for _, v := range valid {
		if !IsValidPropertyType(v) {
			t.Errorf("IsValidPropertyType(%q) = false, want true", v)
		}
	}
	invalid := []string{"", "House", "landed", "apartment"}
	for _, v := range invalid {
		if IsValidPropertyType(v) {
			t.Errorf("IsValidPropertyType(%q) = true, want false", v)
		}
	}
}

func TestIsValidPropertyStatus(t *testing.T) {
	if !IsValidPropertyStatus("available") || !IsValidPropertyStatus("sold") {
		t.Error("available and sold must be accepted")
	}
	if IsValidPropertyStatus("availaible") {
		t.Error("the legacy misspelling must be rejected")
	}
	if IsValidPropertyStatus("pending") {
		t.Error("pending must be rejected")
	}
}

func TestIsValidTag(t *testing.T) {
	for _, tag := range []string{"luxury", "affordable", "comfortable", "spacious"} {
		if !IsValidTag(tag) {
			t.Errorf("IsValidTag(%q) = false, want true", tag)
		}
	}
	if IsValidTag("cheap") || IsValidTag("") {
		t.Error("unknown tags must be rejected")
	}
}
