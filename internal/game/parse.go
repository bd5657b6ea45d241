package game

import (
	"fmt"
	"strings"
)

// ParseCategory parses user input to a Category.
// Unknown values are an error: import and AI boundaries must reject them
// instead of letting free-form strings leak into the snapshot.
func ParseCategory(input string) (Category, error) {
	s := strings.TrimSpace(strings.ToLower(input))
	switch s {
	case "sale", "sales":
		return CategorySale, nil
	case "social":
		return CategorySocial, nil
	case "admin":
		return CategoryAdmin, nil
	case "prod":
		return CategoryProd, nil
	case "biz", "business":
		return CategoryBiz, nil
	default:
		return "", fmt.Errorf("unknown category %q (want sale|social|admin|prod|biz)", input)
	}
}

// ParsePlatform parses user input to a Platform.
// Empty or unrecognized input falls back to Instagram.
func ParsePlatform(input string) Platform {
	switch strings.TrimSpace(strings.ToLower(input)) {
	case "linkedin":
		return PlatformLinkedIn
	case "behance":
		return PlatformBehance
	default:
		return PlatformInstagram
	}
}
