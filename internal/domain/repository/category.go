package repository

import "strings"

// Category clasifica un producto del catálogo.
type Category string

const (
	CategoryCardio      Category = "CARDIO"
	CategoryStrength    Category = "STRENGTH"
	CategoryMobility    Category = "MOBILITY"
	CategoryRecovery    Category = "RECOVERY"
	CategoryHomeGym     Category = "HOME_GYM"
	CategoryAccessories Category = "ACCESSORIES"
	CategoryPlyometrics Category = "PLYOMETRICS"
	CategoryCore        Category = "CORE"
	CategoryOutdoor     Category = "OUTDOOR"
	CategoryOther       Category = "OTHER"
)

// Categories lista todas las categorías conocidas, en orden de catálogo.
var Categories = []Category{
	CategoryCardio,
	CategoryStrength,
	CategoryMobility,
	CategoryRecovery,
	CategoryHomeGym,
	CategoryAccessories,
	CategoryPlyometrics,
	CategoryCore,
	CategoryOutdoor,
	CategoryOther,
}

var categoryDisplayNames = map[Category]string{
	CategoryCardio:      "Cardio",
	CategoryStrength:    "Strength",
	CategoryMobility:    "Mobility",
	CategoryRecovery:    "Recovery",
	CategoryHomeGym:     "Home Gym",
	CategoryAccessories: "Accessories",
	CategoryPlyometrics: "Plyometrics",
	CategoryCore:        "Core",
	CategoryOutdoor:     "Outdoor/Functional",
	CategoryOther:       "Other",
}

// DisplayName retorna el nombre legible de la categoría.
func (c Category) DisplayName() string {
	if name, ok := categoryDisplayNames[c]; ok {
		return name
	}
	return string(c)
}

// IsValid indica si la categoría es una de las conocidas.
func (c Category) IsValid() bool {
	_, ok := categoryDisplayNames[c]
	return ok
}

// ParseCategory convierte un string a Category, case-insensitive.
// Retorna ("", false) si el valor no corresponde a ninguna categoría.
func ParseCategory(value string) (Category, bool) {
	c := Category(strings.ToUpper(strings.TrimSpace(value)))
	if c.IsValid() {
		return c, true
	}
	return "", false
}
