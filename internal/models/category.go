package models

import "fmt"

// Category is the muscle-group / training category of an exercise.
// Only the members listed in Categories are valid; free-form strings are rejected
// at validation time so invalid categories never enter the store.
type Category string

const (
	CategoryChest     Category = "Chest"
	CategoryBack      Category = "Back"
	CategoryLegs      Category = "Legs"
	CategoryShoulders Category = "Shoulders"
	CategoryArms      Category = "Arms"
	CategoryCore      Category = "Core"
	CategoryCardio    Category = "Cardio"
)

// Categories returns the fixed category set in display order.
func Categories() []Category {
	return []Category{
		CategoryChest,
		CategoryBack,
		CategoryLegs,
		CategoryShoulders,
		CategoryArms,
		CategoryCore,
		CategoryCardio,
	}
}

// Valid reports whether c is a member of the fixed category set.
func (c Category) Valid() bool {
	for _, v := range Categories() {
		if c == v {
			return true
		}
	}
	return false
}

// ParseCategory parses a category name, case-sensitively, against the fixed set.
func ParseCategory(s string) (Category, error) {
	c := Category(s)
	if !c.Valid() {
		return "", fmt.Errorf("invalid category: %s", s)
	}
	return c, nil
}
