package catalog

import (
	"Bakify-Web/domain"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestShareTextAllFields(t *testing.T) {
	recipe := domain.Recipe{
		UUID:            "a",
		Title:           "Banana Bread",
		Description:     "Moist and sweet.",
		Category:        "Baking",
		PrepTimeMinutes: 15,
		CookTimeMinutes: 60,
		Servings:        8,
		Ingredients:     "3 bananas\n2 cups flour",
		Instructions:    "Mash bananas.\nBake for an hour.",
		Source:          "https://example.com/banana",
	}

	want := "Banana Bread\n\n" +
		"Moist and sweet.\n\n" +
		"Prep: 15 min | Cook: 60 min | Servings: 8\n" +
		"Category: Baking\n" +
		"\nIngredients:\n3 bananas\n2 cups flour\n" +
		"\nInstructions:\nMash bananas.\nBake for an hour.\n" +
		"\nSource: https://example.com/banana\n" +
		"\n— Shared from Bakify"

	assert.Equal(t, want, ShareText(recipe))
}

func TestShareTextOmitsAbsentSections(t *testing.T) {
	recipe := domain.Recipe{UUID: "a", Title: "Toast"}

	want := "Toast\n\n" +
		"Prep: 0 min | Cook: 0 min | Servings: 1\n" +
		"\n— Shared from Bakify"

	assert.Equal(t, want, ShareText(recipe))
}

func TestShareTextSectionOrder(t *testing.T) {
	recipe := domain.Recipe{
		Title:        "Tea",
		Category:     "Drinks",
		Instructions: "Steep.",
		Source:       "grandma",
	}

	text := ShareText(recipe)
	category := strings.Index(text, "Category:")
	instructions := strings.Index(text, "Instructions:")
	source := strings.Index(text, "Source:")
	attribution := strings.Index(text, "— Shared from Bakify")

	assert.NotContains(t, text, "Ingredients:")
	assert.True(t, category < instructions, "category before instructions")
	assert.True(t, instructions < source, "instructions before source")
	assert.True(t, source < attribution, "source before attribution")

	// each populated field appears exactly once
	assert.Equal(t, 1, strings.Count(text, "Steep."))
	assert.Equal(t, 1, strings.Count(text, "grandma"))
}
