package catalog

import (
	"Bakify-Web/domain"
	"fmt"
	"strings"
)

const productName = "Bakify"

// ShareText renders a recipe into the plain-text block consumed by the
// viewer's share sheet. Section order is fixed; sections whose source
// field is absent are omitted, except the title and timing lines which
// always appear.
func ShareText(recipe domain.Recipe) string {
	var b strings.Builder

	b.WriteString(recipe.Title)
	b.WriteString("\n\n")

	if recipe.Description != "" {
		b.WriteString(recipe.Description)
		b.WriteString("\n\n")
	}

	servings := recipe.Servings
	if servings == 0 {
		servings = 1
	}
	fmt.Fprintf(&b, "Prep: %d min | Cook: %d min | Servings: %d\n", recipe.PrepTimeMinutes, recipe.CookTimeMinutes, servings)

	if recipe.Category != "" {
		fmt.Fprintf(&b, "Category: %s\n", recipe.Category)
	}

	if recipe.Ingredients != "" {
		b.WriteString("\nIngredients:\n")
		b.WriteString(recipe.Ingredients)
		b.WriteString("\n")
	}

	if recipe.Instructions != "" {
		b.WriteString("\nInstructions:\n")
		b.WriteString(recipe.Instructions)
		b.WriteString("\n")
	}

	if recipe.Source != "" {
		b.WriteString("\nSource: ")
		b.WriteString(recipe.Source)
		b.WriteString("\n")
	}

	b.WriteString("\n— Shared from ")
	b.WriteString(productName)

	return b.String()
}
