// File: entities/backup.go
package entities

// Backup mirrors the JSON document written by the Bakify Android app's
// Drive backup. Both fields may be absent.
type Backup struct {
	Recipes []Recipe          `json:"recipes"`
	Images  map[string]string `json:"images"`
}

// Recipe is one backup record. Key names are fixed by the Android app.
type Recipe struct {
	UUID            string `json:"uuid"`
	Title           string `json:"title"`
	Description     string `json:"description"`
	Category        string `json:"category"`
	Tags            string `json:"tags"`
	PrepTimeMinutes int    `json:"prep_time_minutes"`
	CookTimeMinutes int    `json:"cook_time_minutes"`
	Servings        int    `json:"servings"`
	IsFavorite      bool   `json:"isFavorite"`
	Ingredients     string `json:"ingredients"`
	Instructions    string `json:"instructions"`
	Nutrition       string `json:"nutrition"`
	Notes           string `json:"notes"`
	Source          string `json:"source"`
	ImageURI        string `json:"imageUri"`
}
