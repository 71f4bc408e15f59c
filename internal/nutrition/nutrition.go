// Package nutrition rolls per-serving recipe nutrition up into daily totals.
package nutrition

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"mealmate/internal/models"
)

//go:generate mockgen -source=nutrition.go -destination=mock_finder_test.go -package=nutrition

// RecipeFinder loads recipes by id. Ids with no matching document are simply
// absent from the result.
type RecipeFinder interface {
	FindByIDs(ctx context.Context, ids []primitive.ObjectID) ([]models.Recipe, error)
}

type Totals struct {
	TotalCalories float64 `json:"totalCalories"`
	TotalProtein  float64 `json:"totalProtein"`
	TotalFat      float64 `json:"totalFat"`
	TotalCarbs    float64 `json:"totalCarbs"`
}

// Apply copies the totals onto a daily menu.
func (t Totals) Apply(menu *models.DailyMenu) {
	menu.TotalCalories = t.TotalCalories
	menu.TotalProtein = t.TotalProtein
	menu.TotalFat = t.TotalFat
	menu.TotalCarbs = t.TotalCarbs
}

// EntryQuantity returns the multiplier for an entry; unset or non-positive
// quantities count as one portion.
func EntryQuantity(entry models.MealEntry) float64 {
	if entry.Quantity <= 0 {
		return 1
	}
	return entry.Quantity
}

// Compute sums recipe calories and macros weighted by entry quantity across
// every meal slot. Entries that reference a recipe which no longer exists are
// skipped. Each distinct recipe is fetched once. The only error returned is a
// failure of the finder itself.
func Compute(ctx context.Context, finder RecipeFinder, meals models.Meals) (Totals, error) {
	entries := meals.All()
	if len(entries) == 0 {
		return Totals{}, nil
	}

	seen := make(map[primitive.ObjectID]struct{}, len(entries))
	ids := make([]primitive.ObjectID, 0, len(entries))
	for _, entry := range entries {
		if entry.Recipe.IsZero() {
			continue
		}
		if _, ok := seen[entry.Recipe]; ok {
			continue
		}
		seen[entry.Recipe] = struct{}{}
		ids = append(ids, entry.Recipe)
	}
	if len(ids) == 0 {
		return Totals{}, nil
	}

	recipes, err := finder.FindByIDs(ctx, ids)
	if err != nil {
		return Totals{}, err
	}

	byID := make(map[primitive.ObjectID]models.Recipe, len(recipes))
	for _, recipe := range recipes {
		byID[recipe.ID] = recipe
	}

	return Sum(entries, byID), nil
}

// Sum is the pure part of Compute: it weights each entry's recipe by its
// quantity. Entries missing from recipes contribute nothing.
func Sum(entries []models.MealEntry, recipes map[primitive.ObjectID]models.Recipe) Totals {
	var totals Totals
	for _, entry := range entries {
		recipe, ok := recipes[entry.Recipe]
		if !ok {
			continue
		}
		q := EntryQuantity(entry)
		totals.TotalCalories += recipe.Calories * q
		totals.TotalProtein += recipe.Nutrition.Protein * q
		totals.TotalFat += recipe.Nutrition.Fat * q
		totals.TotalCarbs += recipe.Nutrition.Carbs * q
	}
	return totals
}
