package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/pkg/errors"

	"ondoctor-server/internal/cache"
	"ondoctor-server/internal/models"
)

const mealPlanPrompt = `You are an expert nutritionist AI. Your task is to generate a sample one-day meal plan
and provide brief general dietary advice based on the user's age, gender, and dietary preference.

User Details:
Age: %d years
Gender: %s
Dietary Preference: %s

Instructions:
- You MUST provide exactly three meal suggestions in a JSON field called 'mealPlan'.
- 'mealPlan' should be an array of objects. Each object must have a 'mealType' (string: "Breakfast", "Lunch", or "Dinner") and a 'description' (string: a concise description of a suitable dish).
- The meal suggestions MUST be in the order: Breakfast, Lunch, Dinner.
- Ensure the suggestions are balanced and appropriate for the given profile.
- The meal plan should prioritize foods rich in protein and essential minerals. Consider sources like lean meats, fish, poultry, beans, lentils, tofu, nuts, seeds, dairy or fortified plant-based alternatives, and a variety of fruits and vegetables, especially leafy greens.
- If the preference is 'Vegetarian', all suggestions must be strictly vegetarian (no meat or fish), while still focusing on protein and mineral content from plant-based sources.
- If the preference is 'Non-Vegetarian', you can include meat, fish, or poultry, but aim for balanced intake and variety, emphasizing lean protein and mineral-dense options.
- Provide general dietary advice (1-2 helpful sentences) in a JSON field called 'generalAdvice'.
- Structure your ENTIRE output as a single, valid JSON object with only the 'mealPlan' and 'generalAdvice' fields.`

// ValidateMealPlanInput checks the requested profile.
func ValidateMealPlanInput(in models.MealPlanInput) error {
	return validation.ValidateStruct(&in,
		validation.Field(&in.Age, validation.Required, validation.Min(1)),
		validation.Field(&in.Gender,
			validation.Required,
			validation.In(models.GenderMale, models.GenderFemale, models.GenderOther)),
		validation.Field(&in.DietaryPreference,
			validation.Required,
			validation.In(models.DietVegetarian, models.DietNonVegetarian)),
	)
}

// MealPlanner generates one-day meal plans. Generated plans are cached per
// profile: the same age/gender/preference yields the same plan until the
// cache entry expires.
type MealPlanner struct {
	client *Client
	cache  *cache.Cache
	ttl    time.Duration
}

// NewMealPlanner wires the planner. cache may be nil (caching disabled).
func NewMealPlanner(client *Client, c *cache.Cache, ttl time.Duration) *MealPlanner {
	return &MealPlanner{client: client, cache: c, ttl: ttl}
}

// Generate produces a plan of exactly three meals (Breakfast, Lunch, Dinner,
// in that order) for the given profile. The model's JSON output is validated
// against that shape before it is returned or cached.
func (p *MealPlanner) Generate(ctx context.Context, in models.MealPlanInput) (models.MealPlan, error) {
	if err := ValidateMealPlanInput(in); err != nil {
		return models.MealPlan{}, err
	}

	key := fmt.Sprintf("mealplan:%d:%s:%s", in.Age, in.Gender, in.DietaryPreference)
	if cached, err := p.cache.Get(ctx, key); err == nil && cached != "" {
		var plan models.MealPlan
		if err := json.Unmarshal([]byte(cached), &plan); err == nil {
			return plan, nil
		}
		// Unreadable cache entry: drop it and regenerate.
		_ = p.cache.Delete(ctx, key)
	}

	prompt := fmt.Sprintf(mealPlanPrompt, in.Age, in.Gender, in.DietaryPreference)

	var plan models.MealPlan
	if err := p.client.GenerateJSON(ctx, prompt, &plan); err != nil {
		return models.MealPlan{}, err
	}
	if err := checkMealPlanShape(plan); err != nil {
		return models.MealPlan{}, err
	}

	if encoded, err := json.Marshal(plan); err == nil {
		_ = p.cache.Set(ctx, key, string(encoded), p.ttl)
	}
	return plan, nil
}

func checkMealPlanShape(plan models.MealPlan) error {
	expected := []string{models.MealBreakfast, models.MealLunch, models.MealDinner}
	if len(plan.MealPlan) != len(expected) {
		return errors.Errorf("model returned %d meals, want %d", len(plan.MealPlan), len(expected))
	}
	for i, meal := range plan.MealPlan {
		if meal.MealType != expected[i] {
			return errors.Errorf("meal %d has type %q, want %q", i, meal.MealType, expected[i])
		}
		if meal.Description == "" {
			return errors.Errorf("meal %q has an empty description", meal.MealType)
		}
	}
	return nil
}
