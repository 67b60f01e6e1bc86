package models

// Gender values accepted by the AI flows.
const (
	GenderMale   = "Male"
	GenderFemale = "Female"
	GenderOther  = "Other"
)

// Dietary preferences accepted by the meal planner.
const (
	DietVegetarian    = "Vegetarian"
	DietNonVegetarian = "Non-Vegetarian"
)

// Meal types, always returned in this order.
const (
	MealBreakfast = "Breakfast"
	MealLunch     = "Lunch"
	MealDinner    = "Dinner"
)

// MealPlanInput is the profile a meal plan is generated for.
type MealPlanInput struct {
	Age               int    `json:"age"`
	Gender            string `json:"gender"`
	DietaryPreference string `json:"dietaryPreference"`
}

// MealSuggestion is a single suggested dish for one meal of the day.
type MealSuggestion struct {
	MealType    string `json:"mealType"`
	Description string `json:"description"`
}

// MealPlan is a one-day plan of exactly three meals (Breakfast, Lunch,
// Dinner, in that order) plus optional general dietary advice.
type MealPlan struct {
	MealPlan      []MealSuggestion `json:"mealPlan"`
	GeneralAdvice string           `json:"generalAdvice,omitempty"`
}
