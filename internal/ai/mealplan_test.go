package ai

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"ondoctor-server/internal/models"
)

func mealPlanJSON(order ...string) string {
	plan := models.MealPlan{GeneralAdvice: "Drink plenty of water."}
	for _, mealType := range order {
		plan.MealPlan = append(plan.MealPlan, models.MealSuggestion{
			MealType:    mealType,
			Description: "Something nourishing",
		})
	}
	b, _ := json.Marshal(plan)
	return string(b)
}

func TestMealPlannerValidatesInput(t *testing.T) {
	planner := NewMealPlanner(NewClient(testUnreachableConfig(), testLogger()), nil, 0)

	cases := []models.MealPlanInput{
		{Age: 0, Gender: models.GenderMale, DietaryPreference: models.DietVegetarian},
		{Age: 30, Gender: "Unknown", DietaryPreference: models.DietVegetarian},
		{Age: 30, Gender: models.GenderFemale, DietaryPreference: "Pescatarian"},
	}
	for _, in := range cases {
		if _, err := planner.Generate(context.Background(), in); err == nil {
			t.Errorf("input %+v should fail validation", in)
		}
	}
}

func TestMealPlannerGenerate(t *testing.T) {
	client, _ := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(candidateResponse(mealPlanJSON(
			models.MealBreakfast, models.MealLunch, models.MealDinner))))
	})
	planner := NewMealPlanner(client, nil, 0)

	plan, err := planner.Generate(context.Background(), models.MealPlanInput{
		Age:               34,
		Gender:            models.GenderFemale,
		DietaryPreference: models.DietVegetarian,
	})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if len(plan.MealPlan) != 3 {
		t.Fatalf("got %d meals, want 3", len(plan.MealPlan))
	}
	want := []string{models.MealBreakfast, models.MealLunch, models.MealDinner}
	for i, meal := range plan.MealPlan {
		if meal.MealType != want[i] {
			t.Errorf("meal %d type = %q, want %q", i, meal.MealType, want[i])
		}
	}
	if plan.GeneralAdvice == "" {
		t.Error("general advice missing")
	}
}

func TestMealPlannerRejectsWrongOrder(t *testing.T) {
	client, _ := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(candidateResponse(mealPlanJSON(
			models.MealLunch, models.MealBreakfast, models.MealDinner))))
	})
	planner := NewMealPlanner(client, nil, 0)

	_, err := planner.Generate(context.Background(), models.MealPlanInput{
		Age:               34,
		Gender:            models.GenderMale,
		DietaryPreference: models.DietNonVegetarian,
	})
	if err == nil {
		t.Fatal("out-of-order meal plan should be rejected")
	}
}

func TestMealPlannerRejectsWrongCount(t *testing.T) {
	client, _ := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(candidateResponse(mealPlanJSON(
			models.MealBreakfast, models.MealLunch))))
	})
	planner := NewMealPlanner(client, nil, 0)

	_, err := planner.Generate(context.Background(), models.MealPlanInput{
		Age:               34,
		Gender:            models.GenderMale,
		DietaryPreference: models.DietNonVegetarian,
	})
	if err == nil {
		t.Fatal("two-meal plan should be rejected")
	}
}
