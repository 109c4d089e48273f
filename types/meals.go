package types

// MealDish is one dish line of a saved meal. Missing nutrition fields are
// stored as zero so summary math stays well-defined.
type MealDish struct {
	DishName           string  `json:"dish_name" firestore:"dishName"`
	ServingSize        string  `json:"serving_size" firestore:"servingSize"`
	ServingQty         float64 `json:"serving_qty" firestore:"servingQty"`
	ServingUnit        string  `json:"serving_unit" firestore:"servingUnit"`
	ServingWeightGrams float64 `json:"serving_weight_grams" firestore:"servingWeightGrams"`
	Calories           float64 `json:"calories" firestore:"calories"`
	Protein            float64 `json:"protein" firestore:"protein"`
	TotalFat           float64 `json:"total_fat" firestore:"totalFat"`
	SaturatedFat       float64 `json:"saturated_fat" firestore:"saturatedFat"`
	Cholesterol        float64 `json:"cholesterol" firestore:"cholesterol"`
	Sodium             float64 `json:"sodium" firestore:"sodium"`
	TotalCarbohydrate  float64 `json:"total_carbohydrate" firestore:"totalCarbohydrate"`
	DietaryFiber       float64 `json:"dietary_fiber" firestore:"dietaryFiber"`
	Sugars             float64 `json:"sugars" firestore:"sugars"`
}

// Meal is one saved meal record.
type Meal struct {
	ID          string          `json:"id" firestore:"id"`
	UserID      string          `json:"userId" firestore:"userId"`
	MealName    string          `json:"mealName" firestore:"mealName"`
	MealType    string          `json:"mealType" firestore:"mealType"`
	ImageURL    string          `json:"imageUrl" firestore:"imageUrl"`
	ImageKey    string          `json:"imageKey" firestore:"imageKey"`
	ImageName   string          `json:"imageName" firestore:"imageName"`
	Description string          `json:"description" firestore:"description"`
	Totals      NutritionTotals `json:"totalNutrition" firestore:"totals"`
	Dishes      []MealDish      `json:"dishes" firestore:"dishes"`
	LoggedAt    string          `json:"loggedAt" firestore:"loggedAt"` // RFC3339
}

// DailySummary is the per-user per-day rollup of saved meal totals.
type DailySummary struct {
	UserID    string          `json:"userId" firestore:"userId"`
	Date      string          `json:"date" firestore:"date"` // YYYY-MM-DD
	Totals    NutritionTotals `json:"totals" firestore:"totals"`
	MealCount int             `json:"mealCount" firestore:"mealCount"`
	UpdatedAt string          `json:"updatedAt" firestore:"updatedAt"`
}
