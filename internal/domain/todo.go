package domain

// TodoCategory buckets todo items by kitchen workflow.
type TodoCategory string

const (
	TodoPrep     TodoCategory = "prep"
	TodoShopping TodoCategory = "shopping"
	TodoCooking  TodoCategory = "cooking"
	TodoOther    TodoCategory = "other"
)

// ParseTodoCategory maps free text to a category, defaulting to other.
func ParseTodoCategory(s string) TodoCategory {
	switch TodoCategory(s) {
	case TodoPrep, TodoShopping, TodoCooking:
		return TodoCategory(s)
	default:
		return TodoOther
	}
}

// TodoItem is a single shopping/prep task. RecipeID is a weak back-reference
// into savedRecipes: a lookup key only, never an ownership edge. Deleting the
// recipe leaves the todo untouched.
type TodoItem struct {
	ID        string       `json:"id"`
	Text      string       `json:"text"`
	Completed bool         `json:"completed"`
	Category  TodoCategory `json:"category"`
	RecipeID  string       `json:"recipeId,omitempty"`
}
