package domain

// AppState is the aggregate root and the unit of persistence. It is loaded
// once at process start and written (whole-document) after every accepted
// transition. The store package is its only writer.
type AppState struct {
	Sessions         []ChatSession `json:"sessions"`
	CurrentSessionID string        `json:"currentSessionId,omitempty"` // weak ref, may be ""
	Todos            []TodoItem    `json:"todos"`
	SavedRecipes     []Recipe      `json:"savedRecipes"` // deduplicated by ID
	SelectedRegion   RegionFilter  `json:"selectedRegion"`
}

// DefaultState is the documented empty state used on first run and whenever
// the persisted document cannot be read.
func DefaultState() AppState {
	return AppState{
		Sessions:       []ChatSession{},
		Todos:          []TodoItem{},
		SavedRecipes:   []Recipe{},
		SelectedRegion: RegionFilterAll,
	}
}

// Session returns the session with the given ID, or nil.
func (s *AppState) Session(id string) *ChatSession {
	for i := range s.Sessions {
		if s.Sessions[i].ID == id {
			return &s.Sessions[i]
		}
	}
	return nil
}

// CurrentSession returns the active session, or nil when none is selected.
func (s *AppState) CurrentSession() *ChatSession {
	if s.CurrentSessionID == "" {
		return nil
	}
	return s.Session(s.CurrentSessionID)
}

// SavedRecipe returns the saved recipe with the given ID, or nil.
func (s *AppState) SavedRecipe(id string) *Recipe {
	for i := range s.SavedRecipes {
		if s.SavedRecipes[i].ID == id {
			return &s.SavedRecipes[i]
		}
	}
	return nil
}

// Clone returns a deep copy of the state. The store hands copies to
// listeners so no caller can mutate the authoritative document.
func (s AppState) Clone() AppState {
	out := s
	out.Sessions = make([]ChatSession, len(s.Sessions))
	for i, sess := range s.Sessions {
		cp := sess
		cp.Messages = append([]Message(nil), sess.Messages...)
		for j, m := range cp.Messages {
			if m.Recipe != nil {
				r := m.Recipe.CloneDeep()
				cp.Messages[j].Recipe = &r
			}
		}
		out.Sessions[i] = cp
	}
	out.Todos = append([]TodoItem(nil), s.Todos...)
	out.SavedRecipes = make([]Recipe, len(s.SavedRecipes))
	for i, r := range s.SavedRecipes {
		out.SavedRecipes[i] = r.CloneDeep()
	}
	return out
}

// CloneDeep returns a copy of the recipe with no shared slices.
func (r Recipe) CloneDeep() Recipe {
	out := r
	out.Ingredients = append([]Ingredient(nil), r.Ingredients...)
	out.Instructions = append([]string(nil), r.Instructions...)
	out.Tips = append([]string(nil), r.Tips...)
	out.Tags = append([]string(nil), r.Tags...)
	return out
}
