package store

import (
	"strings"

	"platechat/internal/domain"
)

// titleExcerptLimit caps the session title taken from the first user message.
const titleExcerptLimit = 40

// CreateSession appends a new chat session and makes it current. An empty
// title defaults to a date string; the first user message overwrites it.
func (s *Store) CreateSession(title string) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	if strings.TrimSpace(title) == "" {
		title = now.Format("January 2, 2006")
	}

	session := domain.ChatSession{
		ID:        domain.NewID(),
		Title:     title,
		Messages:  []domain.Message{},
		CreatedAt: now,
		UpdatedAt: now,
	}

	next := s.state.Clone()
	next.Sessions = append(next.Sessions, session)
	next.CurrentSessionID = session.ID
	s.commit(next)

	s.log.Debug("store: created session %s (%q)", session.ID, title)
	return session.ID
}

// SetCurrentSession switches the active session. An empty id clears the
// selection; an unknown id is a no-op.
func (s *Store) SetCurrentSession(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if id != "" && s.state.Session(id) == nil {
		s.log.Debug("store: set current to unknown session %s ignored", id)
		return
	}

	next := s.state.Clone()
	next.CurrentSessionID = id
	s.commit(next)
}

// DeleteSession removes a session. If it was current, the most recently
// updated remaining session becomes current, or none if the list is empty.
func (s *Store) DeleteSession(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state.Session(id) == nil {
		return
	}

	next := s.state.Clone()
	kept := next.Sessions[:0]
	for _, sess := range next.Sessions {
		if sess.ID != id {
			kept = append(kept, sess)
		}
	}
	next.Sessions = kept

	if next.CurrentSessionID == id {
		next.CurrentSessionID = mostRecentlyUpdated(next.Sessions)
	}
	s.commit(next)

	s.log.Debug("store: deleted session %s, current now %q", id, next.CurrentSessionID)
}

// mostRecentlyUpdated returns the id of the session with the greatest
// updatedAt, or "" when none remain.
func mostRecentlyUpdated(sessions []domain.ChatSession) string {
	best := -1
	for i := range sessions {
		if best < 0 || sessions[i].UpdatedAt.After(sessions[best].UpdatedAt) {
			best = i
		}
	}
	if best < 0 {
		return ""
	}
	return sessions[best].ID
}

// AppendMessage assigns id and timestamp to the partial message and appends
// it to the session, bumping updatedAt. A nonexistent session id leaves the
// state unchanged — no orphan session, no error. The returned bool reports
// whether the append was accepted.
func (s *Store) AppendMessage(sessionID string, role domain.Role, content string, recipe *domain.Recipe) (domain.Message, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state.Session(sessionID) == nil {
		s.log.Debug("store: append to unknown session %s ignored", sessionID)
		return domain.Message{}, false
	}

	now := s.now()
	msg := domain.Message{
		ID:        domain.NewID(),
		Role:      role,
		Content:   content,
		Timestamp: now,
		Recipe:    recipe,
	}

	next := s.state.Clone()
	sess := next.Session(sessionID)
	// First user message names the session.
	if role == domain.RoleUser && !hasUserMessage(sess.Messages) {
		sess.Title = excerpt(content, titleExcerptLimit)
	}
	sess.Messages = append(sess.Messages, msg)
	sess.UpdatedAt = now
	s.commit(next)

	return msg, true
}

func hasUserMessage(msgs []domain.Message) bool {
	for _, m := range msgs {
		if m.Role == domain.RoleUser {
			return true
		}
	}
	return false
}

// excerpt trims a message down to a session title.
func excerpt(s string, limit int) string {
	s = strings.TrimSpace(s)
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return strings.TrimSpace(string(runes[:limit])) + "…"
}

// SetRegion changes the active region filter.
func (s *Store) SetRegion(region domain.RegionFilter) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.state.Clone()
	next.SelectedRegion = region
	s.commit(next)
}

// ── Todos ────────────────────────────────────────────────────────

// AddTodo appends a todo item and returns its id. recipeID may be empty.
func (s *Store) AddTodo(text string, category domain.TodoCategory, recipeID string) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	item := domain.TodoItem{
		ID:       domain.NewID(),
		Text:     text,
		Category: category,
		RecipeID: recipeID,
	}

	next := s.state.Clone()
	next.Todos = append(next.Todos, item)
	s.commit(next)
	return item.ID
}

// ToggleTodo flips the completed flag. Unknown ids are a no-op.
func (s *Store) ToggleTodo(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.state.Clone()
	for i := range next.Todos {
		if next.Todos[i].ID == id {
			next.Todos[i].Completed = !next.Todos[i].Completed
			s.commit(next)
			return
		}
	}
}

// DeleteTodo removes a todo item. Unknown ids are a no-op.
func (s *Store) DeleteTodo(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.state.Clone()
	for i := range next.Todos {
		if next.Todos[i].ID == id {
			next.Todos = append(next.Todos[:i], next.Todos[i+1:]...)
			s.commit(next)
			return
		}
	}
}

// ClearCompletedTodos removes every completed item, regardless of category.
func (s *Store) ClearCompletedTodos() {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.state.Clone()
	kept := next.Todos[:0]
	for _, t := range next.Todos {
		if !t.Completed {
			kept = append(kept, t)
		}
	}
	next.Todos = kept
	s.commit(next)
}

// ── Saved recipes ────────────────────────────────────────────────

// SaveRecipe adds a recipe to savedRecipes. Idempotent by id: saving an
// already-saved recipe leaves the state unchanged.
func (s *Store) SaveRecipe(recipe domain.Recipe) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state.SavedRecipe(recipe.ID) != nil {
		s.log.Debug("store: recipe %s already saved", recipe.ID)
		return
	}

	next := s.state.Clone()
	next.SavedRecipes = append(next.SavedRecipes, recipe.CloneDeep())
	s.commit(next)

	s.log.Debug("store: saved recipe %s (%q)", recipe.ID, recipe.Name)
}

// UnsaveRecipe removes a saved recipe by id. Todos referencing it keep
// their recipeId; the reference is weak by design.
func (s *Store) UnsaveRecipe(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.state.Clone()
	for i := range next.SavedRecipes {
		if next.SavedRecipes[i].ID == id {
			next.SavedRecipes = append(next.SavedRecipes[:i], next.SavedRecipes[i+1:]...)
			s.commit(next)
			return
		}
	}
}

// AddShoppingListFromRecipe derives one shopping todo per ingredient,
// back-referencing the recipe. A recipe with no ingredients adds nothing
// and mutates nothing.
func (s *Store) AddShoppingListFromRecipe(recipe domain.Recipe) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(recipe.Ingredients) == 0 {
		return 0
	}

	next := s.state.Clone()
	for _, ing := range recipe.Ingredients {
		next.Todos = append(next.Todos, domain.TodoItem{
			ID:       domain.NewID(),
			Text:     shoppingText(ing),
			Category: domain.TodoShopping,
			RecipeID: recipe.ID,
		})
	}
	s.commit(next)

	s.log.Debug("store: added %d shopping items from %q", len(recipe.Ingredients), recipe.Name)
	return len(recipe.Ingredients)
}

// shoppingText formats an ingredient as "{amount} {unit} {name} ({notes})",
// collapsing whatever is empty.
func shoppingText(ing domain.Ingredient) string {
	parts := make([]string, 0, 3)
	for _, p := range []string{ing.Amount, ing.Unit, ing.Name} {
		if strings.TrimSpace(p) != "" {
			parts = append(parts, strings.TrimSpace(p))
		}
	}
	text := strings.Join(parts, " ")
	if strings.TrimSpace(ing.Notes) != "" {
		text += " (" + strings.TrimSpace(ing.Notes) + ")"
	}
	return text
}
