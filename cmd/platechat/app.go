package main

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"platechat/internal/chat"
	"platechat/internal/display"
	"platechat/internal/domain"
	"platechat/internal/logger"
	"platechat/internal/store"
	"platechat/internal/units"
)

// cliApp drives the chat loop. Plain text becomes a chat turn; slash
// commands are thin wrappers over store transitions and the units helpers.
type cliApp struct {
	store        *store.Store
	orchestrator *chat.Orchestrator
	ui           *display.UI
	credential   string
	premium      bool
	log          *logger.Logger
}

func (a *cliApp) run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case <-a.ui.QuitChan():
			return
		case line := <-a.ui.InputChan():
			line = strings.TrimSpace(line)
			if line == "" {
				continue
			}
			if strings.HasPrefix(line, "/") {
				if quit := a.handleCommand(ctx, line); quit {
					return
				}
				continue
			}
			a.sendMessage(ctx, line)
		}
	}
}

// sendMessage runs one full chat turn: commit the user message, call the
// orchestrator, commit and render the assistant reply.
func (a *cliApp) sendMessage(ctx context.Context, text string) {
	state := a.store.State()

	sessionID := state.CurrentSessionID
	var history []domain.Turn
	if sess := state.CurrentSession(); sess != nil {
		history = sess.History()
	} else {
		sessionID = a.store.CreateSession("")
	}

	a.store.AppendMessage(sessionID, domain.RoleUser, text, nil)

	reply := a.orchestrator.Send(ctx, text, state.SelectedRegion, history, a.credential)
	a.store.AppendMessage(sessionID, domain.RoleAssistant, reply.Text, reply.Recipe)

	for _, line := range strings.Split(reply.Text, "\n") {
		a.ui.PrintChat(line)
	}
	if reply.Recipe != nil {
		a.printRecipeSummary(reply.Recipe)
		a.ui.PrintHint("type /save to keep this recipe")
	}
	if !reply.Live && a.credential != "" {
		a.ui.PrintHint("(live mode unavailable — this was a demo answer)")
	} else if !reply.Live && reply.Recipe == nil && !a.premium {
		a.ui.PrintHint("(demo mode — set an API key for live answers)")
	}
	a.ui.Println()
}

// handleCommand dispatches a slash command. Returns true to quit.
func (a *cliApp) handleCommand(ctx context.Context, line string) bool {
	fields := strings.Fields(line)
	cmd, args := fields[0], fields[1:]

	switch cmd {
	case "/quit", "/exit":
		return true
	case "/help":
		a.printHelp()
	case "/new":
		a.store.CreateSession(strings.Join(args, " "))
		a.ui.PrintHint("started a new chat")
	case "/sessions":
		a.listSessions()
	case "/switch":
		a.switchSession(args)
	case "/delete":
		a.deleteSession(args)
	case "/region":
		a.setRegion(args)
	case "/save":
		a.saveLastRecipe()
	case "/recipes":
		a.listRecipes()
	case "/unsave":
		if r, ok := a.savedByIndex(args); ok {
			a.store.UnsaveRecipe(r.ID)
			a.ui.PrintHint("removed " + r.Name)
		}
	case "/shop":
		a.addShoppingList(args)
	case "/todos":
		a.listTodos()
	case "/done":
		if t, ok := a.todoByIndex(args); ok {
			a.store.ToggleTodo(t.ID)
			a.listTodos()
		}
	case "/rm":
		if t, ok := a.todoByIndex(args); ok {
			a.store.DeleteTodo(t.ID)
			a.ui.PrintHint("removed: " + t.Text)
		}
	case "/clear":
		a.store.ClearCompletedTodos()
		a.ui.PrintHint("cleared completed todos")
	case "/todo":
		if len(args) == 0 {
			a.ui.PrintUrgent("usage: /todo <text>")
			break
		}
		a.store.AddTodo(strings.Join(args, " "), domain.TodoOther, "")
		a.ui.PrintHint("added todo")
	case "/sub":
		a.printSubstitutes(args)
	case "/convert":
		a.convert(args)
	case "/scale":
		a.scale(args)
	case "/nutrition":
		a.nutrition(args)
	default:
		a.ui.PrintUrgent("unknown command " + cmd + " — try /help")
	}
	return false
}

func (a *cliApp) printHelp() {
	help := []string{
		"chat        just type — ask for dishes, techniques, substitutions",
		"/new [t]    start a new chat session (optional title)",
		"/sessions   list sessions   /switch <n>   /delete [n]",
		"/region [r] show or set the cuisine region filter",
		"/save       save the last suggested recipe",
		"/recipes    list saved recipes   /unsave <n>",
		"/shop <n>   add a saved recipe's ingredients to the shopping list",
		"/todos      list todos   /todo <text>   /done <n>   /rm <n>   /clear",
		"/sub <i>    ingredient substitutions",
		"/convert <amount> <from> <to>   e.g. /convert 1/2 cup ml",
		"/scale <n> <servings>           rescale a saved recipe",
		"/nutrition <n>                  rough per-serving estimate",
		"/quit       exit",
	}
	for _, h := range help {
		a.ui.PrintHint(h)
	}
}

// ── Sessions ─────────────────────────────────────────────────────

func (a *cliApp) listSessions() {
	state := a.store.State()
	if len(state.Sessions) == 0 {
		a.ui.PrintHint("no sessions yet — just start typing")
		return
	}
	for i, s := range state.Sessions {
		marker := "  "
		if s.ID == state.CurrentSessionID {
			marker = "* "
		}
		a.ui.PrintBody(fmt.Sprintf("%s%d. %s (%d messages)", marker, i+1, s.Title, len(s.Messages)))
	}
}

func (a *cliApp) switchSession(args []string) {
	state := a.store.State()
	n, ok := argIndex(args, len(state.Sessions))
	if !ok {
		a.ui.PrintUrgent("usage: /switch <session number>")
		return
	}
	a.store.SetCurrentSession(state.Sessions[n].ID)
	a.ui.PrintHint("switched to " + state.Sessions[n].Title)
}

func (a *cliApp) deleteSession(args []string) {
	state := a.store.State()
	id := state.CurrentSessionID
	if len(args) > 0 {
		n, ok := argIndex(args, len(state.Sessions))
		if !ok {
			a.ui.PrintUrgent("usage: /delete [session number]")
			return
		}
		id = state.Sessions[n].ID
	}
	if id == "" {
		a.ui.PrintHint("no session selected")
		return
	}
	a.store.DeleteSession(id)
	a.ui.PrintHint("session deleted")
}

func (a *cliApp) setRegion(args []string) {
	if len(args) == 0 {
		state := a.store.State()
		a.ui.PrintBody("current region: " + string(state.SelectedRegion))
		names := make([]string, 0, len(domain.Regions)+1)
		names = append(names, string(domain.RegionFilterAll))
		for _, r := range domain.Regions {
			names = append(names, string(r))
		}
		a.ui.PrintHint("options: " + strings.Join(names, ", "))
		return
	}
	arg := strings.ToLower(args[0])
	applied := domain.RegionFilterAll
	if arg != string(domain.RegionFilterAll) {
		applied = domain.RegionFilter(domain.ParseRegion(arg))
	}
	a.store.SetRegion(applied)
	a.ui.PrintHint("region set to " + string(applied))
}

// ── Recipes ──────────────────────────────────────────────────────

// lastSuggestedRecipe walks the current session backwards for the most
// recent assistant message carrying a recipe.
func (a *cliApp) lastSuggestedRecipe() *domain.Recipe {
	state := a.store.State()
	sess := state.CurrentSession()
	if sess == nil {
		return nil
	}
	for i := len(sess.Messages) - 1; i >= 0; i-- {
		m := sess.Messages[i]
		if m.Role == domain.RoleAssistant && m.Recipe != nil {
			return m.Recipe
		}
	}
	return nil
}

func (a *cliApp) saveLastRecipe() {
	recipe := a.lastSuggestedRecipe()
	if recipe == nil {
		a.ui.PrintHint("no recipe in this chat yet — ask for a dish first")
		return
	}
	a.store.SaveRecipe(*recipe)
	a.ui.PrintHint("saved " + recipe.Name)
}

func (a *cliApp) listRecipes() {
	state := a.store.State()
	if len(state.SavedRecipes) == 0 {
		a.ui.PrintHint("no saved recipes — /save after a suggestion")
		return
	}
	for i, r := range state.SavedRecipes {
		a.ui.PrintBody(fmt.Sprintf("  %d. %s — %s, %s, serves %d", i+1, r.Name, r.Cuisine, r.Difficulty, r.Servings))
	}
}

func (a *cliApp) savedByIndex(args []string) (domain.Recipe, bool) {
	state := a.store.State()
	n, ok := argIndex(args, len(state.SavedRecipes))
	if !ok {
		a.ui.PrintUrgent("usage: give a saved recipe number (see /recipes)")
		return domain.Recipe{}, false
	}
	return state.SavedRecipes[n], true
}

func (a *cliApp) addShoppingList(args []string) {
	recipe, ok := a.savedByIndex(args)
	if !ok {
		return
	}
	added := a.store.AddShoppingListFromRecipe(recipe)
	if added == 0 {
		a.ui.PrintHint("nothing to add — that recipe has no ingredients")
		return
	}
	a.ui.PrintHint(fmt.Sprintf("added %d items to the shopping list", added))
}

func (a *cliApp) printRecipeSummary(r *domain.Recipe) {
	a.ui.Println()
	a.ui.PrintRecipeHeader(fmt.Sprintf("%s — %s, %s", r.Name, r.Cuisine, r.Difficulty))
	meta := fmt.Sprintf("serves %d", r.Servings)
	if r.PrepTime != "" {
		meta += " · prep " + r.PrepTime
	}
	if r.CookTime != "" {
		meta += " · cook " + r.CookTime
	}
	a.ui.PrintHint(meta)
	for _, ing := range r.Ingredients {
		a.ui.PrintBody("• " + strings.TrimSpace(strings.Join([]string{ing.Amount, ing.Unit, ing.Name}, " ")))
	}
	for i, step := range r.Instructions {
		a.ui.PrintBody(fmt.Sprintf("%d. %s", i+1, step))
	}
	for _, tip := range r.Tips {
		a.ui.PrintHint("tip: " + tip)
	}
}

// ── Todos ────────────────────────────────────────────────────────

func (a *cliApp) listTodos() {
	state := a.store.State()
	if len(state.Todos) == 0 {
		a.ui.PrintHint("todo list is empty")
		return
	}
	for i, t := range state.Todos {
		box := "[ ]"
		if t.Completed {
			box = "[x]"
		}
		suffix := ""
		if t.RecipeID != "" {
			if r := state.SavedRecipe(t.RecipeID); r != nil {
				suffix = "  (" + r.Name + ")"
			}
		}
		a.ui.PrintBody(fmt.Sprintf("  %d. %s %s%s", i+1, box, t.Text, suffix))
	}
}

func (a *cliApp) todoByIndex(args []string) (domain.TodoItem, bool) {
	state := a.store.State()
	n, ok := argIndex(args, len(state.Todos))
	if !ok {
		a.ui.PrintUrgent("usage: give a todo number (see /todos)")
		return domain.TodoItem{}, false
	}
	return state.Todos[n], true
}

// ── Kitchen helpers ──────────────────────────────────────────────

func (a *cliApp) printSubstitutes(args []string) {
	if len(args) == 0 {
		a.ui.PrintUrgent("usage: /sub <ingredient>")
		return
	}
	name := strings.Join(args, " ")
	subs := units.Substitutes(name)
	if len(subs) == 0 {
		a.ui.PrintHint("no substitutions on file for " + name)
		return
	}
	a.ui.PrintBody("instead of " + name + ", try:")
	for _, s := range subs {
		a.ui.PrintBody("  • " + s)
	}
}

func (a *cliApp) convert(args []string) {
	if len(args) != 3 {
		a.ui.PrintUrgent("usage: /convert <amount> <from> <to>")
		return
	}
	amount, ok := units.ParseAmount(args[0])
	if !ok {
		a.ui.PrintUrgent("could not read amount " + args[0])
		return
	}
	from, to := args[1], args[2]

	if v, err := units.ConvertVolume(amount, from, to); err == nil {
		a.ui.PrintBody(fmt.Sprintf("%s %s = %.2f %s", args[0], from, v, to))
		return
	}
	if v, err := units.ConvertWeight(amount, from, to); err == nil {
		a.ui.PrintBody(fmt.Sprintf("%s %s = %.2f %s", args[0], from, v, to))
		return
	}
	if v, err := units.ConvertTemperature(amount, from, to); err == nil {
		a.ui.PrintBody(fmt.Sprintf("%s°%s = %.0f°%s", args[0], strings.ToUpper(from), v, strings.ToUpper(to)))
		return
	}
	a.ui.PrintUrgent(fmt.Sprintf("can't convert %s to %s", from, to))
}

func (a *cliApp) scale(args []string) {
	if len(args) != 2 {
		a.ui.PrintUrgent("usage: /scale <recipe number> <servings>")
		return
	}
	recipe, ok := a.savedByIndex(args[:1])
	if !ok {
		return
	}
	servings, err := strconv.Atoi(args[1])
	if err != nil || servings <= 0 {
		a.ui.PrintUrgent("servings must be a positive number")
		return
	}
	scaled := units.ScaleRecipe(recipe, servings)
	a.ui.PrintRecipeHeader(fmt.Sprintf("%s — scaled to %d servings", scaled.Name, scaled.Servings))
	for _, ing := range scaled.Ingredients {
		a.ui.PrintBody("• " + strings.TrimSpace(strings.Join([]string{ing.Amount, ing.Unit, ing.Name}, " ")))
	}
}

func (a *cliApp) nutrition(args []string) {
	recipe, ok := a.savedByIndex(args)
	if !ok {
		return
	}
	n := units.EstimateNutrition(recipe)
	a.ui.PrintBody(fmt.Sprintf("%s — rough per-serving estimate:", recipe.Name))
	a.ui.PrintBody(fmt.Sprintf("  ~%d kcal · %dg protein · %dg carbs · %dg fat", n.Calories, n.Protein, n.Carbs, n.Fat))
	a.ui.PrintHint("ballpark numbers from ingredient names, not a lab report")
}

// argIndex parses a 1-based index argument against a list length.
func argIndex(args []string, length int) (int, bool) {
	if len(args) == 0 {
		return 0, false
	}
	n, err := strconv.Atoi(args[0])
	if err != nil || n < 1 || n > length {
		return 0, false
	}
	return n - 1, true
}
