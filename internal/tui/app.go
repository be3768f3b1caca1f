// Package tui provides the interactive Bubble Tea dashboard for goaltrack.
package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/theirongolddev/goaltrack/internal/model"
	"github.com/theirongolddev/goaltrack/internal/pipeline"
	"github.com/theirongolddev/goaltrack/internal/session"
	"github.com/theirongolddev/goaltrack/internal/tracker"
	"github.com/theirongolddev/goaltrack/internal/tui/components"
	"github.com/theirongolddev/goaltrack/internal/tui/theme"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"
)

// sessionMsg carries the outcome of the session bootstrap or a login.
type sessionMsg struct {
	userID int
	err    error
}

// opDoneMsg carries a finished Goal Service request back to the event loop.
type opDoneMsg struct {
	result tracker.Result
}

// Options configures the dashboard.
type Options struct {
	Service  tracker.GoalService
	Sessions session.KV
	Logger   *zap.Logger

	// UserID skips the session bootstrap when positive.
	UserID   int
	Category model.Category
	Tab      model.Tab

	// Endpoint is shown in the status bar.
	Endpoint string
}

// App is the root Bubble Tea model.
type App struct {
	opts Options
	log  *zap.Logger
	ctrl *tracker.Controller // nil until a user is known

	loaded   bool
	pending  int
	lastLoad time.Time

	// UI state
	width     int
	height    int
	activeTab model.Tab
	category  model.Category
	cursor    int
	showHelp  bool

	// Title search
	searching   bool
	searchInput textinput.Model
	query       string

	// Active huh form, if any
	form      *huh.Form
	formKind  formKind
	goalVals  *goalFormValues
	loginVals *loginValues
	target    model.Goal // goal being edited or deleted

	notice    string
	noticeErr bool

	spinner spinner.Model
	now     func() time.Time
}

const (
	minTerminalWidth = 80
	compactWidth     = 120
	maxContentWidth  = 180

	minContentHeight = 5
	metricsMinHeight = 24 // below this the metric cards are dropped

	requestTimeout = 15 * time.Second
)

// NewApp creates the dashboard model.
func NewApp(opts Options) App {
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(theme.Active.Accent)

	ti := textinput.New()
	ti.Placeholder = "search titles"
	ti.CharLimit = 64
	ti.Prompt = "/ "

	return App{
		opts:        opts,
		log:         opts.Logger,
		activeTab:   opts.Tab,
		category:    opts.Category,
		spinner:     sp,
		searchInput: ti,
		now:         time.Now,
	}
}

// Init implements tea.Model.
func (a App) Init() tea.Cmd {
	return tea.Batch(
		tea.EnableMouseCellMotion,
		a.spinner.Tick,
		bootstrapCmd(a.opts),
	)
}

// bootstrapCmd resolves the session once per process.
func bootstrapCmd(opts Options) tea.Cmd {
	return func() tea.Msg {
		if opts.UserID > 0 {
			return sessionMsg{userID: opts.UserID}
		}
		if opts.Sessions == nil {
			return sessionMsg{err: session.ErrNoSession}
		}
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		id, err := session.Bootstrap(ctx, opts.Sessions)
		return sessionMsg{userID: id, err: err}
	}
}

func saveSessionCmd(kv session.KV, u session.User) tea.Cmd {
	return func() tea.Msg {
		if kv == nil {
			return sessionMsg{userID: u.ID}
		}
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		if err := session.Save(ctx, kv, u); err != nil {
			return sessionMsg{err: err}
		}
		return sessionMsg{userID: u.ID}
	}
}

// runOp sends op on a background goroutine. The controller only reads the
// page user there; the result is applied back on the event loop.
func runOp(ctrl *tracker.Controller, op tracker.Op) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		return opDoneMsg{result: ctrl.Run(ctx, op)}
	}
}

func (a *App) startOp(op tracker.Op) tea.Cmd {
	if a.ctrl == nil {
		return nil
	}
	a.pending++
	return runOp(a.ctrl, op)
}

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		if a.form != nil {
			a.form = a.form.WithWidth(a.formWidth())
		}
		return a, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		a.spinner, cmd = a.spinner.Update(msg)
		return a, cmd

	case sessionMsg:
		return a.handleSession(msg)

	case opDoneMsg:
		return a.handleOpDone(msg.result)

	case tea.MouseMsg:
		if a.form != nil || !a.loaded || a.showHelp {
			return a, nil
		}
		return a.handleMouse(msg)

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}
		if a.form != nil {
			return a.updateForm(msg)
		}
		if !a.loaded {
			if msg.String() == "q" {
				return a, tea.Quit
			}
			return a, nil
		}
		if a.searching {
			return a.updateSearch(msg)
		}
		return a.handleKey(msg)
	}

	if a.form != nil {
		return a.updateForm(msg)
	}
	return a, nil
}

func (a App) handleSession(msg sessionMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		if !errors.Is(msg.err, session.ErrNoSession) {
			a.log.Warn("session bootstrap failed", zap.Error(msg.err))
			a.setError(msg.err.Error())
		}
		cmd := a.openLogin()
		return a, cmd
	}

	page := tracker.NewPage(msg.userID)
	page.Category = a.category
	a.ctrl = tracker.NewController(a.opts.Service, page, a.log)
	a.log.Info("session started", zap.Int("user_id", msg.userID))
	cmd := a.startOp(tracker.Op{Kind: tracker.OpLoad})
	return a, cmd
}

func (a App) handleOpDone(r tracker.Result) (tea.Model, tea.Cmd) {
	if a.pending > 0 {
		a.pending--
	}
	if a.ctrl == nil {
		return a, nil
	}

	if r.Op.Kind == tracker.OpLoad {
		a.loaded = true
		a.lastLoad = a.now()
	}

	if err := a.ctrl.Apply(r); err != nil {
		a.setError(err.Error())
		return a, nil
	}

	switch r.Op.Kind {
	case tracker.OpLoad:
		a.setNotice(fmt.Sprintf("Loaded %d goals", len(r.Goals)))
	case tracker.OpAdd:
		a.setNotice(fmt.Sprintf("Added %q", r.Goal.Title))
		a.focusGoal(r.Goal.ID)
	case tracker.OpEdit:
		a.setNotice(fmt.Sprintf("Saved %q", r.Goal.Title))
		a.focusGoal(r.Goal.ID)
	case tracker.OpDelete:
		a.setNotice("Goal deleted")
	}
	a.clampCursor()
	return a, nil
}

func (a App) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	switch msg.Button {
	case tea.MouseButtonWheelUp:
		a.moveCursor(-1)
	case tea.MouseButtonWheelDown:
		a.moveCursor(1)
	case tea.MouseButtonLeft:
		if msg.Action != tea.MouseActionPress {
			return a, nil
		}
		if msg.Y == 0 {
			if tab := components.TabAtX(msg.X, a.tabCounts()); tab >= 0 {
				a.setTab(tab)
			}
		}
	}
	return a, nil
}

func (a App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	if a.showHelp {
		a.showHelp = false
		return a, nil
	}

	switch key {
	case "q":
		return a, tea.Quit
	case "?":
		a.showHelp = true
	case "1", "2", "3", "4":
		a.setTab(model.Tab(key[0] - '1'))
	case "right", "l", "tab":
		a.setTab((a.activeTab + 1) % model.TabCount)
	case "left", "h", "shift+tab":
		a.setTab((a.activeTab + model.TabCount - 1) % model.TabCount)
	case "j", "down":
		a.moveCursor(1)
	case "k", "up":
		a.moveCursor(-1)
	case "g", "home":
		a.cursor = 0
	case "G", "end":
		a.cursor = len(a.visible()) - 1
		a.clampCursor()
	case "c":
		a.cycleCategory(1)
	case "C":
		a.cycleCategory(-1)
	case "/":
		a.searching = true
		a.searchInput.SetValue(a.query)
		a.searchInput.CursorEnd()
		cmd := a.searchInput.Focus()
		return a, cmd
	case "esc":
		if a.query != "" {
			a.query = ""
			a.cursor = 0
		}
	case "r":
		a.setNotice("Reloading...")
		cmd := a.startOp(tracker.Op{Kind: tracker.OpLoad})
		return a, cmd
	case "a":
		cmd := a.openGoalForm(formAdd, model.Goal{Category: a.defaultCategory()})
		return a, cmd
	case "e", "enter":
		if g, ok := a.selected(); ok {
			cmd := a.openGoalForm(formEdit, g)
			return a, cmd
		}
	case "d", "x":
		if g, ok := a.selected(); ok {
			cmd := a.openDelete(g)
			return a, cmd
		}
	}
	return a, nil
}

// updateSearch handles key events while the search input is focused.
func (a App) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		a.query = strings.TrimSpace(a.searchInput.Value())
		a.searching = false
		a.searchInput.Blur()
		a.cursor = 0
		return a, nil
	case "esc":
		a.searching = false
		a.searchInput.Blur()
		return a, nil
	}

	var cmd tea.Cmd
	a.searchInput, cmd = a.searchInput.Update(msg)
	return a, cmd
}

// ─── Forms ──────────────────────────────────────────────────────

func (a *App) openGoalForm(kind formKind, g model.Goal) tea.Cmd {
	a.formKind = kind
	a.target = g
	a.goalVals = valuesFromGoal(g)
	title := "New goal"
	if kind == formEdit {
		title = "Edit goal"
	}
	a.form = newGoalForm(title, a.goalVals).WithWidth(a.formWidth())
	return a.form.Init()
}

func (a *App) openDelete(g model.Goal) tea.Cmd {
	a.formKind = formDelete
	a.target = g
	a.goalVals = &goalFormValues{}
	a.form = newDeleteForm(g, a.goalVals).WithWidth(a.formWidth())
	return a.form.Init()
}

func (a *App) openLogin() tea.Cmd {
	a.formKind = formLogin
	a.loginVals = &loginValues{}
	a.form = newLoginForm(a.loginVals).WithWidth(a.formWidth())
	return a.form.Init()
}

func (a *App) closeForm() {
	a.form = nil
	a.formKind = formNone
}

func (a App) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if km, ok := msg.(tea.KeyMsg); ok && km.String() == "esc" && a.formKind != formLogin {
		a.closeForm()
		return a, nil
	}

	form, cmd := a.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		a.form = f
	}

	switch a.form.State {
	case huh.StateCompleted:
		return a.submitForm()
	case huh.StateAborted:
		if a.formKind == formLogin {
			return a, tea.Quit
		}
		a.closeForm()
		return a, nil
	}
	return a, cmd
}

func (a App) submitForm() (tea.Model, tea.Cmd) {
	kind := a.formKind
	a.closeForm()

	switch kind {
	case formLogin:
		id, err := a.loginVals.userID()
		if err != nil {
			a.setError(err.Error())
			cmd := a.openLogin()
			return a, cmd
		}
		u := session.User{ID: id, Name: strings.TrimSpace(a.loginVals.Name)}
		return a, saveSessionCmd(a.opts.Sessions, u)

	case formAdd, formEdit:
		g, err := a.goalVals.apply(a.target)
		if err != nil {
			a.setError(err.Error())
			return a, nil
		}
		op := tracker.Op{Kind: tracker.OpAdd, Goal: g}
		if kind == formEdit {
			op.Kind = tracker.OpEdit
		}
		a.setNotice("Saving...")
		cmd := a.startOp(op)
		return a, cmd

	case formDelete:
		if !a.goalVals.Confirm {
			return a, nil
		}
		a.setNotice("Deleting...")
		cmd := a.startOp(tracker.Op{Kind: tracker.OpDelete, ID: a.target.ID})
		return a, cmd
	}
	return a, nil
}

func (a App) formWidth() int {
	w := a.width - 8
	if w > 72 {
		w = 72
	}
	if w < 40 {
		w = 40
	}
	return w
}

// ─── State helpers ──────────────────────────────────────────────

func (a *App) setNotice(s string) {
	a.notice = s
	a.noticeErr = false
}

func (a *App) setError(s string) {
	a.notice = s
	a.noticeErr = true
}

func (a *App) setTab(t model.Tab) {
	if t < 0 || t >= model.TabCount || t == a.activeTab {
		return
	}
	a.activeTab = t
	a.cursor = 0
}

func (a *App) cycleCategory(dir int) {
	n := len(model.Categories()) + 1 // concrete categories plus the sentinel
	a.category = model.Category((int(a.category) + dir + n) % n)
	if a.ctrl != nil {
		a.ctrl.Page().Category = a.category
	}
	a.cursor = 0
}

func (a *App) moveCursor(delta int) {
	a.cursor += delta
	a.clampCursor()
}

func (a *App) clampCursor() {
	n := len(a.visible())
	if a.cursor >= n {
		a.cursor = n - 1
	}
	if a.cursor < 0 {
		a.cursor = 0
	}
}

// focusGoal moves the cursor onto the goal with id when it is visible.
func (a *App) focusGoal(id int) {
	for i, g := range a.visible() {
		if g.ID == id {
			a.cursor = i
			return
		}
	}
}

func (a App) defaultCategory() model.Category {
	if a.category.Concrete() {
		return a.category
	}
	return model.CategoryPersonalDevelopment
}

// tabCounts are the unfiltered bucket sizes; neither the category nor the
// search narrows them.
func (a App) tabCounts() [model.TabCount]int {
	if a.ctrl == nil {
		return [model.TabCount]int{}
	}
	return a.ctrl.Page().Counts()
}

// visible is the active tab's list after the category filter and search.
func (a App) visible() []model.Goal {
	if a.ctrl == nil {
		return nil
	}
	return pipeline.FilterByTitle(a.ctrl.Page().Visible(a.activeTab), a.query)
}

func (a App) selected() (model.Goal, bool) {
	goals := a.visible()
	if a.cursor < 0 || a.cursor >= len(goals) {
		return model.Goal{}, false
	}
	return goals[a.cursor], true
}

func (a App) contentWidth() int {
	cw := a.width
	if cw > maxContentWidth {
		cw = maxContentWidth
	}
	return cw
}

func (a App) isCompactLayout() bool {
	return a.contentWidth() < compactWidth
}

// ─── Views ──────────────────────────────────────────────────────

// View implements tea.Model.
func (a App) View() string {
	if a.width == 0 {
		return ""
	}
	if a.width < minTerminalWidth {
		return a.viewTooNarrow()
	}
	if a.form != nil {
		return a.viewForm()
	}
	if !a.loaded {
		return a.viewLoading()
	}
	if a.showHelp {
		return a.viewHelp()
	}
	return a.viewMain()
}

func (a App) viewTooNarrow() string {
	h := a.height
	if h < 5 {
		h = 5
	}

	msg := fmt.Sprintf(
		"\n  Terminal too narrow (%d cols)\n\n  goaltrack needs at least %d columns.\n",
		a.width,
		minTerminalWidth,
	)

	return padHeight(truncateHeight(msg, h), h)
}

func (a App) viewForm() string {
	t := theme.Active
	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Focus).
		Padding(1, 2)

	body := a.form.View()
	if a.notice != "" && a.noticeErr {
		body = lipgloss.NewStyle().Foreground(t.Alert).Render(a.notice) + "\n\n" + body
	}

	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, cardStyle.Render(body),
		lipgloss.WithWhitespaceBackground(t.Background))
}

func (a App) viewLoading() string {
	t := theme.Active

	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Focus).
		Background(t.Surface).
		Padding(2, 4)

	logoStyle := lipgloss.NewStyle().
		Foreground(t.Title).
		Background(t.Surface).
		Bold(true)

	subtitleStyle := lipgloss.NewStyle().
		Foreground(t.TextMuted).
		Background(t.Surface)

	spinnerStyle := lipgloss.NewStyle().
		Foreground(t.Accent).
		Background(t.Surface)

	var b strings.Builder
	b.WriteString(logoStyle.Render("◈ goaltrack"))
	b.WriteString(subtitleStyle.Render(" · Goals"))
	b.WriteString("\n\n")
	b.WriteString(spinnerStyle.Render(a.spinner.View()))
	if a.ctrl == nil {
		b.WriteString(subtitleStyle.Render(" Checking session..."))
	} else {
		b.WriteString(subtitleStyle.Render(" Fetching goals..."))
	}

	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, cardStyle.Render(b.String()),
		lipgloss.WithWhitespaceBackground(t.Background))
}

func (a App) viewHelp() string {
	t := theme.Active

	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Focus).
		Background(t.Surface).
		Padding(1, 3)

	titleStyle := lipgloss.NewStyle().
		Foreground(t.Title).
		Background(t.Surface).
		Bold(true)

	sectionStyle := lipgloss.NewStyle().
		Foreground(t.Accent).
		Background(t.Surface).
		Bold(true)

	keyStyle := lipgloss.NewStyle().
		Foreground(t.Key).
		Background(t.Surface).
		Bold(true)

	descStyle := lipgloss.NewStyle().
		Foreground(t.TextMuted).
		Background(t.Surface)

	dimStyle := lipgloss.NewStyle().
		Foreground(t.TextDim).
		Background(t.Surface)

	var b strings.Builder
	b.WriteString(titleStyle.Render("◈ Keyboard Shortcuts"))
	b.WriteString("\n\n")

	sections := []struct {
		name     string
		bindings []struct{ key, desc string }
	}{
		{"Navigation", []struct{ key, desc string }{
			{"1 2 3 4", "Jump to tab"},
			{"← →", "Previous / Next tab"},
			{"j k", "Move through goals"},
			{"g G", "First / Last goal"},
			{"c C", "Next / Previous category"},
		}},
		{"Actions", []struct{ key, desc string }{
			{"a", "Add goal"},
			{"e Enter", "Edit goal"},
			{"d", "Delete goal"},
			{"/", "Search titles"},
			{"Esc", "Clear search / Cancel"},
			{"r", "Reload"},
			{"?", "Toggle help"},
			{"q", "Quit"},
		}},
	}
	for i, sec := range sections {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(sectionStyle.Render(sec.name))
		b.WriteString("\n")
		for _, bind := range sec.bindings {
			fmt.Fprintf(&b, "  %s  %s\n",
				keyStyle.Render(fmt.Sprintf("%-10s", bind.key)),
				descStyle.Render(bind.desc))
		}
	}

	b.WriteString("\n")
	b.WriteString(dimStyle.Render("Press any key to close"))

	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, cardStyle.Render(b.String()),
		lipgloss.WithWhitespaceBackground(t.Background))
}

func (a App) viewMain() string {
	t := theme.Active
	w := a.width
	cw := a.contentWidth()
	h := a.height

	// 1. Header: tab bar + filter row
	header := components.RenderTabBar(a.activeTab, a.tabCounts(), w) + "\n" + a.renderFilterRow(w)

	// 2. Status bar
	right := ""
	if a.ctrl != nil && len(a.ctrl.Page().Goals) > 0 {
		sum := pipeline.Summarize(a.ctrl.Page().Goals, a.now())
		right = components.CompactBar("avg", sum.AverageCompletion/100, 22) + " "
	}
	if a.pending > 0 {
		right += a.spinner.View() + " "
	}
	if !a.lastLoad.IsZero() {
		right += "updated " + a.lastLoad.Format("15:04:05")
	}
	statusBar := components.RenderStatusBar(w, a.notice, a.noticeErr, right)

	// 3. Content zone height
	contentH := h - lipgloss.Height(header) - lipgloss.Height(statusBar)
	if contentH < minContentHeight {
		contentH = minContentHeight
	}

	content := a.renderContent(cw, contentH)

	// 4. Truncate + pad to exactly contentH lines, then fill backgrounds
	content = padHeight(truncateHeight(content, contentH), contentH)
	content = fillLinesWithBackground(content, cw, t.Background)
	content = lipgloss.Place(w, contentH, lipgloss.Center, lipgloss.Top, content,
		lipgloss.WithWhitespaceBackground(t.Background))

	output := lipgloss.JoinVertical(lipgloss.Left, header, content, statusBar)
	return lipgloss.Place(w, h, lipgloss.Left, lipgloss.Top, output,
		lipgloss.WithWhitespaceBackground(t.Background))
}

func (a App) renderFilterRow(w int) string {
	t := theme.Active

	pillStyle := lipgloss.NewStyle().
		Foreground(t.TextDim).
		Background(t.Surface)

	accentStyle := lipgloss.NewStyle().
		Foreground(t.Accent).
		Background(t.Surface).
		Bold(true)

	cat := "All categories"
	if a.category.Concrete() {
		cat = a.category.String()
	}
	s := pillStyle.Render(" ") + accentStyle.Render(cat)

	switch {
	case a.searching:
		s += pillStyle.Render(" │ ") + a.searchInput.View()
	case a.query != "":
		s += pillStyle.Render(" │ search: ") + accentStyle.Render(a.query)
	}
	if a.ctrl != nil {
		s += pillStyle.Render(fmt.Sprintf(" │ user #%d", a.ctrl.Page().UserID))
	}
	if a.opts.Endpoint != "" {
		s += pillStyle.Render(" │ " + a.opts.Endpoint)
	}

	return lipgloss.NewStyle().Background(t.Surface).Width(w).Render(s + pillStyle.Render(" "))
}

func (a App) renderContent(cw, contentH int) string {
	var sum model.Summary
	if a.ctrl != nil {
		sum = pipeline.Summarize(a.ctrl.Page().Filtered(), a.now())
	}

	var b strings.Builder
	listH := contentH
	if a.height >= metricsMinHeight {
		metrics := components.MetricCardRow([]components.Metric{
			{Label: "Goals", Value: fmt.Sprintf("%d", sum.Total)},
			{Label: "In Progress", Value: fmt.Sprintf("%d", sum.InProgress)},
			{Label: "Completed", Value: fmt.Sprintf("%d", sum.Completed)},
			{Label: "Avg Completion", Value: fmt.Sprintf("%.0f%%", sum.AverageCompletion)},
			{Label: "Overdue", Value: fmt.Sprintf("%d", sum.Overdue)},
		}, cw)
		b.WriteString(metrics)
		b.WriteString("\n")
		listH -= lipgloss.Height(metrics)
	}

	goals := a.visible()
	if len(goals) == 0 {
		hint := "No goals here. Press a to add one."
		if a.query != "" {
			hint = fmt.Sprintf("No goals match %q. Press Esc to clear the search.", a.query)
		}
		b.WriteString(components.ContentCard(a.activeTab.String(), hint, cw))
		return b.String()
	}

	if a.isCompactLayout() {
		b.WriteString(a.renderList(goals, cw, listH))
		return b.String()
	}

	listW := cw * 3 / 5
	detailW := cw - listW
	list := a.renderList(goals, listW, listH)

	detail := ""
	if g, ok := a.selected(); ok {
		innerW := components.CardInnerWidth(detailW)
		body := components.GoalDetail(g, innerW, a.now())
		if len(sum.ByCategory) > 0 && !a.category.Concrete() {
			body += "\n\n" + components.CategoryChart(sum.ByCategory, innerW)
		}
		detail = components.ContentCard("Details", body, detailW)
	}

	b.WriteString(components.CardRow([]string{list, detail}))
	return b.String()
}

// renderList renders the goal list card, scrolled so the cursor is visible.
func (a App) renderList(goals []model.Goal, outerW, h int) string {
	innerW := components.CardInnerWidth(outerW)

	// border (2) + title line (1)
	rows := (h - 3) / components.GoalRowHeight
	if rows < 1 {
		rows = 1
	}
	offset := 0
	if a.cursor >= rows {
		offset = a.cursor - rows + 1
	}
	end := offset + rows
	if end > len(goals) {
		end = len(goals)
	}

	now := a.now()
	lines := make([]string, 0, end-offset)
	for i := offset; i < end; i++ {
		lines = append(lines, components.GoalRow(goals[i], i == a.cursor, innerW, now))
	}

	title := fmt.Sprintf("%s · %d/%d", a.activeTab, a.cursor+1, len(goals))
	return components.ContentCard(title, strings.Join(lines, "\n"), outerW)
}

// ─── Helpers ────────────────────────────────────────────────────

func truncateHeight(s string, limit int) string {
	lines := strings.Split(s, "\n")
	if len(lines) <= limit {
		return s
	}
	return strings.Join(lines[:limit], "\n")
}

func padHeight(s string, h int) string {
	lines := strings.Split(s, "\n")
	if len(lines) >= h {
		return s
	}
	return s + strings.Repeat("\n", h-len(lines))
}

// fillLinesWithBackground pads each line to width w with background color
// so gaps between cards and empty lines are filled.
func fillLinesWithBackground(s string, w int, bg lipgloss.Color) string {
	lines := strings.Split(s, "\n")

	var result strings.Builder
	for i, line := range lines {
		placed := lipgloss.PlaceHorizontal(w, lipgloss.Left, line,
			lipgloss.WithWhitespaceBackground(bg))
		result.WriteString(placed)
		if i < len(lines)-1 {
			result.WriteString("\n")
		}
	}
	return result.String()
}
