package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/nisar1406/commitmoji/internal/adapters/driving/tui/components/input"
	"github.com/nisar1406/commitmoji/internal/adapters/driving/tui/components/list"
	"github.com/nisar1406/commitmoji/internal/adapters/driving/tui/keymap"
	"github.com/nisar1406/commitmoji/internal/adapters/driving/tui/messages"
	"github.com/nisar1406/commitmoji/internal/adapters/driving/tui/styles"
	"github.com/nisar1406/commitmoji/internal/core/domain"
)

// phase tracks where the wizard is.
type phase int

const (
	// phaseQuestions walks through the question sequence.
	phaseQuestions phase = iota
	// phaseActions shows the assembled message and the action menu.
	phaseActions
	// phaseDone is the terminal state.
	phaseDone
)

// App is the commit wizard following the Elm architecture.
// It implements tea.Model for use with Bubbletea.
type App struct {
	// ports provides access to core services.
	ports *Ports

	// ctx is the context for cancellation.
	ctx context.Context

	// styles holds the TUI styles.
	styles *styles.Styles

	// keys holds the keybindings.
	keys *keymap.KeyMap

	// cfg is the resolved configuration driving the wizard.
	cfg domain.Config

	// dryRun disables the commit action.
	dryRun bool

	// questions is the ordered prompt sequence.
	questions []domain.Question

	// index is the current question.
	index int

	// values holds answers keyed by question name.
	values map[string]string

	// gitmojiName is the catalog name of the chosen gitmoji.
	gitmojiName string

	// suggestions are recently used scopes shown on the scope question.
	suggestions []string

	// field, area and options are the active input components; only
	// the one matching the current question kind is non-nil.
	field   *input.TextField
	area    *input.MultilineField
	options *list.SelectList

	// phase tracks wizard progress.
	phase phase

	// message is the assembled commit message.
	message string

	// actions is the post-wizard action menu.
	actions *list.SelectList

	// action is the chosen action.
	action messages.Action

	// err holds the error from the executed action.
	err error

	// cancelled reports whether the user aborted.
	cancelled bool

	// status is the closing line shown before exit.
	status string

	// copyFunc places text on the clipboard; replaced in tests.
	copyFunc func(string) error

	// width and height are terminal dimensions.
	width  int
	height int
}

// Ensure App implements tea.Model.
var _ tea.Model = (*App)(nil)

// NewApp creates the commit wizard for a resolved configuration.
func NewApp(ports *Ports, cfg domain.Config) (*App, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("creating app: %w", err)
	}

	a := &App{
		ports:     ports,
		ctx:       context.Background(),
		styles:    styles.DefaultStyles(),
		keys:      keymap.DefaultKeyMap(),
		cfg:       cfg,
		questions: ports.Questions.Build(cfg),
		values:    make(map[string]string),
		action:    messages.ActionCancel,
		copyFunc:  clipboard.WriteAll,
		width:     80,
		height:    24,
	}
	if ports.History != nil {
		a.suggestions = ports.History.Suggestions(a.ctx)
	}
	a.mountQuestion()
	return a, nil
}

// WithContext sets the context for the app.
func (a *App) WithContext(ctx context.Context) *App {
	a.ctx = ctx
	return a
}

// WithDryRun disables the commit action.
func (a *App) WithDryRun(dryRun bool) *App {
	a.dryRun = dryRun
	return a
}

// Init implements tea.Model.
func (a *App) Init() tea.Cmd {
	return a.componentInit()
}

// Update implements tea.Model.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.resizeComponents()
		return a, nil

	case messages.ActionDone:
		return a.finishAction(msg)

	case tea.KeyMsg:
		if keymap.Matches(msg.String(), a.keys.Quit) {
			a.cancelled = true
			return a, tea.Quit
		}
		switch a.phase {
		case phaseQuestions:
			return a.updateQuestion(msg)
		case phaseActions:
			return a.updateActions(msg)
		case phaseDone:
			return a, tea.Quit
		}
	}

	return a, nil
}

// updateQuestion handles keys while walking the question sequence.
func (a *App) updateQuestion(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	q := a.question()

	if keymap.Matches(msg.String(), a.keys.Back) {
		if a.index == 0 {
			a.cancelled = true
			return a, tea.Quit
		}
		a.index--
		a.mountQuestion()
		return a, a.componentInit()
	}

	submit := keymap.Matches(msg.String(), a.keys.Select)
	if q.Kind == domain.KindMultiline {
		submit = keymap.Matches(msg.String(), a.keys.Done)
	}
	if submit {
		value, ok := a.answer(q)
		if !ok {
			return a, nil
		}
		return a.advance(q, value)
	}

	var cmd tea.Cmd
	switch q.Kind {
	case domain.KindSelect, domain.KindList:
		a.options, cmd = a.options.Update(msg)
	case domain.KindMultiline:
		a.area, cmd = a.area.Update(msg)
	case domain.KindInput:
		a.field, cmd = a.field.Update(msg)
	}
	return a, cmd
}

// answer extracts the current component's value for the question.
func (a *App) answer(q domain.Question) (string, bool) {
	switch q.Kind {
	case domain.KindSelect, domain.KindList:
		opt, ok := a.options.Selected()
		if !ok {
			return "", false
		}
		if q.Name == domain.QuestionGitmoji {
			a.gitmojiName = opt.Name
		}
		return opt.Value, true
	case domain.KindMultiline:
		return a.area.Value(), true
	default:
		return a.field.Value(), true
	}
}

// advance records the answer and moves to the next question, or
// assembles the message and opens the action menu after the last one.
func (a *App) advance(q domain.Question, value string) (tea.Model, tea.Cmd) {
	a.values[q.Name] = value

	if a.index < len(a.questions)-1 {
		a.index++
		a.mountQuestion()
		return a, a.componentInit()
	}

	a.message = a.ports.Composer.Format(a.collectAnswers(), a.cfg, a.width)
	a.phase = phaseActions
	a.actions = list.NewSelectList(a.actionOptions(), nil, a.styles)
	a.actions.SetSize(a.width, 6)
	return a, nil
}

// updateActions handles keys on the action menu.
func (a *App) updateActions(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if keymap.Matches(msg.String(), a.keys.Back) {
		// Back to the last question.
		a.phase = phaseQuestions
		a.mountQuestion()
		return a, a.componentInit()
	}

	if keymap.Matches(msg.String(), a.keys.Select) {
		opt, ok := a.actions.Selected()
		if !ok {
			return a, nil
		}
		return a.runAction(opt.Value)
	}

	var cmd tea.Cmd
	a.actions, cmd = a.actions.Update(msg)
	return a, cmd
}

// runAction executes the chosen action.
func (a *App) runAction(value string) (tea.Model, tea.Cmd) {
	switch value {
	case "commit":
		a.action = messages.ActionCommit
		msg := a.message
		return a, func() tea.Msg {
			return messages.ActionDone{
				Action: messages.ActionCommit,
				Err:    a.ports.Committer.Commit(a.ctx, msg),
			}
		}
	case "copy":
		a.action = messages.ActionCopy
		msg := a.message
		return a, func() tea.Msg {
			return messages.ActionDone{
				Action: messages.ActionCopy,
				Err:    a.copyFunc(msg),
			}
		}
	case "print":
		a.action = messages.ActionPrint
		return a, func() tea.Msg {
			return messages.ActionDone{Action: messages.ActionPrint}
		}
	default:
		a.action = messages.ActionCancel
		a.cancelled = true
		return a, tea.Quit
	}
}

// finishAction records the outcome and quits.
func (a *App) finishAction(msg messages.ActionDone) (tea.Model, tea.Cmd) {
	a.err = msg.Err
	a.phase = phaseDone

	switch {
	case msg.Err != nil:
		a.status = a.styles.Error.Render(fmt.Sprintf("%s failed: %v", msg.Action, msg.Err))
	case msg.Action == messages.ActionCommit:
		a.status = a.styles.Success.Render("Committed.")
	case msg.Action == messages.ActionCopy:
		a.status = a.styles.Success.Render("Copied to clipboard.")
	}

	if msg.Err == nil && a.ports.History != nil {
		a.ports.History.Record(a.ctx, a.values[domain.QuestionScope])
	}
	return a, tea.Quit
}

// collectAnswers assembles the answers record from stored values.
func (a *App) collectAnswers() domain.Answers {
	return domain.Answers{
		Type:    a.values[domain.QuestionType],
		Scope:   a.values[domain.QuestionScope],
		Gitmoji: domain.Gitmoji{Value: a.values[domain.QuestionGitmoji], Name: a.gitmojiName},
		Subject: a.values[domain.QuestionSubject],
		Body:    a.values[domain.QuestionBody],
		Issues:  a.values[domain.QuestionIssues],
	}
}

// actionOptions builds the menu for the assembled message.
func (a *App) actionOptions() []domain.Option {
	opts := make([]domain.Option, 0, 4)
	if !a.dryRun && a.ports.Committer != nil {
		opts = append(opts, domain.Option{Label: "Commit this message", Value: "commit"})
	}
	opts = append(opts,
		domain.Option{Label: "Copy to clipboard", Value: "copy"},
		domain.Option{Label: "Print and exit", Value: "print"},
		domain.Option{Label: "Cancel", Value: "cancel"},
	)
	return opts
}

// mountQuestion prepares the input component for the current question,
// restoring any previously entered value.
func (a *App) mountQuestion() {
	q := a.question()
	a.field = nil
	a.area = nil
	a.options = nil

	switch q.Kind {
	case domain.KindSelect:
		a.options = list.NewSelectList(q.Options, a.ports.Questions.Rank, a.styles)
		a.options.SetSize(a.width, a.height-4)
	case domain.KindList:
		a.options = list.NewSelectList(q.Options, nil, a.styles)
		a.options.SetSize(a.width, a.height-4)
	case domain.KindMultiline:
		a.area = input.NewMultilineField("Leave empty to skip", a.styles)
		a.area.SetWidth(a.width)
		a.area.SetValue(a.values[q.Name])
	case domain.KindInput:
		placeholder := ""
		if q.Name == domain.QuestionIssues {
			placeholder = "#123"
		}
		a.field = input.NewTextField(placeholder, q.MaxLength, a.styles)
		a.field.SetWidth(a.width)
		a.field.SetValue(a.values[q.Name])
	}
}

// componentInit returns the Init command of the active component.
func (a *App) componentInit() tea.Cmd {
	switch {
	case a.options != nil:
		return a.options.Init()
	case a.area != nil:
		return a.area.Init()
	case a.field != nil:
		return a.field.Init()
	default:
		return nil
	}
}

// resizeComponents propagates the terminal size.
func (a *App) resizeComponents() {
	if a.options != nil {
		a.options.SetSize(a.width, a.height-4)
	}
	if a.field != nil {
		a.field.SetWidth(a.width)
	}
	if a.area != nil {
		a.area.SetWidth(a.width)
	}
	if a.actions != nil {
		a.actions.SetSize(a.width, 6)
	}
}

// question returns the current question.
func (a *App) question() domain.Question {
	return a.questions[a.index]
}

// View implements tea.Model.
func (a *App) View() string {
	switch a.phase {
	case phaseActions:
		return a.viewActions()
	case phaseDone:
		if a.status == "" {
			return ""
		}
		return a.status + "\n"
	default:
		return a.viewQuestion()
	}
}

// viewQuestion renders the current question.
func (a *App) viewQuestion() string {
	q := a.question()
	var b strings.Builder

	progress := a.styles.Muted.Render(fmt.Sprintf("[%d/%d]", a.index+1, len(a.questions)))
	b.WriteString(progress + " " + a.styles.Title.Render(q.Message) + "\n\n")

	switch q.Kind {
	case domain.KindSelect, domain.KindList:
		b.WriteString(a.options.View())
		b.WriteString("\n\n" + a.helpView(a.keys.ListHelp()))
	case domain.KindMultiline:
		b.WriteString(a.area.View())
		b.WriteString("\n\n" + a.helpView(a.keys.MultilineHelp()))
	case domain.KindInput:
		b.WriteString(a.field.View())
		if q.Name == domain.QuestionScope && len(a.suggestions) > 0 {
			b.WriteString("\n" + a.styles.Muted.Render("recent: "+strings.Join(a.suggestions, ", ")))
		}
		b.WriteString("\n\n" + a.helpView(a.keys.ShortHelp()))
	}

	return b.String()
}

// viewActions renders the message preview and the action menu.
func (a *App) viewActions() string {
	var b strings.Builder
	b.WriteString(a.styles.Subtitle.Render("Commit message") + "\n\n")
	b.WriteString(a.styles.Preview.Render(a.message) + "\n\n")
	b.WriteString(a.actions.View())
	b.WriteString("\n\n" + a.helpView(a.keys.ListHelp()))
	return b.String()
}

// helpView renders a help line for the given bindings.
func (a *App) helpView(bindings []key.Binding) string {
	parts := make([]string, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		parts = append(parts, h.Key+" "+h.Desc)
	}
	return a.styles.Help.Render(strings.Join(parts, "  "))
}

// Message returns the assembled commit message.
func (a *App) Message() string {
	return a.message
}

// Action returns the action the user chose.
func (a *App) Action() messages.Action {
	return a.action
}

// Err returns the error from the executed action, if any.
func (a *App) Err() error {
	return a.err
}

// Cancelled reports whether the user aborted the wizard.
func (a *App) Cancelled() bool {
	return a.cancelled
}
