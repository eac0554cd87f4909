package tui

import (
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/timelocal-cli/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/timelocal-cli/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/timelocal-cli/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/timelocal-cli/internal/adapters/driving/tui/views/stamps"
	"github.com/custodia-labs/timelocal-cli/internal/core/domain"
)

// chromeHeight is the number of lines used by the title and help chrome
// around the stamp list.
const chromeHeight = 4

// App is the TUI application following the Elm architecture.
// It previews the localisations for one file.
type App struct {
	// ports provides access to core services via driving ports.
	ports *Ports

	// path is the previewed file.
	path string

	// ctx is the context for cancellation.
	ctx context.Context

	// styles holds the TUI styles.
	styles *styles.Styles

	// keys holds the keybindings.
	keys *keymap.KeyMap

	// stampsView lists the localised stamps.
	stampsView *stamps.View

	// result is the latest pass outcome.
	result *domain.PassResult

	// err holds the last error that occurred.
	err error

	// width and height are terminal dimensions.
	width  int
	height int

	// showHelp toggles the help line.
	showHelp bool

	// ready indicates if the app has received its dimensions.
	ready bool
}

// Ensure App implements tea.Model.
var _ tea.Model = (*App)(nil)

// NewApp creates a TUI application previewing the given file.
func NewApp(ports *Ports, path string) (*App, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("creating app: %w", err)
	}
	if path == "" {
		return nil, fmt.Errorf("%w: file path is required", domain.ErrInvalidInput)
	}

	s := styles.DefaultStyles()
	return &App{
		ports:      ports,
		path:       path,
		ctx:        context.Background(),
		styles:     s,
		keys:       keymap.DefaultKeyMap(),
		stampsView: stamps.NewView(s),
	}, nil
}

// WithContext sets the context for the app.
func (a *App) WithContext(ctx context.Context) *App {
	a.ctx = ctx
	return a
}

// CurrentResult returns the latest pass result, if any.
func (a *App) CurrentResult() *domain.PassResult {
	return a.result
}

// Init implements tea.Model. It triggers the initial load.
func (a *App) Init() tea.Cmd {
	return a.load
}

// load reads and localises the file.
func (a *App) load() tea.Msg {
	src, err := os.ReadFile(a.path)
	if err != nil {
		return messages.LoadFailed{Err: fmt.Errorf("reading %s: %w", a.path, err)}
	}

	result, err := a.ports.Localizer.Localize(a.ctx, src)
	if err != nil {
		return messages.LoadFailed{Err: fmt.Errorf("localising %s: %w", a.path, err)}
	}

	return messages.PassLoaded{Result: result}
}

// Update implements tea.Model.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.ready = true
		a.stampsView.SetSize(msg.Width, msg.Height-chromeHeight)
		return a, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, a.keys.Quit):
			return a, tea.Quit
		case key.Matches(msg, a.keys.Reload):
			return a, a.load
		case key.Matches(msg, a.keys.Help):
			a.showHelp = !a.showHelp
			return a, nil
		}

	case messages.PassLoaded:
		a.result = msg.Result
		a.err = nil
		a.stampsView.SetResult(msg.Result)
		return a, nil

	case messages.LoadFailed:
		a.err = msg.Err
		return a, nil
	}

	return a, a.stampsView.Update(msg)
}

// View implements tea.Model.
func (a *App) View() string {
	if !a.ready {
		return "Loading..."
	}

	title := a.styles.Title.Render("timelocal") + a.styles.Muted.Render("  "+a.path)

	var body string
	switch {
	case a.err != nil:
		body = a.styles.Error.Render(a.err.Error())
	default:
		body = a.stampsView.View()
	}

	status := a.stampsView.StatusLine()
	help := a.styles.Help.Render("q quit · r reload · ? help")
	if a.showHelp {
		help = a.styles.Help.Render("↑/k up · ↓/j down · r reload · ? help · q quit")
	}

	return title + "\n\n" + body + "\n" + status + "\n" + help
}
