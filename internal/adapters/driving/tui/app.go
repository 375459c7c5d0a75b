package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/squareone-journey/squareone-cli/internal/adapters/driving/tui/components/status"
	"github.com/squareone-journey/squareone-cli/internal/adapters/driving/tui/keymap"
	"github.com/squareone-journey/squareone-cli/internal/adapters/driving/tui/messages"
	"github.com/squareone-journey/squareone-cli/internal/adapters/driving/tui/styles"
	"github.com/squareone-journey/squareone-cli/internal/adapters/driving/tui/views/journey"
	"github.com/squareone-journey/squareone-cli/internal/adapters/driving/tui/views/menu"
	"github.com/squareone-journey/squareone-cli/internal/adapters/driving/tui/views/settings"
	"github.com/squareone-journey/squareone-cli/internal/adapters/driving/tui/views/worksheet"
	"github.com/squareone-journey/squareone-cli/internal/core/domain"
	"github.com/squareone-journey/squareone-cli/internal/core/services"
	"github.com/squareone-journey/squareone-cli/internal/logger"
)

// noticeDuration is how long the app's own status messages stay visible.
const noticeDuration = 4 * time.Second

// App is the main TUI application following the Elm architecture.
// It implements tea.Model for use with Bubbletea.
type App struct {
	// ports provides access to core services via driving ports.
	ports *Ports

	// ctx is the context for cancellation.
	ctx context.Context

	styles *styles.Styles
	keymap *keymap.KeyMap

	menuView      *menu.View
	journeyView   *journey.View
	worksheetView *worksheet.View
	settingsView  *settings.View
	statusBar     *status.Bar

	// currentView tracks which view is active.
	currentView messages.ViewType

	// startup holds commands queued before the program started.
	startup []tea.Cmd

	// err holds the last error that occurred.
	err error

	// width and height are terminal dimensions.
	width  int
	height int

	// ready indicates if the app has initialised.
	ready bool
}

// Ensure App implements tea.Model.
var _ tea.Model = (*App)(nil)

// NewApp creates a new TUI application with the given ports.
func NewApp(ports *Ports) (*App, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("creating app: %w", err)
	}

	s := styles.DefaultStyles()
	km := keymap.DefaultKeyMap()
	if ports.Notifications != nil {
		ports.Notifications.Capture()
	}

	return &App{
		ports:         ports,
		ctx:           context.Background(),
		styles:        s,
		keymap:        km,
		menuView:      menu.NewView(s),
		journeyView:   journey.NewView(s, ports.Tiles, ports.Worksheet, ports.Settings),
		worksheetView: worksheet.NewView(s, ports.Worksheet, ports.Export, ports.Settings),
		settingsView:  settings.NewView(s, ports.Settings),
		statusBar:     status.NewBar(s, km),
		currentView:   messages.ViewMenu,
	}, nil
}

// WithContext sets the context for the app.
func (a *App) WithContext(ctx context.Context) *App {
	if ctx == nil {
		return a
	}
	a.ctx = ctx
	a.journeyView.SetContext(ctx)
	a.worksheetView.SetContext(ctx)
	return a
}

// OpenLink starts the app on the position a shared link names. An
// unknown stage opens the stage list with a notice.
func (a *App) OpenLink(raw string) error {
	link, err := services.ParseDeepLink(raw)
	if err != nil {
		return err
	}
	if err := a.journeyView.Open(domain.JourneyStart.String()); err != nil {
		return err
	}
	if !a.journeyView.OpenLink(link) {
		a.startup = append(a.startup, a.showNotice(domain.Notification{
			Type:     domain.NotificationWarning,
			Title:    "Unknown stage",
			Message:  fmt.Sprintf("%q is not a stage. Showing all stages.", link.StageCode),
			Duration: noticeDuration,
		}))
	}
	a.setView(messages.ViewJourney)
	return nil
}

// Init implements tea.Model.
// It runs initial commands when the program starts.
func (a *App) Init() tea.Cmd {
	cmds := append([]tea.Cmd{
		tea.EnterAltScreen,
		tea.SetWindowTitle("SquareOne Journey"),
	}, a.startup...)
	a.startup = nil
	return tea.Batch(cmds...)
}

// Update implements tea.Model.
// It handles messages and updates the model state.
//
//nolint:gocyclo // central message handler
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.SetDimensions(msg.Width, msg.Height)
		return a, nil

	case tea.KeyMsg:
		// Global quit with ctrl+c
		if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}
		if keymap.Matches(msg.String(), a.keymap.Help) && !a.capturingText() {
			return a, a.setView(messages.ViewHelp)
		}
		return a, a.handleKey(msg)

	case messages.ViewChanged:
		return a, a.setView(msg.View)

	case messages.JourneyRequested:
		if err := a.journeyView.Open(msg.Route); err != nil {
			if errors.Is(err, domain.ErrUnsupportedJourneyRoute) {
				logger.Debug("tui: journey %q not available, staying on menu", msg.Route)
				a.setView(messages.ViewMenu)
				return a, a.showNotice(domain.Notification{
					Type:     domain.NotificationInfo,
					Title:    "Coming soon",
					Message:  fmt.Sprintf("The %s journey is not available yet.", displayRoute(msg.Route)),
					Duration: noticeDuration,
				})
			}
			return a, a.fail(err)
		}
		return a, a.setView(messages.ViewJourney)

	case messages.ItemSaved:
		if msg.Err != nil {
			return a, a.fail(msg.Err)
		}
		a.journeyView, cmd = a.journeyView.Update(msg)
		return a, tea.Batch(cmd, a.drainNotifications())

	case messages.ItemRemoved, messages.NotesUpdated, messages.WorksheetCleared,
		messages.WorksheetLoaded, messages.PreviewRendered:
		a.worksheetView, cmd = a.worksheetView.Update(msg)
		return a, tea.Batch(cmd, a.drainNotifications())

	case messages.ExportCompleted:
		a.worksheetView, cmd = a.worksheetView.Update(msg)
		if msg.Err != nil {
			return a, tea.Batch(cmd, a.fail(msg.Err))
		}
		return a, tea.Batch(cmd, a.drainNotifications())

	case messages.ShareLinkReady:
		if msg.Err != nil {
			return a, a.fail(msg.Err)
		}
		return a, a.showNotice(domain.Notification{
			Type:    domain.NotificationInfo,
			Title:   "Share link",
			Message: msg.URL,
		})

	case messages.SettingsLoaded, messages.SettingsSaved:
		a.settingsView, cmd = a.settingsView.Update(msg)
		return a, cmd

	case messages.NotificationExpired:
		a.statusBar.Expire(msg.Seq)
		return a, nil

	case messages.ErrorOccurred:
		return a, a.fail(msg.Err)

	case messages.Quit:
		return a, tea.Quit
	}

	return a, nil
}

func (a *App) handleKey(msg tea.KeyMsg) tea.Cmd {
	var cmd tea.Cmd

	switch a.currentView {
	case messages.ViewMenu:
		a.menuView, cmd = a.menuView.Update(msg)

	case messages.ViewJourney:
		a.journeyView, cmd = a.journeyView.Update(msg)

	case messages.ViewWorksheet:
		a.worksheetView, cmd = a.worksheetView.Update(msg)

	case messages.ViewSettings:
		a.settingsView, cmd = a.settingsView.Update(msg)

	case messages.ViewHelp:
		// Esc from help goes to menu
		if keymap.Matches(msg.String(), a.keymap.Back) {
			return a.setView(messages.ViewMenu)
		}
	}
	return cmd
}

// capturingText reports whether the active view is taking typed input.
func (a *App) capturingText() bool {
	switch a.currentView {
	case messages.ViewWorksheet:
		return a.worksheetView.Editing() || a.worksheetView.Confirming()
	case messages.ViewSettings:
		return a.settingsView.Editing()
	}
	return false
}

// setView switches views and runs the target view's initialisation.
func (a *App) setView(view messages.ViewType) tea.Cmd {
	a.currentView = view

	switch view {
	case messages.ViewJourney:
		a.statusBar.SetHints(a.keymap.JourneyHelp())
		a.journeyView.Refresh()
	case messages.ViewWorksheet:
		a.statusBar.SetHints(a.keymap.WorksheetHelp())
		a.worksheetView.Reset()
		return a.worksheetView.Init()
	case messages.ViewSettings:
		a.statusBar.SetHints(nil)
		a.settingsView.Reset()
		return a.settingsView.Init()
	case messages.ViewMenu, messages.ViewHelp:
		a.statusBar.SetHints(nil)
	}
	return nil
}

// drainNotifications moves queued service notifications to the status bar.
// Only the latest is shown.
func (a *App) drainNotifications() tea.Cmd {
	cmd, _ := a.drain()
	return cmd
}

func (a *App) drain() (tea.Cmd, bool) {
	if a.ports.Notifications == nil {
		return nil, false
	}
	queued := a.ports.Notifications.Drain()
	if len(queued) == 0 {
		return nil, false
	}
	return a.showNotice(queued[len(queued)-1]), true
}

// showNotice displays n and schedules its dismissal.
func (a *App) showNotice(n domain.Notification) tea.Cmd {
	seq := a.statusBar.Show(n)
	if n.Duration <= 0 {
		return nil
	}
	return tea.Tick(n.Duration, func(time.Time) tea.Msg {
		return messages.NotificationExpired{Seq: seq}
	})
}

func (a *App) fail(err error) tea.Cmd {
	a.err = err
	logger.Warn("tui: %v", err)
	// Services report their own failures; fall back to the raw error.
	if cmd, ok := a.drain(); ok {
		return cmd
	}
	return a.showNotice(domain.Notification{
		Type:    domain.NotificationError,
		Title:   "Error",
		Message: err.Error(),
	})
}

// View implements tea.Model.
// It renders the current view as a string.
func (a *App) View() string {
	if !a.ready {
		return "Initialising..."
	}

	var body string
	switch a.currentView {
	case messages.ViewJourney:
		body = a.journeyView.View()
	case messages.ViewWorksheet:
		body = a.worksheetView.View()
	case messages.ViewSettings:
		body = a.settingsView.View()
	case messages.ViewHelp:
		body = a.viewHelp()
	default:
		body = a.menuView.View()
	}
	return body + "\n\n" + a.statusBar.View()
}

// viewHelp renders the help view.
func (a *App) viewHelp() string {
	var b strings.Builder
	b.WriteString(a.styles.Title.Render("Help"))
	b.WriteString("\n\n")
	for _, group := range a.keymap.FullHelp() {
		for _, binding := range group {
			h := binding.Help()
			fmt.Fprintf(&b, "  %-10s %s\n", h.Key, h.Desc)
		}
		b.WriteString("\n")
	}
	b.WriteString(a.styles.Help.Render("[esc] back to menu"))
	return b.String()
}

func displayRoute(route string) string {
	r := strings.Trim(strings.TrimSpace(route), "/")
	if i := strings.LastIndex(r, "/"); i >= 0 {
		r = r[i+1:]
	}
	if jt := domain.JourneyType(strings.ToLower(r)); jt.IsValid() {
		return jt.DisplayName()
	}
	return r
}

// CurrentView returns the current view type.
func (a *App) CurrentView() messages.ViewType {
	return a.currentView
}

// Err returns the last error that occurred.
func (a *App) Err() error {
	return a.err
}

// Ready returns whether the app has been initialised.
func (a *App) Ready() bool {
	return a.ready
}

// Notice returns the status bar notification, if any.
func (a *App) Notice() (domain.Notification, bool) {
	return a.statusBar.Notice()
}

// SetDimensions sets the terminal dimensions.
func (a *App) SetDimensions(width, height int) {
	a.width = width
	a.height = height
	a.ready = true

	// The status bar takes two lines.
	body := height - 2
	a.menuView.SetDimensions(width, body)
	a.journeyView.SetDimensions(width, body)
	a.worksheetView.SetDimensions(width, body)
	a.settingsView.SetDimensions(width, body)
	a.statusBar.SetWidth(width)
}
