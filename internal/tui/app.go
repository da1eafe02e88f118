package tui

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"

	"github.com/jask/teakit/core"
	"github.com/jask/teakit/internal/config"
	"github.com/jask/teakit/tabs"
	"github.com/jask/teakit/widgets"
)

const (
	paneProgress = "progress"
	paneStatus   = "status"
	paneHelp     = "help"

	defaultWidth  = 80
	defaultHeight = 20
)

// configChangedMsg carries a reloaded config into the update loop.
type configChangedMsg struct {
	cfg config.Config
}

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(widgets.ColorMauve)
	footerStyle = lipgloss.NewStyle().Foreground(widgets.ColorSubtle)
)

// App is the checkout progress screen. Background work reaches its
// widgets only through the mailbox.
type App struct {
	ctx    context.Context
	cancel context.CancelFunc
	cfg    config.Config
	log    zerolog.Logger

	mailbox *core.Mailbox
	router  *core.Router

	tabbed *tabs.TabbedContent
	steps  []*widgets.RadioStatus
	status *widgets.StaticStatus
	detail *widgets.StaticStatus
	loader *widgets.LoadingDisplay
	start  *widgets.ControllableButton
	help   help.Model
	keys   KeyMap

	running bool
	run     int
	results int
	notes   int
	reveal  string // pane to activate once mounted

	width  int
	height int
}

// New builds the screen and composes its tabs. open, when set, picks the
// first tab by id or closest title and wins over ui.initial_tab.
func New(ctx context.Context, cfg config.Config, log zerolog.Logger, open string) (*App, error) {
	ctx, cancel := context.WithCancel(ctx)
	mb := core.NewMailbox()
	a := &App{
		ctx:     ctx,
		cancel:  cancel,
		cfg:     cfg,
		log:     log.With().Str("component", "tui").Logger(),
		mailbox: mb,
		router:  core.NewRouter(mb, log),
		help:    help.New(),
		keys:    DefaultKeyMap(),
		width:   defaultWidth,
		height:  defaultHeight,
	}

	for _, name := range cfg.Demo.Steps {
		a.steps = append(a.steps, widgets.NewRadioStatus(name, mb))
	}
	a.status = widgets.NewStaticStatus(core.Text("Press enter to start"), mb, widgets.WithStaticRef("status-line"))
	a.detail = widgets.NewStaticStatus(core.Text("No run yet"), mb, widgets.WithStaticRef("status-detail"))
	a.loader = widgets.NewLoadingDisplay("working")
	a.loader.Hide()
	a.start = widgets.NewControllableButton("Start", widgets.WithButtonRef("start"))
	a.start.Focus()

	for _, r := range a.steps {
		a.router.Register(r)
	}
	a.router.Register(a.status, a.detail)

	a.tabbed = tabs.New([]tabs.Entry{
		{Content: tabs.NewTabPane("Progress", core.RenderFunc(a.renderProgress)).WithID(paneProgress)},
		{Content: tabs.NewTabPane("Status", widgets.Box{Title: "Last event", Body: a.detail}).WithID(paneStatus)},
		{Content: tabs.NewTabPane("Help", core.RenderFunc(a.renderHelp)).WithID(paneHelp)},
	},
		tabs.WithRef("main"),
		tabs.WithKeyMap(a.keys.Tabs),
		tabs.WithTabsStyles(tabStyles(cfg.UI)),
		tabs.WithLabelWidth(cfg.UI.HeaderWidth),
		tabs.WithLogger(log),
	)
	if err := a.tabbed.Compose(); err != nil {
		cancel()
		return nil, fmt.Errorf("compose tabs: %w", err)
	}
	a.Open(cfg.UI.InitialTab)
	a.Open(open)
	return a, nil
}

func tabStyles(ui config.UIConfig) tabs.TabsStyles {
	s := tabs.DefaultTabsStyles()
	if ui.ActiveColor != "" {
		s.Active = s.Active.Background(lipgloss.Color(ui.ActiveColor))
	}
	if ui.InactiveColor != "" {
		s.Inactive = s.Inactive.Foreground(lipgloss.Color(ui.InactiveColor))
	}
	return s
}

// Open activates the pane with id query, or else the pane whose title is
// closest to it. An empty query is ignored.
func (a *App) Open(query string) {
	query = strings.TrimSpace(query)
	if query == "" {
		return
	}
	id := query
	if _, ok := a.tabbed.Pane(id); !ok {
		p, found := a.tabbed.Find(query)
		if !found {
			return
		}
		id = p.ID()
	}
	a.tabbed.Activate(id)
}

// ConfigChanged is safe to call from any goroutine, such as a config
// watcher callback.
func (a *App) ConfigChanged(cfg config.Config) {
	a.detail.ChangeContentAligned(core.Text("Configuration reloaded"), core.AlignCenter)
	a.mailbox.Post(configChangedMsg{cfg: cfg})
}

// Close stops background work and releases the mailbox listener.
func (a *App) Close() {
	a.cancel()
	a.mailbox.Close()
}

func (a *App) Init() tea.Cmd {
	return a.router.Listen()
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if handled, cmd := a.router.Handle(msg); handled {
		return a, cmd
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width, a.height = msg.Width, msg.Height
		a.help.Width = msg.Width
		return a, nil
	case tea.KeyMsg:
		return a, a.handleKey(msg)
	case widgets.ButtonPressedMsg:
		if msg.Ref == a.start.Ref() {
			return a, a.startRun()
		}
	case runDoneMsg:
		return a, a.finishRun(msg)
	case tabs.PanesMountedMsg:
		if a.reveal != "" && slices.Contains(msg.IDs, a.reveal) {
			id := a.reveal
			a.reveal = ""
			return a, a.tabbed.Activate(id)
		}
	case tabs.TabActivatedMsg:
		a.log.Debug().Str("tab", msg.TabID).Msg("tab activated")
	case configChangedMsg:
		a.cfg.UI = msg.cfg.UI
		a.tabbed.Tabs().SetStyles(tabStyles(msg.cfg.UI))
		a.tabbed.Tabs().SetLabelWidth(msg.cfg.UI.HeaderWidth)
	case spinner.TickMsg:
		if a.loader.Visible() {
			return a, a.loader.Update(msg)
		}
	default:
		return a, a.tabbed.Update(msg)
	}
	return a, nil
}

func (a *App) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, a.keys.Quit):
		a.Close()
		return tea.Quit
	case key.Matches(msg, a.keys.Help):
		a.help.ShowAll = !a.help.ShowAll
		return nil
	case key.Matches(msg, a.keys.Append):
		return a.appendNote()
	case key.Matches(msg, a.keys.Start):
		if cmd := a.start.Update(msg); cmd != nil {
			return cmd
		}
		return a.start.Press()
	}
	return a.tabbed.Update(msg)
}

func (a *App) startRun() tea.Cmd {
	if a.running {
		return nil
	}
	a.running = true
	a.run++
	a.start.Disable()
	a.loader.Show()
	for _, r := range a.steps {
		r.TurnOff()
	}
	a.status.ChangeContentAligned(core.Text("Starting"), core.AlignLeft)
	a.detail.ChangeText(fmt.Sprintf("Run %d started", a.run))
	a.log.Info().Int("run", a.run).Int("steps", len(a.steps)).Msg("run started")

	ctx, run, mb := a.ctx, a.run, a.mailbox
	steps, status, delay := slices.Clone(a.steps), a.status, a.cfg.Demo.StepDelay
	work := func() tea.Msg {
		err := runSteps(ctx, steps, status, delay)
		mb.Post(runDoneMsg{run: run, err: err})
		return nil
	}
	return tea.Batch(a.loader.Init(), work)
}

func (a *App) finishRun(msg runDoneMsg) tea.Cmd {
	if msg.run != a.run {
		return nil
	}
	a.running = false
	a.loader.Hide()
	a.start.Enable()
	a.start.SetLabel("Restart")

	if msg.err != nil {
		a.log.Warn().Err(msg.err).Int("run", msg.run).Msg("run failed")
		a.status.ChangeText("Failed")
		a.detail.ChangeText(msg.err.Error())
		return nil
	}
	a.log.Info().Int("run", msg.run).Msg("run finished")
	a.status.ChangeText("Done")
	a.detail.ChangeText(fmt.Sprintf("Run %d finished", msg.run))

	a.results++
	done := make([]string, 0, len(a.steps))
	for _, r := range a.steps {
		if r.Value() {
			done = append(done, r.Label())
		}
	}
	title := fmt.Sprintf("Result %d", a.results)
	cmd, err := a.tabbed.Append(widgets.Box{Title: title, Body: widgets.List{Title: "Completed", Items: done}}, tabs.PaneTitle(title))
	if err != nil {
		a.log.Error().Err(err).Msg("append result pane")
		return nil
	}
	contents := a.tabbed.Contents()
	a.reveal = contents[len(contents)-1].ID()
	return cmd
}

func (a *App) appendNote() tea.Cmd {
	a.notes++
	title := fmt.Sprintf("Note %d", a.notes)
	cmd, err := a.tabbed.Append(core.Text(title+": added while running"), tabs.PaneTitle(title))
	if err != nil {
		a.log.Error().Err(err).Msg("append note pane")
		return nil
	}
	return cmd
}

func (a *App) renderProgress(width, height int) string {
	steps := make([]core.Renderable, 0, len(a.steps))
	for _, r := range a.steps {
		steps = append(steps, r)
	}
	controls := widgets.VStack{Items: []core.Renderable{a.status, a.loader, a.start}, Spacing: 1}
	return widgets.HStack{
		Items:  []core.Renderable{widgets.VStack{Items: steps}, controls},
		Ratios: []float64{1, 1},
		Gap:    2,
	}.Render(width, height)
}

func (a *App) renderHelp(width, height int) string {
	var items []string
	for _, group := range a.keys.FullHelp() {
		for _, b := range group {
			h := b.Help()
			items = append(items, fmt.Sprintf("%-12s %s", h.Key, h.Desc))
		}
	}
	return widgets.List{Title: "Keys", Items: items}.Render(width, height)
}

func (a *App) View() string {
	title := titleStyle.Render("teakit")
	footer := footerStyle.Render(a.help.View(a.keys))
	bodyHeight := max(3, a.height-lipgloss.Height(title)-lipgloss.Height(footer))
	body := a.tabbed.Render(a.width, bodyHeight)
	return lipgloss.JoinVertical(lipgloss.Left, title, body, footer)
}
