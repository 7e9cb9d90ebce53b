package tui

import (
	"os"

	"github.com/charmbracelet/bubbles/help"
	list "github.com/charmbracelet/bubbles/list"
	table "github.com/charmbracelet/bubbles/table"
	textarea "github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"sgthelper/internal/config"
	"sgthelper/internal/scene"
	"sgthelper/internal/watch"
)

// focus is the pane receiving keys.
type focus int

const (
	focusCanvas focus = iota
	focusData
	focusSchema
	focusDisplay
)

// Editors, indexed by focus-1.
const (
	editorData = iota
	editorSchema
	editorDisplay
	editorCount
)

var editorRoles = [editorCount]string{"data", "schema", "display"}

// Options configure a new Model. Paths are optional files preloaded into the
// editors; Watcher, when set, must already watch them under editorRoles.
type Options struct {
	Config      config.Config
	DataPath    string
	SchemaPath  string
	DisplayPath string
	Watcher     *watch.Watcher
}

type Model struct {
	width  int
	height int

	cfg    config.Config
	styles styles
	keys   keyMap
	help   help.Model

	helpVisible bool
	showLicense bool

	session *scene.Session
	view    scene.View
	status  string

	// inputs
	focus      focus
	lastEditor int
	editors    [editorCount]textarea.Model
	paths      [editorCount]string
	logView    viewport.Model

	// file sidebar
	showSidebar bool
	cwd         string
	l           list.Model

	// records table
	showTable bool
	tbl       table.Model

	// drag panning
	dragging bool
	dragX    int
	dragY    int

	// hover state
	hovering bool
	hover    scene.Node

	watcher *watch.Watcher
}

func New(opts Options) Model {
	m := Model{
		cfg:         opts.Config,
		styles:      newStyles(opts.Config.Theme),
		keys:        newKeyMap(),
		help:        help.New(),
		helpVisible: true,
		session:     scene.NewSession(opts.Config),
		view:        scene.NewView(opts.Config.View),
		status:      "sgthelper ready",
		watcher:     opts.Watcher,
	}
	m.cwd, _ = os.Getwd()

	placeholders := [editorCount]string{
		"Node data, space separated, one node per line",
		"Field names, one per line; s and t are required",
		"Fields to label, one per line",
	}
	for i := range m.editors {
		ta := textarea.New()
		ta.Placeholder = placeholders[i]
		ta.CharLimit = 0
		ta.ShowLineNumbers = false
		ta.Prompt = ""
		ta.SetWidth(30)
		ta.SetHeight(4)
		m.editors[i] = ta
	}
	m.editors[editorSchema].SetValue("s\nt")
	m.logView = viewport.New(30, 4)

	d := list.NewDefaultDelegate()
	d.ShowDescription = false
	m.l = list.New(nil, d, 0, 0)
	m.l.Title = "Open file"
	m.l.SetShowHelp(false)
	m.l.SetShowStatusBar(false)
	m.l.SetFilteringEnabled(true)

	m.tbl = table.New(table.WithFocused(true))
	m.tbl.SetHeight(12)

	loaded := false
	for i, p := range [editorCount]string{opts.DataPath, opts.SchemaPath, opts.DisplayPath} {
		if p != "" {
			m.loadFile(i, p)
			loaded = true
		}
	}
	if loaded {
		m.render()
	}
	return m
}

func (m Model) Init() tea.Cmd {
	return m.waitForChange()
}

// Session exposes the render session, mostly for tests.
func (m Model) Session() *scene.Session { return m.session }
