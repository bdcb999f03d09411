package tui

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/javiermolinar/tabula/internal/config"
	"github.com/javiermolinar/tabula/internal/db"
	"github.com/javiermolinar/tabula/internal/sheet"
	"github.com/javiermolinar/tabula/internal/snapshot"
	"github.com/javiermolinar/tabula/internal/tui/commands"
	"github.com/javiermolinar/tabula/internal/tui/theme"
)

// Mode represents the current interaction mode.
type Mode int

const (
	ModeNormal Mode = iota
	ModeEdit        // Editing a cell or header label
	ModeDrag        // Mouse drag in progress
	ModePrompt      // Typing a /command
	ModeModal
)

// String returns the mode label shown in the footer.
func (m Mode) String() string {
	switch m {
	case ModeNormal:
		return "NORMAL"
	case ModeEdit:
		return "EDIT"
	case ModeDrag:
		return "DRAG"
	case ModePrompt:
		return "COMMAND"
	case ModeModal:
		return "CONFIRM"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// ModalType identifies the type of modal.
type ModalType int

const (
	ModalNone          ModalType = iota
	ModalConfirmCreate           // Replace the current table with a new one
	ModalConfirmClear            // Delete the stored table
)

// Position is a cursor position in the grid. Row -1 is the header line.
type Position struct {
	Row int
	Col int
}

const (
	titleHeight  = 1
	footerHeight = 2
	statusTTL    = 3 * time.Second
)

// Model is the main TUI model.
type Model struct {
	// Dependencies
	ctx    context.Context
	sheet  *sheet.Sheet
	config *config.Config

	// Theme and styles
	theme  *theme.Theme
	styles *Styles

	// State
	cursor    Position
	mode      Mode
	modalType ModalType
	loading   bool
	hits      hitMap
	pointer   pointerState

	// Components
	editor textinput.Model
	prompt textinput.Model

	// Terminal dimensions and layout
	width        int
	height       int
	scrollOffset int

	// Messages
	statusMsg string
	statusSeq int // bumped on every new status so stale expiries are ignored
	err       error

	copyText  func(string) error
	pasteText func() (string, error)
}

// ModelOption configures optional model behavior.
type ModelOption func(*Model)

// WithContext sets the context used for storage calls.
func WithContext(ctx context.Context) ModelOption {
	return func(m *Model) {
		if ctx != nil {
			m.ctx = ctx
		}
	}
}

// WithClipboard replaces the system clipboard.
func WithClipboard(write func(string) error, read func() (string, error)) ModelOption {
	return func(m *Model) {
		m.copyText = write
		m.pasteText = read
	}
}

// New creates a new TUI model around s.
func New(s *sheet.Sheet, cfg *config.Config, opts ...ModelOption) Model {
	t, err := theme.Load(cfg.UI.Theme)
	if err != nil {
		t, _ = theme.Load(theme.DefaultName)
	}
	styles := NewStyles(t)

	editor := textinput.New()
	editor.Prompt = ""
	editor.CharLimit = 512
	editor.TextStyle = styles.EditorTextStyle
	editor.Cursor.Style = styles.EditorCursorStyle
	editor.Cursor.TextStyle = styles.EditorTextStyle

	prompt := textinput.New()
	prompt.Prompt = ""
	prompt.Placeholder = "/command"

	m := Model{
		ctx:       context.Background(),
		sheet:     s,
		config:    cfg,
		theme:     t,
		styles:    styles,
		mode:      ModeNormal,
		loading:   true,
		editor:    editor,
		prompt:    prompt,
		pointer:   pointerState{overRow: -1, overCol: -1},
		copyText:  clipboard.WriteAll,
		pasteText: clipboard.ReadAll,
	}
	for _, opt := range opts {
		opt(&m)
	}
	return m
}

// Init starts reading the stored table.
func (m Model) Init() tea.Cmd {
	return commands.Load(m.ctx, m.sheet)
}

// Run starts the TUI.
func Run(ctx context.Context, repo snapshot.Repository, cfg *config.Config) error {
	return RunWithDebug(ctx, repo, cfg, false)
}

// RunWithDebug starts the TUI with optional debug logging. When repo is nil
// the database named in cfg is opened and closed on exit.
func RunWithDebug(ctx context.Context, repo snapshot.Repository, cfg *config.Config, debug bool) error {
	if err := InitDebugLogger(debug); err != nil {
		return err
	}
	defer CloseDebugLogger()

	if repo == nil {
		opened, err := db.Open(cfg.Storage.DBPath)
		if err != nil {
			return err
		}
		defer func() { _ = opened.Close() }()
		repo = opened
	}

	s := sheet.New(repo,
		sheet.WithKey(cfg.Storage.Key),
		sheet.WithSize(cfg.Grid.Columns, cfg.Grid.Rows),
		sheet.WithLogger(DebugLogger()),
	)
	model := New(s, cfg, WithContext(ctx))
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion(), tea.WithContext(ctx))
	_, err := p.Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		err = nil
	}
	if flushErr := s.Flush(context.WithoutCancel(ctx)); flushErr != nil && err == nil {
		err = flushErr
	}
	return err
}
