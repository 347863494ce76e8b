package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tile-crush/internal/config"
	"github.com/vovakirdan/tile-crush/internal/core"
)

// CrushMode represents the selected game mode.
type CrushMode int

const (
	CrushModeClassic CrushMode = iota
	CrushModeMoves
)

// CrushSelection holds the user's selection from the tile-crush menu.
type CrushSelection struct {
	Mode       CrushMode
	Difficulty config.DifficultyPreset
}

// CrushModeModel lets users choose game mode and difficulty.
type CrushModeModel struct {
	cursor       int
	diffCursor   int
	inDiffSelect bool
	pendingMode  CrushMode
	width        int
	height       int
	keyMapper    *KeyMapper
	selection    CrushSelection
	choosing     bool
	quitting     bool
	back         bool
}

// NewCrushModeModel creates a new mode selection model.
func NewCrushModeModel(width, height int) CrushModeModel {
	return CrushModeModel{
		cursor:    0,
		width:     width,
		height:    height,
		keyMapper: NewKeyMapper(),
		choosing:  true,
	}
}

// Init initializes the model.
func (m CrushModeModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m CrushModeModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	}
	return m, nil
}

func (m CrushModeModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keyMapper.MapKeyToMenuAction(msg)

	if m.inDiffSelect {
		return m.handleDiffSelectKey(action)
	}
	return m.handleModeSelectKey(action)
}

func (m CrushModeModel) handleModeSelectKey(action MenuAction) (tea.Model, tea.Cmd) {
	switch action {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit
	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}
	case MenuActionDown:
		if m.cursor < 1 { // 2 options: Classic, Move Budget
			m.cursor++
		}
	case MenuActionSelect:
		m.pendingMode = CrushMode(m.cursor)
		m.inDiffSelect = true
		m.diffCursor = 1 // default to normal
	case MenuActionBack:
		m.back = true
		return m, tea.Quit
	}

	return m, nil
}

var difficultyPresets = []config.DifficultyPreset{
	config.DifficultyEasy,
	config.DifficultyNormal,
	config.DifficultyHard,
}

func (m CrushModeModel) handleDiffSelectKey(action MenuAction) (tea.Model, tea.Cmd) {
	switch action {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit
	case MenuActionUp:
		if m.diffCursor > 0 {
			m.diffCursor--
		}
	case MenuActionDown:
		if m.diffCursor < len(difficultyPresets)-1 {
			m.diffCursor++
		}
	case MenuActionSelect:
		m.choosing = false
		m.selection = CrushSelection{
			Mode:       m.pendingMode,
			Difficulty: difficultyPresets[m.diffCursor],
		}
		return m, tea.Quit
	case MenuActionBack:
		m.inDiffSelect = false
	}

	return m, nil
}

// View renders the mode/difficulty selection.
func (m CrushModeModel) View() string {
	if m.quitting {
		return ""
	}

	if m.inDiffSelect {
		return m.viewDiffSelect()
	}
	return m.viewModeSelect()
}

func (m CrushModeModel) viewModeSelect() string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText("T I L E   C R U S H", m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText("Select game mode:", m.width))
	b.WriteString("\n\n")

	modes := []string{
		"Classic (play until stuck)",
		"Move Budget (limited swaps)",
	}

	for i, mode := range modes {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}
		b.WriteString(centerText(fmt.Sprintf("%s%s", cursor, mode), m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText("Enter: Select  |  Esc: Back  |  Q: Quit", m.width))

	return b.String()
}

func (m CrushModeModel) viewDiffSelect() string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText("SELECT DIFFICULTY", m.width))
	b.WriteString("\n\n")

	labels := []string{
		"Easy   (5 tile types, 30 moves)",
		"Normal (6 tile types, 20 moves)",
		"Hard   (7 tile types, 15 moves)",
	}

	for i, label := range labels {
		cursor := "  "
		if i == m.diffCursor {
			cursor = "> "
		}
		b.WriteString(centerText(fmt.Sprintf("%s%s", cursor, label), m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText("Enter: Select  |  Esc: Back  |  Q: Quit", m.width))

	return b.String()
}

// Selected returns the selection, or nil if still choosing.
func (m CrushModeModel) Selected() *CrushSelection {
	if m.choosing {
		return nil
	}
	return &m.selection
}

// IsQuitting returns true if user wants to quit.
func (m CrushModeModel) IsQuitting() bool {
	return m.quitting
}

// WantsBack returns true if user pressed back.
func (m CrushModeModel) WantsBack() bool {
	return m.back
}

// RunCrushModeSelector runs the mode selection and returns the selection.
func RunCrushModeSelector(cfg core.RuntimeConfig) (*CrushSelection, core.RuntimeConfig, error) {
	model := NewCrushModeModel(cfg.ScreenW, cfg.ScreenH)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return nil, cfg, err
	}

	m, ok := finalModel.(CrushModeModel)
	if !ok {
		return nil, cfg, nil
	}

	if m.IsQuitting() || m.WantsBack() {
		return nil, cfg, nil
	}

	return m.Selected(), cfg, nil
}
