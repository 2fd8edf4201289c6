package repl

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	icelerror "github.com/coxioxi/icel/foundation/core/error"
	"github.com/coxioxi/icel/foundation/icel"
	"github.com/coxioxi/icel/foundation/icel/ast"
	icelstringx "github.com/coxioxi/icel/foundation/utils/stringx"
)

// Model is the main Bubbletea model for the interactive session
type Model struct {
	// State
	width   int
	height  int
	ready   bool
	showAST bool

	// Components
	textarea textarea.Model
	viewport viewport.Model

	// Session state
	engine  *icel.Engine
	entries []Entry
	prompt  string

	// Input history
	inputHistory []string // Liste der bisherigen Eingaben
	historyIndex int      // Aktuelle Position in der Historie (-1 = neue Eingabe)
	currentInput string   // Zwischenspeicher für aktuelle Eingabe beim Navigieren
	historyLimit int
}

// Config holds the interactive session configuration
type Config struct {
	Engine      *icel.Engine
	Prompt      string
	ShowAST     bool
	HistorySize int
}

// DefaultConfig returns default configuration
func DefaultConfig() Config {
	return Config{
		Prompt:      "calc> ",
		ShowAST:     true,
		HistorySize: 100,
	}
}

// New creates a new session model
func New(cfg Config) Model {
	cfg.Prompt = icelstringx.FromBlankDefault(cfg.Prompt, DefaultConfig().Prompt)
	if cfg.HistorySize <= 0 {
		cfg.HistorySize = DefaultConfig().HistorySize
	}

	// Setup textarea as a single prompt line
	ta := textarea.New()
	ta.Placeholder = "Ausdruck eingeben... (:help für Befehle, leere Eingabe beendet)"
	ta.Prompt = cfg.Prompt
	ta.Focus()
	ta.CharLimit = 4096
	ta.SetWidth(80)
	ta.SetHeight(1)
	ta.ShowLineNumbers = false
	ta.FocusedStyle.CursorLine = lipgloss.NewStyle()

	return Model{
		textarea:     ta,
		engine:       cfg.Engine,
		entries:      []Entry{},
		prompt:       cfg.Prompt,
		showAST:      cfg.ShowAST,
		inputHistory: []string{},
		historyIndex: -1, // -1 bedeutet: keine Historie-Navigation aktiv
		historyLimit: cfg.HistorySize,
	}
}

// Init initializes the model
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		textarea.Blink,
		tea.EnterAltScreen,
	)
}

// Update handles messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		headerHeight := 4 // Title panel
		footerHeight := 6 // Input line + status bar + help
		viewportHeight := msg.Height - headerHeight - footerHeight

		if !m.ready {
			m.viewport = viewport.New(msg.Width-4, viewportHeight)
			m.viewport.YPosition = headerHeight
			m.ready = true
		} else {
			m.viewport.Width = msg.Width - 4
			m.viewport.Height = viewportHeight
		}
		m.textarea.SetWidth(msg.Width - 4)
		m.updateViewportContent()
	}

	// Update components
	m.textarea, cmd = m.textarea.Update(msg)
	cmds = append(cmds, cmd)

	m.viewport, cmd = m.viewport.Update(msg)
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

// handleKeyPress handles keyboard input
func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC:
		return m, tea.Quit

	case tea.KeyCtrlL:
		// Transcript leeren, Variablen bleiben erhalten
		m.entries = []Entry{}
		m.updateViewportContent()
		return m, nil

	case tea.KeyEnter:
		input := strings.TrimSpace(m.textarea.Value())
		if input == "" {
			// Leere Eingabe beendet die Sitzung
			return m, tea.Quit
		}

		// Zur Historie hinzufügen (nur wenn nicht identisch mit letztem Eintrag)
		if len(m.inputHistory) == 0 || m.inputHistory[len(m.inputHistory)-1] != input {
			m.inputHistory = append(m.inputHistory, input)
			if len(m.inputHistory) > m.historyLimit {
				m.inputHistory = m.inputHistory[len(m.inputHistory)-m.historyLimit:]
			}
		}
		// Historie-Index zurücksetzen
		m.historyIndex = -1
		m.currentInput = ""

		var cmd tea.Cmd
		m, cmd = m.executeInput(input)
		m.textarea.Reset()
		m.updateViewportContent()
		m.viewport.GotoBottom()
		return m, cmd

	case tea.KeyUp:
		// Nach oben in der Historie navigieren
		if len(m.inputHistory) > 0 {
			if m.historyIndex == -1 {
				// Erste Navigation: aktuelle Eingabe speichern
				m.currentInput = m.textarea.Value()
				m.historyIndex = len(m.inputHistory) - 1
			} else if m.historyIndex > 0 {
				m.historyIndex--
			}
			m.textarea.SetValue(m.inputHistory[m.historyIndex])
			m.textarea.CursorEnd()
		}
		return m, nil

	case tea.KeyDown:
		// Nach unten in der Historie navigieren
		if m.historyIndex != -1 {
			if m.historyIndex < len(m.inputHistory)-1 {
				m.historyIndex++
				m.textarea.SetValue(m.inputHistory[m.historyIndex])
			} else {
				// Zurück zur aktuellen Eingabe
				m.historyIndex = -1
				m.textarea.SetValue(m.currentInput)
			}
			m.textarea.CursorEnd()
		}
		return m, nil

	case tea.KeyPgUp:
		m.viewport.ViewUp()
		return m, nil

	case tea.KeyPgDown:
		m.viewport.ViewDown()
		return m, nil
	}

	// Pass other keys to textarea
	var cmd tea.Cmd
	m.textarea, cmd = m.textarea.Update(msg)
	return m, cmd
}

// executeInput evaluates an expression or runs a colon command and
// appends the outcome to the transcript.
func (m Model) executeInput(input string) (Model, tea.Cmd) {
	if strings.HasPrefix(input, ":") {
		return m.runCommand(input)
	}

	result, err := m.engine.Evaluate(context.Background(), input)
	if err != nil {
		m.entries = append(m.entries, Entry{
			Input:     input,
			Output:    formatError(err),
			Kind:      EntryError,
			Timestamp: time.Now(),
		})
		return m, nil
	}

	entry := Entry{
		Input:     input,
		Output:    strconv.FormatInt(result.Value, 10),
		Kind:      EntryResult,
		Cached:    result.Cached,
		Duration:  result.ExecutionTime,
		Timestamp: time.Now(),
	}
	if m.showAST {
		entry.AST = strings.TrimRight(ast.ASTToString(result.Tree), "\n")
	}
	m.entries = append(m.entries, entry)

	return m, nil
}

// runCommand executes a colon command like :vars or :ast off
func (m Model) runCommand(input string) (Model, tea.Cmd) {
	fields := strings.Fields(input)

	entry := Entry{
		Input:     input,
		Kind:      EntryInfo,
		Timestamp: time.Now(),
	}

	switch fields[0] {
	case ":quit", ":q", ":exit":
		return m, tea.Quit

	case ":help", ":h":
		entry.Output = helpText

	case ":vars":
		entry.Output = m.formatVars()

	case ":clear":
		cleared := m.engine.Session().Clear()
		if cleared == 1 {
			entry.Output = "1 Variable gelöscht"
		} else {
			entry.Output = fmt.Sprintf("%d Variablen gelöscht", cleared)
		}

	case ":ast":
		switch {
		case len(fields) == 1:
			entry.Output = "Syntaxbaum-Anzeige: " + onOff(m.showAST)
		case fields[1] == "on":
			m.showAST = true
			entry.Output = "Syntaxbaum-Anzeige aktiviert"
		case fields[1] == "off":
			m.showAST = false
			entry.Output = "Syntaxbaum-Anzeige deaktiviert"
		default:
			entry.Kind = EntryError
			entry.Output = "Verwendung: :ast [on|off]"
		}

	default:
		entry.Kind = EntryError
		entry.Output = fmt.Sprintf("unbekannter Befehl: %s (:help zeigt alle Befehle)", fields[0])
	}

	m.entries = append(m.entries, entry)
	return m, nil
}

// formatVars lists the session bindings in sorted name order, names
// aligned on the longest one
func (m Model) formatVars() string {
	session := m.engine.Session()
	names := session.Names()
	if len(names) == 0 {
		return "keine Variablen belegt"
	}

	width := 0
	for _, name := range names {
		if len(name) > width {
			width = len(name)
		}
	}

	var b strings.Builder
	for i, name := range names {
		if i > 0 {
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "%s = %d", icelstringx.PadRight(name, width, ' '), session.Get(name))
	}

	return b.String()
}

// View renders the UI
func (m Model) View() string {
	if !m.ready {
		return "Lade ICEL..."
	}

	var b strings.Builder

	b.WriteString(m.renderHeader())
	b.WriteString("\n")

	b.WriteString(m.renderHistoryArea())
	b.WriteString("\n")

	b.WriteString(m.renderInputArea())
	b.WriteString("\n")

	b.WriteString(m.renderStatusBar())
	b.WriteString("\n")

	b.WriteString(m.renderHelpBar())

	return b.String()
}

// renderHeader renders the title panel with logo and session id
func (m Model) renderHeader() string {
	logo := LogoStyle.Render(Logo)
	session := HelpDescStyle.Render("Sitzung " + shortID(m.engine.Session().ID()))

	header := lipgloss.JoinHorizontal(lipgloss.Center,
		logo,
		strings.Repeat(" ", 3),
		session,
	)

	return TitlePanelStyle.Width(m.width - 4).Render(header)
}

// renderHistoryArea renders the transcript viewport
func (m Model) renderHistoryArea() string {
	return HistoryPanelStyle.
		Width(m.width - 2).
		Height(m.viewport.Height + 2).
		Render(m.viewport.View())
}

// renderInputArea renders the input line
func (m Model) renderInputArea() string {
	style := InputStyle.Width(m.width - 2)
	if m.textarea.Focused() {
		style = FocusedInputStyle.Width(m.width - 2)
	}
	return style.Render(m.textarea.View())
}

// renderStatusBar renders the status bar with session and display state
func (m Model) renderStatusBar() string {
	left := HelpDescStyle.Render("Sitzung: ") + StatusOnStyle.Render(shortID(m.engine.Session().ID()))

	center := HelpDescStyle.Render(fmt.Sprintf("v%s | Variablen: %d", Version, m.engine.Session().Len()))

	var right string
	if m.showAST {
		right = StatusOnStyle.Render(IconOn + "AST")
	} else {
		right = StatusOffStyle.Render(IconOff + "AST")
	}

	// Calculate padding
	leftLen := lipgloss.Width(left)
	centerLen := lipgloss.Width(center)
	rightLen := lipgloss.Width(right)
	totalLen := leftLen + centerLen + rightLen
	availableSpace := m.width - totalLen - 4
	if availableSpace < 2 {
		availableSpace = 2
	}
	leftPadding := availableSpace / 2
	rightPadding := availableSpace - leftPadding

	content := left + strings.Repeat(" ", leftPadding) + center + strings.Repeat(" ", rightPadding) + right

	return StatusBarStyle.Width(m.width - 2).Render(content)
}

// renderHelpBar renders the help shortcuts bar
func (m Model) renderHelpBar() string {
	items := []string{
		RenderKeyHint("Enter", "auswerten"),
		RenderKeyHint("↑/↓", "Historie"),
		RenderKeyHint(":help", "Befehle"),
		RenderKeyHint("PgUp/PgDn", "scrollen"),
		RenderKeyHint("Ctrl+L", "leeren"),
		RenderKeyHint("Ctrl+C", "beenden"),
	}

	return HelpStyle.Render(strings.Join(items, "  "))
}

// updateViewportContent updates the viewport with the transcript
func (m *Model) updateViewportContent() {
	if len(m.entries) == 0 {
		m.viewport.SetContent(InfoTextStyle.Render("Noch keine Eingaben. :help zeigt die verfügbaren Befehle."))
		return
	}

	var content strings.Builder

	for i, entry := range m.entries {
		if i > 0 {
			content.WriteString("\n")
		}

		// Prompt line with timestamp, results also show the evaluation time
		label := entry.Timestamp.Format("15:04")
		if entry.Kind == EntryResult && entry.Duration > 0 {
			label += " · " + entry.Duration.Round(time.Microsecond).String()
		}
		content.WriteString(PromptStyle.Render(m.prompt) + InputTextStyle.Render(entry.Input) +
			"  " + HelpDescStyle.Render(label))
		content.WriteString("\n")

		if entry.AST != "" {
			content.WriteString(ASTStyle.Render(entry.AST))
			content.WriteString("\n")
		}

		switch entry.Kind {
		case EntryResult:
			line := ResultStyle.Render(entry.Output)
			if entry.Cached {
				line += CachedStyle.Render("  (Cache)")
			}
			content.WriteString(line)
		case EntryError:
			content.WriteString(ErrorTextStyle.Render(entry.Output))
		case EntryInfo:
			content.WriteString(InfoTextStyle.Render(entry.Output))
		}
		content.WriteString("\n")
	}

	m.viewport.SetContent(content.String())
}

// formatError labels an engine error by its class
func formatError(err error) string {
	switch {
	case icelerror.IsParseError(err):
		return "Parse-Fehler: " + err.Error()
	case icelerror.IsEvalError(err):
		return "Laufzeitfehler: " + err.Error()
	default:
		return "Fehler: " + err.Error()
	}
}

// onOff renders a toggle state in German
func onOff(enabled bool) string {
	if enabled {
		return "an"
	}
	return "aus"
}

// shortID shortens a session UUID for display
func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

const helpText = `Befehle:
  :vars        Belegte Variablen anzeigen
  :clear       Alle Variablen löschen
  :ast on|off  Syntaxbaum-Anzeige umschalten
  :help        Diese Hilfe anzeigen
  :quit        Sitzung beenden (auch: leere Eingabe)`

// Run starts the interactive session and blocks until it ends
func Run(cfg Config) error {
	if cfg.Engine == nil {
		return icelerror.New("interactive session requires an engine").
			WithCode(icelerror.CodeInvalidInput).
			WithOperation("repl.Run")
	}

	p := tea.NewProgram(New(cfg), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
