package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"

	"nlsql/internal/pipeline"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// translateRequest mirrors the request body expected by the HTTP /translate
// endpoint.
type translateRequest struct {
	Text string `json:"text"`
}

// translateResponse mirrors the server's /translate response. Rejections
// arrive as success=false with a structured error rather than a transport
// failure.
type translateResponse struct {
	Success bool             `json:"success"`
	Result  *pipeline.Result `json:"result"`
	Error   *translateError  `json:"error"`
}

type translateError struct {
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

// translateMsg is a Bubble Tea message carrying the outcome of a translated
// sentence.
type translateMsg struct {
	output string
	err    error
}

// translateCmd wraps translate in a Bubble Tea command so it can run
// asynchronously and send the result back to the Update loop.
func translateCmd(addr, text string) tea.Cmd {
	return func() tea.Msg {
		out, err := translate(addr, text)
		return translateMsg{output: out, err: err}
	}
}

// key mappings for the TUI.
type keyMap struct {
	Quit key.Binding
	Run  key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "esc"),
			key.WithHelp("ctrl+c", "quit"),
		),
		Run: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "translate"),
		),
	}
}

// ShortHelp returns keybindings to show in the minimized help view.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Run, k.Quit}
}

// FullHelp returns keybindings for the expanded help view.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Run},
		{k.Quit},
	}
}

// Styles for the UI.
var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	subtle      = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("44")).Bold(true)
	boxStyle    = lipgloss.NewStyle().Border(lipgloss.NormalBorder()).BorderForeground(lipgloss.Color("240")).Padding(0, 1)
)

type model struct {
	addr     string
	input    textarea.Model
	viewport viewport.Model
	help     help.Model
	keys     keyMap
	status   string
	loading  bool
	err      error
	width    int
	height   int
}

func newModel(addr string) model {
	ta := textarea.New()
	ta.Placeholder = "Describe a query in plain English. Use :q or :quit to exit."
	ta.Focus()
	ta.Prompt = "EN> "
	ta.CharLimit = 0
	ta.FocusedStyle.CursorLine = ta.FocusedStyle.CursorLine.Background(lipgloss.Color("236"))
	ta.ShowLineNumbers = false

	vp := viewport.New(80, 20)
	vp.SetContent(subtle.Render("Generated SQL will appear here."))

	h := help.New()
	h.ShowAll = true

	return model{
		addr:     addr,
		input:    ta,
		viewport: vp,
		help:     h,
		keys:     newKeyMap(),
		status:   "Connected to " + addr,
	}
}

// Init satisfies the tea.Model interface.
func (m model) Init() tea.Cmd {
	return textarea.Blink
}

// Update satisfies the tea.Model interface.
func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height

		// Reserve a fixed number of lines for everything except the input
		// box and the results viewport, then divide the remaining space
		// between them so the layout never exceeds the terminal height.
		const chromeLines = 10
		const minInputHeight = 3
		const minResultsHeight = 3

		available := m.height - chromeLines
		if available < 1 {
			available = 1
		}

		var inputHeight, resultsHeight int
		if available <= minInputHeight+minResultsHeight {
			inputHeight = available / 2
			if inputHeight < 1 {
				inputHeight = 1
			}
			resultsHeight = available - inputHeight
			if resultsHeight < 1 {
				resultsHeight = 1
			}
		} else {
			inputHeight = available / 3
			if inputHeight < minInputHeight {
				inputHeight = minInputHeight
			}
			resultsHeight = available - inputHeight
			if resultsHeight < minResultsHeight {
				resultsHeight = minResultsHeight
			}
		}

		m.input.SetWidth(m.width - 6)
		m.input.SetHeight(inputHeight)
		m.viewport.Width = m.width - 6
		m.viewport.Height = resultsHeight
	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			return m, tea.Quit
		}

		if key.Matches(msg, m.keys.Run) {
			line := strings.TrimSpace(m.input.Value())
			if line == "" {
				break
			}
			if line == ":q" || line == ":quit" {
				return m, tea.Quit
			}

			m.loading = true
			m.status = "Translating..."
			m.err = nil

			cmds = append(cmds, translateCmd(m.addr, line))
			break
		}
	case translateMsg:
		m.loading = false
		if msg.err != nil {
			m.err = msg.err
			m.status = "Translation failed"
			m.viewport.SetContent(errorStyle.Render(msg.err.Error()))
		} else {
			m.err = nil
			m.status = "Translation succeeded"
			m.viewport.SetContent(msg.output)
		}
	}

	// Let components update themselves.
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	cmds = append(cmds, cmd)
	m.viewport, cmd = m.viewport.Update(msg)
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

// View draws the entire interface.
func (m model) View() string {
	title := titleStyle.Render("nlsql") + " " + subtle.Render("TUI client")
	addr := subtle.Render("Server: " + m.addr)

	inputBox := boxStyle.Render(m.input.View())
	resultBox := boxStyle.Render(m.viewport.View())

	status := m.status
	if m.loading {
		status += " (working...)"
	}
	statusLine := statusStyle.Render(status)
	if m.err != nil {
		statusLine += "  " + errorStyle.Render(m.err.Error())
	}

	helpView := m.help.View(m.keys)

	return lipgloss.JoinVertical(lipgloss.Left,
		title,
		addr,
		"",
		"English input:",
		inputBox,
		"",
		"SQL:",
		resultBox,
		"",
		statusLine,
		helpView,
	)
}

func main() {
	addr := flag.String("addr", "http://localhost:8080", "nlsql server address")
	flag.Parse()

	if !strings.HasPrefix(*addr, "http://") && !strings.HasPrefix(*addr, "https://") {
		*addr = "http://" + *addr
	}

	m := newModel(*addr)
	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Println("Error running TUI:", err)
		os.Exit(1)
	}
}

// translate performs the HTTP call to the server and renders the generated
// SQL plus its explanation, or surfaces the structured rejection.
func translate(addr, text string) (string, error) {
	reqBody, err := json.Marshal(translateRequest{Text: text})
	if err != nil {
		return "", fmt.Errorf("failed to encode request: %w", err)
	}

	url := strings.TrimRight(addr, "/") + "/translate"
	resp, err := http.Post(url, "application/json", bytes.NewReader(reqBody))
	if err != nil {
		return "", fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		msg := strings.TrimSpace(string(body))
		if msg == "" {
			msg = resp.Status
		}
		return "", fmt.Errorf("server error (%d): %s", resp.StatusCode, msg)
	}

	var tr translateResponse
	if err := json.Unmarshal(body, &tr); err != nil {
		return "", fmt.Errorf("failed to decode response: %w", err)
	}

	if !tr.Success {
		if tr.Error != nil {
			return "", fmt.Errorf("%s: %s", tr.Error.Kind, tr.Error.Message)
		}
		return "", fmt.Errorf("translation failed")
	}

	return tr.Result.SQL + "\n\n-- " + tr.Result.Explanation, nil
}
