package main

import (
	"fmt"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const defaultServerURL = "http://localhost:8080"

// Styles
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205")).
			MarginBottom(1)

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true)

	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42")).
			Bold(true)

	inputStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("86"))

	promptStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true)
)

type step int

const (
	stepEnteringServer step = iota
	stepEnteringUsername
	stepEnteringPassword
	stepConfirmingPassword
	stepRegistering
	stepComplete
)

type model struct {
	step         step
	serverURL    string
	username     string
	password     string
	currentInput string
	message      string
	quitting     bool
}

type registerSuccessMsg struct{}
type errMsg struct{ err error }

func (e errMsg) Error() string { return e.err.Error() }

func initialModel() model {
	return model{step: stepEnteringServer}
}

func (m model) Init() tea.Cmd {
	return nil
}

// registerAccount submits the registration form the same way a browser
// would and inspects the redirect target to learn the outcome.
func registerAccount(serverURL, username, password string) tea.Cmd {
	return func() tea.Msg {
		client := &http.Client{
			Timeout: 10 * time.Second,
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				return http.ErrUseLastResponse
			},
		}

		form := url.Values{}
		form.Set("username", username)
		form.Set("password", password)

		resp, err := client.PostForm(strings.TrimRight(serverURL, "/")+"/register", form)
		if err != nil {
			return errMsg{fmt.Errorf("could not reach server: %w", err)}
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusSeeOther {
			return errMsg{fmt.Errorf("unexpected response from server: %s", resp.Status)}
		}

		location := resp.Header.Get("Location")
		if strings.HasSuffix(location, "/login") {
			return registerSuccessMsg{}
		}
		return errMsg{fmt.Errorf("registration rejected (is the username already taken?)")}
	}
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			m.quitting = true
			return m, tea.Quit

		case "enter":
			return m.handleEnter()

		case "backspace":
			if len(m.currentInput) > 0 {
				m.currentInput = m.currentInput[:len(m.currentInput)-1]
			}
			return m, nil

		default:
			if len(msg.String()) == 1 {
				m.currentInput += msg.String()
			}
			return m, nil
		}

	case registerSuccessMsg:
		m.step = stepComplete
		m.message = ""
		return m, nil

	case errMsg:
		// Back to the username prompt so the operator can retry.
		m.step = stepEnteringUsername
		m.username = ""
		m.password = ""
		m.currentInput = ""
		m.message = msg.Error()
		return m, nil
	}

	return m, nil
}

func (m model) handleEnter() (tea.Model, tea.Cmd) {
	switch m.step {
	case stepEnteringServer:
		m.serverURL = strings.TrimSpace(m.currentInput)
		if m.serverURL == "" {
			m.serverURL = defaultServerURL
		}
		m.currentInput = ""
		m.step = stepEnteringUsername
		return m, nil

	case stepEnteringUsername:
		if strings.TrimSpace(m.currentInput) == "" {
			m.message = "username cannot be empty"
			return m, nil
		}
		m.username = strings.TrimSpace(m.currentInput)
		m.currentInput = ""
		m.message = ""
		m.step = stepEnteringPassword
		return m, nil

	case stepEnteringPassword:
		if m.currentInput == "" {
			m.message = "password cannot be empty"
			return m, nil
		}
		m.password = m.currentInput
		m.currentInput = ""
		m.message = ""
		m.step = stepConfirmingPassword
		return m, nil

	case stepConfirmingPassword:
		if m.currentInput != m.password {
			m.currentInput = ""
			m.message = "passwords do not match, try again"
			m.step = stepEnteringPassword
			return m, nil
		}
		m.currentInput = ""
		m.message = ""
		m.step = stepRegistering
		return m, registerAccount(m.serverURL, m.username, m.password)

	case stepComplete:
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

func (m model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("MoodGut account setup"))
	b.WriteString("\n\n")

	if m.message != "" {
		b.WriteString(errorStyle.Render(m.message))
		b.WriteString("\n\n")
	}

	switch m.step {
	case stepEnteringServer:
		b.WriteString(promptStyle.Render(fmt.Sprintf("Server URL [%s]: ", defaultServerURL)))
		b.WriteString(inputStyle.Render(m.currentInput))

	case stepEnteringUsername:
		b.WriteString(promptStyle.Render("Username: "))
		b.WriteString(inputStyle.Render(m.currentInput))

	case stepEnteringPassword:
		b.WriteString(promptStyle.Render("Password: "))
		b.WriteString(inputStyle.Render(strings.Repeat("*", len(m.currentInput))))

	case stepConfirmingPassword:
		b.WriteString(promptStyle.Render("Confirm password: "))
		b.WriteString(inputStyle.Render(strings.Repeat("*", len(m.currentInput))))

	case stepRegistering:
		b.WriteString("Creating account on " + m.serverURL + "...")

	case stepComplete:
		b.WriteString(successStyle.Render(fmt.Sprintf("Account %q created!", m.username)))
		b.WriteString("\n\nLog in at " + m.serverURL + " to start journaling.")
		b.WriteString("\n\nPress enter to exit.")
	}

	b.WriteString("\n\n(esc to quit)\n")
	return b.String()
}

func main() {
	p := tea.NewProgram(initialModel())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "setup failed: %v\n", err)
		os.Exit(1)
	}
}
