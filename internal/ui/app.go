// Package ui implements the interactive terminal frontend: a username
// prompt, the repository list, the year selector and the monthly commit
// chart.
package ui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/aokumura/commitlens/internal/domain"
	"github.com/aokumura/commitlens/internal/gateway"
)

// Service is the slice of the aggregator the UI depends on.
type Service interface {
	Lookup(ctx context.Context, username string) (*domain.User, []domain.Repository, error)
	Aggregate(ctx context.Context, username string, year int, repos []domain.Repository) (*domain.YearActivity, error)
}

// AppState represents the current screen of the application.
type AppState int

const (
	StateInput AppState = iota
	StateLookingUp
	StateBrowse
)

const repoPageSize = 12

// timeNow is swapped in tests to pin the year range.
var timeNow = time.Now

// Messages for async operations. Every message carries the run token it
// was issued under; stale runs are discarded on arrival.

type lookupMsg struct {
	runID int
	user  *domain.User
	repos []domain.Repository
	err   error
}

type activityMsg struct {
	runID    int
	activity *domain.YearActivity
	err      error
}

// Model is the root bubbletea model.
type Model struct {
	svc Service

	state AppState

	input   textinput.Model
	spinner spinner.Model

	user  *domain.User
	repos []domain.Repository
	years []int

	yearIdx      int
	repoCursor   int
	repoOffset   int
	activity     *domain.YearActivity
	loadingChart bool

	// runID stamps in-flight fetches so that results of a superseded
	// search or year change are dropped instead of racing the UI.
	runID int

	err error

	windowWidth  int
	windowHeight int
}

// NewModel creates the root model in the username-prompt state.
func NewModel(svc Service) Model {
	ti := textinput.New()
	ti.Placeholder = "GitHub username"
	ti.CharLimit = 39
	ti.Width = 30
	ti.Focus()

	sp := spinner.New(spinner.WithSpinner(spinner.Dot), spinner.WithStyle(titleStyle))

	return Model{
		svc:          svc,
		state:        StateInput,
		input:        ti,
		spinner:      sp,
		windowWidth:  100,
		windowHeight: 32,
	}
}

// Init starts the cursor blink on the username prompt.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) lookupCmd(runID int, username string) tea.Cmd {
	return func() tea.Msg {
		user, repos, err := m.svc.Lookup(context.Background(), username)
		return lookupMsg{runID: runID, user: user, repos: repos, err: err}
	}
}

func (m Model) aggregateCmd(runID int, username string, year int, repos []domain.Repository) tea.Cmd {
	return func() tea.Msg {
		activity, err := m.svc.Aggregate(context.Background(), username, year, repos)
		return activityMsg{runID: runID, activity: activity, err: err}
	}
}

// Update handles messages and advances the application state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.windowWidth = msg.Width
		m.windowHeight = msg.Height
		return m, nil

	case tea.KeyMsg:
		return m.updateKeys(msg)

	case spinner.TickMsg:
		if m.state == StateLookingUp || m.loadingChart {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			return m, cmd
		}
		return m, nil

	case lookupMsg:
		if msg.runID != m.runID {
			return m, nil
		}
		if msg.err != nil {
			m.state = StateInput
			m.err = msg.err
			m.input.Focus()
			return m, textinput.Blink
		}
		m.user = msg.user
		m.repos = msg.repos
		m.years = domain.YearOptions(msg.user.CreatedAt, timeNow())
		m.yearIdx = 0
		m.repoCursor = 0
		m.repoOffset = 0
		m.activity = nil
		m.state = StateBrowse
		m.loadingChart = true
		m.runID++
		return m, tea.Batch(
			m.spinner.Tick,
			m.aggregateCmd(m.runID, m.user.Login, m.years[m.yearIdx], m.repos),
		)

	case activityMsg:
		if msg.runID != m.runID {
			return m, nil
		}
		m.loadingChart = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.activity = msg.activity
		return m, nil
	}

	if m.state == StateInput {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	}

	switch m.state {
	case StateInput:
		switch msg.String() {
		case "esc":
			return m, tea.Quit
		case "enter":
			username := strings.TrimSpace(m.input.Value())
			if username == "" {
				return m, nil
			}
			m.err = nil
			m.state = StateLookingUp
			m.runID++
			return m, tea.Batch(m.spinner.Tick, m.lookupCmd(m.runID, username))
		}
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd

	case StateLookingUp:
		// No cancellation mid-flight; the result of this run is simply
		// discarded if the user backs out.
		if msg.String() == "esc" {
			m.runID++
			m.state = StateInput
			m.input.Focus()
			return m, textinput.Blink
		}
		return m, nil

	case StateBrowse:
		switch msg.String() {
		case "q":
			return m, tea.Quit
		case "esc":
			m.runID++
			m.loadingChart = false
			m.state = StateInput
			m.input.Focus()
			return m, textinput.Blink
		case "up", "k":
			if m.repoCursor > 0 {
				m.repoCursor--
				if m.repoCursor < m.repoOffset {
					m.repoOffset = m.repoCursor
				}
			}
		case "down", "j":
			if m.repoCursor < len(m.repos)-1 {
				m.repoCursor++
				if m.repoCursor >= m.repoOffset+repoPageSize {
					m.repoOffset = m.repoCursor - repoPageSize + 1
				}
			}
		case "left", "h":
			return m.selectYear(m.yearIdx + 1)
		case "right", "l":
			return m.selectYear(m.yearIdx - 1)
		}
		return m, nil
	}
	return m, nil
}

// selectYear moves the year selector to idx when it is inside the
// offered range and re-runs the aggregation for the new year.
func (m Model) selectYear(idx int) (tea.Model, tea.Cmd) {
	if idx < 0 || idx >= len(m.years) || idx == m.yearIdx {
		return m, nil
	}
	m.yearIdx = idx
	m.activity = nil
	m.loadingChart = true
	m.err = nil
	m.runID++
	return m, tea.Batch(
		m.spinner.Tick,
		m.aggregateCmd(m.runID, m.user.Login, m.years[m.yearIdx], m.repos),
	)
}

// View renders the current screen.
func (m Model) View() string {
	switch m.state {
	case StateInput:
		return m.viewInput()
	case StateLookingUp:
		return fmt.Sprintf("\n  %s Looking up %s...\n", m.spinner.View(), m.input.Value())
	case StateBrowse:
		return m.viewBrowse()
	}
	return ""
}

func (m Model) viewInput() string {
	var b strings.Builder
	b.WriteString("\n  ")
	b.WriteString(titleStyle.Render("commitlens"))
	b.WriteString("  ")
	b.WriteString(subtitleStyle.Render("monthly commit activity for a GitHub user"))
	b.WriteString("\n\n  ")
	b.WriteString(promptStyle.Render("Username: "))
	b.WriteString(m.input.View())
	b.WriteString("\n")
	if m.err != nil {
		b.WriteString("\n  ")
		b.WriteString(errorStyle.Render(errorText(m.err)))
		b.WriteString("\n")
	}
	b.WriteString("\n  ")
	b.WriteString(helpStyle.Render("enter: search · ctrl+c: quit"))
	b.WriteString("\n")
	return b.String()
}

func (m Model) viewBrowse() string {
	repoPanel := panelStyle.Render(m.viewRepos())

	chartWidth := m.windowWidth - lipgloss.Width(repoPanel) - 8
	if chartWidth < 40 {
		chartWidth = 40
	}
	var chart string
	switch {
	case m.loadingChart:
		chart = fmt.Sprintf("%s Counting commits in %d...", m.spinner.View(), m.years[m.yearIdx])
	case m.err != nil:
		chart = errorStyle.Render(errorText(m.err))
	case m.activity != nil:
		chart = renderChart(m.activity, chartWidth)
	}
	chartPanel := panelStyle.Width(chartWidth + 2).Render(chart)

	header := fmt.Sprintf("  %s  %s\n",
		titleStyle.Render(m.user.Login),
		yearStyle.Render(fmt.Sprintf("‹ %d ›", m.years[m.yearIdx])))

	body := lipgloss.JoinHorizontal(lipgloss.Top, repoPanel, " ", chartPanel)
	help := helpStyle.Render("  ←/→: year · ↑/↓: repositories · esc: new search · q: quit")

	return "\n" + header + "\n" + body + "\n" + help + "\n"
}

func (m Model) viewRepos() string {
	var b strings.Builder
	b.WriteString(subtitleStyle.Render(fmt.Sprintf("Repositories (%d)", len(m.repos))))
	b.WriteString("\n\n")
	if len(m.repos) == 0 {
		b.WriteString(repoURLStyle.Render("none"))
		return b.String()
	}
	end := m.repoOffset + repoPageSize
	if end > len(m.repos) {
		end = len(m.repos)
	}
	for i := m.repoOffset; i < end; i++ {
		r := m.repos[i]
		line := r.Name
		if i == m.repoCursor {
			b.WriteString(selectedRepoStyle.Render("› " + line))
		} else {
			b.WriteString(repoStyle.Render("  " + line))
		}
		b.WriteString("\n")
	}
	if m.repoCursor < len(m.repos) {
		b.WriteString("\n")
		b.WriteString(repoURLStyle.Render(m.repos[m.repoCursor].HTMLURL))
	}
	return b.String()
}

// errorText maps the setup-phase error taxonomy to the single message
// shown to the user.
func errorText(err error) string {
	switch {
	case errors.Is(err, gateway.ErrUserNotFound):
		return "User not found."
	case errors.Is(err, gateway.ErrInvalidToken):
		return "Invalid access token. Check GITHUB_TOKEN."
	case errors.Is(err, gateway.ErrRateLimited):
		return "Rate limited by GitHub. Try again later."
	default:
		return fmt.Sprintf("GitHub API error: %v", err)
	}
}
