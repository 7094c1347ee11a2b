// Package browse renders ranked search results in an interactive
// list/detail terminal view.
package browse

import (
	"fmt"
	"os/exec"
	"runtime"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jobradar/jobradar/internal/model"
)

// Lines per job item in the list view (title + subtitle + blank separator).
const jobItemHeight = 3

type viewState int

const (
	viewList viewState = iota
	viewDetail
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39")).
			Padding(0, 1)

	statusBarStyle = lipgloss.NewStyle().
			Padding(0, 1).
			Foreground(lipgloss.Color("252")).
			Background(lipgloss.Color("236"))

	jobTitleStyle = lipgloss.NewStyle().
			Bold(true)

	jobSubtitleStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("245"))

	selectedJobTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("15")).
				Background(lipgloss.Color("24"))

	selectedJobSubtitleStyle = lipgloss.NewStyle().
					Foreground(lipgloss.Color("252")).
					Background(lipgloss.Color("24"))

	scoreStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("42"))

	detailLabelStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("39")).
				Width(10)

	detailTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("15")).
				MarginBottom(1)

	descBodyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252"))
)

type browseModel struct {
	keywords string
	jobs     []model.Job
	state    viewState
	cursor   int
	offset   int // first visible list item
	viewport viewport.Model
	width    int
	height   int
	ready    bool
}

func (m browseModel) Init() tea.Cmd {
	return nil
}

func (m browseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if !m.ready {
			m.viewport = viewport.New(msg.Width-2, msg.Height-4)
			m.ready = true
		} else {
			m.viewport.Width = msg.Width - 2
			m.viewport.Height = msg.Height - 4
		}
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			if m.state == viewDetail {
				m.state = viewList
				return m, nil
			}
			return m, tea.Quit
		case "esc":
			m.state = viewList
			return m, nil
		case "up", "k":
			if m.state == viewList && m.cursor > 0 {
				m.cursor--
				m.clampOffset()
			}
		case "down", "j":
			if m.state == viewList && m.cursor < len(m.jobs)-1 {
				m.cursor++
				m.clampOffset()
			}
		case "enter":
			if m.state == viewList && len(m.jobs) > 0 {
				m.state = viewDetail
				m.viewport.SetContent(m.renderDetail(m.jobs[m.cursor]))
				m.viewport.GotoTop()
			}
		case "o":
			if len(m.jobs) > 0 {
				openBrowser(m.jobs[m.cursor].URL)
			}
		}
	}

	if m.state == viewDetail {
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	}
	return m, nil
}

// clampOffset keeps the cursor inside the visible window.
func (m *browseModel) clampOffset() {
	visible := m.visibleItems()
	if m.cursor < m.offset {
		m.offset = m.cursor
	}
	if m.cursor >= m.offset+visible {
		m.offset = m.cursor - visible + 1
	}
}

func (m browseModel) visibleItems() int {
	rows := (m.height - 4) / jobItemHeight
	if rows < 1 {
		rows = 1
	}
	return rows
}

func (m browseModel) View() string {
	if !m.ready {
		return "loading..."
	}
	if m.state == viewDetail {
		header := headerStyle.Render(fmt.Sprintf("jobradar — %s", m.keywords))
		status := statusBarStyle.Render("↑/↓ scroll  esc back  o open  q quit")
		return header + "\n" + m.viewport.View() + "\n" + status
	}
	return m.renderList()
}

func (m browseModel) renderList() string {
	var sb strings.Builder
	sb.WriteString(headerStyle.Render(fmt.Sprintf("jobradar — %d results for %q", len(m.jobs), m.keywords)))
	sb.WriteString("\n")

	if len(m.jobs) == 0 {
		sb.WriteString(jobSubtitleStyle.Render("  no results"))
		sb.WriteString("\n")
	}

	end := m.offset + m.visibleItems()
	if end > len(m.jobs) {
		end = len(m.jobs)
	}
	for i := m.offset; i < end; i++ {
		job := m.jobs[i]
		title := fmt.Sprintf("%s  %s", job.Title, scoreStyle.Render(fmt.Sprintf("%.1f", job.RelevanceScore)))
		subtitle := fmt.Sprintf("%s · %s · %s", job.Company, job.Location, job.Source)

		if i == m.cursor {
			sb.WriteString(selectedJobTitleStyle.Render("> "+job.Title) + "  " +
				scoreStyle.Render(fmt.Sprintf("%.1f", job.RelevanceScore)) + "\n")
			sb.WriteString(selectedJobSubtitleStyle.Render("  "+subtitle) + "\n")
		} else {
			sb.WriteString(jobTitleStyle.Render("  "+title) + "\n")
			sb.WriteString(jobSubtitleStyle.Render("  "+subtitle) + "\n")
		}
		sb.WriteString("\n")
	}

	sb.WriteString(statusBarStyle.Render("↑/↓/j/k navigate  enter detail  o open  q quit"))
	return sb.String()
}

func (m browseModel) renderDetail(job model.Job) string {
	var sb strings.Builder
	sb.WriteString(detailTitleStyle.Render(job.Title))
	sb.WriteString("\n")

	row := func(label, value string) {
		if value == "" {
			return
		}
		sb.WriteString(detailLabelStyle.Render(label) + " " + value + "\n")
	}
	row("Company", job.Company)
	row("Location", job.Location)
	row("Source", job.Source)
	row("Category", job.Category)
	row("Salary", job.Salary)
	if job.PostedAt != nil {
		row("Posted", job.PostedAt.Format("2006-01-02"))
	}
	row("Score", fmt.Sprintf("%.2f", job.RelevanceScore))
	if len(job.Skills) > 0 {
		row("Skills", strings.Join(job.Skills, ", "))
	}
	row("URL", job.URL)

	if job.Description != "" {
		sb.WriteString("\n")
		sb.WriteString(descBodyStyle.Render(job.Description))
		sb.WriteString("\n")
	}
	return sb.String()
}

// openBrowser opens a URL with the platform opener; errors are ignored since
// there is nowhere sensible to surface them mid-TUI.
func openBrowser(url string) {
	if url == "" {
		return
	}
	switch runtime.GOOS {
	case "darwin":
		exec.Command("open", url).Start()
	case "windows":
		exec.Command("rundll32", "url.dll,FileProtocolHandler", url).Start()
	default:
		exec.Command("xdg-open", url).Start()
	}
}

// Run opens the interactive browser over the ranked jobs and blocks until
// the user quits.
func Run(jobs []model.Job, keywords string) error {
	m := browseModel{keywords: keywords, jobs: jobs}
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
