package tui

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/lb-dashboard/internal/report"
	"github.com/MKhiriev/lb-dashboard/internal/service"
	"github.com/MKhiriev/lb-dashboard/models"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

const dashboardTitle = "LOAD BALANCER DASHBOARD"

const dashboardHotKeys = "↑/↓: nav │ enter: servers │ i: info │ r: reload │ c: copy │ v: version │ q: quit"

// dashboardModel keeps the last successfully loaded state of each document.
// A failed fetch only updates the status line.
type dashboardModel struct {
	ctx      context.Context
	services *service.Services
	refresh  time.Duration
	copyText func(string) error

	spinner spinner.Model
	loading bool

	config    *models.Config
	info      models.Info
	fetchedAt time.Time

	idx       int
	detail    bool
	showInfo  bool
	showAbout bool

	status string
	errMsg string
}

func newDashboardModel(ctx context.Context, services *service.Services, refresh time.Duration) dashboardModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot

	return dashboardModel{
		ctx:      ctx,
		services: services,
		refresh:  refresh,
		copyText: clipboard.WriteAll,
		spinner:  s,
		loading:  true,
	}
}

func (m dashboardModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.cmdLoad(), m.cmdScheduleRefresh())
}

func (m dashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case dashboardLoadedMsg:
		m.applyDashboard(msg.dashboard)
		return m, nil
	case refreshTickMsg:
		next := m.cmdScheduleRefresh()
		if m.loading {
			return m, next
		}
		m.loading = true
		return m, tea.Batch(m.spinner.Tick, m.cmdLoad(), next)
	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case tea.KeyMsg:
		return m.updateKeys(msg)
	}

	return m, nil
}

func (m dashboardModel) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, keys.quit) {
		return m, tea.Quit
	}

	if m.showAbout {
		if key.Matches(msg, keys.esc, keys.version) {
			m.showAbout = false
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, keys.up):
		if m.idx > 0 {
			m.idx--
		}
	case key.Matches(msg, keys.down):
		if m.idx < m.frontendCount()-1 {
			m.idx++
		}
	case key.Matches(msg, keys.enter):
		if _, ok := m.current(); !ok {
			m.status = "No frontends"
			return m, nil
		}
		m.detail = !m.detail
	case key.Matches(msg, keys.esc):
		m.detail = false
		m.showInfo = false
	case key.Matches(msg, keys.info):
		m.showInfo = !m.showInfo
	case key.Matches(msg, keys.version):
		m.showAbout = true
	case key.Matches(msg, keys.reload):
		if m.loading {
			return m, nil
		}
		m.loading = true
		m.status = "Reloading..."
		return m, tea.Batch(m.spinner.Tick, m.cmdLoad())
	case key.Matches(msg, keys.copy):
		m.copySelected()
	}

	return m, nil
}

func (m *dashboardModel) applyDashboard(d models.Dashboard) {
	m.loading = false

	if d.ConfigErr == nil {
		m.config = d.Config
		m.fetchedAt = d.FetchedAt
		if m.idx >= m.frontendCount() {
			m.idx = m.frontendCount() - 1
		}
		if m.idx < 0 {
			m.idx = 0
		}
	}
	if d.InfoErr == nil {
		m.info = d.Info
	}

	var errs []string
	if d.ConfigErr != nil {
		errs = append(errs, "config: "+d.ConfigErr.Error())
	}
	if d.InfoErr != nil {
		errs = append(errs, "info: "+d.InfoErr.Error())
	}
	m.errMsg = strings.Join(errs, "; ")

	if len(errs) == 0 {
		m.status = "Loaded at " + d.FetchedAt.Format(time.TimeOnly)
	} else {
		m.status = ""
	}
}

func (m *dashboardModel) copySelected() {
	fe, ok := m.current()
	if !ok {
		m.status = "Nothing to copy"
		return
	}

	data, err := json.MarshalIndent(fe, "", "  ")
	if err != nil {
		m.errMsg = fmt.Sprintf("Copy failed: %v", err)
		return
	}
	if err = m.copyText(string(data)); err != nil {
		m.errMsg = fmt.Sprintf("Copy failed: %v", err)
		return
	}
	m.status = fmt.Sprintf("Copied frontend %q", fe.Name)
}

func (m dashboardModel) frontendCount() int {
	if m.config == nil {
		return 0
	}
	return len(m.config.Frontends)
}

func (m dashboardModel) current() (*models.Frontend, bool) {
	if m.idx < 0 || m.idx >= m.frontendCount() {
		return nil, false
	}
	return m.config.Frontends[m.idx], true
}

func (m dashboardModel) View() string {
	if m.showAbout {
		return renderBuildInfoWindow(m.services.AppInfoService.GetBuildInfo(m.ctx))
	}

	var b strings.Builder

	if m.loading {
		b.WriteString(m.spinner.View())
		b.WriteString(" Loading...\n")
	}
	if m.errMsg != "" {
		b.WriteString(errorStyle.Render("Error: " + m.errMsg))
		b.WriteString("\n")
	}
	if m.status != "" {
		b.WriteString("Status: " + m.status + "\n")
	}
	if b.Len() > 0 {
		b.WriteString("\n")
	}

	b.WriteString(m.viewFrontends())

	if m.detail {
		b.WriteString("\n")
		b.WriteString(m.viewServers())
	}
	if m.showInfo {
		b.WriteString("\n")
		b.WriteString(m.viewInfo())
	}

	return renderPage(dashboardTitle, strings.TrimRight(b.String(), "\n"), dashboardHotKeys)
}

func (m dashboardModel) viewFrontends() string {
	if m.config == nil {
		if m.loading {
			return ""
		}
		return "No configuration loaded\n"
	}

	rows := report.FrontendRows(m.config)
	if len(rows) == 0 {
		return "No frontends\n"
	}

	cells := make([][]string, 0, len(rows))
	for i, r := range rows {
		row := r.Cells()
		cursor := "  "
		if i == m.idx {
			cursor = "> "
		}
		row[0] = cursor + row[0]
		cells = append(cells, row)
	}

	out := report.NewTable(report.FrontendHeaders, cells) + "\n"
	if !m.fetchedAt.IsZero() {
		out += helpStyle.Render("config from "+m.fetchedAt.Format(time.TimeOnly)) + "\n"
	}
	return out
}

func (m dashboardModel) viewServers() string {
	fe, ok := m.current()
	if !ok {
		return ""
	}

	ref := fe.DefaultBackend
	if !ref.Resolved() {
		return warnStyle.Render(fmt.Sprintf("Backend %q is not defined", ref.Name)) + "\n"
	}

	rows, err := report.ServerRows(ref)
	if err != nil {
		return errorStyle.Render(fmt.Sprintf("Backend %q: %v", ref.Name, err)) + "\n"
	}

	out := fmt.Sprintf("Backend %s servers\n", ref.Name)
	if len(rows) == 0 {
		return out + "No servers\n"
	}
	return out + report.NewTable([]string{"SERVER", "ADDRESS", "WEIGHT"}, rows) + "\n"
}

func (m dashboardModel) viewInfo() string {
	if m.info == nil {
		return "No info loaded\n"
	}

	var b strings.Builder
	b.WriteString("Info\n")
	for _, k := range m.info.Keys() {
		fmt.Fprintf(&b, "%s: %s\n", k, m.info.Value(k))
	}
	return b.String()
}

func (m dashboardModel) cmdLoad() tea.Cmd {
	ctx := m.ctx
	enricher := m.services.ConfigEnricher

	return func() tea.Msg {
		return dashboardLoadedMsg{dashboard: enricher.Load(ctx)}
	}
}

func (m dashboardModel) cmdScheduleRefresh() tea.Cmd {
	if m.refresh <= 0 {
		return nil
	}
	return tea.Tick(m.refresh, func(t time.Time) tea.Msg {
		return refreshTickMsg(t)
	})
}
