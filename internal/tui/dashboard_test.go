package tui

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/MKhiriev/lb-dashboard/internal/logger"
	"github.com/MKhiriev/lb-dashboard/internal/mock"
	"github.com/MKhiriev/lb-dashboard/internal/service"
	"github.com/MKhiriev/lb-dashboard/models"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const testConfig = `{
	"frontends": [
		{"name": "fe_http", "mode": "http", "bindIp": "0.0.0.0", "bindPort": 8000, "defaultBackend": "be_web"},
		{"name": "fe_tcp", "mode": "tcp", "defaultBackend": "missing"}
	],
	"backends": [
		{"name": "be_web", "mode": "http", "servers": [
			{"name": "web1", "host": "10.0.0.1", "port": 8080, "weight": 100}
		]}
	]
}`

var loadedAt = time.Date(2026, 10, 19, 12, 30, 0, 0, time.UTC)

func newTestModel(t *testing.T, refresh time.Duration) (dashboardModel, *mock.MockLoadBalancerAdapter) {
	t.Helper()
	ctrl := gomock.NewController(t)
	lbAdapter := mock.NewMockLoadBalancerAdapter(ctrl)

	services, err := service.NewServices(lbAdapter, models.NewAppBuildInfo("1.2.3", "2026-10-19", "abc123"), logger.Nop())
	require.NoError(t, err)

	return newDashboardModel(context.Background(), services, refresh), lbAdapter
}

func testConfigDoc(t *testing.T) models.Config {
	t.Helper()
	var cfg models.Config
	require.NoError(t, json.Unmarshal([]byte(testConfig), &cfg))
	return cfg
}

func loadedDashboard(t *testing.T) models.Dashboard {
	t.Helper()
	cfg := service.Enrich(testConfigDoc(t))

	var info models.Info
	require.NoError(t, json.Unmarshal([]byte(`{"Version": "1.5.3", "Uptime": 42}`), &info))

	return models.Dashboard{Config: &cfg, Info: info, FetchedAt: loadedAt}
}

func update(t *testing.T, m dashboardModel, msg tea.Msg) (dashboardModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	dm, ok := next.(dashboardModel)
	require.True(t, ok)
	return dm, cmd
}

func keyRune(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func loadedModel(t *testing.T) dashboardModel {
	t.Helper()
	m, _ := newTestModel(t, 0)
	m, _ = update(t, m, dashboardLoadedMsg{dashboard: loadedDashboard(t)})
	return m
}

func TestNew_NoServices(t *testing.T) {
	ui, err := New(nil, 0, logger.Nop())

	assert.Nil(t, ui)
	assert.ErrorIs(t, err, ErrNoServicesProvided)
}

func TestDashboard_InitialState(t *testing.T) {
	m, _ := newTestModel(t, 0)

	assert.True(t, m.loading)
	assert.NotNil(t, m.Init())
	assert.Contains(t, m.View(), "Loading...")
	assert.NotContains(t, m.View(), "No configuration loaded")
}

func TestDashboard_CmdLoad(t *testing.T) {
	m, lbAdapter := newTestModel(t, 0)

	lbAdapter.EXPECT().GetConfig(gomock.Any()).Return(testConfigDoc(t), nil)
	lbAdapter.EXPECT().GetInfo(gomock.Any()).Return(models.Info{}, nil)

	msg := m.cmdLoad()()

	loaded, ok := msg.(dashboardLoadedMsg)
	require.True(t, ok)
	require.NoError(t, loaded.dashboard.Err())
	assert.True(t, loaded.dashboard.Config.Frontends[0].DefaultBackend.Resolved())
}

func TestDashboard_Loaded(t *testing.T) {
	m := loadedModel(t)

	assert.False(t, m.loading)
	assert.Empty(t, m.errMsg)
	assert.Equal(t, "Loaded at 12:30:00", m.status)

	view := m.View()
	for _, want := range []string{dashboardTitle, "> fe_http", "fe_tcp", "0.0.0.0:8000", "be_web", "NO", "Status: Loaded at 12:30:00"} {
		assert.Contains(t, view, want)
	}
	assert.NotContains(t, view, "Loading...")
}

func TestDashboard_FailedFetchKeepsPreviousState(t *testing.T) {
	m := loadedModel(t)
	prevConfig, prevInfo := m.config, m.info

	m, _ = update(t, m, keyRune('r'))
	require.True(t, m.loading)

	m, _ = update(t, m, dashboardLoadedMsg{dashboard: models.Dashboard{
		ConfigErr: errors.New("connection refused"),
		InfoErr:   errors.New("bad gateway"),
		FetchedAt: loadedAt.Add(time.Minute),
	}})

	assert.False(t, m.loading)
	assert.Same(t, prevConfig, m.config)
	assert.Equal(t, prevInfo, m.info)
	assert.Equal(t, loadedAt, m.fetchedAt)
	assert.Equal(t, "config: connection refused; info: bad gateway", m.errMsg)

	view := m.View()
	assert.Contains(t, view, "Error: config: connection refused")
	assert.Contains(t, view, "fe_http")
}

func TestDashboard_PartialFailure(t *testing.T) {
	m := loadedModel(t)

	m, _ = update(t, m, dashboardLoadedMsg{dashboard: models.Dashboard{
		Config:    &models.Config{Frontends: []*models.Frontend{}, Backends: []*models.Backend{}},
		InfoErr:   errors.New("timeout"),
		FetchedAt: loadedAt.Add(time.Minute),
	}})

	assert.Empty(t, m.config.Frontends)
	assert.Equal(t, 0, m.idx)
	assert.NotNil(t, m.info)
	assert.Equal(t, "info: timeout", m.errMsg)
	assert.Contains(t, m.View(), "No frontends")
}

func TestDashboard_FirstLoadFails(t *testing.T) {
	m, _ := newTestModel(t, 0)

	m, _ = update(t, m, dashboardLoadedMsg{dashboard: models.Dashboard{ConfigErr: errors.New("down"), InfoErr: errors.New("down")}})

	assert.Nil(t, m.config)
	assert.Contains(t, m.View(), "No configuration loaded")
}

func TestDashboard_Navigation(t *testing.T) {
	m := loadedModel(t)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyUp})
	assert.Equal(t, 0, m.idx)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, 1, m.idx)

	m, _ = update(t, m, keyRune('j'))
	assert.Equal(t, 1, m.idx)
	assert.Contains(t, m.View(), "> fe_tcp")

	m, _ = update(t, m, keyRune('k'))
	assert.Equal(t, 0, m.idx)
}

func TestDashboard_Detail(t *testing.T) {
	m := loadedModel(t)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	require.True(t, m.detail)
	view := m.View()
	assert.Contains(t, view, "Backend be_web servers")
	assert.Contains(t, view, "10.0.0.1:8080")

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyDown})
	assert.Contains(t, m.View(), `Backend "missing" is not defined`)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.False(t, m.detail)
}

func TestDashboard_DetailWithoutFrontends(t *testing.T) {
	m, _ := newTestModel(t, 0)
	m, _ = update(t, m, dashboardLoadedMsg{dashboard: models.Dashboard{Config: &models.Config{}}})

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	assert.False(t, m.detail)
	assert.Equal(t, "No frontends", m.status)
}

func TestDashboard_InfoPane(t *testing.T) {
	m := loadedModel(t)

	m, _ = update(t, m, keyRune('i'))
	require.True(t, m.showInfo)
	view := m.View()
	assert.Contains(t, view, "Uptime: 42")
	assert.Contains(t, view, "Version: 1.5.3")

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.False(t, m.showInfo)
}

func TestDashboard_Copy(t *testing.T) {
	m := loadedModel(t)
	var copied string
	m.copyText = func(s string) error {
		copied = s
		return nil
	}

	m, _ = update(t, m, keyRune('c'))

	assert.Equal(t, `Copied frontend "fe_http"`, m.status)
	var fe map[string]any
	require.NoError(t, json.Unmarshal([]byte(copied), &fe))
	backend, ok := fe["defaultBackend"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "be_web", backend["name"])
}

func TestDashboard_CopyError(t *testing.T) {
	m := loadedModel(t)
	m.copyText = func(string) error { return errors.New("no clipboard") }

	m, _ = update(t, m, keyRune('c'))

	assert.Equal(t, "Copy failed: no clipboard", m.errMsg)
}

func TestDashboard_Reload(t *testing.T) {
	m := loadedModel(t)

	m, cmd := update(t, m, keyRune('r'))
	assert.True(t, m.loading)
	assert.NotNil(t, cmd)

	_, cmd = update(t, m, keyRune('r'))
	assert.Nil(t, cmd)
}

func TestDashboard_RefreshTick(t *testing.T) {
	m, _ := newTestModel(t, time.Minute)
	m, _ = update(t, m, dashboardLoadedMsg{dashboard: loadedDashboard(t)})

	m, cmd := update(t, m, refreshTickMsg(time.Now()))
	assert.True(t, m.loading)
	assert.NotNil(t, cmd)

	// a tick during a load only schedules the next tick
	m, cmd = update(t, m, refreshTickMsg(time.Now()))
	assert.True(t, m.loading)
	assert.NotNil(t, cmd)
}

func TestDashboard_NoRefreshByDefault(t *testing.T) {
	m := loadedModel(t)

	assert.Nil(t, m.cmdScheduleRefresh())
}

func TestDashboard_Version(t *testing.T) {
	m := loadedModel(t)

	m, _ = update(t, m, keyRune('v'))
	require.True(t, m.showAbout)
	view := m.View()
	assert.Contains(t, view, "Version: 1.2.3")
	assert.Contains(t, view, "Commit: abc123")

	m, _ = update(t, m, keyRune('j'))
	assert.Equal(t, 0, m.idx)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.False(t, m.showAbout)
}

func TestDashboard_Quit(t *testing.T) {
	m := loadedModel(t)

	for _, msg := range []tea.KeyMsg{keyRune('q'), {Type: tea.KeyCtrlC}} {
		_, cmd := update(t, m, msg)
		require.NotNil(t, cmd)
		assert.IsType(t, tea.QuitMsg{}, cmd())
	}
}

func TestRenderBuildInfoWindow_NA(t *testing.T) {
	out := renderBuildInfoWindow(models.NewAppBuildInfo("", "", ""))

	assert.Contains(t, out, "Version: N/A")
	assert.Contains(t, out, "ABOUT")
}
