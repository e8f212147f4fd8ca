package report

import (
	"strconv"

	"github.com/MKhiriev/lb-dashboard/models"
)

// Marks of the "resolved" column.
const (
	ResolvedMark   = "yes"
	UnresolvedMark = "NO"
)

// InvalidServersMark fills the "servers" column of a backend whose servers
// could not be decoded.
const InvalidServersMark = "invalid"

// FrontendHeaders are the column titles of the frontend table.
var FrontendHeaders = []string{"FRONTEND", "MODE", "BIND", "BACKEND", "RESOLVED", "BE MODE", "PROXY", "SERVERS"}

// FrontendRow is one line of the frontend table.
type FrontendRow struct {
	Name        string
	Mode        string
	Bind        string
	Backend     string
	Resolved    bool
	BackendMode string
	ProxyMode   bool
	Servers     int
	// ServersInvalid is set when the backend's servers could not be decoded.
	ServersInvalid bool
}

// Cells returns the row in [FrontendHeaders] order. Empty values become "-".
func (r FrontendRow) Cells() []string {
	mark := UnresolvedMark
	backendMode, proxyMode, servers := "-", "-", "-"
	if r.Resolved {
		mark = ResolvedMark
		backendMode = dash(r.BackendMode)
		proxyMode = "no"
		if r.ProxyMode {
			proxyMode = "yes"
		}
		servers = strconv.Itoa(r.Servers)
		if r.ServersInvalid {
			servers = InvalidServersMark
		}
	}

	return []string{
		dash(r.Name),
		dash(r.Mode),
		dash(r.Bind),
		dash(r.Backend),
		mark,
		backendMode,
		proxyMode,
		servers,
	}
}

// FrontendRows builds one row per frontend, in document order.
func FrontendRows(cfg *models.Config) []FrontendRow {
	if cfg == nil {
		return nil
	}

	rows := make([]FrontendRow, 0, len(cfg.Frontends))
	for _, fe := range cfg.Frontends {
		row := FrontendRow{
			Name:     fe.Name,
			Mode:     fe.Mode(),
			Bind:     fe.BindAddress(),
			Backend:  fe.DefaultBackend.Name,
			Resolved: fe.DefaultBackend.Resolved(),
		}
		if be := fe.DefaultBackend.Backend; be != nil {
			row.BackendMode = be.Mode()
			row.ProxyMode = be.ProxyMode()
			if servers, err := be.Servers(); err != nil {
				row.ServersInvalid = true
			} else {
				row.Servers = len(servers)
			}
		}
		rows = append(rows, row)
	}
	return rows
}

// ServerRows returns the servers of a resolved backend as table cells
// (name, address, weight). An unresolved reference has no servers.
func ServerRows(ref models.BackendRef) ([][]string, error) {
	if ref.Backend == nil {
		return nil, nil
	}

	servers, err := ref.Backend.Servers()
	if err != nil {
		return nil, err
	}

	rows := make([][]string, 0, len(servers))
	for _, s := range servers {
		rows = append(rows, []string{
			dash(s.Name),
			s.Host + ":" + strconv.Itoa(s.Port),
			strconv.Itoa(s.Weight),
		})
	}
	return rows, nil
}

func dash(v string) string {
	if v == "" {
		return "-"
	}
	return v
}
