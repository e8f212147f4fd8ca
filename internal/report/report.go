package report

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/MKhiriev/lb-dashboard/internal/config"
	"github.com/MKhiriev/lb-dashboard/models"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"gopkg.in/yaml.v3"
)

// ErrUnknownFormat is returned by [Write] for an unsupported format name.
var ErrUnknownFormat = errors.New("unknown report format")

var headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
var cellStyle = lipgloss.NewStyle().Padding(0, 1)

// Write renders d to w in the given format: "table", "json" or "yaml".
// An empty format means "table".
func Write(w io.Writer, d models.Dashboard, format string) error {
	switch format {
	case config.FormatTable, "":
		return WriteTable(w, d)
	case config.FormatJSON:
		return WriteJSON(w, d)
	case config.FormatYAML:
		return WriteYAML(w, d)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

// WriteJSON writes the dashboard document as indented JSON.
func WriteJSON(w io.Writer, d models.Dashboard) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(NewDocument(d))
}

// WriteYAML writes the dashboard document as YAML. Keys keep the order of
// the JSON form.
func WriteYAML(w io.Writer, d models.Dashboard) error {
	data, err := json.Marshal(NewDocument(d))
	if err != nil {
		return err
	}

	// JSON is a subset of YAML, so the node tree keeps document order.
	var node yaml.Node
	if err = yaml.Unmarshal(data, &node); err != nil {
		return fmt.Errorf("error converting document to yaml: %w", err)
	}
	blockStyle(&node)

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err = enc.Encode(&node); err != nil {
		return err
	}
	return enc.Close()
}

func blockStyle(n *yaml.Node) {
	n.Style = 0
	for _, c := range n.Content {
		blockStyle(c)
	}
}

// WriteTable writes a human readable report: the frontend table, the
// servers of every resolved backend, the info document and fetch errors.
func WriteTable(w io.Writer, d models.Dashboard) error {
	var b strings.Builder

	b.WriteString("Fetched at: ")
	b.WriteString(d.FetchedAt.Format("2006-01-02 15:04:05 MST"))
	b.WriteString("\n\n")

	if d.ConfigErr != nil {
		b.WriteString("Config error: ")
		b.WriteString(d.ConfigErr.Error())
		b.WriteString("\n\n")
	}

	if d.Config != nil {
		rows := FrontendRows(d.Config)
		if len(rows) == 0 {
			b.WriteString("No frontends\n\n")
		} else {
			cells := make([][]string, 0, len(rows))
			for _, r := range rows {
				cells = append(cells, r.Cells())
			}
			b.WriteString(NewTable(FrontendHeaders, cells))
			b.WriteString("\n\n")
		}

		for _, u := range resolvedBackends(d.Config) {
			servers, err := ServerRows(u.ref)
			if err != nil {
				fmt.Fprintf(&b, "Backend %s: %v\n\n", u.ref.Name, err)
				continue
			}
			if len(servers) == 0 {
				continue
			}
			fmt.Fprintf(&b, "Backend %s (frontends %s)\n", u.ref.Name, strings.Join(u.frontends, ", "))
			b.WriteString(NewTable([]string{"SERVER", "ADDRESS", "WEIGHT"}, servers))
			b.WriteString("\n\n")
		}
	}

	if d.InfoErr != nil {
		b.WriteString("Info error: ")
		b.WriteString(d.InfoErr.Error())
		b.WriteString("\n")
	} else if d.Info != nil {
		keys := d.Info.Keys()
		cells := make([][]string, 0, len(keys))
		for _, k := range keys {
			cells = append(cells, []string{k, d.Info.Value(k)})
		}
		b.WriteString(NewTable([]string{"INFO", "VALUE"}, cells))
		b.WriteString("\n")
	}

	_, err := io.WriteString(w, b.String())
	return err
}

type backendUsage struct {
	ref       models.BackendRef
	frontends []string
}

// resolvedBackends lists every resolved backend once, keyed by name, in the
// order frontends first reference it, with the names of the frontends using
// it.
func resolvedBackends(cfg *models.Config) []*backendUsage {
	var (
		usages []*backendUsage
		seen   = make(map[string]*backendUsage)
	)
	for _, fe := range cfg.Frontends {
		if !fe.DefaultBackend.Resolved() {
			continue
		}
		name := fe.DefaultBackend.Name
		u, ok := seen[name]
		if !ok {
			u = &backendUsage{ref: fe.DefaultBackend}
			seen[name] = u
			usages = append(usages, u)
		}
		u.frontends = append(u.frontends, dash(fe.Name))
	}
	return usages
}

// NewTable renders headers and rows as a bordered lipgloss table.
func NewTable(headers []string, rows [][]string) string {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})
	return t.Render()
}
