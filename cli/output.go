package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"actiongen.evalgo.org/actions"
)

var headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
var cellStyle = lipgloss.NewStyle().Padding(0, 1)

func newTable(headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.NormalBorder()).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		}).
		Headers(headers...)
}

func writeDescriptorTable(w io.Writer, descriptors []actions.Descriptor) error {
	t := newTable("NAME", "METHOD", "ARGUMENTS", "DESCRIPTION")
	for _, d := range descriptors {
		t.Row(d.Name, d.Method, d.ArgList, d.Description)
	}
	_, err := fmt.Fprintln(w, t.Render())
	return err
}

func writeNamespaceTable(w io.Writer, infos []namespaceInfo) error {
	t := newTable("NAMESPACE", "ACTIONS", "CLIENT")
	for _, info := range infos {
		client := info.Client
		if !info.Supported {
			client = "-"
		}
		t.Row(info.Name, strconv.Itoa(info.Actions), client)
	}
	_, err := fmt.Fprintln(w, t.Render())
	return err
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
