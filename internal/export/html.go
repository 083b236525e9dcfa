package export

import (
	"fmt"
	"html/template"
	"os"

	"github.com/qscrape/qscrape/internal/types"
)

// tableTemplate renders the records as a plain escaped HTML table,
// one row per record, columns in record field order.
var tableTemplate = template.Must(template.New("table").Parse(`<table border="1">
  <thead>
    <tr>
{{- range .Columns}}
      <th>{{.}}</th>
{{- end}}
    </tr>
  </thead>
  <tbody>
{{- range .Rows}}
    <tr>
{{- range .}}
      <td>{{.}}</td>
{{- end}}
    </tr>
{{- end}}
  </tbody>
</table>
`))

func writeHTML(records []types.Record, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create output file: %w", err)
	}
	defer f.Close()

	rows := make([][]string, len(records))
	for i := range records {
		rows[i] = records[i].Row()
	}

	data := struct {
		Columns []string
		Rows    [][]string
	}{
		Columns: types.Columns(),
		Rows:    rows,
	}

	if err := tableTemplate.Execute(f, data); err != nil {
		return fmt.Errorf("render HTML table: %w", err)
	}
	return f.Close()
}
