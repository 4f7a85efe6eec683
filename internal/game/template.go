package game

import (
	"bytes"
	"fmt"
	"text/template"
	"time"

	"github.com/Masterminds/sprig/v3"
)

// Row rendering goes through text/template so the fixed-width terminal
// layout lives in one place instead of scattered format strings.
var templateFuncs = sprig.TxtFuncMap()

var (
	scanRowTmpl = template.Must(template.New("scan_row").Funcs(templateFuncs).Parse(
		`{{ .Address }}     - {{ .Name }} [{{ .Status }}]`))

	boardRowTmpl = template.Must(template.New("board_row").Funcs(templateFuncs).Parse(
		`{{ printf "#%02d" .Rank }}   | {{ printf "%-15s" (trunc 15 .Username) }} | {{ .Time }}   | {{ printf "%3d" .Commands }}`))

	separatorTmpl = template.Must(template.New("separator").Funcs(templateFuncs).Parse(
		`{{ repeat .Width .Glyph }}`))
)

func renderTemplate(tmpl *template.Template, data any) string {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		// Templates are compiled at init against fixed structs; execution
		// cannot fail with well-formed data.
		return fmt.Sprintf("template %s: %v", tmpl.Name(), err)
	}
	return buf.String()
}

func separator(glyph string, width int) string {
	return renderTemplate(separatorTmpl, struct {
		Glyph string
		Width int
	}{Glyph: glyph, Width: width})
}

// formatClock renders elapsed milliseconds as mm:ss.
func formatClock(ms int64) string {
	seconds := ms / int64(time.Second/time.Millisecond)
	return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
}
