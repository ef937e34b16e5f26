package typeinfo

import (
	"fmt"
	"strings"

	"github.com/teranos/gircheck/classify"
	"github.com/teranos/gircheck/codewriter"
)

// Comment markers used to render an excluded row inert.
const (
	excludeOpen  = "/*"
	excludeClose = "*/"
)

// Row is one generated statement plus the decision whether it must be
// commented out.
type Row struct {
	Text     string
	Excluded bool
}

// RenderRow builds the statement for res in format f. Only type-info rows
// carry the exclusion decision; property and signal rows are always live.
func RenderRow(f Format, namespace string, res classify.Resolution, excluded bool) Row {
	getType := strings.ReplaceAll(res.GetType, `"`, `\"`)

	switch f {
	case FormatSignalInfo:
		return Row{Text: fmt.Sprintf(`print_object_signals(stdout,%s,"%s","%s","%s");`,
			getType, namespace, res.Kind, res.TypeName)}
	case FormatPropertyInfo:
		return Row{Text: fmt.Sprintf(`print_object_properties(stdout,%s,"%s","%s","%s");`,
			getType, namespace, res.Kind, res.TypeName)}
	default:
		return Row{
			Text: `printf("%s,%s,%s,%s,%s,%s\n",` + fmt.Sprintf(
				` "%s", "%s", "%s", "%s", "%s", g_type_fundamental_tostring((unsigned long)%s));`,
				namespace, res.Kind, res.TypeName, res.CType, getType, res.GetType),
			Excluded: excluded && res.HasTypeName,
		}
	}
}

// WriteRow appends r to w, bracketed by comment markers when excluded.
func WriteRow(w *codewriter.Writer, r Row) {
	if r.Excluded {
		w.WriteSource(excludeOpen)
	}
	w.WriteLine(r.Text)
	if r.Excluded {
		w.WriteLine(excludeClose)
	}
}
