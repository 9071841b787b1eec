package templates

import (
	"bytes"
	"html/template"
)

// Render substitutes vars into an HTML template source. In strict mode
// a key referenced by the source but absent from vars is an error;
// otherwise missing keys resolve to the element zero value.
func Render(src string, vars interface{}, strict bool) (string, error) {
	t := template.New("email")
	if strict {
		t = t.Option("missingkey=error")
	}
	t, err := t.Parse(src)
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	if err := t.Execute(&buf, vars); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// RawHTML marks pre-built markup as safe so the renderer does not
// escape it again.
func RawHTML(s string) template.HTML {
	return template.HTML(s)
}
