package toc

import (
	"fmt"
	"strings"
	"text/template"
	"time"

	sprig "github.com/go-task/slim-sprig/v3"

	"chb/config"
	"chb/misc"
)

type templateValues struct {
	Context string
	Project string
	Date    string
	Version string
}

// ExpandOutputName expands the configured output name template with project
// metadata.
func ExpandOutputName(field, projectName string) (string, error) {
	values := &templateValues{
		Context: string(config.OutputNameTemplateFieldName),
		Project: projectName,
		Date:    time.Now().Format(time.DateOnly),
		Version: misc.GetVersion(),
	}

	tmpl, err := template.New(values.Context).Funcs(sprig.FuncMap()).Parse(field)
	if err != nil {
		return "", fmt.Errorf("unable to parse template field %s: %w", values.Context, err)
	}

	var buf strings.Builder
	if err := tmpl.Execute(&buf, values); err != nil {
		return "", fmt.Errorf("unable to expand template field %s: %w", values.Context, err)
	}
	return buf.String(), nil
}
