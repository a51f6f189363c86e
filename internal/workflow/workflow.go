// Package workflow renders and reads the GitHub Actions workflow that runs
// the database ping on a schedule.
package workflow

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
	"text/template"

	"gopkg.in/yaml.v3"

	"github.com/aatumaykin/dbpinger/internal/config"
	"github.com/aatumaykin/dbpinger/internal/schedule"
)

const workflowTemplate = `name: {{yaml .Name}}

on:
  schedule:
    - cron: {{quote .Cron}}
  workflow_dispatch: # Manual trigger button in GitHub Actions tab

jobs:
  {{yaml .JobName}}:
    runs-on: {{yaml .RunsOn}}
    steps:
      - name: Setup Go
        uses: {{yaml .SetupAction}}
        with:
          go-version: {{quote .GoVersion}}

      - name: {{yaml (printf "Run %s" .Name)}}
        run: {{yaml .Command}}
        env:
          {{.URIEnv}}: {{.SecretRef}}
`

var tmpl = template.Must(template.New("workflow").Funcs(template.FuncMap{
	"yaml":  plainScalar,
	"quote": strconv.Quote,
}).Parse(workflowTemplate))

// plainScalar leaves s unquoted when YAML reads it back as the same string
// and falls back to a double-quoted scalar otherwise.
// strconv.Quote escapes are a subset of YAML double-quoted escapes.
func plainScalar(s string) string {
	if s == "" || strings.ContainsAny(s, "\n\r\t") {
		return strconv.Quote(s)
	}

	var node yaml.Node
	if err := yaml.Unmarshal([]byte("k: "+s+"\n"), &node); err != nil {
		return strconv.Quote(s)
	}
	if len(node.Content) != 1 || len(node.Content[0].Content) != 2 {
		return strconv.Quote(s)
	}
	v := node.Content[0].Content[1]
	if v.Kind != yaml.ScalarNode || v.ShortTag() != "!!str" || v.Style != 0 || v.Value != s {
		return strconv.Quote(s)
	}
	return s
}

type templateData struct {
	config.WorkflowConfig
	Cron      string
	URIEnv    string
	SecretRef string
}

// Render produces the workflow text for expr. The output is parsed back
// and must carry exactly the schedule it was rendered with.
func Render(w config.WorkflowConfig, uriEnv string, expr schedule.Expression) ([]byte, error) {
	data := templateData{
		WorkflowConfig: w,
		Cron:           expr.String(),
		URIEnv:         uriEnv,
		SecretRef:      fmt.Sprintf("${{ secrets.%s }}", w.SecretName),
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("failed to render workflow: %w", err)
	}

	doc, err := Parse(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("rendered workflow is not valid YAML: %w", err)
	}
	crons, err := doc.Schedules()
	if err != nil {
		return nil, err
	}
	if len(crons) != 1 || crons[0] != data.Cron {
		return nil, fmt.Errorf("rendered workflow schedule mismatch: got %v, want %q", crons, data.Cron)
	}
	if !doc.ManualTrigger() {
		return nil, fmt.Errorf("rendered workflow has no workflow_dispatch trigger")
	}
	if _, ok := doc.Jobs[w.JobName]; !ok {
		return nil, fmt.Errorf("rendered workflow has no %q job", w.JobName)
	}

	return buf.Bytes(), nil
}

// Document is the subset of a workflow file dbpinger cares about.
type Document struct {
	Name string               `yaml:"name"`
	On   map[string]yaml.Node `yaml:"on"`
	Jobs map[string]Job       `yaml:"jobs"`
}

// Job is a workflow job.
type Job struct {
	RunsOn string `yaml:"runs-on"`
	Steps  []Step `yaml:"steps"`
}

// Step is a single job step.
type Step struct {
	Name string            `yaml:"name"`
	Uses string            `yaml:"uses,omitempty"`
	Run  string            `yaml:"run,omitempty"`
	With map[string]string `yaml:"with,omitempty"`
	Env  map[string]string `yaml:"env,omitempty"`
}

type scheduleEntry struct {
	Cron string `yaml:"cron"`
}

// Parse decodes workflow YAML.
func Parse(data []byte) (*Document, error) {
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse workflow: %w", err)
	}
	return &doc, nil
}

// Schedules returns the cron strings of the schedule trigger, if any.
func (d *Document) Schedules() ([]string, error) {
	node, ok := d.On["schedule"]
	if !ok {
		return nil, nil
	}

	var entries []scheduleEntry
	if err := node.Decode(&entries); err != nil {
		return nil, fmt.Errorf("failed to decode schedule trigger: %w", err)
	}

	crons := make([]string, 0, len(entries))
	for _, e := range entries {
		crons = append(crons, e.Cron)
	}
	return crons, nil
}

// ManualTrigger reports whether workflow_dispatch is present.
func (d *Document) ManualTrigger() bool {
	_, ok := d.On["workflow_dispatch"]
	return ok
}
