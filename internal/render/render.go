// Package render formats distance results for the CLI in text, table,
// JSON, and YAML form.
package render

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"gopkg.in/yaml.v3"

	"github.com/Sumatoshi-tech/seqdist/internal/config"
	"github.com/Sumatoshi-tech/seqdist/pkg/levenshtein"
)

// ErrUnsupportedFormat is returned for formats the renderer does not know.
var ErrUnsupportedFormat = errors.New("unsupported output format")

// Result is a single pairwise distance outcome.
type Result struct {
	Metric     string   `json:"metric"               yaml:"metric"`
	Left       string   `json:"left"                 yaml:"left"`
	Right      string   `json:"right"                yaml:"right"`
	Distance   int      `json:"distance"             yaml:"distance"`
	Normalized *float64 `json:"normalized,omitempty" yaml:"normalized,omitempty"`
}

// FilterMatch is one streaming filter hit.
type FilterMatch struct {
	Distance  int    `json:"distance"  yaml:"distance"`
	Candidate string `json:"candidate" yaml:"candidate"`
}

// FilterReport aggregates a whole filter run.
type FilterReport struct {
	Reference string        `json:"reference" yaml:"reference"`
	Matches   []FilterMatch `json:"matches"   yaml:"matches"`
	Scanned   int           `json:"scanned"   yaml:"scanned"`
}

// NewFilterReport converts engine matches into a report.
func NewFilterReport(reference string, matches []levenshtein.Match, scanned int) FilterReport {
	report := FilterReport{
		Reference: reference,
		Matches:   make([]FilterMatch, 0, len(matches)),
		Scanned:   scanned,
	}

	for _, match := range matches {
		report.Matches = append(report.Matches, FilterMatch{
			Distance:  match.Distance,
			Candidate: match.Candidate,
		})
	}

	return report
}

// Renderer writes results to a single output stream in one format.
type Renderer struct {
	out      io.Writer
	format   string
	colorize bool
}

// New returns a renderer for the given format.
func New(out io.Writer, format string, colorize bool) *Renderer {
	return &Renderer{out: out, format: format, colorize: colorize}
}

// Result renders a single pairwise distance.
func (r *Renderer) Result(res Result) error {
	switch r.format {
	case config.FormatText:
		return r.resultText(res)
	case config.FormatTable:
		return r.resultTable(res)
	case config.FormatJSON:
		return r.writeJSON(res)
	case config.FormatYAML:
		return r.writeYAML(res)
	default:
		return fmt.Errorf("%w: %s", ErrUnsupportedFormat, r.format)
	}
}

// Filter renders a streaming filter report.
func (r *Renderer) Filter(report FilterReport) error {
	switch r.format {
	case config.FormatText:
		return r.filterText(report)
	case config.FormatTable:
		return r.filterTable(report)
	case config.FormatJSON:
		return r.writeJSON(report)
	case config.FormatYAML:
		return r.writeYAML(report)
	default:
		return fmt.Errorf("%w: %s", ErrUnsupportedFormat, r.format)
	}
}

func (r *Renderer) resultText(res Result) error {
	value := r.formatValue(res)

	_, err := fmt.Fprintf(r.out, "%s(%s, %s) = %s\n", res.Metric, res.Left, res.Right, value)
	if err != nil {
		return fmt.Errorf("write result: %w", err)
	}

	return nil
}

func (r *Renderer) resultTable(res Result) error {
	writer := table.NewWriter()
	writer.SetOutputMirror(r.out)
	writer.AppendHeader(table.Row{"Metric", "Left", "Right", "Distance"})
	writer.AppendRow(table.Row{res.Metric, res.Left, res.Right, r.formatValue(res)})
	writer.Render()

	return nil
}

func (r *Renderer) filterText(report FilterReport) error {
	for _, match := range report.Matches {
		_, err := fmt.Fprintf(r.out, "%s\t%s\n", r.highlight(fmt.Sprintf("%d", match.Distance)), match.Candidate)
		if err != nil {
			return fmt.Errorf("write match: %w", err)
		}
	}

	_, err := fmt.Fprintf(r.out, "%s matches out of %s candidates\n",
		humanize.Comma(int64(len(report.Matches))),
		humanize.Comma(int64(report.Scanned)))
	if err != nil {
		return fmt.Errorf("write summary: %w", err)
	}

	return nil
}

func (r *Renderer) filterTable(report FilterReport) error {
	writer := table.NewWriter()
	writer.SetOutputMirror(r.out)
	writer.AppendHeader(table.Row{"Distance", "Candidate"})

	for _, match := range report.Matches {
		writer.AppendRow(table.Row{match.Distance, match.Candidate})
	}

	writer.AppendFooter(table.Row{"Scanned", humanize.Comma(int64(report.Scanned))})
	writer.Render()

	return nil
}

func (r *Renderer) writeJSON(value any) error {
	encoder := json.NewEncoder(r.out)
	encoder.SetIndent("", "  ")

	err := encoder.Encode(value)
	if err != nil {
		return fmt.Errorf("json encode: %w", err)
	}

	return nil
}

func (r *Renderer) writeYAML(value any) error {
	data, err := yaml.Marshal(value)
	if err != nil {
		return fmt.Errorf("yaml marshal: %w", err)
	}

	_, err = r.out.Write(data)
	if err != nil {
		return fmt.Errorf("write yaml: %w", err)
	}

	return nil
}

func (r *Renderer) formatValue(res Result) string {
	if res.Normalized != nil {
		return r.highlight(fmt.Sprintf("%g", *res.Normalized))
	}

	return r.highlight(fmt.Sprintf("%d", res.Distance))
}

func (r *Renderer) highlight(s string) string {
	if !r.colorize {
		return s
	}

	return color.New(color.FgCyan).Sprint(s)
}
