package app

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
)

// write renders summaries in the configured format to the output path, or
// to Stdout when no path is set.
func (a *App) write(summaries []Summary) error {
	if a.cfg.Format == FormatPDF {
		return writePDF(summaries, a.cfg.OutputPath)
	}
	var buf bytes.Buffer
	if err := render(&buf, a.cfg.Format, summaries); err != nil {
		return err
	}
	path := strings.TrimSpace(a.cfg.OutputPath)
	if path == "" || path == stdinName {
		_, err := a.Stdout.Write(buf.Bytes())
		return err
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}

func render(w io.Writer, format string, summaries []Summary) error {
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(summaries)
	case FormatText:
		return renderText(w, summaries)
	default:
		return renderMarkdown(w, summaries)
	}
}

// renderMarkdown writes one section per input: a heading (title, or the input
// name when there are several inputs) followed by a bullet list.
func renderMarkdown(w io.Writer, summaries []Summary) error {
	var b strings.Builder
	for i, s := range summaries {
		if i > 0 {
			b.WriteString("\n")
		}
		heading := s.Title
		if heading == "" && len(summaries) > 1 {
			heading = s.Input
		}
		if heading != "" {
			b.WriteString("# ")
			b.WriteString(heading)
			b.WriteString("\n\n")
		}
		if len(s.Points) == 0 {
			b.WriteString("_No summary available._\n")
			continue
		}
		for _, p := range s.Points {
			b.WriteString("- ")
			b.WriteString(p)
			b.WriteString("\n")
		}
	}
	_, err := io.WriteString(w, b.String())
	return err
}

// renderText writes one point per line with a blank line between inputs.
func renderText(w io.Writer, summaries []Summary) error {
	var b strings.Builder
	for i, s := range summaries {
		if i > 0 && len(s.Points) > 0 {
			b.WriteString("\n")
		}
		for _, p := range s.Points {
			b.WriteString(p)
			b.WriteString("\n")
		}
	}
	_, err := io.WriteString(w, b.String())
	return err
}
