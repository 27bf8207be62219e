package commands

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"go.trai.ch/strref"
	"go.trai.ch/strref/internal/core/domain"
	"go.trai.ch/strref/internal/ui/style"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

func renderYAML(w io.Writer, report *domain.Report) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(report); err != nil {
		return zerr.Wrap(err, "failed to encode report")
	}
	return enc.Close()
}

func renderText(w io.Writer, report *domain.Report) error {
	var b strings.Builder

	row := func(label string, value int) {
		b.WriteString(style.Label.Render(label))
		b.WriteString(style.Value.Render(strconv.Itoa(value)))
		b.WriteByte('\n')
	}

	b.WriteString(style.Heading.Render("Summary"))
	b.WriteByte('\n')
	row("files", len(report.Files))
	row("lines", report.Lines)
	row("distinct", report.Distinct)
	for _, kind := range []strref.Kind{strref.KindSmall, strref.KindShared, strref.KindStatic} {
		row(kind.String(), report.Kinds[kind.String()])
	}
	row("inline bytes", report.InlineBytes)
	row("shared bytes", report.SharedBytes)

	if len(report.Top) > 0 {
		b.WriteByte('\n')
		b.WriteString(style.Heading.Render("Top lines"))
		b.WriteByte('\n')
		for _, e := range report.Top {
			b.WriteString(style.Count.Render(strconv.Itoa(e.Count)))
			b.WriteString("  ")
			b.WriteString(e.Line.View())
			b.WriteByte('\n')
		}
	}

	b.WriteByte('\n')
	b.WriteString(style.Success.Render(style.Check))
	b.WriteString(style.Muted.Render(fmt.Sprintf(" %d files read", len(report.Files))))
	b.WriteByte('\n')

	_, err := io.WriteString(w, b.String())
	return err
}
