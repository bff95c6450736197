// Copyright 2025 The Probability Authors
// This file is part of Probability, a discrete distribution library
//
// Probability is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Probability is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with Probability. If not, see <http://www.gnu.org/licenses/>.

package probability

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/hananather/probability-sub006/config"
	"github.com/hananather/probability-sub006/utils"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/urfave/cli/v2"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// report writes command results as tables and narrated lines.
type report struct {
	w       io.Writer
	format  string
	printer *message.Printer
}

func newReport(ctx *cli.Context, cfg *config.Config) *report {
	tag, err := language.Parse(cfg.Language)
	if err != nil {
		tag = language.English
	}
	var w io.Writer = os.Stdout
	if ctx.App != nil && ctx.App.Writer != nil {
		w = ctx.App.Writer
	}
	return &report{
		w:       w,
		format:  cfg.Format,
		printer: message.NewPrinter(tag),
	}
}

// table renders the rows in the configured output format. The footer is
// optional. The title is printed on its own line above a plain table and
// left out of csv and markdown.
func (r *report) table(title string, header table.Row, rows []table.Row, footer table.Row) error {
	t := table.NewWriter()
	t.AppendHeader(header)
	t.AppendRows(rows)
	if footer != nil {
		t.AppendFooter(footer)
	}

	var out string
	switch r.format {
	case utils.CsvFormat:
		out = t.RenderCSV()
	case utils.MarkdownFormat:
		out = t.RenderMarkdown()
	default:
		style := table.StyleLight
		style.Format.Header = text.FormatDefault
		style.Format.Footer = text.FormatDefault
		t.SetStyle(style)
		out = title + "\n" + t.Render()
	}
	_, err := fmt.Fprintln(r.w, out)
	return errors.Wrap(err, "cannot write table")
}

// line prints a single narrated line. Nothing is printed for machine
// readable formats.
func (r *report) line(format string, args ...any) error {
	if r.format != utils.TableFormat {
		return nil
	}
	_, err := r.printer.Fprintf(r.w, format+"\n", args...)
	return errors.Wrap(err, "cannot write line")
}

func (r *report) percent(p float64) string {
	return r.printer.Sprintf("%v", number.Percent(p, number.MaxFractionDigits(2)))
}

// decimal formats v with six significant digits. Only the table format is
// localized; csv and markdown stay parseable.
func (r *report) decimal(v float64) string {
	if r.format != utils.TableFormat {
		return strconv.FormatFloat(v, 'g', 6, 64)
	}
	return r.printer.Sprintf("%v", number.Decimal(v, number.Precision(6)))
}

// describe renders a family with its parameters, e.g. "binomial(n=10, p=0.5)".
func describe(cfg *config.Config) string {
	names := cfg.Family.ParamNames()
	parts := make([]string, 0, len(names))
	for _, name := range names {
		parts = append(parts, fmt.Sprintf("%v=%v", name, cfg.Params[name]))
	}
	return fmt.Sprintf("%v(%v)", cfg.Family, strings.Join(parts, ", "))
}
