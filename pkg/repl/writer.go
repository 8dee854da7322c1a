/*
 * Copyright (c) 2023, Gideon Williams gideon@gideonw.com
 * Copyright (c) 2024, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package repl

import (
	"encoding/csv"
	"encoding/json"
	"io"

	"github.com/olekukonko/tablewriter"
	"github.com/pkg/errors"
)

// Printable is a result that can be rendered as a table.
type Printable interface {
	Headers() []string
	Values() [][]string
}

var OutputFormats = []string{"text", "csv", "json"}

type OutputWriter interface {
	Write(v Printable) error
}

type CSVWriter struct {
	w io.Writer
}

type TextWriter struct {
	w io.Writer
}

type JSONWriter struct {
	w io.Writer
}

func NewOutputWriter(w io.Writer, t string) OutputWriter {
	switch t {
	case "csv":
		return CSVWriter{
			w,
		}
	case "json":
		return JSONWriter{
			w,
		}
	}
	return TextWriter{
		w,
	}
}

func (w CSVWriter) Write(v Printable) error {
	wtr := csv.NewWriter(w.w)
	if err := wtr.Write(v.Headers()); err != nil {
		return errors.Wrap(err, "unable to write csv header")
	}
	return wtr.WriteAll(v.Values())
}

func (w TextWriter) Write(v Printable) error {
	table := tablewriter.NewWriter(w.w)
	headers := make([]any, 0, len(v.Headers()))
	for _, h := range v.Headers() {
		headers = append(headers, h)
	}
	table.Header(headers...)
	if err := table.Bulk(v.Values()); err != nil {
		return errors.Wrap(err, "unable to fill table")
	}
	return table.Render()
}

// Write emits one JSON object per row, keyed by header.
func (w JSONWriter) Write(v Printable) error {
	enc := json.NewEncoder(w.w)
	headers := v.Headers()
	for _, row := range v.Values() {
		obj := make(map[string]string, len(headers))
		for i, h := range headers {
			if i < len(row) {
				obj[h] = row[i]
			}
		}
		if err := enc.Encode(obj); err != nil {
			return errors.Wrap(err, "unable to encode row")
		}
	}
	return nil
}
