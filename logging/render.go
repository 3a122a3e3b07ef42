package logging

import (
	"devcalc/result"
	"encoding/json"
	"fmt"
	"io"

	"github.com/pterm/pterm"
	"gopkg.in/yaml.v3"
)

// Enumeration of output formats.
const (
	FormatTable = "table"
	FormatPlain = "plain"
	FormatJSON  = "json"
	FormatYAML  = "yaml"
)

var formatNames = map[string]struct{}{
	FormatTable: {},
	FormatPlain: {},
	FormatJSON:  {},
	FormatYAML:  {},
}

// IsFormat reports whether name names an output format.
func IsFormat(name string) bool {
	_, ok := formatNames[name]
	return ok
}

// RenderOptions controls how results are rendered.
type RenderOptions struct {
	// Format is one of the enumerated output formats.
	Format string

	// Prefix indicates whether the `0x`, `0o` and `0b` prefixes are shown.
	Prefix bool
}

// BatchEntry is the outcome of evaluating one line of a batch.
type BatchEntry struct {
	// Line is the 1-based line number of the input.
	Line  int
	Input string

	// Exactly one of Result and Err is set.
	Result *result.CalculatorResult
	Err    error
}

// batchRecord is a batch entry as it is encoded in JSON and YAML.
type batchRecord struct {
	Line   int                      `json:"line" yaml:"line"`
	Input  string                   `json:"input" yaml:"input"`
	Result *result.CalculatorResult `json:"result,omitempty" yaml:"result,omitempty"`
	Error  string                   `json:"error,omitempty" yaml:"error,omitempty"`
}

// -----------------------------------------------------------------------------

// applyPrefix strips the base prefixes if they are not wanted.
func (o RenderOptions) applyPrefix(res result.CalculatorResult) result.CalculatorResult {
	if !o.Prefix {
		res.Hex = result.StripPrefix(res.Hex)
		res.Octal = result.StripPrefix(res.Octal)
		res.Binary = result.StripPrefix(res.Binary)
	}

	return res
}

// RenderResult writes a single result in the selected format.
func RenderResult(w io.Writer, res result.CalculatorResult, opts RenderOptions) error {
	res = opts.applyPrefix(res)

	switch opts.Format {
	case FormatPlain:
		_, err := fmt.Fprintf(w, "dec: %s\nhex: %s\noct: %s\nbin: %s\n", res.Decimal, res.Hex, res.Octal, res.Binary)
		return err
	case FormatJSON:
		return writeJSON(w, res)
	case FormatYAML:
		return writeYAML(w, res)
	}

	kind := "integer"
	if !res.IsInteger {
		kind = "real"
	}

	return writeTable(w, pterm.TableData{
		{"Base", "Value"},
		{"DEC", res.Decimal},
		{"HEX", res.Hex},
		{"OCT", res.Octal},
		{"BIN", res.Binary},
		{"", InfoColorFG.Sprint(kind)},
	})
}

// RenderBatch writes the outcomes of a batch in the selected format.  Entries
// are written in the order given.
func RenderBatch(w io.Writer, entries []BatchEntry, opts RenderOptions) error {
	records := make([]batchRecord, len(entries))
	for i, entry := range entries {
		records[i] = batchRecord{Line: entry.Line, Input: entry.Input}

		if entry.Err != nil {
			records[i].Error = entry.Err.Error()
		} else if entry.Result != nil {
			res := opts.applyPrefix(*entry.Result)
			records[i].Result = &res
		}
	}

	switch opts.Format {
	case FormatPlain:
		for _, rec := range records {
			var err error
			if rec.Result != nil {
				_, err = fmt.Fprintf(w, "%s = %s %s %s %s\n", rec.Input, rec.Result.Decimal, rec.Result.Hex, rec.Result.Octal, rec.Result.Binary)
			} else {
				_, err = fmt.Fprintf(w, "%s = error: %s\n", rec.Input, rec.Error)
			}

			if err != nil {
				return err
			}
		}

		return nil
	case FormatJSON:
		return writeJSON(w, records)
	case FormatYAML:
		return writeYAML(w, records)
	}

	data := pterm.TableData{{"#", "Input", "DEC", "HEX", "OCT", "BIN"}}
	for _, rec := range records {
		if rec.Result != nil {
			data = append(data, []string{fmt.Sprint(rec.Line), rec.Input, rec.Result.Decimal, rec.Result.Hex, rec.Result.Octal, rec.Result.Binary})
		} else {
			data = append(data, []string{fmt.Sprint(rec.Line), rec.Input, ErrorColorFG.Sprint(rec.Error), "", "", ""})
		}
	}

	return writeTable(w, data)
}

// -----------------------------------------------------------------------------

func writeTable(w io.Writer, data pterm.TableData) error {
	table, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(w, table)
	return err
}

func writeJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func writeYAML(w io.Writer, v interface{}) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)

	if err := enc.Encode(v); err != nil {
		return err
	}

	return enc.Close()
}
