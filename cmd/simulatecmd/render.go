// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package simulatecmd

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/luxfi/vebanny/pkg/constants"
	"github.com/luxfi/vebanny/pkg/globalconfig"
	"github.com/luxfi/vebanny/pkg/tokenuri"
	"github.com/luxfi/vebanny/pkg/ux"
	"github.com/olekukonko/tablewriter/tw"
)

var csvHeader = []string{"amount", "duration", "bucket", "multiplier", "index", "uri"}

func machineReadable(format string) bool {
	switch format {
	case constants.FormatCSV, constants.FormatJSON, constants.FormatYAML:
		return true
	}
	return false
}

// Render writes entries to w in the named format.
func Render(w io.Writer, format string, entries []tokenuri.Entry) error {
	switch format {
	case constants.FormatText:
		return renderText(w, entries)
	case constants.FormatTable:
		return renderTable(w, entries)
	case constants.FormatCSV:
		return renderCSV(w, entries)
	case constants.FormatJSON, constants.FormatYAML:
		if entries == nil {
			entries = []tokenuri.Entry{}
		}
		data, err := globalconfig.Encode(entries, format)
		if err != nil {
			return err
		}
		_, err = w.Write(data)
		return err
	default:
		return fmt.Errorf("%w %q", constants.ErrUnknownFormat, format)
	}
}

// renderText prints "[amount|duration] => uri" with a blank line closing each amount.
func renderText(w io.Writer, entries []tokenuri.Entry) error {
	for i, e := range entries {
		if _, err := fmt.Fprintf(w, "[%d|%d] => %s\n", e.Amount, e.Duration, e.URI); err != nil {
			return err
		}
		if i == len(entries)-1 || entries[i+1].Amount != e.Amount {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}
	}
	return nil
}

func renderTable(w io.Writer, entries []tokenuri.Entry) error {
	table := ux.DefaultTable(w, tw.AlignRight, "Amount", "Duration", "Bucket", "Multiplier", "Index", "URI")
	for _, e := range entries {
		if err := table.Append([]string{
			ux.ConvertToStringWithThousandSeparator(e.Amount),
			strconv.FormatInt(e.Duration, 10),
			strconv.Itoa(e.Bucket),
			strconv.Itoa(e.Multiplier),
			strconv.Itoa(e.Index),
			e.URI,
		}); err != nil {
			return err
		}
	}
	return table.Render()
}

func renderCSV(w io.Writer, entries []tokenuri.Entry) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return err
	}
	for _, e := range entries {
		if err := cw.Write([]string{
			strconv.FormatInt(e.Amount, 10),
			strconv.FormatInt(e.Duration, 10),
			strconv.Itoa(e.Bucket),
			strconv.Itoa(e.Multiplier),
			strconv.Itoa(e.Index),
			e.URI,
		}); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
