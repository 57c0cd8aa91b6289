package main

import (
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"sdrthumb/internal/format"
	"sdrthumb/internal/rate"
)

func newFormatsCommand() *cobra.Command {
	return &cobra.Command{
		Use:         "formats",
		Short:       "List supported capture formats and rate tokens",
		Args:        cobra.NoArgs,
		Annotations: map[string]string{"skipConfigLoad": "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			var rows [][]string
			for _, spec := range format.All() {
				ext := spec.Extension
				if ext == ".data" {
					ext += " (" + format.GfilePrefix + "* only)"
				}
				rows = append(rows, []string{
					ext,
					strconv.Itoa(spec.BitDepth),
					strconv.Itoa(spec.Channels),
					spec.Encoding.String(),
					strconv.Itoa(spec.DynamicRangeDB),
				})
			}
			printTable(out, []string{"Extension", "Bits", "Channels", "Encoding", "Range (dB)"}, rows, 2, 3, 5)

			rows = rows[:0]
			for _, tok := range rate.Tokens() {
				rows = append(rows, []string{tok.Text, strconv.Itoa(tok.Hz)})
			}
			rows = append(rows, []string{"(none)", strconv.Itoa(rate.DefaultHz)})
			printTable(out, []string{"Name token", "Sample rate (Hz)"}, rows, 2)
			return nil
		},
	}
}

func supportedFormatsHelp() string {
	var parts []string
	for _, spec := range format.All() {
		if spec.Extension == ".data" {
			parts = append(parts, format.GfilePrefix+"*.data")
			continue
		}
		parts = append(parts, spec.Extension)
	}
	return strings.Join(parts, " ")
}
