package main

import (
	"github.com/spf13/cobra"

	"rtlil/internal/diagfmt"
)

func newStatsCmd(a *app) *cobra.Command {
	var (
		f      checkFlags
		format string
	)
	cmd := &cobra.Command{
		Use:   "stats [flags] [file.il|directory]...",
		Short: "Print design statistics: modules, top module, wires, cells",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := checkFormat("format", format, "pretty", "json"); err != nil {
				return err
			}
			res, err := a.runCheck(cmd, args, f, false)
			if err != nil {
				return err
			}

			files := make([]diagfmt.FileStats, 0, len(res.Files))
			for _, fr := range res.Files {
				if fr.OK {
					files = append(files, diagfmt.FileStats{Path: fr.Path, Stats: fr.Stats})
				}
			}
			out := cmd.OutOrStdout()
			if format == "json" {
				err = diagfmt.FormatStatsJSON(out, files, res.Total)
			} else {
				err = diagfmt.FormatStatsPretty(out, files, res.Total)
			}
			if err != nil {
				return err
			}
			if res.Failed() > 0 {
				return errReported
			}
			return nil
		},
	}
	addCheckFlags(cmd, &f)
	cmd.Flags().StringVar(&format, "format", "pretty", "output format (pretty|json)")
	return cmd
}
