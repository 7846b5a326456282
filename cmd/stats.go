package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/weakspot/internal/band"
	"github.com/abhisek/weakspot/internal/logging"
	"github.com/abhisek/weakspot/internal/reference"
)

var statsCmd = &cobra.Command{
	Use:   "stats [subject]",
	Short: "Show aggregates from the reference dataset",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		logger, err := logging.NewStderr(cfg.Log)
		if err != nil {
			return err
		}
		defer logger.Sync()

		ds, err := reference.Load(cmd.Context(), cfg.ReferencePath)
		if err != nil {
			return err
		}
		if ds.Skipped > 0 {
			logger.Warn("skipped malformed reference rows", zap.String("source", ds.Source), zap.Int("skipped", ds.Skipped))
		}
		if ds.UnknownBands > 0 {
			logger.Warn("unknown band labels counted as FAIL", zap.String("source", ds.Source), zap.Int("rows", ds.UnknownBands))
		}
		sum := reference.Summarize(ds.Records)

		w := cmd.OutOrStdout()
		if len(args) == 1 {
			st, ok := sum.Subject(args[0])
			if !ok {
				return fmt.Errorf("no reference records for subject %q", args[0])
			}
			renderSubjectStats(w, st)
			return nil
		}
		fmt.Fprintf(w, "Source: %s\n\n", ds.Source)
		renderStats(w, sum)
		return nil
	},
}

func renderStats(w io.Writer, sum reference.Summary) {
	fmt.Fprintf(w, "%d records, %d students, %.0f%% passed\n", sum.TotalRecords, sum.Students, sum.PassRate*100)
	fmt.Fprintln(w, formatBands(sum.Bands))
	fmt.Fprintln(w)

	fmt.Fprintf(w, "%-28s  %5s  %8s  %6s  %5s  %5s\n", "Subject", "Count", "Avg quiz", "Pass", "Diff", "Conf")
	fmt.Fprintln(w, strings.Repeat("─", 68))
	for _, st := range sum.Subjects {
		fmt.Fprintf(w, "%-28s  %5d  %7.1f%%  %5.0f%%  %5.1f  %5.1f\n",
			truncate(st.Subject, 28), st.Count, st.AvgQuizScore, st.PassRate*100, st.AvgDifficulty, st.AvgConfidence)
	}
}

func renderSubjectStats(w io.Writer, st reference.SubjectStats) {
	fmt.Fprintln(w, st.Subject)
	fmt.Fprintln(w, strings.Repeat("─", 40))
	fmt.Fprintf(w, "Records:         %d\n", st.Count)
	fmt.Fprintf(w, "Avg quiz score:  %.1f%%\n", st.AvgQuizScore)
	fmt.Fprintf(w, "Pass rate:       %.0f%%\n", st.PassRate*100)
	fmt.Fprintf(w, "Avg difficulty:  %.1f\n", st.AvgDifficulty)
	fmt.Fprintf(w, "Avg confidence:  %.1f\n", st.AvgConfidence)
	fmt.Fprintf(w, "Bands:           %s\n", formatBands(st.Bands))
}

func formatBands(counts map[band.Band]int) string {
	parts := make([]string, 0, len(band.All()))
	for _, b := range band.All() {
		parts = append(parts, fmt.Sprintf("%s %d", b, counts[b]))
	}
	return strings.Join(parts, "  ")
}
