package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/joeyg6393/fincalcs/export"
	"github.com/joeyg6393/fincalcs/service"
)

func listCmd() *cobra.Command {
	var category string
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the available calculators",
		RunE: func(cmd *cobra.Command, _ []string) error {
			var rows [][]string
			for _, c := range service.NewRegistry().List() {
				if category != "" && c.Category != category {
					continue
				}
				rows = append(rows, []string{c.ID, c.Title, c.Category})
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable([]string{"ID", "TITLE", "CATEGORY"}, rows))
			return nil
		},
	}
	cmd.Flags().StringVar(&category, "category", "", "only list calculators in this category")
	return cmd
}

type inputFlags struct {
	file string
	sets []string
}

func (f *inputFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.file, "file", "f", "", "input file (JSON or YAML, - for stdin)")
	cmd.Flags().StringArrayVar(&f.sets, "set", nil, "override an input field, e.g. --set interestRate=5.5")
}

func calcCmd() *cobra.Command {
	var (
		in      inputFlags
		rawJSON bool
	)
	cmd := &cobra.Command{
		Use:   "calc <calculator>",
		Short: "Run a calculator",
		Long: `Run a calculator on a JSON or YAML input document.

Rates are percentages (5 means 5%). Counts of years, months, ages and days
are whole numbers: "years: 2.5" is rejected, use the month-based field of
the calculator where one exists. Unknown fields are rejected.`,
		Example: `  fincalc calc mortgage -f mortgage.yaml
  fincalc calc rule-72 --set interestRate=8`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			outcome, _, err := runCalculator(cmd, args[0], in)
			if err != nil {
				return err
			}
			if err := printOutcome(cmd.OutOrStdout(), outcome, rawJSON); err != nil {
				return err
			}
			return outcomeErr(outcome)
		},
	}
	in.register(cmd)
	cmd.Flags().BoolVar(&rawJSON, "json", false, "print the outcome as JSON")
	return cmd
}

func exportCmd() *cobra.Command {
	var (
		in     inputFlags
		output string
	)
	cmd := &cobra.Command{
		Use:   "export <calculator>",
		Short: "Run a calculator and write the result to an xlsx workbook",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			outcome, calc, err := runCalculator(cmd, args[0], in)
			if err != nil {
				return err
			}
			if len(outcome.Result) == 0 {
				return outcomeErr(outcome)
			}
			if output == "" {
				output = calc.ID + ".xlsx"
			}

			f, err := os.Create(output)
			if err != nil {
				return fmt.Errorf("failed to create %s: %w", output, err)
			}
			if err := export.Write(f, calc, outcome); err != nil {
				_ = f.Close()
				return err
			}
			if err := f.Close(); err != nil {
				return fmt.Errorf("failed to close %s: %w", output, err)
			}

			fmt.Fprintln(cmd.OutOrStdout(), SuccessStyle.Render("Wrote "+output))
			return outcomeErr(outcome)
		},
	}
	in.register(cmd)
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default <calculator>.xlsx)")
	return cmd
}

func historyCmd() *cobra.Command {
	var (
		calculator string
		limit      int
	)
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show recorded calculator runs (use --history sqlite to persist them)",
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := newApp(cmd.Context())
			if err != nil {
				return err
			}
			defer a.Close()

			records, err := a.service.History(cmd.Context(), calculator, limit)
			if err != nil {
				return err
			}
			if len(records) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), SubtleStyle.Render("No history recorded."))
				return nil
			}

			rows := make([][]string, 0, len(records))
			for _, rec := range records {
				rows = append(rows, []string{
					rec.CreatedAt.Local().Format("2006-01-02 15:04:05"),
					rec.Calculator,
					rec.Status,
					rec.ID,
				})
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable([]string{"WHEN", "CALCULATOR", "STATUS", "ID"}, rows))
			return nil
		},
	}
	cmd.Flags().StringVar(&calculator, "calculator", "", "only show runs of this calculator")
	cmd.Flags().IntVar(&limit, "limit", 20, "maximum number of runs to show")
	return cmd
}

func runCalculator(cmd *cobra.Command, id string, in inputFlags) (service.Outcome, service.Calculator, error) {
	raw, err := readInput(in.file, in.sets)
	if err != nil {
		return service.Outcome{}, service.Calculator{}, err
	}

	a, err := newApp(cmd.Context())
	if err != nil {
		return service.Outcome{}, service.Calculator{}, err
	}
	defer a.Close()

	calc, err := a.service.Registry().Get(id)
	if err != nil {
		return service.Outcome{}, service.Calculator{}, err
	}
	outcome, err := a.service.Run(cmd.Context(), id, raw)
	return outcome, calc, err
}

func printOutcome(w io.Writer, outcome service.Outcome, rawJSON bool) error {
	if rawJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(outcome)
	}

	status := string(outcome.Status)
	switch outcome.Status {
	case service.StatusOK:
		status = SuccessStyle.Render(status)
	case service.StatusInvalid:
		status = ErrorStyle.Render(status)
	default:
		status = WarningStyle.Render(status)
	}
	fmt.Fprintf(w, "%s  %s\n", TitleStyle.Render(outcome.Calculator), status)
	if outcome.Reason != "" {
		fmt.Fprintln(w, SubtleStyle.Render(outcome.Reason))
	}
	if len(outcome.Result) == 0 {
		return nil
	}

	var buf bytes.Buffer
	if err := json.Indent(&buf, outcome.Result, "", "  "); err != nil {
		return fmt.Errorf("failed to format result: %w", err)
	}
	fmt.Fprintln(w, buf.String())
	return nil
}

// outcomeErr turns a failed outcome into a command error so the process
// exits non-zero.
func outcomeErr(outcome service.Outcome) error {
	if outcome.Status == service.StatusOK {
		return nil
	}
	return fmt.Errorf("calculation %s: %s", outcome.Status, outcome.Reason)
}
