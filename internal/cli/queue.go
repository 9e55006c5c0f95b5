package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/openlabels/oli-cli/internal/cli/render"
	"github.com/openlabels/oli-cli/internal/domain"
)

// NewQueueCmd creates the queue command group
func NewQueueCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "queue",
		Short: "Manage the attestation queue",
		Long:  "Commands for inspecting and editing the queue of candidate attestations.",
	}

	cmd.AddCommand(newQueueListCmd())
	cmd.AddCommand(newQueueAddCmd())
	cmd.AddCommand(newQueueSetCmd())
	cmd.AddCommand(newQueueRemoveCmd())
	cmd.AddCommand(newQueueClearCmd())

	return cmd
}

func newQueueListCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "Show the queued rows",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			status, err := app.ShowQueue.Run(cmd.Context())
			if err != nil {
				return err
			}

			return render.NewQueueRenderer(cmd.OutOrStdout(), app.Config.JSON).Render(status)
		},
	}
}

// rowFlags registers the shared row field flags.
func rowFlags(cmd *cobra.Command, row *domain.QueueRow) {
	cmd.Flags().StringVar(&row.ChainID, "chain", "", "Chain id (eip155:<id>, defaults to the configured chain)")
	cmd.Flags().StringVar(&row.Address, "address", "", "Contract address")
	cmd.Flags().StringVar(&row.ContractName, "name", "", "Contract name")
	cmd.Flags().StringVar(&row.OwnerProject, "owner", "", "Owner project slug")
	cmd.Flags().StringVar(&row.UsageCategory, "category", "", "Usage category")
}

func newQueueAddCmd() *cobra.Command {
	var row domain.QueueRow

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a row to the queue",
		Example: `  # Queue a contract label
  oli queue add --address 0x1f98431c8ad98523631ae4a59f267346ea31f984 --owner uniswap --category dex`,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			queue, err := app.EditQueue.Add(cmd.Context(), row)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Added. Queue has %d rows.\n", len(queue.Rows))
			return nil
		},
	}

	rowFlags(cmd, &row)
	return cmd
}

func newQueueSetCmd() *cobra.Command {
	var row domain.QueueRow

	cmd := &cobra.Command{
		Use:   "set <row>",
		Short: "Replace the row at the given position",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			index, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid row number %q", args[0])
			}

			if _, err := app.EditQueue.Set(cmd.Context(), index, row); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Row %d updated.\n", index)
			return nil
		},
	}

	rowFlags(cmd, &row)
	return cmd
}

func newQueueRemoveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "remove [row...]",
		Aliases: []string{"rm"},
		Short:   "Remove rows from the queue",
		Long: `Remove rows by position. Without arguments an interactive picker is
shown (unless running non-interactively).`,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			var indices []int
			for _, arg := range args {
				idx, err := strconv.Atoi(arg)
				if err != nil {
					return fmt.Errorf("invalid row number %q", arg)
				}
				indices = append(indices, idx)
			}

			if len(indices) == 0 {
				if app.Config.NonInteractive {
					return fmt.Errorf("row numbers required in non-interactive mode")
				}

				status, err := app.ShowQueue.Run(cmd.Context())
				if err != nil {
					return err
				}
				indices, err = selectQueueRows(status.Queue.Rows, "Select rows to remove")
				if err != nil {
					return err
				}
			}

			queue, err := app.EditQueue.Remove(cmd.Context(), indices)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Removed %d rows. Queue has %d rows.\n", len(indices), len(queue.Rows))
			return nil
		},
	}

	return cmd
}

func newQueueClearCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Reset the queue to a single empty row",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			if _, err := app.EditQueue.Clear(cmd.Context()); err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), "Queue cleared.")
			return nil
		},
	}
}
