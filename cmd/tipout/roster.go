package main

import (
	"fmt"

	"connectrpc.com/connect"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/mmynk/tipout/internal/models"
	"github.com/mmynk/tipout/internal/service"
)

func addRosterFlags(f *pflag.FlagSet, r *models.Roster) {
	f.StringVar(&r.Servers, "servers", "", "servers at full points, comma separated")
	f.StringVar(&r.Adjusted, "adjusted", "", "name=points pairs, comma separated")
	f.StringVar(&r.HeadBussers, "head-bussers", "", "head bussers, comma separated")
	f.StringVar(&r.Separator, "separator", "", `name/points separator, ":" or "="`)
}

func overlayRoster(cmd *cobra.Command, dst *models.Roster, flags models.Roster) {
	set := cmd.Flags().Changed
	if set("servers") {
		dst.Servers = flags.Servers
	}
	if set("adjusted") {
		dst.Adjusted = flags.Adjusted
	}
	if set("head-bussers") {
		dst.HeadBussers = flags.HeadBussers
	}
	if set("separator") {
		dst.Separator = flags.Separator
	}
}

func newRosterCmd(root *rootOptions) *cobra.Command {
	var (
		roster     models.Roster
		headPoints float64
	)

	cmd := &cobra.Command{
		Use:   "roster",
		Short: "Check a roster and show each person's points",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			api, err := root.api()
			if err != nil {
				return err
			}

			ctx, cancel := commandContext(cmd, root)
			defer cancel()

			resp, err := api.ParseRoster(ctx, connect.NewRequest(&service.ParseRosterRequest{
				Roster:           roster,
				HeadBusserPoints: headPoints,
			}))
			if err != nil {
				return describeError(cmd.ErrOrStderr(), err)
			}

			t := table.New().
				Border(tableBorder).
				BorderStyle(borderStyle).
				StyleFunc(cellStyle(-1)).
				Headers("Name", "Points", "Category")
			for _, e := range resp.Msg.Entries {
				t.Row(e.Name, formatPoints(e.Points), e.Category)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, t.Render())
			fmt.Fprintf(out, "Named points: %s\n", formatPoints(resp.Msg.NamedPoints))
			if resp.Msg.Adjusted != "" {
				fmt.Fprintf(out, "As adjusted: %s\n", resp.Msg.Adjusted)
			}
			return nil
		},
	}

	addRosterFlags(cmd.Flags(), &roster)
	cmd.Flags().Float64Var(&headPoints, "head-busser-points", 0, "head busser points (default from config)")
	return cmd
}
