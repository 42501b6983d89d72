package main

import (
	"fmt"

	"connectrpc.com/connect"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/mmynk/tipout/internal/service"
)

func newRulesCmd(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "rules",
		Short: "Show the house rates and point values",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			api, err := root.api()
			if err != nil {
				return err
			}

			ctx, cancel := commandContext(cmd, root)
			defer cancel()

			resp, err := api.HouseRules(ctx, connect.NewRequest(&service.HouseRulesRequest{}))
			if err != nil {
				return describeError(cmd.ErrOrStderr(), err)
			}
			r := resp.Msg

			t := table.New().
				Border(tableBorder).
				BorderStyle(borderStyle).
				StyleFunc(cellStyle(-1)).
				Headers("Rule", "Value").
				Row("House fee", formatRate(r.HouseFeeRate)+" of non-cash tips").
				Row("Beverage tip-out", formatRate(r.BeverageTipoutRate)+" of beverage sales").
				Row("Wine tip-out", formatRate(r.WineTipoutRate)+" of wine sales").
				Row("Expo", formatRate(r.ExpoFoodRate)+" of food cost").
				Row("Barback", formatRate(r.BarbackRate)+" of bar pool").
				Row("Server", formatPoints(r.ServerPoints)+" pts").
				Row("Head busser", formatPoints(r.HeadBusserPoints)+" pts").
				Row("Standard busser", formatPoints(r.StandardBusserPoints)+" pts").
				Row("Roster separator", fmt.Sprintf("%q", r.RosterSeparator))

			fmt.Fprintln(cmd.OutOrStdout(), t.Render())
			return nil
		},
	}
}
