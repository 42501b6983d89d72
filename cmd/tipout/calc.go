package main

import (
	"fmt"
	"os"

	"connectrpc.com/connect"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/mmynk/tipout/internal/models"
	"github.com/mmynk/tipout/internal/service"
)

func newCalcCmd(root *rootOptions) *cobra.Command {
	var (
		sheetPath string
		sheet     models.ShiftSheet
	)

	cmd := &cobra.Command{
		Use:   "calc",
		Short: "Calculate the tip-out for one shift",
		Long: `Calculates every payout for a shift from its POS totals and roster.

Inputs come from a YAML shift sheet, flags, or both; flags override the sheet.

Example:
  tipout calc --server-tips 2187 --bar-tips 820.96 --beverage-sales 2300.85 \
    --wine-sales 1475 --food-cost 1148.75 \
    --adjusted "Bryan=2, Riley=2, Saige=2, Roxy=1.5" --bussers 3`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			merged := models.ShiftSheet{}
			if sheetPath != "" {
				loaded, err := readSheet(sheetPath)
				if err != nil {
					return err
				}
				merged = loaded
			}
			overlayFlags(cmd, &merged, sheet)

			api, err := root.api()
			if err != nil {
				return err
			}

			ctx, cancel := commandContext(cmd, root)
			defer cancel()

			resp, err := api.Calculate(ctx, connect.NewRequest(&service.CalculateRequest{ShiftSheet: merged}))
			if err != nil {
				return describeError(cmd.ErrOrStderr(), err)
			}
			renderResult(cmd.OutOrStdout(), merged.Name, resp.Msg)
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVar(&sheetPath, "sheet", "", "YAML shift sheet")
	f.StringVar(&sheet.Name, "name", "", "label for the shift")

	f.Float64Var(&sheet.Financials.ServerNonCashTips, "server-tips", 0, "server non-cash tips")
	f.Float64Var(&sheet.Financials.BarNonCashTips, "bar-tips", 0, "bar non-cash tips")
	f.Float64Var(&sheet.Financials.BeverageSales, "beverage-sales", 0, "beverage sales")
	f.Float64Var(&sheet.Financials.WineSales, "wine-sales", 0, "wine sales")
	f.Float64Var(&sheet.Financials.FoodCost, "food-cost", 0, "food cost")

	addRosterFlags(f, &sheet.Roster)

	f.IntVar(&sheet.Staffing.NumBussers, "bussers", 0, "number of standard bussers")
	f.IntVar(&sheet.Staffing.NumBartenders, "bartenders", 1, "number of bartenders")
	f.BoolVar(&sheet.Staffing.BarbackWorking, "barback", false, "a barback is working")
	f.BoolVar(&sheet.Staffing.SumExpoWithBussers, "expo-with-bussers", false, "pool expo with the bussers")
	f.Float64Var(&sheet.Staffing.HeadBusserPoints, "head-busser-points", 0, "head busser points (default from config)")
	f.Float64Var(&sheet.Staffing.StandardBusserPoints, "standard-busser-points", 0, "standard busser points (default from config)")

	return cmd
}

func readSheet(path string) (models.ShiftSheet, error) {
	var sheet models.ShiftSheet
	data, err := os.ReadFile(path)
	if err != nil {
		return sheet, fmt.Errorf("read shift sheet: %w", err)
	}
	if err := yaml.Unmarshal(data, &sheet); err != nil {
		return sheet, fmt.Errorf("parse shift sheet %s: %w", path, err)
	}
	return sheet, nil
}

// overlayFlags copies every flag the user set from flags onto dst.
func overlayFlags(cmd *cobra.Command, dst *models.ShiftSheet, flags models.ShiftSheet) {
	set := cmd.Flags().Changed
	if set("name") {
		dst.Name = flags.Name
	}
	if set("server-tips") {
		dst.Financials.ServerNonCashTips = flags.Financials.ServerNonCashTips
	}
	if set("bar-tips") {
		dst.Financials.BarNonCashTips = flags.Financials.BarNonCashTips
	}
	if set("beverage-sales") {
		dst.Financials.BeverageSales = flags.Financials.BeverageSales
	}
	if set("wine-sales") {
		dst.Financials.WineSales = flags.Financials.WineSales
	}
	if set("food-cost") {
		dst.Financials.FoodCost = flags.Financials.FoodCost
	}
	overlayRoster(cmd, &dst.Roster, flags.Roster)
	if set("bussers") {
		dst.Staffing.NumBussers = flags.Staffing.NumBussers
	}
	if set("bartenders") {
		dst.Staffing.NumBartenders = flags.Staffing.NumBartenders
	}
	if set("barback") {
		dst.Staffing.BarbackWorking = flags.Staffing.BarbackWorking
	}
	if set("expo-with-bussers") {
		dst.Staffing.SumExpoWithBussers = flags.Staffing.SumExpoWithBussers
	}
	if set("head-busser-points") {
		dst.Staffing.HeadBusserPoints = flags.Staffing.HeadBusserPoints
	}
	if set("standard-busser-points") {
		dst.Staffing.StandardBusserPoints = flags.Staffing.StandardBusserPoints
	}
}
