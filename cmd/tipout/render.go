package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"connectrpc.com/connect"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/mmynk/tipout/internal/service"
)

var (
	tableBorder = lipgloss.RoundedBorder()
	borderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	bodyStyle   = lipgloss.NewStyle().Padding(0, 1)
	amountStyle = bodyStyle.Align(lipgloss.Right)
	warnStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	errStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true)
)

// cellStyle pads every cell and right-aligns column amountCol; -1 for none.
func cellStyle(amountCol int) table.StyleFunc {
	return func(row, col int) lipgloss.Style {
		switch {
		case row == table.HeaderRow:
			return headerStyle
		case col == amountCol:
			return amountStyle
		default:
			return bodyStyle
		}
	}
}

func commandContext(cmd *cobra.Command, root *rootOptions) (context.Context, context.CancelFunc) {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithTimeout(ctx, root.timeout)
}

func renderResult(w io.Writer, name string, res *service.CalculateResponse) {
	if name != "" {
		fmt.Fprintln(w, headerStyle.UnsetPadding().Render(name))
	}

	t := table.New().
		Border(tableBorder).
		BorderStyle(borderStyle).
		StyleFunc(cellStyle(2)).
		Headers("Role", "Person", "Amount", "Basis")
	for _, r := range res.Rows {
		t.Row(r.Role, r.PersonLabel, formatMoney(r.Amount), r.BasisNote)
	}
	fmt.Fprintln(w, t.Render())

	s := res.Summary
	fmt.Fprintf(w, "Point value %s/pt  |  Total points %s  |  Split total %s  |  Bar pool %s\n",
		formatMoney(s.PointValue), formatPoints(s.TotalPoints), formatMoney(s.SplitTotal), formatMoney(s.BarPoolPostExpo))

	if res.Bussers != nil && res.Bussers.Count > 0 {
		fmt.Fprintf(w, "Each busser takes %s\n", formatMoney(res.Bussers.Each))
	}
	if res.Bar != nil && res.Bar.Bartenders > 1 {
		fmt.Fprintf(w, "Each bartender takes %s\n", formatMoney(res.Bar.BartenderEach))
	}
	if v := res.Verification; v != nil && (!isZeroCents(v.FloorGap) || !isZeroCents(v.BarGap)) {
		fmt.Fprintln(w, warnStyle.Render(fmt.Sprintf("Rounding: floor off by %s, bar off by %s",
			formatMoney(v.FloorGap), formatMoney(v.BarGap))))
	}
	for _, warning := range res.Warnings {
		fmt.Fprintln(w, warnStyle.Render("warning: "+warning))
	}
}

// describeError prints the reasons a request was rejected and returns err
// for cobra to surface as the exit status.
func describeError(w io.Writer, err error) error {
	var connectErr *connect.Error
	if !errors.As(err, &connectErr) {
		fmt.Fprintln(w, errStyle.Render("error: ")+err.Error())
		return err
	}

	fmt.Fprintln(w, errStyle.Render(connectErr.Code().String()+":"))
	for _, line := range strings.Split(connectErr.Message(), "\n") {
		fmt.Fprintln(w, "  "+line)
	}
	if tokens := connectErr.Meta().Values(service.MalformedTokenHeader); len(tokens) > 0 {
		fmt.Fprintf(w, "Fix these roster entries: %s\n", strings.Join(tokens, ", "))
	}
	return err
}

func formatMoney(v float64) string {
	if v < 0 {
		return "-$" + strconv.FormatFloat(-v, 'f', 2, 64)
	}
	return "$" + strconv.FormatFloat(v, 'f', 2, 64)
}

func formatPoints(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func formatRate(v float64) string {
	return strconv.FormatFloat(math.Round(v*10000)/100, 'f', -1, 64) + "%"
}

func isZeroCents(v float64) bool {
	return math.Abs(v) < 0.005
}
