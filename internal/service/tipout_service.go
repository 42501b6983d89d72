package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"connectrpc.com/connect"
	"github.com/shopspring/decimal"

	"github.com/mmynk/tipout/internal/calculator"
	"github.com/mmynk/tipout/internal/middleware"
	"github.com/mmynk/tipout/pkg/metrics"
)

// MalformedTokenHeader lists each rejected roster token on an
// invalid-argument error.
const MalformedTokenHeader = "Tipout-Malformed-Token"

// TipoutService implements the Connect TipoutService.
type TipoutService struct {
	defaults calculator.AllocationConfig
	metrics  *metrics.Manager
}

// NewTipoutService creates a TipoutService. Requests start from defaults
// for point values and the roster separator.
func NewTipoutService(defaults calculator.AllocationConfig, m *metrics.Manager) *TipoutService {
	if m == nil {
		m = metrics.NewManager(metrics.WithMetricsEnabled(false))
	}
	return &TipoutService{defaults: defaults, metrics: m}
}

// Calculate runs the allocation for one shift sheet.
func (s *TipoutService) Calculate(ctx context.Context, req *connect.Request[CalculateRequest]) (*connect.Response[CalculateResponse], error) {
	fin, in, cfg := req.Msg.EngineInputs(s.defaults)
	requestID := middleware.GetRequestID(ctx)

	slog.Debug("Calculate request",
		"request_id", requestID,
		"sheet", req.Msg.Name,
		"bussers", cfg.NumBussers,
		"bartenders", cfg.NumBartenders,
		"barback", cfg.BarbackWorking,
		"expo_with_bussers", cfg.SumExpoWithBussers,
	)

	start := time.Now()
	res, err := calculator.Calculate(fin, in, cfg)
	if err != nil {
		s.metrics.RecordCalculation(outcomeOf(err), 0, 0)
		slog.Warn("Calculate rejected", "request_id", requestID, "error", err)
		return nil, invalidArgument(err)
	}
	s.metrics.RecordCalculation(metrics.OutcomeOK, time.Since(start), len(res.Roster))

	for _, row := range res.Rows {
		slog.Debug("Payout",
			"request_id", requestID,
			"role", row.Role,
			"person", row.PersonLabel,
			"amount", row.Amount.StringFixed(2),
			"basis", row.BasisNote,
		)
	}
	for _, w := range res.Warnings {
		slog.Info("Calculation warning", "request_id", requestID, "warning", w)
	}
	if res.Summary.TotalPoints.IsZero() {
		s.metrics.RecordZeroPoints()
	}
	if res.Summary.SplitTotal.IsNegative() {
		s.metrics.RecordNegativePool("floor")
	}
	if res.Summary.BarPoolPostExpo.IsNegative() {
		s.metrics.RecordNegativePool("bar")
	}

	return connect.NewResponse(toCalculateResponse(res)), nil
}

// ParseRoster validates roster text and returns the parsed entries.
func (s *TipoutService) ParseRoster(ctx context.Context, req *connect.Request[ParseRosterRequest]) (*connect.Response[ParseRosterResponse], error) {
	cfg := s.defaults
	if req.Msg.HeadBusserPoints != 0 {
		cfg.HeadBusserPointValue = req.Msg.HeadBusserPoints
	}
	if r := []rune(req.Msg.Roster.Separator); len(r) == 1 {
		cfg.Separator = r[0]
	} else if len(r) > 1 {
		cfg.Separator = -1
	}
	if err := calculator.Validate(calculator.ShiftFinancials{}, cfg); err != nil {
		return nil, invalidArgument(err)
	}

	entries, err := calculator.ParseRoster(calculator.RosterInput{
		Servers:     req.Msg.Roster.Servers,
		Adjusted:    req.Msg.Roster.Adjusted,
		HeadBussers: req.Msg.Roster.HeadBussers,
	}, cfg)
	if err != nil {
		slog.Warn("ParseRoster rejected", "request_id", middleware.GetRequestID(ctx), "error", err)
		return nil, invalidArgument(err)
	}

	named := decimal.Zero
	for _, e := range entries {
		named = named.Add(e.Points)
	}
	sep := cfg.Separator
	if sep == 0 {
		sep = '='
	}

	return connect.NewResponse(&ParseRosterResponse{
		Entries:     toStaffEntries(entries),
		NamedPoints: named.InexactFloat64(),
		Adjusted:    calculator.FormatAdjusted(entries, sep),
	}), nil
}

// HouseRules returns the fixed house rates and this server's defaults.
func (s *TipoutService) HouseRules(ctx context.Context, req *connect.Request[HouseRulesRequest]) (*connect.Response[HouseRulesResponse], error) {
	sep := s.defaults.Separator
	if sep == 0 {
		sep = '='
	}
	return connect.NewResponse(&HouseRulesResponse{
		HouseFeeRate:         calculator.HouseFeeRate,
		BeverageTipoutRate:   calculator.BeverageTipoutRate,
		WineTipoutRate:       calculator.WineTipoutRate,
		ExpoFoodRate:         calculator.ExpoFoodRate,
		BarbackRate:          calculator.BarbackRate,
		ServerPoints:         calculator.ServerPoints,
		HeadBusserPoints:     s.defaults.HeadBusserPointValue,
		StandardBusserPoints: s.defaults.StandardBusserPointValue,
		RosterSeparator:      string(sep),
	}), nil
}

func outcomeOf(err error) string {
	if errors.Is(err, calculator.ErrInvalidConfig) {
		return metrics.OutcomeInvalidConfig
	}
	return metrics.OutcomeMalformedEntry
}

// invalidArgument wraps a validation error for the client and lists every
// malformed roster token in the error metadata.
func invalidArgument(err error) *connect.Error {
	connectErr := connect.NewError(connect.CodeInvalidArgument, err)
	for _, tok := range malformedTokens(err) {
		connectErr.Meta().Add(MalformedTokenHeader, tok)
	}
	return connectErr
}

func malformedTokens(err error) []string {
	switch e := err.(type) {
	case *calculator.MalformedEntryError:
		return []string{e.Token}
	case interface{ Unwrap() []error }:
		var tokens []string
		for _, inner := range e.Unwrap() {
			tokens = append(tokens, malformedTokens(inner)...)
		}
		return tokens
	}
	return nil
}
