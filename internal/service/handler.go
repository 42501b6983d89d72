package service

import (
	"context"
	"net/http"
	"strings"

	"connectrpc.com/connect"
)

// TipoutServiceName is the fully-qualified name of the tipout service.
const TipoutServiceName = "tipout.v1.TipoutService"

// Procedure paths, relative to the server root.
const (
	TipoutServiceCalculateProcedure   = "/tipout.v1.TipoutService/Calculate"
	TipoutServiceParseRosterProcedure = "/tipout.v1.TipoutService/ParseRoster"
	TipoutServiceHouseRulesProcedure  = "/tipout.v1.TipoutService/HouseRules"
)

// NewTipoutServiceHandler builds an HTTP handler for svc. It returns the
// path prefix to mount the handler on.
func NewTipoutServiceHandler(svc *TipoutService, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = append([]connect.HandlerOption{
		connect.WithCodec(jsonCodec{name: codecNameJSON}),
		connect.WithCodec(jsonCodec{name: codecNameJSONCharset}),
	}, opts...)

	mux := http.NewServeMux()
	mux.Handle(TipoutServiceCalculateProcedure,
		connect.NewUnaryHandler(TipoutServiceCalculateProcedure, svc.Calculate, opts...))
	mux.Handle(TipoutServiceParseRosterProcedure,
		connect.NewUnaryHandler(TipoutServiceParseRosterProcedure, svc.ParseRoster, opts...))
	mux.Handle(TipoutServiceHouseRulesProcedure,
		connect.NewUnaryHandler(TipoutServiceHouseRulesProcedure, svc.HouseRules, opts...))

	return "/" + TipoutServiceName + "/", mux
}

// TipoutServiceClient calls a remote TipoutService.
type TipoutServiceClient struct {
	calculate   *connect.Client[CalculateRequest, CalculateResponse]
	parseRoster *connect.Client[ParseRosterRequest, ParseRosterResponse]
	houseRules  *connect.Client[HouseRulesRequest, HouseRulesResponse]
}

// NewTipoutServiceClient returns a client for the service at baseURL,
// e.g. http://localhost:8080.
func NewTipoutServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) *TipoutServiceClient {
	baseURL = strings.TrimRight(baseURL, "/")
	opts = append([]connect.ClientOption{connect.WithCodec(jsonCodec{name: codecNameJSON})}, opts...)

	return &TipoutServiceClient{
		calculate: connect.NewClient[CalculateRequest, CalculateResponse](
			httpClient, baseURL+TipoutServiceCalculateProcedure, opts...),
		parseRoster: connect.NewClient[ParseRosterRequest, ParseRosterResponse](
			httpClient, baseURL+TipoutServiceParseRosterProcedure, opts...),
		houseRules: connect.NewClient[HouseRulesRequest, HouseRulesResponse](
			httpClient, baseURL+TipoutServiceHouseRulesProcedure, opts...),
	}
}

// Calculate calls tipout.v1.TipoutService.Calculate.
func (c *TipoutServiceClient) Calculate(ctx context.Context, req *connect.Request[CalculateRequest]) (*connect.Response[CalculateResponse], error) {
	return c.calculate.CallUnary(ctx, req)
}

// ParseRoster calls tipout.v1.TipoutService.ParseRoster.
func (c *TipoutServiceClient) ParseRoster(ctx context.Context, req *connect.Request[ParseRosterRequest]) (*connect.Response[ParseRosterResponse], error) {
	return c.parseRoster.CallUnary(ctx, req)
}

// HouseRules calls tipout.v1.TipoutService.HouseRules.
func (c *TipoutServiceClient) HouseRules(ctx context.Context, req *connect.Request[HouseRulesRequest]) (*connect.Response[HouseRulesResponse], error) {
	return c.houseRules.CallUnary(ctx, req)
}
