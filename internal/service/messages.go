package service

import "github.com/mmynk/tipout/internal/models"

// CalculateRequest is a full shift sheet.
type CalculateRequest struct {
	models.ShiftSheet
}

// CalculateResponse is the allocation result. Money is in dollars,
// finalized to cents except PointValue and SplitTotal, which keep full
// precision for display of the per-point rate.
type CalculateResponse struct {
	Rows         []*Row        `json:"rows"`
	Roster       []*StaffEntry `json:"roster"`
	Summary      *Summary      `json:"summary"`
	Pools        *Pools        `json:"pools"`
	Bussers      *Bussers      `json:"bussers"`
	Bar          *Bar          `json:"bar"`
	Verification *Verification `json:"verification"`
	Warnings     []string      `json:"warnings,omitempty"`
}

// Row is one payout line, in display order.
type Row struct {
	Role        string  `json:"role"`
	PersonLabel string  `json:"person_label"`
	Amount      float64 `json:"amount"`
	BasisNote   string  `json:"basis_note"`
	Pool        string  `json:"pool"`
}

type Summary struct {
	PointValue      float64 `json:"point_value"`
	TotalPoints     float64 `json:"total_points"`
	SplitTotal      float64 `json:"split_total"`
	BarPoolPostExpo float64 `json:"bar_pool_post_expo"`
}

type Pools struct {
	NetServerTips        float64 `json:"net_server_tips"`
	NetBarTips           float64 `json:"net_bar_tips"`
	BarTipoutFromServers float64 `json:"bar_tipout_from_servers"`
	BarPoolPreExpo       float64 `json:"bar_pool_pre_expo"`
	ExpoFinal            float64 `json:"expo_final"`
}

type Bussers struct {
	Count        int     `json:"count"`
	FloorShare   float64 `json:"floor_share"`
	Total        float64 `json:"total"`
	Each         float64 `json:"each"`
	IncludesExpo bool    `json:"includes_expo"`
}

type Bar struct {
	BarbackFinal  float64 `json:"barback_final"`
	SoloBarFinal  float64 `json:"solo_bar_final"`
	BartenderEach float64 `json:"bartender_each"`
	Bartenders    int     `json:"bartenders"`
}

type Verification struct {
	FloorPaid float64 `json:"floor_paid"`
	FloorGap  float64 `json:"floor_gap"`
	BarPaid   float64 `json:"bar_paid"`
	BarGap    float64 `json:"bar_gap"`
}

// StaffEntry is one parsed roster line.
type StaffEntry struct {
	Name     string  `json:"name"`
	Points   float64 `json:"points"`
	Category string  `json:"category"`
}

// ParseRosterRequest checks roster text without running a calculation.
type ParseRosterRequest struct {
	Roster models.Roster `json:"roster"`
	// HeadBusserPoints overrides the house value when non-zero.
	HeadBusserPoints float64 `json:"head_busser_points,omitempty"`
}

type ParseRosterResponse struct {
	Entries []*StaffEntry `json:"entries"`
	// NamedPoints excludes unnamed standard bussers.
	NamedPoints float64 `json:"named_points"`
	// Adjusted is the roster re-rendered as name<sep>points pairs.
	Adjusted string `json:"adjusted"`
}

type HouseRulesRequest struct{}

// HouseRulesResponse lists the fixed rates and this server's point defaults.
type HouseRulesResponse struct {
	HouseFeeRate         float64 `json:"house_fee_rate"`
	BeverageTipoutRate   float64 `json:"beverage_tipout_rate"`
	WineTipoutRate       float64 `json:"wine_tipout_rate"`
	ExpoFoodRate         float64 `json:"expo_food_rate"`
	BarbackRate          float64 `json:"barback_rate"`
	ServerPoints         float64 `json:"server_points"`
	HeadBusserPoints     float64 `json:"head_busser_points"`
	StandardBusserPoints float64 `json:"standard_busser_points"`
	RosterSeparator      string  `json:"roster_separator"`
}
