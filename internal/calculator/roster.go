package calculator

import (
	"errors"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// Category identifies which input channel a staff entry came from.
type Category int

const (
	Server Category = iota
	AdjustedServer
	HeadBusser
	StandardBusser
)

func (c Category) String() string {
	switch c {
	case Server:
		return "server"
	case AdjustedServer:
		return "adjusted_server"
	case HeadBusser:
		return "head_busser"
	case StandardBusser:
		return "standard_busser"
	default:
		return "unknown"
	}
}

// StaffEntry is one weighted participant in the floor pool.
// Identical names are separate ledger lines and are never merged.
type StaffEntry struct {
	Name     string
	Points   decimal.Decimal
	Category Category
}

// RosterInput carries the raw roster text, one string per channel.
type RosterInput struct {
	// Servers lists names paid at ServerPoints.
	Servers string
	// Adjusted lists name<sep>points pairs with custom weights.
	Adjusted string
	// HeadBussers lists names paid at the head busser point value.
	HeadBussers string
}

// ParseRoster turns the raw roster text into staff entries, ordered
// servers, adjusted servers, then head bussers. Standard bussers are not
// named and produce no entries.
//
// Names may not contain the separator, so every entry can be written back
// as a name<sep>points pair. Every malformed token is reported; the
// returned error joins one *MalformedEntryError per bad token.
func ParseRoster(in RosterInput, cfg AllocationConfig) ([]StaffEntry, error) {
	sep := cfg.separator()
	var entries []StaffEntry
	var errs []error

	serverPts := decimal.NewFromFloat(ServerPoints)
	for _, name := range splitTokens(in.Servers) {
		if err := checkName(name, sep); err != nil {
			errs = append(errs, err)
			continue
		}
		entries = append(entries, StaffEntry{Name: name, Points: serverPts, Category: Server})
	}

	for _, tok := range splitTokens(in.Adjusted) {
		entry, err := parsePair(tok, sep)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		entries = append(entries, entry)
	}

	heads := splitTokens(in.HeadBussers)
	if len(heads) > 0 {
		if !isFinite(cfg.HeadBusserPointValue) {
			return nil, &InvalidConfigError{Field: "headBusserPointValue", Reason: "must be a finite number"}
		}
		headPts := decimal.NewFromFloat(cfg.HeadBusserPointValue)
		for _, name := range heads {
			if err := checkName(name, sep); err != nil {
				errs = append(errs, err)
				continue
			}
			entries = append(entries, StaffEntry{Name: name, Points: headPts, Category: HeadBusser})
		}
	}

	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return entries, nil
}

func checkName(name string, sep rune) error {
	if strings.ContainsRune(name, sep) {
		return &MalformedEntryError{Token: name, Reason: "name contains the " + strconv.QuoteRune(sep) + " separator"}
	}
	return nil
}

// splitTokens splits on commas and newlines, trims, and drops empty tokens.
func splitTokens(raw string) []string {
	fields := strings.FieldsFunc(raw, func(r rune) bool {
		return r == ',' || r == '\n' || r == '\r'
	})
	tokens := make([]string, 0, len(fields))
	for _, f := range fields {
		if t := strings.TrimSpace(f); t != "" {
			tokens = append(tokens, t)
		}
	}
	return tokens
}

// parsePair splits a token on the first separator, so the name never
// contains it. Zero and negative points are accepted.
func parsePair(tok string, sep rune) (StaffEntry, error) {
	name, pts, ok := strings.Cut(tok, string(sep))
	if !ok {
		return StaffEntry{}, &MalformedEntryError{Token: tok, Reason: "missing " + strconv.QuoteRune(sep) + " separator"}
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return StaffEntry{}, &MalformedEntryError{Token: tok, Reason: "missing name"}
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(pts), 64)
	if err != nil || !isFinite(v) {
		return StaffEntry{}, &MalformedEntryError{Token: tok, Reason: "points must be a finite number"}
	}
	return StaffEntry{Name: name, Points: decimal.NewFromFloat(v), Category: AdjustedServer}, nil
}

// FormatAdjusted renders entries as a comma separated name<sep>points list
// that ParseRoster reads back as the same pairs. Entries from ParseRoster
// with the same separator always round-trip.
func FormatAdjusted(entries []StaffEntry, sep rune) string {
	parts := make([]string, len(entries))
	for i, e := range entries {
		parts[i] = e.Name + string(sep) + e.Points.String()
	}
	return strings.Join(parts, ", ")
}
