// Package models defines the shift sheet documents that feed the tipout
// calculator.
//
// # Shift Sheet
//
// A ShiftSheet is what a manager fills in at close:
//   - Financials: non-cash tips and sales totals from the POS
//   - Roster: who worked the floor, as raw text per channel
//   - Staffing: busser and bartender counts and the barback/expo switches
//
// Roster text is kept raw. Parsing happens in the calculator so that a
// sheet read from YAML, a form, or an RPC goes through the same checks.
//
// # Design Principles
//
// 1. **Plain data**: sheets carry no behavior beyond conversion to engine inputs
// 2. **No history**: a sheet describes one shift and is discarded after the calculation
// 3. **Optional overrides**: zero point values fall back to the house defaults
package models
