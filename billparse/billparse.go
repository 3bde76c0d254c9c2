// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package billparse

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/danielhkuo/ecowatt/models"
)

// Placeholders written for fields the summary did not provide
const (
	NotFound    = "Not found"
	NotProvided = "Not provided"
)

var (
	cidArtifact = regexp.MustCompile(`\(cid:\d+\)`)
	whitespace  = regexp.MustCompile(`\s+`)
	fieldLine   = regexp.MustCompile(`^([A-Za-z][A-Za-z ]*?)\s*:\s*(.*)$`)
)

var expectedFields = map[string][]string{
	models.BillElectricity: {
		"Name", "Address", "Bill Amount", "Due Date", "Account Number", "Billing Period",
		"Additional Instructions", "Cost Fluctuations", "Monthly Comparison", "Consumption History",
		"Average Daily Consumption", "Energy Efficiency Tips", "Additional Parameters",
		"Current units consumed", "Goal units", "Subsidies Unit", "Challenges",
	},
	models.BillWater: {
		"Name", "Water Usage", "Bill Cycle", "Current Consumption Units", "Current Consumption Days",
		"Bill History", "Billing Period", "Bill Date", "Account Number", "Due Date", "Bill Amount",
		"Additional Instructions", "Cost Fluctuations", "Monthly Comparison", "Average Daily Consumption",
		"Water Efficiency Tips", "Subsidies Unit", "Goal units", "Challenges",
	},
}

// column name -> summary key it may arrive under
var columnAliases = map[string]string{
	"avg_daily_consumption": "average_daily_consumption",
}

// Summary is a parsed bill keyed by normalised field name.
type Summary map[string]string

// ValidKind reports whether kind names a supported bill type.
func ValidKind(kind string) bool {
	_, ok := expectedFields[kind]
	return ok
}

// Clean strips markdown emphasis and PDF glyph artifacts and collapses whitespace.
func Clean(text string) string {
	text = strings.ReplaceAll(text, "**", "")
	text = cidArtifact.ReplaceAllString(text, "")
	return strings.TrimSpace(whitespace.ReplaceAllString(text, " "))
}

// FieldKey normalises a field label: "Bill Amount" -> "bill_amount".
func FieldKey(label string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(label)), " ", "_")
}

// Parse extracts "Field: Value" pairs from a bill summary.
// Every expected field of the kind starts as NotFound. An entry begins on a
// bullet line ("-" or "•") or on a line shaped like "Label: value"; other
// lines continue the current value.
func Parse(text, kind string, now time.Time) (Summary, error) {
	fields, ok := expectedFields[kind]
	if !ok {
		return nil, fmt.Errorf("unsupported bill type %q", kind)
	}

	summary := Summary{
		"bill_type": kind,
		"timestamp": now.Format(time.RFC3339),
	}
	for _, f := range fields {
		summary[FieldKey(f)] = NotFound
	}

	var key string
	var value strings.Builder
	flush := func() {
		if key != "" {
			summary[key] = Clean(value.String())
		}
		key = ""
		value.Reset()
	}

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(strings.ReplaceAll(line, "**", ""))
		bullet := strings.HasPrefix(line, "-") || strings.HasPrefix(line, "•")
		if bullet {
			line = strings.TrimSpace(strings.TrimLeft(line, "-•"))
		}

		if m := fieldLine.FindStringSubmatch(line); m != nil {
			flush()
			key = FieldKey(m[1])
			value.WriteString(m[2])
			continue
		}

		if bullet {
			// bullet without a label ends the current value
			flush()
			continue
		}

		if key != "" && line != "" {
			value.WriteByte(' ')
			value.WriteString(line)
		}
	}
	flush()

	return summary, nil
}

// Columns maps a summary onto the bill table columns of kind, in insert
// order. Missing values become NotProvided; electricity peak_usage_hours is
// never extracted.
func Columns(kind string, s Summary) ([]string, []string) {
	var cols []string
	switch kind {
	case models.BillElectricity:
		cols = models.ElectricityBillColumns
	case models.BillWater:
		cols = models.WaterBillColumns
	default:
		return nil, nil
	}

	values := make([]string, len(cols))
	for i, col := range cols {
		v, ok := s[col]
		if !ok {
			if alias, has := columnAliases[col]; has {
				v, ok = s[alias]
			}
		}
		if !ok {
			v = NotProvided
		}
		values[i] = v
	}

	if kind == models.BillElectricity {
		for i, col := range cols {
			if col == "peak_usage_hours" {
				values[i] = NotProvided
			}
		}
	}

	return cols, values
}
