package printing

import (
	"fmt"
	"strconv"
	"strings"

	"glass_office/internal/models"

	"github.com/shopspring/decimal"
)

// Line is a line item after synonym normalization. Every view reads from Line, never
// from the raw item.
type Line struct {
	Index       int
	Qty         string
	Label       string
	Description string
	UnitPrice   string
	Total       string
	Size        string
	Glass       string
	Thickness   string
	Edge        string
	Tempered    string
	TicketNotes string
	PackNotes   string
}

// NormalizeItem maps a loosely-typed item onto a Line. index is 1-based.
func NormalizeItem(index int, it models.Item) Line {
	l := Line{
		Index:       index,
		Qty:         text(coalesce(it, "qty", "quantity")),
		Label:       text(firstTruthy(it, "description", "name")),
		UnitPrice:   money(coalesce(it, "unitPrice", "price")),
		Total:       money(coalesce(it, "total", "lineTotal")),
		Glass:       text(firstTruthy(it, "glassType", "type")),
		Thickness:   text(firstTruthy(it, "thickness", "thk")),
		TicketNotes: text(firstTruthy(it, "notes", "instructions", "descNotes", "description")),
		PackNotes:   text(firstTruthy(it, "notes", "instructions")),
	}

	dims := ""
	if truthy(it["width"]) && truthy(it["height"]) {
		dims = text(it["width"]) + " x " + text(it["height"])
	}
	l.Size = dims
	if l.Size == "" {
		l.Size = text(firstTruthy(it, "size"))
	}

	if edge := text(firstTruthy(it, "edgework")); edge != "" {
		l.Edge = edge
	} else if truthy(it["bevel"]) {
		l.Edge = strings.TrimSpace("Bevel " + text(it["bevelWidth"]))
	}
	if truthy(it["tempered"]) || truthy(it["temp"]) {
		l.Tempered = "YES"
	}

	if d := coalesce(it, "description", "name"); d != nil {
		l.Description = text(d)
	} else {
		var parts []string
		if l.Glass != "" {
			parts = append(parts, l.Glass)
		}
		if thk := text(firstTruthy(it, "thickness")); thk != "" {
			parts = append(parts, thk)
		}
		if dims != "" {
			parts = append(parts, dims)
		}
		if truthy(it["edgework"]) || truthy(it["bevel"]) {
			bevelWidth := ""
			if truthy(it["bevel"]) {
				bevelWidth = text(it["bevelWidth"])
			}
			parts = append(parts, strings.TrimSpace(fmt.Sprintf("Edge/Bevel: %s %s", text(it["edgework"]), bevelWidth)))
		}
		if notes := text(firstTruthy(it, "notes")); notes != "" {
			parts = append(parts, notes)
		}
		l.Description = strings.Join(parts, " • ")
	}
	return l
}

// NormalizeItems normalizes a whole item list.
func NormalizeItems(items []models.Item) []Line {
	lines := make([]Line, 0, len(items))
	for i, it := range items {
		lines = append(lines, NormalizeItem(i+1, it))
	}
	return lines
}

// coalesce returns the first key whose value is present and non-null.
func coalesce(it models.Item, keys ...string) any {
	for _, k := range keys {
		if v, ok := it[k]; ok && v != nil {
			return v
		}
	}
	return nil
}

// firstTruthy returns the first value that is not empty, zero or false.
func firstTruthy(it models.Item, keys ...string) any {
	for _, k := range keys {
		if v := it[k]; truthy(v) {
			return v
		}
	}
	return nil
}

func truthy(v any) bool {
	switch t := v.(type) {
	case nil:
		return false
	case string:
		return t != ""
	case bool:
		return t
	case float64:
		return t != 0
	case int:
		return t != 0
	default:
		return true
	}
}

func text(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(t)
	default:
		return fmt.Sprint(t)
	}
}

// money formats a loosely-typed amount with two decimals; blank when absent or not a number.
func money(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case float64:
		return decimal.NewFromFloat(t).StringFixed(2)
	case int:
		return decimal.NewFromInt(int64(t)).StringFixed(2)
	case string:
		d, err := decimal.NewFromString(strings.TrimSpace(t))
		if err != nil {
			return ""
		}
		return d.StringFixed(2)
	default:
		return ""
	}
}
