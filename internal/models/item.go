package models

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// Item is a loosely-typed line item as entered by the office UI. Field names vary
// between screens (qty/quantity, unitPrice/price, ...); the printing package
// normalizes them.
type Item map[string]any

// Clone returns a deep copy, so snapshots do not share nested maps with their source.
func (it Item) Clone() Item {
	if it == nil {
		return nil
	}
	return cloneValue(map[string]any(it)).(map[string]any)
}

// CloneItems deep-copies a slice of items.
func CloneItems(items []Item) []Item {
	if items == nil {
		return nil
	}
	out := make([]Item, len(items))
	for i, it := range items {
		out[i] = it.Clone()
	}
	return out
}

func cloneValue(v any) any {
	switch t := v.(type) {
	case map[string]any:
		m := make(map[string]any, len(t))
		for k, val := range t {
			m[k] = cloneValue(val)
		}
		return m
	case Item:
		return Item(cloneValue(map[string]any(t)).(map[string]any))
	case []any:
		s := make([]any, len(t))
		for i, val := range t {
			s[i] = cloneValue(val)
		}
		return s
	default:
		return v
	}
}

// ParseSequence interprets a loosely-typed sequence value (JSON number or numeric
// string). ok is false for anything that is not a positive integer.
func ParseSequence(v any) (int64, bool) {
	var f float64
	switch t := v.(type) {
	case nil:
		return 0, false
	case float64:
		f = t
	case int:
		f = float64(t)
	case int64:
		f = float64(t)
	case json.Number:
		n, err := t.Float64()
		if err != nil {
			return 0, false
		}
		f = n
	case string:
		n, err := strconv.ParseFloat(strings.TrimSpace(t), 64)
		if err != nil {
			return 0, false
		}
		f = n
	default:
		return 0, false
	}
	if math.IsNaN(f) || math.IsInf(f, 0) || f <= 0 {
		return 0, false
	}
	return int64(f), true
}
