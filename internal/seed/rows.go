package seed

import (
	"strconv"
	"strings"
)

const (
	listSeparator = ";"
	daySeparator  = "|"
)

// header maps lower-cased column names to their index.
type header map[string]int

func newHeader(cells []string) header {
	h := make(header, len(cells))
	for i, c := range cells {
		name := strings.ToLower(strings.TrimSpace(c))
		if _, dup := h[name]; name != "" && !dup {
			h[name] = i
		}
	}
	return h
}

type cellError struct {
	column string
	msg    string
}

func (e *cellError) Error() string { return e.column + ": " + e.msg }

type sheetRow struct {
	header header
	cells  []string
	line   int
	first  *cellError
}

func (r *sheetRow) fail(column, msg string) {
	if r.first == nil {
		r.first = &cellError{column: column, msg: msg}
	}
}

func (r *sheetRow) err() error {
	if r.first == nil {
		return nil
	}
	return r.first
}

func (r *sheetRow) str(column string) string {
	i, ok := r.header[strings.ToLower(column)]
	if !ok || i >= len(r.cells) {
		return ""
	}
	return strings.TrimSpace(r.cells[i])
}

func (r *sheetRow) int(column string) int {
	raw := r.str(column)
	if raw == "" {
		return 0
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		r.fail(column, "must be an integer")
	}
	return n
}

func (r *sheetRow) intPtr(column string) *int {
	if r.str(column) == "" {
		return nil
	}
	n := r.int(column)
	return &n
}

func (r *sheetRow) float(column string) float64 {
	raw := strings.TrimPrefix(r.str(column), "$")
	if raw == "" {
		return 0
	}
	f, err := strconv.ParseFloat(strings.ReplaceAll(raw, ",", ""), 64)
	if err != nil {
		r.fail(column, "must be a number")
	}
	return f
}

func (r *sheetRow) boolPtr(column string) *bool {
	raw := strings.ToLower(r.str(column))
	var v bool
	switch raw {
	case "":
		return nil
	case "yes", "y":
		v = true
	case "no", "n":
		v = false
	default:
		parsed, err := strconv.ParseBool(raw)
		if err != nil {
			r.fail(column, "must be true or false")
			return nil
		}
		v = parsed
	}
	return &v
}

// list splits "a; b; c" and drops empty items.
func (r *sheetRow) list(column string) []string {
	out := []string{}
	for _, part := range strings.Split(r.str(column), listSeparator) {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// days parses "Day 1: Arrive Arusha | Day 2: Tarangire".
func (r *sheetRow) days(column string) map[string]string {
	out := map[string]string{}
	raw := r.str(column)
	if raw == "" {
		return out
	}
	for _, part := range strings.Split(raw, daySeparator) {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		day, text, ok := strings.Cut(part, ":")
		if !ok || strings.TrimSpace(day) == "" {
			r.fail(column, "entries must look like \"Day 1: text\"")
			return out
		}
		out[strings.TrimSpace(day)] = strings.TrimSpace(text)
	}
	return out
}

func blank(cells []string) bool {
	for _, c := range cells {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}
