// Package rangequery implements the range-predicate construction and
// ascending-scan/final-descending pattern shared by the SQL-backed family
// query builders in pkg/families.
//
// For a primary key P with tie-breakers T1, T2, … and anchor (p, t1, t2,
// …), "strictly less" expands to the standard lexicographic predicate
// (P < p) OR (P = p AND T1 < t1) OR (P = p AND T1 = t1 AND T2 < t2) OR …
// "strictly greater" substitutes > throughout. Build is used for
// transactions (height, idx) and for mosaics and namespaces (start_height,
// id). Accounts apply the same lexicographic comparison in memory
// (pkg/families/accounts.go), and blocks use a direct height window
// (pkg/families/blocks.go); neither goes through this package.
package rangequery

import (
	"fmt"
	"strings"
)

// Direction is the page direction requested by the :duration path
// segment.
type Direction int

const (
	// From returns rows strictly less than the anchor, sorted descending
	// throughout — the store scan order already matches the presentation
	// order.
	From Direction = iota
	// Since returns rows strictly greater than the anchor. The store must
	// scan ascending (so the nearest-greater rows survive the LIMIT), then
	// the caller re-sorts descending for presentation.
	Since
)

// Predicate is a WHERE-clause fragment with its positional args, ready to
// be inlined after a base filter.
type Predicate struct {
	SQL  string
	Args []interface{}
}

// LessThan builds the "strictly less than anchor" lexicographic OR-chain
// over columns/anchor.
func LessThan(columns []string, anchor []interface{}) Predicate {
	return buildLexPredicate(columns, anchor, "<")
}

// GreaterThan builds the "strictly greater than anchor" lexicographic
// OR-chain over columns/anchor.
func GreaterThan(columns []string, anchor []interface{}) Predicate {
	return buildLexPredicate(columns, anchor, ">")
}

func buildLexPredicate(columns []string, anchor []interface{}, op string) Predicate {
	if len(columns) != len(anchor) {
		panic(fmt.Sprintf("rangequery: %d columns but %d anchor values", len(columns), len(anchor)))
	}

	var clauses []string
	var args []interface{}
	for i := range columns {
		var eq []string
		for j := 0; j < i; j++ {
			eq = append(eq, fmt.Sprintf("%s = ?", columns[j]))
			args = append(args, anchor[j])
		}
		eq = append(eq, fmt.Sprintf("%s %s ?", columns[i], op))
		args = append(args, anchor[i])
		clauses = append(clauses, "("+strings.Join(eq, " AND ")+")")
	}

	if len(clauses) == 1 {
		return Predicate{SQL: clauses[0], Args: args}
	}
	return Predicate{SQL: "(" + strings.Join(clauses, " OR ") + ")", Args: args}
}

// Query is a fully assembled SELECT built from a base filter plus a
// direction-aware range predicate and ORDER BY.
type Query struct {
	SQL           string
	Args          []interface{}
	NeedsReversal bool // true for Since: caller must reverse the scanned rows before returning them
}

// Build assembles `SELECT <select> FROM <table> [FINAL] WHERE <baseWhere> AND <predicate> ORDER BY <columns> <dir> LIMIT <count>`.
//
// columns is the sort-key tuple (primary key first, tie-breakers after);
// anchor holds the matching values. baseWhere/baseArgs are ANDed in ahead
// of the range predicate (e.g. an equality filter on a type discriminator
// for transactions-by-type). final controls whether FINAL is appended
// after the table name for ReplacingMergeTree dedup reads.
func Build(selectExpr, table string, final bool, baseWhere string, baseArgs []interface{}, columns []string, anchor []interface{}, dir Direction, count int) Query {
	var sb strings.Builder
	sb.WriteString("SELECT ")
	sb.WriteString(selectExpr)
	sb.WriteString(" FROM ")
	sb.WriteString(table)
	if final {
		sb.WriteString(" FINAL")
	}

	args := make([]interface{}, 0, len(baseArgs)+len(anchor))
	args = append(args, baseArgs...)

	var pred Predicate
	if dir == From {
		pred = LessThan(columns, anchor)
	} else {
		pred = GreaterThan(columns, anchor)
	}

	sb.WriteString(" WHERE ")
	if baseWhere != "" {
		sb.WriteString(baseWhere)
		sb.WriteString(" AND ")
	}
	sb.WriteString(pred.SQL)
	args = append(args, pred.Args...)

	sb.WriteString(" ORDER BY ")
	order := "DESC"
	if dir == Since {
		order = "ASC"
	}
	orderCols := make([]string, len(columns))
	for i, c := range columns {
		orderCols[i] = c + " " + order
	}
	sb.WriteString(strings.Join(orderCols, ", "))

	sb.WriteString(" LIMIT ?")
	args = append(args, count)

	return Query{SQL: sb.String(), Args: args, NeedsReversal: dir == Since}
}

// Reverse returns a new slice with s's elements in reverse order, used to
// turn an ascending "since" scan into the descending presentation order
// required by every user-visible page.
func Reverse[T any](s []T) []T {
	out := make([]T, len(s))
	for i, v := range s {
		out[len(s)-1-i] = v
	}
	return out
}
