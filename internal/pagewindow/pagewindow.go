// Package pagewindow computes the bounded, ellipsis-compressed sequence of
// page controls shown under the result table. Pure arithmetic; no state.
package pagewindow

import "strconv"

// MaxVisible is the largest number of tokens WindowFor emits.
const MaxVisible = 7

// Token is one pager control: a page number or an elision marker.
type Token struct {
	Page     int
	Ellipsis bool
}

// Ellipsis is the elision marker token.
var Ellipsis = Token{Ellipsis: true}

// PageToken builds a numbered token.
func PageToken(n int) Token {
	return Token{Page: n}
}

func (t Token) String() string {
	if t.Ellipsis {
		return "…"
	}
	return strconv.Itoa(t.Page)
}

// WindowFor returns the pager tokens for the given position. Single-page
// and empty result sets get no tokens at all. With more than MaxVisible
// pages the first and last page are always present and the middle is
// compressed around current.
func WindowFor(current, total int) []Token {
	if total <= 1 {
		return nil
	}
	if total <= MaxVisible {
		out := make([]Token, 0, total)
		for p := 1; p <= total; p++ {
			out = append(out, PageToken(p))
		}
		return out
	}

	out := make([]Token, 0, MaxVisible)
	out = append(out, PageToken(1))

	switch {
	case current <= 4:
		for p := 2; p <= 5; p++ {
			out = append(out, PageToken(p))
		}
		out = append(out, Ellipsis)
	case current >= total-3:
		out = append(out, Ellipsis)
		for p := total - 3; p <= total-1; p++ {
			out = append(out, PageToken(p))
		}
	default:
		out = append(out, Ellipsis)
		for p := current - 1; p <= current+1; p++ {
			out = append(out, PageToken(p))
		}
		out = append(out, Ellipsis)
	}

	return append(out, PageToken(total))
}
