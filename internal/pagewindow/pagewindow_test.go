package pagewindow

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func pages(ns ...int) []Token {
	out := make([]Token, 0, len(ns))
	for _, n := range ns {
		if n == 0 {
			out = append(out, Ellipsis)
			continue
		}
		out = append(out, PageToken(n))
	}
	return out
}

func TestWindowFor(t *testing.T) {
	tests := []struct {
		name    string
		current int
		total   int
		want    []Token
	}{
		{"empty result set", 1, 0, nil},
		{"single page hides pager", 1, 1, nil},
		{"two pages", 1, 2, pages(1, 2)},
		{"exactly seven pages no elision", 4, 7, pages(1, 2, 3, 4, 5, 6, 7)},
		{"eight pages elides from page one", 1, 8, pages(1, 2, 3, 4, 5, 0, 8)},
		{"eight pages elides at boundary four", 4, 8, pages(1, 2, 3, 4, 5, 0, 8)},
		{"eight pages middle tips to tail block", 5, 8, pages(1, 0, 5, 6, 7, 8)},
		{"tail block near the end", 19, 20, pages(1, 0, 17, 18, 19, 20)},
		{"tail block boundary", 17, 20, pages(1, 0, 17, 18, 19, 20)},
		{"middle shows neighbors both elisions", 10, 20, pages(1, 0, 9, 10, 11, 0, 20)},
		{"first middle position", 5, 10, pages(1, 0, 4, 5, 6, 0, 10)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, WindowFor(tt.current, tt.total))
		})
	}
}

func TestWindowNeverExceedsMaxVisible(t *testing.T) {
	for total := 0; total <= 30; total++ {
		for current := 1; current <= total; current++ {
			got := WindowFor(current, total)
			assert.LessOrEqual(t, len(got), MaxVisible, "current=%d total=%d", current, total)
			if total > 1 {
				assert.Equal(t, PageToken(1), got[0])
				assert.Equal(t, PageToken(total), got[len(got)-1])
			}
		}
	}
}

func TestTokenString(t *testing.T) {
	assert.Equal(t, "3", PageToken(3).String())
	assert.Equal(t, "…", Ellipsis.String())
}
