// Package pagerange resolves user-entered page selection expressions
// ("all", "1-5", "1,3,5", "1-3,6,8-10") into ordered page number lists.
package pagerange

import (
	"sort"
	"strconv"
	"strings"
)

// Parse resolves expr against a document of totalPages pages and returns the
// selected page numbers, deduplicated and ascending. Parsing is best-effort:
// malformed tokens and out-of-range pages are dropped silently, never
// reported as errors. An empty expression or the keyword "all" selects every
// page. An expression that resolves to no pages returns an empty slice.
func Parse(expr string, totalPages int) []int {
	expr = strings.TrimSpace(expr)
	if expr == "" || strings.EqualFold(expr, "all") {
		pages := make([]int, 0, totalPages)
		for p := 1; p <= totalPages; p++ {
			pages = append(pages, p)
		}
		return pages
	}

	seen := make(map[int]bool)
	for _, token := range strings.Split(expr, ",") {
		token = strings.TrimSpace(token)
		if strings.Contains(token, "-") {
			addRange(seen, token, totalPages)
		} else {
			addSingle(seen, token, totalPages)
		}
	}

	pages := make([]int, 0, len(seen))
	for p := range seen {
		pages = append(pages, p)
	}
	sort.Ints(pages)
	return pages
}

// addRange handles "start-end" tokens. Bounds are clamped to [1, totalPages];
// a range that is inverted after clamping contributes nothing.
func addRange(seen map[int]bool, token string, totalPages int) {
	parts := strings.SplitN(token, "-", 2)
	start, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return
	}
	end, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return
	}

	if start < 1 {
		start = 1
	}
	if end > totalPages {
		end = totalPages
	}
	for p := start; p <= end; p++ {
		seen[p] = true
	}
}

func addSingle(seen map[int]bool, token string, totalPages int) {
	page, err := strconv.Atoi(token)
	if err != nil {
		return
	}
	if page >= 1 && page <= totalPages {
		seen[page] = true
	}
}

// Ordinal returns the 1-based position of page within the selection, or 0 if
// the page is not selected. Labels use this position, not the absolute page
// number.
func Ordinal(selection []int, page int) int {
	for i, p := range selection {
		if p == page {
			return i + 1
		}
	}
	return 0
}
