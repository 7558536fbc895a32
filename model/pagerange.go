package model

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// span is an inclusive run of 1-based page numbers.
type span struct {
	from, to int
}

// PageRange is an inclusive set of 1-based page numbers that cropping
// applies to. Pages outside the range keep their original visible rectangle
// and never constrain the shared crop. The zero value selects all pages.
type PageRange struct {
	spans []span // empty means all pages
}

// AllPages returns a PageRange selecting every page.
func AllPages() PageRange {
	return PageRange{}
}

// Pages returns a PageRange selecting exactly the given page numbers.
func Pages(nums ...int) PageRange {
	spans := make([]span, 0, len(nums))
	for _, n := range nums {
		spans = append(spans, span{from: n, to: n})
	}
	return PageRange{spans: normalizeSpans(spans)}
}

// Span returns a PageRange selecting the inclusive run from..to.
func Span(from, to int) PageRange {
	if from > to {
		from, to = to, from
	}
	return PageRange{spans: []span{{from: from, to: to}}}
}

// ParsePageRange parses a page selection string such as "3", "2-5" or
// "1,4-6,9". Whitespace around numbers is ignored. An empty string selects
// all pages.
func ParsePageRange(s string) (PageRange, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return AllPages(), nil
	}

	var spans []span
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		if from, to, ok := strings.Cut(part, "-"); ok {
			lo, err := parsePageNum(from)
			if err != nil {
				return PageRange{}, err
			}
			hi, err := parsePageNum(to)
			if err != nil {
				return PageRange{}, err
			}
			if lo > hi {
				return PageRange{}, fmt.Errorf("invalid page range %q: %d > %d", part, lo, hi)
			}
			spans = append(spans, span{from: lo, to: hi})
			continue
		}
		n, err := parsePageNum(part)
		if err != nil {
			return PageRange{}, err
		}
		spans = append(spans, span{from: n, to: n})
	}
	if len(spans) == 0 {
		return AllPages(), nil
	}
	return PageRange{spans: normalizeSpans(spans)}, nil
}

func parsePageNum(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("invalid page number %q", s)
	}
	if n < 1 {
		return 0, fmt.Errorf("page numbers are 1-based, got %d", n)
	}
	return n, nil
}

// normalizeSpans sorts spans and merges overlapping or adjacent runs.
func normalizeSpans(spans []span) []span {
	if len(spans) == 0 {
		return nil
	}
	sort.Slice(spans, func(i, j int) bool {
		if spans[i].from != spans[j].from {
			return spans[i].from < spans[j].from
		}
		return spans[i].to < spans[j].to
	})
	merged := spans[:1]
	for _, sp := range spans[1:] {
		last := &merged[len(merged)-1]
		if sp.from <= last.to+1 {
			if sp.to > last.to {
				last.to = sp.to
			}
			continue
		}
		merged = append(merged, sp)
	}
	return merged
}

// IsAll reports whether the range selects every page.
func (r PageRange) IsAll() bool {
	return len(r.spans) == 0
}

// Contains reports whether page (1-based) is in the range.
func (r PageRange) Contains(page int) bool {
	if r.IsAll() {
		return page >= 1
	}
	for _, sp := range r.spans {
		if page >= sp.from && page <= sp.to {
			return true
		}
	}
	return false
}

// Validate checks the range against a document's page count. A zero-page
// document, or any selected page outside [1, pageCount], is reported as
// ErrInvalidPageRange.
func (r PageRange) Validate(pageCount int) error {
	if pageCount < 1 {
		return fmt.Errorf("%w: document has no pages", ErrInvalidPageRange)
	}
	for _, sp := range r.spans {
		if sp.from < 1 || sp.to > pageCount {
			return fmt.Errorf("%w: pages %d-%d outside document [1, %d]",
				ErrInvalidPageRange, sp.from, sp.to, pageCount)
		}
	}
	return nil
}

// PageNumbers expands the range into the ordered list of selected page
// numbers for a document with pageCount pages.
func (r PageRange) PageNumbers(pageCount int) []int {
	if r.IsAll() {
		nums := make([]int, pageCount)
		for i := range nums {
			nums[i] = i + 1
		}
		return nums
	}
	var nums []int
	for _, sp := range r.spans {
		for n := sp.from; n <= sp.to && n <= pageCount; n++ {
			nums = append(nums, n)
		}
	}
	return nums
}

func (r PageRange) String() string {
	if r.IsAll() {
		return "all"
	}
	parts := make([]string, 0, len(r.spans))
	for _, sp := range r.spans {
		if sp.from == sp.to {
			parts = append(parts, strconv.Itoa(sp.from))
		} else {
			parts = append(parts, fmt.Sprintf("%d-%d", sp.from, sp.to))
		}
	}
	return strings.Join(parts, ",")
}
