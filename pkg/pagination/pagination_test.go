package pagination_test

import (
	"math"
	"net/url"
	"strings"
	"testing"

	"github.com/JaimeStill/proxy-console/pkg/pagination"
)

var cfg = pagination.Config{DefaultPageSize: 20, MaxPageSize: 100}

func TestPageRequest_Normalize(t *testing.T) {
	tests := []struct {
		name         string
		request      pagination.PageRequest
		wantPage     int
		wantPageSize int
	}{
		{"valid values unchanged", pagination.PageRequest{Page: 2, PageSize: 25}, 2, 25},
		{"zero page becomes 1", pagination.PageRequest{Page: 0, PageSize: 25}, 1, 25},
		{"negative page becomes 1", pagination.PageRequest{Page: -1, PageSize: 25}, 1, 25},
		{"zero page size gets default", pagination.PageRequest{Page: 1}, 1, 20},
		{"page size exceeding max gets capped", pagination.PageRequest{Page: 1, PageSize: 200}, 1, 100},
		{"page overflowing offset gets capped", pagination.PageRequest{Page: math.MaxInt, PageSize: 25}, math.MaxInt / 25, 25},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.request.Normalize(cfg)

			if tt.request.Page != tt.wantPage {
				t.Errorf("Page = %d, want %d", tt.request.Page, tt.wantPage)
			}
			if tt.request.PageSize != tt.wantPageSize {
				t.Errorf("PageSize = %d, want %d", tt.request.PageSize, tt.wantPageSize)
			}
		})
	}
}

func TestPageRequestFromQuery(t *testing.T) {
	values := url.Values{"page": {"3"}, "page_size": {"10"}, "search": {"  api  "}}

	req := pagination.PageRequestFromQuery(values, cfg)

	if req.Page != 3 || req.PageSize != 10 || req.Search != "api" {
		t.Errorf("req = %+v", req)
	}
	if req.Offset() != 20 {
		t.Errorf("Offset() = %d, want 20", req.Offset())
	}
}

func TestPageRequest_Query(t *testing.T) {
	req := pagination.PageRequest{Page: 1, PageSize: 10, Search: "a b"}

	got := req.Query(2)
	want := "?page=2&page_size=10&search=a+b"
	if got != want {
		t.Errorf("Query(2) = %q, want %q", got, want)
	}
}

func TestApply(t *testing.T) {
	items := []string{"alpha", "beta", "gamma", "delta", "epsilon"}
	match := func(s, search string) bool { return strings.Contains(s, search) }

	tests := []struct {
		name      string
		req       pagination.PageRequest
		wantData  []string
		wantTotal int
		wantPages int
	}{
		{"first page", pagination.PageRequest{Page: 1, PageSize: 2}, []string{"alpha", "beta"}, 5, 3},
		{"last partial page", pagination.PageRequest{Page: 3, PageSize: 2}, []string{"epsilon"}, 5, 3},
		{"past the end", pagination.PageRequest{Page: 9, PageSize: 2}, []string{}, 5, 3},
		{"search", pagination.PageRequest{Page: 1, PageSize: 2, Search: "lt"}, []string{"delta"}, 1, 1},
		{"search no match", pagination.PageRequest{Page: 1, PageSize: 2, Search: "zeta"}, []string{}, 0, 1},
		{"overflowing offset", pagination.PageRequest{Page: math.MaxInt/2 + 2, PageSize: 2}, []string{}, 5, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := pagination.Apply(items, tt.req, match)

			if strings.Join(result.Data, ",") != strings.Join(tt.wantData, ",") {
				t.Errorf("Data = %v, want %v", result.Data, tt.wantData)
			}
			if result.Total != tt.wantTotal {
				t.Errorf("Total = %d, want %d", result.Total, tt.wantTotal)
			}
			if result.TotalPages != tt.wantPages {
				t.Errorf("TotalPages = %d, want %d", result.TotalPages, tt.wantPages)
			}
		})
	}
}

func TestPageRequestFromQuery_LargePage(t *testing.T) {
	values := url.Values{"page": {"184467440737095518"}, "page_size": {"100"}}

	req := pagination.PageRequestFromQuery(values, cfg)
	if req.Offset() < 0 {
		t.Fatalf("Offset() = %d, want non-negative", req.Offset())
	}

	result := pagination.Apply([]int{1, 2, 3}, req, nil)
	if len(result.Data) != 0 {
		t.Errorf("Data = %v, want empty", result.Data)
	}
	if result.Total != 3 {
		t.Errorf("Total = %d, want 3", result.Total)
	}
}

func TestFilter(t *testing.T) {
	items := []string{"alpha", "beta", "gamma"}
	match := func(s, search string) bool { return strings.Contains(s, search) }

	if got := pagination.Filter(items, "", match); len(got) != 3 {
		t.Errorf("Filter(empty) = %v, want all items", got)
	}
	if got := pagination.Filter(items, "mm", match); strings.Join(got, ",") != "gamma" {
		t.Errorf("Filter(mm) = %v, want [gamma]", got)
	}
}

func TestPageResult_Navigation(t *testing.T) {
	first := pagination.NewPageResult([]int{1}, 30, 1, 10)
	if first.HasPrev() || !first.HasNext() {
		t.Errorf("first page: HasPrev=%v HasNext=%v", first.HasPrev(), first.HasNext())
	}

	last := pagination.NewPageResult([]int{1}, 30, 3, 10)
	if !last.HasPrev() || last.HasNext() {
		t.Errorf("last page: HasPrev=%v HasNext=%v", last.HasPrev(), last.HasNext())
	}
}

func TestConfig_Finalize(t *testing.T) {
	t.Setenv("TEST_DEFAULT_PAGE_SIZE", "15")

	c := pagination.Config{}
	err := c.Finalize(&pagination.ConfigEnv{DefaultPageSize: "TEST_DEFAULT_PAGE_SIZE"})
	if err != nil {
		t.Fatalf("Finalize() failed: %v", err)
	}
	if c.DefaultPageSize != 15 || c.MaxPageSize != 500 {
		t.Errorf("config = %+v", c)
	}

	bad := pagination.Config{DefaultPageSize: 50, MaxPageSize: 10}
	if err := bad.Finalize(nil); err == nil {
		t.Error("Finalize() should reject default above max")
	}
}
