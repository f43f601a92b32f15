package listing

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func boolPtr(b bool) *bool { return &b }

func TestParseFilters(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want FilterParams
	}{
		{name: "empty", in: "", want: FilterParams{}},
		{name: "unknown keys dropped", in: "inVacations=true&foo=bar", want: FilterParams{InVacations: boolPtr(true)}},
		{
			name: "false and date",
			in:   "inVacations=false&createdAfter=2024-01-01",
			want: FilterParams{InVacations: boolPtr(false), CreatedAfter: "2024-01-01"},
		},
		{
			name: "leading ampersand",
			in:   "&createdBefore=2024-12-31&createdAfter=2024-01-01",
			want: FilterParams{CreatedAfter: "2024-01-01", CreatedBefore: "2024-12-31"},
		},
		{name: "only literal true", in: "inVacations=TRUE", want: FilterParams{InVacations: boolPtr(false)}},
		{name: "key without value", in: "inVacations", want: FilterParams{InVacations: boolPtr(false)}},
		{name: "extra equals ignored", in: "createdAfter=2024-01-01=x", want: FilterParams{CreatedAfter: "2024-01-01"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, ParseFilters(tt.in)); diff != "" {
				t.Fatalf("ParseFilters(%q) mismatch (-want +got):\n%s", tt.in, diff)
			}
		})
	}
}

func TestParseFiltersOrderIndependent(t *testing.T) {
	a := ParseFilters("inVacations=true&createdAfter=2024-01-01&createdBefore=2024-02-01")
	b := ParseFilters("createdBefore=2024-02-01&inVacations=true&createdAfter=2024-01-01")
	if diff := cmp.Diff(a, b); diff != "" {
		t.Fatalf("order changed result (-a +b):\n%s", diff)
	}
}

func TestFilterParamsStringRoundTrip(t *testing.T) {
	fp := FilterParams{InVacations: boolPtr(true), CreatedBefore: "2024-06-01"}
	s := fp.String()
	if s != "&inVacations=true&createdBefore=2024-06-01" {
		t.Fatalf("unexpected filter string %q", s)
	}
	if diff := cmp.Diff(fp, ParseFilters(s)); diff != "" {
		t.Fatalf("round trip mismatch:\n%s", diff)
	}
	if !(FilterParams{}).IsZero() || fp.IsZero() {
		t.Fatal("IsZero mismatch")
	}
}
