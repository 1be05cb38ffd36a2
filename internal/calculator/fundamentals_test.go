package calculator

import (
	"testing"

	"PortfolioPulse/internal/model"
)

func fp(v float64) *float64 { return &v }

func TestExtractFundamentals_NilRecord(t *testing.T) {
	f := ExtractFundamentals(nil)
	if f.TrailingPE != nil || f.ReferencePE != nil || f.MarketCapCr != nil ||
		f.DividendYieldPct != nil || f.Beta != nil {
		t.Error("expected all-absent fundamentals for nil record")
	}
}

func TestExtractFundamentals_ZeroTrailingPE(t *testing.T) {
	raw := &model.RawFundamentals{
		TrailingPE:    fp(0),
		IndustryPE:    fp(18.2),
		MarketCap:     fp(5e11),
		DividendYield: fp(0.01),
		Beta:          fp(1.1),
	}
	f := ExtractFundamentals(raw)
	if f.TrailingPE != nil || f.ReferencePE != nil || f.MarketCapCr != nil ||
		f.DividendYieldPct != nil || f.Beta != nil {
		t.Error("zero trailing P/E must yield an all-absent record")
	}
}

func TestExtractFundamentals_ReferencePEOrder(t *testing.T) {
	tests := []struct {
		name string
		raw  model.RawFundamentals
		want *float64
	}{
		{
			name: "industry wins",
			raw:  model.RawFundamentals{TrailingPE: fp(20), IndustryPE: fp(11), SectorPE: fp(12.5), ForwardPE: fp(14)},
			want: fp(11),
		},
		{
			name: "sector wins over forward",
			raw:  model.RawFundamentals{TrailingPE: fp(20), SectorPE: fp(12.5), ForwardPE: fp(14)},
			want: fp(12.5),
		},
		{
			name: "forward is last resort",
			raw:  model.RawFundamentals{TrailingPE: fp(20), ForwardPE: fp(14)},
			want: fp(14),
		},
		{
			name: "all absent",
			raw:  model.RawFundamentals{TrailingPE: fp(20)},
			want: nil,
		},
	}
	for _, tt := range tests {
		f := ExtractFundamentals(&tt.raw)
		switch {
		case tt.want == nil && f.ReferencePE != nil:
			t.Errorf("%s: got %.2f, want absent", tt.name, *f.ReferencePE)
		case tt.want != nil && f.ReferencePE == nil:
			t.Errorf("%s: got absent, want %.2f", tt.name, *tt.want)
		case tt.want != nil && *f.ReferencePE != *tt.want:
			t.Errorf("%s: got %.2f, want %.2f", tt.name, *f.ReferencePE, *tt.want)
		}
	}
}

func TestExtractFundamentals_UnitConversions(t *testing.T) {
	raw := &model.RawFundamentals{
		TrailingPE:    fp(23.4),
		MarketCap:     fp(123450000000),
		DividendYield: fp(0.0185),
		Beta:          fp(0.92),
	}
	f := ExtractFundamentals(raw)

	if f.MarketCapCr == nil || *f.MarketCapCr != 12345.0 {
		t.Errorf("market cap: got %v, want 12345.0 crore", f.MarketCapCr)
	}
	if f.DividendYieldPct == nil || *f.DividendYieldPct != 1.85 {
		t.Errorf("dividend yield: got %v, want 1.85", f.DividendYieldPct)
	}
	if f.Beta == nil || *f.Beta != 0.92 {
		t.Errorf("beta: got %v, want 0.92", f.Beta)
	}
}

func TestExtractFundamentals_PartialRecord(t *testing.T) {
	raw := &model.RawFundamentals{TrailingPE: fp(31.7)}
	f := ExtractFundamentals(raw)

	if f.TrailingPE == nil || *f.TrailingPE != 31.7 {
		t.Errorf("trailing P/E: got %v, want 31.7", f.TrailingPE)
	}
	if f.MarketCapCr != nil || f.DividendYieldPct != nil || f.Beta != nil {
		t.Error("missing upstream values must stay absent, never zero")
	}
}

func TestFirstPresent(t *testing.T) {
	if got := FirstPresent(); got != nil {
		t.Errorf("no candidates: got %v, want nil", got)
	}
	if got := FirstPresent(nil, nil); got != nil {
		t.Errorf("all nil: got %v, want nil", got)
	}
	if got := FirstPresent(nil, fp(2), fp(3)); got == nil || *got != 2 {
		t.Errorf("first non-nil: got %v, want 2", got)
	}
}
