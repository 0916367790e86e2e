package engine

import (
	"testing"

	"github.com/shopspring/decimal"

	"shadbala/core/bala"
	"shadbala/core/types"
)

func phalaResult(p types.Planet, uchcha, cheshta string) *types.ShadbalaResult {
	return &types.ShadbalaResult{
		Planet: p,
		Sthana: types.NewComponent(types.ComponentSthana,
			types.SubTerm{Name: bala.TermUchcha, Value: decimal.RequireFromString(uchcha)},
		),
		Cheshta: types.NewComponent(types.ComponentCheshta,
			types.SubTerm{Name: bala.TermCheshta, Value: decimal.RequireFromString(cheshta)},
		),
	}
}

func TestIshtaKashta(t *testing.T) {
	tests := []struct {
		name      string
		planet    types.Planet
		uchcha    string
		cheshta   string
		wantIshta string
		wantKashta string
	}{
		{"full strength", types.Mars, "60", "60", "60", "0"},
		{"no strength", types.Mars, "0", "0", "0", "60"},
		{"mixed", types.Mars, "60", "0", "0", "0"},
		// the Sun's cheshta carries half its source value and is doubled back
		{"sun restores full motional term", types.Sun, "60", "30", "60", "0"},
		{"moon restores full motional term", types.Moon, "0", "0", "0", "60"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := phalaResult(tt.planet, tt.uchcha, tt.cheshta)
			ishtaKashta(r)
			if !r.IshtaPhala.Equal(decimal.RequireFromString(tt.wantIshta)) {
				t.Errorf("IshtaPhala = %s, want %s", r.IshtaPhala, tt.wantIshta)
			}
			if !r.KashtaPhala.Equal(decimal.RequireFromString(tt.wantKashta)) {
				t.Errorf("KashtaPhala = %s, want %s", r.KashtaPhala, tt.wantKashta)
			}
		})
	}
}

func TestIshtaKashtaStaysInRange(t *testing.T) {
	// values beyond the scale clamp rather than overflow the geometric mean
	r := phalaResult(types.Mars, "75", "70")
	ishtaKashta(r)
	if !r.IshtaPhala.Equal(decimal.NewFromInt(60)) {
		t.Errorf("IshtaPhala = %s, want clamped 60", r.IshtaPhala)
	}
	if !r.KashtaPhala.IsZero() {
		t.Errorf("KashtaPhala = %s, want 0", r.KashtaPhala)
	}
}

func TestPhalaGrade(t *testing.T) {
	tests := []struct {
		value string
		want  string
	}{
		{"50", "excellent"},
		{"45", "excellent"},
		{"30", "good"},
		{"20", "middling"},
		{"5", "poor"},
	}
	for _, tt := range tests {
		if got := PhalaGrade(decimal.RequireFromString(tt.value)); got != tt.want {
			t.Errorf("PhalaGrade(%s) = %q, want %q", tt.value, got, tt.want)
		}
	}
}
