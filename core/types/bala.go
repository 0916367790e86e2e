package types

import "github.com/shopspring/decimal"

// DignityStatus classifies a planet's standing in a sign. The variants are
// mutually exclusive for a given (planet, sign, degree).
type DignityStatus string

const (
	Moolatrikona DignityStatus = "Moolatrikona"
	OwnSign      DignityStatus = "OwnSign"
	Exalted      DignityStatus = "Exalted"
	Debilitated  DignityStatus = "Debilitated"
	GreatFriend  DignityStatus = "GreatFriend"
	Friend       DignityStatus = "Friend"
	Neutral      DignityStatus = "Neutral"
	Enemy        DignityStatus = "Enemy"
	GreatEnemy   DignityStatus = "GreatEnemy"
)

// FriendshipLevel is the five-level combined friendship scale. Combined
// friendship is directional: Combined(A,B) need not equal Combined(B,A)
// because the temporal half depends on house distance counted from A.
type FriendshipLevel int

const (
	LevelGreatEnemy FriendshipLevel = iota + 1
	LevelEnemy
	LevelNeutral
	LevelFriend
	LevelGreatFriend
)

// String returns the level name
func (l FriendshipLevel) String() string {
	switch l {
	case LevelGreatEnemy:
		return "GreatEnemy"
	case LevelEnemy:
		return "Enemy"
	case LevelNeutral:
		return "Neutral"
	case LevelFriend:
		return "Friend"
	case LevelGreatFriend:
		return "GreatFriend"
	}
	return "Unknown"
}

// SubTerm is one named term of a bala component breakdown
type SubTerm struct {
	Name  string          `json:"name"`
	Value decimal.Decimal `json:"value"`
}

// BalaComponent is the uniform shape produced by all six strength
// calculators: a name, a total in Virupas, and an ordered breakdown of the
// sub-terms that produced it.
type BalaComponent struct {
	// Name identifies the component (Sthana, Dig, Kala, Cheshta,
	// Naisargika, Drig)
	Name string `json:"name"`

	// Value is the component total in Virupas
	Value decimal.Decimal `json:"value"`

	// Breakdown lists the sub-terms in calculation order
	Breakdown []SubTerm `json:"breakdown,omitempty"`
}

// NewComponent builds a component from ordered sub-terms, the value being
// their exact decimal sum
func NewComponent(name string, terms ...SubTerm) BalaComponent {
	total := decimal.Zero
	for _, t := range terms {
		total = total.Add(t.Value)
	}
	return BalaComponent{Name: name, Value: total, Breakdown: terms}
}

// Component names used across the library
const (
	ComponentSthana     = "Sthana"
	ComponentDig        = "Dig"
	ComponentKala       = "Kala"
	ComponentCheshta    = "Cheshta"
	ComponentNaisargika = "Naisargika"
	ComponentDrig       = "Drig"
)

// ShadbalaResult is the complete strength result for one planet
type ShadbalaResult struct {
	// Planet is the subject planet
	Planet Planet `json:"planet"`

	// The six components
	Sthana     BalaComponent `json:"sthana"`
	Dig        BalaComponent `json:"dig"`
	Kala       BalaComponent `json:"kala"`
	Cheshta    BalaComponent `json:"cheshta"`
	Naisargika BalaComponent `json:"naisargika"`
	Drig       BalaComponent `json:"drig"`

	// TotalPinda is the exact sum of the six components, before any
	// Yuddha correction
	TotalPinda decimal.Decimal `json:"total_pinda"`

	// YuddhaDelta is the signed planetary-war correction, zero when the
	// planet is not at war
	YuddhaDelta decimal.Decimal `json:"yuddha_delta"`

	// CorrectedPinda is TotalPinda plus YuddhaDelta
	CorrectedPinda decimal.Decimal `json:"corrected_pinda"`

	// Rupas is CorrectedPinda divided by 60
	Rupas decimal.Decimal `json:"rupas"`

	// MinimumRequired is the classical minimum strength in Rupas
	MinimumRequired decimal.Decimal `json:"minimum_required"`

	// RelativeRatio is Rupas divided by MinimumRequired
	RelativeRatio decimal.Decimal `json:"relative_ratio"`

	// IsSufficient reports whether Rupas meets MinimumRequired
	IsSufficient bool `json:"is_sufficient"`

	// Rank orders the chart's planets by Rupas descending, 1 strongest
	Rank int `json:"rank"`

	// IshtaPhala is the auspicious potential, 0-60
	IshtaPhala decimal.Decimal `json:"ishta_phala"`

	// KashtaPhala is the inauspicious potential, 0-60
	KashtaPhala decimal.Decimal `json:"kashta_phala"`

	// Unavailable lists component names that could not be computed
	// because required chart data was absent. When non-empty, the totals
	// above are not populated.
	Unavailable []string `json:"unavailable,omitempty"`
}

// Complete reports whether all six components were computed
func (r *ShadbalaResult) Complete() bool {
	return len(r.Unavailable) == 0
}

// Component returns the named component
func (r *ShadbalaResult) Component(name string) (BalaComponent, bool) {
	switch name {
	case ComponentSthana:
		return r.Sthana, true
	case ComponentDig:
		return r.Dig, true
	case ComponentKala:
		return r.Kala, true
	case ComponentCheshta:
		return r.Cheshta, true
	case ComponentNaisargika:
		return r.Naisargika, true
	case ComponentDrig:
		return r.Drig, true
	}
	return BalaComponent{}, false
}
