package types

// Sign is a zodiac sign, indexed 0 (Aries) through 11 (Pisces)
type Sign int

const (
	Aries Sign = iota
	Taurus
	Gemini
	Cancer
	Leo
	Virgo
	Libra
	Scorpio
	Sagittarius
	Capricorn
	Aquarius
	Pisces
)

var signNames = [12]string{
	"Aries", "Taurus", "Gemini", "Cancer", "Leo", "Virgo",
	"Libra", "Scorpio", "Sagittarius", "Capricorn", "Aquarius", "Pisces",
}

// String returns the sign name
func (s Sign) String() string {
	if s.Valid() {
		return signNames[s]
	}
	return "Unknown"
}

// Valid reports whether s is a real sign index
func (s Sign) Valid() bool {
	return s >= Aries && s <= Pisces
}

// Modality classifies a sign as movable, fixed or dual
type Modality int

const (
	Movable Modality = iota
	Fixed
	Dual
)

// Modality returns the sign's modality. Signs cycle movable, fixed, dual.
func (s Sign) Modality() Modality {
	return Modality(int(s) % 3)
}

// IsOdd reports whether the sign is odd (Aries, Gemini, ... with 1-based
// counting; index 0, 2, 4, ...)
func (s Sign) IsOdd() bool {
	return int(s)%2 == 0
}

// SignAt returns the sign containing a zodiacal longitude. A longitude
// exactly on a boundary belongs to the later sign.
func SignAt(lon float64) Sign {
	return Sign(int(lon/30) % 12)
}
