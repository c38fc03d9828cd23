package entities

// Stat identifies one of the six base attributes a creature record carries
type Stat int

// Recognized stats, in display order
const (
	StatHP Stat = iota
	StatAttack
	StatDefense
	StatSpecialAttack
	StatSpecialDefense
	StatSpeed
)

// AllStats lists every recognized stat in display order
var AllStats = []Stat{
	StatHP,
	StatAttack,
	StatDefense,
	StatSpecialAttack,
	StatSpecialDefense,
	StatSpeed,
}

// statKeys maps the API's stat names to our stats. Matching is exact:
// "Special-Attack" or "special_attack" are not recognized.
var statKeys = map[string]Stat{
	"hp":              StatHP,
	"attack":          StatAttack,
	"defense":         StatDefense,
	"special-attack":  StatSpecialAttack,
	"special-defense": StatSpecialDefense,
	"speed":           StatSpeed,
}

// ParseStat looks up a stat by its API name. Unknown names return false.
func ParseStat(key string) (Stat, bool) {
	s, ok := statKeys[key]
	return s, ok
}

// Key returns the name the API uses for the stat
func (s Stat) Key() string {
	switch s {
	case StatHP:
		return "hp"
	case StatAttack:
		return "attack"
	case StatDefense:
		return "defense"
	case StatSpecialAttack:
		return "special-attack"
	case StatSpecialDefense:
		return "special-defense"
	case StatSpeed:
		return "speed"
	default:
		return ""
	}
}

// Label returns the human readable name shown next to the stat bar
func (s Stat) Label() string {
	switch s {
	case StatHP:
		return "hp"
	case StatAttack:
		return "attack"
	case StatDefense:
		return "defence"
	case StatSpecialAttack:
		return "special attack"
	case StatSpecialDefense:
		return "special defence"
	case StatSpeed:
		return "speed"
	default:
		return "unknown"
	}
}

// String implements fmt.Stringer
func (s Stat) String() string {
	return s.Key()
}

// Stats holds the six base stat values. Missing stats are zero.
type Stats struct {
	HP             float64 `json:"hp"`
	Attack         float64 `json:"attack"`
	Defense        float64 `json:"defense"`
	SpecialAttack  float64 `json:"special_attack"`
	SpecialDefense float64 `json:"special_defense"`
	Speed          float64 `json:"speed"`
}

// Get returns the value of a single stat
func (st Stats) Get(s Stat) float64 {
	switch s {
	case StatHP:
		return st.HP
	case StatAttack:
		return st.Attack
	case StatDefense:
		return st.Defense
	case StatSpecialAttack:
		return st.SpecialAttack
	case StatSpecialDefense:
		return st.SpecialDefense
	case StatSpeed:
		return st.Speed
	default:
		return 0
	}
}

// With returns a copy of st with stat s set to v
func (st Stats) With(s Stat, v float64) Stats {
	switch s {
	case StatHP:
		st.HP = v
	case StatAttack:
		st.Attack = v
	case StatDefense:
		st.Defense = v
	case StatSpecialAttack:
		st.SpecialAttack = v
	case StatSpecialDefense:
		st.SpecialDefense = v
	case StatSpeed:
		st.Speed = v
	}
	return st
}
