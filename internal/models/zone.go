package models

// Zone is one of the three longitudinal pitch thirds. Assignment is by the
// sample's x coordinate against two boundary values with a closed-open
// convention: x < b1 is defensive, b1 <= x < b2 is middle, b2 <= x is
// attacking.
type Zone int

const (
	ZoneDefensive Zone = iota
	ZoneMiddle
	ZoneAttacking
)

// String returns the zone name
func (z Zone) String() string {
	switch z {
	case ZoneDefensive:
		return "defensive"
	case ZoneMiddle:
		return "middle"
	case ZoneAttacking:
		return "attacking"
	}
	return "unknown"
}

// ZoneTimes holds seconds of play attributed to each pitch third.
// The three values sum to the trajectory duration.
type ZoneTimes struct {
	DefensiveS float64 `json:"defensiveS"`
	MiddleS    float64 `json:"middleS"`
	AttackingS float64 `json:"attackingS"`
}

// Add attributes dt seconds to the given zone
func (zt *ZoneTimes) Add(z Zone, dt float64) {
	switch z {
	case ZoneDefensive:
		zt.DefensiveS += dt
	case ZoneMiddle:
		zt.MiddleS += dt
	case ZoneAttacking:
		zt.AttackingS += dt
	}
}

// Of returns the seconds attributed to the given zone
func (zt ZoneTimes) Of(z Zone) float64 {
	switch z {
	case ZoneDefensive:
		return zt.DefensiveS
	case ZoneMiddle:
		return zt.MiddleS
	case ZoneAttacking:
		return zt.AttackingS
	}
	return 0
}

// Total returns the sum across all three zones
func (zt ZoneTimes) Total() float64 {
	return zt.DefensiveS + zt.MiddleS + zt.AttackingS
}
