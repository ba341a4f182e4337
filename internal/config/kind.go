package config

import "fmt"

// Kind tags a projectile type.
type Kind int

const (
	Missile Kind = iota
	Homing
	Spark
)

var kindNames = map[Kind]string{
	Missile: "missile",
	Homing:  "homing",
	Spark:   "spark",
}

// Kinds lists every projectile kind in declaration order.
func Kinds() []Kind {
	return []Kind{Missile, Homing, Spark}
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// ParseKind maps a data-file section name to a Kind.
func ParseKind(name string) (Kind, error) {
	for k, n := range kindNames {
		if n == name {
			return k, nil
		}
	}
	return 0, fmt.Errorf("unknown projectile kind %q", name)
}
