package host

import (
	"fmt"
	"strings"
)

// Part is one creep body part.
type Part string

const (
	PartMove         Part = "move"
	PartWork         Part = "work"
	PartCarry        Part = "carry"
	PartAttack       Part = "attack"
	PartRangedAttack Part = "ranged_attack"
	PartHeal         Part = "heal"
	PartTough        Part = "tough"
	PartClaim        Part = "claim"
)

var partCosts = map[Part]int{
	PartMove:         50,
	PartWork:         100,
	PartCarry:        50,
	PartAttack:       80,
	PartRangedAttack: 150,
	PartHeal:         250,
	PartTough:        10,
	PartClaim:        600,
}

// Cost is the energy needed to spawn the part. Unknown parts cost 0.
func (p Part) Cost() int { return partCosts[p] }

// ParsePart accepts a part name case-insensitively.
func ParsePart(s string) (Part, error) {
	p := Part(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := partCosts[p]; !ok {
		return "", fmt.Errorf("unknown body part %q", s)
	}
	return p, nil
}

// ParseBody parses a list of part names. An empty body is an error.
func ParseBody(names []string) ([]Part, error) {
	if len(names) == 0 {
		return nil, fmt.Errorf("empty body")
	}
	body := make([]Part, 0, len(names))
	for _, n := range names {
		p, err := ParsePart(n)
		if err != nil {
			return nil, err
		}
		body = append(body, p)
	}
	return body, nil
}

// BodyCost sums the spawn cost of every part.
func BodyCost(body []Part) int {
	total := 0
	for _, p := range body {
		total += p.Cost()
	}
	return total
}

// CountParts returns how many parts of kind p the body has.
func CountParts(body []Part, p Part) int {
	n := 0
	for _, b := range body {
		if b == p {
			n++
		}
	}
	return n
}
