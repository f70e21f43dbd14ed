package dicecore

// DieType is the enum of types a RolledDie can carry. It governs which
// invariants a RolledDie must satisfy and whether the die is eligible for
// explosion.
type DieType string

// Concrete die types.
const (
	// DieTypePolyhedral is a standard N-sided die, including the d66
	// component dice and d% (percentile, an alias for d100).
	DieTypePolyhedral DieType = "polyhedral"

	// DieTypeFudge is a die drawn from the six-value fudge/fate set.
	DieTypeFudge DieType = "fudge"

	// DieTypeD66 is the composed tens*10+ones die.
	DieTypeD66 DieType = "d66"

	// DieTypeNVals is a die drawn uniformly from an arbitrary bracketed
	// value list, e.g. d[1,1,2,3,5].
	DieTypeNVals DieType = "nvals"

	// DieTypeSingleVal is a synthetic, non-random single value produced by
	// arithmetic, aggregation, or counting.
	DieTypeSingleVal DieType = "singleVal"
)

func (t DieType) String() string {
	switch t {
	case DieTypePolyhedral:
		return "polyhedral"
	case DieTypeFudge:
		return "fudge"
	case DieTypeD66:
		return "d66"
	case DieTypeNVals:
		return "nvals"
	case DieTypeSingleVal:
		return "singleVal"
	default:
		return "unknown"
	}
}

// RequiresPotentialValues reports whether dice of this type must carry a
// non-empty PotentialValues slice.
func (t DieType) RequiresPotentialValues() bool {
	switch t {
	case DieTypeFudge, DieTypeNVals, DieTypeSingleVal:
		return true
	default:
		return false
	}
}

// RequiresSides reports whether dice of this type must carry a non-zero
// NSides.
func (t DieType) RequiresSides() bool {
	switch t {
	case DieTypePolyhedral, DieTypeD66:
		return true
	default:
		return false
	}
}

// Explodable reports whether dice of this type are eligible for the
// explode/compound modifiers. Fudge, nvals, and singleVal dice are never
// exploded: their "maximum" is not a meaningful threshold to keep
// re-triggering against. Penetration does not consult this predicate; it
// applies to polyhedral dice only.
func (t DieType) Explodable() bool {
	switch t {
	case DieTypePolyhedral, DieTypeD66:
		return true
	default:
		return false
	}
}
