package measures

import "github.com/smartcontractkit/quantities/quantity"

// Units defined by a quantity of one unit rather than by a scale factor.
var (
	// StandardGravity is the nominal gravitational acceleration at the surface of the Earth.
	StandardGravity = quantity.UnitOf("StandardGravity", "g₀", NewAcceleration(9.80665, MetrePerSecondSquared))

	// LightYear is the distance light travels in vacuum in one Julian year.
	LightYear = quantity.UnitOf("LightYear", "ly", NewLength(9460730472580800, Metre))

	// KilogramForce is the weight of one kilogram under standard gravity.
	KilogramForce = quantity.UnitOf("KilogramForce", "kgf", NewForce(9.80665, Newton))
)
