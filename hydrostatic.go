// Hydrostatic stability of a 2D floating cross-section.
//
// Given a closed curve describing a hull profile (y up, waterline at y = 0)
// and a target displaced area, this package finds the draft at which the
// section floats in vertical equilibrium, the righting-arm (GZ) curve over a
// range of heel angles, and every heel angle at which the section is in
// rotational equilibrium.
package hydrostatic

import "github.com/azmadax/hydrostatic/advanced"

type Point = advanced.Point
type Curve = advanced.Curve
type FlotationSegment = advanced.FlotationSegment
type Hydrostatics = advanced.Hydrostatics
type SinkingError = advanced.SinkingError

// IsSinking reports whether err is the solver's verdict that the hull cannot
// displace the requested area at any draft. Callers should treat it as a
// modeling conclusion ("the hull cannot float at this load"), not a crash.
func IsSinking(err error) bool {
	_, ok := err.(*SinkingError)
	return ok
}

// Submerged clips the hull against the waterline y = 0, returning the
// submerged point sequence and the flotation segments lying exactly on the
// waterline. Defined for every input; never fails.
func Submerged(hull Curve) (Curve, []FlotationSegment) {
	return hull.Submerged()
}

// SubmergedHydrostatics returns the displaced area, center of buoyancy, and
// metacentric radius of the hull at its current draft. Never fails:
// degenerate submersions resolve to the documented fallbacks.
func SubmergedHydrostatics(hull Curve) Hydrostatics {
	return advanced.SubmergedHydrostatics(hull)
}

// VerticalEquilibrium finds the draft offset at which the hull displaces
// exactly targetArea. Positive offsets move the hull down. Returns a
// *SinkingError when the target displacement is unreachable.
func VerticalEquilibrium(hull Curve, targetArea float64) (offset float64, err error) {
	defer func() {
		if recoveredErr := advanced.HandleHydrostaticPanicRecover(recover()); recoveredErr != nil {
			err = recoveredErr
		}
	}()
	offset = advanced.DraftOffsetAtEquilibrium(hull, targetArea)
	return
}

// RightingArm computes the righting arm GZ and the metacentric radius BM for
// a hull and center of gravity already rotated to the heel angle of
// interest. Positive GZ slope through an equilibrium angle means a stable
// equilibrium.
func RightingArm(hull Curve, targetArea float64, cg Point) (gz, bm float64, err error) {
	defer func() {
		if recoveredErr := advanced.HandleHydrostaticPanicRecover(recover()); recoveredErr != nil {
			gz, bm = 0, 0
			err = recoveredErr
		}
	}()
	gz, bm = advanced.RightingArm(hull, targetArea, cg)
	return
}

// MetacentricHeight computes GM, the height of the metacenter above the
// center of gravity at vertical equilibrium. Positive GM means initial
// stability.
func MetacentricHeight(hull Curve, targetArea float64, cg Point) (gm float64, err error) {
	defer func() {
		if recoveredErr := advanced.HandleHydrostaticPanicRecover(recover()); recoveredErr != nil {
			gm = 0
			err = recoveredErr
		}
	}()
	gm = advanced.MetacentricHeight(hull, targetArea, cg)
	return
}

// RightingArmCurve evaluates GZ at each heel angle in anglesDeg, in degrees,
// rotating the hull and center of gravity rigidly and re-solving vertical
// equilibrium at every angle.
func RightingArmCurve(hull Curve, cg Point, targetArea float64, anglesDeg []float64) (arms []float64, err error) {
	defer func() {
		if recoveredErr := advanced.HandleHydrostaticPanicRecover(recover()); recoveredErr != nil {
			arms = nil
			err = recoveredErr
		}
	}()
	arms = advanced.RightingArmCurve(hull, cg, targetArea, anglesDeg)
	return
}

// EquilibriumAngles finds every heel angle, in degrees in (-180, 180], at
// which the righting arm is zero. Near-identical roots are deduplicated to
// one decimal of a degree; advanced.EquilibriumAngles takes the precision
// explicitly.
func EquilibriumAngles(hull Curve, cg Point, targetArea float64) (anglesDeg []float64, err error) {
	defer func() {
		if recoveredErr := advanced.HandleHydrostaticPanicRecover(recover()); recoveredErr != nil {
			anglesDeg = nil
			err = recoveredErr
		}
	}()
	anglesDeg = advanced.EquilibriumAngles(hull, cg, targetArea, advanced.DefaultAngleDecimals)
	return
}
