package advanced

// RightingArm computes the righting arm GZ and the metacentric radius BM for
// a hull and center of gravity that have already been rotated to the heel
// angle of interest. The hull is first brought to vertical equilibrium at
// the target displaced area; GZ is then the horizontal offset of the center
// of gravity from the center of buoyancy.
//
// The sign is cg.X minus the buoyancy center's x, never the reverse: with
// this convention GZ has positive slope through a stable equilibrium angle,
// which is what the equilibrium finder relies on to classify stability.
func RightingArm(hull Curve, targetArea float64, cg Point) (gz, bm float64) {
	offset := DraftOffsetAtEquilibrium(hull, targetArea)
	hydro := SubmergedHydrostatics(hull.Shift(offset))
	return cg.X - hydro.Centroid.X, hydro.MetacentricRadius
}

// MetacentricHeight computes GM, the height of the metacenter above the
// center of gravity at vertical equilibrium: GM = yB + BM − yG, with yG the
// center of gravity lowered by the equilibrium draft offset. Positive GM
// means initial (small-angle) stability. For a circular hull the metacenter
// is the circle's center, so a CG there gives GM = 0.
func MetacentricHeight(hull Curve, targetArea float64, cg Point) float64 {
	offset := DraftOffsetAtEquilibrium(hull, targetArea)
	hydro := SubmergedHydrostatics(hull.Shift(offset))
	return hydro.Centroid.Y + hydro.MetacentricRadius - (cg.Y - offset)
}
