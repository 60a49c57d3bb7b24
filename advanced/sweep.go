package advanced

import "math"

// DefaultAngleDecimals is the default rounding precision, in decimals of a
// degree, used when deduplicating equilibrium angles. One decimal means two
// roots closer than 0.1° collapse into one.
const DefaultAngleDecimals = 1

// The coarse sweep samples every whole degree from sweepStartDeg through
// sweepEndDeg inclusive: a superset of a full turn, so a root straddling the
// ±180° wrap still falls inside a sampled bracket.
const (
	sweepStartDeg = -180
	sweepEndDeg   = 181
)

// RightingArmCurve evaluates GZ at each heel angle in anglesDeg, in degrees.
// Each angle is evaluated independently: the hull and the center of gravity
// are rotated rigidly about the origin and vertical equilibrium is re-solved
// from scratch, so evaluation order carries no state between angles.
func RightingArmCurve(hull Curve, cg Point, targetArea float64, anglesDeg []float64) []float64 {
	arms := make([]float64, len(anglesDeg))
	for i, angleDeg := range anglesDeg {
		arms[i] = rightingArmAtAngle(hull, cg, targetArea, angleDeg)
	}
	return arms
}

func rightingArmAtAngle(hull Curve, cg Point, targetArea, angleDeg float64) float64 {
	angle := angleDeg * math.Pi / 180
	gz, _ := RightingArm(hull.Rotate(angle), targetArea, RotatePoint(cg, angle))
	return gz
}

// EquilibriumAngles finds every heel angle, in degrees, at which the
// righting arm is zero. A coarse whole-degree sweep over a full turn
// brackets candidate roots wherever adjacent GZ samples change sign or touch
// zero; each bracket is then refined by an independent bisection. Refined
// angles are deduplicated modulo 360° within 10^(-decimals) degrees, rounded
// to that precision, and normalized into (-180°, 180°].
func EquilibriumAngles(hull Curve, cg Point, targetArea float64, decimals int) []float64 {
	anglesDeg := make([]float64, 0, sweepEndDeg-sweepStartDeg+1)
	for a := sweepStartDeg; a <= sweepEndDeg; a++ {
		anglesDeg = append(anglesDeg, float64(a))
	}
	arms := RightingArmCurve(hull, cg, targetArea, anglesDeg)

	f := func(angleDeg float64) float64 {
		return rightingArmAtAngle(hull, cg, targetArea, angleDeg)
	}

	var roots []float64
	for i := 0; i+1 < len(arms); i++ {
		if arms[i]*arms[i+1] <= 0 {
			root, err := Bisect(f, anglesDeg[i], anglesDeg[i+1])
			if err != nil {
				throw(err)
			}
			roots = append(roots, root)
		}
	}

	unique := uniqueAnglesDeg(roots, decimals)
	for i, a := range unique {
		unique[i] = modMinus180To180(a)
	}
	return unique
}

// uniqueAnglesDeg drops near-duplicate angles. Each angle is normalized to
// [0, 360) and kept only if it lies farther than 10^(-decimals) degrees from
// every previously kept angle, measuring the wrap-around distance as well.
// Kept angles are rounded to the same precision.
func uniqueAnglesDeg(anglesDeg []float64, decimals int) []float64 {
	tolerance := math.Pow(10, -float64(decimals))
	var unique []float64
	for _, angleDeg := range anglesDeg {
		normalized := floorMod(angleDeg, 360)
		isUnique := true
		for _, existing := range unique {
			delta := math.Abs(normalized - existing)
			if delta < tolerance || math.Abs(360-delta) < tolerance {
				isUnique = false
				break
			}
		}
		if isUnique {
			unique = append(unique, normalized)
		}
	}
	scale := math.Pow(10, float64(decimals))
	for i, a := range unique {
		unique[i] = math.Round(a*scale) / scale
	}
	return unique
}

// modMinus180To180 maps an angle into the half-open range (-180, 180].
func modMinus180To180(angleDeg float64) float64 {
	return 180 - floorMod(-angleDeg+180, 360)
}

// floorMod is the modulo that always returns a value in [0, m), unlike
// math.Mod, which keeps the sign of x.
func floorMod(x, m float64) float64 {
	r := math.Mod(x, m)
	if r < 0 {
		r += m
	}
	return r
}
