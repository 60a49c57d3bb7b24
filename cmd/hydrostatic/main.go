// Command hydrostatic computes the equilibrium heel angles of a 2D hull
// profile. The hull comes from a built-in sample, the first <polygon> of an
// SVG file, or newline-separated "x y" points on stdin; the waterline is
// y = 0 and positive y is up.
package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/logrusorgru/aurora"
	kingpin "gopkg.in/alecthomas/kingpin.v2"

	"github.com/azmadax/hydrostatic"
	"github.com/azmadax/hydrostatic/advanced"
	"github.com/azmadax/hydrostatic/hullio"
	"github.com/azmadax/hydrostatic/samples"
)

var (
	app        = kingpin.New("hydrostatic", "Hydrostatic stability of a 2D hull cross-section.")
	targetArea = app.Flag("area", "Target displaced area.").Required().Float64()
	cgFlag     = app.Flag("cg", "Center of gravity as \"x,y\". Defaults to the sample's CG, or the origin.").String()
	sampleFlag = app.Flag("sample", "Built-in sample hull.").Enum("circular", "square", "culbuto")
	svgFlag    = app.Flag("svg", "Read the hull from the first <polygon> of an SVG file.").ExistingFile()
	plotFlag   = app.Flag("plot", "Write the GZ curve over a full turn to a PNG file.").String()
	drawFlag   = app.Flag("draw", "Draw the upright equilibrium section in the terminal (iTerm only).").Bool()
)

func main() {
	kingpin.MustParse(app.Parse(os.Args[1:]))

	hull, cg, err := loadHull()
	if err != nil {
		app.Fatalf("%v", err)
	}
	hull = hull.Close()

	angles, err := hydrostatic.EquilibriumAngles(hull, cg, *targetArea)
	if err != nil {
		if hydrostatic.IsSinking(err) {
			fmt.Println(aurora.Red("The hull cannot float at this load."))
			os.Exit(1)
		}
		app.Fatalf("%v", err)
	}

	fmt.Printf("Found %d equilibrium heel angle(s):\n", len(angles))
	for _, angle := range angles {
		fmt.Printf("  %8.1f°  %s\n", angle, stabilityLabel(hull, cg, angle))
	}

	if *plotFlag != "" {
		if err := plotRightingArmCurve(hull, cg, *targetArea, *plotFlag); err != nil {
			app.Fatalf("plotting GZ curve: %v", err)
		}
		fmt.Printf("GZ curve written to %s\n", *plotFlag)
	}

	if *drawFlag {
		offset, err := hydrostatic.VerticalEquilibrium(hull, *targetArea)
		if err != nil {
			app.Fatalf("%v", err)
		}
		if err := advanced.DrawSection(hull.Shift(offset), 40, os.Stdout); err != nil {
			app.Fatalf("drawing section: %v", err)
		}
	}
}

func loadHull() (hydrostatic.Curve, hydrostatic.Point, error) {
	var hull hydrostatic.Curve
	var cg hydrostatic.Point
	var err error

	switch {
	case *sampleFlag != "":
		switch *sampleFlag {
		case "circular":
			hull, cg = samples.CircularBoat()
		case "square":
			hull, cg = samples.SquareBoat()
		case "culbuto":
			hull, cg = samples.CulbutoBoat()
		}
	case *svgFlag != "":
		var f *os.File
		f, err = os.Open(*svgFlag)
		if err != nil {
			return hull, cg, err
		}
		defer f.Close()
		hull, err = hullio.ReadSVG(f)
	default:
		hull, err = hullio.ReadPoints(os.Stdin)
	}
	if err != nil {
		return hull, cg, err
	}

	if *cgFlag != "" {
		cg, err = parseCG(*cgFlag)
	}
	return hull, cg, err
}

func parseCG(s string) (hydrostatic.Point, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return hydrostatic.Point{}, fmt.Errorf("invalid cg %q, want \"x,y\"", s)
	}
	x, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return hydrostatic.Point{}, err
	}
	y, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return hydrostatic.Point{}, err
	}
	return hydrostatic.Point{X: x, Y: y}, nil
}

// An equilibrium is stable when GZ has positive slope through it: heeling
// further produces a restoring arm. Probe half a degree to each side.
func stabilityLabel(hull hydrostatic.Curve, cg hydrostatic.Point, angleDeg float64) string {
	arms, err := hydrostatic.RightingArmCurve(hull, cg, *targetArea, []float64{angleDeg - 0.5, angleDeg + 0.5})
	if err != nil {
		return aurora.Yellow("unknown").String()
	}
	if arms[1] > arms[0] {
		return aurora.Green("stable").String()
	}
	return aurora.Red("unstable").String()
}
