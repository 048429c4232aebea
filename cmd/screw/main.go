// Command screw samples a rigid motion interpolated along a screw axis and
// prints the trajectory of a point.
//
//	screw -axis 1,0,0 -dir 0,0,1 -angle 180 -distance 4 -p 2,0,0 -n 8
package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"math"
	"strconv"
	"strings"

	"dasa.cc/ga/pga"
)

type vec3 [3]float32

func (v *vec3) String() string { return fmt.Sprintf("%v,%v,%v", v[0], v[1], v[2]) }

func (v *vec3) Set(x string) error {
	p := strings.Split(x, ",")
	if len(p) != 3 {
		return errors.New("want x,y,z")
	}
	for i, s := range p {
		f, err := strconv.ParseFloat(strings.TrimSpace(s), 32)
		if err != nil {
			return err
		}
		v[i] = float32(f)
	}
	return nil
}

var (
	flagAxis     = vec3{0, 0, 0}
	flagDir      = vec3{0, 0, 1}
	flagPoint    = vec3{1, 0, 0}
	flagAngle    = flag.Float64("angle", 360, "Total rotation about the axis in degrees.")
	flagDistance = flag.Float64("distance", 1, "Total translation along the axis.")
	flagSteps    = flag.Int("n", 12, "Number of interpolation steps.")
	flagPNG      = flag.String("png", "", "If set, plot the trajectory projected on the xy plane to this file.")
)

func main() {
	flag.Var(&flagAxis, "axis", "A point on the screw axis, x,y,z.")
	flag.Var(&flagDir, "dir", "Direction of the screw axis, x,y,z.")
	flag.Var(&flagPoint, "p", "Point to carry along the motion, x,y,z.")
	flag.Parse()

	if *flagSteps < 1 {
		log.Fatalf("need at least one step, have %v", *flagSteps)
	}
	a := pga.NewPoint(flagAxis[0], flagAxis[1], flagAxis[2])
	b := pga.NewPoint(flagAxis[0]+flagDir[0], flagAxis[1]+flagDir[1], flagAxis[2]+flagDir[2])
	axis := a.JoinPoint(b)
	if axis.Branch().Norm() == 0 {
		log.Fatal("axis direction must be nonzero")
	}

	from := pga.NewMotor(1, 0, 0, 0, 0, 0, 0, 0)
	to := pga.NewMotorScrew(float32(*flagAngle*math.Pi/180), float32(*flagDistance), axis)

	x := pga.NewPoint(flagPoint[0], flagPoint[1], flagPoint[2])
	path := Trajectory(from, to, x, *flagSteps)
	for i, p := range path {
		fmt.Printf("%3d % .4f % .4f % .4f\n", i, p.X(), p.Y(), p.Z())
	}

	if *flagPNG != "" {
		if err := Plot(*flagPNG, path); err != nil {
			log.Fatalf("plot failed: %v", err)
		}
	}
}

// Trajectory returns x moved by n+1 evenly spaced motors between from and to.
func Trajectory(from, to pga.Motor, x pga.Point, n int) []pga.Point {
	path := make([]pga.Point, n+1)
	for i := range path {
		m := from.Interpolate(to, float32(i)/float32(n))
		path[i] = m.ApplyPoint(x).Normalized()
	}
	return path
}
