// Package tensor renders diagonal inertia tensors as text.
package tensor

import (
	"fmt"
	"math"
	"strconv"
)

// Value renders v with the fewest digits that round-trip a float32 and
// never switches to exponent notation.
func Value(v float32) string {
	switch {
	case math.IsInf(float64(v), 1):
		return "inf"
	case math.IsInf(float64(v), -1):
		return "-inf"
	}
	return strconv.FormatFloat(float64(v), 'f', -1, 32)
}

// Format lays the three principal moments out on the diagonal of a 3x3
// matrix. Every off-diagonal entry is zero.
func Format(ix, iy, iz float32) string {
	return fmt.Sprintf("Moment of inertia matrix:\n\nixx=%s ixy=0 ixz=0\niyx=0 iyy=%s iyz=0\nizx=0 izy=0 izz=%s\n",
		Value(ix), Value(iy), Value(iz))
}

// Tag renders the URDF <inertia/> element for the same tensor.
func Tag(ix, iy, iz float32) string {
	return fmt.Sprintf(`<inertia ixx="%s" ixy="0" ixz="0" iyy="%s" iyz="0" izz="%s"/>`,
		Value(ix), Value(iy), Value(iz))
}
