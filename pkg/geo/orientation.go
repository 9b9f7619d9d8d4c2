// Copyright (c) 2014, Kevin Walsh.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package geo

// Point is a named location in the plane. Coordinates are only ever
// consulted by the orientation guard (see sameOrientation); every other rule
// and every external query works purely in terms of point names.
type Point struct {
	Name string
	X, Y int64
}

// signedArea2 returns twice the signed area of the polygon with the given
// vertices, via the shoelace sum. Positive means clockwise, negative
// counterclockwise, zero means degenerate (collinear or repeated points).
func signedArea2(pts []Point) int64 {
	var sum int64
	n := len(pts)
	for i := 0; i < n; i++ {
		p := pts[i]
		q := pts[(i+1)%n]
		sum += (q.X - p.X) * (q.Y + p.Y)
	}
	return sum
}

// sameOrientation reports whether two (possibly degenerate) triangles or
// polygons, given as point lists, wind the same way: clockwise vs.
// counterclockwise. This is the only place in the rule base that touches
// coordinates; every other predicate and rule reasons purely about names.
// It is used to rule out mirror-image "similar" triangles in aa_sim.
func sameOrientation(l1, l2 []Point) bool {
	a1 := signedArea2(l1)
	a2 := signedArea2(l2)
	return a1*a2 > 0
}
