// Package intersect finds the geometric crossing points of two polylines.
// Segment pairs are pruned by axis-aligned bounding boxes before the exact
// 2x2 solve; the pruning mask is kept sparse because on monotone EOS curves
// only a thin band of pairs survives.
package intersect

import (
	"math"
	"sort"

	"github.com/james-bowman/sparse"
	"gonum.org/v1/gonum/mat"
)

// segment pairs with |det| below detEps are treated as parallel and
// non-intersecting, never as an error.
const detEps = 1e-12

// Point is a single crossing location.
type Point struct {
	X, Y float64
}

// Curves returns every point where polyline (x1,y1) crosses (x2,y2), in
// discovery order (ascending segment index of the first curve). Samples with
// non-finite coordinates break the polyline; segments touching them are
// skipped, so masked curve regions cannot produce spurious crossings.
func Curves(x1, y1, x2, y2 []float64) (pts []Point) {
	var (
		n1 = len(x1) - 1
		n2 = len(x2) - 1
	)
	if n1 < 1 || n2 < 1 {
		return nil
	}
	mask := boundingBoxMask(x1, y1, x2, y2)
	var cands [][2]int
	mask.ToCSR().DoNonZero(func(i, j int, _ float64) {
		cands = append(cands, [2]int{i, j})
	})
	// the sparse mask stores pairs unordered; restore segment order so the
	// first reported crossing is deterministic
	sort.Slice(cands, func(a, b int) bool {
		if cands[a][0] != cands[b][0] {
			return cands[a][0] < cands[b][0]
		}
		return cands[a][1] < cands[b][1]
	})
	for _, c := range cands {
		i, j := c[0], c[1]
		if p, ok := segmentPair(
			x1[i], y1[i], x1[i+1], y1[i+1],
			x2[j], y2[j], x2[j+1], y2[j+1]); ok {
			pts = append(pts, p)
		}
	}
	return
}

// boundingBoxMask marks candidate segment pairs whose AABBs overlap.
func boundingBoxMask(x1, y1, x2, y2 []float64) (mask *sparse.DOK) {
	var (
		n1 = len(x1) - 1
		n2 = len(x2) - 1
	)
	mask = sparse.NewDOK(n1, n2)
	for i := 0; i < n1; i++ {
		if !finite4(x1[i], y1[i], x1[i+1], y1[i+1]) {
			continue
		}
		xlo, xhi := minmax(x1[i], x1[i+1])
		ylo, yhi := minmax(y1[i], y1[i+1])
		for j := 0; j < n2; j++ {
			if !finite4(x2[j], y2[j], x2[j+1], y2[j+1]) {
				continue
			}
			alo, ahi := minmax(x2[j], x2[j+1])
			blo, bhi := minmax(y2[j], y2[j+1])
			if xlo <= ahi && xhi >= alo && ylo <= bhi && yhi >= blo {
				mask.Set(i, j, 1)
			}
		}
	}
	return
}

// segmentPair solves for the parameters (t1, t2) at which the two segments
// meet and accepts the crossing only when both lie in [0,1].
func segmentPair(ax0, ay0, ax1, ay1, bx0, by0, bx1, by1 float64) (p Point, ok bool) {
	var (
		dax, day = ax1 - ax0, ay1 - ay0
		dbx, dby = bx1 - bx0, by1 - by0
		A        = mat.NewDense(2, 2, []float64{dax, -dbx, day, -dby})
		b        = mat.NewVecDense(2, []float64{bx0 - ax0, by0 - ay0})
		t        mat.VecDense
	)
	if math.Abs(mat.Det(A)) < detEps {
		// parallel or degenerate, including coincident overlap
		return Point{}, false
	}
	if err := t.SolveVec(A, b); err != nil {
		return Point{}, false
	}
	t1, t2 := t.AtVec(0), t.AtVec(1)
	if t1 < 0 || t1 > 1 || t2 < 0 || t2 > 1 {
		return Point{}, false
	}
	return Point{X: ax0 + t1*dax, Y: ay0 + t1*day}, true
}

func minmax(a, b float64) (lo, hi float64) {
	if a < b {
		return a, b
	}
	return b, a
}

func finite4(a, b, c, d float64) bool {
	return finite(a) && finite(b) && finite(c) && finite(d)
}

func finite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
