package shape

import (
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

// Inspect logs the explained variance ratio of every sub-path with more
// than one point. Inspection is diagnostic only: the collection is not
// modified and nothing feeds back into later stages. A contour whose
// variance splits evenly across both components spreads symmetrically
// around its centroid; a split like {1, 0} means the points sit on a
// line.
func Inspect(c Collection) {
	log := Logger()
	for si, s := range c {
		for pi, sp := range s {
			ratios, ok := VarianceRatios(sp)
			if !ok {
				continue
			}
			log.Info("explained variance ratio",
				"shape", si, "subpath", pi,
				"major", ratios[0], "minor", ratios[1])
		}
	}
}

// VarianceRatios runs a two-component principal component analysis over
// the sub-path's points and returns the share of total variance
// explained by each component, largest first. ok is false when the
// sub-path has fewer than 2 points or the decomposition fails. A
// sub-path of identical points has nothing to explain and reports
// {0, 0}.
func VarianceRatios(sp SubPath) (ratios [2]float64, ok bool) {
	if len(sp) < 2 {
		return ratios, false
	}
	data := mat.NewDense(len(sp), 2, nil)
	for i, p := range sp {
		data.Set(i, 0, p.X)
		data.Set(i, 1, p.Y)
	}
	var pc stat.PC
	if !pc.PrincipalComponents(data, nil) {
		return ratios, false
	}
	vars := pc.VarsTo(nil)
	total := 0.0
	for _, v := range vars {
		total += v
	}
	if total <= 0 {
		return ratios, true
	}
	for i := 0; i < len(vars) && i < 2; i++ {
		ratios[i] = vars[i] / total
	}
	return ratios, true
}
