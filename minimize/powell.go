package minimize

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

const (
	gold          = 1.618034
	cgold         = 0.3819660
	glimit        = 100.0
	tiny          = 1e-20
	zeps          = 1e-10
	maxBracketing = 200
	maxBrent      = 100
)

// Powell is a conjugate-direction minimizer. The search starts along the
// coordinate axes scaled by Settings.Step, and each iteration replaces the
// direction of largest decrease with the net displacement of that iteration.
// With Settings.StepGrowth set, no line search moves further than
// StepGrowth*Step, which keeps the search local on flat ridges.
type Powell struct{}

func (Powell) Minimize(f Function, x0 []float64, settings Settings) Result {
	dim := f.Dim()
	x := append([]float64(nil), x0...)

	dirs := make([][]float64, dim)
	for i := range dirs {
		dirs[i] = make([]float64, dim)
		dirs[i][i] = settings.Step
	}

	fx := eval(f, x)
	pt := append([]float64(nil), x[:dim]...)
	ptt := make([]float64, len(x))
	copy(ptt, x)
	xit := make([]float64, dim)

	tol := settings.StartTolerance
	if tol < settings.EndTolerance {
		tol = settings.EndTolerance
	}

	res := Result{}
	for res.Iter = 0; res.Iter < settings.MaxIterations; res.Iter++ {
		fp := fx
		ibig := 0
		del := 0.0
		for i, dir := range dirs {
			fptt := fx
			fx = lineMinimize(f, x, dir, fx, settings)
			if fptt-fx > del {
				del = fptt - fx
				ibig = i
			}
		}

		res.FinalDelta = fp - fx
		if 2*(fp-fx) <= tol*(math.Abs(fp)+math.Abs(fx))+tiny {
			if tol <= settings.EndTolerance {
				res.Converged = true
				res.Iter++
				break
			}
			tol = math.Max(tol*0.1, settings.EndTolerance)
		}

		// extrapolated point and average direction of this iteration
		floats.SubTo(xit, x[:dim], pt)
		copy(ptt, x)
		floats.Add(ptt[:dim], xit)
		copy(pt, x[:dim])

		fptt := eval(f, ptt)
		if fptt < fp {
			t := 2*(fp-2*fx+fptt)*sq(fp-fx-del) - del*sq(fp-fptt)
			if t < 0 && floats.Norm(xit, 2) > 0 {
				fx = lineMinimize(f, x, xit, fx, settings)
				dirs[ibig] = dirs[dim-1]
				dirs[dim-1] = append([]float64(nil), xit...)
			}
		}
	}

	res.X = x
	res.F = fx
	return res
}

// lineMinimize moves x to the minimum of f along dir and returns the new
// value of f. fx must be f(x).
func lineMinimize(f Function, x, dir []float64, fx float64, settings Settings) float64 {
	dim := len(dir)
	limit := lineLimit(dir, settings)
	origin := append([]float64(nil), x[:dim]...)
	trial := append([]float64(nil), x...)

	g := func(a float64) float64 {
		copy(trial[:dim], origin)
		floats.AddScaled(trial[:dim], a, dir)
		return eval(f, trial)
	}

	ax, bx, cx, _, fb, fc := bracket(g, 0, math.Min(1, limit), fx, limit)
	xmin, fmin := brent(g, ax, bx, cx, fb, settings.LineTolerance)

	// an open bracket can leave its lowest value at the far end
	if fc < fmin {
		xmin, fmin = cx, fc
	}
	if fmin > fx {
		return fx
	}

	floats.AddScaled(x[:dim], xmin, dir)
	return fmin
}

// lineLimit is the largest step along dir, in units of dir, allowed by the
// step growth setting
func lineLimit(dir []float64, settings Settings) float64 {
	norm := floats.Norm(dir, 2)
	if settings.StepGrowth <= 0 || norm == 0 {
		return math.Inf(1)
	}
	return settings.StepGrowth * settings.Step / norm
}

// bracket finds a < b < c (or a > b > c) with f(b) below f(a) and f(c).
// No point further than limit from 0 is evaluated. The search gives up at the
// limit or after a bounded number of expansions, which leaves a valid but
// open bracket on objectives that keep decreasing.
func bracket(g func(float64) float64, a, b, fa, limit float64) (float64, float64, float64, float64, float64, float64) {
	clamp := func(u float64) float64 {
		return math.Max(-limit, math.Min(limit, u))
	}

	fb := g(b)
	if fb > fa {
		a, b = b, a
		fa, fb = fb, fa
	}
	c := clamp(b + gold*(b-a))
	fc := g(c)

	for i := 0; fb > fc && math.Abs(c) < limit && i < maxBracketing; i++ {
		r := (b - a) * (fb - fc)
		q := (b - c) * (fb - fa)
		u := clamp(b - ((b-c)*q-(b-a)*r)/(2*sign(math.Max(math.Abs(q-r), tiny), q-r)))
		ulim := clamp(b + glimit*(c-b))
		var fu float64

		switch {
		case (b-u)*(u-c) > 0:
			fu = g(u)
			if fu < fc {
				return b, u, c, fb, fu, fc
			} else if fu > fb {
				return a, b, u, fa, fb, fu
			}
			u = clamp(c + gold*(c-b))
			fu = g(u)
		case (c-u)*(u-ulim) > 0:
			fu = g(u)
			if fu < fc {
				b, c, u = c, u, clamp(u+gold*(u-c))
				fb, fc = fc, fu
				fu = g(u)
			}
		case (u-ulim)*(ulim-c) >= 0:
			u = ulim
			fu = g(u)
		default:
			u = clamp(c + gold*(c-b))
			fu = g(u)
		}

		a, b, c = b, c, u
		fa, fb, fc = fb, fc, fu
	}
	return a, b, c, fa, fb, fc
}

// brent locates the minimum inside the bracket (ax, bx, cx), fbx = g(bx)
func brent(g func(float64) float64, ax, bx, cx, fbx, tol float64) (float64, float64) {
	a, b := math.Min(ax, cx), math.Max(ax, cx)
	x, w, v := bx, bx, bx
	fx, fw, fv := fbx, fbx, fbx
	d, e := 0.0, 0.0

	for iter := 0; iter < maxBrent; iter++ {
		xm := 0.5 * (a + b)
		tol1 := tol*math.Abs(x) + zeps
		tol2 := 2 * tol1
		if math.Abs(x-xm) <= tol2-0.5*(b-a) {
			break
		}

		if math.Abs(e) > tol1 {
			r := (x - w) * (fx - fv)
			q := (x - v) * (fx - fw)
			p := (x-v)*q - (x-w)*r
			q = 2 * (q - r)
			if q > 0 {
				p = -p
			}
			q = math.Abs(q)
			etemp := e
			e = d
			if math.Abs(p) >= math.Abs(0.5*q*etemp) || p <= q*(a-x) || p >= q*(b-x) {
				e = goldenStep(x, xm, a, b)
				d = cgold * e
			} else {
				d = p / q
				u := x + d
				if u-a < tol2 || b-u < tol2 {
					d = sign(tol1, xm-x)
				}
			}
		} else {
			e = goldenStep(x, xm, a, b)
			d = cgold * e
		}

		u := x + sign(tol1, d)
		if math.Abs(d) >= tol1 {
			u = x + d
		}
		fu := g(u)

		if fu <= fx {
			if u >= x {
				a = x
			} else {
				b = x
			}
			v, w, x = w, x, u
			fv, fw, fx = fw, fx, fu
		} else {
			if u < x {
				a = u
			} else {
				b = u
			}
			if fu <= fw || w == x {
				v, w = w, u
				fv, fw = fw, fu
			} else if fu <= fv || v == x || v == w {
				v = u
				fv = fu
			}
		}
	}
	return x, fx
}

func goldenStep(x, xm, a, b float64) float64 {
	if x >= xm {
		return a - x
	}
	return b - x
}

func sign(a, b float64) float64 {
	if b >= 0 {
		return math.Abs(a)
	}
	return -math.Abs(a)
}

func sq(a float64) float64 {
	return a * a
}
