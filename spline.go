package figure

// buildCubicSpline returns a path of cubic Béziers through all points with continuous first and
// second derivatives. Open splines use natural end conditions, closed splines are periodic.
func buildCubicSpline(K []Point, closed bool) (*Path, Point, Point) {
	if len(K) == 2 {
		// straight line, also when closed
		d := K[1].Sub(K[0])
		p := &Path{}
		p.MoveTo(K[0].X, K[0].Y)
		p.LineTo(K[1].X, K[1].Y)
		if closed {
			p.Close()
			return p, d, d.Neg()
		}
		return p, d, d
	}

	var p1, p2 []Point
	if closed {
		K = append(append([]Point{}, K...), K[0])
		p1, p2 = periodicControlPoints(K)
	} else {
		p1, p2 = naturalControlPoints(K)
	}

	n := len(K) - 1
	p := &Path{}
	p.MoveTo(K[0].X, K[0].Y)
	for i := 0; i < n; i++ {
		p.CubeTo(p1[i].X, p1[i].Y, p2[i].X, p2[i].Y, K[i+1].X, K[i+1].Y)
	}
	if closed {
		p.Close()
	}
	start := p1[0].Sub(K[0]).Mul(3.0)
	end := K[n].Sub(p2[n-1]).Mul(3.0)
	return p, start, end
}

// naturalControlPoints solves the tridiagonal system for the Bézier control points of an open spline.
// Based on Polyline.Smoothen, see https://www.particleincell.com/2012/bezier-splines/
func naturalControlPoints(K []Point) ([]Point, []Point) {
	n := len(K) - 1
	p1 := make([]Point, n)
	p2 := make([]Point, n)

	a := make([]float64, n)
	b := make([]float64, n)
	c := make([]float64, n)
	d := make([]Point, n)
	b[0] = 2.0
	c[0] = 1.0
	d[0] = K[0].Add(K[1].Mul(2.0))
	for i := 1; i < n-1; i++ {
		a[i] = 1.0
		b[i] = 4.0
		c[i] = 1.0
		d[i] = K[i].Mul(4.0).Add(K[i+1].Mul(2.0))
	}
	a[n-1] = 2.0
	b[n-1] = 7.0
	d[n-1] = K[n].Add(K[n-1].Mul(8.0))

	// Thomas algorithm
	for i := 1; i < n; i++ {
		w := a[i] / b[i-1]
		b[i] -= w * c[i-1]
		d[i] = d[i].Sub(d[i-1].Mul(w))
	}

	p1[n-1] = d[n-1].Div(b[n-1])
	for i := n - 2; i >= 0; i-- {
		p1[i] = d[i].Sub(p1[i+1].Mul(c[i])).Div(b[i])
	}
	for i := 0; i < n-1; i++ {
		p2[i] = K[i+1].Mul(2.0).Sub(p1[i+1])
	}
	p2[n-1] = K[n].Add(p1[n-1]).Mul(0.5)
	return p1, p2
}

// periodicControlPoints solves the cyclic tridiagonal system for a closed spline, K must end with
// its first point and have at least three distinct points.
// Based on Polyline.Smoothen, see http://www.jacos.nl/jacos_html/spline/circular/index.html
func periodicControlPoints(K []Point) ([]Point, []Point) {
	n := len(K) - 1
	p1 := make([]Point, n+1)
	p2 := make([]Point, n)

	a := make([]float64, n)
	b := make([]float64, n)
	c := make([]float64, n)
	d := make([]Point, n)
	for i := 0; i < n; i++ {
		a[i] = 1.0
		b[i] = 4.0
		c[i] = 1.0
		d[i] = K[i].Mul(4.0).Add(K[i+1].Mul(2.0))
	}

	lc := make([]float64, n)
	lc[0] = a[0]
	lr := c[n-1]
	for i := 0; i < n-3; i++ {
		m := a[i+1] / b[i]
		b[i+1] -= m * c[i]
		d[i+1] = d[i+1].Sub(d[i].Mul(m))
		lc[i+1] = -m * lc[i]
		m = lr / b[i]
		b[n-1] -= m * lc[i]
		lr = -m * c[i]
		d[n-1] = d[n-1].Sub(d[i].Mul(m))
	}

	i := n - 3
	m := a[i+1] / b[i]
	b[i+1] -= m * c[i]
	d[i+1] = d[i+1].Sub(d[i].Mul(m))
	c[i+1] -= m * lc[i]
	m = lr / b[i]
	b[n-1] -= m * lc[i]
	a[n-1] -= m * c[i]
	d[n-1] = d[n-1].Sub(d[i].Mul(m))

	i = n - 2
	m = a[i+1] / b[i]
	b[i+1] -= m * c[i]
	d[i+1] = d[i+1].Sub(d[i].Mul(m))

	p1[n-1] = d[n-1].Div(b[n-1])
	lc[n-2] = 0.0
	for i := n - 2; i >= 0; i-- {
		p1[i] = d[i].Sub(p1[i+1].Mul(c[i])).Sub(p1[n-1].Mul(lc[i])).Div(b[i])
	}
	p1[n] = p1[0]
	for i := 0; i < n; i++ {
		p2[i] = K[i+1].Mul(2.0).Sub(p1[i+1])
	}
	return p1[:n], p2
}

// buildQuadraticSpline returns a path of quadratic Béziers through all points with a continuous
// tangent. The tangent at every point follows Catmull-Rom, and each span between two points is made
// of two quadratic Béziers that meet halfway between their control points.
func buildQuadraticSpline(K []Point, closed bool) (*Path, Point, Point) {
	n := len(K)
	T := make([]Point, n)
	for i := range K {
		prev, next := i-1, i+1
		if closed {
			prev, next = (i+n-1)%n, (i+1)%n
		} else if i == 0 {
			T[i] = K[1].Sub(K[0])
			continue
		} else if i == n-1 {
			T[i] = K[n-1].Sub(K[n-2])
			continue
		}
		T[i] = K[next].Sub(K[prev]).Mul(0.5)
	}

	spans := n - 1
	if closed {
		spans = n
	}

	p := &Path{}
	p.MoveTo(K[0].X, K[0].Y)
	var start, end Point
	for i := 0; i < spans; i++ {
		j := (i + 1) % n
		a := K[i].Add(T[i].Mul(0.25))
		b := K[j].Sub(T[j].Mul(0.25))
		mid := a.Interpolate(b, 0.5)
		p.QuadTo(a.X, a.Y, mid.X, mid.Y)
		p.QuadTo(b.X, b.Y, K[j].X, K[j].Y)
		if i == 0 {
			start = a.Sub(K[i]).Mul(2.0)
		}
		end = K[j].Sub(b).Mul(2.0)
	}
	if closed {
		p.Close()
	}
	return p, start, end
}
