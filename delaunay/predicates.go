package delaunay

// Adaptive-precision geometric predicates after Shewchuk's "Adaptive
// Precision Floating-Point Arithmetic and Fast Robust Geometric Predicates".
// The naive determinant evaluations used by most triangulation code (compare
// the pack's simple inCircle tests) misclassify near-degenerate inputs due
// to cancellation; here every decision falls back to exact expansion
// arithmetic whenever the floating-point estimate cannot be trusted. The
// predicates are total over finite coordinates; NaN and infinities are
// rejected at the insertion boundary and never reach this file.

// Orientation is the result of the orientation test for an ordered point
// triple.
type Orientation int

const (
	RightTurn Orientation = -1
	Collinear Orientation = 0
	LeftTurn  Orientation = 1
)

func (o Orientation) String() string {
	switch o {
	case RightTurn:
		return "RightTurn"
	case Collinear:
		return "Collinear"
	case LeftTurn:
		return "LeftTurn"
	}
	return "InvalidOrientation"
}

const (
	// 2^-53, the relative rounding error of float64 arithmetic.
	epsilon = 1.1102230246251565e-16
	// 2^27 + 1, used to split a float64 into two half-precision factors.
	splitter = 134217729.0

	resultErrBound = (3 + 8*epsilon) * epsilon
	ccwErrBoundA   = (3 + 16*epsilon) * epsilon
	ccwErrBoundB   = (2 + 12*epsilon) * epsilon
	ccwErrBoundC   = (9 + 64*epsilon) * epsilon * epsilon
	iccErrBoundA   = (10 + 96*epsilon) * epsilon
	iccErrBoundB   = (4 + 48*epsilon) * epsilon
	iccErrBoundC   = (44 + 576*epsilon) * epsilon * epsilon
)

// orient2d classifies c relative to the directed line from a to b: LeftTurn
// if abc winds counterclockwise, RightTurn if clockwise, Collinear if the
// three points lie exactly on a common line.
func orient2d(a, b, c Point) Orientation {
	detLeft := (a.X - c.X) * (b.Y - c.Y)
	detRight := (a.Y - c.Y) * (b.X - c.X)
	det := detLeft - detRight

	var detSum float64
	if detLeft > 0 {
		if detRight <= 0 {
			return orientationOfSign(det)
		}
		detSum = detLeft + detRight
	} else if detLeft < 0 {
		if detRight >= 0 {
			return orientationOfSign(det)
		}
		detSum = -detLeft - detRight
	} else {
		return orientationOfSign(det)
	}

	errBound := ccwErrBoundA * detSum
	if det >= errBound || -det >= errBound {
		return orientationOfSign(det)
	}

	return orientationOfSign(orient2dAdapt(a, b, c, detSum))
}

func orientationOfSign(det float64) Orientation {
	if det > 0 {
		return LeftTurn
	}
	if det < 0 {
		return RightTurn
	}
	return Collinear
}

func orient2dAdapt(a, b, c Point, detSum float64) float64 {
	acx := a.X - c.X
	bcx := b.X - c.X
	acy := a.Y - c.Y
	bcy := b.Y - c.Y

	detLeft, detLeftTail := twoProduct(acx, bcy)
	detRight, detRightTail := twoProduct(acy, bcx)

	var bExp [4]float64
	bExp[3], bExp[2], bExp[1], bExp[0] = twoTwoDiff(detLeft, detLeftTail, detRight, detRightTail)

	det := estimate(bExp[:])
	errBound := ccwErrBoundB * detSum
	if det >= errBound || -det >= errBound {
		return det
	}

	acxTail := twoDiffTail(a.X, c.X, acx)
	bcxTail := twoDiffTail(b.X, c.X, bcx)
	acyTail := twoDiffTail(a.Y, c.Y, acy)
	bcyTail := twoDiffTail(b.Y, c.Y, bcy)

	if acxTail == 0 && acyTail == 0 && bcxTail == 0 && bcyTail == 0 {
		return det
	}

	errBound = ccwErrBoundC*detSum + resultErrBound*abs(det)
	det += (acx*bcyTail + bcy*acxTail) - (acy*bcxTail + bcx*acyTail)
	if det >= errBound || -det >= errBound {
		return det
	}

	var u [4]float64
	s1, s0 := twoProduct(acxTail, bcy)
	t1, t0 := twoProduct(acyTail, bcx)
	u[3], u[2], u[1], u[0] = twoTwoDiff(s1, s0, t1, t0)
	var c1Exp [8]float64
	c1Len := fastExpansionSumZeroElim(bExp[:], u[:], c1Exp[:])

	s1, s0 = twoProduct(acx, bcyTail)
	t1, t0 = twoProduct(acy, bcxTail)
	u[3], u[2], u[1], u[0] = twoTwoDiff(s1, s0, t1, t0)
	var c2Exp [12]float64
	c2Len := fastExpansionSumZeroElim(c1Exp[:c1Len], u[:], c2Exp[:])

	s1, s0 = twoProduct(acxTail, bcyTail)
	t1, t0 = twoProduct(acyTail, bcxTail)
	u[3], u[2], u[1], u[0] = twoTwoDiff(s1, s0, t1, t0)
	var dExp [16]float64
	dLen := fastExpansionSumZeroElim(c2Exp[:c2Len], u[:], dExp[:])

	return dExp[dLen-1]
}

// InCircleLocation is the result of the in-circle test.
type InCircleLocation int

const (
	OutsideCircle InCircleLocation = -1
	OnCircle      InCircleLocation = 0
	InsideCircle  InCircleLocation = 1
)

// inCircle classifies d against the circle through a, b and c. The triple
// (a, b, c) must wind counterclockwise; the result is then InsideCircle if d
// lies strictly inside the circumcircle. When the inputs are collinear, the
// "circle" degenerates to a line and the test degrades to an orientation
// query, keeping the predicate total and consistent with orient2d.
func inCircle(a, b, c, d Point) InCircleLocation {
	adx := a.X - d.X
	bdx := b.X - d.X
	cdx := c.X - d.X
	ady := a.Y - d.Y
	bdy := b.Y - d.Y
	cdy := c.Y - d.Y

	bdxcdy := bdx * cdy
	cdxbdy := cdx * bdy
	alift := adx*adx + ady*ady

	cdxady := cdx * ady
	adxcdy := adx * cdy
	blift := bdx*bdx + bdy*bdy

	adxbdy := adx * bdy
	bdxady := bdx * ady
	clift := cdx*cdx + cdy*cdy

	det := alift*(bdxcdy-cdxbdy) + blift*(cdxady-adxcdy) + clift*(adxbdy-bdxady)

	permanent := (abs(bdxcdy)+abs(cdxbdy))*alift +
		(abs(cdxady)+abs(adxcdy))*blift +
		(abs(adxbdy)+abs(bdxady))*clift
	errBound := iccErrBoundA * permanent
	if det > errBound || -det > errBound {
		return inCircleOfSign(det)
	}

	return inCircleOfSign(inCircleAdapt(a, b, c, d, permanent))
}

func inCircleOfSign(det float64) InCircleLocation {
	if det > 0 {
		return InsideCircle
	}
	if det < 0 {
		return OutsideCircle
	}
	return OnCircle
}

func inCircleAdapt(a, b, c, d Point, permanent float64) float64 {
	adx := a.X - d.X
	bdx := b.X - d.X
	cdx := c.X - d.X
	ady := a.Y - d.Y
	bdy := b.Y - d.Y
	cdy := c.Y - d.Y

	bdxcdy1, bdxcdy0 := twoProduct(bdx, cdy)
	cdxbdy1, cdxbdy0 := twoProduct(cdx, bdy)
	var bc [4]float64
	bc[3], bc[2], bc[1], bc[0] = twoTwoDiff(bdxcdy1, bdxcdy0, cdxbdy1, cdxbdy0)
	var axbc, aybc [8]float64
	axbcLen := scaleExpansionZeroElim(bc[:], adx, axbc[:])
	var axxbc [16]float64
	axxbcLen := scaleExpansionZeroElim(axbc[:axbcLen], adx, axxbc[:])
	aybcLen := scaleExpansionZeroElim(bc[:], ady, aybc[:])
	var ayybc [16]float64
	ayybcLen := scaleExpansionZeroElim(aybc[:aybcLen], ady, ayybc[:])
	var adet [32]float64
	adetLen := fastExpansionSumZeroElim(axxbc[:axxbcLen], ayybc[:ayybcLen], adet[:])

	cdxady1, cdxady0 := twoProduct(cdx, ady)
	adxcdy1, adxcdy0 := twoProduct(adx, cdy)
	var ca [4]float64
	ca[3], ca[2], ca[1], ca[0] = twoTwoDiff(cdxady1, cdxady0, adxcdy1, adxcdy0)
	var bxca, byca [8]float64
	bxcaLen := scaleExpansionZeroElim(ca[:], bdx, bxca[:])
	var bxxca [16]float64
	bxxcaLen := scaleExpansionZeroElim(bxca[:bxcaLen], bdx, bxxca[:])
	bycaLen := scaleExpansionZeroElim(ca[:], bdy, byca[:])
	var byyca [16]float64
	byycaLen := scaleExpansionZeroElim(byca[:bycaLen], bdy, byyca[:])
	var bdet [32]float64
	bdetLen := fastExpansionSumZeroElim(bxxca[:bxxcaLen], byyca[:byycaLen], bdet[:])

	adxbdy1, adxbdy0 := twoProduct(adx, bdy)
	bdxady1, bdxady0 := twoProduct(bdx, ady)
	var ab [4]float64
	ab[3], ab[2], ab[1], ab[0] = twoTwoDiff(adxbdy1, adxbdy0, bdxady1, bdxady0)
	var cxab, cyab [8]float64
	cxabLen := scaleExpansionZeroElim(ab[:], cdx, cxab[:])
	var cxxab [16]float64
	cxxabLen := scaleExpansionZeroElim(cxab[:cxabLen], cdx, cxxab[:])
	cyabLen := scaleExpansionZeroElim(ab[:], cdy, cyab[:])
	var cyyab [16]float64
	cyyabLen := scaleExpansionZeroElim(cyab[:cyabLen], cdy, cyyab[:])
	var cdet [32]float64
	cdetLen := fastExpansionSumZeroElim(cxxab[:cxxabLen], cyyab[:cyyabLen], cdet[:])

	var abdet [64]float64
	abdetLen := fastExpansionSumZeroElim(adet[:adetLen], bdet[:bdetLen], abdet[:])
	var fin1 [1152]float64
	finLen := fastExpansionSumZeroElim(abdet[:abdetLen], cdet[:cdetLen], fin1[:])

	det := estimate(fin1[:finLen])
	errBound := iccErrBoundB * permanent
	if det >= errBound || -det >= errBound {
		return det
	}

	adxTail := twoDiffTail(a.X, d.X, adx)
	adyTail := twoDiffTail(a.Y, d.Y, ady)
	bdxTail := twoDiffTail(b.X, d.X, bdx)
	bdyTail := twoDiffTail(b.Y, d.Y, bdy)
	cdxTail := twoDiffTail(c.X, d.X, cdx)
	cdyTail := twoDiffTail(c.Y, d.Y, cdy)
	if adxTail == 0 && bdxTail == 0 && cdxTail == 0 &&
		adyTail == 0 && bdyTail == 0 && cdyTail == 0 {
		return det
	}

	errBound = iccErrBoundC*permanent + resultErrBound*abs(det)
	det += ((adx*adx+ady*ady)*((bdx*cdyTail+cdy*bdxTail)-(bdy*cdxTail+cdx*bdyTail)) +
		2*(adx*adxTail+ady*adyTail)*(bdx*cdy-bdy*cdx)) +
		((bdx*bdx+bdy*bdy)*((cdx*adyTail+ady*cdxTail)-(cdy*adxTail+adx*cdyTail)) +
			2*(bdx*bdxTail+bdy*bdyTail)*(cdx*ady-cdy*adx)) +
		((cdx*cdx+cdy*cdy)*((adx*bdyTail+bdy*adxTail)-(ady*bdxTail+bdx*adyTail)) +
			2*(cdx*cdxTail+cdy*cdyTail)*(adx*bdy-ady*bdx))
	if det >= errBound || -det >= errBound {
		return det
	}

	// The estimate is still inconclusive. Fall through to the fully exact
	// evaluation of the remaining determinant terms.
	return inCircleExactTail(adx, ady, bdx, bdy, cdx, cdy,
		adxTail, adyTail, bdxTail, bdyTail, cdxTail, cdyTail,
		fin1[:], finLen)
}

// inCircleExactTail finishes the in-circle determinant exactly, folding
// every remaining tail term into the running expansion. Reached only for
// inputs within a few ulps of cocircularity; the sign of the returned value
// is then exact.
func inCircleExactTail(adx, ady, bdx, bdy, cdx, cdy,
	adxTail, adyTail, bdxTail, bdyTail, cdxTail, cdyTail float64,
	fin []float64, finLen int) float64 {

	finOther := make([]float64, len(fin))
	current, other := fin, finOther
	currentLen := finLen

	// Folds an expansion term into the running determinant.
	sumInto := func(exp []float64) {
		n := fastExpansionSumZeroElim(current[:currentLen], exp, other)
		current, other = other, current
		currentLen = n
	}

	var bc, ca, ab [4]float64
	{
		bdxcdy1, bdxcdy0 := twoProduct(bdx, cdy)
		cdxbdy1, cdxbdy0 := twoProduct(cdx, bdy)
		bc[3], bc[2], bc[1], bc[0] = twoTwoDiff(bdxcdy1, bdxcdy0, cdxbdy1, cdxbdy0)
		cdxady1, cdxady0 := twoProduct(cdx, ady)
		adxcdy1, adxcdy0 := twoProduct(adx, cdy)
		ca[3], ca[2], ca[1], ca[0] = twoTwoDiff(cdxady1, cdxady0, adxcdy1, adxcdy0)
		adxbdy1, adxbdy0 := twoProduct(adx, bdy)
		bdxady1, bdxady0 := twoProduct(bdx, ady)
		ab[3], ab[2], ab[1], ab[0] = twoTwoDiff(adxbdy1, adxbdy0, bdxady1, bdxady0)
	}

	var aa, bb, cc [4]float64
	if bdxTail != 0 || bdyTail != 0 || cdxTail != 0 || cdyTail != 0 {
		adxadx1, adxadx0 := square(adx)
		adyady1, adyady0 := square(ady)
		aa[3], aa[2], aa[1], aa[0] = twoTwoSum(adxadx1, adxadx0, adyady1, adyady0)
	}
	if cdxTail != 0 || cdyTail != 0 || adxTail != 0 || adyTail != 0 {
		bdxbdx1, bdxbdx0 := square(bdx)
		bdybdy1, bdybdy0 := square(bdy)
		bb[3], bb[2], bb[1], bb[0] = twoTwoSum(bdxbdx1, bdxbdx0, bdybdy1, bdybdy0)
	}
	if adxTail != 0 || adyTail != 0 || bdxTail != 0 || bdyTail != 0 {
		cdxcdx1, cdxcdx0 := square(cdx)
		cdycdy1, cdycdy0 := square(cdy)
		cc[3], cc[2], cc[1], cc[0] = twoTwoSum(cdxcdx1, cdxcdx0, cdycdy1, cdycdy0)
	}

	var temp8 [8]float64
	var temp16a, temp16b, temp16c [16]float64
	var temp32a, temp32b [32]float64
	var temp48 [48]float64
	var temp64 [64]float64

	// First-order tail terms: one tail factor per product.
	firstOrder := func(base []float64, tail, twice float64, posExp []float64, posFactor float64, negExp []float64, negFactor float64, scaled []float64) int {
		scaledLen := scaleExpansionZeroElim(base, tail, scaled)
		n := scaleExpansionZeroElim(scaled[:scaledLen], twice, temp16a[:])
		var p8 [8]float64
		pLen := scaleExpansionZeroElim(posExp, tail, p8[:])
		n2 := scaleExpansionZeroElim(p8[:pLen], posFactor, temp16b[:])
		var q8 [8]float64
		qLen := scaleExpansionZeroElim(negExp, tail, q8[:])
		n3 := scaleExpansionZeroElim(q8[:qLen], negFactor, temp16c[:])
		n4 := fastExpansionSumZeroElim(temp16a[:n], temp16b[:n2], temp32a[:])
		n5 := fastExpansionSumZeroElim(temp16c[:n3], temp32a[:n4], temp48[:])
		sumInto(temp48[:n5])
		return scaledLen
	}

	var axtbc, aytbc, bxtca, bytca, cxtab, cytab [8]float64
	var axtbcLen, aytbcLen, bxtcaLen, bytcaLen, cxtabLen, cytabLen int

	if adxTail != 0 {
		axtbcLen = firstOrder(bc[:], adxTail, 2*adx, cc[:], bdy, bb[:], -cdy, axtbc[:])
	}
	if adyTail != 0 {
		aytbcLen = firstOrder(bc[:], adyTail, 2*ady, bb[:], cdx, cc[:], -bdx, aytbc[:])
	}
	if bdxTail != 0 {
		bxtcaLen = firstOrder(ca[:], bdxTail, 2*bdx, aa[:], cdy, cc[:], -ady, bxtca[:])
	}
	if bdyTail != 0 {
		bytcaLen = firstOrder(ca[:], bdyTail, 2*bdy, cc[:], adx, aa[:], -cdx, bytca[:])
	}
	if cdxTail != 0 {
		cxtabLen = firstOrder(ab[:], cdxTail, 2*cdx, bb[:], ady, aa[:], -bdy, cxtab[:])
	}
	if cdyTail != 0 {
		cytabLen = firstOrder(ab[:], cdyTail, 2*cdy, aa[:], bdx, bb[:], -adx, cytab[:])
	}

	// Cross tail expansions, e.g. bct = bdxTail*cdy + bdx*cdyTail - cdxTail*bdy
	// - cdx*bdyTail, and the corresponding tail-tail expansion bctt.
	crossTails := func(pxt, py, px, pyt, qxt, qy, qx, qyt float64, t, tt []float64) (int, int) {
		var u, v [4]float64
		ti1, ti0 := twoProduct(pxt, py)
		tj1, tj0 := twoProduct(px, pyt)
		u[3], u[2], u[1], u[0] = twoTwoSum(ti1, ti0, tj1, tj0)
		ti1, ti0 = twoProduct(qxt, -qy)
		tj1, tj0 = twoProduct(qx, -qyt)
		v[3], v[2], v[1], v[0] = twoTwoSum(ti1, ti0, tj1, tj0)
		tLen := fastExpansionSumZeroElim(u[:], v[:], t)

		ti1, ti0 = twoProduct(pxt, pyt)
		tj1, tj0 = twoProduct(qxt, qyt)
		tt[3], tt[2], tt[1], tt[0] = twoTwoDiff(ti1, ti0, tj1, tj0)
		return tLen, 4
	}

	// Second-order terms for one corner: scaled is the first-order product
	// (e.g. axtbc), t/tt the cross tails of the opposite corners.
	secondOrder := func(scaled []float64, t []float64, tt []float64, tail, twice float64) {
		n := scaleExpansionZeroElim(scaled, tail, temp16a[:])
		var xt16 [16]float64
		xtLen := scaleExpansionZeroElim(t, tail, xt16[:])
		n2 := scaleExpansionZeroElim(xt16[:xtLen], twice, temp32a[:])
		n3 := fastExpansionSumZeroElim(temp16a[:n], temp32a[:n2], temp48[:])
		sumInto(temp48[:n3])

		n = scaleExpansionZeroElim(xt16[:xtLen], tail, temp32a[:])
		var xtt8 [8]float64
		xttLen := scaleExpansionZeroElim(tt, tail, xtt8[:])
		n2 = scaleExpansionZeroElim(xtt8[:xttLen], twice, temp16a[:])
		n3 = scaleExpansionZeroElim(xtt8[:xttLen], tail, temp16b[:])
		n4 := fastExpansionSumZeroElim(temp16a[:n2], temp16b[:n3], temp32b[:])
		n5 := fastExpansionSumZeroElim(temp32a[:n], temp32b[:n4], temp64[:])
		sumInto(temp64[:n5])
	}

	// Mixed term: lift expansion scaled by the two opposite tails.
	mixed := func(lift []float64, f1, f2 float64) {
		n := scaleExpansionZeroElim(lift, f1, temp8[:])
		n2 := scaleExpansionZeroElim(temp8[:n], f2, temp16a[:])
		sumInto(temp16a[:n2])
	}

	if adxTail != 0 || adyTail != 0 {
		var bct [8]float64
		var bctt [4]float64
		bctLen, bcttLen := 1, 1
		if bdxTail != 0 || bdyTail != 0 || cdxTail != 0 || cdyTail != 0 {
			bctLen, bcttLen = crossTails(bdxTail, cdy, bdx, cdyTail, cdxTail, bdy, cdx, bdyTail, bct[:], bctt[:])
		} else {
			bct[0], bctt[0] = 0, 0
		}
		if adxTail != 0 {
			if bdyTail != 0 {
				mixed(cc[:], adxTail, bdyTail)
			}
			if cdyTail != 0 {
				mixed(bb[:], -adxTail, cdyTail)
			}
			secondOrder(axtbc[:axtbcLen], bct[:bctLen], bctt[:bcttLen], adxTail, 2*adx)
		}
		if adyTail != 0 {
			secondOrder(aytbc[:aytbcLen], bct[:bctLen], bctt[:bcttLen], adyTail, 2*ady)
		}
	}

	if bdxTail != 0 || bdyTail != 0 {
		var cat [8]float64
		var catt [4]float64
		catLen, cattLen := 1, 1
		if cdxTail != 0 || cdyTail != 0 || adxTail != 0 || adyTail != 0 {
			catLen, cattLen = crossTails(cdxTail, ady, cdx, adyTail, adxTail, cdy, adx, cdyTail, cat[:], catt[:])
		} else {
			cat[0], catt[0] = 0, 0
		}
		if bdxTail != 0 {
			if cdyTail != 0 {
				mixed(aa[:], bdxTail, cdyTail)
			}
			if adyTail != 0 {
				mixed(cc[:], -bdxTail, adyTail)
			}
			secondOrder(bxtca[:bxtcaLen], cat[:catLen], catt[:cattLen], bdxTail, 2*bdx)
		}
		if bdyTail != 0 {
			secondOrder(bytca[:bytcaLen], cat[:catLen], catt[:cattLen], bdyTail, 2*bdy)
		}
	}

	if cdxTail != 0 || cdyTail != 0 {
		var abt [8]float64
		var abtt [4]float64
		abtLen, abttLen := 1, 1
		if adxTail != 0 || adyTail != 0 || bdxTail != 0 || bdyTail != 0 {
			abtLen, abttLen = crossTails(adxTail, bdy, adx, bdyTail, bdxTail, ady, bdx, adyTail, abt[:], abtt[:])
		} else {
			abt[0], abtt[0] = 0, 0
		}
		if cdxTail != 0 {
			if adyTail != 0 {
				mixed(bb[:], cdxTail, adyTail)
			}
			if bdyTail != 0 {
				mixed(aa[:], -cdxTail, bdyTail)
			}
			secondOrder(cxtab[:cxtabLen], abt[:abtLen], abtt[:abttLen], cdxTail, 2*cdx)
		}
		if cdyTail != 0 {
			secondOrder(cytab[:cytabLen], abt[:abtLen], abtt[:abttLen], cdyTail, 2*cdy)
		}
	}

	return current[currentLen-1]
}

// --- expansion arithmetic primitives ---

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}

func fastTwoSum(a, b float64) (hi, lo float64) {
	hi = a + b
	bVirt := hi - a
	lo = b - bVirt
	return hi, lo
}

func twoSum(a, b float64) (hi, lo float64) {
	hi = a + b
	bVirt := hi - a
	aVirt := hi - bVirt
	bRound := b - bVirt
	aRound := a - aVirt
	return hi, aRound + bRound
}

func twoDiff(a, b float64) (hi, lo float64) {
	hi = a - b
	return hi, twoDiffTail(a, b, hi)
}

func twoDiffTail(a, b, x float64) float64 {
	bVirt := a - x
	aVirt := x + bVirt
	bRound := bVirt - b
	aRound := a - aVirt
	return aRound + bRound
}

func split(a float64) (hi, lo float64) {
	c := splitter * a
	aBig := c - a
	hi = c - aBig
	lo = a - hi
	return hi, lo
}

func twoProduct(a, b float64) (hi, lo float64) {
	hi = a * b
	aHi, aLo := split(a)
	bHi, bLo := split(b)
	err1 := hi - aHi*bHi
	err2 := err1 - aLo*bHi
	err3 := err2 - aHi*bLo
	return hi, aLo*bLo - err3
}

func square(a float64) (hi, lo float64) {
	hi = a * a
	aHi, aLo := split(a)
	err1 := hi - aHi*aHi
	err3 := err1 - (aHi+aHi)*aLo
	return hi, aLo*aLo - err3
}

// twoTwoSum adds the two-component expansions (a1, a0) and (b1, b0),
// returning a four-component expansion (x3 largest).
func twoTwoSum(a1, a0, b1, b0 float64) (x3, x2, x1, x0 float64) {
	j, r, x0 := twoOneSum(a1, a0, b0)
	x3, x2, x1 = twoOneSum(j, r, b1)
	return x3, x2, x1, x0
}

func twoTwoDiff(a1, a0, b1, b0 float64) (x3, x2, x1, x0 float64) {
	j, r, x0 := twoOneDiff(a1, a0, b0)
	x3, x2, x1 = twoOneDiff(j, r, b1)
	return x3, x2, x1, x0
}

func twoOneSum(a1, a0, b float64) (x2, x1, x0 float64) {
	i, x0 := twoSum(a0, b)
	x2, x1 = twoSum(a1, i)
	return x2, x1, x0
}

func twoOneDiff(a1, a0, b float64) (x2, x1, x0 float64) {
	i, x0 := twoDiff(a0, b)
	x2, x1 = twoSum(a1, i)
	return x2, x1, x0
}

// fastExpansionSumZeroElim sums two nonoverlapping expansions, eliminating
// zero components. h must not alias e or f. Returns the length of h.
func fastExpansionSumZeroElim(e, f, h []float64) int {
	var q, qNew, hh float64
	var eNow, fNow float64
	eIndex, fIndex := 0, 0
	eNow = e[0]
	fNow = f[0]

	if (fNow > eNow) == (fNow > -eNow) {
		q = eNow
		eIndex++
		if eIndex < len(e) {
			eNow = e[eIndex]
		}
	} else {
		q = fNow
		fIndex++
		if fIndex < len(f) {
			fNow = f[fIndex]
		}
	}
	hIndex := 0
	if eIndex < len(e) && fIndex < len(f) {
		if (fNow > eNow) == (fNow > -eNow) {
			qNew, hh = fastTwoSum(eNow, q)
			eIndex++
			if eIndex < len(e) {
				eNow = e[eIndex]
			}
		} else {
			qNew, hh = fastTwoSum(fNow, q)
			fIndex++
			if fIndex < len(f) {
				fNow = f[fIndex]
			}
		}
		q = qNew
		if hh != 0 {
			h[hIndex] = hh
			hIndex++
		}
		for eIndex < len(e) && fIndex < len(f) {
			if (fNow > eNow) == (fNow > -eNow) {
				qNew, hh = twoSum(q, eNow)
				eIndex++
				if eIndex < len(e) {
					eNow = e[eIndex]
				}
			} else {
				qNew, hh = twoSum(q, fNow)
				fIndex++
				if fIndex < len(f) {
					fNow = f[fIndex]
				}
			}
			q = qNew
			if hh != 0 {
				h[hIndex] = hh
				hIndex++
			}
		}
	}
	for eIndex < len(e) {
		qNew, hh = twoSum(q, eNow)
		eIndex++
		if eIndex < len(e) {
			eNow = e[eIndex]
		}
		q = qNew
		if hh != 0 {
			h[hIndex] = hh
			hIndex++
		}
	}
	for fIndex < len(f) {
		qNew, hh = twoSum(q, fNow)
		fIndex++
		if fIndex < len(f) {
			fNow = f[fIndex]
		}
		q = qNew
		if hh != 0 {
			h[hIndex] = hh
			hIndex++
		}
	}
	if q != 0 || hIndex == 0 {
		h[hIndex] = q
		hIndex++
	}
	return hIndex
}

// scaleExpansionZeroElim multiplies an expansion by a single float64,
// eliminating zero components. Returns the length of h.
func scaleExpansionZeroElim(e []float64, b float64, h []float64) int {
	q, hh := twoProduct(e[0], b)
	hIndex := 0
	if hh != 0 {
		h[hIndex] = hh
		hIndex++
	}
	for eIndex := 1; eIndex < len(e); eIndex++ {
		product1, product0 := twoProduct(e[eIndex], b)
		sum, hh := twoSum(q, product0)
		if hh != 0 {
			h[hIndex] = hh
			hIndex++
		}
		q, hh = fastTwoSum(product1, sum)
		if hh != 0 {
			h[hIndex] = hh
			hIndex++
		}
	}
	if q != 0 || hIndex == 0 {
		h[hIndex] = q
		hIndex++
	}
	return hIndex
}

// estimate returns a single float64 approximation of an expansion's value.
func estimate(e []float64) float64 {
	q := e[0]
	for _, v := range e[1:] {
		q += v
	}
	return q
}
