// Copyright 2024 Matthew P. Dargan. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package astrocal

// lunarTerm is one row of a periodic series for the moon. The multipliers
// apply to the elongation (d), the solar anomaly (m), the lunar anomaly (mp)
// and the moon's argument of latitude (f). Longitude and latitude
// coefficients are in millionths of a degree; distance coefficients are in
// meters.
type lunarTerm struct {
	d, m, mp, f int
	coef        float64
}

var lunarLongitudeTerms = []lunarTerm{
	{d: 0, m: 0, mp: 1, f: 0, coef: 6288774},
	{d: 2, m: 0, mp: -1, f: 0, coef: 1274027},
	{d: 2, m: 0, mp: 0, f: 0, coef: 658314},
	{d: 0, m: 0, mp: 2, f: 0, coef: 213618},
	{d: 0, m: 1, mp: 0, f: 0, coef: -185116},
	{d: 0, m: 0, mp: 0, f: 2, coef: -114332},
	{d: 2, m: 0, mp: -2, f: 0, coef: 58793},
	{d: 2, m: -1, mp: -1, f: 0, coef: 57066},
	{d: 2, m: 0, mp: 1, f: 0, coef: 53322},
	{d: 2, m: -1, mp: 0, f: 0, coef: 45758},
	{d: 0, m: 1, mp: -1, f: 0, coef: -40923},
	{d: 1, m: 0, mp: 0, f: 0, coef: -34720},
	{d: 0, m: 1, mp: 1, f: 0, coef: -30383},
	{d: 2, m: 0, mp: 0, f: -2, coef: 15327},
	{d: 0, m: 0, mp: 1, f: 2, coef: -12528},
	{d: 0, m: 0, mp: 1, f: -2, coef: 10980},
	{d: 4, m: 0, mp: -1, f: 0, coef: 10675},
	{d: 0, m: 0, mp: 3, f: 0, coef: 10034},
	{d: 4, m: 0, mp: -2, f: 0, coef: 8548},
	{d: 2, m: 1, mp: -1, f: 0, coef: -7888},
	{d: 2, m: 1, mp: 0, f: 0, coef: -6766},
	{d: 1, m: 0, mp: -1, f: 0, coef: -5163},
	{d: 1, m: 1, mp: 0, f: 0, coef: 4987},
	{d: 2, m: -1, mp: 1, f: 0, coef: 4036},
	{d: 2, m: 0, mp: 2, f: 0, coef: 3994},
	{d: 4, m: 0, mp: 0, f: 0, coef: 3861},
	{d: 2, m: 0, mp: -3, f: 0, coef: 3665},
	{d: 0, m: 1, mp: -2, f: 0, coef: -2689},
	{d: 2, m: 0, mp: -1, f: 2, coef: -2602},
	{d: 2, m: -1, mp: -2, f: 0, coef: 2390},
	{d: 1, m: 0, mp: 1, f: 0, coef: -2348},
	{d: 2, m: -2, mp: 0, f: 0, coef: 2236},
	{d: 0, m: 1, mp: 2, f: 0, coef: -2120},
	{d: 0, m: 2, mp: 0, f: 0, coef: -2069},
	{d: 2, m: -2, mp: -1, f: 0, coef: 2048},
	{d: 2, m: 0, mp: 1, f: -2, coef: -1773},
	{d: 2, m: 0, mp: 0, f: 2, coef: -1595},
	{d: 4, m: -1, mp: -1, f: 0, coef: 1215},
	{d: 0, m: 0, mp: 2, f: 2, coef: -1110},
	{d: 3, m: 0, mp: -1, f: 0, coef: -892},
	{d: 2, m: 1, mp: 1, f: 0, coef: -810},
	{d: 4, m: -1, mp: -2, f: 0, coef: 759},
	{d: 0, m: 2, mp: -1, f: 0, coef: -713},
	{d: 2, m: 2, mp: -1, f: 0, coef: -700},
	{d: 2, m: 1, mp: -2, f: 0, coef: 691},
	{d: 2, m: -1, mp: 0, f: -2, coef: 596},
	{d: 4, m: 0, mp: 1, f: 0, coef: 549},
	{d: 0, m: 0, mp: 4, f: 0, coef: 537},
	{d: 4, m: -1, mp: 0, f: 0, coef: 520},
	{d: 1, m: 0, mp: -2, f: 0, coef: -487},
	{d: 2, m: 1, mp: 0, f: -2, coef: -399},
	{d: 0, m: 0, mp: 2, f: -2, coef: -381},
	{d: 1, m: 1, mp: 1, f: 0, coef: 351},
	{d: 3, m: 0, mp: -2, f: 0, coef: -340},
	{d: 4, m: 0, mp: -3, f: 0, coef: 330},
	{d: 2, m: -1, mp: 2, f: 0, coef: 327},
	{d: 0, m: 2, mp: 1, f: 0, coef: -323},
	{d: 1, m: 1, mp: -1, f: 0, coef: 299},
	{d: 2, m: 0, mp: 3, f: 0, coef: 294},
}

var lunarDistanceTerms = []lunarTerm{
	{d: 0, m: 0, mp: 1, f: 0, coef: -20905355},
	{d: 2, m: 0, mp: -1, f: 0, coef: -3699111},
	{d: 2, m: 0, mp: 0, f: 0, coef: -2955968},
	{d: 0, m: 0, mp: 2, f: 0, coef: -569925},
	{d: 0, m: 1, mp: 0, f: 0, coef: 48888},
	{d: 0, m: 0, mp: 0, f: 2, coef: -3149},
	{d: 2, m: 0, mp: -2, f: 0, coef: 246158},
	{d: 2, m: -1, mp: -1, f: 0, coef: -152138},
	{d: 2, m: 0, mp: 1, f: 0, coef: -170733},
	{d: 2, m: -1, mp: 0, f: 0, coef: -204586},
	{d: 0, m: 1, mp: -1, f: 0, coef: -129620},
	{d: 1, m: 0, mp: 0, f: 0, coef: 108743},
	{d: 0, m: 1, mp: 1, f: 0, coef: 104755},
	{d: 2, m: 0, mp: 0, f: -2, coef: 10321},
	{d: 0, m: 0, mp: 1, f: -2, coef: 79661},
	{d: 4, m: 0, mp: -1, f: 0, coef: -34782},
	{d: 0, m: 0, mp: 3, f: 0, coef: -23210},
	{d: 4, m: 0, mp: -2, f: 0, coef: -21636},
	{d: 2, m: 1, mp: -1, f: 0, coef: 24208},
	{d: 2, m: 1, mp: 0, f: 0, coef: 30824},
	{d: 1, m: 0, mp: -1, f: 0, coef: -8379},
	{d: 1, m: 1, mp: 0, f: 0, coef: -16675},
	{d: 2, m: -1, mp: 1, f: 0, coef: -12831},
	{d: 2, m: 0, mp: 2, f: 0, coef: -10445},
	{d: 4, m: 0, mp: 0, f: 0, coef: -11650},
	{d: 2, m: 0, mp: -3, f: 0, coef: 14403},
	{d: 0, m: 1, mp: -2, f: 0, coef: -7003},
	{d: 2, m: -1, mp: -2, f: 0, coef: 10056},
	{d: 1, m: 0, mp: 1, f: 0, coef: 6322},
	{d: 2, m: -2, mp: 0, f: 0, coef: -9884},
	{d: 0, m: 1, mp: 2, f: 0, coef: 5751},
	{d: 2, m: -2, mp: -1, f: 0, coef: -4950},
	{d: 2, m: 0, mp: 1, f: -2, coef: 4130},
	{d: 4, m: -1, mp: -1, f: 0, coef: -3958},
	{d: 3, m: 0, mp: -1, f: 0, coef: 3258},
	{d: 2, m: 1, mp: 1, f: 0, coef: 2616},
	{d: 4, m: -1, mp: -2, f: 0, coef: -1897},
	{d: 0, m: 2, mp: -1, f: 0, coef: -2117},
	{d: 2, m: 2, mp: -1, f: 0, coef: 2354},
	{d: 4, m: 0, mp: 1, f: 0, coef: -1423},
	{d: 0, m: 0, mp: 4, f: 0, coef: -1117},
	{d: 4, m: -1, mp: 0, f: 0, coef: -1571},
	{d: 1, m: 0, mp: -2, f: 0, coef: -1739},
	{d: 0, m: 0, mp: 2, f: -2, coef: -4421},
	{d: 0, m: 2, mp: 1, f: 0, coef: 1165},
	{d: 2, m: 0, mp: -1, f: -2, coef: 8752},
}

var lunarLatitudeTerms = []lunarTerm{
	{d: 0, m: 0, mp: 0, f: 1, coef: 5128122},
	{d: 0, m: 0, mp: 1, f: 1, coef: 280602},
	{d: 0, m: 0, mp: 1, f: -1, coef: 277693},
	{d: 2, m: 0, mp: 0, f: -1, coef: 173237},
	{d: 2, m: 0, mp: -1, f: 1, coef: 55413},
	{d: 2, m: 0, mp: -1, f: -1, coef: 46271},
	{d: 2, m: 0, mp: 0, f: 1, coef: 32573},
	{d: 0, m: 0, mp: 2, f: 1, coef: 17198},
	{d: 2, m: 0, mp: 1, f: -1, coef: 9266},
	{d: 0, m: 0, mp: 2, f: -1, coef: 8822},
	{d: 2, m: -1, mp: 0, f: -1, coef: 8216},
	{d: 2, m: 0, mp: -2, f: -1, coef: 4324},
	{d: 2, m: 0, mp: 1, f: 1, coef: 4200},
	{d: 2, m: 1, mp: 0, f: -1, coef: -3359},
	{d: 2, m: -1, mp: -1, f: 1, coef: 2463},
	{d: 2, m: -1, mp: 0, f: 1, coef: 2211},
	{d: 2, m: -1, mp: -1, f: -1, coef: 2065},
	{d: 0, m: 1, mp: -1, f: -1, coef: -1870},
	{d: 4, m: 0, mp: -1, f: -1, coef: 1828},
	{d: 0, m: 1, mp: 0, f: 1, coef: -1794},
	{d: 0, m: 0, mp: 0, f: 3, coef: -1749},
	{d: 0, m: 1, mp: -1, f: 1, coef: -1565},
	{d: 1, m: 0, mp: 0, f: 1, coef: -1491},
	{d: 0, m: 1, mp: 1, f: 1, coef: -1475},
	{d: 0, m: 1, mp: 1, f: -1, coef: -1410},
	{d: 0, m: 1, mp: 0, f: -1, coef: -1344},
	{d: 1, m: 0, mp: 0, f: -1, coef: -1335},
	{d: 0, m: 0, mp: 3, f: 1, coef: 1107},
	{d: 4, m: 0, mp: 0, f: -1, coef: 1021},
	{d: 4, m: 0, mp: -1, f: 1, coef: 833},
	{d: 0, m: 0, mp: 1, f: -3, coef: 777},
	{d: 4, m: 0, mp: -2, f: 1, coef: 671},
	{d: 2, m: 0, mp: 0, f: -3, coef: 607},
	{d: 2, m: 0, mp: 2, f: -1, coef: 596},
	{d: 2, m: -1, mp: 1, f: -1, coef: 491},
	{d: 2, m: 0, mp: -2, f: 1, coef: -451},
	{d: 0, m: 0, mp: 3, f: -1, coef: 439},
	{d: 2, m: 0, mp: 2, f: 1, coef: 422},
	{d: 2, m: 0, mp: -3, f: -1, coef: 421},
	{d: 2, m: 1, mp: -1, f: 1, coef: -366},
	{d: 2, m: 1, mp: 0, f: 1, coef: -351},
	{d: 4, m: 0, mp: 0, f: 1, coef: 331},
	{d: 2, m: -1, mp: 1, f: 1, coef: 315},
	{d: 2, m: -2, mp: 0, f: -1, coef: 302},
	{d: 0, m: 0, mp: 1, f: 3, coef: -283},
	{d: 2, m: 1, mp: 1, f: -1, coef: -229},
	{d: 1, m: 1, mp: 0, f: -1, coef: 223},
	{d: 1, m: 1, mp: 0, f: 1, coef: 223},
	{d: 0, m: 1, mp: -2, f: -1, coef: -220},
	{d: 2, m: 1, mp: -1, f: -1, coef: -220},
	{d: 1, m: 0, mp: 1, f: 1, coef: -185},
	{d: 2, m: -1, mp: -2, f: -1, coef: 181},
	{d: 0, m: 1, mp: 2, f: 1, coef: -177},
	{d: 4, m: 0, mp: -2, f: -1, coef: 176},
	{d: 4, m: -1, mp: -1, f: -1, coef: 166},
	{d: 1, m: 0, mp: 1, f: -1, coef: -164},
	{d: 4, m: 0, mp: 1, f: -1, coef: 132},
	{d: 1, m: 0, mp: -1, f: -1, coef: -119},
	{d: 4, m: -1, mp: 0, f: -1, coef: 115},
	{d: 2, m: -2, mp: 0, f: 1, coef: 107},
}

// newMoonTerm is one row of the periodic correction to the time of a mean
// new moon. e is the power of the eccentricity factor; the multipliers apply
// to the solar anomaly, the lunar anomaly and the moon's argument of
// latitude.
type newMoonTerm struct {
	coef                float64
	e, solar, lunar, mn int
}

var newMoonTerms = []newMoonTerm{
	{coef: -0.40720, e: 0, solar: 0, lunar: 1, mn: 0},
	{coef: 0.17241, e: 1, solar: 1, lunar: 0, mn: 0},
	{coef: 0.01608, e: 0, solar: 0, lunar: 2, mn: 0},
	{coef: 0.01039, e: 0, solar: 0, lunar: 0, mn: 2},
	{coef: 0.00739, e: 1, solar: -1, lunar: 1, mn: 0},
	{coef: -0.00514, e: 1, solar: 1, lunar: 1, mn: 0},
	{coef: 0.00208, e: 2, solar: 2, lunar: 0, mn: 0},
	{coef: -0.00111, e: 0, solar: 0, lunar: 1, mn: -2},
	{coef: -0.00057, e: 0, solar: 0, lunar: 1, mn: 2},
	{coef: 0.00056, e: 1, solar: 1, lunar: 2, mn: 0},
	{coef: -0.00042, e: 0, solar: 0, lunar: 3, mn: 0},
	{coef: 0.00042, e: 1, solar: 1, lunar: 0, mn: 2},
	{coef: 0.00038, e: 1, solar: 1, lunar: 0, mn: -2},
	{coef: -0.00024, e: 1, solar: -1, lunar: 2, mn: 0},
	{coef: -0.00007, e: 0, solar: 2, lunar: 1, mn: 0},
	{coef: 0.00004, e: 0, solar: 0, lunar: 2, mn: -2},
	{coef: 0.00004, e: 0, solar: 3, lunar: 0, mn: 0},
	{coef: 0.00003, e: 0, solar: 1, lunar: 1, mn: -2},
	{coef: 0.00003, e: 0, solar: 0, lunar: 2, mn: 2},
	{coef: -0.00003, e: 0, solar: 1, lunar: 1, mn: 2},
	{coef: 0.00003, e: 0, solar: -1, lunar: 1, mn: 2},
	{coef: -0.00002, e: 0, solar: -1, lunar: 1, mn: -2},
	{coef: -0.00002, e: 0, solar: 1, lunar: 3, mn: 0},
	{coef: 0.00002, e: 0, solar: 0, lunar: 4, mn: 0},
}

// newMoonAddend is a planetary correction coef·sin(phase + rate·k) to the
// time of new moon k, counted from January 6, 2000.
type newMoonAddend struct {
	phase, rate, coef float64
}

var newMoonAddends = []newMoonAddend{
	{phase: 251.88, rate: 0.016321, coef: 0.000165},
	{phase: 251.83, rate: 26.651886, coef: 0.000164},
	{phase: 349.42, rate: 36.412478, coef: 0.000126},
	{phase: 84.66, rate: 18.206239, coef: 0.000110},
	{phase: 141.74, rate: 53.303771, coef: 0.000062},
	{phase: 207.14, rate: 2.453732, coef: 0.000060},
	{phase: 154.84, rate: 7.306860, coef: 0.000056},
	{phase: 34.52, rate: 27.261239, coef: 0.000047},
	{phase: 207.19, rate: 0.121824, coef: 0.000042},
	{phase: 291.34, rate: 1.844379, coef: 0.000040},
	{phase: 161.72, rate: 24.198154, coef: 0.000037},
	{phase: 239.56, rate: 25.513099, coef: 0.000035},
	{phase: 331.55, rate: 3.592518, coef: 0.000023},
}
