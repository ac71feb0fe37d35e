package bspline

// Closed-form cardinal B-spline scaling functions and their semi-orthogonal
// (Chui-Wang) wavelets, orders 1 through 5. Every branch is an exact rational
// polynomial, highest degree first. phi is piecewise on unit knots over
// [0, order], psi on half-integer knots over [0, 2*order-1].
//
// Adding an order means adding one entry to builtinTables.

// segmentSpec is one exact branch: [lo, hi) and its coefficients.
type segmentSpec struct {
	lo, hi string
	coeffs []string
}

// tableSpec is the exact source of one piecewise function.
type tableSpec []segmentSpec

// orderSpec pairs the scaling and wavelet tables of one order.
type orderSpec struct {
	phi, psi tableSpec
}

// builtinTables holds the registered orders.
var builtinTables = map[int]orderSpec{
	1: {phi: order1Phi, psi: order1Psi},
	2: {phi: order2Phi, psi: order2Psi},
	3: {phi: order3Phi, psi: order3Psi},
	4: {phi: order4Phi, psi: order4Psi},
	5: {phi: order5Phi, psi: order5Psi},
}

var order1Phi = tableSpec{
	{"-inf", "0", []string{"0"}},
	{"0", "1", []string{"1"}},
	{"1", "+inf", []string{"0"}},
}

var order1Psi = tableSpec{
	{"-inf", "0", []string{"0"}},
	{"0", "1/2", []string{"1"}},
	{"1/2", "1", []string{"-1"}},
	{"1", "+inf", []string{"0"}},
}

var order2Phi = tableSpec{
	{"-inf", "0", []string{"0"}},
	{"0", "1", []string{"1", "0"}},
	{"1", "2", []string{"-1", "2"}},
	{"2", "+inf", []string{"0"}},
}

var order2Psi = tableSpec{
	{"-inf", "0", []string{"0"}},
	{"0", "1/2", []string{"1/6", "0"}},
	{"1/2", "1", []string{"-7/6", "2/3"}},
	{"1", "3/2", []string{"8/3", "-19/6"}},
	{"3/2", "2", []string{"-8/3", "29/6"}},
	{"2", "5/2", []string{"7/6", "-17/6"}},
	{"5/2", "3", []string{"-1/6", "1/2"}},
	{"3", "+inf", []string{"0"}},
}

var order3Phi = tableSpec{
	{"-inf", "0", []string{"0"}},
	{"0", "1", []string{"1/2", "0", "0"}},
	{"1", "2", []string{"-1", "3", "-3/2"}},
	{"2", "3", []string{"1/2", "-3", "9/2"}},
	{"3", "+inf", []string{"0"}},
}

var order3Psi = tableSpec{
	{"-inf", "0", []string{"0"}},
	{"0", "1/2", []string{"1/240", "0", "0"}},
	{"1/2", "1", []string{"-31/240", "2/15", "-1/30"}},
	{"1", "3/2", []string{"103/120", "-221/120", "229/240"}},
	{"3/2", "2", []string{"-313/120", "1027/120", "-1643/240"}},
	{"2", "5/2", []string{"22/5", "-779/40", "339/16"}},
	{"5/2", "3", []string{"-22/5", "981/40", "-541/16"}},
	{"3", "7/2", []string{"313/120", "-701/40", "2341/80"}},
	{"7/2", "4", []string{"-103/120", "809/120", "-3169/240"}},
	{"4", "9/2", []string{"31/240", "-139/120", "623/240"}},
	{"9/2", "5", []string{"-1/240", "1/24", "-5/48"}},
	{"5", "+inf", []string{"0"}},
}

var order4Phi = tableSpec{
	{"-inf", "0", []string{"0"}},
	{"0", "1", []string{"1/6", "0", "0", "0"}},
	{"1", "2", []string{"-1/2", "2", "-2", "2/3"}},
	{"2", "3", []string{"1/2", "-4", "10", "-22/3"}},
	{"3", "4", []string{"-1/6", "2", "-8", "32/3"}},
	{"4", "+inf", []string{"0"}},
}

var order4Psi = tableSpec{
	{"-inf", "0", []string{"0"}},
	{"0", "1/2", []string{"1/30240", "0", "0", "0"}},
	{"1/2", "1", []string{"-127/30240", "2/315", "-1/315", "1/1890"}},
	{"1", "3/2", []string{"19/280", "-47/224", "2147/10080", "-103/1440"}},
	{"3/2", "2", []string{"-1109/2520", "465/224", "-32413/10080", "16559/10080"}},
	{"2", "5/2", []string{"5261/3360", "-33463/3360", "42043/2016", "-145193/10080"}},
	{"5/2", "3", []string{"-35033/10080", "93577/3360", "-148517/2016", "216269/3360"}},
	{"3", "7/2", []string{"4832/945", "-27691/560", "113923/720", "-28145/168"}},
	{"7/2", "4", []string{"-4832/945", "58393/1008", "-52223/240", "2048227/7560"}},
	{"4", "9/2", []string{"35033/10080", "-75827/1680", "981101/5040", "-234149/840"}},
	{"9/2", "5", []string{"-5261/3360", "38509/1680", "-112487/1008", "30347/168"}},
	{"5", "11/2", []string{"1109/2520", "-24077/3360", "78311/2016", "-141311/2016"}},
	{"11/2", "6", []string{"-19/280", "1361/1120", "-14617/2016", "4151/288"}},
	{"6", "13/2", []string{"127/30240", "-55/672", "5359/10080", "-11603/10080"}},
	{"13/2", "7", []string{"-1/30240", "1/1440", "-7/1440", "49/4320"}},
	{"7", "+inf", []string{"0"}},
}

var order5Phi = tableSpec{
	{"-inf", "0", []string{"0"}},
	{"0", "1", []string{"1/24", "0", "0", "0", "0"}},
	{"1", "2", []string{"-1/6", "5/6", "-5/4", "5/6", "-5/24"}},
	{"2", "3", []string{"1/4", "-5/2", "35/4", "-25/2", "155/24"}},
	{"3", "4", []string{"-1/6", "5/2", "-55/4", "65/2", "-655/24"}},
	{"4", "5", []string{"1/24", "-5/6", "25/4", "-125/6", "625/24"}},
	{"5", "+inf", []string{"0"}},
}

// The constant term of the [3, 7/2) branch is 497668543/2903040; exact
// continuity at 3 and 7/2 pins it.
var order5Psi = tableSpec{
	{"-inf", "0", []string{"0"}},
	{"0", "1/2", []string{"1/8709120", "0", "0", "0", "0"}},
	{"1/2", "1", []string{"-73/1244160", "1/8505", "-1/11340", "1/34020", "-1/272160"}},
	{"1", "3/2", []string{"9581/4354560", "-19417/2177280", "1303/96768", "-19609/2177280", "6547/2903040"}},
	{"3/2", "2", []string{"-118931/4354560", "366119/2177280", "-186253/483840", "121121/311040", "-427181/2903040"}},
	{"2", "5/2", []string{"759239/4354560", "-3146561/2177280", "6466601/1451520", "-13202873/2177280", "26819897/8709120"}},
	{"5/2", "3", []string{"-2980409/4354560", "5183893/725760", "-13426333/483840", "426589/8960", "-12635243/414720"}},
	{"3", "7/2", []string{"7873577/4354560", "-16524079/725760", "7385369/69120", "-17868671/80640", "497668543/2903040"}},
	{"7/2", "4", []string{"-14714327/4354560", "108543091/2177280", "-56901557/207360", "1454458651/2177280", "-5286189059/8709120"}},
	{"4", "9/2", []string{"15619/3402", "-33822017/435456", "15828929/32256", "-597598433/435456", "277413649/193536"}},
	{"9/2", "5", []string{"-15619/3402", "38150335/435456", "-20157247/32256", "859841695/435456", "-64472345/27648"}},
	{"5", "11/2", []string{"14714327/4354560", "-4466137/62208", "165651247/290304", "-875490655/435456", "4614904015/1741824"}},
	{"11/2", "6", []string{"-7873577/4354560", "30717383/725760", "-179437319/483840", "16606729/11520", "-869722273/414720"}},
	{"6", "13/2", []string{"2980409/4354560", "-12698561/725760", "16211669/96768", "-19138891/26880", "3289787993/2903040"}},
	{"13/2", "7", []string{"-759239/4354560", "10519741/2177280", "-10403603/207360", "71964499/311040", "-3481646837/8709120"}},
	{"7", "15/2", []string{"118931/4354560", "-1774639/2177280", "630259/69120", "-14096161/311040", "245108501/2903040"}},
	{"15/2", "8", []string{"-9581/4354560", "21863/311040", "-407387/483840", "9758873/2177280", "-25971499/2903040"}},
	{"8", "17/2", []string{"73/1244160", "-4343/2177280", "5273/207360", "-313703/2177280", "380873/1244160"}},
	{"17/2", "9", []string{"-1/8709120", "1/241920", "-1/17920", "3/8960", "-27/35840"}},
	{"9", "+inf", []string{"0"}},
}
