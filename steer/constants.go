package steer

import "math"

// posInf is the "no family feasible" sentinel length. See the error
// handling design: this case is mathematically unreachable for any
// well-formed input, since at minimum the TcTcT/TST/TTT family (or one of
// its parity equivalents) always covers the plane.
var posInf = math.Inf(1)
