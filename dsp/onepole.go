package dsp

// OnePole runs one step of a first-order low-pass filter:
//
//	out = (1-retention)*in + retention*prev
//
// retention 0 passes the input through unchanged; values approaching
// 0.99 smooth heavily. The function is stateless: the caller owns the
// previous output and threads it through successive calls.
func OnePole(in, prev, retention float64) float64 {
	return (1-retention)*in + retention*prev
}
