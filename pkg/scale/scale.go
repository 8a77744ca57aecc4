// Package scale provides overflow-safe integer scaling for unit
// conversions, such as turning raw hardware counter ticks into
// nanoseconds.
package scale

// MulDiv computes value * numerator / denominator, rounding toward zero,
// without overflowing the 64-bit intermediate products. The caller must
// guarantee that the final result fits in a uint64; for tick counts and
// calibration frequencies this holds for process uptimes far below 2^64
// nanoseconds (roughly 584 years).
//
// The computation splits value into 32-bit halves so that each partial
// product stays within 64 bits. The remainder of the high-half division
// is carried into the low half before dividing, so no precision is lost
// across the split.
func MulDiv(value, numerator, denominator uint64) uint64 {
	hi := value >> 32
	lo := value & 0xffffffff

	hiProduct := hi * numerator
	hiQuotient := hiProduct / denominator
	remainder := hiProduct % denominator

	loProduct := lo*numerator + remainder<<32
	loQuotient := loProduct / denominator

	return hiQuotient<<32 + loQuotient
}
