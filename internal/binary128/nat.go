package binary128

import "math/bits"

// nat is an unsigned magnitude stored as base-2^32 little-endian limbs
// (nat[0] is least significant). The canonical zero is nil.
//
// Only the operations needed to convert between decimal text and the
// 113-bit binary128 significand live here; every value the codec builds is
// bounded by the binary128 exponent range, so no size limit is enforced.
type nat []uint32

func natFromUint64(v uint64) nat {
	if v == 0 {
		return nil
	}
	lo := uint32(v)       //nolint:gosec // G115: low limb.
	hi := uint32(v >> 32) //nolint:gosec // G115: high limb.
	if hi == 0 {
		return nat{lo}
	}
	return nat{lo, hi}
}

// natFromWords builds a magnitude from a 128-bit hi:lo pair.
func natFromWords(hi, lo uint64) nat {
	return nat{
		uint32(lo), uint32(lo >> 32), //nolint:gosec // G115: limb split.
		uint32(hi), uint32(hi >> 32), //nolint:gosec // G115: limb split.
	}.norm()
}

// words returns the low 128 bits of x as a hi:lo pair.
func (x nat) words() (hi, lo uint64) {
	var w [4]uint64
	for i := 0; i < len(x) && i < 4; i++ {
		w[i] = uint64(x[i])
	}
	return w[2] | w[3]<<32, w[0] | w[1]<<32
}

func (x nat) norm() nat {
	for len(x) > 0 && x[len(x)-1] == 0 {
		x = x[:len(x)-1]
	}
	if len(x) == 0 {
		return nil
	}
	return x
}

func (x nat) isZero() bool { return len(x.norm()) == 0 }

func (x nat) isOdd() bool {
	x = x.norm()
	return len(x) > 0 && x[0]&1 == 1
}

func (x nat) bitLen() int {
	x = x.norm()
	if len(x) == 0 {
		return 0
	}
	return (len(x)-1)*32 + bits.Len32(x[len(x)-1])
}

func (x nat) trailingZeros() int {
	x = x.norm()
	n := 0
	for _, limb := range x {
		if limb == 0 {
			n += 32
			continue
		}
		return n + bits.TrailingZeros32(limb)
	}
	return 0
}

func (x nat) cmp(y nat) int {
	x, y = x.norm(), y.norm()
	switch {
	case len(x) < len(y):
		return -1
	case len(x) > len(y):
		return 1
	}
	for i := len(x) - 1; i >= 0; i-- {
		switch {
		case x[i] < y[i]:
			return -1
		case x[i] > y[i]:
			return 1
		}
	}
	return 0
}

// bit reports whether bit i of x is set.
func (x nat) bit(i int) bool {
	if i < 0 {
		return false
	}
	w := i / 32
	if w >= len(x) {
		return false
	}
	return x[w]&(1<<(i%32)) != 0
}

// anyBelow reports whether any of the low n bits of x is set.
func (x nat) anyBelow(n int) bool {
	if n <= 0 {
		return false
	}
	full, rem := n/32, n%32
	for i := 0; i < full && i < len(x); i++ {
		if x[i] != 0 {
			return true
		}
	}
	if rem == 0 || full >= len(x) {
		return false
	}
	return x[full]&(1<<rem-1) != 0
}

// lowBits returns x mod 2^n.
func (x nat) lowBits(n int) nat {
	if n <= 0 {
		return nil
	}
	x = x.norm()
	full, rem := n/32, n%32
	if full >= len(x) {
		return append(nat(nil), x...)
	}
	out := make(nat, full+1)
	copy(out, x[:full])
	if rem != 0 {
		out[full] = x[full] & (1<<rem - 1)
	}
	return out.norm()
}

func natAddSmall(x nat, v uint32) nat {
	x = x.norm()
	out := make(nat, len(x)+1)
	copy(out, x)
	carry := uint64(v)
	for i := 0; carry != 0 && i < len(out); i++ {
		sum := uint64(out[i]) + carry
		out[i] = uint32(sum) //nolint:gosec // G115: limb arithmetic.
		carry = sum >> 32
	}
	return out.norm()
}

func natMulSmall(x nat, m uint32) nat {
	x = x.norm()
	if m == 0 || len(x) == 0 {
		return nil
	}
	out := make(nat, len(x)+1)
	var carry uint64
	for i, limb := range x {
		prod := uint64(limb)*uint64(m) + carry
		out[i] = uint32(prod) //nolint:gosec // G115: limb arithmetic.
		carry = prod >> 32
	}
	out[len(x)] = uint32(carry) //nolint:gosec // G115: limb arithmetic.
	return out.norm()
}

func natMul(x, y nat) nat {
	x, y = x.norm(), y.norm()
	if len(x) == 0 || len(y) == 0 {
		return nil
	}
	out := make(nat, len(x)+len(y))
	for i, xi := range x {
		var carry uint64
		for j, yj := range y {
			sum := uint64(out[i+j]) + uint64(xi)*uint64(yj) + carry
			out[i+j] = uint32(sum) //nolint:gosec // G115: limb arithmetic.
			carry = sum >> 32
		}
		for k := i + len(y); carry != 0; k++ {
			sum := uint64(out[k]) + carry
			out[k] = uint32(sum) //nolint:gosec // G115: limb arithmetic.
			carry = sum >> 32
		}
	}
	return out.norm()
}

func natShl(x nat, n int) nat {
	x = x.norm()
	if len(x) == 0 || n <= 0 {
		return append(nat(nil), x...)
	}
	words, shift := n/32, n%32
	out := make(nat, len(x)+words+1)
	if shift == 0 {
		copy(out[words:], x)
		return out.norm()
	}
	var carry uint32
	for i, limb := range x {
		out[i+words] = limb<<shift | carry
		carry = limb >> (32 - shift)
	}
	out[len(x)+words] = carry
	return out.norm()
}

func natShr(x nat, n int) nat {
	x = x.norm()
	if len(x) == 0 || n <= 0 {
		return append(nat(nil), x...)
	}
	words, shift := n/32, n%32
	if words >= len(x) {
		return nil
	}
	out := make(nat, len(x)-words)
	if shift == 0 {
		copy(out, x[words:])
		return out.norm()
	}
	for i := range out {
		lo := x[i+words] >> shift
		var hi uint32
		if i+words+1 < len(x) {
			hi = x[i+words+1] << (32 - shift)
		}
		out[i] = lo | hi
	}
	return out.norm()
}

// natDivModSmall returns x/d and x%d.
func natDivModSmall(x nat, d uint32) (nat, uint32) {
	x = x.norm()
	if len(x) == 0 {
		return nil, 0
	}
	out := make(nat, len(x))
	var rem uint64
	for i := len(x) - 1; i >= 0; i-- {
		cur := rem<<32 | uint64(x[i])
		out[i] = uint32(cur / uint64(d)) //nolint:gosec // G115: quotient fits a limb.
		rem = cur % uint64(d)
	}
	return out.norm(), uint32(rem) //nolint:gosec // G115: remainder < d.
}

// natDivMod is restoring binary long division. The codec only ever asks
// for quotients of about 115 bits, so the bit loop stays short even when
// the operands span thousands of bits.
func natDivMod(x, y nat) (q, r nat) {
	x, y = x.norm(), y.norm()
	if len(y) == 0 {
		panic("binary128: division by zero")
	}
	if x.cmp(y) < 0 {
		return nil, append(nat(nil), x...)
	}
	shift := x.bitLen() - y.bitLen()
	den := natShl(y, shift)
	rem := append(nat(nil), x...)
	quot := make(nat, shift/32+1)
	for i := shift; i >= 0; i-- {
		if rem.cmp(den) >= 0 {
			subInPlace(rem, den)
			quot[i/32] |= 1 << (i % 32)
		}
		shr1InPlace(den)
	}
	return quot.norm(), rem.norm()
}

// natPow returns base^n by square-and-multiply.
func natPow(base uint32, n int) nat {
	result := nat{1}
	b := natFromUint64(uint64(base))
	for n > 0 {
		if n&1 == 1 {
			result = natMul(result, b)
		}
		n >>= 1
		if n > 0 {
			b = natMul(b, b)
		}
	}
	return result
}

// decimal renders x in base 10.
func (x nat) decimal() string {
	x = x.norm()
	if len(x) == 0 {
		return "0"
	}
	const chunk = 1_000_000_000
	var parts []uint32
	for len(x) > 0 {
		var r uint32
		x, r = natDivModSmall(x, chunk)
		parts = append(parts, r)
	}
	buf := make([]byte, 0, len(parts)*9)
	buf = appendUint(buf, parts[len(parts)-1], 0)
	for i := len(parts) - 2; i >= 0; i-- {
		buf = appendUint(buf, parts[i], 9)
	}
	return string(buf)
}

func appendUint(buf []byte, v uint32, width int) []byte {
	var tmp [10]byte
	i := len(tmp)
	for v > 0 || i == len(tmp) {
		i--
		tmp[i] = byte('0' + v%10)
		v /= 10
	}
	for n := len(tmp) - i; n < width; n++ {
		buf = append(buf, '0')
	}
	return append(buf, tmp[i:]...)
}

func subInPlace(dst, sub nat) {
	var borrow uint64
	for i := range dst {
		av := uint64(dst[i])
		var bv uint64
		if i < len(sub) {
			bv = uint64(sub[i])
		}
		dst[i] = uint32(av - bv - borrow) //nolint:gosec // G115: limb arithmetic.
		if av < bv+borrow {
			borrow = 1
		} else {
			borrow = 0
		}
	}
}

func shr1InPlace(x nat) {
	var carry uint32
	for i := len(x) - 1; i >= 0; i-- {
		v := x[i]
		x[i] = v>>1 | carry<<31
		carry = v & 1
	}
}
