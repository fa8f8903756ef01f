// Package quad gives one set of names for IEEE-754 binary128 math, whatever
// the machine representation behind it.
//
// The representation is fixed when the binary is built. On arm64 and
// riscv64, C long double already is binary128 and every function forwards
// to libm's l-suffixed symbol (sinl, cabsl, ...). On amd64, long double is
// the 80-bit x87 format, so the facade uses __float128 from libquadmath and
// its q-suffixed symbols (sinq, cabsq, ...). Building for any other
// architecture fails, and so does building against a runtime that lacks one
// of the symbols.
//
// The package performs no arithmetic of its own. Float and Complex are plain
// storage; the forwarding functions in zz_facade.go are generated from the
// operation table by cmd/quadgen.
//
// C out-parameters become trailing results, in argument order: Frexp
// returns (fraction, exponent), Modf (fractional part, integral part),
// Remquo (remainder, low quotient bits) and Sincos (sin, cos).
//
//	x := quad.Sin(quad.Pi4)
//	fmt.Printf("%.33f\n", x)
//	s := quad.Format(quad.E, 'f', 33) // the runtime's own printf
package quad

//go:generate go run ../cmd/quadgen --root ..
