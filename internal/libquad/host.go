package libquad

/*
#include <float.h>
#include <string.h>

static const char *fp128_compiler_id(void) {
#if defined(__clang__)
	return "LLVM: " __clang_version__;
#elif defined(__GNUC__)
	return "GCC: " __VERSION__;
#else
	return "unknown C compiler";
#endif
}

static size_t fp128_long_double_size(void) { return sizeof(long double); }

static int fp128_long_double_mant_dig(void) { return LDBL_MANT_DIG; }

static void fp128_long_double_minus_one(void *r) {
	union { long double v; unsigned char b[sizeof(long double)]; } u;
	memset(&u, 0, sizeof u);
	u.v = -1.0L;
	memcpy(r, u.b, sizeof u.b);
}
*/
import "C"

import "unsafe"

// CompilerID identifies the C compiler cgo used, e.g. "GCC: 14.2.0".
func CompilerID() string { return C.GoString(C.fp128_compiler_id()) }

func longDoubleMantDig() int { return int(C.fp128_long_double_mant_dig()) }

func longDoubleMinusOne() []byte {
	b := make([]byte, int(C.fp128_long_double_size()))
	C.fp128_long_double_minus_one(unsafe.Pointer(&b[0]))
	return b
}
