package target

// x86-64 long double is the 80-bit x87 format padded to 16 bytes.
const (
	hostArch              = "amd64"
	hostLongDoubleIEEE128 = false
)
