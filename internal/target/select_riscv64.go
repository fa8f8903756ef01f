package target

const (
	hostArch              = "riscv64"
	hostLongDoubleIEEE128 = true
)
