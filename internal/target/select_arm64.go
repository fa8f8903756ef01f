package target

const (
	hostArch              = "arm64"
	hostLongDoubleIEEE128 = true
)
