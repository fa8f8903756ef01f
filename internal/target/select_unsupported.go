//go:build !amd64 && !arm64 && !riscv64

package target

// Neither quad strategy exists for this GOARCH. The undefined name below
// stops the build here rather than producing a facade with less precision.
const _ = quadPrecisionRequiresAmd64Arm64OrRiscv64
