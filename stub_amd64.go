//go:build amd64 && gc && !purego

package aesblock

//go:noescape
func encRoundAsm(dst, in, rk *[16]byte)

//go:noescape
func decRoundAsm(dst, in, rk *[16]byte)

//go:noescape
func encLastRoundAsm(dst, in, rk *[16]byte)

//go:noescape
func decLastRoundAsm(dst, in, rk *[16]byte)

//go:noescape
func mixColumnsAsm(dst, in *[16]byte)

//go:noescape
func invMixColumnsAsm(dst, in *[16]byte)
