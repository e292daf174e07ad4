//go:build arm64 && gc && !purego

package aesblock

//go:noescape
func aeseAsm(dst, in, rk *[16]byte)

//go:noescape
func aesdAsm(dst, in, rk *[16]byte)

//go:noescape
func aeseMCAsm(dst, in, rk *[16]byte)

//go:noescape
func aesdIMCAsm(dst, in, rk *[16]byte)

//go:noescape
func mixColumnsAsm(dst, in *[16]byte)

//go:noescape
func invMixColumnsAsm(dst, in *[16]byte)
