//go:build amd64 && gc && !purego

package aesblock

import "golang.org/x/sys/cpu"

var useAsm = cpu.X86.HasAES && cpu.X86.HasSSE41

// AES-NI has no fused pre-round form; AESENC takes the key after the
// permutation, so the chain uses the whiten-then-round shape.
const hasPreRound = false

func encRound(b, rk Block) Block {
	if useAsm {
		var dst Block
		encRoundAsm(&dst.b, &b.b, &rk.b)
		return dst
	}
	return encGeneric(b, rk)
}

func decRound(b, rk Block) Block {
	if useAsm {
		var dst Block
		decRoundAsm(&dst.b, &b.b, &rk.b)
		return dst
	}
	return decGeneric(b, rk)
}

func encLastRound(b, rk Block) Block {
	if useAsm {
		var dst Block
		encLastRoundAsm(&dst.b, &b.b, &rk.b)
		return dst
	}
	return encLastGeneric(b, rk)
}

func decLastRound(b, rk Block) Block {
	if useAsm {
		var dst Block
		decLastRoundAsm(&dst.b, &b.b, &rk.b)
		return dst
	}
	return decLastGeneric(b, rk)
}

func mixColumns(b Block) Block {
	if useAsm {
		var dst Block
		mixColumnsAsm(&dst.b, &b.b)
		return dst
	}
	return mcGeneric(b)
}

func invMixColumns(b Block) Block {
	if useAsm {
		var dst Block
		invMixColumnsAsm(&dst.b, &b.b)
		return dst
	}
	return imcGeneric(b)
}

func preEncRound(b, rk Block) Block     { return encRound(b.Xor(rk), Block{}) }
func preDecRound(b, rk Block) Block     { return decRound(b.Xor(rk), Block{}) }
func preEncLastRound(b, rk Block) Block { return encLastRound(b.Xor(rk), Block{}) }
func preDecLastRound(b, rk Block) Block { return decLastRound(b.Xor(rk), Block{}) }
