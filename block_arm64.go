//go:build arm64 && gc && !purego

package aesblock

import (
	"runtime"

	"golang.org/x/sys/cpu"
)

// x/sys/cpu does not set feature bits on darwin, but every Apple arm64
// chip has the crypto extensions.
var useAsm = runtime.GOOS == "darwin" || cpu.ARM64.HasAES

// AESE folds the round-key XOR in front of SubBytes and ShiftRows, so
// the fused pre-round chain maps one-to-one onto the hardware.
var hasPreRound = useAsm

func encRound(b, rk Block) Block {
	if useAsm {
		var dst, zero Block
		aeseMCAsm(&dst.b, &b.b, &zero.b)
		return dst.Xor(rk)
	}
	return encGeneric(b, rk)
}

func decRound(b, rk Block) Block {
	if useAsm {
		var dst, zero Block
		aesdIMCAsm(&dst.b, &b.b, &zero.b)
		return dst.Xor(rk)
	}
	return decGeneric(b, rk)
}

func encLastRound(b, rk Block) Block {
	if useAsm {
		var dst, zero Block
		aeseAsm(&dst.b, &b.b, &zero.b)
		return dst.Xor(rk)
	}
	return encLastGeneric(b, rk)
}

func decLastRound(b, rk Block) Block {
	if useAsm {
		var dst, zero Block
		aesdAsm(&dst.b, &b.b, &zero.b)
		return dst.Xor(rk)
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

func preEncRound(b, rk Block) Block {
	if useAsm {
		var dst Block
		aeseMCAsm(&dst.b, &b.b, &rk.b)
		return dst
	}
	return preEncGeneric(b, rk)
}

func preDecRound(b, rk Block) Block {
	if useAsm {
		var dst Block
		aesdIMCAsm(&dst.b, &b.b, &rk.b)
		return dst
	}
	return preDecGeneric(b, rk)
}

func preEncLastRound(b, rk Block) Block {
	if useAsm {
		var dst Block
		aeseAsm(&dst.b, &b.b, &rk.b)
		return dst
	}
	return preEncLastGeneric(b, rk)
}

func preDecLastRound(b, rk Block) Block {
	if useAsm {
		var dst Block
		aesdAsm(&dst.b, &b.b, &rk.b)
		return dst
	}
	return preDecLastGeneric(b, rk)
}
