//go:build (!amd64 && !arm64) || !gc || purego

package aesblock

const useAsm = false

const hasPreRound = false

func encRound(b, rk Block) Block     { return encGeneric(b, rk) }
func decRound(b, rk Block) Block     { return decGeneric(b, rk) }
func encLastRound(b, rk Block) Block { return encLastGeneric(b, rk) }
func decLastRound(b, rk Block) Block { return decLastGeneric(b, rk) }

func mixColumns(b Block) Block    { return mcGeneric(b) }
func invMixColumns(b Block) Block { return imcGeneric(b) }

func preEncRound(b, rk Block) Block     { return preEncGeneric(b, rk) }
func preDecRound(b, rk Block) Block     { return preDecGeneric(b, rk) }
func preEncLastRound(b, rk Block) Block { return preEncLastGeneric(b, rk) }
func preDecLastRound(b, rk Block) Block { return preDecLastGeneric(b, rk) }
