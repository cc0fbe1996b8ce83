package common

import (
	"fmt"
	"math/big"
	"strings"
)

// BigToFloat converts a big int to float according to its number of decimal digits
// Example:
// - BigToFloat(1100, 3) = 1.1
// - BigToFloat(1100, 2) = 11
// - BigToFloat(1100, 5) = 0.011
func BigToFloat(b *big.Int, decimal uint64) float64 {
	f := new(big.Float).SetInt(b)
	power := new(big.Float).SetInt(new(big.Int).Exp(
		big.NewInt(10), big.NewInt(int64(decimal)), nil,
	))
	res := new(big.Float).Quo(f, power)
	result, _ := res.Float64()
	return result
}

// BigToFloatString formats a big int with the given decimal count as a plain
// decimal string without float rounding artifacts. Trailing zeros after the
// point are trimmed.
// Example:
// - BigToFloatString(123456, 4) = "12.3456"
// - BigToFloatString(1100, 3) = "1.1"
func BigToFloatString(b *big.Int, decimal uint64) string {
	if decimal == 0 {
		return b.String()
	}
	s := b.String()
	neg := false
	if strings.HasPrefix(s, "-") {
		neg = true
		s = s[1:]
	}
	for uint64(len(s)) <= decimal {
		s = "0" + s
	}
	cut := uint64(len(s)) - decimal
	intPart, fracPart := s[:cut], s[cut:]
	fracPart = strings.TrimRight(fracPart, "0")
	result := intPart
	if fracPart != "" {
		result = fmt.Sprintf("%s.%s", intPart, fracPart)
	}
	if neg {
		result = "-" + result
	}
	return result
}

func StringToBig(input string) *big.Int {
	resultBig, ok := big.NewInt(0).SetString(input, 10)
	if !ok {
		return big.NewInt(0)
	}
	return resultBig
}

func StringToFloat(input string, decimal uint64) float64 {
	resultBig, ok := big.NewInt(0).SetString(input, 10)
	if !ok {
		return 0.0
	}
	return BigToFloat(resultBig, decimal)
}
