package types

import (
	"errors"
	"fmt"
	"math/big"
	"math/bits"
	"strings"
)

const (
	// YoctoPerNear is the number of yoctoNEAR in one NEAR.
	YoctoPerNear = 1_000_000_000_000_000_000_000_000

	// GasPerTgas is the number of gas units in one teragas.
	GasPerTgas = 1_000_000_000_000

	nearDecimals  = 24
	maxAmountBits = 128
)

var (
	ErrOverflow      = errors.New("amount does not fit in 128 bits")
	ErrNegative      = errors.New("amount is negative")
	ErrInvalidAmount = errors.New("invalid amount")
)

var yoctoPerNear = new(big.Int).Exp(big.NewInt(10), big.NewInt(nearDecimals), nil)

// NearTokenFromYocto returns the token amount of v yoctoNEAR.
func NearTokenFromYocto(v *big.Int) (NearToken, error) {
	if v == nil {
		return "", fmt.Errorf("%w: nil", ErrInvalidAmount)
	}
	if err := checkAmount(v); err != nil {
		return "", err
	}
	return NearToken(v.String()), nil
}

// NearTokenFromNear returns the token amount of n whole NEAR.
func NearTokenFromNear(n uint64) (NearToken, error) {
	v := new(big.Int).SetUint64(n)
	return NearTokenFromYocto(v.Mul(v, yoctoPerNear))
}

// ParseNear parses a decimal NEAR amount such as "1.5" or "0.000001".
// At most 24 fractional digits are accepted.
func ParseNear(s string) (NearToken, error) {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "-") {
		return "", fmt.Errorf("%w: %q", ErrNegative, s)
	}
	whole, frac, _ := strings.Cut(s, ".")
	if whole == "" && frac == "" {
		return "", fmt.Errorf("%w: %q", ErrInvalidAmount, s)
	}
	if len(frac) > nearDecimals {
		return "", fmt.Errorf("%w: %q has more than %d decimals", ErrInvalidAmount, s, nearDecimals)
	}
	digits := whole + frac + strings.Repeat("0", nearDecimals-len(frac))
	for _, r := range digits {
		if r < '0' || r > '9' {
			return "", fmt.Errorf("%w: %q", ErrInvalidAmount, s)
		}
	}
	v, ok := new(big.Int).SetString(digits, 10)
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrInvalidAmount, s)
	}
	return NearTokenFromYocto(v)
}

// Yocto returns the amount in yoctoNEAR.
func (t NearToken) Yocto() (*big.Int, error) {
	v, ok := new(big.Int).SetString(string(t), 10)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrInvalidAmount, string(t))
	}
	if err := checkAmount(v); err != nil {
		return nil, err
	}
	return v, nil
}

// Near formats the amount as a decimal number of NEAR without trailing zeros.
func (t NearToken) Near() (string, error) {
	v, err := t.Yocto()
	if err != nil {
		return "", err
	}
	whole, frac := new(big.Int).QuoRem(v, yoctoPerNear, new(big.Int))
	if frac.Sign() == 0 {
		return whole.String(), nil
	}
	fs := frac.String()
	fs = strings.Repeat("0", nearDecimals-len(fs)) + fs
	return whole.String() + "." + strings.TrimRight(fs, "0"), nil
}

// AsNearFloat returns the amount in NEAR as a float, for display.
func (t NearToken) AsNearFloat() (float64, error) {
	v, err := t.Yocto()
	if err != nil {
		return 0, err
	}
	f, _ := new(big.Float).Quo(new(big.Float).SetInt(v), new(big.Float).SetInt(yoctoPerNear)).Float64()
	return f, nil
}

// NearGasFromTgas returns tgas teragas in gas units.
func NearGasFromTgas(tgas uint64) (NearGas, error) {
	hi, lo := bits.Mul64(tgas, GasPerTgas)
	if hi != 0 {
		return 0, fmt.Errorf("%w: %d Tgas", ErrOverflow, tgas)
	}
	return NearGas(lo), nil
}

// Tgas returns the whole teragas in g, rounded down.
func (g NearGas) Tgas() uint64 {
	return uint64(g) / GasPerTgas
}

// AsTgasFloat returns g in teragas as a float, for display.
func (g NearGas) AsTgasFloat() float64 {
	return float64(g) / GasPerTgas
}

func checkAmount(v *big.Int) error {
	if v.Sign() < 0 {
		return fmt.Errorf("%w: %s", ErrNegative, v)
	}
	if v.BitLen() > maxAmountBits {
		return fmt.Errorf("%w: %s", ErrOverflow, v)
	}
	return nil
}
