package listing

import (
	"math/big"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/xerrors"

	"github.com/x-xyz/listingsync/domain"
)

// NativeDecimals is the number of decimals of the chain's native unit
const NativeDecimals = 18

// ParsePrice parses a positive decimal price in the native unit.
func ParsePrice(s string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return decimal.Zero, xerrors.Errorf("price %q: %w", s, domain.ErrBadParamInput)
	}
	if !d.IsPositive() || d.Exponent() < -NativeDecimals {
		return decimal.Zero, xerrors.Errorf("price %q: %w", s, domain.ErrBadParamInput)
	}
	return d, nil
}

// ToWei scales a native unit price to its smallest unit.
func ToWei(d decimal.Decimal) *big.Int {
	return d.Shift(NativeDecimals).BigInt()
}

// PriceToWei parses s and scales it to wei.
func PriceToWei(s string) (*big.Int, error) {
	d, err := ParsePrice(s)
	if err != nil {
		return nil, err
	}
	return ToWei(d), nil
}

// FromWei turns wei into a native unit decimal.
func FromWei(wei *big.Int) decimal.Decimal {
	if wei == nil {
		return decimal.Zero
	}
	return decimal.NewFromBigInt(wei, -NativeDecimals)
}
