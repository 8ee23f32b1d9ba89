package core

import (
	"database/sql/driver"
	"fmt"
	"math/big"
)

// BigInt stores an arbitrary-precision integer amount in a decimal string
// column. Balances are kept in asset base units, so values routinely exceed
// the int64 range.
type BigInt struct {
	big.Int
}

// NewBigInt new BigInt from a big.Int, copying the value
func NewBigInt(v *big.Int) BigInt {
	var b BigInt
	if v != nil {
		b.Int.Set(v)
	}
	return b
}

// Value implements driver.Valuer
func (b BigInt) Value() (driver.Value, error) {
	return b.String(), nil
}

// Scan implements sql.Scanner
func (b *BigInt) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		b.Int.SetInt64(0)
		return nil
	case int64:
		b.Int.SetInt64(v)
		return nil
	case []byte:
		return b.setString(string(v))
	case string:
		return b.setString(v)
	default:
		return fmt.Errorf("core: cannot scan %T into BigInt", src)
	}
}

func (b *BigInt) setString(s string) error {
	if s == "" {
		b.Int.SetInt64(0)
		return nil
	}
	if _, ok := b.Int.SetString(s, 10); !ok {
		return fmt.Errorf("core: invalid integer string %q", s)
	}
	return nil
}

// MarshalJSON renders the amount as a decimal string
func (b BigInt) MarshalJSON() ([]byte, error) {
	return []byte(`"` + b.String() + `"`), nil
}

// UnmarshalJSON accepts both quoted and bare decimal integers
func (b *BigInt) UnmarshalJSON(data []byte) error {
	s := string(data)
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		s = s[1 : len(s)-1]
	}
	return b.setString(s)
}

// ToInt exposes the underlying big.Int for arithmetic
func (b *BigInt) ToInt() *big.Int {
	return &b.Int
}
