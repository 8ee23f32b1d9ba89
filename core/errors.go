package core

import (
	"errors"
	"strconv"
)

var (
	// ErrZeroAmount amount must be positive
	ErrZeroAmount = errors.New("amount must be positive")
	// ErrInsufficientBalance withdraw exceeds the available supply balance
	ErrInsufficientBalance = errors.New("insufficient balance")
	// ErrInsufficientCollateral borrow would breach the loan-to-value limit
	ErrInsufficientCollateral = errors.New("insufficient collateral")
	// ErrUnsupportedAsset no market registered for the asset
	ErrUnsupportedAsset = errors.New("unsupported asset")
	// ErrClockRegression elapsed time since the last accrual is negative
	ErrClockRegression = errors.New("clock regression")
	// ErrOperationForbidden caller lacks the required privilege
	ErrOperationForbidden = errors.New("operation forbidden")
	// ErrInvalidPrice price must be positive
	ErrInvalidPrice = errors.New("invalid price")
)

// ErrorCode int
type ErrorCode int

const (
	// ErrCodeUnknown unknown
	ErrCodeUnknown ErrorCode = 100000
	// ErrCodeOperationForbidden operation forbidden
	ErrCodeOperationForbidden ErrorCode = 100001

	// ErrCodeUnsupportedAsset no market for asset
	ErrCodeUnsupportedAsset ErrorCode = 100100
	// ErrCodeZeroAmount invalid amount
	ErrCodeZeroAmount ErrorCode = 100101
	// ErrCodeInsufficientBalance insufficient balance
	ErrCodeInsufficientBalance ErrorCode = 100102
	// ErrCodeInsufficientCollateral insufficient collateral
	ErrCodeInsufficientCollateral ErrorCode = 100103
	// ErrCodeClockRegression clock went backwards
	ErrCodeClockRegression ErrorCode = 100104
	// ErrCodeInvalidPrice invalid price
	ErrCodeInvalidPrice ErrorCode = 100105
)

func (e ErrorCode) String() string {
	return strconv.Itoa(int(e))
}

// CodeOf maps a ledger error to its wire code
func CodeOf(err error) ErrorCode {
	switch {
	case errors.Is(err, ErrOperationForbidden):
		return ErrCodeOperationForbidden
	case errors.Is(err, ErrUnsupportedAsset):
		return ErrCodeUnsupportedAsset
	case errors.Is(err, ErrZeroAmount):
		return ErrCodeZeroAmount
	case errors.Is(err, ErrInsufficientBalance):
		return ErrCodeInsufficientBalance
	case errors.Is(err, ErrInsufficientCollateral):
		return ErrCodeInsufficientCollateral
	case errors.Is(err, ErrClockRegression):
		return ErrCodeClockRegression
	case errors.Is(err, ErrInvalidPrice):
		return ErrCodeInvalidPrice
	default:
		return ErrCodeUnknown
	}
}
