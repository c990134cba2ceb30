package game

import "errors"

var (
	// ErrInvalidBetAmount indicates a bet outside the configured bounds
	ErrInvalidBetAmount = errors.New("invalid bet amount")

	// ErrInsufficientBalance indicates a stake the balance cannot cover
	ErrInsufficientBalance = errors.New("insufficient balance")

	// ErrInvalidStateTransition indicates an operation called out of turn
	ErrInvalidStateTransition = errors.New("invalid state transition")

	// ErrGameOver indicates the balance fell below the minimum playable
	// threshold; the session is permanently terminal.
	ErrGameOver = errors.New("game over")
)
