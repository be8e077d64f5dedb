package service

import "errors"

// Authorization errors.
var (
	ErrNotParticipant = errors.New("not a participant of this battle")
	ErrNotYourTurn    = errors.New("not your turn")
)

// State errors.
var (
	ErrBattleNotFound    = errors.New("battle not found")
	ErrBattleNotActive   = errors.New("battle is not active")
	ErrBattleNotFinished = errors.New("battle is not finished")
	ErrPoolNotFound      = errors.New("gacha pool not found or inactive")
	ErrAvatarNotFound    = errors.New("avatar not found")
	ErrUserNotFound      = errors.New("user not found")
)

// Resource errors.
var (
	ErrInsufficientGems = errors.New("insufficient gems")
)

// Validation errors.
var (
	ErrInvalidAction     = errors.New("invalid action")
	ErrInvalidPullCount  = errors.New("pull count must be 1 or 10")
	ErrInvalidAvatarName = errors.New("avatar name must be 2-16 characters")
	ErrInvalidClass      = errors.New("unknown class")
	ErrEquipmentNotOwned = errors.New("equipment not owned")
	ErrInvalidAmount     = errors.New("invalid amount: must be positive")
)

// Conflict errors.
var (
	ErrAlreadySettled = errors.New("battle already settled")
	ErrAvatarExists   = errors.New("avatar already exists")
	// ErrTurnConflict means concurrent writers kept winning the turn until retries ran out.
	ErrTurnConflict = errors.New("turn write conflict")
)
