package state

import "errors"

var (
	// ErrNoBoard means a board-scoped mutation ran before LoadBoard.
	ErrNoBoard = errors.New("state: no board loaded")

	// ErrNotInStore means the entity is absent from local state, usually
	// because another client deleted it and the store has not refreshed.
	ErrNotInStore = errors.New("state: entity not in store")
)
