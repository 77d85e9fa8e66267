package service

import "errors"

var (
	ErrSessionNotFound    = errors.New("session not found")
	ErrGameNotStarted     = errors.New("game has not started")
	ErrGameAlreadyStarted = errors.New("game already started")
	ErrGameFinished       = errors.New("game is finished")
	ErrNotYourTurn        = errors.New("not your turn")
	ErrNotMaster          = errors.New("only the master can do this")
	ErrPlayerNotInSession = errors.New("player not in session")
	ErrDuplicateName      = errors.New("player name already taken")
	ErrUnknownHero        = errors.New("unknown hero")
	ErrHeroTaken          = errors.New("hero already taken")
	ErrLobbyFull          = errors.New("session is full")
	ErrPlayersNotReady    = errors.New("every player must choose a hero before starting")
	ErrNotAdjacent        = errors.New("target house is not adjacent")
	ErrSamePosition       = errors.New("already at the target house")
	ErrUnknownHouse       = errors.New("unknown house")
)
