package proposal

import "errors"

var (
	ErrEmptyDeck   = errors.New("phrase deck is empty")
	ErrBlankPhrase = errors.New("phrase deck contains a blank phrase")
)
