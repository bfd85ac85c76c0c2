package proposal

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

var defaultPhrases = []string{
	"No",
	"Are you sure?",
	"Really sure?",
	"Think again!",
	"Last chance!",
	"Surely not?",
	"You might regret this!",
	"Give it another thought!",
	"Are you absolutely certain?",
	"This could be a mistake!",
	"Have a heart!",
	"Don't be so cold!",
	"Change of heart?",
	"Wouldn't you reconsider?",
	"Is that your final answer?",
	"You're breaking my heart ;(",
}

// Deck is the ordered list of escalating negative-button phrases.
type Deck struct {
	phrases []string
}

type deckFile struct {
	Phrases []string `yaml:"phrases"`
}

// DefaultDeck returns the built-in phrases.
func DefaultDeck() Deck {
	return Deck{phrases: append([]string(nil), defaultPhrases...)}
}

// NewDeck validates and copies phrases.
func NewDeck(phrases []string) (Deck, error) {
	if len(phrases) == 0 {
		return Deck{}, ErrEmptyDeck
	}
	for i, p := range phrases {
		if strings.TrimSpace(p) == "" {
			return Deck{}, fmt.Errorf("phrase %d: %w", i, ErrBlankPhrase)
		}
	}
	return Deck{phrases: append([]string(nil), phrases...)}, nil
}

// LoadDeck reads a YAML file with a top-level "phrases" list.
func LoadDeck(path string) (Deck, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Deck{}, fmt.Errorf("read phrase deck: %w", err)
	}

	var f deckFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return Deck{}, fmt.Errorf("parse phrase deck %s: %w", path, err)
	}

	d, err := NewDeck(f.Phrases)
	if err != nil {
		return Deck{}, fmt.Errorf("phrase deck %s: %w", path, err)
	}
	return d, nil
}

// Len returns the number of phrases.
func (d Deck) Len() int { return len(d.phrases) }

// At returns the phrase shown after the given number of rejections.
func (d Deck) At(rejections int) string {
	if len(d.phrases) == 0 {
		return ""
	}
	return d.phrases[PhraseIndex(rejections, len(d.phrases))]
}

// Phrases returns a copy of the deck contents.
func (d Deck) Phrases() []string {
	return append([]string(nil), d.phrases...)
}
