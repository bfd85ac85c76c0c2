package config

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

// Settings holds runtime options read from the environment.
// Fields use github.com/caarlos0/env struct tags; see Load.
type Settings struct {
	Question string `env:"VALENTINE_QUESTION" envDefault:"Will you be my Valentine?"`
	Title    string `env:"VALENTINE_TITLE" envDefault:"Valentine"`
	Footer   string `env:"VALENTINE_FOOTER" envDefault:"made with love"`

	AudioEnabled bool    `env:"VALENTINE_AUDIO_ENABLED" envDefault:"true"`
	MusicPath    string  `env:"VALENTINE_MUSIC"`
	Volume       float64 `env:"VALENTINE_VOLUME" envDefault:"0.8"`

	PhrasesPath string `env:"VALENTINE_PHRASES"`
	// Seed 0 picks a random seed at startup
	Seed uint64 `env:"VALENTINE_SEED" envDefault:"0"`

	LogLevel string `env:"VALENTINE_LOG_LEVEL" envDefault:"info"`
	LogFile  string `env:"VALENTINE_LOG_FILE" envDefault:"valentine.log"`
}

// Validate checks value ranges.
func (s *Settings) Validate() error {
	if s.Volume < 0 || s.Volume > 1 {
		return fmt.Errorf("invalid VALENTINE_VOLUME: %v (must be 0-1)", s.Volume)
	}
	if s.Question == "" {
		return fmt.Errorf("VALENTINE_QUESTION must not be empty")
	}
	if _, err := logrus.ParseLevel(s.LogLevel); err != nil {
		return fmt.Errorf("invalid VALENTINE_LOG_LEVEL: %w", err)
	}
	return nil
}

// Level returns the parsed log level. Call Validate first.
func (s *Settings) Level() logrus.Level {
	lvl, err := logrus.ParseLevel(s.LogLevel)
	if err != nil {
		return logrus.InfoLevel
	}
	return lvl
}
