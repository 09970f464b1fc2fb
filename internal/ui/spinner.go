package ui

import (
	"time"

	"github.com/briandowns/spinner"
)

const coachEmoji = "🧢"

// Spinner envuelve el spinner de terminal con el estilo de CommitCoach.
type Spinner struct {
	spinner *spinner.Spinner
}

func NewSpinner(initialMessage string) *Spinner {
	s := spinner.New(
		spinner.CharSets[14],
		100*time.Millisecond,
		spinner.WithColor("cyan"),
		spinner.WithSuffix(" "+coachEmoji+" "+initialMessage),
	)
	return &Spinner{spinner: s}
}

func (s *Spinner) Start() {
	s.spinner.Start()
}

func (s *Spinner) Stop() {
	s.spinner.Stop()
}

func (s *Spinner) UpdateMessage(msg string) {
	s.spinner.Suffix = " " + coachEmoji + " " + msg
}
