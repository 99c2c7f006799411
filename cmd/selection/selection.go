// Package selection asks the user which track of a file to process.
package selection

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"
)

// ErrExit is returned when the user chooses to exit instead of selecting a
// track.
var ErrExit = errors.New("exit requested")

type State int

const (
	AwaitingSelection State = iota
	Selected
	Exiting
)

func (s State) String() string {
	switch s {
	case AwaitingSelection:
		return "awaiting selection"
	case Selected:
		return "selected"
	case Exiting:
		return "exiting"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// Prompter reads one answer from the user.
type Prompter interface {
	Ask(message string) (string, error)
}

// SurveyPrompter asks on the terminal.
type SurveyPrompter struct{}

func (SurveyPrompter) Ask(message string) (string, error) {
	answer := ""
	err := survey.AskOne(&survey.Input{Message: message}, &answer)
	if err == terminal.InterruptErr {
		return "", ErrExit
	}
	return answer, err
}

type Selector struct {
	Out      io.Writer
	Prompter Prompter
	// Source names the file in the track list heading.
	Source string
}

// Select returns the index of the track to process. A preferred name that
// matches a track is used without asking; otherwise the track list is shown
// until the user enters a valid number or X to exit.
func (s *Selector) Select(names []string, preferred string) (int, error) {
	if preferred != "" {
		if i, ok := lastIndex(names, preferred); ok {
			return i, nil
		}
		fmt.Fprintln(s.Out, "\nNo track with that name found, please make a selection.")
	}

	state := AwaitingSelection
	selected := 0

	for state == AwaitingSelection {
		s.printList(names)

		answer, err := s.Prompter.Ask("Enter the # of the track to process:")
		if errors.Is(err, ErrExit) {
			state = Exiting
			continue
		}
		if err != nil {
			return 0, fmt.Errorf("read track selection: %w", err)
		}

		state, selected = next(strings.TrimSpace(answer), len(names))
		if state == AwaitingSelection {
			fmt.Fprintln(s.Out, "Invalid track selection.  Please select a valid track #")
		}
	}

	if state == Exiting {
		return 0, ErrExit
	}

	fmt.Fprintln(s.Out)
	return selected, nil
}

// next interprets one answer against n available tracks.
func next(answer string, n int) (State, int) {
	if strings.EqualFold(answer, "x") {
		return Exiting, 0
	}

	num, err := strconv.Atoi(answer)
	if err != nil || num < 1 || num > n {
		return AwaitingSelection, 0
	}

	return Selected, num - 1
}

func (s *Selector) printList(names []string) {
	fmt.Fprintf(s.Out, "\nTrack List for %s:\n", s.Source)
	for i, name := range names {
		fmt.Fprintf(s.Out, "  %d.\t%s\n", i+1, name)
	}
	fmt.Fprintln(s.Out, "\n  X.\tExit")
}

func lastIndex(names []string, name string) (int, bool) {
	index, found := 0, false
	for i, n := range names {
		if n == name {
			index, found = i, true
		}
	}
	return index, found
}
