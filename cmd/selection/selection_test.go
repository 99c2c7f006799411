package selection

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type scriptedPrompter struct {
	answers []string
	err     error
	asked   int
}

func (p *scriptedPrompter) Ask(string) (string, error) {
	if p.asked >= len(p.answers) {
		return "", p.err
	}
	a := p.answers[p.asked]
	p.asked++
	return a, nil
}

var tracks = []string{"Main Trail", "Spur", "Loop"}

func TestSelectPreferred(t *testing.T) {
	var out bytes.Buffer
	p := &scriptedPrompter{}
	s := &Selector{Out: &out, Prompter: p, Source: "trail.gpx"}

	i, err := s.Select(tracks, "Spur")
	require.NoError(t, err)
	assert.Equal(t, 1, i)
	assert.Equal(t, 0, p.asked)
	assert.Empty(t, out.String())
}

func TestSelectPreferredMissingPrompts(t *testing.T) {
	var out bytes.Buffer
	p := &scriptedPrompter{answers: []string{"3"}}
	s := &Selector{Out: &out, Prompter: p, Source: "trail.gpx"}

	i, err := s.Select(tracks, "Nope")
	require.NoError(t, err)
	assert.Equal(t, 2, i)
	assert.Contains(t, out.String(), "No track with that name found")
	assert.Contains(t, out.String(), "Track List for trail.gpx:")
	assert.Contains(t, out.String(), "  2.\tSpur\n")
	assert.Contains(t, out.String(), "  X.\tExit")
}

func TestSelectRepromptsOnInvalid(t *testing.T) {
	var out bytes.Buffer
	p := &scriptedPrompter{answers: []string{"0", "4", "two", " 1 "}}
	s := &Selector{Out: &out, Prompter: p}

	i, err := s.Select(tracks, "")
	require.NoError(t, err)
	assert.Equal(t, 0, i)
	assert.Equal(t, 4, p.asked)
	assert.Equal(t, 3, bytes.Count(out.Bytes(), []byte("Invalid track selection")))
}

func TestSelectExit(t *testing.T) {
	for _, answer := range []string{"x", "X"} {
		s := &Selector{Out: &bytes.Buffer{}, Prompter: &scriptedPrompter{answers: []string{answer}}}

		_, err := s.Select(tracks, "")
		assert.ErrorIs(t, err, ErrExit)
	}
}

func TestSelectPrompterErrors(t *testing.T) {
	s := &Selector{Out: &bytes.Buffer{}, Prompter: &scriptedPrompter{err: ErrExit}}
	_, err := s.Select(tracks, "")
	assert.ErrorIs(t, err, ErrExit)

	boom := errors.New("boom")
	s = &Selector{Out: &bytes.Buffer{}, Prompter: &scriptedPrompter{err: boom}}
	_, err = s.Select(tracks, "")
	assert.ErrorIs(t, err, boom)
}

func TestNext(t *testing.T) {
	tests := []struct {
		answer string
		state  State
		index  int
	}{
		{"1", Selected, 0},
		{"3", Selected, 2},
		{"4", AwaitingSelection, 0},
		{"-1", AwaitingSelection, 0},
		{"", AwaitingSelection, 0},
		{"x", Exiting, 0},
	}

	for _, tt := range tests {
		state, index := next(tt.answer, 3)
		assert.Equal(t, tt.state, state, tt.answer)
		assert.Equal(t, tt.index, index, tt.answer)
	}

	assert.Equal(t, "exiting", Exiting.String())
}
