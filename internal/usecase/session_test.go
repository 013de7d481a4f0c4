package usecase

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"math/rand"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/seabattle/internal/entity"
)

var errRedisDown = errors.New("redis down")

type mockMatchRepo struct {
	mock.Mock
}

func (that *mockMatchRepo) Save(ctx context.Context, match *entity.MatchRecord) error {
	args := that.Called(ctx, match)
	return args.Error(0)
}

func (that *mockMatchRepo) Stats(ctx context.Context) (map[entity.Side]int, error) {
	args := that.Called(ctx)

	stats, _ := args.Get(0).(map[entity.Side]int)
	return stats, args.Error(1)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}

// everyCell lists all moves row by row, "11" to "66".
func everyCell() []string {
	moves := make([]string, 0, entity.BoardSize*entity.BoardSize)
	for row := 1; row <= entity.BoardSize; row++ {
		for col := 1; col <= entity.BoardSize; col++ {
			moves = append(moves, strconv.Itoa(row)+strconv.Itoa(col))
		}
	}

	return moves
}

func input(moves ...string) io.Reader {
	return strings.NewReader(strings.Join(moves, "\n") + "\n")
}

func TestSession_Play(t *testing.T) {
	ctx := context.Background()

	t.Run("Plays a whole match and records it", func(t *testing.T) {
		// Given: a human who tries every cell after two bad moves and a history repository
		repo := &mockMatchRepo{}
		repo.On("Save", mock.Anything, mock.AnythingOfType("*entity.MatchRecord")).Return(nil).Once()
		repo.On("Stats", mock.Anything).Return(map[entity.Side]int{entity.SideHuman: 3, entity.SideBot: 1}, nil).Once()

		moves := append([]string{"77", "11"}, everyCell()...)
		var out bytes.Buffer
		session := NewSession(discardLogger(), repo, rand.New(rand.NewSource(5)), false, input(moves...), &out) //nolint: gosec // deterministic test source

		// When: the match is played
		record, err := session.Play(ctx)

		// Then: it finishes with a winner and is saved
		require.NoError(t, err)
		require.NotNil(t, record)
		assert.True(t, record.IsFinished())
		require.NoError(t, record.Validate())
		assert.Equal(t, record.Turns, record.HumanShots+record.BotShots)
		repo.AssertExpectations(t)

		saved, ok := repo.Calls[0].Arguments.Get(1).(*entity.MatchRecord)
		require.True(t, ok)
		assert.Same(t, record, saved)

		// Then: the player saw the legend, the boards, the rejected moves and the score
		screen := out.String()
		assert.Contains(t, screen, "Legend and move format")
		assert.Contains(t, screen, humanBoardTitle)
		assert.Contains(t, screen, botBoardTitle)
		assert.Contains(t, screen, "Invalid move")
		assert.Contains(t, screen, "already been shot")
		assert.Contains(t, screen, describeOutcome(record.Winner))
		assert.Contains(t, screen, "Score so far - you: 3, bot: 1")
	})

	t.Run("Works without a history repository", func(t *testing.T) {
		var out bytes.Buffer
		session := NewSession(discardLogger(), nil, rand.New(rand.NewSource(8)), true, input(everyCell()...), &out) //nolint: gosec // deterministic test source

		record, err := session.Play(ctx)

		require.NoError(t, err)
		assert.True(t, record.IsFinished())
		assert.NotContains(t, out.String(), "Score so far")
	})

	t.Run("Save failure does not fail the match", func(t *testing.T) {
		// Given: a repository that is down
		repo := &mockMatchRepo{}
		repo.On("Save", mock.Anything, mock.Anything).Return(errRedisDown).Once()

		var out bytes.Buffer
		session := NewSession(discardLogger(), repo, rand.New(rand.NewSource(21)), false, input(everyCell()...), &out) //nolint: gosec // deterministic test source

		// When: the match is played
		record, err := session.Play(ctx)

		// Then: the result is still returned and the failure is shown
		require.NoError(t, err)
		assert.NotNil(t, record)
		assert.Contains(t, out.String(), "Could not save the result")
		repo.AssertExpectations(t)
		repo.AssertNotCalled(t, "Stats", mock.Anything)
	})

	t.Run("Input running out aborts the match", func(t *testing.T) {
		// Given: a single move and nothing else
		repo := &mockMatchRepo{}
		var out bytes.Buffer
		session := NewSession(discardLogger(), repo, rand.New(rand.NewSource(1)), false, input("11"), &out) //nolint: gosec // deterministic test source

		// When: the match is played
		record, err := session.Play(ctx)

		// Then: io.EOF is reported and nothing is saved
		require.ErrorIs(t, err, io.EOF)
		assert.Nil(t, record)
		repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})

	t.Run("Canceled context stops the match", func(t *testing.T) {
		canceled, cancel := context.WithCancel(ctx)
		cancel()

		var out bytes.Buffer
		session := NewSession(discardLogger(), nil, rand.New(rand.NewSource(1)), false, input(everyCell()...), &out) //nolint: gosec // deterministic test source

		record, err := session.Play(canceled)

		require.ErrorIs(t, err, context.Canceled)
		assert.Nil(t, record)
	})
}

func TestConsoleMoves_NextMove(t *testing.T) {
	// Given: two lines of input with surrounding spaces
	var out bytes.Buffer
	session := NewSession(discardLogger(), nil, rand.New(rand.NewSource(1)), false, strings.NewReader(" 12 \n34"), &out) //nolint: gosec // deterministic test source
	moves := &consoleMoves{in: session.in, out: &out}

	// When: reading three moves
	first, err := moves.NextMove()
	require.NoError(t, err)
	second, err := moves.NextMove()
	require.NoError(t, err)
	_, err = moves.NextMove()

	// Then: lines are trimmed, each read is prompted and the end is io.EOF
	assert.Equal(t, "12", first)
	assert.Equal(t, "34", second)
	require.ErrorIs(t, err, io.EOF)
	assert.Equal(t, 3, strings.Count(out.String(), movePrompt))
}
