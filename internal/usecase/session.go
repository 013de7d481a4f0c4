package usecase

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"math/rand"
	"strings"
	"time"

	"github.com/rocketscienceinc/seabattle/internal/entity"
	"github.com/rocketscienceinc/seabattle/internal/pkg"
	"github.com/rocketscienceinc/seabattle/internal/seabattle"
)

const legend = `Legend and move format:
' ' : empty cell
'X' : hit
'T' : miss
'▆' : your vessel
'21': row 2, column 1, then ENTER
---------------------------------------------`

const (
	humanBoardTitle = "Your board"
	botBoardTitle   = "Bot board"
	movePrompt      = "Your move?"
)

type matchRepo interface {
	Save(ctx context.Context, match *entity.MatchRecord) error
	Stats(ctx context.Context) (map[entity.Side]int, error)
}

// Session plays one console match: it reads the human's moves from in and draws everything to out.
type Session struct {
	logger    *slog.Logger
	matchRepo matchRepo

	rnd            *rand.Rand
	revealBotFleet bool

	in  *bufio.Scanner
	out io.Writer
}

// NewSession wires a console session. matchRepo may be nil, then finished matches are not recorded.
func NewSession(logger *slog.Logger, matchRepo matchRepo, rnd *rand.Rand, revealBotFleet bool, in io.Reader, out io.Writer) *Session {
	return &Session{
		logger:    logger.With("component", "session"),
		matchRepo: matchRepo,

		rnd:            rnd,
		revealBotFleet: revealBotFleet,

		in:  bufio.NewScanner(in),
		out: out,
	}
}

// Play runs a match to completion. It stops early when ctx is canceled or the input ends.
func (that *Session) Play(ctx context.Context) (*entity.MatchRecord, error) {
	log := that.logger.With("method", "Play")

	placer := seabattle.NewRandomPlacer(that.rnd)

	humanBoard := entity.NewBoard(humanBoardTitle, true)
	botBoard := entity.NewBoard(botBoardTitle, that.revealBotFleet)
	restarts := placer.Fill(humanBoard) + placer.Fill(botBoard)

	controller := seabattle.NewMatchController(
		seabattle.NewHuman(botBoard, &consoleMoves{in: that.in, out: that.out}),
		seabattle.NewBot(humanBoard, that.rnd),
	)

	matchID := pkg.GenerateMatchID()
	log = log.With("matchID", matchID)
	log.Info("match started", "restarts", restarts)

	that.printf("%s\n", legend)
	that.draw(controller)

	for !controller.IsFinished() {
		if err := ctx.Err(); err != nil {
			log.Info("match interrupted", "turns", controller.Turns())
			return nil, fmt.Errorf("match interrupted: %w", err)
		}

		result, err := controller.Step()
		if err != nil {
			if seabattle.IsRecoverable(err) {
				log.Debug("turn rejected", "side", controller.Active(), "error", err)
				that.printf("%s\n", describeError(err))
				continue
			}

			log.Error("match aborted", "error", err)
			return nil, fmt.Errorf("failed to play turn: %w", err)
		}

		log.Debug("turn played", "side", result.Side, "target", result.Target.String(), "hit", result.Hit)

		that.draw(controller)
		that.printf("%s\n", describeTurn(result))
	}

	record := &entity.MatchRecord{
		ID:         matchID,
		Winner:     controller.Winner(),
		Status:     controller.Status(),
		Turns:      controller.Turns(),
		HumanShots: controller.Shots(entity.SideHuman),
		BotShots:   controller.Shots(entity.SideBot),
		Restarts:   restarts,
		FinishedAt: time.Now().UTC(),
	}

	log.Info("match finished", "winner", record.Winner, "turns", record.Turns)
	that.printf("%s\n", describeOutcome(record.Winner))

	that.recordMatch(ctx, record)

	return record, nil
}

// recordMatch - saves the outcome and prints the overall score. Failures are logged, the match is already over.
func (that *Session) recordMatch(ctx context.Context, record *entity.MatchRecord) {
	if that.matchRepo == nil {
		return
	}

	log := that.logger.With("method", "recordMatch", "matchID", record.ID)

	if err := that.matchRepo.Save(ctx, record); err != nil {
		log.Error("failed to save match", "error", err)
		that.printf("Could not save the result: %v\n", err)
		return
	}

	stats, err := that.matchRepo.Stats(ctx)
	if err != nil {
		log.Error("failed to get stats", "error", err)
		return
	}

	that.printf("Score so far - you: %d, bot: %d\n", stats[entity.SideHuman], stats[entity.SideBot])
}

func (that *Session) draw(controller *seabattle.MatchController) {
	that.printf("\n%s\n", pkg.JoinColumns(pkg.ColumnSeparator, controller.HumanBoard().String(), controller.BotBoard().String()))
}

func (that *Session) printf(format string, args ...any) {
	if _, err := fmt.Fprintf(that.out, format, args...); err != nil {
		that.logger.Error("failed to write output", "error", err)
	}
}

// consoleMoves - prompts for a move and reads one line per call.
type consoleMoves struct {
	in  *bufio.Scanner
	out io.Writer
}

func (that *consoleMoves) NextMove() (string, error) {
	if _, err := fmt.Fprintln(that.out, movePrompt); err != nil {
		return "", fmt.Errorf("failed to write prompt: %w", err)
	}

	if !that.in.Scan() {
		if err := that.in.Err(); err != nil {
			return "", fmt.Errorf("failed to read move: %w", err)
		}

		return "", io.EOF
	}

	return strings.TrimSpace(that.in.Text()), nil
}
