// Package console plays a quiz session in a terminal.
package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/aliskhannn/opentdb-quiz-bot/internal/domain/entities"
)

// ErrInputClosed is returned when the input ends before the quiz is finished.
var ErrInputClosed = errors.New("input closed before the quiz finished")

// Presenter renders questions to out and reads choices from in.
type Presenter struct {
	in     io.Reader
	out    io.Writer
	logger *zap.Logger

	// Lines are read in the background so a blocked read never holds up cancellation.
	readOnce sync.Once
	lines    chan string
	readErr  error // set before lines is closed
}

// NewPresenter creates a new Presenter.
func NewPresenter(in io.Reader, out io.Writer, logger *zap.Logger) *Presenter {
	return &Presenter{
		in:     in,
		out:    out,
		logger: logger,
		lines:  make(chan string),
	}
}

// Play asks every remaining question of the session and prints the final score.
// It returns ctx.Err() as soon as ctx is done, leaving the session where it was.
func (p *Presenter) Play(ctx context.Context, session *entities.QuizSession) (entities.FinalScore, error) {
	for !session.IsFinished() {
		q, err := session.CurrentQuestion()
		if err != nil {
			return entities.FinalScore{}, err
		}

		options, err := session.CurrentOptions()
		if err != nil {
			return entities.FinalScore{}, err
		}

		p.printQuestion(q, options, session.Index(), session.Total())

		choice, err := p.readChoice(ctx, len(options))
		if err != nil {
			return entities.FinalScore{}, err
		}

		result, err := session.SubmitAnswer(options[choice].Text)
		if err != nil {
			return entities.FinalScore{}, err
		}

		if result.Correct {
			fmt.Fprintln(p.out, "Correct!")
		} else {
			fmt.Fprintf(p.out, "Wrong. The correct answer was: %s\n", result.CorrectAnswer)
		}
	}

	fs, err := session.FinalScore()
	if err != nil {
		return entities.FinalScore{}, err
	}

	fmt.Fprintf(p.out, "\nYour final score: %d/%d\n", fs.Score, fs.Total)
	p.logger.Debug("console quiz finished", zap.Int("score", fs.Score), zap.Int("total", fs.Total))

	return fs, nil
}

func (p *Presenter) printQuestion(q entities.Question, options []entities.AnswerOption, index, total int) {
	fmt.Fprintf(p.out, "\nQuestion %d/%d", index+1, total)
	if q.Category != "" {
		fmt.Fprintf(p.out, " [%s]", q.Category)
	}
	fmt.Fprintf(p.out, "\n%s\n\n", q.Text)

	for i, opt := range options {
		fmt.Fprintf(p.out, "  %d. %s\n", i+1, opt.Text)
	}
}

// readChoice reads lines until one holds an option number and returns it 0-based.
func (p *Presenter) readChoice(ctx context.Context, count int) (int, error) {
	p.readOnce.Do(func() { go p.scanLines() })

	for {
		fmt.Fprint(p.out, "Your answer: ")

		var line string
		select {
		case <-ctx.Done():
			return 0, ctx.Err()
		case l, ok := <-p.lines:
			if !ok {
				if p.readErr != nil {
					return 0, fmt.Errorf("read answer: %w", p.readErr)
				}
				return 0, ErrInputClosed
			}
			line = l
		}

		n, err := strconv.Atoi(strings.TrimSpace(line))
		if err == nil && n >= 1 && n <= count {
			return n - 1, nil
		}

		fmt.Fprintf(p.out, "Please enter a number from 1 to %d.\n", count)
	}
}

func (p *Presenter) scanLines() {
	defer close(p.lines)

	sc := bufio.NewScanner(p.in)
	for sc.Scan() {
		p.lines <- sc.Text()
	}
	p.readErr = sc.Err()
}
