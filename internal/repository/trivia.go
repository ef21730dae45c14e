package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"html"
	"math/rand"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/aliskhannn/opentdb-quiz-bot/internal/domain/entities"
)

var (
	ErrSourceUnavailable = errors.New("trivia source unavailable")
	ErrMalformedResponse = errors.New("malformed trivia response")
)

// DefaultTriviaURL is the Open Trivia Database question endpoint.
const DefaultTriviaURL = "https://opentdb.com/api.php"

// TriviaRepository fetches questions from an OpenTDB compatible API.
// Every call performs exactly one request per question type; nothing is cached.
type TriviaRepository struct {
	client         *http.Client
	baseURL        string
	booleanAmount  int
	multipleAmount int

	rng *rand.Rand
}

// NewTriviaRepository creates a new TriviaRepository.
func NewTriviaRepository(client *http.Client, baseURL string, booleanAmount, multipleAmount int) *TriviaRepository {
	if client == nil {
		client = http.DefaultClient
	}
	if baseURL == "" {
		baseURL = DefaultTriviaURL
	}

	return &TriviaRepository{
		client:         client,
		baseURL:        baseURL,
		booleanAmount:  booleanAmount,
		multipleAmount: multipleAmount,
		rng:            rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

type triviaResponse struct {
	ResponseCode int              `json:"response_code"`
	Results      []triviaQuestion `json:"results"`
}

type triviaQuestion struct {
	Type             string   `json:"type"`
	Difficulty       string   `json:"difficulty"`
	Category         string   `json:"category"`
	Question         string   `json:"question"`
	CorrectAnswer    string   `json:"correct_answer"`
	IncorrectAnswers []string `json:"incorrect_answers"`
}

// FetchQuestions returns the boolean and multiple choice questions in random order.
func (r *TriviaRepository) FetchQuestions(ctx context.Context) ([]entities.Question, error) {
	multiple, err := r.fetch(ctx, entities.QuestionTypeMultiple, r.multipleAmount)
	if err != nil {
		return nil, err
	}

	boolean, err := r.fetch(ctx, entities.QuestionTypeBoolean, r.booleanAmount)
	if err != nil {
		return nil, err
	}

	questions := make([]entities.Question, 0, len(multiple)+len(boolean))
	questions = append(questions, multiple...)
	questions = append(questions, boolean...)

	r.rng.Shuffle(len(questions), func(i, j int) {
		questions[i], questions[j] = questions[j], questions[i]
	})

	return questions, nil
}

func (r *TriviaRepository) fetch(ctx context.Context, qType entities.QuestionType, amount int) ([]entities.Question, error) {
	reqURL, err := r.buildURL(qType, amount)
	if err != nil {
		return nil, fmt.Errorf("build %s request url: %w", qType, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("new %s request: %w", qType, err)
	}

	resp, err := r.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: get %s questions: %w", ErrSourceUnavailable, qType, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: get %s questions: HTTP %d", ErrSourceUnavailable, qType, resp.StatusCode)
	}

	var body triviaResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("%w: decode %s questions: %w", ErrMalformedResponse, qType, err)
	}

	if body.ResponseCode != 0 {
		return nil, fmt.Errorf("%w: %s questions: response code %d", ErrMalformedResponse, qType, body.ResponseCode)
	}
	// A quiz never starts from a partial question set.
	if len(body.Results) != amount {
		return nil, fmt.Errorf("%w: %s questions: requested %d, got %d", ErrMalformedResponse, qType, amount, len(body.Results))
	}

	questions := make([]entities.Question, 0, len(body.Results))
	for i, raw := range body.Results {
		if raw.Type != string(qType) {
			return nil, fmt.Errorf("%w: %s question %d: unexpected type %q", ErrMalformedResponse, qType, i, raw.Type)
		}

		q, err := normalizeQuestion(raw)
		if err != nil {
			return nil, fmt.Errorf("%w: %s question %d: %v", ErrMalformedResponse, qType, i, err)
		}
		questions = append(questions, q)
	}

	return questions, nil
}

func (r *TriviaRepository) buildURL(qType entities.QuestionType, amount int) (string, error) {
	u, err := url.Parse(r.baseURL)
	if err != nil {
		return "", err
	}

	query := u.Query()
	query.Set("amount", strconv.Itoa(amount))
	query.Set("type", string(qType))
	u.RawQuery = query.Encode()

	return u.String(), nil
}

// normalizeQuestion decodes HTML entities and checks the answer count for the question type.
func normalizeQuestion(raw triviaQuestion) (entities.Question, error) {
	qType := entities.QuestionType(raw.Type)

	want := qType.IncorrectAnswersCount()
	if want < 0 {
		return entities.Question{}, fmt.Errorf("unknown question type %q", raw.Type)
	}
	if len(raw.IncorrectAnswers) != want {
		return entities.Question{}, fmt.Errorf("expected %d incorrect answers, got %d", want, len(raw.IncorrectAnswers))
	}

	incorrect := make([]string, 0, len(raw.IncorrectAnswers))
	for _, a := range raw.IncorrectAnswers {
		incorrect = append(incorrect, html.UnescapeString(a))
	}

	return entities.Question{
		Text:             html.UnescapeString(raw.Question),
		Type:             qType,
		Category:         html.UnescapeString(raw.Category),
		Difficulty:       raw.Difficulty,
		CorrectAnswer:    html.UnescapeString(raw.CorrectAnswer),
		IncorrectAnswers: incorrect,
	}, nil
}
