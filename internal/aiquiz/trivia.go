package aiquiz

import (
	"context"
	"encoding/json"
	"fmt"
	"html"
	"math/rand"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/kabore-dev/prepa-concours/internal/quiz"
	"gorm.io/datatypes"
)

const defaultTriviaBaseURL = "https://opentdb.com/api.php"

// difficultés de la banque publique (anglophone)
var triviaDifficulties = map[quiz.Difficulty]string{
	quiz.DifficultyFacile:    "easy",
	quiz.DifficultyMoyen:     "medium",
	quiz.DifficultyDifficile: "hard",
}

// thèmes traduits vers les identifiants numériques de catégorie de la
// banque publique
var triviaCategories = map[string]string{
	"culture générale": "9",
	"sciences":         "17",
	"informatique":     "18",
	"mathématiques":    "19",
	"sport":            "21",
	"géographie":       "22",
	"histoire":         "23",
	"politique":        "24",
}

type TriviaClient struct {
	baseURL string
	client  *http.Client
	rng     *rand.Rand
}

func NewTriviaClient() *TriviaClient {
	return &TriviaClient{
		baseURL: defaultTriviaBaseURL,
		client:  &http.Client{Timeout: 15 * time.Second},
		rng:     rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// NewTriviaClientWithBase est utilisé par les tests pour pointer vers un
// serveur factice et fixer la graine du mélange.
func NewTriviaClientWithBase(baseURL string, seed int64) *TriviaClient {
	c := NewTriviaClient()
	c.baseURL = baseURL
	c.rng = rand.New(rand.NewSource(seed))
	return c
}

type triviaResponse struct {
	ResponseCode int            `json:"response_code"`
	Results      []triviaRecord `json:"results"`
}

type triviaRecord struct {
	Category         string   `json:"category"`
	Question         string   `json:"question"`
	CorrectAnswer    string   `json:"correct_answer"`
	IncorrectAnswers []string `json:"incorrect_answers"`
}

// FetchQuestions interroge la banque publique et remodèle chaque
// enregistrement plat (question / bonne réponse / mauvaises réponses)
// vers la forme canonique: options mélangées par permutation uniforme
// (Fisher–Yates), complétées ou tronquées à 4 par la normalisation, une
// seule bonne réponse et une explication synthétique.
func (c *TriviaClient) FetchQuestions(ctx context.Context, category string, difficulty quiz.Difficulty, amount int) ([]quiz.Question, error) {
	params := url.Values{}
	params.Set("amount", fmt.Sprintf("%d", amount))
	params.Set("type", "multiple")
	if d, ok := triviaDifficulties[difficulty]; ok {
		params.Set("difficulty", d)
	}
	if id := triviaCategoryID(category); id != "" {
		params.Set("category", id)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, &UpstreamError{Err: err}
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, &UpstreamError{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &UpstreamError{Status: resp.StatusCode}
	}

	var body triviaResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, &UpstreamError{Err: err}
	}

	questions := make([]quiz.Question, 0, len(body.Results))
	for i, record := range body.Results {
		questions = append(questions, c.mapRecord(record, i))
	}
	return questions, nil
}

func (c *TriviaClient) mapRecord(record triviaRecord, index int) quiz.Question {
	correct := html.UnescapeString(record.CorrectAnswer)

	options := make([]string, 0, len(record.IncorrectAnswers)+1)
	for _, incorrect := range record.IncorrectAnswers {
		options = append(options, html.UnescapeString(incorrect))
	}
	options = append(options, correct)
	c.shuffle(options)

	return quiz.NormalizeQuestion(quiz.Question{
		Text:           html.UnescapeString(record.Question),
		Options:        datatypes.JSONSlice[string](options),
		CorrectAnswers: datatypes.JSONSlice[string]{correct},
		Explanation:    fmt.Sprintf("La bonne réponse est « %s ».", correct),
		OrderIndex:     index,
	})
}

// triviaCategoryID traduit un thème libre vers l'identifiant numérique
// de catégorie attendu par la banque publique. Un identifiant numérique
// passe tel quel; un thème inconnu n'envoie pas le paramètre, car la
// banque rejette toute valeur non numérique et ne retournerait aucun
// résultat.
func triviaCategoryID(topic string) string {
	topic = strings.TrimSpace(topic)
	if id, ok := triviaCategories[strings.ToLower(topic)]; ok {
		return id
	}
	for _, r := range topic {
		if r < '0' || r > '9' {
			return ""
		}
	}
	return topic
}

// shuffle applique une permutation uniforme de Fisher–Yates.
func (c *TriviaClient) shuffle(options []string) {
	for i := len(options) - 1; i > 0; i-- {
		j := c.rng.Intn(i + 1)
		options[i], options[j] = options[j], options[i]
	}
}
