package aiquiz

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/kabore-dev/prepa-concours/internal/config"
	"google.golang.org/genai"
)

type Provider interface {
	SendPrompt(ctx context.Context, system, user string) (*GeneratedQuiz, error)
}

type geminiProvider struct {
	client *genai.Client
}

func NewGeminiProvider(ctx context.Context) (Provider, error) {
	client, err := genai.NewClient(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("erreur à la création du client Gemini: %w", err)
	}
	return &geminiProvider{client: client}, nil
}

func (p *geminiProvider) SendPrompt(ctx context.Context, system, user string) (*GeneratedQuiz, error) {
	log := config.WithContext(ctx)
	prompt := system + "\n\n" + user

	result, err := p.client.Models.GenerateContent(
		ctx,
		"gemini-2.0-flash",
		genai.Text(prompt),
		nil,
	)
	if err != nil {
		log.WithError(err).Error("échec de la génération de contenu Gemini")
		return nil, fmt.Errorf("échec de la génération de contenu: %w", err)
	}

	raw := result.Text()
	log.Debugf("[AIQUIZ] Réponse brute de Gemini:\n%s", raw)

	if raw == "" {
		return nil, ErrNoContent
	}

	clean := strings.TrimSpace(raw)
	clean = strings.TrimPrefix(clean, "```json")
	clean = strings.TrimSuffix(clean, "```")
	clean = strings.Trim(clean, "`")

	var generated GeneratedQuiz
	if err := json.Unmarshal([]byte(clean), &generated); err != nil {
		log.WithError(err).Errorf("[AIQUIZ] Échec du décodage JSON. Contenu nettoyé:\n%s", clean)
		return nil, fmt.Errorf("%w: %v", ErrNoContent, err)
	}
	if len(generated.Questions) == 0 {
		return nil, ErrNoContent
	}

	log.Infof("[AIQUIZ] %d questions générées avec succès", len(generated.Questions))
	return &generated, nil
}
