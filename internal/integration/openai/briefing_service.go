package openai

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/invopop/jsonschema"
	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"

	"github.com/DecayAI/windwizard/internal/entities"
)

// BriefingService defines the interface for generating AI conditions briefings.
type BriefingService interface {
	GenerateBriefing(ctx context.Context, report entities.StokeReport) (*entities.Briefing, error)
}

// briefingServiceImpl implements the BriefingService interface.
type briefingServiceImpl struct {
	client openai.Client
	schema interface{}
}

// GenerateSchema generates a JSON schema for a given type.
func GenerateSchema[T any]() interface{} {
	reflector := jsonschema.Reflector{
		AllowAdditionalProperties: false,
		DoNotReference:            true,
	}
	var v T
	schema := reflector.Reflect(v)
	return schema
}

// NewBriefingService creates and initializes a new BriefingService.
func NewBriefingService() (BriefingService, error) {
	apiKey := os.Getenv("OPENAI_API_KEY")
	if apiKey == "" {
		return nil, errors.New("OPENAI_API_KEY environment variable not set")
	}
	client := openai.NewClient(option.WithAPIKey(apiKey))
	schema := GenerateSchema[entities.Briefing]()

	return &briefingServiceImpl{
		client: client,
		schema: schema,
	}, nil
}

// GenerateBriefing turns a stoke report into a short personal briefing.
func (s *briefingServiceImpl) GenerateBriefing(ctx context.Context, report entities.StokeReport) (*entities.Briefing, error) {
	systemPrompt := `You are WindWizard, a permanently stoked kitesurf coach who has spent twenty years chasing wind around Øresund and still gets giddy over a solid forecast. You speak like you are shouting over an onshore breeze and you never waste a rider's time.

Requirements:
- You know kites, boards, tides and wind like the back of your sunburnt hand.
- You keep it short. One headline sentence, then practical advice.
- You adapt the advice to the rider's skill level: beginners get safety first, advanced riders get the spicy option.
- Low stoke scores get honest bad news ("stay home, wax your board"), high scores get full send energy.

Output **strictly** in JSON.`

	userPrompt := fmt.Sprintf(
		"Conditions: average wind %.1f kt, average tide %.2f m, stoke score %d/100, recommended kite: %s. Rider skill: %s, weight %.0f kg.",
		report.AvgWind,
		report.AvgTide,
		report.Stoke,
		report.Kite,
		report.Profile.SkillOrDefault(),
		report.Profile.WeightOrDefault(),
	)

	schemaParam := openai.ResponseFormatJSONSchemaJSONSchemaParam{
		Name:        "briefing",
		Description: openai.String("Structured conditions briefing with a headline and advice"),
		Schema:      s.schema,
		Strict:      openai.Bool(true),
	}

	respFormat := openai.ChatCompletionNewParamsResponseFormatUnion{
		OfJSONSchema: &openai.ResponseFormatJSONSchemaParam{JSONSchema: schemaParam},
	}

	chat, err := s.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(systemPrompt),
			openai.UserMessage(userPrompt),
		},
		ResponseFormat: respFormat,
		Model:          openai.ChatModelGPT4o,
	})

	if err != nil {
		return nil, fmt.Errorf("error calling OpenAI API: %w", err)
	}

	if len(chat.Choices) == 0 || chat.Choices[0].Message.Content == "" {
		return nil, errors.New("received empty response from OpenAI")
	}

	var briefing entities.Briefing
	err = json.Unmarshal([]byte(chat.Choices[0].Message.Content), &briefing)
	if err != nil {
		log.Printf("Failed to unmarshal OpenAI response: %s\nRaw response: %s", err, chat.Choices[0].Message.Content)
		return nil, fmt.Errorf("error unmarshalling OpenAI response: %w", err)
	}

	return &briefing, nil
}
