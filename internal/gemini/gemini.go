// Package gemini is the concrete oracle: a thin client over the Gemini
// structured-output, vision and speech APIs. Structured responses are
// trusted verbatim once they decode; shape enforcement happens at the
// provider through response schemas.
package gemini

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"google.golang.org/genai"

	"github.com/teachkit/teachkit/internal/domain"
	"github.com/teachkit/teachkit/internal/log"
	"github.com/teachkit/teachkit/internal/vision"
)

const (
	// DefaultModel handles classification, template analysis and vision.
	DefaultModel = "gemini-2.5-flash"
	// DefaultTTSModel handles speech synthesis.
	DefaultTTSModel = "gemini-2.5-flash-preview-tts"
	// DefaultVoice is used when a request names no prebuilt voice.
	DefaultVoice = "Kore"

	// structuredTemperature keeps structured-output calls near-greedy.
	structuredTemperature = 0.1
	speechTemperature     = 1.0
)

type Config struct {
	APIKey   string
	Model    string
	TTSModel string
}

type Client struct {
	genai    *genai.Client
	model    string
	ttsModel string
}

func NewClient(ctx context.Context, cfg Config) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, errors.New("gemini API key not configured, set the GEMINI_API_KEY environment variable")
	}
	gc, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}

	c := &Client{genai: gc, model: cfg.Model, ttsModel: cfg.TTSModel}
	if c.model == "" {
		c.model = DefaultModel
	}
	if c.ttsModel == "" {
		c.ttsModel = DefaultTTSModel
	}
	return c, nil
}

// structuredConfig is the shared request shape for structured-output
// calls: JSON responses constrained by schema, low temperature, and the
// harassment threshold relaxed so quiz content is not refused.
func structuredConfig(schema *genai.Schema) *genai.GenerateContentConfig {
	return &genai.GenerateContentConfig{
		Temperature:      genai.Ptr[float32](structuredTemperature),
		ResponseMIMEType: "application/json",
		ResponseSchema:   schema,
		SafetySettings: []*genai.SafetySetting{
			{
				Category:  genai.HarmCategoryHarassment,
				Threshold: genai.HarmBlockThresholdBlockOnlyHigh,
			},
		},
	}
}

// classifiedItem is the wire shape of one classification item; numbering
// comes flat and is folded into ContentItem metadata.
type classifiedItem struct {
	Type           string                `json:"type"`
	LayoutType     string                `json:"layoutType"`
	Content        string                `json:"content"`
	QuestionNumber int                   `json:"questionNumber"`
	HeadingLevel   int                   `json:"headingLevel"`
	Answers        []domain.AnswerOption `json:"answers"`
}

// ClassifyChunk implements oracle.Oracle.
func (c *Client) ClassifyChunk(ctx context.Context, chunk string) ([]domain.ContentItem, error) {
	resp, err := c.genai.Models.GenerateContent(ctx, c.model,
		genai.Text(classifyPrompt(chunk)), structuredConfig(classificationSchema()))
	if err != nil {
		return nil, fmt.Errorf("classification request: %w", err)
	}

	raw := resp.Text()
	log.Logf(log.Wire, "classification response: %s", raw)

	var parsed struct {
		Items []classifiedItem `json:"items"`
	}
	if err := json.Unmarshal([]byte(raw), &parsed); err != nil {
		return nil, fmt.Errorf("decode classification response: %w", err)
	}

	items := make([]domain.ContentItem, len(parsed.Items))
	for i, item := range parsed.Items {
		items[i] = domain.ContentItem{
			Type:       domain.ItemType(item.Type),
			LayoutType: domain.LayoutType(item.LayoutType),
			Content:    item.Content,
			Metadata: domain.ItemMetadata{
				QuestionNumber: item.QuestionNumber,
				HeadingLevel:   item.HeadingLevel,
			},
			Answers: item.Answers,
		}
	}
	return items, nil
}

// AnalyzeTemplate implements oracle.Oracle. The returned patch carries only
// the fields the model filled in; the analyzer merges it over defaults.
func (c *Client) AnalyzeTemplate(ctx context.Context, markup string) (*domain.RulesPatch, error) {
	resp, err := c.genai.Models.GenerateContent(ctx, c.model,
		genai.Text(analyzePrompt(markup)), structuredConfig(templateSchema()))
	if err != nil {
		return nil, fmt.Errorf("template analysis request: %w", err)
	}

	raw := resp.Text()
	log.Logf(log.Wire, "template analysis response: %s", raw)

	var patch domain.RulesPatch
	if err := json.Unmarshal([]byte(raw), &patch); err != nil {
		return nil, fmt.Errorf("decode template analysis response: %w", err)
	}
	return &patch, nil
}

// ExtractTableRaw implements vision.Oracle.
func (c *Client) ExtractTableRaw(ctx context.Context, image []byte, mimeType string, maxColumns int) (*vision.RawTable, error) {
	contents := []*genai.Content{
		genai.NewContentFromParts([]*genai.Part{
			genai.NewPartFromText(extractTablePrompt),
			genai.NewPartFromBytes(image, mimeType),
		}, genai.RoleUser),
	}

	resp, err := c.genai.Models.GenerateContent(ctx, c.model, contents, structuredConfig(tableSchema(maxColumns)))
	if err != nil {
		return nil, fmt.Errorf("table extraction request: %w", err)
	}

	raw := resp.Text()
	log.Logf(log.Wire, "table extraction response: %s", raw)

	var table vision.RawTable
	if err := json.Unmarshal([]byte(raw), &table); err != nil {
		return nil, fmt.Errorf("decode table extraction response: %w", err)
	}
	return &table, nil
}

// SynthesizeSpeech streams audio generation for prompt with the given
// prebuilt voice and returns the concatenated raw audio plus the MIME type
// the model reported (typically raw PCM such as audio/L16;rate=24000).
func (c *Client) SynthesizeSpeech(ctx context.Context, prompt, voice string) ([]byte, string, error) {
	if voice == "" {
		voice = DefaultVoice
	}
	config := &genai.GenerateContentConfig{
		Temperature:        genai.Ptr[float32](speechTemperature),
		ResponseModalities: []string{"AUDIO"},
		SpeechConfig: &genai.SpeechConfig{
			VoiceConfig: &genai.VoiceConfig{
				PrebuiltVoiceConfig: &genai.PrebuiltVoiceConfig{VoiceName: voice},
			},
		},
	}

	var (
		audio    []byte
		mimeType string
	)
	for resp, err := range c.genai.Models.GenerateContentStream(ctx, c.ttsModel, genai.Text(prompt), config) {
		if err != nil {
			return nil, "", fmt.Errorf("speech synthesis stream: %w", err)
		}
		for _, cand := range resp.Candidates {
			if cand.Content == nil {
				continue
			}
			for _, part := range cand.Content.Parts {
				if part.InlineData == nil || len(part.InlineData.Data) == 0 {
					continue
				}
				if part.InlineData.MIMEType != "" {
					mimeType = part.InlineData.MIMEType
				}
				audio = append(audio, part.InlineData.Data...)
			}
		}
	}
	log.Logf(log.Trace, "speech synthesis produced %d bytes (%s)", len(audio), mimeType)
	return audio, mimeType, nil
}
