// Package speech turns text into a downloadable audio file via the speech
// backend. The backend streams raw PCM; this package assembles it into a
// WAV container when the reported MIME type is not already a container
// format.
package speech

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// ErrNoAudio is returned when the backend stream yields no audio data.
var ErrNoAudio = errors.New("no audio generated")

// Backend is the synthesis capability, satisfied by the gemini client.
type Backend interface {
	SynthesizeSpeech(ctx context.Context, prompt, voice string) (audio []byte, mimeType string, err error)
}

// Request is one synthesis job. StylePrompt optionally steers delivery
// ("cheerful", "slow and clear", ...).
type Request struct {
	Text        string `json:"text"`
	Voice       string `json:"voice"`
	StylePrompt string `json:"stylePrompt,omitempty"`
}

// Synthesize produces a playable audio file for req. Raw PCM responses are
// wrapped in a WAV header; mp3/ogg/wav responses pass through unchanged.
func Synthesize(ctx context.Context, backend Backend, req Request) ([]byte, error) {
	prompt := req.Text
	if req.StylePrompt != "" {
		prompt = fmt.Sprintf("Read aloud in a %s tone\n%s", req.StylePrompt, req.Text)
	}

	audio, mimeType, err := backend.SynthesizeSpeech(ctx, prompt, req.Voice)
	if err != nil {
		return nil, fmt.Errorf("synthesize speech: %w", err)
	}
	if len(audio) == 0 {
		return nil, ErrNoAudio
	}

	if containerExtension(mimeType) != "" {
		return audio, nil
	}
	return wrapWAV(audio, parseAudioMIME(mimeType)), nil
}

// containerExtension reports the file extension for MIME types that are
// already container formats, or "" for raw encodings that still need a
// WAV header.
func containerExtension(mimeType string) string {
	lower := strings.ToLower(mimeType)
	switch {
	case strings.Contains(lower, "audio/wav"), strings.Contains(lower, "audio/x-wav"):
		return "wav"
	case strings.Contains(lower, "audio/mpeg"), strings.Contains(lower, "audio/mp3"):
		return "mp3"
	case strings.Contains(lower, "audio/ogg"):
		return "ogg"
	default:
		return ""
	}
}
