package speech

import (
	"bytes"
	"encoding/binary"
	"strconv"
	"strings"
)

// pcmFormat describes raw PCM parameters recovered from a MIME type such
// as "audio/L16;codec=pcm;rate=24000".
type pcmFormat struct {
	BitsPerSample int
	SampleRate    int
	Channels      int
}

// parseAudioMIME extracts PCM parameters from mimeType. Missing or
// unparseable pieces fall back to 16-bit 24kHz mono, which is what the
// speech models emit.
func parseAudioMIME(mimeType string) pcmFormat {
	format := pcmFormat{BitsPerSample: 16, SampleRate: 24000, Channels: 1}

	for _, part := range strings.Split(mimeType, ";") {
		part = strings.TrimSpace(part)
		switch {
		case strings.HasPrefix(part, "audio/"):
			// "audio/L16" carries the sample width after the L.
			if sub := strings.TrimPrefix(part, "audio/"); strings.HasPrefix(sub, "L") {
				if bits, err := strconv.Atoi(sub[1:]); err == nil {
					format.BitsPerSample = bits
				}
			}
		case strings.HasPrefix(part, "rate="):
			if rate, err := strconv.Atoi(strings.TrimPrefix(part, "rate=")); err == nil {
				format.SampleRate = rate
			}
		case strings.HasPrefix(part, "channels="):
			if ch, err := strconv.Atoi(strings.TrimPrefix(part, "channels=")); err == nil {
				format.Channels = ch
			}
		}
	}
	return format
}

// wrapWAV prepends a 44-byte RIFF/WAVE header to raw PCM data.
func wrapWAV(pcm []byte, format pcmFormat) []byte {
	dataSize := uint32(len(pcm))
	byteRate := uint32(format.SampleRate * format.Channels * format.BitsPerSample / 8)
	blockAlign := uint16(format.Channels * format.BitsPerSample / 8)

	var buf bytes.Buffer
	buf.Grow(44 + len(pcm))
	buf.WriteString("RIFF")
	binary.Write(&buf, binary.LittleEndian, uint32(36)+dataSize)
	buf.WriteString("WAVE")
	buf.WriteString("fmt ")
	binary.Write(&buf, binary.LittleEndian, uint32(16))
	binary.Write(&buf, binary.LittleEndian, uint16(1)) // PCM
	binary.Write(&buf, binary.LittleEndian, uint16(format.Channels))
	binary.Write(&buf, binary.LittleEndian, uint32(format.SampleRate))
	binary.Write(&buf, binary.LittleEndian, byteRate)
	binary.Write(&buf, binary.LittleEndian, blockAlign)
	binary.Write(&buf, binary.LittleEndian, uint16(format.BitsPerSample))
	buf.WriteString("data")
	binary.Write(&buf, binary.LittleEndian, dataSize)
	buf.Write(pcm)
	return buf.Bytes()
}
