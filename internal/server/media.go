package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/teachkit/teachkit/internal/speech"
	"github.com/teachkit/teachkit/internal/video"
)

// textToSpeech synthesizes the posted text and returns a playable audio
// attachment.
func (s *Server) textToSpeech(c *gin.Context) {
	if s.deps.Speech == nil {
		fail(c, http.StatusServiceUnavailable, errors.New("speech synthesis is not configured"))
		return
	}

	var req speech.Request
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, err)
		return
	}
	if req.Text == "" {
		fail(c, http.StatusBadRequest, errors.New("text is required"))
		return
	}

	audio, err := speech.Synthesize(c.Request.Context(), s.deps.Speech, req)
	if err != nil {
		status := upstreamStatus(err)
		if errors.Is(err, speech.ErrNoAudio) {
			status = http.StatusBadGateway
		}
		fail(c, status, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="speech.wav"`)
	c.Data(http.StatusOK, "audio/wav", audio)
}

// fetchVideo resolves a video URL to a direct download link.
func (s *Server) fetchVideo(c *gin.Context) {
	if s.deps.Video == nil {
		fail(c, http.StatusServiceUnavailable, errors.New("video fetching is not configured"))
		return
	}

	var req struct {
		URL string `json:"url"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, err)
		return
	}
	if req.URL == "" {
		fail(c, http.StatusBadRequest, errors.New("url is required"))
		return
	}

	result, err := s.deps.Video.Fetch(c.Request.Context(), req.URL)
	if err != nil {
		status := upstreamStatus(err)
		switch {
		case errors.Is(err, video.ErrNoFormat):
			status = http.StatusNotFound
		case errors.Is(err, video.ErrLiveContent):
			status = http.StatusBadRequest
		}
		fail(c, status, err)
		return
	}
	c.JSON(http.StatusOK, result)
}
