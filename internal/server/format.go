package server

import (
	"errors"
	"fmt"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/gin-gonic/gin"

	"github.com/teachkit/teachkit/internal/docx"
)

const docxMIME = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"

// formatDoc accepts the source document as fileA and the style reference
// as fileB, both docx, and streams back the reformatted document.
func (s *Server) formatDoc(c *gin.Context) {
	if s.deps.Formatter == nil {
		fail(c, http.StatusServiceUnavailable, errors.New("formatting is not configured"))
		return
	}

	source, sourceHeader, ok := s.readUpload(c, "fileA")
	if !ok {
		return
	}
	reference, _, ok := s.readUpload(c, "fileB")
	if !ok {
		return
	}
	for field, data := range map[string][]byte{"fileA": source, "fileB": reference} {
		if !mimetype.Detect(data).Is(docxMIME) {
			fail(c, http.StatusBadRequest, fmt.Errorf("%s must be a .docx document", field))
			return
		}
	}

	out, stats, err := s.deps.Formatter.FormatDocument(c.Request.Context(), source, reference)
	if err != nil {
		status := upstreamStatus(err)
		if errors.Is(err, docx.ErrNotDocx) {
			status = http.StatusBadRequest
		}
		fail(c, status, err)
		return
	}

	base := strings.TrimSuffix(filepath.Base(sourceHeader.Filename), filepath.Ext(sourceHeader.Filename))
	if base == "" {
		base = "document"
	}
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s_formatted.docx"`, base))
	c.Header("X-Items", fmt.Sprint(stats.Items))
	c.Data(http.StatusOK, docxMIME, out)
}
