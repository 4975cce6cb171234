package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/gin-gonic/gin"
	"github.com/samber/lo"

	"github.com/teachkit/teachkit/internal/sheet"
)

const xlsxMIME = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// scanHeaders returns the header row of an uploaded spreadsheet so the
// client can offer column selection.
func (s *Server) scanHeaders(c *gin.Context) {
	data, _, ok := s.readUpload(c, "file")
	if !ok {
		return
	}
	if !mimetype.Detect(data).Is(xlsxMIME) {
		fail(c, http.StatusBadRequest, errors.New("file must be an .xlsx spreadsheet"))
		return
	}

	headers, err := sheet.Headers(data)
	if err != nil {
		fail(c, http.StatusBadRequest, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"headers": lo.Uniq(headers)})
}

// extractData projects spreadsheet rows onto the headers the client
// selected. selectedHeaders arrives as a JSON array form field.
func (s *Server) extractData(c *gin.Context) {
	data, _, ok := s.readUpload(c, "file")
	if !ok {
		return
	}
	if !mimetype.Detect(data).Is(xlsxMIME) {
		fail(c, http.StatusBadRequest, errors.New("file must be an .xlsx spreadsheet"))
		return
	}

	var selected []string
	raw := c.PostForm("selectedHeaders")
	if raw == "" {
		fail(c, http.StatusBadRequest, errors.New("selectedHeaders is required"))
		return
	}
	if err := json.Unmarshal([]byte(raw), &selected); err != nil {
		fail(c, http.StatusBadRequest, fmt.Errorf("parse selectedHeaders: %w", err))
		return
	}

	rows, err := sheet.Rows(data, selected)
	if err != nil {
		fail(c, http.StatusBadRequest, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": rows})
}

// processFile dispatches on the sniffed upload type: spreadsheets go
// through the sheet reader, images through vision extraction.
func (s *Server) processFile(c *gin.Context) {
	data, _, ok := s.readUpload(c, "file")
	if !ok {
		return
	}

	detected := mimetype.Detect(data)
	switch {
	case detected.Is(xlsxMIME):
		headers, err := sheet.Headers(data)
		if err != nil {
			fail(c, http.StatusBadRequest, err)
			return
		}
		rows, err := sheet.Rows(data, headers)
		if err != nil {
			fail(c, http.StatusBadRequest, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"headers": headers, "data": rows})

	case strings.HasPrefix(detected.String(), "image/"):
		if s.deps.Tables == nil {
			fail(c, http.StatusServiceUnavailable, errors.New("image extraction is not configured"))
			return
		}
		table, err := s.deps.Tables.Extract(c.Request.Context(), data, detected.String())
		if err != nil {
			fail(c, upstreamStatus(err), err)
			return
		}
		c.JSON(http.StatusOK, table)

	default:
		fail(c, http.StatusBadRequest,
			fmt.Errorf("unsupported file type %s; upload an image or .xlsx spreadsheet", detected.String()))
	}
}
