package response

import (
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/cmlabs-hris/backoffice-backend-go/internal/domain/document"
)

// Document streams a rendered file as an attachment.
func Document(w http.ResponseWriter, doc document.Document) {
	contentType := doc.ContentType
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", doc.Name))
	w.Header().Set("Content-Length", strconv.Itoa(len(doc.Body)))
	if doc.URL != "" {
		w.Header().Set("Content-Location", doc.URL)
	}
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(doc.Body); err != nil {
		slog.Warn("document download write failed", "name", doc.Name, "err", err)
	}
}
