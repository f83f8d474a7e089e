package server

import (
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/verveschool/cv-builder/internal/db"
	"github.com/verveschool/cv-builder/internal/parsing"
	"github.com/verveschool/cv-builder/internal/rendering"
)

// Response headers set on rendered documents
const (
	HeaderDocumentID = "X-Document-ID"
	HeaderPageCount  = "X-Page-Count"
)

// DocumentListResponse represents the response for GET /documents
type DocumentListResponse struct {
	Documents []db.DocumentSummary `json:"documents"`
	Count     int                  `json:"count"`
}

// handleRender renders the candidate JSON in the request body into a PDF
func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, s.maxBody))
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), "Failed to read request body: "+err.Error())
		return
	}

	rec, err := parsing.ParseCandidate(body)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	doc, err := rendering.Layout(rec, s.layout)
	if err != nil {
		log.Printf("[server] layout failed: %v", err)
		s.errorResponse(w, HTTPStatus(err), "Failed to lay out document")
		return
	}

	if s.maxPages > 0 && doc.PageCount() > s.maxPages {
		err := &ErrPageLimit{Pages: doc.PageCount(), Max: s.maxPages}
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	data, err := doc.Bytes()
	if err != nil {
		log.Printf("[server] finalize failed: %v", err)
		s.errorResponse(w, HTTPStatus(err), "Failed to finalize document")
		return
	}

	id := uuid.New()
	fileName := rec.FileStem() + "_CV.pdf"

	if s.store != nil {
		_, err := s.store.SaveDocument(r.Context(), &db.DocumentInput{
			ID:        id,
			FileName:  fileName,
			Source:    db.SourceHTTP,
			Candidate: rec,
			PDF:       data,
			PageCount: doc.PageCount(),
			GapCount:  len(doc.Gaps()),
		})
		if err != nil {
			log.Printf("[server] failed to store document %s: %v", id, err)
			s.errorResponse(w, http.StatusInternalServerError, "Failed to store document")
			return
		}
	}

	log.Printf("[server] rendered %s (%d pages, %d bytes)", fileName, doc.PageCount(), len(data))

	w.Header().Set(HeaderDocumentID, id.String())
	w.Header().Set(HeaderPageCount, strconv.Itoa(doc.PageCount()))
	writePDF(w, fileName, data)
}

// handleListDocuments lists recently stored documents
func (s *Server) handleListDocuments(w http.ResponseWriter, r *http.Request) {
	if s.store == nil {
		err := &ErrStoreUnavailable{}
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	filters := db.DocumentFilters{
		Name:   r.URL.Query().Get("name"),
		Source: r.URL.Query().Get("source"),
	}
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		limit, err := strconv.Atoi(limitStr)
		if err != nil || limit < 1 {
			err := &ErrValidation{Field: "limit", Message: "must be a positive integer"}
			s.errorResponse(w, HTTPStatus(err), err.Error())
			return
		}
		filters.Limit = limit
	}

	docs, err := s.store.ListDocuments(r.Context(), filters)
	if err != nil {
		log.Printf("[server] list documents failed: %v", err)
		s.errorResponse(w, http.StatusInternalServerError, "Failed to list documents")
		return
	}
	if docs == nil {
		docs = []db.DocumentSummary{}
	}

	s.jsonResponse(w, http.StatusOK, DocumentListResponse{Documents: docs, Count: len(docs)})
}

// handleGetDocument returns the stored PDF for a document ID
func (s *Server) handleGetDocument(w http.ResponseWriter, r *http.Request) {
	if s.store == nil {
		err := &ErrStoreUnavailable{}
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		verr := &ErrValidation{Field: "id", Message: "must be a UUID"}
		s.errorResponse(w, HTTPStatus(verr), verr.Error())
		return
	}

	doc, err := s.store.GetDocument(r.Context(), id)
	if err != nil {
		log.Printf("[server] get document %s failed: %v", id, err)
		s.errorResponse(w, http.StatusInternalServerError, "Failed to load document")
		return
	}
	if doc == nil {
		nf := &ErrDocumentNotFound{ID: id}
		s.errorResponse(w, HTTPStatus(nf), nf.Error())
		return
	}

	w.Header().Set(HeaderDocumentID, doc.ID.String())
	w.Header().Set(HeaderPageCount, strconv.Itoa(doc.PageCount))
	writePDF(w, doc.FileName, doc.PDF)
}

// handleDeleteDocument removes a stored document
func (s *Server) handleDeleteDocument(w http.ResponseWriter, r *http.Request) {
	if s.store == nil {
		err := &ErrStoreUnavailable{}
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		verr := &ErrValidation{Field: "id", Message: "must be a UUID"}
		s.errorResponse(w, HTTPStatus(verr), verr.Error())
		return
	}

	if err := s.store.DeleteDocument(r.Context(), id); err != nil {
		if errors.Is(err, db.ErrNotFound) {
			nf := &ErrDocumentNotFound{ID: id}
			s.errorResponse(w, HTTPStatus(nf), nf.Error())
			return
		}
		log.Printf("[server] delete document %s failed: %v", id, err)
		s.errorResponse(w, http.StatusInternalServerError, "Failed to delete document")
		return
	}

	log.Printf("[server] deleted document %s", id)
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "deleted", "id": id.String()})
}

// writePDF sends data as a downloadable PDF attachment
func writePDF(w http.ResponseWriter, fileName string, data []byte) {
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", fileName))
	w.Header().Set("Content-Length", strconv.Itoa(len(data)))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(data); err != nil {
		log.Printf("[server] error writing PDF response: %v", err)
	}
}
