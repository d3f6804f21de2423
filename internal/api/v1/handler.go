package v1

import (
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Rishi-raj-19/Visual-Product-Matcher/internal/acquire"
	"github.com/Rishi-raj-19/Visual-Product-Matcher/internal/catalog"
	"github.com/Rishi-raj-19/Visual-Product-Matcher/internal/model"
	"github.com/Rishi-raj-19/Visual-Product-Matcher/internal/search"
)

// Handler wires the pipeline and catalog into the HTTP API.
type Handler struct {
	store    *catalog.Store
	sessions *search.SessionManager
	fetcher  *acquire.Fetcher
}

func NewHandler(store *catalog.Store, sessions *search.SessionManager, fetcher *acquire.Fetcher) *Handler {
	return &Handler{store: store, sessions: sessions, fetcher: fetcher}
}

type urlSearchRequest struct {
	ImageURL string `json:"imageUrl" binding:"required"`
	Mode     string `json:"mode,omitempty"`
}

// Search starts a new search from an uploaded file (multipart field
// "image") or a JSON body with a remote imageUrl. A search started
// while another is in flight supersedes it.
func (h *Handler) Search(c *gin.Context) {
	var payload model.ImagePayload
	var modeStr string

	if strings.HasPrefix(c.ContentType(), "multipart/form-data") {
		file, err := c.FormFile("image")
		if err != nil {
			respondError(c, http.StatusBadRequest, "File upload failed", gin.H{
				"upload_error": "Failed to process uploaded file",
				"details":      err.Error(),
			})
			return
		}
		modeStr = c.PostForm("mode")

		payload, err = h.fetcher.FromUpload(file)
		if err != nil {
			respondError(c, http.StatusBadRequest, "Could not load image", gin.H{
				"acquisition_error": err.Error(),
			})
			return
		}
	} else {
		var req urlSearchRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondError(c, http.StatusBadRequest, "Invalid request parameters", gin.H{
				"validation_error": err.Error(),
			})
			return
		}
		modeStr = req.Mode

		var err error
		payload, err = h.fetcher.FromURL(c.Request.Context(), req.ImageURL)
		if err != nil {
			respondError(c, http.StatusBadRequest, "Could not load image", gin.H{
				"acquisition_error": err.Error(),
			})
			return
		}
	}

	mode, err := search.ParseMode(modeStr)
	if err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request parameters", gin.H{
			"validation_error": err.Error(),
		})
		return
	}

	snap, applied := h.sessions.Run(c.Request.Context(), payload, mode)
	if !applied {
		respondError(c, http.StatusConflict, "Search superseded by a newer search", nil)
		return
	}

	if snap.Error != "" {
		status := http.StatusBadGateway
		if snap.ErrorKind == "model_unavailable" {
			status = http.StatusServiceUnavailable
		}
		respondError(c, status, "Search failed", gin.H{
			"kind":    snap.ErrorKind,
			"details": snap.Error,
		})
		return
	}

	respondOK(c, http.StatusOK, "Search completed successfully", snap)
}

// GetSession returns the current session snapshot.
func (h *Handler) GetSession(c *gin.Context) {
	respondOK(c, http.StatusOK, "Session retrieved successfully", h.sessions.Snapshot())
}

// UpdateFilters changes the presentation filters and returns the new
// filtered view.
func (h *Handler) UpdateFilters(c *gin.Context) {
	var f search.Filters
	if err := c.ShouldBindJSON(&f); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request parameters", gin.H{
			"validation_error": err.Error(),
		})
		return
	}
	respondOK(c, http.StatusOK, "Filters updated successfully", h.sessions.SetFilters(f))
}

// ResetSession clears the session, discarding any in-flight search.
func (h *Handler) ResetSession(c *gin.Context) {
	h.sessions.Reset()
	respondOK(c, http.StatusOK, "Session reset successfully", nil)
}

// GetProducts returns the full catalog.
func (h *Handler) GetProducts(c *gin.Context) {
	respondOK(c, http.StatusOK, "Products retrieved successfully", gin.H{
		"products": h.store.Products(),
		"total":    h.store.Len(),
	})
}

// GetCategories returns the distinct catalog categories.
func (h *Handler) GetCategories(c *gin.Context) {
	respondOK(c, http.StatusOK, "Categories retrieved successfully", gin.H{
		"categories": h.store.Categories(),
	})
}

// ProxyImage streams a remote image back to the browser so product
// previews are not blocked by the image host's CORS policy.
func (h *Handler) ProxyImage(c *gin.Context) {
	rawURL := c.Query("url")
	if rawURL == "" {
		respondError(c, http.StatusBadRequest, "Missing url parameter", nil)
		return
	}

	u, err := url.Parse(rawURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") {
		respondError(c, http.StatusBadRequest, "Invalid url parameter", nil)
		return
	}

	req, err := http.NewRequestWithContext(c.Request.Context(), http.MethodGet, rawURL, nil)
	if err != nil {
		respondError(c, http.StatusBadRequest, "Invalid url parameter", nil)
		return
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		respondError(c, http.StatusBadGateway, "Failed to fetch image", gin.H{
			"details": err.Error(),
		})
		return
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		respondError(c, http.StatusBadGateway, "Failed to fetch image", gin.H{
			"status": resp.StatusCode,
		})
		return
	}

	c.Header("Content-Type", resp.Header.Get("Content-Type"))
	c.Status(http.StatusOK)
	io.Copy(c.Writer, resp.Body)
}

// Health reports service liveness.
func (h *Handler) Health(c *gin.Context) {
	respondOK(c, http.StatusOK, "OK", gin.H{
		"catalogSize": h.store.Len(),
	})
}

// CORSMiddleware adds CORS headers to allow all origins
func CORSMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, X-Request-ID, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE")
		c.Writer.Header().Set("Access-Control-Expose-Headers", "Content-Length")
		c.Writer.Header().Set("Access-Control-Max-Age", "86400")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}
