package controllers

import (
	"context"
	"io"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"reviewhub/db"
	"reviewhub/services"
)

const (
	maxUploadBytes    = 10 << 20 // 10 MB
	minExtractedWords = 30
	uploadDir         = "uploads"
)

var (
	reviewService    *services.ReviewService
	extractorService *services.ExtractorService
)

// InitReviewController injects the services used by the review endpoints.
func InitReviewController(svc *services.ReviewService, extractor *services.ExtractorService) {
	reviewService = svc
	extractorService = extractor
}

type AnalyzeRequest struct {
	Abstract string `json:"abstract" binding:"required"`
}

// AnalyzeAbstract runs the full review pipeline on the submitted abstract
// and persists the result for the authenticated user.
func AnalyzeAbstract(c *gin.Context) {
	email := c.GetString("userEmail")
	if email == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req AnalyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload: " + err.Error()})
		return
	}

	abstract := strings.TrimSpace(req.Abstract)
	if abstract == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Abstract must not be empty"})
		return
	}

	result, err := reviewService.Analyze(c.Request.Context(), email, abstract)
	if err != nil {
		// The analysis itself always succeeds; only persistence can fail.
		// Surface the result anyway so the user still sees the review.
		log.Printf("Failed to save review for %s: %v", email, err)
	}

	c.JSON(http.StatusOK, gin.H{
		"review":    result,
		"wordCount": len(strings.Fields(abstract)),
		"saved":     err == nil,
	})
}

// UploadDocument accepts a PDF or text file, extracts the abstract text, and
// returns it for the submission form.
func UploadDocument(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing file upload"})
		return
	}

	name := strings.ToLower(fileHeader.Filename)
	if !strings.HasSuffix(name, ".pdf") && !strings.HasSuffix(name, ".txt") {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Please upload a PDF or text file only"})
		return
	}
	if fileHeader.Size == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "The file appears to be empty"})
		return
	}
	if fileHeader.Size > maxUploadBytes {
		c.JSON(http.StatusBadRequest, gin.H{"error": "File size too large. Please upload a file smaller than 10MB"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to read upload"})
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to read upload"})
		return
	}

	// Keep a copy of the original document alongside the review history.
	storedName := uuid.NewString() + filepath.Ext(name)
	if err := os.WriteFile(filepath.Join(uploadDir, storedName), data, 0644); err != nil {
		log.Printf("Failed to store upload %s: %v", fileHeader.Filename, err)
	}

	text, err := extractorService.ExtractText(c.Request.Context(), fileHeader.Filename, data)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	words := len(strings.Fields(text))
	if words < minExtractedWords {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error": "Very little text was extracted from the document. This might be a scanned PDF or the abstract might not be detectable. Please paste the abstract manually.",
			"words": words,
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"text":       text,
		"words":      words,
		"characters": len(text),
		"storedAs":   storedName,
	})
}

// GetReviewHistory lists the authenticated user's past reviews, newest
// first.
func GetReviewHistory(c *gin.Context) {
	email := c.GetString("userEmail")
	if email == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	dbCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	reviews, err := db.ListReviewsByEmail(dbCtx, email)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch reviews"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"reviews": reviews})
}

// DownloadReport streams the plain-text report of one of the caller's
// reviews.
func DownloadReport(c *gin.Context) {
	email := c.GetString("userEmail")
	if email == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid review id"})
		return
	}

	dbCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	r, err := db.GetReviewByID(dbCtx, id, email)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Review not found"})
		return
	}

	filename := "review_" + time.Unix(r.CreatedAt, 0).UTC().Format("20060102T150405") + ".txt"
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "text/plain; charset=utf-8", []byte(r.Report()))
}

// AIStatus reports whether narrative augmentation is available so the UI
// can label reviews accordingly.
func AIStatus(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"aiEnabled": reviewService.AIEnabled()})
}
