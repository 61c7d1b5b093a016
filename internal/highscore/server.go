package highscore

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gin-gonic/gin"
)

const (
	// TopPath lists the best scores.
	TopPath = "/api/highscores/"

	// AddPath accepts a new score.
	AddPath = "/api/highscores/add/"

	// PreviewPath renders a maze picture.
	PreviewPath = "/api/mazes/:id/preview.png"

	topLimit = 10
	maxLimit = 100
)

// PreviewFunc writes a PNG picture of the named maze. It returns an error
// wrapping ErrNotFound for unknown mazes.
type PreviewFunc func(w io.Writer, mazeID string) error

// ErrNotFound is returned by a PreviewFunc for an unknown maze.
var ErrNotFound = errors.New("highscore: not found")

type topItem struct {
	Player string    `json:"player"`
	Score  int       `json:"score"`
	Date   time.Time `json:"date"`
}

type topResponse struct {
	Highscores []topItem `json:"highscores"`
}

type addRequest struct {
	Player string `json:"player"`
	Score  *int   `json:"score"`
}

type addResponse struct {
	ID     int64  `json:"id"`
	Player string `json:"player"`
	Score  int    `json:"score"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// Server serves the high-score JSON API.
type Server struct {
	svc     Service
	logger  *log.Logger
	preview PreviewFunc
}

// NewServer creates an API server. preview may be nil to disable maze
// pictures.
func NewServer(svc Service, logger *log.Logger, preview PreviewFunc) *Server {
	return &Server{svc: svc, logger: logger, preview: preview}
}

// Handler builds the gin engine with all routes.
func (s *Server) Handler() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), s.logRequests())

	r.GET(TopPath, s.handleTop)
	r.Any(AddPath, s.handleAdd)
	if s.preview != nil {
		r.GET(PreviewPath, s.handlePreview)
	}

	return r
}

// ListenAndServe serves the API on addr until the listener fails.
func (s *Server) ListenAndServe(addr string) error {
	s.logger.Info("Starting high-score API", "addr", addr)
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	return srv.ListenAndServe()
}

func (s *Server) logRequests() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		s.logger.Info("request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration", time.Since(start),
		)
	}
}

func (s *Server) handleTop(c *gin.Context) {
	limit := topLimit
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid limit"})
			return
		}
		limit = min(n, maxLimit)
	}

	entries, err := s.svc.Top(c.Request.Context(), limit)
	if err != nil {
		s.logger.Error("Failed to list high scores", "err", err)
		c.JSON(http.StatusInternalServerError, errorResponse{Error: "internal error"})
		return
	}

	resp := topResponse{Highscores: make([]topItem, len(entries))}
	for i, e := range entries {
		resp.Highscores[i] = topItem{Player: e.Player, Score: e.Score, Date: e.Date}
	}
	c.JSON(http.StatusOK, resp)
}

func (s *Server) handleAdd(c *gin.Context) {
	if c.Request.Method != http.MethodPost {
		c.JSON(http.StatusBadRequest, errorResponse{Error: "POST required"})
		return
	}

	var req addRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Score == nil {
		c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
		return
	}

	entry, err := s.svc.Submit(c.Request.Context(), req.Player, *req.Score)
	if errors.Is(err, ErrInvalidScore) {
		c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
		return
	}
	if err != nil {
		s.logger.Error("Failed to save high score", "err", err)
		c.JSON(http.StatusInternalServerError, errorResponse{Error: "internal error"})
		return
	}

	c.JSON(http.StatusOK, addResponse{ID: entry.ID, Player: entry.Player, Score: entry.Score})
}

func (s *Server) handlePreview(c *gin.Context) {
	id := c.Param("id")

	var buf bytes.Buffer
	if err := s.preview(&buf, id); err != nil {
		if errors.Is(err, ErrNotFound) {
			c.JSON(http.StatusNotFound, errorResponse{Error: fmt.Sprintf("unknown maze %q", id)})
			return
		}
		s.logger.Error("Failed to render preview", "maze", id, "err", err)
		c.JSON(http.StatusInternalServerError, errorResponse{Error: "internal error"})
		return
	}

	c.Data(http.StatusOK, "image/png", buf.Bytes())
}
