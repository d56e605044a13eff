package http

import (
	"errors"
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/iamasit07/connectfour/internal/domain"
	"github.com/iamasit07/connectfour/internal/render"
	"github.com/iamasit07/connectfour/internal/service/bot"
)

// EngineHandler answers stateless questions about a posted board.
type EngineHandler struct {
	Settings bot.Settings
	MaxDepth int
}

func NewEngineHandler(settings bot.Settings, maxDepth int) *EngineHandler {
	return &EngineHandler{Settings: settings, MaxDepth: maxDepth}
}

type moveRequest struct {
	Board      [][]int `json:"board" binding:"required"`
	Player     int     `json:"player" binding:"required"`
	Depth      *int    `json:"depth"`
	Difficulty string  `json:"difficulty"`
}

type moveResponse struct {
	Column int     `json:"column"`
	Row    int     `json:"row"`
	Board  [][]int `json:"board"`
	Winner int     `json:"winner"`
	Status string  `json:"status"`
}

type analyzeRequest struct {
	Board  [][]int `json:"board" binding:"required"`
	Player int     `json:"player" binding:"required"`
}

type analyzeResponse struct {
	Score      int   `json:"score"`
	Winner     int   `json:"winner"`
	Full       bool  `json:"full"`
	LegalMoves []int `json:"legalMoves"`
	NextPlayer int   `json:"nextPlayer"`
}

type renderRequest struct {
	Board [][]int `json:"board" binding:"required"`
}

// Move lets the computer play one move for the given player on the posted board.
func (h *EngineHandler) Move(c *gin.Context) {
	var req moveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	board, player, err := parsePosition(req.Board, req.Player)
	if err != nil {
		writeError(c, err)
		return
	}

	if _, decided := board.Winner(); decided {
		writeError(c, domain.ErrGameOver)
		return
	}

	settings := h.Settings
	if req.Difficulty != "" {
		d, err := bot.ParseDifficulty(req.Difficulty)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		settings.Difficulty = d
		settings.Depth = nil
	}
	if req.Depth != nil {
		if *req.Depth < 0 || *req.Depth > h.MaxDepth {
			c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("depth must be between 0 and %d", h.MaxDepth)})
			return
		}
		settings.Depth = req.Depth
	}

	computer, err := bot.New(player, settings)
	if err != nil {
		writeError(c, err)
		return
	}

	column, err := computer.BestMove(board)
	if err != nil {
		writeError(c, err)
		return
	}

	row := domain.Rows - 1 - board.Height(column)
	board.Drop(column, player)

	resp := moveResponse{
		Column: column,
		Row:    row,
		Board:  board.Grid(),
		Status: string(domain.StatusActive),
	}
	if winner, won := board.Winner(); won {
		resp.Winner = int(winner)
		resp.Status = string(domain.StatusWon)
	} else if board.IsFull() {
		resp.Status = string(domain.StatusDraw)
	}

	c.JSON(http.StatusOK, resp)
}

// Analyze reports the static evaluation and state of the posted board.
func (h *EngineHandler) Analyze(c *gin.Context) {
	var req analyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	board, player, err := parsePosition(req.Board, req.Player)
	if err != nil {
		writeError(c, err)
		return
	}

	resp := analyzeResponse{
		Score:      bot.NewEngine(player, 0).Evaluate(board),
		Full:       board.IsFull(),
		LegalMoves: board.LegalMoves(),
	}
	if winner, won := board.Winner(); won {
		resp.Winner = int(winner)
	} else if !resp.Full {
		resp.NextPlayer = int(nextPlayer(board))
	}

	c.JSON(http.StatusOK, resp)
}

// Render draws the posted board as PNG (default) or plain text.
func (h *EngineHandler) Render(c *gin.Context) {
	var req renderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	board, err := domain.FromGrid(req.Board)
	if err != nil {
		writeError(c, err)
		return
	}

	switch format := c.DefaultQuery("format", "png"); format {
	case "png":
		data, err := render.PNGBytes(board)
		if err != nil {
			log.Printf("[SERVER] Failed to render board: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to render board"})
			return
		}
		c.Data(http.StatusOK, "image/png", data)
	case "text":
		c.String(http.StatusOK, render.Text(board))
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("unknown format %q", format)})
	}
}

func parsePosition(grid [][]int, p int) (domain.Board, domain.Cell, error) {
	board, err := domain.FromGrid(grid)
	if err != nil {
		return domain.Board{}, domain.Empty, err
	}
	player, err := domain.ParsePlayer(p)
	if err != nil {
		return domain.Board{}, domain.Empty, err
	}
	return board, player, nil
}

// nextPlayer infers whose turn it is from the disk counts, PlayerOne moving first.
func nextPlayer(board domain.Board) domain.Cell {
	if board.Count(domain.PlayerOne) > board.Count(domain.PlayerTwo) {
		return domain.PlayerTwo
	}
	return domain.PlayerOne
}

func writeError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, domain.ErrInvalidBoard), errors.Is(err, domain.ErrInvalidPlayer):
		status = http.StatusBadRequest
	case errors.Is(err, domain.ErrGameOver), errors.Is(err, domain.ErrNoLegalMoves):
		status = http.StatusConflict
	}
	if status == http.StatusInternalServerError {
		log.Printf("[SERVER] Unexpected error: %v", err)
	}
	c.JSON(status, gin.H{"error": err.Error()})
}
