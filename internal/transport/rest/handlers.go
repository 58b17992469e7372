package rest

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sandevgo/bodai/internal/core"
	"github.com/sandevgo/bodai/pkg/log"
)

type messageRequest struct {
	Message string `json:"message"`
}

type errorResponse struct {
	Detail string `json:"detail"`
}

type profileEntry struct {
	ID       int64         `json:"id"`
	Category core.Category `json:"category"`
	Info     string        `json:"info"`
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "OK", "version": core.BodaiVersion})
}

func (s *Server) handleChat(c *gin.Context) {
	var req messageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Detail: "invalid request body"})
		return
	}

	answer, err := s.bot.Reply(c.Request.Context(), req.Message)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"reply": answer})
}

func (s *Server) handleGetContext(c *gin.Context) {
	entries := s.bot.Context()
	if entries == nil {
		entries = []core.ContextEntry{}
	}
	c.JSON(http.StatusOK, gin.H{"context": entries})
}

func (s *Server) handleClearContext(c *gin.Context) {
	if err := s.bot.ClearContext(c.Request.Context()); err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "cleared"})
}

func (s *Server) handleListProfile(c *gin.Context) {
	facts, err := s.profile.ListFacts(c.Request.Context())
	if err != nil {
		s.fail(c, err)
		return
	}

	out := make([]profileEntry, len(facts))
	for i, f := range facts {
		out[i] = profileEntry{ID: f.ID, Category: f.Category, Info: f.Info}
	}
	c.JSON(http.StatusOK, gin.H{"profile": out})
}

func (s *Server) handleUpdateProfile(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	req, ok := bindMessage(c)
	if !ok {
		return
	}

	if err := s.profile.UpdateFact(c.Request.Context(), id, req.Message); err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "updated", "id": id, "new_info": req.Message})
}

func (s *Server) handleDeleteProfile(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := s.profile.DeleteFact(c.Request.Context(), id); err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted", "id": id})
}

func (s *Server) handleClearProfile(c *gin.Context) {
	if err := s.profile.ClearFacts(c.Request.Context()); err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "cleared"})
}

func (s *Server) handleListMemories(c *gin.Context) {
	memories, err := s.memories.ListMemories(c.Request.Context())
	if err != nil {
		s.fail(c, err)
		return
	}
	if memories == nil {
		memories = []core.Memory{}
	}
	c.JSON(http.StatusOK, gin.H{"memories": memories})
}

func (s *Server) handleUpdateMemory(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	req, ok := bindMessage(c)
	if !ok {
		return
	}

	if err := s.memories.UpdateMemory(c.Request.Context(), id, req.Message); err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "updated", "id": id, "new_text": req.Message})
}

func (s *Server) handleDeleteMemory(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := s.memories.DeleteMemory(c.Request.Context(), id); err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted", "id": id})
}

func (s *Server) fail(c *gin.Context, err error) {
	switch {
	case errors.Is(err, core.ErrEmptyMessage):
		c.JSON(http.StatusBadRequest, errorResponse{Detail: "message is empty"})
	case errors.Is(err, core.ErrNotFound):
		c.JSON(http.StatusNotFound, errorResponse{Detail: "not found"})
	default:
		log.FromCtx(c.Request.Context()).Error().Err(err).Str("path", c.FullPath()).Msg("request failed")
		c.JSON(http.StatusInternalServerError, errorResponse{Detail: "internal error"})
	}
}

func pathID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Detail: "invalid id"})
		return 0, false
	}
	return id, true
}

func bindMessage(c *gin.Context) (messageRequest, bool) {
	var req messageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Detail: "invalid request body"})
		return req, false
	}
	return req, true
}
