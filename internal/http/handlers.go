package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/quantumauth-io/payment-info/internal/httpui"
	"github.com/quantumauth-io/payment-info/internal/view"
)

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{JSONKeyOK: true})
}

func (s *Server) handleMethods(c *gin.Context) {
	methods := s.views.Methods()
	c.JSON(http.StatusOK, methodsResponse{Methods: methods, Count: len(methods)})
}

// handlePage opens a fresh view per page load so copy state is never shared
// between tabs.
func (s *Server) handlePage(c *gin.Context) {
	v := s.views.Open()
	s.metrics.PageRendered()

	page := httpui.NewPage(s.title, v.ID(), v.Methods(), v.Copied())
	c.Header("Cache-Control", "no-store")
	c.HTML(http.StatusOK, httpui.PageTemplate, page)
}

func (s *Server) handleOpenView(c *gin.Context) {
	v := s.views.Open()
	c.JSON(http.StatusCreated, viewResponse{ID: v.ID(), CopiedIndex: v.Copied()})
}

func (s *Server) handleGetView(c *gin.Context) {
	v, ok := s.lookupView(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, viewResponse{ID: v.ID(), CopiedIndex: v.Copied()})
}

func (s *Server) handleCloseView(c *gin.Context) {
	if err := s.views.Close(c.Param("id")); err != nil {
		if errors.Is(err, view.ErrViewNotFound) {
			abortError(c, http.StatusNotFound, HTTPErrorViewNotFoundText)
			return
		}
		abortError(c, http.StatusInternalServerError, err.Error())
		return
	}
	c.Status(http.StatusNoContent)
}

// handleCopy runs the copy action for one card. A clipboard failure is not an
// HTTP error: the response simply carries the unchanged copy state.
// A page whose view was swept or closed (bfcache restore) gets a fresh view;
// the response carries its id.
func (s *Server) handleCopy(c *gin.Context) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil || index < 0 {
		abortError(c, http.StatusBadRequest, HTTPErrorBadIndexText)
		return
	}

	id := c.Param("id")
	v, err := s.views.Get(id)
	if err != nil {
		v = s.views.Open()
		s.logger.Info("reopened view for copy", "stale_id", id, "id", v.ID())
	}

	m, err := v.CopyAt(c.Request.Context(), index)
	if err != nil {
		if errors.Is(err, view.ErrIndexOutOfRange) {
			abortError(c, http.StatusNotFound, HTTPErrorMethodNotFound)
			return
		}
		abortError(c, http.StatusInternalServerError, err.Error())
		return
	}

	res := copyResponse{ID: v.ID(), CopiedIndex: v.Copied(), Method: m}
	if res.CopiedIndex != nil && *res.CopiedIndex == index {
		res.ExpiresInMs = s.views.Highlight().Milliseconds()
	}
	c.JSON(http.StatusOK, res)
}

func (s *Server) lookupView(c *gin.Context) (*view.View, bool) {
	v, err := s.views.Get(c.Param("id"))
	if err != nil {
		abortError(c, http.StatusNotFound, HTTPErrorViewNotFoundText)
		return nil, false
	}
	return v, true
}
