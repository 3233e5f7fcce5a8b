package handler

import (
	"net/http"

	"anoa.com/redsocial/internal/service"
	"anoa.com/redsocial/pkg/response"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type UserHandler struct {
	service service.UserService
	search  service.UserSearchService
}

func NewUserHandler(service service.UserService, search service.UserSearchService) *UserHandler {
	return &UserHandler{
		service: service,
		search:  search,
	}
}

func (h *UserHandler) GetUser(c *gin.Context) {
	targetID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid user id"})
		return
	}

	callerID, err := response.GetUserID(c)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	profile, err := h.service.GetWithRelations(c.Request.Context(), callerID, targetID)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, profile)
}

func (h *UserHandler) GetUsers(c *gin.Context) {
	users, err := h.service.List(c.Request.Context(), parsePage(c))
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, users)
}

func (h *UserHandler) SearchUsers(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "query parameter q is required"})
		return
	}

	result, err := h.search.Search(c.Request.Context(), query, pageFromQuery(c))
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetCounters reports follow/publication counts; the subject defaults to
// the caller, an :id param overrides it.
func (h *UserHandler) GetCounters(c *gin.Context) {
	subjectID, err := response.GetUserID(c)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	if idStr := c.Param("id"); idStr != "" {
		subjectID, err = uuid.Parse(idStr)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid user id"})
			return
		}
	}

	counters, err := h.service.Counters(c.Request.Context(), subjectID)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, counters)
}
