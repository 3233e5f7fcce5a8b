package handler

import (
	"net/http"

	"anoa.com/redsocial/internal/dto"
	"anoa.com/redsocial/internal/service"
	"anoa.com/redsocial/pkg/response"
	"anoa.com/redsocial/pkg/validator"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type FollowHandler struct {
	service service.FollowService
}

func NewFollowHandler(service service.FollowService) *FollowHandler {
	return &FollowHandler{service: service}
}

func (h *FollowHandler) SaveFollow(c *gin.Context) {
	var req dto.CreateFollowRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": validator.FormatValidationError(err)})
		return
	}

	callerID, err := response.GetUserID(c)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	followedID, err := uuid.Parse(req.Followed)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid user id"})
		return
	}

	follow, err := h.service.Create(c.Request.Context(), callerID, followedID)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"follow": follow})
}

func (h *FollowHandler) DeleteFollow(c *gin.Context) {
	followedID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid user id"})
		return
	}

	callerID, err := response.GetUserID(c)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	if err := h.service.Delete(c.Request.Context(), callerID, followedID); err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "follow deleted successfully"})
}

// GetFollowing lists who the subject follows. The subject defaults to the
// caller; an :id param overrides it.
func (h *FollowHandler) GetFollowing(c *gin.Context) {
	callerID, err := response.GetUserID(c)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	subjectID, err := subjectFromParam(c, callerID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid user id"})
		return
	}

	follows, err := h.service.ListFollowing(c.Request.Context(), callerID, subjectID, parsePage(c))
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, follows)
}

// GetFollowed lists who follows the subject, same defaulting as GetFollowing.
func (h *FollowHandler) GetFollowed(c *gin.Context) {
	callerID, err := response.GetUserID(c)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	subjectID, err := subjectFromParam(c, callerID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid user id"})
		return
	}

	follows, err := h.service.ListFollowers(c.Request.Context(), callerID, subjectID, parsePage(c))
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, follows)
}

// GetMyFollows lists the caller's edges without pagination. Any value in
// the :followed param switches to the edges pointing at the caller.
func (h *FollowHandler) GetMyFollows(c *gin.Context) {
	callerID, err := response.GetUserID(c)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	followedSide := c.Param("followed") != ""

	follows, err := h.service.MyFollows(c.Request.Context(), callerID, followedSide)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"follows": follows})
}

func subjectFromParam(c *gin.Context, fallback uuid.UUID) (uuid.UUID, error) {
	idStr := c.Param("id")
	if idStr == "" {
		return fallback, nil
	}
	return uuid.Parse(idStr)
}
