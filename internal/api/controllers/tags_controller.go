package controllers

import (
	"github.com/gin-gonic/gin"

	"datewise/internal/services"
	"datewise/pkg/utils"
)

type TagController struct {
	tagService services.TagServiceInterface
}

func NewTagController(tagService services.TagServiceInterface) *TagController {
	return &TagController{
		tagService: tagService,
	}
}

func (tc *TagController) ListAllTagsHandler(c *gin.Context) {
	utils.RespondSuccess(c, tc.tagService.ListTags(), "Fetched tags successfully")
}
