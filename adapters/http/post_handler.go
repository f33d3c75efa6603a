package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	postUC "github.com/savconnect/savconnect-api/internal/application/usecase/post"
)

type PostHandler struct {
	createPostUseCase    *postUC.CreatePostUseCase
	listPostsUseCase     *postUC.ListPostsUseCase
	getPostUseCase       *postUC.GetPostUseCase
	deletePostUseCase    *postUC.DeletePostUseCase
	likePostUseCase      *postUC.LikePostUseCase
	unlikePostUseCase    *postUC.UnlikePostUseCase
	addCommentUseCase    *postUC.AddCommentUseCase
	removeCommentUseCase *postUC.RemoveCommentUseCase
}

func NewPostHandler(
	createUC *postUC.CreatePostUseCase,
	listUC *postUC.ListPostsUseCase,
	getUC *postUC.GetPostUseCase,
	deleteUC *postUC.DeletePostUseCase,
	likeUC *postUC.LikePostUseCase,
	unlikeUC *postUC.UnlikePostUseCase,
	addCommentUC *postUC.AddCommentUseCase,
	removeCommentUC *postUC.RemoveCommentUseCase,
) *PostHandler {
	return &PostHandler{
		createPostUseCase:    createUC,
		listPostsUseCase:     listUC,
		getPostUseCase:       getUC,
		deletePostUseCase:    deleteUC,
		likePostUseCase:      likeUC,
		unlikePostUseCase:    unlikeUC,
		addCommentUseCase:    addCommentUC,
		removeCommentUseCase: removeCommentUC,
	}
}

func (h *PostHandler) CreatePost(c *gin.Context) {
	userID, ok := GetUserIDFromGinContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user information not found"})
		return
	}

	var req CreatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	output, err := h.createPostUseCase.Execute(c.Request.Context(), postUC.CreatePostInput{
		AuthorID: userID,
		Text:     req.Text,
	})
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, ToPostDTO(output.Post))
}

func (h *PostHandler) ListPosts(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	output, err := h.listPostsUseCase.Execute(c.Request.Context(), postUC.ListPostsInput{
		Page:  page,
		Limit: limit,
	})
	if err != nil {
		c.Error(err)
		return
	}

	dtos := make([]PostDTO, len(output.Posts))
	for i, p := range output.Posts {
		dtos[i] = ToPostDTO(p)
	}
	c.JSON(http.StatusOK, gin.H{"posts": dtos, "page": output.Page, "limit": output.Limit})
}

func (h *PostHandler) GetPost(c *gin.Context) {
	postID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "'id' is not a valid UUID"})
		return
	}

	output, err := h.getPostUseCase.Execute(c.Request.Context(), postUC.GetPostInput{PostID: postID})
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, ToPostDTO(output.Post))
}

func (h *PostHandler) DeletePost(c *gin.Context) {
	userID, ok := GetUserIDFromGinContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user information not found"})
		return
	}

	postID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "'id' is not a valid UUID"})
		return
	}

	if err := h.deletePostUseCase.Execute(c.Request.Context(), postUC.DeletePostInput{
		PostID:       postID,
		ActingUserID: userID,
	}); err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "post removed"})
}

func (h *PostHandler) LikePost(c *gin.Context) {
	userID, ok := GetUserIDFromGinContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user information not found"})
		return
	}

	postID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "'id' is not a valid UUID"})
		return
	}

	output, err := h.likePostUseCase.Execute(c.Request.Context(), postUC.LikePostInput{
		PostID:       postID,
		ActingUserID: userID,
	})
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, ToPostDTO(output.Post))
}

func (h *PostHandler) UnlikePost(c *gin.Context) {
	userID, ok := GetUserIDFromGinContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user information not found"})
		return
	}

	postID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "'id' is not a valid UUID"})
		return
	}

	output, err := h.unlikePostUseCase.Execute(c.Request.Context(), postUC.UnlikePostInput{
		PostID:       postID,
		ActingUserID: userID,
	})
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, ToPostDTO(output.Post))
}

func (h *PostHandler) AddComment(c *gin.Context) {
	userID, ok := GetUserIDFromGinContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user information not found"})
		return
	}

	postID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "'id' is not a valid UUID"})
		return
	}

	var req AddCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	output, err := h.addCommentUseCase.Execute(c.Request.Context(), postUC.AddCommentInput{
		PostID:       postID,
		ActingUserID: userID,
		Text:         req.Text,
	})
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, ToPostDTO(output.Post))
}

func (h *PostHandler) RemoveComment(c *gin.Context) {
	userID, ok := GetUserIDFromGinContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user information not found"})
		return
	}

	postID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "'id' is not a valid UUID"})
		return
	}

	commentID, err := uuid.Parse(c.Param("comment_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "'comment_id' is not a valid UUID"})
		return
	}

	output, err := h.removeCommentUseCase.Execute(c.Request.Context(), postUC.RemoveCommentInput{
		PostID:       postID,
		CommentID:    commentID,
		ActingUserID: userID,
	})
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, ToPostDTO(output.Post))
}
