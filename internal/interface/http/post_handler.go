package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/oksasatya/travel-booking/internal/application"
	"github.com/oksasatya/travel-booking/internal/domain/repository"
	"github.com/oksasatya/travel-booking/internal/interface/middleware"
	"github.com/oksasatya/travel-booking/pkg/response"
)

// maxCoverSize caps cover uploads at 5 MiB.
const maxCoverSize = 5 << 20

type PostHandler struct {
	Svc    *application.PostService
	Errors Errors
}

func NewPostHandler(svc *application.PostService, errs Errors) *PostHandler {
	return &PostHandler{Svc: svc, Errors: errs}
}

type createPostRequest struct {
	Title    string `json:"title"`
	Content  string `json:"content"`
	Category string `json:"category"`
	Status   string `json:"status" binding:"omitempty,poststatus"`
}

type updatePostRequest struct {
	Title    *string `json:"title"`
	Content  *string `json:"content"`
	Category *string `json:"category"`
	Status   *string `json:"status" binding:"omitempty,poststatus"`
}

// List GET /api/posts[?userId=]
func (h *PostHandler) List(c *gin.Context) {
	var f repository.PostFilter
	if v := c.Query("userId"); v != "" {
		id, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			response.Error(c, http.StatusBadRequest, "Invalid user ID", nil)
			return
		}
		f.UserID = id
	}
	out, err := h.Svc.List(c.Request.Context(), f)
	if err != nil {
		h.Errors.Write(c, err)
		return
	}
	response.Success(c, http.StatusOK, out)
}

// Search GET /api/posts/search?q=
func (h *PostHandler) Search(c *gin.Context) {
	out, err := h.Svc.Search(c.Request.Context(), c.Query("q"))
	if err != nil {
		h.Errors.Write(c, err)
		return
	}
	response.Success(c, http.StatusOK, out)
}

func (h *PostHandler) Create(c *gin.Context) {
	var req createPostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Errors.Bind(c, err)
		return
	}
	p, err := h.Svc.Create(c.Request.Context(), middleware.CallerFrom(c), application.CreatePostInput{
		Title: req.Title, Content: req.Content, Category: req.Category, Status: req.Status,
	})
	if err != nil {
		h.Errors.Write(c, err)
		return
	}
	response.Success(c, http.StatusCreated, p)
}

// Update PATCH /api/posts/:id
func (h *PostHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "id", "Invalid post ID")
	if !ok {
		return
	}
	var req updatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Errors.Bind(c, err)
		return
	}
	p, err := h.Svc.Update(c.Request.Context(), middleware.CallerFrom(c), id, application.UpdatePostInput{
		Title: req.Title, Content: req.Content, Category: req.Category, Status: req.Status,
	})
	if err != nil {
		h.Errors.Write(c, err)
		return
	}
	response.Success(c, http.StatusOK, p)
}

func (h *PostHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "id", "Invalid post ID")
	if !ok {
		return
	}
	if err := h.Svc.Delete(c.Request.Context(), middleware.CallerFrom(c), id); err != nil {
		h.Errors.Write(c, err)
		return
	}
	response.Message(c, http.StatusOK, "Post deleted successfully")
}

// UploadCover POST /api/posts/:id/cover, multipart field "cover".
func (h *PostHandler) UploadCover(c *gin.Context) {
	id, ok := pathID(c, "id", "Invalid post ID")
	if !ok {
		return
	}
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxCoverSize+1<<10)
	fh, err := c.FormFile("cover")
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Cover file is required", nil)
		return
	}
	if fh.Size > maxCoverSize {
		response.Error(c, http.StatusBadRequest, "Cover must be at most 5 MB", nil)
		return
	}
	f, err := fh.Open()
	if err != nil {
		h.Errors.Write(c, err)
		return
	}
	defer func() { _ = f.Close() }()

	p, err := h.Svc.UploadCover(c.Request.Context(), middleware.CallerFrom(c), id, fh.Filename, fh.Header.Get("Content-Type"), f)
	if err != nil {
		h.Errors.Write(c, err)
		return
	}
	response.Success(c, http.StatusOK, p)
}
