package books

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"biblioteca-backend/internal/platform/apperr"
	"biblioteca-backend/internal/platform/httpx"
	"biblioteca-backend/internal/platform/logger"
	"biblioteca-backend/internal/platform/messages"
	"biblioteca-backend/internal/platform/validation"
)

type Handler struct{ svc *Service }

func RegisterRoutes(r gin.IRoutes, svc *Service) {
	h := &Handler{svc: svc}

	r.GET("/livro", h.List)
	r.POST("/novo/livro", h.Create)
	r.DELETE("/delete/livro/:idLivro", h.Delete)
	r.PUT("/atualizar/livro/:idLivro", h.Update)
}

// List godoc
// @Summary  List books
// @Tags     livro
// @Produce  json
// @Success  200 {array}  BookResponse
// @Failure  400 {object} httpx.MessageBody
// @Router   /livro [get]
func (h *Handler) List(c *gin.Context) {
	res, err := h.svc.List(c.Request.Context())
	if err != nil {
		httpx.Fail(c, messages.Book, messages.OpList, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// Create godoc
// @Summary  Register a book
// @Tags     livro
// @Accept   json
// @Produce  json
// @Param    body body     BookRequest true "book"
// @Success  200  {object} httpx.MessageBody
// @Failure  400  {object} httpx.MessageBody
// @Router   /novo/livro [post]
func (h *Handler) Create(c *gin.Context) {
	var req BookRequest
	// body -> request DTO (binding tags run here)
	if err := c.ShouldBindJSON(&req); err != nil {
		httpx.Fail(c, messages.Book, messages.OpCreate, apperr.Wrap(apperr.CodeInvalidArgument, validation.Describe(err), err))
		return
	}
	// persist; the database assigns the id
	id, err := h.svc.Create(c.Request.Context(), req)
	if err != nil {
		httpx.Fail(c, messages.Book, messages.OpCreate, err)
		return
	}
	l := logger.FromContext(c)
	l.Info().Int64("id_livro", id).Msg("livro created")
	httpx.OK(c, messages.Book, messages.OpCreate)
}

// Delete godoc
// @Summary  Remove a book
// @Tags     livro
// @Produce  json
// @Param    idLivro path     int true "book id"
// @Success  200     {object} httpx.MessageBody
// @Failure  400     {object} httpx.MessageBody
// @Router   /delete/livro/{idLivro} [delete]
func (h *Handler) Delete(c *gin.Context) {
	id, err := httpx.ParseID(c, "idLivro")
	if err == nil {
		err = h.svc.Delete(c.Request.Context(), id)
	}
	if err != nil {
		httpx.Fail(c, messages.Book, messages.OpDelete, err)
		return
	}
	httpx.OK(c, messages.Book, messages.OpDelete)
}

// Update godoc
// @Summary  Update a book
// @Tags     livro
// @Accept   json
// @Produce  json
// @Param    idLivro path     int         true "book id"
// @Param    body    body     BookRequest true "book"
// @Success  200     {object} httpx.MessageBody
// @Failure  400     {object} httpx.MessageBody
// @Router   /atualizar/livro/{idLivro} [put]
func (h *Handler) Update(c *gin.Context) {
	id, err := httpx.ParseID(c, "idLivro")
	if err != nil {
		httpx.Fail(c, messages.Book, messages.OpUpdate, err)
		return
	}
	var req BookRequest
	// body -> request DTO (binding tags run here)
	if err := c.ShouldBindJSON(&req); err != nil {
		httpx.Fail(c, messages.Book, messages.OpUpdate, apperr.Wrap(apperr.CodeInvalidArgument, validation.Describe(err), err))
		return
	}
	if err := h.svc.Update(c.Request.Context(), id, req); err != nil {
		httpx.Fail(c, messages.Book, messages.OpUpdate, err)
		return
	}
	httpx.OK(c, messages.Book, messages.OpUpdate)
}
