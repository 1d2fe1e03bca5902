package students

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

	r.GET("/aluno", h.List)
	r.POST("/novo/aluno", h.Create)
	r.DELETE("/delete/aluno/:idAluno", h.Delete)
	r.PUT("/atualizar/aluno/:idAluno", h.Update)
}

// List godoc
// @Summary  List students
// @Tags     aluno
// @Produce  json
// @Success  200 {array}  StudentResponse
// @Failure  400 {object} httpx.MessageBody
// @Router   /aluno [get]
func (h *Handler) List(c *gin.Context) {
	res, err := h.svc.List(c.Request.Context())
	if err != nil {
		httpx.Fail(c, messages.Student, messages.OpList, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// Create godoc
// @Summary  Register a student
// @Tags     aluno
// @Accept   json
// @Produce  json
// @Param    body body     StudentRequest true "student"
// @Success  200  {object} httpx.MessageBody
// @Failure  400  {object} httpx.MessageBody
// @Router   /novo/aluno [post]
func (h *Handler) Create(c *gin.Context) {
	var req StudentRequest
	// body -> request DTO (binding tags run here)
	if err := c.ShouldBindJSON(&req); err != nil {
		httpx.Fail(c, messages.Student, messages.OpCreate, apperr.Wrap(apperr.CodeInvalidArgument, validation.Describe(err), err))
		return
	}
	// persist; the database assigns the id
	id, err := h.svc.Create(c.Request.Context(), req)
	if err != nil {
		httpx.Fail(c, messages.Student, messages.OpCreate, err)
		return
	}
	l := logger.FromContext(c)
	l.Info().Int64("id_aluno", id).Msg("aluno created")
	httpx.OK(c, messages.Student, messages.OpCreate)
}

// Delete godoc
// @Summary  Remove a student
// @Tags     aluno
// @Produce  json
// @Param    idAluno path     int true "student id"
// @Success  200     {object} httpx.MessageBody
// @Failure  400     {object} httpx.MessageBody
// @Router   /delete/aluno/{idAluno} [delete]
func (h *Handler) Delete(c *gin.Context) {
	id, err := httpx.ParseID(c, "idAluno")
	if err == nil {
		err = h.svc.Delete(c.Request.Context(), id)
	}
	if err != nil {
		httpx.Fail(c, messages.Student, messages.OpDelete, err)
		return
	}
	httpx.OK(c, messages.Student, messages.OpDelete)
}

// Update godoc
// @Summary  Update a student
// @Tags     aluno
// @Accept   json
// @Produce  json
// @Param    idAluno path     int            true "student id"
// @Param    body    body     StudentRequest true "student"
// @Success  200     {object} httpx.MessageBody
// @Failure  400     {object} httpx.MessageBody
// @Router   /atualizar/aluno/{idAluno} [put]
func (h *Handler) Update(c *gin.Context) {
	id, err := httpx.ParseID(c, "idAluno")
	if err != nil {
		httpx.Fail(c, messages.Student, messages.OpUpdate, err)
		return
	}
	var req StudentRequest
	// body -> request DTO (binding tags run here)
	if err := c.ShouldBindJSON(&req); err != nil {
		httpx.Fail(c, messages.Student, messages.OpUpdate, apperr.Wrap(apperr.CodeInvalidArgument, validation.Describe(err), err))
		return
	}
	if err := h.svc.Update(c.Request.Context(), id, req); err != nil {
		httpx.Fail(c, messages.Student, messages.OpUpdate, err)
		return
	}
	httpx.OK(c, messages.Student, messages.OpUpdate)
}
