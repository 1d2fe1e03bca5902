package loans

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

	r.GET("/emprestimo", h.List)
	r.POST("/novo/emprestimo", h.Create)
	r.DELETE("/delete/emprestimo/:idEmprestimo", h.Delete)
	r.PUT("/atualizar/emprestimo/:idEmprestimo", h.Update)
}

// List godoc
// @Summary  List loans with student and book details
// @Tags     emprestimo
// @Produce  json
// @Success  200 {array}  LoanResponse
// @Failure  400 {object} httpx.MessageBody
// @Router   /emprestimo [get]
func (h *Handler) List(c *gin.Context) {
	res, err := h.svc.List(c.Request.Context())
	if err != nil {
		httpx.Fail(c, messages.Loan, messages.OpList, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// Create godoc
// @Summary  Register a loan
// @Tags     emprestimo
// @Accept   json
// @Produce  json
// @Param    body body     LoanRequest true "loan"
// @Success  200  {object} httpx.MessageBody
// @Failure  400  {object} httpx.MessageBody
// @Router   /novo/emprestimo [post]
func (h *Handler) Create(c *gin.Context) {
	var req LoanRequest
	// body -> request DTO (binding tags run here)
	if err := c.ShouldBindJSON(&req); err != nil {
		httpx.Fail(c, messages.Loan, messages.OpCreate, apperr.Wrap(apperr.CodeInvalidArgument, validation.Describe(err), err))
		return
	}
	// persist; the database assigns the id
	id, err := h.svc.Create(c.Request.Context(), req)
	if err != nil {
		httpx.Fail(c, messages.Loan, messages.OpCreate, err)
		return
	}
	l := logger.FromContext(c)
	l.Info().Int64("id_emprestimo", id).Msg("emprestimo created")
	httpx.OK(c, messages.Loan, messages.OpCreate)
}

// Delete godoc
// @Summary  Remove a loan
// @Tags     emprestimo
// @Produce  json
// @Param    idEmprestimo path     int true "loan id"
// @Success  200     {object} httpx.MessageBody
// @Failure  400     {object} httpx.MessageBody
// @Router   /delete/emprestimo/{idEmprestimo} [delete]
func (h *Handler) Delete(c *gin.Context) {
	id, err := httpx.ParseID(c, "idEmprestimo")
	if err == nil {
		err = h.svc.Delete(c.Request.Context(), id)
	}
	if err != nil {
		httpx.Fail(c, messages.Loan, messages.OpDelete, err)
		return
	}
	httpx.OK(c, messages.Loan, messages.OpDelete)
}

// Update godoc
// @Summary  Update a loan
// @Tags     emprestimo
// @Accept   json
// @Produce  json
// @Param    idEmprestimo path     int         true "loan id"
// @Param    body    body     LoanRequest true "loan"
// @Success  200     {object} httpx.MessageBody
// @Failure  400     {object} httpx.MessageBody
// @Router   /atualizar/emprestimo/{idEmprestimo} [put]
func (h *Handler) Update(c *gin.Context) {
	id, err := httpx.ParseID(c, "idEmprestimo")
	if err != nil {
		httpx.Fail(c, messages.Loan, messages.OpUpdate, err)
		return
	}
	var req LoanRequest
	// body -> request DTO (binding tags run here)
	if err := c.ShouldBindJSON(&req); err != nil {
		httpx.Fail(c, messages.Loan, messages.OpUpdate, apperr.Wrap(apperr.CodeInvalidArgument, validation.Describe(err), err))
		return
	}
	if err := h.svc.Update(c.Request.Context(), id, req); err != nil {
		httpx.Fail(c, messages.Loan, messages.OpUpdate, err)
		return
	}
	httpx.OK(c, messages.Loan, messages.OpUpdate)
}
