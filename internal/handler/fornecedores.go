package handler

import (
	"net/http"

	"acaimanager/internal/apierror"
	"acaimanager/internal/dto"
	"acaimanager/internal/service"

	"github.com/gin-gonic/gin"
)

type FornecedoresHandler struct{ svc service.FornecedorService }

func NewFornecedoresHandler(svc service.FornecedorService) *FornecedoresHandler {
	return &FornecedoresHandler{svc: svc}
}

// Criar godoc
// @Summary      Criar fornecedor
// @Tags         fornecedores
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body body dto.SalvarFornecedorRequest true "Dados do fornecedor"
// @Success      201  {object} dto.FornecedorResponse
// @Failure      400  {object} apierror.APIError
// @Router       /v1/fornecedores [post]
func (h *FornecedoresHandler) Criar(c *gin.Context) {
	var req dto.SalvarFornecedorRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Criar(c.Request.Context(), userID(c), req)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// Atualizar godoc
// @Summary      Atualizar fornecedor
// @Tags         fornecedores
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id   path string true "UUID do fornecedor"
// @Param        body body dto.SalvarFornecedorRequest true "Dados do fornecedor"
// @Success      200  {object} dto.FornecedorResponse
// @Failure      400  {object} apierror.APIError
// @Router       /v1/fornecedores/{id} [put]
func (h *FornecedoresHandler) Atualizar(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req dto.SalvarFornecedorRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Atualizar(c.Request.Context(), userID(c), id, req)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Excluir godoc
// @Summary      Excluir fornecedor
// @Description  Recusa a exclusão enquanto itens de custo ainda referenciarem o fornecedor.
// @Tags         fornecedores
// @Security     BearerAuth
// @Param        id path string true "UUID do fornecedor"
// @Success      204
// @Failure      409 {object} apierror.APIError
// @Router       /v1/fornecedores/{id} [delete]
func (h *FornecedoresHandler) Excluir(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.svc.Excluir(c.Request.Context(), userID(c), id); err != nil {
		c.JSON(http.StatusConflict, apierror.New(err.Error()))
		return
	}
	c.Status(http.StatusNoContent)
}

// Listar godoc
// @Summary      Listar fornecedores
// @Tags         fornecedores
// @Produce      json
// @Security     BearerAuth
// @Success      200 {array} dto.FornecedorResponse
// @Router       /v1/fornecedores [get]
func (h *FornecedoresHandler) Listar(c *gin.Context) {
	resp, err := h.svc.Listar(c.Request.Context(), userID(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Erro ao listar fornecedores"))
		return
	}
	c.JSON(http.StatusOK, resp)
}
