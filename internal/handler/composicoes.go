package handler

import (
	"net/http"

	"acaimanager/internal/apierror"
	"acaimanager/internal/dto"
	"acaimanager/internal/service"

	"github.com/gin-gonic/gin"
)

type ComposicoesHandler struct{ svc service.ComposicaoService }

func NewComposicoesHandler(svc service.ComposicaoService) *ComposicoesHandler {
	return &ComposicoesHandler{svc: svc}
}

// Criar godoc
// @Summary      Criar composição
// @Description  Cadastra uma ficha técnica com seus itens de custo; o custo unitário de cada item é valor pago ÷ rendimento.
// @Tags         composicoes
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body body dto.SalvarComposicaoRequest true "Ficha técnica"
// @Success      201  {object} dto.ComposicaoResponse
// @Failure      400  {object} apierror.APIError
// @Router       /v1/composicoes [post]
func (h *ComposicoesHandler) Criar(c *gin.Context) {
	var req dto.SalvarComposicaoRequest
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
// @Summary      Atualizar composição
// @Description  Atualiza a ficha e o conjunto de itens em uma transação; itens ausentes do corpo são removidos.
// @Tags         composicoes
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id   path string true "UUID da composição"
// @Param        body body dto.SalvarComposicaoRequest true "Ficha técnica"
// @Success      200  {object} dto.ComposicaoResponse
// @Failure      400  {object} apierror.APIError
// @Router       /v1/composicoes/{id} [put]
func (h *ComposicoesHandler) Atualizar(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req dto.SalvarComposicaoRequest
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
// @Summary      Excluir composição
// @Tags         composicoes
// @Security     BearerAuth
// @Param        id path string true "UUID da composição"
// @Success      204
// @Failure      400 {object} apierror.APIError
// @Router       /v1/composicoes/{id} [delete]
func (h *ComposicoesHandler) Excluir(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.svc.Excluir(c.Request.Context(), userID(c), id); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.Status(http.StatusNoContent)
}

// Obter godoc
// @Summary      Obter composição
// @Tags         composicoes
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "UUID da composição"
// @Success      200 {object} dto.ComposicaoResponse
// @Failure      404 {object} apierror.APIError
// @Router       /v1/composicoes/{id} [get]
func (h *ComposicoesHandler) Obter(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	resp, err := h.svc.Obter(c.Request.Context(), userID(c), id)
	if err != nil {
		c.JSON(http.StatusNotFound, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Listar godoc
// @Summary      Listar composições
// @Tags         composicoes
// @Produce      json
// @Security     BearerAuth
// @Success      200 {array} dto.ComposicaoResponse
// @Router       /v1/composicoes [get]
func (h *ComposicoesHandler) Listar(c *gin.Context) {
	resp, err := h.svc.Listar(c.Request.Context(), userID(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Erro ao listar composições"))
		return
	}
	c.JSON(http.StatusOK, resp)
}
