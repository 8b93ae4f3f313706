package handler

import (
	"net/http"

	"acaimanager/internal/apierror"
	"acaimanager/internal/dto"
	"acaimanager/internal/service"

	"github.com/gin-gonic/gin"
)

type CanaisHandler struct{ svc service.CanalService }

func NewCanaisHandler(svc service.CanalService) *CanaisHandler {
	return &CanaisHandler{svc: svc}
}

// Criar godoc
// @Summary      Criar canal de venda
// @Description  Cadastra um canal com taxa percentual e ícone (instagram | truck | phone | store).
// @Tags         canais
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body body dto.SalvarCanalRequest true "Dados do canal"
// @Success      201  {object} dto.CanalResponse
// @Failure      400  {object} apierror.APIError
// @Router       /v1/canais [post]
func (h *CanaisHandler) Criar(c *gin.Context) {
	var req dto.SalvarCanalRequest
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
// @Summary      Atualizar canal de venda
// @Description  Vendas já registradas mantêm a taxa da época; só vendas futuras usam a nova.
// @Tags         canais
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id   path string true "UUID do canal"
// @Param        body body dto.SalvarCanalRequest true "Dados do canal"
// @Success      200  {object} dto.CanalResponse
// @Failure      400  {object} apierror.APIError
// @Router       /v1/canais/{id} [put]
func (h *CanaisHandler) Atualizar(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req dto.SalvarCanalRequest
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
// @Summary      Excluir canal de venda
// @Description  Recusa a exclusão de canais com vendas registradas.
// @Tags         canais
// @Security     BearerAuth
// @Param        id path string true "UUID do canal"
// @Success      204
// @Failure      409 {object} apierror.APIError
// @Router       /v1/canais/{id} [delete]
func (h *CanaisHandler) Excluir(c *gin.Context) {
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
// @Summary      Listar canais de venda
// @Tags         canais
// @Produce      json
// @Security     BearerAuth
// @Success      200 {array} dto.CanalResponse
// @Router       /v1/canais [get]
func (h *CanaisHandler) Listar(c *gin.Context) {
	resp, err := h.svc.Listar(c.Request.Context(), userID(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Erro ao listar canais"))
		return
	}
	c.JSON(http.StatusOK, resp)
}
