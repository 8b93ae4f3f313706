package handler

import (
	"net/http"

	"acaimanager/internal/apierror"
	"acaimanager/internal/dto"
	"acaimanager/internal/service"

	"github.com/gin-gonic/gin"
)

type VendasHandler struct{ svc service.VendaService }

func NewVendasHandler(svc service.VendaService) *VendasHandler { return &VendasHandler{svc: svc} }

// Registrar godoc
// @Summary      Registrar venda
// @Description  Cria uma venda ACID: snapshots do carrinho, totais derivados e despesas sintéticas (custo de produtos e taxa de canal) na mesma transação.
// @Tags         vendas
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body body dto.SalvarVendaRequest true "Detalhe da venda"
// @Success      201  {object} dto.VendaResponse
// @Failure      400  {object} apierror.APIError
// @Router       /v1/vendas [post]
func (h *VendasHandler) Registrar(c *gin.Context) {
	var req dto.SalvarVendaRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Registrar(c.Request.Context(), userID(c), req)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// Atualizar godoc
// @Summary      Atualizar venda
// @Description  Reprecifica o carrinho e refaz as despesas sintéticas na mesma transação.
// @Tags         vendas
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id   path string true "UUID da venda"
// @Param        body body dto.SalvarVendaRequest true "Detalhe da venda"
// @Success      200  {object} dto.VendaResponse
// @Failure      400  {object} apierror.APIError
// @Router       /v1/vendas/{id} [put]
func (h *VendasHandler) Atualizar(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req dto.SalvarVendaRequest
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
// @Summary      Excluir venda
// @Description  Remove a venda, seus itens e as despesas geradas por ela.
// @Tags         vendas
// @Security     BearerAuth
// @Param        id path string true "UUID da venda"
// @Success      204
// @Failure      400 {object} apierror.APIError
// @Router       /v1/vendas/{id} [delete]
func (h *VendasHandler) Excluir(c *gin.Context) {
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
// @Summary      Obter venda
// @Tags         vendas
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "UUID da venda"
// @Success      200 {object} dto.VendaResponse
// @Failure      404 {object} apierror.APIError
// @Router       /v1/vendas/{id} [get]
func (h *VendasHandler) Obter(c *gin.Context) {
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
// @Summary      Listar vendas
// @Description  Retorna lista paginada de vendas filtrada por mês, ano e canal.
// @Tags         vendas
// @Produce      json
// @Security     BearerAuth
// @Param        mes   query int    false "Mês (1-12)"
// @Param        ano   query int    false "Ano"
// @Param        canal query string false "UUID do canal"
// @Param        page  query int    false "Página (default 1)"
// @Param        limit query int    false "Registros por página (default 50)"
// @Success      200   {object} dto.VendaListResponse
// @Failure      400   {object} apierror.APIError
// @Router       /v1/vendas [get]
func (h *VendasHandler) Listar(c *gin.Context) {
	var filter dto.VendaFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	resp, err := h.svc.Listar(c.Request.Context(), userID(c), filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Erro ao listar vendas"))
		return
	}
	c.JSON(http.StatusOK, resp)
}
