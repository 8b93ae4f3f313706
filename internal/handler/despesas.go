package handler

import (
	"net/http"
	"strings"

	"acaimanager/internal/apierror"
	"acaimanager/internal/dto"
	"acaimanager/internal/service"

	"github.com/gin-gonic/gin"
)

type DespesasHandler struct{ svc service.DespesaService }

func NewDespesasHandler(svc service.DespesaService) *DespesasHandler {
	return &DespesasHandler{svc: svc}
}

// Criar godoc
// @Summary      Criar despesa
// @Description  Registra uma despesa avulsa ou um modelo recorrente (recorrente=true exige dia de vencimento).
// @Tags         despesas
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body body dto.SalvarDespesaRequest true "Detalhe da despesa"
// @Success      201  {object} dto.DespesaResponse
// @Failure      400  {object} apierror.APIError
// @Router       /v1/despesas [post]
func (h *DespesasHandler) Criar(c *gin.Context) {
	var req dto.SalvarDespesaRequest
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
// @Summary      Atualizar despesa
// @Description  Despesas geradas automaticamente por uma venda não podem ser editadas.
// @Tags         despesas
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id   path string true "UUID da despesa"
// @Param        body body dto.SalvarDespesaRequest true "Detalhe da despesa"
// @Success      200  {object} dto.DespesaResponse
// @Failure      400  {object} apierror.APIError
// @Router       /v1/despesas/{id} [put]
func (h *DespesasHandler) Atualizar(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req dto.SalvarDespesaRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Atualizar(c.Request.Context(), userID(c), id, req)
	if err != nil {
		c.JSON(statusDespesaErr(err), apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Excluir godoc
// @Summary      Excluir despesa
// @Tags         despesas
// @Security     BearerAuth
// @Param        id path string true "UUID da despesa"
// @Success      204
// @Failure      400 {object} apierror.APIError
// @Failure      409 {object} apierror.APIError
// @Router       /v1/despesas/{id} [delete]
func (h *DespesasHandler) Excluir(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.svc.Excluir(c.Request.Context(), userID(c), id); err != nil {
		c.JSON(statusDespesaErr(err), apierror.New(err.Error()))
		return
	}
	c.Status(http.StatusNoContent)
}

// MarcarPaga godoc
// @Summary      Marcar despesa como paga
// @Description  Operação idempotente: marcar uma despesa já paga não altera nada.
// @Tags         despesas
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "UUID da despesa"
// @Success      200 {object} dto.DespesaResponse
// @Failure      400 {object} apierror.APIError
// @Router       /v1/despesas/{id}/pagar [patch]
func (h *DespesasHandler) MarcarPaga(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	resp, err := h.svc.MarcarPaga(c.Request.Context(), userID(c), id)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Listar godoc
// @Summary      Listar despesas
// @Description  Lista instâncias de despesa (modelos recorrentes ficam de fora) filtradas por mês, ano, status e tipo.
// @Tags         despesas
// @Produce      json
// @Security     BearerAuth
// @Param        mes    query int    false "Mês (1-12)"
// @Param        ano    query int    false "Ano"
// @Param        status query string false "pendente ou paga"
// @Param        tipo   query string false "UUID do tipo"
// @Success      200    {object} dto.DespesaListResponse
// @Failure      400    {object} apierror.APIError
// @Router       /v1/despesas [get]
func (h *DespesasHandler) Listar(c *gin.Context) {
	var filter dto.DespesaFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	resp, err := h.svc.Listar(c.Request.Context(), userID(c), filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Erro ao listar despesas"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// CriarTipo godoc
// @Summary      Criar tipo de despesa
// @Tags         despesas
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body body dto.SalvarTipoDespesaRequest true "Detalhe do tipo"
// @Success      201  {object} dto.TipoDespesaResponse
// @Failure      400  {object} apierror.APIError
// @Router       /v1/despesas/tipos [post]
func (h *DespesasHandler) CriarTipo(c *gin.Context) {
	var req dto.SalvarTipoDespesaRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.CriarTipo(c.Request.Context(), userID(c), req)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// ListarTipos godoc
// @Summary      Listar tipos de despesa
// @Tags         despesas
// @Produce      json
// @Security     BearerAuth
// @Success      200 {array} dto.TipoDespesaResponse
// @Router       /v1/despesas/tipos [get]
func (h *DespesasHandler) ListarTipos(c *gin.Context) {
	resp, err := h.svc.ListarTipos(c.Request.Context(), userID(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Erro ao listar tipos de despesa"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// GerarRecorrentes godoc
// @Summary      Gerar despesas recorrentes do mês
// @Description  Materializa a instância do mês corrente de cada modelo recorrente. Idempotente: modelos já gerados são ignorados.
// @Tags         despesas
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} dto.GerarRecorrentesResponse
// @Failure      400 {object} apierror.APIError
// @Router       /v1/despesas/gerar-recorrentes [post]
func (h *DespesasHandler) GerarRecorrentes(c *gin.Context) {
	geradas, err := h.svc.GerarRecorrentes(c.Request.Context(), userID(c))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, dto.GerarRecorrentesResponse{Geradas: geradas})
}

// statusDespesaErr maps guard violations on sale-generated expenses to 409.
func statusDespesaErr(err error) int {
	if strings.Contains(err.Error(), "gerada por venda") {
		return http.StatusConflict
	}
	return http.StatusBadRequest
}
