package handler

import (
	"net/http"

	"acaimanager/internal/apierror"
	"acaimanager/internal/service"

	"github.com/gin-gonic/gin"
)

type DashboardHandler struct{ svc service.DashboardService }

func NewDashboardHandler(svc service.DashboardService) *DashboardHandler {
	return &DashboardHandler{svc: svc}
}

// Resumo godoc
// @Summary      Painel do mês
// @Description  Indicadores consolidados do mês: faturamento, lucro, despesas, ticket médio, quebra por canal e situação MEI. Resultado cacheado por 60s.
// @Tags         dashboard
// @Produce      json
// @Security     BearerAuth
// @Param        mes query int false "Mês (default: mês corrente)"
// @Param        ano query int false "Ano (default: ano corrente)"
// @Success      200 {object} dto.DashboardResponse
// @Failure      500 {object} apierror.APIError
// @Router       /v1/dashboard [get]
func (h *DashboardHandler) Resumo(c *gin.Context) {
	mes := queryInt(c, "mes", 0)
	ano := queryInt(c, "ano", 0)

	resp, err := h.svc.Resumo(c.Request.Context(), userID(c), mes, ano)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Erro ao montar o painel"))
		return
	}
	c.JSON(http.StatusOK, resp)
}
