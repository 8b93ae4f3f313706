package handler

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"acaimanager/internal/apierror"
	"acaimanager/internal/dto"
	"acaimanager/internal/infra"
	"acaimanager/internal/service"

	"github.com/gin-gonic/gin"
)

type FechamentosHandler struct {
	svc            service.FechamentoService
	pdfStoragePath string
}

func NewFechamentosHandler(svc service.FechamentoService, pdfStoragePath string) *FechamentosHandler {
	return &FechamentosHandler{svc: svc, pdfStoragePath: pdfStoragePath}
}

// Resumo godoc
// @Summary      Resumo de fechamentos
// @Description  Fecha os meses pendentes e devolve o histórico fechado, o mês corrente calculado ao vivo e a situação MEI acumulada do ano.
// @Tags         fechamentos
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} dto.ResumoFechamentoResponse
// @Failure      500 {object} apierror.APIError
// @Router       /v1/fechamentos [get]
func (h *FechamentosHandler) Resumo(c *gin.Context) {
	resp, err := h.svc.Resumo(c.Request.Context(), userID(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Erro ao montar resumo de fechamentos"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// RegistrarTransferencia godoc
// @Summary      Registrar transferência PF
// @Description  Anota quanto foi transferido da conta da loja para a conta pessoal em um mês já fechado.
// @Tags         fechamentos
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body body dto.RegistrarTransferenciaRequest true "Mês, ano e valor"
// @Success      200  {object} dto.FechamentoResponse
// @Failure      400  {object} apierror.APIError
// @Router       /v1/fechamentos/transferencia [post]
func (h *FechamentosHandler) RegistrarTransferencia(c *gin.Context) {
	var req dto.RegistrarTransferenciaRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.RegistrarTransferencia(c.Request.Context(), userID(c), req)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// BaixarRelatorio godoc
// @Summary      Baixar relatório mensal em PDF
// @Description  Gera na hora o PDF do fechamento do mês solicitado e devolve o arquivo.
// @Tags         fechamentos
// @Produce      application/pdf
// @Security     BearerAuth
// @Param        mes query int false "Mês (default: mês corrente)"
// @Param        ano query int false "Ano (default: ano corrente)"
// @Success      200 {file} binary
// @Failure      400 {object} apierror.APIError
// @Router       /v1/fechamentos/relatorio [get]
func (h *FechamentosHandler) BaixarRelatorio(c *gin.Context) {
	hoje := time.Now()
	mes := queryInt(c, "mes", int(hoje.Month()))
	ano := queryInt(c, "ano", hoje.Year())

	dados, err := h.svc.DadosRelatorio(c.Request.Context(), userID(c), mes, ano)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	path, err := infra.GerarRelatorioPDF(dados, h.pdfStoragePath)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Erro ao gerar PDF do relatório"))
		return
	}
	c.FileAttachment(path, fmt.Sprintf("fechamento_%02d_%d.pdf", mes, ano))
}

// EnviarRelatorio godoc
// @Summary      Enviar relatório mensal por e-mail
// @Description  Agenda o envio assíncrono do PDF do fechamento para o e-mail informado.
// @Tags         fechamentos
// @Accept       json
// @Security     BearerAuth
// @Param        body body dto.EnviarRelatorioRequest true "Mês, ano e destinatário"
// @Success      202
// @Failure      400 {object} apierror.APIError
// @Router       /v1/fechamentos/relatorio/enviar [post]
func (h *FechamentosHandler) EnviarRelatorio(c *gin.Context) {
	var req dto.EnviarRelatorioRequest
	if !bindAndValidate(c, &req) {
		return
	}
	if err := h.svc.EnviarRelatorio(c.Request.Context(), userID(c), req); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.Status(http.StatusAccepted)
}

func queryInt(c *gin.Context, name string, fallback int) int {
	raw := c.Query(name)
	if raw == "" {
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return v
}
