package handler

import (
	"net/http"

	"acaimanager/internal/apierror"
	"acaimanager/internal/dto"
	"acaimanager/internal/service"

	"github.com/gin-gonic/gin"
)

// 2 MiB is plenty for a store logo.
const maxLogoBytes = 2 << 20

type ConfiguracoesHandler struct{ svc service.ConfiguracaoService }

func NewConfiguracoesHandler(svc service.ConfiguracaoService) *ConfiguracoesHandler {
	return &ConfiguracoesHandler{svc: svc}
}

// Obter godoc
// @Summary      Obter configuração da loja
// @Description  Retorna a configuração do usuário, criando o registro com os padrões na primeira consulta.
// @Tags         configuracoes
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} dto.ConfiguracaoResponse
// @Failure      500 {object} apierror.APIError
// @Router       /v1/configuracoes [get]
func (h *ConfiguracoesHandler) Obter(c *gin.Context) {
	resp, err := h.svc.Obter(c.Request.Context(), userID(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Erro ao consultar configuração"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Atualizar godoc
// @Summary      Atualizar configuração da loja
// @Tags         configuracoes
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body body dto.AtualizarConfiguracaoRequest true "Nome da loja e limite MEI"
// @Success      200  {object} dto.ConfiguracaoResponse
// @Failure      400  {object} apierror.APIError
// @Router       /v1/configuracoes [put]
func (h *ConfiguracoesHandler) Atualizar(c *gin.Context) {
	var req dto.AtualizarConfiguracaoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Atualizar(c.Request.Context(), userID(c), req)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// UploadLogo godoc
// @Summary      Enviar logo da loja
// @Description  Recebe a imagem via multipart (campo "logo") e grava a URL pública na configuração.
// @Tags         configuracoes
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        logo formData file true "Imagem do logo (máx. 2 MiB)"
// @Success      200  {object} dto.ConfiguracaoResponse
// @Failure      400  {object} apierror.APIError
// @Router       /v1/configuracoes/logo [post]
func (h *ConfiguracoesHandler) UploadLogo(c *gin.Context) {
	file, err := c.FormFile("logo")
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("Arquivo de logo ausente"))
		return
	}
	if file.Size > maxLogoBytes {
		c.JSON(http.StatusBadRequest, apierror.New("Logo excede o tamanho máximo de 2 MiB"))
		return
	}
	src, err := file.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("Não foi possível ler o arquivo enviado"))
		return
	}
	defer src.Close()

	resp, err := h.svc.UploadLogo(c.Request.Context(), userID(c), file.Filename, src)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Erro ao salvar o logo"))
		return
	}
	c.JSON(http.StatusOK, resp)
}
