package service

import (
	"context"
	"testing"

	"acaimanager/internal/dto"
	"acaimanager/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newComposicaoFixture() (ComposicaoService, *stubComposicaoRepo, *stubFornecedorRepo, uuid.UUID) {
	repo := newStubComposicaoRepo()
	fornecedorRepo := newStubFornecedorRepo()
	return NewComposicaoService(repo, fornecedorRepo), repo, fornecedorRepo, uuid.New()
}

func itensReceita() []dto.ItemCustoRequest {
	return []dto.ItemCustoRequest{
		{Nome: "Polpa de açaí", ValorPago: dec("6.00"), Rendimento: 20},
		{Nome: "Granola", ValorPago: dec("19.00"), Rendimento: 30},
	}
}

func TestCriarComposicaoCalculaCustos(t *testing.T) {
	svc, _, _, userID := newComposicaoFixture()

	resp, err := svc.Criar(context.Background(), userID, dto.SalvarComposicaoRequest{
		Nome:  "Copo 300ml",
		Itens: itensReceita(),
	})
	require.NoError(t, err)

	require.Len(t, resp.Itens, 2)
	// 6.00 / 20 = 0.30, 19.00 / 30 = 0.6333 (4 casas)
	assert.True(t, resp.Itens[0].CustoUnitario.Equal(dec("0.30")), "item 0: %s", resp.Itens[0].CustoUnitario)
	assert.True(t, resp.Itens[1].CustoUnitario.Equal(dec("0.6333")), "item 1: %s", resp.Itens[1].CustoUnitario)
	assert.True(t, resp.CustoTotal.Equal(dec("0.9333")), "total: %s", resp.CustoTotal)
}

func TestCriarComposicaoCustoIndependeDaOrdem(t *testing.T) {
	svc, _, _, userID := newComposicaoFixture()
	ctx := context.Background()

	direto, err := svc.Criar(ctx, userID, dto.SalvarComposicaoRequest{Nome: "Receita A", Itens: itensReceita()})
	require.NoError(t, err)

	invertido := itensReceita()
	invertido[0], invertido[1] = invertido[1], invertido[0]
	reverso, err := svc.Criar(ctx, userID, dto.SalvarComposicaoRequest{Nome: "Receita B", Itens: invertido})
	require.NoError(t, err)

	assert.True(t, direto.CustoTotal.Equal(reverso.CustoTotal))
}

func TestCriarComposicaoRendimentoZero(t *testing.T) {
	svc, _, _, userID := newComposicaoFixture()

	_, err := svc.Criar(context.Background(), userID, dto.SalvarComposicaoRequest{
		Nome: "Inválida",
		Itens: []dto.ItemCustoRequest{
			{Nome: "Polpa", ValorPago: dec("6.00"), Rendimento: 0},
		},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "rendimento")
}

func TestCriarComposicaoFornecedorInexistente(t *testing.T) {
	svc, _, _, userID := newComposicaoFixture()

	fid := uuid.NewString()
	_, err := svc.Criar(context.Background(), userID, dto.SalvarComposicaoRequest{
		Nome: "Copo 300ml",
		Itens: []dto.ItemCustoRequest{
			{Nome: "Polpa", FornecedorID: &fid, ValorPago: dec("6.00"), Rendimento: 20},
		},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "fornecedor não encontrado")
}

func TestAtualizarComposicaoDiffDeItens(t *testing.T) {
	svc, repo, _, userID := newComposicaoFixture()
	ctx := context.Background()

	criado, err := svc.Criar(ctx, userID, dto.SalvarComposicaoRequest{Nome: "Copo 300ml", Itens: itensReceita()})
	require.NoError(t, err)
	compID := uuid.MustParse(criado.ID)

	// Keep the first item (new price), drop the second, add a third.
	mantido := criado.Itens[0].ID
	req := dto.SalvarComposicaoRequest{
		Nome: "Copo 300ml",
		Itens: []dto.ItemCustoRequest{
			{ID: &mantido, Nome: "Polpa de açaí", ValorPago: dec("8.00"), Rendimento: 20},
			{Nome: "Leite em pó", ValorPago: dec("12.00"), Rendimento: 40},
		},
	}

	resp, err := svc.Atualizar(ctx, userID, compID, req)
	require.NoError(t, err)

	// 8/20 = 0.40, 12/40 = 0.30
	assert.True(t, resp.CustoTotal.Equal(dec("0.70")), "total: %s", resp.CustoTotal)

	assert.Len(t, repo.itens, 2)
	sobrevivente, ok := repo.itens[uuid.MustParse(mantido)]
	require.True(t, ok, "o item mantido deve preservar o ID da linha")
	assert.True(t, sobrevivente.ValorPago.Equal(dec("8.00")))
}

func TestAtualizarComposicaoRejeitaItemDeOutraReceita(t *testing.T) {
	svc, _, _, userID := newComposicaoFixture()
	ctx := context.Background()

	a, err := svc.Criar(ctx, userID, dto.SalvarComposicaoRequest{Nome: "Receita A", Itens: itensReceita()})
	require.NoError(t, err)
	b, err := svc.Criar(ctx, userID, dto.SalvarComposicaoRequest{Nome: "Receita B", Itens: itensReceita()})
	require.NoError(t, err)

	alheio := b.Itens[0].ID
	_, err = svc.Atualizar(ctx, userID, uuid.MustParse(a.ID), dto.SalvarComposicaoRequest{
		Nome: "Receita A",
		Itens: []dto.ItemCustoRequest{
			{ID: &alheio, Nome: "Polpa", ValorPago: dec("6.00"), Rendimento: 20},
		},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "não pertence")
}

func TestExcluirComposicaoRemoveItens(t *testing.T) {
	svc, repo, _, userID := newComposicaoFixture()
	ctx := context.Background()

	criado, err := svc.Criar(ctx, userID, dto.SalvarComposicaoRequest{Nome: "Copo 300ml", Itens: itensReceita()})
	require.NoError(t, err)

	require.NoError(t, svc.Excluir(ctx, userID, uuid.MustParse(criado.ID)))
	assert.Empty(t, repo.composicoes)
	assert.Empty(t, repo.itens)
}

func TestComposicaoComFornecedor(t *testing.T) {
	repo := newStubComposicaoRepo()
	fornecedorRepo := newStubFornecedorRepo()
	svc := NewComposicaoService(repo, fornecedorRepo)
	userID := uuid.New()

	fid := fornecedorRepo.seed(model.Fornecedor{Nome: "Distribuidora Norte"})
	fidStr := fid.String()

	resp, err := svc.Criar(context.Background(), userID, dto.SalvarComposicaoRequest{
		Nome: "Copo 500ml",
		Itens: []dto.ItemCustoRequest{
			{Nome: "Polpa", FornecedorID: &fidStr, ValorPago: dec("6.00"), Rendimento: 20},
		},
	})
	require.NoError(t, err)
	require.NotNil(t, resp.Itens[0].FornecedorID)
	assert.Equal(t, fidStr, *resp.Itens[0].FornecedorID)
}
