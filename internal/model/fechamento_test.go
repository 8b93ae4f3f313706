package model

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestClassificarMei(t *testing.T) {
	limite := decimal.NewFromInt(81000)

	cases := []struct {
		nome   string
		anual  string
		status string
	}{
		{"abaixo da faixa de atenção", "59999.99", MeiRegular},
		{"exatamente na faixa de atenção", "60000", MeiAtencao},
		{"dentro da faixa de atenção", "69999.99", MeiAtencao},
		{"exatamente na faixa de alerta", "70000", MeiAlerta},
		{"acima do limite", "85000", MeiAlerta},
		{"sem faturamento", "0", MeiRegular},
	}
	for _, tc := range cases {
		t.Run(tc.nome, func(t *testing.T) {
			anual, _ := decimal.NewFromString(tc.anual)
			status, _ := ClassificarMei(anual, limite)
			assert.Equal(t, tc.status, status)
		})
	}
}

func TestClassificarMeiPercentual(t *testing.T) {
	limite := decimal.NewFromInt(81000)

	_, percentual := ClassificarMei(decimal.NewFromInt(40500), limite)
	assert.True(t, percentual.Equal(decimal.NewFromInt(50)), "percentual: %s", percentual)

	// The warning bands are absolute; a custom ceiling only rescales the gauge.
	_, percentual = ClassificarMei(decimal.NewFromInt(40500), decimal.NewFromInt(100000))
	assert.True(t, percentual.Equal(decimal.NewFromFloat(40.5)), "percentual: %s", percentual)
}

func TestClassificarMeiLimiteZero(t *testing.T) {
	status, percentual := ClassificarMei(decimal.NewFromInt(10000), decimal.Zero)
	assert.Equal(t, MeiRegular, status)
	assert.True(t, percentual.IsZero())
}
