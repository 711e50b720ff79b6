package entities

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilterOptionsRequested(t *testing.T) {
	t.Run("nil receiver is empty", func(t *testing.T) {
		var opts *FilterOptions
		assert.Empty(t, opts.Requested())
	})

	t.Run("empty fields are dropped", func(t *testing.T) {
		opts := &FilterOptions{Modalidade: "CT"}
		assert.Equal(t, []FilterSelection{{FilterModalidade, "CT"}}, opts.Requested())
	})

	t.Run("placeholder labels are dropped", func(t *testing.T) {
		opts := &FilterOptions{
			GrupoTotem: SentinelFor(FilterGrupoTotem),
			Guiche:     SentinelFor(FilterGuiche),
			Tipo:       "CONSULTA",
			Prioridade: SentinelFor(FilterPrioridade),
			Modalidade: SentinelFor(FilterModalidade),
		}
		assert.Equal(t, []FilterSelection{{FilterTipo, "CONSULTA"}}, opts.Requested())
	})

	t.Run("selections come back in screen order", func(t *testing.T) {
		opts := &FilterOptions{
			Modalidade: "CT",
			GrupoTotem: "TOTEM CENTRO",
			Prioridade: "URGENTE",
		}
		assert.Equal(t, []FilterSelection{
			{FilterGrupoTotem, "TOTEM CENTRO"},
			{FilterPrioridade, "URGENTE"},
			{FilterModalidade, "CT"},
		}, opts.Requested())
	})
}

func TestSentinelForCoversEveryFilter(t *testing.T) {
	for _, name := range []string{FilterGrupoTotem, FilterGuiche, FilterTipo, FilterPrioridade, FilterModalidade} {
		assert.NotEmpty(t, SentinelFor(name), name)
	}
}
