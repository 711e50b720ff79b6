package extraction

import (
	"context"
	"errors"
	"testing"
	"time"

	"pacs_automation/domain/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFilterApplicatorNoOpWithoutSelections(t *testing.T) {
	applicator := NewFilterApplicator(testLogger(), 100*time.Millisecond)

	cases := []struct {
		name string
		opts *entities.FilterOptions
	}{
		{"nil options", nil},
		{"empty options", &entities.FilterOptions{}},
		{"all sentinels", &entities.FilterOptions{
			GrupoTotem: entities.SentinelFor(entities.FilterGrupoTotem),
			Guiche:     entities.SentinelFor(entities.FilterGuiche),
			Tipo:       entities.SentinelFor(entities.FilterTipo),
			Prioridade: entities.SentinelFor(entities.FilterPrioridade),
			Modalidade: entities.SentinelFor(entities.FilterModalidade),
		}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			fake := newFakeBrowser()
			err := applicator.Apply(context.Background(), fake, tc.opts)
			require.NoError(t, err)
			// The no-op still confirms the table is rendered, but
			// touches no control.
			assert.Contains(t, fake.waited, selResultsTable)
			assert.Empty(t, fake.clicked)
		})
	}
}

func TestFilterApplicatorSelectsOptionAndRefreshes(t *testing.T) {
	fake := newFakeBrowser()
	ctl := filterControls[entities.FilterModalidade]
	fake.texts[ctl.options] = []string{"CT", "RM", "US"}

	applicator := NewFilterApplicator(testLogger(), 100*time.Millisecond)
	err := applicator.Apply(context.Background(), fake, &entities.FilterOptions{Modalidade: "CT"})
	require.NoError(t, err)

	assert.Equal(t, []string{
		ctl.trigger,
		ctl.option("CT"),
		selFilterButton,
	}, fake.clicked)
}

func TestFilterApplicatorUnknownOptionNamesFilter(t *testing.T) {
	fake := newFakeBrowser()
	ctl := filterControls[entities.FilterModalidade]
	fake.texts[ctl.options] = []string{"CT", "RM"}

	applicator := NewFilterApplicator(testLogger(), 100*time.Millisecond)
	err := applicator.Apply(context.Background(), fake, &entities.FilterOptions{Modalidade: "PET"})
	require.Error(t, err)

	var stepErr *StepError
	require.True(t, errors.As(err, &stepErr))
	assert.Equal(t, KindFilterNotFound, stepErr.Kind)
	assert.Contains(t, err.Error(), `filter "modalidade" has no option "PET"`)
	// The refresh never fires on failure.
	assert.NotContains(t, fake.clicked, selFilterButton)
}

func TestFilterApplicatorAppliesInScreenOrder(t *testing.T) {
	fake := newFakeBrowser()
	grupo := filterControls[entities.FilterGrupoTotem]
	modalidade := filterControls[entities.FilterModalidade]
	fake.texts[grupo.options] = []string{"TOTEM CENTRO"}
	fake.texts[modalidade.options] = []string{"CT"}

	applicator := NewFilterApplicator(testLogger(), 100*time.Millisecond)
	err := applicator.Apply(context.Background(), fake, &entities.FilterOptions{
		Modalidade: "CT",
		GrupoTotem: "TOTEM CENTRO",
	})
	require.NoError(t, err)

	assert.Equal(t, []string{
		grupo.trigger,
		grupo.option("TOTEM CENTRO"),
		modalidade.trigger,
		modalidade.option("CT"),
		selFilterButton,
	}, fake.clicked)
}

func TestFilterApplicatorControlNotInteractable(t *testing.T) {
	fake := newFakeBrowser()
	ctl := filterControls[entities.FilterGuiche]
	fake.clickErr[ctl.trigger] = errors.New("element not found or not visible")

	applicator := NewFilterApplicator(testLogger(), 100*time.Millisecond)
	err := applicator.Apply(context.Background(), fake, &entities.FilterOptions{Guiche: "GUICHÊ 1"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), `filter "guiche"`)
	assert.Contains(t, err.Error(), "control not interactable")
}
