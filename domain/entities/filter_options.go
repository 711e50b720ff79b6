package entities

// Filter names, matching the controls on the totem arrival screen.
const (
	FilterGrupoTotem = "grupo_totem"
	FilterGuiche     = "guiche"
	FilterTipo       = "tipo"
	FilterPrioridade = "prioridade"
	FilterModalidade = "modalidade"
)

// Placeholder labels the PACS screen shows for an untouched dropdown.
// A filter set to its placeholder means "leave this control alone".
var filterSentinels = map[string]string{
	FilterGrupoTotem: "Selecione um grupo totem",
	FilterGuiche:     "Selecione um guichê",
	FilterTipo:       "Selecione um tipo",
	FilterPrioridade: "Selecione uma prioridade",
	FilterModalidade: "Selecione uma modalidade",
}

// SentinelFor returns the "unselected" placeholder for a filter name.
func SentinelFor(name string) string {
	return filterSentinels[name]
}

// FilterOptions selects option labels for the totem screen's dropdown
// filters. Any field may be empty or equal to its placeholder, meaning
// the control keeps the page's default selection.
type FilterOptions struct {
	GrupoTotem string `json:"grupo_totem,omitempty"`
	Guiche     string `json:"guiche,omitempty"`
	Tipo       string `json:"tipo,omitempty"`
	Prioridade string `json:"prioridade,omitempty"`
	Modalidade string `json:"modalidade,omitempty"`
}

// FilterSelection is one filter the caller actually asked for.
type FilterSelection struct {
	Name  string
	Value string
}

// Requested returns the filters that carry a real selection, in the
// order the controls appear on the screen. Empty and placeholder
// values are dropped. Safe to call on a nil receiver.
func (f *FilterOptions) Requested() []FilterSelection {
	if f == nil {
		return nil
	}
	all := []FilterSelection{
		{FilterGrupoTotem, f.GrupoTotem},
		{FilterGuiche, f.Guiche},
		{FilterTipo, f.Tipo},
		{FilterPrioridade, f.Prioridade},
		{FilterModalidade, f.Modalidade},
	}
	selected := make([]FilterSelection, 0, len(all))
	for _, s := range all {
		if s.Value == "" || s.Value == filterSentinels[s.Name] {
			continue
		}
		selected = append(selected, s)
	}
	return selected
}
