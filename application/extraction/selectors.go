package extraction

import (
	"fmt"

	"pacs_automation/domain/entities"
)

// Target application endpoints.
const (
	loginURL = "https://pacs.imagoradiologia.com.br/Netris-web/login"
	totemURL = "https://pacs.imagoradiologia.com.br/Netris-web/gerenciamentoTotem/atendimentosTotemPorChegada"
)

// Login form.
const (
	selUsernameInput = `input[name="j_username"]`
	selPasswordInput = `input[name="j_password"]`
	selLoginSubmit   = `button[type="submit"]`
)

// Totem arrival screen.
const (
	selResultsTable    = `table`
	selTableBodyRows   = `table tbody tr`
	selEmptyMarker     = `table td.dataTables_empty`
	selGuicheModalSave = `#btnSetGuicheModal`
	selFilterButton    = `#btnFiltrar`
	selPaginationNext  = `#dataTableAtendimentosTotem_next, .dataTables_paginate .paginate_button.next`
)

// filterControl describes one chosen-style dropdown on the screen:
// trigger opens the widget, options lists its visible entries.
type filterControl struct {
	trigger string
	options string
}

// option builds the selector that picks a single entry by its label.
func (c filterControl) option(label string) string {
	return fmt.Sprintf(`%s:has-text(%q)`, c.options, label)
}

// byPlaceholder is used for the dropdowns that carry no stable id; the
// widget is located through the placeholder text it shows when closed.
func byPlaceholder(name string) filterControl {
	return filterControl{
		trigger: fmt.Sprintf(`a:has-text(%q)`, entities.SentinelFor(name)),
		options: `.chosen-container-active li`,
	}
}

var filterControls = map[string]filterControl{
	entities.FilterGrupoTotem: {
		trigger: `#slGrupoTotem_chosen`,
		options: `#slGrupoTotem_chosen li`,
	},
	entities.FilterGuiche: {
		trigger: `#guiche_chosen a`,
		options: `#guiche_chosen li`,
	},
	entities.FilterTipo:       byPlaceholder(entities.FilterTipo),
	entities.FilterPrioridade: byPlaceholder(entities.FilterPrioridade),
	entities.FilterModalidade: byPlaceholder(entities.FilterModalidade),
}

// columnFields is the positional column-to-field mapping for the totem
// table. Layout drift on the target page means editing this table, not
// the extraction loop.
var columnFields = []struct {
	name   string
	assign func(*entities.ExtractedRecord, string)
}{
	{"paciente", func(r *entities.ExtractedRecord, v string) { r.Paciente = v }},
	{"atendimento", func(r *entities.ExtractedRecord, v string) { r.Atendimento = v }},
	{"convenio", func(r *entities.ExtractedRecord, v string) { r.Convenio = v }},
	{"chegada", func(r *entities.ExtractedRecord, v string) { r.Chegada = v }},
	{"modalidade", func(r *entities.ExtractedRecord, v string) { r.Modalidade = v }},
	{"prioridade", func(r *entities.ExtractedRecord, v string) { r.Prioridade = v }},
	{"guiche", func(r *entities.ExtractedRecord, v string) { r.Guiche = v }},
	{"status", func(r *entities.ExtractedRecord, v string) { r.Status = v }},
}

func recordFromCells(cells []string) entities.ExtractedRecord {
	var r entities.ExtractedRecord
	for i, col := range columnFields {
		col.assign(&r, cells[i])
	}
	return r
}
