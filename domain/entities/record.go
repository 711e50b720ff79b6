package entities

// ExtractedRecord is one row of the totem arrival table, field values
// captured exactly as rendered. No coercion, no normalization.
type ExtractedRecord struct {
	Paciente    string `json:"paciente"`
	Atendimento string `json:"atendimento"`
	Convenio    string `json:"convenio"`
	Chegada     string `json:"chegada"`
	Modalidade  string `json:"modalidade"`
	Prioridade  string `json:"prioridade"`
	Guiche      string `json:"guiche"`
	Status      string `json:"status"`
}
