package layout

// Fixed Italian labels printed on the form.
const (
	LabelBordero        = "Borderò"
	LabelDate           = "Data"
	LabelTime           = "Orario"
	LabelLocation       = "Luogo"
	LabelOrganizer      = "Organizzatore"
	LabelSoloSection    = "Esecutore Singolo"
	LabelBandSection    = "Complesso Musicale"
	LabelName           = "Nome"
	LabelBandName       = "Nome del complesso"
	LabelItalian        = "Nazionalità italiana"
	LabelYes            = "Sì"
	LabelNo             = "No"
	LabelAddress        = "Indirizzo"
	LabelPostalCode     = "CAP"
	LabelProvince       = "Provincia"
	LabelMunicipality   = "Comune"
	LabelTaxID          = "Codice Fiscale / Partita IVA"
	LabelPartitaIva     = "Partita IVA"
	LabelBandMembers    = "Membri della band"
	LabelTracks         = "Brani"
	LabelComposers      = "Compositori"
	LabelShortExecution = "meno di 30 secondi"
	LabelFullExecution  = "più di 30 secondi"
)
