package domain

// Row is a loosely typed, field-name-indexed tabular record, the exchange
// format of the spreadsheet import/export boundary. Any tabular
// serialization (CSV, spreadsheet, JSON rows) may carry it as long as the
// field-name mapping is preserved.
type Row map[string]any

// Localized column labels of the tabular boundary.
const (
	ColDate        = "Date"
	ColType        = "Type"
	ColCategory    = "Catégorie"
	ColDescription = "Description"
	ColAmount      = "Montant"
	ColReference   = "Référence"
	ColStatus      = "Statut"
	ColAuthor      = "Auteur"
	ColNotes       = "Notes"
)

// ExportColumns is the column order of exported tables.
var ExportColumns = []string{
	ColDate, ColType, ColCategory, ColDescription, ColAmount,
	ColReference, ColStatus, ColAuthor, ColNotes,
}

// RejectedRow is an import row that failed the acceptance predicate,
// returned for operator visibility instead of being silently dropped.
type RejectedRow struct {
	Row    Row    `json:"row"`
	Reason string `json:"reason"`
}
