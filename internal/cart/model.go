package cart

// MenuItem is one recognized dish as returned by the recognition
// backend. Immutable once installed; the backend provides no stable ID,
// so lines carry a synthetic key instead.
type MenuItem struct {
	Name           string  `json:"name"`
	TranslatedName string  `json:"translated_name,omitempty"`
	Description    string  `json:"description,omitempty"`
	Price          float64 `json:"price"`
}

// DisplayName prefers the translation when the backend supplied one.
func (m MenuItem) DisplayName() string {
	if m.TranslatedName != "" {
		return m.TranslatedName
	}
	return m.Name
}

// Line pairs a MenuItem with the diner-chosen quantity. Quantity is the
// only mutable field and is only ever touched by user actions.
type Line struct {
	Key      string   `json:"key"`
	Item     MenuItem `json:"item"`
	Quantity int      `json:"quantity"`
}

// SelectedLine is the submission-facing shape of a line with quantity > 0.
type SelectedLine struct {
	DisplayName string  `json:"name"`
	Quantity    int     `json:"quantity"`
	Price       float64 `json:"price"`
}
