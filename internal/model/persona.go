package model

// Persona is a static catalog entry describing a reading archetype. Personas
// are selected by the classifier, never mutated; the colors are terminal hex
// colors consumed by the slide deck.
type Persona struct {
	Name           string
	Description    string
	Icon           string
	Roast          string
	PrimaryColor   string
	SecondaryColor string
	Tags           []string
}
