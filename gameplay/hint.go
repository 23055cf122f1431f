package gameplay

import (
	"fmt"

	"github.com/lixenwraith/vi-recall/core"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

// Tip reveals the next expected target
type Tip struct {
	Target   core.Target
	Label    string // Accessible label of the rendered element
	Location string // Directional hint, e.g. "(oben links)"
}

// Pair returns the tip as (label, location)
func (t Tip) Pair() (string, string) {
	return t.Label, t.Location
}

// String joins label and location for subtitle display
func (t Tip) String() string {
	if t.Label == "" {
		return t.Location
	}
	return t.Label + " " + t.Location
}

// HintLanguage is the only language the directional hints are authored in
var HintLanguage = language.German

var locationKeys = [core.TargetCount]string{
	core.TargetTopLeft:     "location.top_left",
	core.TargetTopRight:    "location.top_right",
	core.TargetBottomLeft:  "location.bottom_left",
	core.TargetBottomRight: "location.bottom_right",
}

var germanLocations = [core.TargetCount]string{
	core.TargetTopLeft:     "(oben links)",
	core.TargetTopRight:    "(oben rechts)",
	core.TargetBottomLeft:  "(unten links)",
	core.TargetBottomRight: "(unten rechts)",
}

// Resolved once; lookups afterwards are plain array reads
var locations = mustResolveLocations()

func mustResolveLocations() [core.TargetCount]string {
	b := catalog.NewBuilder()
	for target, text := range germanLocations {
		if err := b.SetString(HintLanguage, locationKeys[target], text); err != nil {
			panic(fmt.Sprintf("hint catalog: %v", err))
		}
	}

	p := message.NewPrinter(HintLanguage, message.Catalog(b))
	var out [core.TargetCount]string
	for target, key := range locationKeys {
		out[target] = p.Sprintf(key)
	}
	return out
}

// Location returns the directional hint for target, or "" for an undeclared target
func Location(target core.Target) string {
	if !target.Valid() {
		return ""
	}
	return locations[target]
}
