// Package i18n provides the localized status messages a match reports.
package i18n

import (
	"strconv"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const (
	KeyHit          = "match.hit"
	KeyMiss         = "match.miss"
	KeyComputerHit  = "match.computer_hit"
	KeyComputerMiss = "match.computer_miss"
	KeyPlayerWon    = "match.player_won"
	KeyPlayerLost   = "match.player_lost"
	KeyPlaceShip    = "match.place_ship"
	KeyAllPlaced    = "match.all_placed"
	KeyFinalScore   = "match.final_score"
)

var supported = []language.Tag{language.English, language.Spanish}

var matcher = language.NewMatcher(supported)

// Supported returns the list of supported language tags.
func Supported() []language.Tag {
	return append([]language.Tag(nil), supported...)
}

// Default returns the default language tag.
func Default() language.Tag {
	return language.English
}

// ResolveTag maps a configured language such as "es" or "es-AR"
// onto a supported tag, falling back to the default.
func ResolveTag(lang string) language.Tag {
	if lang == "" {
		return Default()
	}
	tag, err := language.Parse(lang)
	if err != nil {
		return Default()
	}
	_, idx, confidence := matcher.Match(tag)
	if confidence == language.No {
		return Default()
	}
	return supported[idx]
}

// Printer returns a message printer for the supplied tag.
func Printer(tag language.Tag) *message.Printer {
	return message.NewPrinter(tag)
}

// FinalScore formats the closing score. Printers group digits
// per locale, so the number is passed pre-formatted.
func FinalScore(p *message.Printer, score int) string {
	return p.Sprintf(KeyFinalScore, strconv.Itoa(score))
}
