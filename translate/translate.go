// Package translate localises the user-facing messages of the LS-8 tools.
package translate

import (
	"github.com/jeandeaual/go-locale"
	log "github.com/sirupsen/logrus"

	"golang.org/x/text/message"
)

// DEFAULT_LANGUAGE is used when no locale can be detected.
const DEFAULT_LANGUAGE = "en-US"

var printer *message.Printer

func init() {
	locales, err := locale.GetLocales()
	if err != nil {
		log.Warnf("ls8: locale: %v", err)
	}

	SetLanguage(locales...)
}

// SetLanguage selects the printer for the best match among the BCP 47
// language tags, falling back to DEFAULT_LANGUAGE.
//
// Sentinel errors are formatted at package initialisation, so only
// messages formatted after the call are affected.
func SetLanguage(tags ...string) {
	if len(tags) == 0 {
		tags = []string{DEFAULT_LANGUAGE}
	}

	printer = message.NewPrinter(message.MatchLanguage(tags...))
}

// From an en-US Sprintf() format, translate to string.
func From(key message.Reference, args ...any) string {
	return printer.Sprintf(key, args...)
}
