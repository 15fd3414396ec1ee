// Package translate formats user-facing messages for the current locale.
package translate

import (
	"log"

	"github.com/jeandeaual/go-locale"

	"golang.org/x/text/message"
)

var printer *message.Printer

func init() {
	locales, err := locale.GetLocales()
	if err != nil {
		log.Printf("codefight: locale: %v", err)
	}

	if len(locales) == 0 {
		locales = []string{"en-US"}
	}

	SetLanguage(locales...)
}

// SetLanguage selects the printer best matching the BCP 47 language tags.
func SetLanguage(tags ...string) {
	printer = message.NewPrinter(message.MatchLanguage(tags...))
}

// From an en-US Sprintf() format, translate to string.
func From(key message.Reference, args ...any) string {
	return printer.Sprintf(key, args...)
}
