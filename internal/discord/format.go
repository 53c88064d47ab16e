package discord

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// printer renders large numbers with thousands separators in embeds.
var printer = message.NewPrinter(language.English)

func formatInt(v int64) string {
	return printer.Sprintf("%d", v)
}
