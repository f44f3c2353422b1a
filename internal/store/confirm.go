package store

import "golang.org/x/text/language"

// DeleteAll is gated on typing one of exactly two fixed sentences. The
// literal-string contract is deliberate: a caller must spell out the
// acknowledgement, in the deployment's primary locale or in English.
const (
	// ConfirmationTR is the primary-locale acknowledgement sentence.
	ConfirmationTR = "Tüm verileri silmeyi onaylıyorum"

	// ConfirmationEN is the English acknowledgement sentence.
	ConfirmationEN = "I confirm deleting all data"
)

var confirmationTags = []language.Tag{
	language.Turkish, // fallback
	language.English,
}

var confirmationMatcher = language.NewMatcher(confirmationTags)

// ConfirmationFor returns the acknowledgement sentence to surface for the
// given BCP 47 locale. Unknown or unparsable locales fall back to the
// primary locale. Both sentences remain accepted by DeleteAll regardless
// of locale; this only selects which one to show in prompts and errors.
func ConfirmationFor(locale string) string {
	tag, err := language.Parse(locale)
	if err != nil {
		return ConfirmationTR
	}
	_, idx, _ := confirmationMatcher.Match(tag)
	if confirmationTags[idx] == language.English {
		return ConfirmationEN
	}
	return ConfirmationTR
}

func validConfirmation(s string) bool {
	return s == ConfirmationTR || s == ConfirmationEN
}
