package i18n

import "testing"

func TestGetCatalogDefaultsToEnUS(t *testing.T) {
	t.Parallel()

	for _, locale := range []string{"", "en-US", "en", "xx-YY"} {
		catalog := GetCatalog(locale)
		if catalog.Locale() != "en-US" {
			t.Fatalf("locale %q: expected en-US catalog, got %q", locale, catalog.Locale())
		}
	}
}

func TestFormatSubstitutesMetadata(t *testing.T) {
	t.Parallel()

	msg := GetCatalog("en-US").Format(CodeDemandInvalidStatus, map[string]string{"Status": "archived"})
	if msg != "Invalid task status: archived" {
		t.Fatalf("unexpected formatted message: %q", msg)
	}
}

func TestFormatUnknownCodeFallsBack(t *testing.T) {
	t.Parallel()

	msg := GetCatalog("en-US").Format("NO_SUCH_CODE", nil)
	if msg != genericMessage {
		t.Fatalf("expected generic fallback, got %q", msg)
	}
}
