// Package i18n formats user-facing error messages per locale.
package i18n

import (
	"strings"
	"text/template"
)

// Code mirrors the machine-readable error code as a plain string.
// Codes are duplicated as strings here to avoid an import cycle with
// the parent errors package.
type Code = string

// Catalog holds localized message templates keyed by error code.
type Catalog struct {
	locale   string
	messages map[Code]string
}

// Locale returns the catalog locale tag.
func (c *Catalog) Locale() string {
	if c == nil {
		return ""
	}
	return c.locale
}

// Format renders the message for code, substituting {{.Key}} metadata fields.
// Unknown codes fall back to a generic message so formatting never fails.
func (c *Catalog) Format(code Code, metadata map[string]string) string {
	if c == nil {
		return genericMessage
	}
	raw, ok := c.messages[code]
	if !ok {
		return genericMessage
	}
	if len(metadata) == 0 || !strings.Contains(raw, "{{") {
		return raw
	}

	tmpl, err := template.New(code).Parse(raw)
	if err != nil {
		return raw
	}
	var b strings.Builder
	if err := tmpl.Execute(&b, metadata); err != nil {
		return raw
	}
	return b.String()
}

const genericMessage = "Something went wrong. Please try again."

// GetCatalog returns the message catalog for a locale, defaulting to en-US.
func GetCatalog(locale string) *Catalog {
	switch strings.ToLower(strings.TrimSpace(locale)) {
	case "en-us", "en", "":
		return enUSCatalog
	default:
		return enUSCatalog
	}
}
