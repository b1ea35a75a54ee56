package pagesift

import (
	"regexp"
	"sort"
	"strings"
)

// Contacts holds contact information extracted from page text.
type Contacts struct {
	Emails []string `json:"emails"`
	Phones []string `json:"phones"`
}

// PageContacts pairs a page URL with the contacts found on it.
type PageContacts struct {
	URL      string   `json:"url"`
	Contacts Contacts `json:"contacts"`
}

var (
	emailRe = regexp.MustCompile(`[a-zA-Z0-9_.+-]+@[a-zA-Z0-9-]+\.[a-zA-Z0-9-.]+`)

	// Optional country code, area code with or without parentheses,
	// then a 3-4 local number with common separators.
	phoneRe = regexp.MustCompile(`(?:\+?\d{1,3}[-.\s]?)?(?:\(?\d{3}\)?[-.\s]?)\d{3}[-.\s]?\d{4}`)
)

// ExtractContacts finds email addresses and phone numbers in text.
// Emails are normalized (trimmed, trailing dot stripped, lowercased);
// phones are trimmed. Duplicates within the text are preserved.
func ExtractContacts(text string) Contacts {
	contacts := Contacts{
		Emails: []string{},
		Phones: []string{},
	}
	for _, email := range emailRe.FindAllString(text, -1) {
		contacts.Emails = append(contacts.Emails, normalizeEmail(email))
	}
	for _, phone := range phoneRe.FindAllString(text, -1) {
		contacts.Phones = append(contacts.Phones, strings.TrimSpace(phone))
	}
	return contacts
}

// ExtractPageContacts extracts contacts from a page's text content.
func ExtractPageContacts(page *Page) PageContacts {
	return PageContacts{
		URL:      page.URL,
		Contacts: ExtractContacts(page.TextContent),
	}
}

// AggregateContacts combines contacts from all pages into one set with
// duplicates removed. Results are sorted for stable output.
func AggregateContacts(pages []*Page) Contacts {
	emails := make(map[string]struct{})
	phones := make(map[string]struct{})
	for _, page := range pages {
		c := ExtractContacts(page.TextContent)
		for _, e := range c.Emails {
			emails[e] = struct{}{}
		}
		for _, p := range c.Phones {
			phones[p] = struct{}{}
		}
	}
	return Contacts{
		Emails: sortedKeys(emails),
		Phones: sortedKeys(phones),
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSuffix(strings.TrimSpace(email), "."))
}

func sortedKeys(set map[string]struct{}) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
