// Package vcf извлекает поля поиска из vCard документов и собирает новые документы.
// Сам документ для синхронизации остаётся непрозрачным.
package vcf

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/emersion/go-vcard"
	"github.com/iudanet/carddavsync/internal/models"
	"golang.org/x/text/unicode/norm"
)

// MinWordLength минимальная длина слова в индексе
const MinWordLength = 3

// Extract разбирает документ и возвращает поля индекса.
// Name берётся из FN, затем из N, затем из первого email.
func Extract(document string) (models.IndexFields, error) {
	card, err := vcard.NewDecoder(strings.NewReader(document)).Decode()
	if err != nil {
		return models.IndexFields{}, fmt.Errorf("failed to decode vcard: %w", err)
	}

	var idx models.IndexFields
	if n := card.Name(); n != nil {
		idx.FirstName = strings.TrimSpace(n.GivenName)
		idx.Surname = strings.TrimSpace(n.FamilyName)
	}

	var emails []string
	for _, e := range card.Values(vcard.FieldEmail) {
		if e = strings.TrimSpace(e); e != "" {
			emails = append(emails, e)
		}
	}
	idx.Email = strings.Join(emails, ", ")

	idx.Name = strings.TrimSpace(card.PreferredValue(vcard.FieldFormattedName))
	if idx.Name == "" {
		idx.Name = strings.TrimSpace(idx.FirstName + " " + idx.Surname)
	}
	if idx.Name == "" && len(emails) > 0 {
		idx.Name = emails[0]
	}

	idx.Words = Words(
		idx.Name,
		idx.FirstName,
		idx.Surname,
		idx.Email,
		card.PreferredValue(vcard.FieldNickname),
		card.PreferredValue(vcard.FieldOrganization),
	)
	return idx, nil
}

// Words возвращает уникальные нормализованные слова длиной от MinWordLength,
// разделённые пробелом, в порядке первого появления.
func Words(parts ...string) string {
	seen := make(map[string]struct{})
	var words []string
	for _, part := range parts {
		for _, w := range strings.FieldsFunc(Normalize(part), isSeparator) {
			if len([]rune(w)) < MinWordLength {
				continue
			}
			if _, ok := seen[w]; ok {
				continue
			}
			seen[w] = struct{}{}
			words = append(words, w)
		}
	}
	return strings.Join(words, " ")
}

// Normalize приводит строку к нижнему регистру и убирает диакритику
func Normalize(s string) string {
	decomposed := norm.NFKD.String(s)
	var b strings.Builder
	b.Grow(len(decomposed))
	for _, r := range decomposed {
		if unicode.Is(unicode.Mn, r) {
			continue
		}
		b.WriteRune(unicode.ToLower(r))
	}
	return b.String()
}

func isSeparator(r rune) bool {
	return !unicode.IsLetter(r) && !unicode.IsDigit(r)
}
