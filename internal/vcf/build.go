package vcf

import (
	"errors"
	"fmt"
	"strings"

	"github.com/emersion/go-vcard"
	"github.com/google/uuid"
)

// ErrEmptyName у карточки нет ни FN, ни имени, ни фамилии
var ErrEmptyName = errors.New("vcard needs a full name, given name or family name")

// Card поля, из которых CLI и HTTP API собирают новый контакт
type Card struct {
	UID          string
	FullName     string
	GivenName    string
	FamilyName   string
	Organization string
	Note         string
	Emails       []string
	Phones       []string
}

// Build собирает vCard 3.0 документ
func Build(c Card) (string, error) {
	card := make(vcard.Card)
	card.SetValue(vcard.FieldVersion, "3.0")

	uid := c.UID
	if uid == "" {
		uid = uuid.NewString()
	}
	card.SetValue(vcard.FieldUID, uid)

	if err := apply(card, c); err != nil {
		return "", err
	}
	return encode(card)
}

// Merge переносит непустые поля c в существующий документ.
// Остальные свойства документа сохраняются.
func Merge(document string, c Card) (string, error) {
	card, err := vcard.NewDecoder(strings.NewReader(document)).Decode()
	if err != nil {
		return "", fmt.Errorf("failed to decode vcard: %w", err)
	}

	nameChanged := c.GivenName != "" || c.FamilyName != ""
	if nameChanged {
		if n := card.Name(); n != nil {
			if c.GivenName == "" {
				c.GivenName = n.GivenName
			}
			if c.FamilyName == "" {
				c.FamilyName = n.FamilyName
			}
		}
	}
	if c.FullName == "" && !nameChanged {
		c.FullName = card.PreferredValue(vcard.FieldFormattedName)
	}

	if err := apply(card, c); err != nil {
		return "", err
	}
	return encode(card)
}

func apply(card vcard.Card, c Card) error {
	fullName := strings.TrimSpace(c.FullName)
	if fullName == "" {
		fullName = strings.TrimSpace(strings.TrimSpace(c.GivenName) + " " + strings.TrimSpace(c.FamilyName))
	}
	if fullName == "" {
		if fn := card.PreferredValue(vcard.FieldFormattedName); fn != "" {
			fullName = fn
		} else {
			return ErrEmptyName
		}
	}
	card.SetValue(vcard.FieldFormattedName, fullName)

	if c.GivenName != "" || c.FamilyName != "" {
		card.SetName(&vcard.Name{
			GivenName:  strings.TrimSpace(c.GivenName),
			FamilyName: strings.TrimSpace(c.FamilyName),
		})
	}

	if len(c.Emails) > 0 {
		delete(card, vcard.FieldEmail)
		for _, e := range c.Emails {
			if e = strings.TrimSpace(e); e != "" {
				card.AddValue(vcard.FieldEmail, e)
			}
		}
	}
	if len(c.Phones) > 0 {
		delete(card, vcard.FieldTelephone)
		for _, p := range c.Phones {
			if p = strings.TrimSpace(p); p != "" {
				card.AddValue(vcard.FieldTelephone, p)
			}
		}
	}
	if c.Organization != "" {
		card.SetValue(vcard.FieldOrganization, c.Organization)
	}
	if c.Note != "" {
		card.SetValue(vcard.FieldNote, c.Note)
	}
	return nil
}

func encode(card vcard.Card) (string, error) {
	var b strings.Builder
	if err := vcard.NewEncoder(&b).Encode(card); err != nil {
		return "", fmt.Errorf("failed to encode vcard: %w", err)
	}
	return b.String(), nil
}
