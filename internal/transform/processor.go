// Package transform implements the record cleaning core: email validation,
// name and address normalization, and id-based deduplication.
package transform

import (
	"strings"

	"userpipe/internal/logger"
	"userpipe/internal/models"
)

// Processor cleans raw user records into the fixed output schema. It holds
// no state across calls; every invocation is independent.
type Processor struct {
	log    *logger.Logger
	emails *EmailValidator
}

// NewProcessor creates a new processor instance.
func NewProcessor(log *logger.Logger) *Processor {
	return &Processor{
		log:    log,
		emails: NewEmailValidator(),
	}
}

// Transform runs the three cleaning stages over the full input: the email
// validity filter, deduplication by id, and the reshape into CleanUser
// records. A record that fails to reshape is skipped and logged; a single
// malformed record never aborts the batch.
func (p *Processor) Transform(users []models.RawUser) []models.CleanUser {
	if len(users) == 0 {
		p.log.Warn("no users data provided for transformation")

		return nil
	}

	p.log.Info("starting transformation", "users", len(users))

	valid := p.FilterValidEmails(users)
	p.log.Info("users with valid emails", "count", len(valid))

	unique := p.DedupeByID(valid)
	p.log.Info("users after removing duplicates", "count", len(unique))

	transformed := make([]models.CleanUser, 0, len(unique))

	for _, user := range unique {
		clean, err := p.reshape(user)
		if err != nil {
			p.log.Error("error transforming user", "id", user.ID(), "error", err)

			continue
		}

		transformed = append(transformed, clean)
	}

	p.log.Info("successfully transformed users", "count", len(transformed))

	return transformed
}

// FilterValidEmails keeps only records whose email field passes validation.
// A missing email counts as empty text and fails.
func (p *Processor) FilterValidEmails(users []models.RawUser) []models.RawUser {
	var valid []models.RawUser

	for _, user := range users {
		if p.emails.Validate(user.Field("email")) {
			valid = append(valid, user)
		} else {
			p.log.Info("removing user with invalid email", "email", user.Field("email"))
		}
	}

	return valid
}

// reshape builds the output record: id rendered verbatim as text, name
// normalized, email trimmed (already validated), and the address components
// joined into full_address.
func (p *Processor) reshape(user models.RawUser) (models.CleanUser, error) {
	id, err := models.FormatID(user.ID())
	if err != nil {
		return models.CleanUser{}, err
	}

	return models.CleanUser{
		ID:          id,
		Name:        NormalizeName(user.Field("name")),
		Email:       strings.TrimSpace(user.Text("email")),
		FullAddress: FullAddress(user.Field("address")),
	}, nil
}
