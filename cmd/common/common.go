// Package common contains shared functionality for command handlers
package common

import (
	"fjacquet/subscan/internal/logging"
	"fjacquet/subscan/internal/models"
	"fjacquet/subscan/internal/store"
)

// AddSubscription validates the form, converts it to a subscription record,
// and appends it to the store. The existing records are preserved.
func AddSubscription(s *store.SubscriptionStore, form models.SubscriptionForm, log logging.Logger) (models.Subscription, error) {
	sub, err := form.Subscription()
	if err != nil {
		log.Error("Subscription form failed validation", logging.Field{Key: "error", Value: err})
		return models.Subscription{}, err
	}

	subs, err := s.Load()
	if err != nil {
		return models.Subscription{}, err
	}

	subs = append(subs, sub)
	if err := s.Save(subs); err != nil {
		return models.Subscription{}, err
	}

	log.Info("Added subscription",
		logging.Field{Key: "name", Value: sub.Name},
		logging.Field{Key: "amount", Value: sub.Amount.String()},
		logging.Field{Key: "cycle", Value: string(sub.Cycle)},
		logging.Field{Key: "count", Value: len(subs)})

	return sub, nil
}
