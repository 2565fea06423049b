package pubsub

import (
	"encoding/json"
	"strconv"
	"time"

	"contacts/internal/domain/entity"

	"github.com/pkg/errors"
)

// eventMessage is the JSON body published for every outbound event.
type eventMessage struct {
	EventType             string                `json:"eventType"`
	AdditionalInformation additionalInformation `json:"additionalInformation"`
	PersonReference       personReference       `json:"personReference"`
	OccurredAt            string                `json:"occurredAt"`
	Version               string                `json:"version"`
	Description           string                `json:"description"`
}

type additionalInformation struct {
	EntityID int64  `json:"identifier"`
	Source   string `json:"source"`
}

type personReference struct {
	Identifiers []personIdentifier `json:"identifiers"`
}

type personIdentifier struct {
	Type  string `json:"type"`
	Value string `json:"value"`
}

func encodeEvent(event *entity.OutboundEvent) ([]byte, error) {
	identifiers := []personIdentifier{
		{Type: "DPS_CONTACT_ID", Value: strconv.FormatInt(event.PersonReference.DpsContactID, 10)},
	}
	if event.PersonReference.NomsNumber != nil {
		identifiers = append(identifiers, personIdentifier{Type: "NOMS", Value: *event.PersonReference.NomsNumber})
	}

	data, err := json.Marshal(eventMessage{
		EventType: string(event.Kind),
		AdditionalInformation: additionalInformation{
			EntityID: event.EntityID,
			Source:   string(event.Source),
		},
		PersonReference: personReference{Identifiers: identifiers},
		OccurredAt:      event.OccurredAt.UTC().Format(time.RFC3339),
		Version:         "1",
		Description:     "A " + string(event.Kind) + " event was raised",
	})
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return data, nil
}

// eventAttributes are the message attributes subscribers filter on.
func eventAttributes(event *entity.OutboundEvent) map[string]string {
	return map[string]string{
		"eventType": string(event.Kind),
		"source":    string(event.Source),
		"eventId":   event.ID.String(),
	}
}

// orderingKey keeps one contact's events in commit order on ordered subscriptions.
func orderingKey(event *entity.OutboundEvent) string {
	return "contact-" + strconv.FormatInt(event.PersonReference.DpsContactID, 10)
}
