package address

import (
	"time"

	"contacts/internal/domain/entity"
)

// SelectMostRelevant picks the address shown for a contact in lists and searches.
// Candidates are addresses with no end date or an end date after today. The first
// rule that matches wins: the primary address, then the mail address, then the
// latest start date among addresses that have one, then the latest created.
// Every tie is broken by latest created time, then by highest id, so the result
// depends only on the address set. Returns nil when no address is in force.
func SelectMostRelevant(addresses []*entity.ContactAddress, now time.Time) *entity.ContactAddress {
	candidates := make([]*entity.ContactAddress, 0, len(addresses))
	for _, a := range addresses {
		if a != nil && a.InForce(now) {
			candidates = append(candidates, a)
		}
	}
	if len(candidates) == 0 {
		return nil
	}

	if best := latestCreated(candidates, func(a *entity.ContactAddress) bool { return a.PrimaryAddress }); best != nil {
		return best
	}
	if best := latestCreated(candidates, func(a *entity.ContactAddress) bool { return a.MailFlag }); best != nil {
		return best
	}
	if best := latestStarted(candidates); best != nil {
		return best
	}

	return latestCreated(candidates, func(*entity.ContactAddress) bool { return true })
}

func latestCreated(addresses []*entity.ContactAddress, match func(*entity.ContactAddress) bool) *entity.ContactAddress {
	var best *entity.ContactAddress
	for _, a := range addresses {
		if !match(a) {
			continue
		}
		if best == nil || createdAfter(a, best) {
			best = a
		}
	}

	return best
}

func latestStarted(addresses []*entity.ContactAddress) *entity.ContactAddress {
	var best *entity.ContactAddress
	for _, a := range addresses {
		if a.StartDate == nil {
			continue
		}
		switch {
		case best == nil:
			best = a
		case a.StartDate.After(*best.StartDate):
			best = a
		case a.StartDate.Equal(*best.StartDate) && createdAfter(a, best):
			best = a
		}
	}

	return best
}

func createdAfter(a, b *entity.ContactAddress) bool {
	if a.CreatedTime.Equal(b.CreatedTime) {
		return a.ID > b.ID
	}

	return a.CreatedTime.After(b.CreatedTime)
}
