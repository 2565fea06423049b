// Package address holds the per-contact address rules: flag exclusivity on write
// and most-relevant selection on read. Both are pure functions over an address set.
package address

import "contacts/internal/domain/entity"

// Correction clears flags on one sibling address. A sibling that has to give up
// both flags gets a single correction with both set, so it is written once.
type Correction struct {
	Address      *entity.ContactAddress
	ClearPrimary bool
	ClearMail    bool
}

// Apply clears the planned flags on the sibling.
func (c Correction) Apply() {
	if c.ClearPrimary {
		c.Address.PrimaryAddress = false
	}
	if c.ClearMail {
		c.Address.MailFlag = false
	}
}

// PlanExclusivity works out which siblings must give up their primary or mail flag
// now that writtenID holds wantsPrimary/wantsMail. A false wish never touches siblings.
// The written address itself is never corrected. Order follows the input order.
func PlanExclusivity(addresses []*entity.ContactAddress, writtenID int64, wantsPrimary, wantsMail bool) []Correction {
	if !wantsPrimary && !wantsMail {
		return nil
	}

	var corrections []Correction
	for _, sibling := range addresses {
		if sibling == nil || sibling.ID == writtenID {
			continue
		}

		c := Correction{
			Address:      sibling,
			ClearPrimary: wantsPrimary && sibling.PrimaryAddress,
			ClearMail:    wantsMail && sibling.MailFlag,
		}
		if c.ClearPrimary || c.ClearMail {
			corrections = append(corrections, c)
		}
	}

	return corrections
}
