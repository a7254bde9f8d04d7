package models

// Audience names a cohort of waiting-list entrants an organizer can target.
// It is derived from the (status, responded) pair of each entry and is never
// stored on the entry itself.
type Audience string

const (
	AudienceWaiting   Audience = "waiting"
	AudienceChosen    Audience = "chosen"
	AudienceSelected  Audience = "selected"
	AudienceCancelled Audience = "cancelled"

	// AudienceRemoved is only used by the single-recipient path when an
	// organizer removes an entrant; it never matches a snapshot query.
	AudienceRemoved Audience = "removed"
)

// Valid reports whether the audience is one an organizer may broadcast to.
func (a Audience) Valid() bool {
	switch a {
	case AudienceWaiting, AudienceChosen, AudienceSelected, AudienceCancelled:
		return true
	default:
		return false
	}
}

// Matches reports whether the entry belongs to the target audience.
//
// The cohorts are mutually exclusive: for any entry at most one audience
// matches. Entries whose status falls outside the known lifecycle values
// match nothing. A missing responded value is treated the same as pending.
//
// "selected" and "cancelled" accept both representations the data has used:
// the current chosen+responded pair and a status flipped directly to the
// terminal value.
func (a Audience) Matches(entry WaitingListEntry) bool {
	switch a {
	case AudienceWaiting:
		return entry.Status == StatusWaiting
	case AudienceChosen:
		return entry.Status == StatusChosen &&
			entry.Responded != RespondedAccepted &&
			entry.Responded != RespondedDeclined
	case AudienceSelected:
		return (entry.Status == StatusChosen && entry.Responded == RespondedAccepted) ||
			entry.Status == StatusSelected
	case AudienceCancelled:
		return (entry.Status == StatusChosen && entry.Responded == RespondedDeclined) ||
			entry.Status == StatusCancelled
	default:
		return false
	}
}

// InboxType maps the audience to the inbox item type entrant clients render.
func (a Audience) InboxType() string {
	switch a {
	case AudienceChosen:
		return "invite"
	case AudienceSelected:
		return "selected_notice"
	case AudienceCancelled:
		return "cancelled_notice"
	case AudienceRemoved:
		return "removed_notice"
	default:
		return "broadcast"
	}
}
