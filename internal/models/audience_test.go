package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func entry(status EntrantStatus, responded RespondedState) WaitingListEntry {
	return WaitingListEntry{EventID: "ev-1", EntrantID: "u-1", Status: status, Responded: responded}
}

func TestAudienceMatchesTable(t *testing.T) {
	cases := []struct {
		name     string
		entry    WaitingListEntry
		audience Audience
		want     bool
	}{
		{"waiting matches waiting", entry(StatusWaiting, ""), AudienceWaiting, true},
		{"waiting ignores leftover responded", entry(StatusWaiting, RespondedDeclined), AudienceWaiting, true},
		{"chosen pending is chosen", entry(StatusChosen, RespondedPending), AudienceChosen, true},
		{"chosen without responded is chosen", entry(StatusChosen, ""), AudienceChosen, true},
		{"chosen accepted is not chosen", entry(StatusChosen, RespondedAccepted), AudienceChosen, false},
		{"chosen declined is not chosen", entry(StatusChosen, RespondedDeclined), AudienceChosen, false},
		{"chosen accepted is selected", entry(StatusChosen, RespondedAccepted), AudienceSelected, true},
		{"direct selected status", entry(StatusSelected, ""), AudienceSelected, true},
		{"chosen declined is cancelled", entry(StatusChosen, RespondedDeclined), AudienceCancelled, true},
		{"direct cancelled status", entry(StatusCancelled, ""), AudienceCancelled, true},
		{"waiting is not chosen", entry(StatusWaiting, ""), AudienceChosen, false},
		{"unknown status matches nothing", entry("banned", ""), AudienceWaiting, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.audience.Matches(tc.entry))
		})
	}
}

func TestAudienceMatchesExclusive(t *testing.T) {
	audiences := []Audience{AudienceWaiting, AudienceChosen, AudienceSelected, AudienceCancelled}
	statuses := []EntrantStatus{StatusWaiting, StatusChosen, StatusSelected, StatusCancelled, "banned", ""}
	responses := []RespondedState{"", RespondedPending, RespondedAccepted, RespondedDeclined}

	for _, status := range statuses {
		for _, responded := range responses {
			e := entry(status, responded)
			matches := 0
			for _, a := range audiences {
				if a.Matches(e) {
					matches++
				}
			}
			require.LessOrEqual(t, matches, 1, "entry %q/%q matched %d audiences", status, responded, matches)
		}
	}
}

func TestAudienceValid(t *testing.T) {
	assert.True(t, AudienceWaiting.Valid())
	assert.True(t, AudienceCancelled.Valid())
	assert.False(t, AudienceRemoved.Valid())
	assert.False(t, Audience("everyone").Valid())
}

func TestAudienceInboxType(t *testing.T) {
	assert.Equal(t, "invite", AudienceChosen.InboxType())
	assert.Equal(t, "selected_notice", AudienceSelected.InboxType())
	assert.Equal(t, "cancelled_notice", AudienceCancelled.InboxType())
	assert.Equal(t, "removed_notice", AudienceRemoved.InboxType())
	assert.Equal(t, "broadcast", AudienceWaiting.InboxType())
}
