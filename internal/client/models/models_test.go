package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestThreadView_Lookups(t *testing.T) {
	v := &ThreadView{Participants: []Participant{{UserID: "buyer"}, {UserID: "seller", PublicKey: "pkS"}}}

	p, ok := v.Counterpart("buyer")
	assert.True(t, ok)
	assert.Equal(t, "seller", p.UserID)

	p, ok = v.Participant("seller")
	assert.True(t, ok)
	assert.Equal(t, "pkS", p.PublicKey)

	_, ok = v.Participant("stranger")
	assert.False(t, ok)

	_, ok = (&ThreadView{Participants: []Participant{{UserID: "solo"}}}).Counterpart("solo")
	assert.False(t, ok)
}
