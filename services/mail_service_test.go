package services

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefectNoticeBody(t *testing.T) {
	body := DefectNoticeBody(3, 10)

	assert.True(t, strings.HasPrefix(body, "Dear Customer,"))
	assert.Contains(t, body, "3 out of the 10 pens")
	assert.Contains(t, body, "cancel the shipment")
}

func TestSendSkipsWhenSMTPDisabled(t *testing.T) {
	m := &Mailer{} // empty host disables outgoing mail

	assert.NoError(t, m.SendDefectNotice("customer@example.com", 1, 5))
	assert.NoError(t, m.SendPurchaseOrderNotice("vendor@example.com", "obsidian", 500, 6000))
}
