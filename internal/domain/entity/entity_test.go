package entity_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/YudheerRM/bidding-insights/internal/domain/entity"
)

func TestTender_AcceptsApplications_CaseInsensitive(t *testing.T) {
	for _, status := range []string{"open", "Open", "OPEN", " oPeN "} {
		tender := entity.Tender{Status: entity.TenderStatus(status)}
		assert.True(t, tender.AcceptsApplications(), status)
	}
	for _, status := range []string{"Closed", "AWARDED", "draft", "under_review", "opened", ""} {
		tender := entity.Tender{Status: entity.TenderStatus(status)}
		assert.False(t, tender.AcceptsApplications(), status)
	}
}

func TestTenderApplication_Withdrawable(t *testing.T) {
	for _, st := range entity.ApplicationStatuses {
		app := entity.TenderApplication{Status: st}
		assert.Equal(t, st == entity.ApplicationStatusPending, app.Withdrawable(), string(st))
	}
}

func TestParseRole(t *testing.T) {
	r, ok := entity.ParseRole("Government_Official")
	assert.True(t, ok)
	assert.Equal(t, entity.RoleGovernmentOfficial, r)

	_, ok = entity.ParseRole("superuser")
	assert.False(t, ok)
}

func TestParseDocumentKind(t *testing.T) {
	k, ok := entity.ParseDocumentKind("report")
	assert.True(t, ok)
	assert.Equal(t, "tender-reports", k.Folder())

	_, ok = entity.ParseDocumentKind("invoice")
	assert.False(t, ok)
}

func TestNormalizeEmail(t *testing.T) {
	assert.Equal(t, "a@b.com", entity.NormalizeEmail("  A@B.com "))
}
