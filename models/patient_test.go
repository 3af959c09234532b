package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string { return &s }

func TestPatient_IsAnonymized(t *testing.T) {
	assert.False(t, Patient{}.IsAnonymized())
	assert.True(t, Patient{AnonymizedName: strPtr("ANON_ABCDEF")}.IsAnonymized())
	// contact alone does not count
	assert.False(t, Patient{AnonymizedContact: strPtr("XXX-XXX-1234")}.IsAnonymized())
}

func TestPatient_CheckAnonymizationInvariant(t *testing.T) {
	tests := []struct {
		name    string
		patient Patient
		wantErr bool
	}{
		{"none set", Patient{}, false},
		{"both set", Patient{AnonymizedName: strPtr("a"), AnonymizedContact: strPtr("b")}, false},
		{"only name", Patient{AnonymizedName: strPtr("a")}, true},
		{"only contact", Patient{AnonymizedContact: strPtr("b")}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.patient.CheckAnonymizationInvariant()
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrPartialAnonymization)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestRole_IsValid(t *testing.T) {
	for _, r := range Roles {
		assert.True(t, r.IsValid())
	}
	assert.False(t, Role("nurse").IsValid())
	assert.False(t, Role("").IsValid())
}

func TestBatchResult_Attempted(t *testing.T) {
	b := BatchResult{Succeeded: []int64{1, 2}, Failed: []int64{3}}
	assert.Equal(t, 3, b.Attempted())
	assert.Equal(t, 0, BatchResult{}.Attempted())
}

func TestNewAppBuildInfo_DefaultsToNotAvailable(t *testing.T) {
	info := NewAppBuildInfo("", "2026-01-01", "")
	assert.Equal(t, "N/A", info.BuildVersion())
	assert.Equal(t, "2026-01-01", info.BuildDate())
	assert.Equal(t, "N/A", info.BuildCommit())
	assert.Contains(t, info.String(), "Build date: 2026-01-01")
}
