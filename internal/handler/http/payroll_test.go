package http

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseReportRequest(t *testing.T) {
	utc := time.UTC

	t.Run("explicit range", func(t *testing.T) {
		r := httptest.NewRequest("GET", "/api/v1/payroll/report?start_date=2025-08-01&end_date=2025-08-31", nil)

		req, err := parseReportRequest(r, utc)
		require.NoError(t, err)
		assert.Equal(t, time.Date(2025, 8, 1, 0, 0, 0, 0, utc), req.Start)
		assert.Equal(t, time.Date(2025, 8, 31, 0, 0, 0, 0, utc), req.End)
		assert.Nil(t, req.BranchID)
		assert.False(t, req.ReferenceDate.IsZero())
	})

	t.Run("missing range defaults to current month", func(t *testing.T) {
		r := httptest.NewRequest("GET", "/api/v1/payroll/report", nil)

		req, err := parseReportRequest(r, utc)
		require.NoError(t, err)

		now := time.Now().In(utc)
		wantStart, wantEnd := defaultPeriod(now)
		assert.Equal(t, wantStart, req.Start)
		assert.Equal(t, wantEnd, req.End)
	})

	t.Run("branch filter", func(t *testing.T) {
		r := httptest.NewRequest("GET", "/api/v1/payroll/report?branch_id=3", nil)

		req, err := parseReportRequest(r, utc)
		require.NoError(t, err)
		require.NotNil(t, req.BranchID)
		assert.Equal(t, int64(3), *req.BranchID)
	})

	t.Run("bad date", func(t *testing.T) {
		r := httptest.NewRequest("GET", "/api/v1/payroll/report?start_date=31-08-2025", nil)

		_, err := parseReportRequest(r, utc)
		assert.ErrorIs(t, err, errInvalidDate)
	})

	t.Run("bad branch id", func(t *testing.T) {
		r := httptest.NewRequest("GET", "/api/v1/payroll/report?branch_id=main", nil)

		_, err := parseReportRequest(r, utc)
		assert.ErrorIs(t, err, errInvalidBranch)
	})
}

func TestDefaultPeriod(t *testing.T) {
	now := time.Date(2025, 2, 14, 10, 0, 0, 0, time.UTC)
	start, end := defaultPeriod(now)
	assert.Equal(t, time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2025, 2, 28, 0, 0, 0, 0, time.UTC), end)
}
