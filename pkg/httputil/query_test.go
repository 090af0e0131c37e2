package httputil_test

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/bytedance/sonic"
	"github.com/limbo/healthlog/pkg/httputil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTime(t *testing.T) {
	testCases := []struct {
		Desc     string
		Value    string
		Expected time.Time
		Error    bool
	}{
		{
			Desc:     "plain date",
			Value:    "2024-03-05",
			Expected: time.Date(2024, time.March, 5, 0, 0, 0, 0, time.UTC),
		},
		{
			Desc:     "rfc3339",
			Value:    "2024-03-05T10:15:00Z",
			Expected: time.Date(2024, time.March, 5, 10, 15, 0, 0, time.UTC),
		},
		{
			Desc:  "garbage",
			Value: "05/03/2024",
			Error: true,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			got, err := httputil.ParseTime(tc.Value)
			if tc.Error {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.True(t, tc.Expected.Equal(got))
		})
	}
}

func TestOptionalTime(t *testing.T) {
	q := url.Values{"from": {"2024-01-02"}, "bad": {"x"}}

	got, err := httputil.OptionalTime(q, "from")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, 2, got.Day())

	got, err = httputil.OptionalTime(q, "to")
	assert.NoError(t, err)
	assert.Nil(t, got)

	_, err = httputil.OptionalTime(q, "bad")
	assert.Error(t, err)

	fallback := time.Date(2020, time.May, 1, 0, 0, 0, 0, time.UTC)
	tm, err := httputil.TimeOr(q, "to", fallback)
	require.NoError(t, err)
	assert.Equal(t, fallback, tm)

	day := time.Date(2024, time.January, 2, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2024, time.January, 2, 23, 59, 59, 0, time.UTC), httputil.EndOfDayIfDate("2024-01-02", day))
	assert.Equal(t, day, httputil.EndOfDayIfDate("2024-01-02T00:00:00Z", day))
}

func TestWriteErrorResponse(t *testing.T) {
	rr := httptest.NewRecorder()
	httputil.WriteErrorResponse(rr, http.StatusNotFound, "activity doesn't exist", nil)
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))

	var resp httputil.ErrorResponse
	require.NoError(t, sonic.ConfigDefault.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, httputil.ErrorResponse{Code: http.StatusNotFound, Message: "activity doesn't exist"}, resp)
}
