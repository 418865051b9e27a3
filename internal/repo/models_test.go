package repo

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimestamp_Scan(t *testing.T) {
	want := time.Date(2021, 11, 26, 6, 22, 19, 0, time.UTC)

	testCases := []struct {
		name string
		src  any
	}{
		{name: "time", src: want.In(time.FixedZone("MSK", 3*3600))},
		{name: "rfc3339", src: "2021-11-26T06:22:19Z"},
		{name: "sqlite", src: "2021-11-26 09:22:19+03:00"},
		{name: "go string", src: []byte("2021-11-26 06:22:19 +0000 UTC")},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var ts timestamp
			require.NoError(t, ts.Scan(tc.src))
			assert.Equal(t, want, ts.Time)
		})
	}

	var ts timestamp
	assert.Error(t, ts.Scan("yesterday"))
	assert.Error(t, ts.Scan(42))
}
