package tenderscan_test

import (
	"testing"
	"time"

	"github.com/fwojciec/tenderscan"
	"github.com/stretchr/testify/assert"
)

func TestFilingRecord_FormattedDate(t *testing.T) {
	t.Parallel()

	t.Run("formats known date", func(t *testing.T) {
		t.Parallel()

		r := &tenderscan.FilingRecord{Date: time.Date(2021, time.March, 15, 0, 0, 0, 0, time.UTC)}

		assert.True(t, r.HasDate())
		assert.Equal(t, "2021-03-15", r.FormattedDate())
	})

	t.Run("unknown date is blank", func(t *testing.T) {
		t.Parallel()

		r := &tenderscan.FilingRecord{}

		assert.False(t, r.HasDate())
		assert.Empty(t, r.FormattedDate())
	})
}

func TestRecordFormat_Row(t *testing.T) {
	t.Parallel()

	r := &tenderscan.FilingRecord{
		Identifier: "0000320193",
		Date:       time.Date(2021, time.March, 15, 0, 0, 0, 0, time.UTC),
		URL:        "https://www.sec.gov/Archives/edgar/data/320193/0001193125-21-000001-index.htm",
	}

	t.Run("default format quotes identifier once on each side", func(t *testing.T) {
		t.Parallel()

		row := tenderscan.DefaultRecordFormat.Row(r)

		assert.Equal(t, []string{`"0000320193"`, "2021-03-15", r.URL}, row)
	})

	t.Run("empty quote leaves identifier bare", func(t *testing.T) {
		t.Parallel()

		row := tenderscan.RecordFormat{}.Row(r)

		assert.Equal(t, "0000320193", row[0])
	})
}
