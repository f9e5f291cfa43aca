package loader

import (
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ukaji3/docreport-go/pkg/docreport/internal/fixture"
	"github.com/ukaji3/docreport-go/pkg/docreport/models"
	"github.com/xuri/excelize/v2"
)

func writeFixture(t *testing.T, rows []fixture.Row) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "register.xlsx")
	require.NoError(t, fixture.Write(path, rows))
	return path
}

func TestLoad(t *testing.T) {
	path := writeFixture(t, []fixture.Row{
		{
			PowerVE: 1.5, PowerSE: 2.25, PowerEEKI: 3,
			Document: "Sąlygos", Type: "Hibridas",
			Route1: "S1", Route2: "S2",
			Received: fixture.Date(2024, time.January, 15),
			Response: fixture.Date(2024, time.January, 17),
		},
		{
			Document: "Leidimas", Type: "VE",
			Received: fixture.Date(2024, time.January, 19),
		},
	})

	ds, err := Load(path, DefaultParams())
	require.NoError(t, err)

	expectedColumns := []string{
		"Nr.",
		models.ColPowerVE, models.ColPowerSE, models.ColPowerEEKI,
		models.ColDocument, models.ColType, models.ColRoute1, models.ColRoute2,
		models.ColReceivedDate, models.ColResponseDate,
		models.ColDeadline, models.ColReceivedWeek, models.ColAnsweredWeek,
	}
	assert.Equal(t, expectedColumns, ds.Columns)
	require.Len(t, ds.Records, 2)

	first := ds.Records[0]
	assert.Equal(t, 1.5, first.PowerVE)
	assert.Equal(t, 2.25, first.PowerSE)
	assert.Equal(t, 3.0, first.PowerEEKI)
	assert.Equal(t, "Sąlygos", first.Document)
	assert.Equal(t, "Hibridas", first.Type)
	assert.Equal(t, "S1", first.Route1)
	assert.Equal(t, fixture.Date(2024, time.January, 15), first.Received)
	assert.Equal(t, fixture.Date(2024, time.January, 17), first.Response)
	assert.Equal(t, fixture.Date(2024, time.January, 29), first.Deadline)
	assert.Equal(t, 3, first.ReceivedWeek)
	assert.Equal(t, 3, first.AnsweredWeek)
	assert.Equal(t, int64(1), first.Extra["Nr."])

	second := ds.Records[1]
	assert.Equal(t, 0.0, second.PowerVE)
	assert.Equal(t, models.Missing, second.Route1)
	assert.Equal(t, models.Missing, second.Route2)
	assert.True(t, second.Response.IsZero())
	assert.False(t, second.Answered())
	assert.Equal(t, 0, second.AnsweredWeek)
	assert.Equal(t, fixture.Date(2024, time.February, 2), second.Deadline)

	// Absent dates export as 0, missing text as an empty cell.
	assert.Equal(t, 0, second.Cell(models.ColResponseDate))
	assert.Nil(t, second.Cell(models.ColRoute1))
	assert.Equal(t, 0, second.Cell(models.ColAnsweredWeek))
}

func TestLoadNormalizesMissingText(t *testing.T) {
	path := writeFixture(t, []fixture.Row{
		{Route1: "", Route2: "None", Document: "nan", Type: "Hibridas", Received: fixture.Date(2024, time.March, 4)},
		{Route1: "None", Route2: nil, Document: "Sąlygos", Received: fixture.Date(2024, time.March, 4)},
	})

	ds, err := Load(path, DefaultParams())
	require.NoError(t, err)
	require.Len(t, ds.Records, 2)

	for _, rec := range ds.Records {
		assert.Equal(t, models.Missing, rec.Route1)
		assert.Equal(t, models.Missing, rec.Route2)
	}
	assert.Equal(t, models.Missing, ds.Records[0].Document)
	assert.Equal(t, models.Missing, ds.Records[1].Type)
}

func TestLoadMissingReceivedDate(t *testing.T) {
	path := writeFixture(t, []fixture.Row{{Document: "Sąlygos"}})

	ds, err := Load(path, DefaultParams())
	require.NoError(t, err)
	require.Len(t, ds.Records, 1)

	rec := ds.Records[0]
	assert.True(t, rec.Deadline.IsZero())
	assert.Equal(t, 0, rec.ReceivedWeek)
	assert.Equal(t, 0, rec.Cell(models.ColDeadline))
}

func TestLoadCustomDeadline(t *testing.T) {
	path := writeFixture(t, []fixture.Row{{Received: fixture.Date(2024, time.January, 15)}})

	ds, err := Load(path, Params{SheetIndex: 1, DeadlineDays: 5})
	require.NoError(t, err)
	assert.Equal(t, fixture.Date(2024, time.January, 22), ds.Records[0].Deadline)
}

func TestLoadBlankHeaderColumn(t *testing.T) {
	path := filepath.Join(t.TempDir(), "register.xlsx")
	header := append([]interface{}{"Nr.", ""}, fixture.Header[1:]...)
	require.NoError(t, fixture.WriteWithHeader(path, header, func(i int, r fixture.Row) []interface{} {
		return []interface{}{
			i + 1, "note", r.PowerVE, r.PowerSE, r.PowerEEKI,
			r.Document, r.Type, r.Route1, r.Route2,
			r.Received, r.Response,
		}
	}, []fixture.Row{{Document: "Sąlygos", Received: fixture.Date(2024, time.January, 15)}}))

	ds, err := Load(path, DefaultParams())
	require.NoError(t, err)

	require.Len(t, ds.Columns, 14)
	assert.Equal(t, "Unnamed: 1", ds.Columns[1])
	assert.Equal(t, models.ColReceivedDate, ds.Columns[9])
	assert.Equal(t, "note", ds.Records[0].Extra["Unnamed: 1"])
	assert.Equal(t, "note", ds.Row(0)[1])
}

func TestLoadDate1904(t *testing.T) {
	path := writeFixture(t, []fixture.Row{{Document: "Sąlygos", Received: 43844}})

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	date1904 := true
	require.NoError(t, f.SetWorkbookProps(&excelize.WorkbookPropsOptions{Date1904: &date1904}))
	require.NoError(t, f.Save())
	require.NoError(t, f.Close())

	ds, err := Load(path, DefaultParams())
	require.NoError(t, err)
	assert.Equal(t, fixture.Date(1904, time.January, 1).AddDate(0, 0, 43844), ds.Records[0].Received)
}

func TestLoadErrors(t *testing.T) {
	t.Run("file not found", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "missing.xlsx"), DefaultParams())
		assert.ErrorIs(t, err, ErrFileNotFound)
	})

	t.Run("sheet not found", func(t *testing.T) {
		path := writeFixture(t, nil)
		_, err := Load(path, Params{SheetIndex: 5})
		assert.ErrorIs(t, err, ErrSheetNotFound)
	})

	t.Run("missing column", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "short.xlsx")
		header := []interface{}{models.ColPowerVE, models.ColDocument}
		require.NoError(t, fixture.WriteWithHeader(path, header, func(_ int, r fixture.Row) []interface{} {
			return []interface{}{r.PowerVE, r.Document}
		}, []fixture.Row{{PowerVE: 1, Document: "x"}}))

		_, err := Load(path, DefaultParams())
		assert.ErrorIs(t, err, ErrMissingColumn)
	})

	t.Run("invalid power", func(t *testing.T) {
		path := writeFixture(t, []fixture.Row{{PowerVE: "daug"}})
		_, err := Load(path, DefaultParams())
		require.ErrorIs(t, err, ErrInvalidValue)

		var cellErr *CellError
		require.True(t, errors.As(err, &cellErr))
		assert.Equal(t, models.ColPowerVE, cellErr.Column)
		assert.Equal(t, 2, cellErr.Row)
	})

	t.Run("invalid date", func(t *testing.T) {
		path := writeFixture(t, []fixture.Row{{Received: "vakar"}})
		_, err := Load(path, DefaultParams())
		assert.ErrorIs(t, err, ErrInvalidValue)
	})
}

func TestNormalizeExtra(t *testing.T) {
	assert.Equal(t, int64(0), normalizeExtra(""))
	assert.Nil(t, normalizeExtra("None"))
	assert.Equal(t, int64(7), normalizeExtra("7"))
	assert.Equal(t, "A-1", normalizeExtra("A-1"))
}
