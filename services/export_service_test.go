package services

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vishalpatil-45/Adventour/domain"
	"github.com/xuri/excelize/v2"
)

func TestExportBookings(t *testing.T) {
	bookingSvc, repo, _ := newTestBookingService()
	created := time.Date(2025, 2, 1, 9, 0, 0, 0, time.UTC)
	seedBooking(repo, 1, "a", "Tropical Villa", "Bali, Indonesia", created, domain.BookingStatusConfirmed)
	seedBooking(repo, 1, "b", "Booking", "Goa, India", created, domain.BookingStatusConfirmed)

	buf, err := NewExportService(bookingSvc).ExportBookings(context.Background(), 1)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(exportSheet)
	require.NoError(t, err)

	require.Len(t, rows, 2, "header plus the one visible booking")
	assert.Equal(t, "Booking ID", rows[0][0])
	assert.Equal(t, "ADVa", rows[1][0])
	assert.Equal(t, "Tropical Villa", rows[1][1])
	assert.Equal(t, "2025-02-11", rows[1][3])
	assert.Equal(t, "Confirmed", rows[1][9])
}
