package services

import (
	"bytes"
	"context"
	"fmt"

	"github.com/vishalpatil-45/Adventour/domain"
	"github.com/vishalpatil-45/Adventour/utils"
	"github.com/xuri/excelize/v2"
)

const exportSheet = "Bookings"

var exportHeader = []interface{}{
	"Booking ID", "Package", "Location", "Check-in", "Check-out",
	"Nights", "Guests", "Rooms", "Total (INR)", "Status", "Booked on",
}

// ExportService renders a user's bookings as a spreadsheet
type ExportService interface {
	ExportBookings(ctx context.Context, userID uint) (*bytes.Buffer, error)
}

type exportService struct {
	bookings BookingService
}

// NewExportService creates an ExportService over the bookings the account
// page lists
func NewExportService(bookings BookingService) ExportService {
	return &exportService{bookings: bookings}
}

func (s *exportService) ExportBookings(ctx context.Context, userID uint) (*bytes.Buffer, error) {
	bookings, err := s.bookings.ListUserBookings(ctx, userID)
	if err != nil {
		return nil, err
	}
	return WriteBookingsWorkbook(bookings)
}

// WriteBookingsWorkbook writes bookings to a single sheet xlsx workbook
func WriteBookingsWorkbook(bookings []domain.Booking) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", exportSheet); err != nil {
		return nil, fmt.Errorf("name sheet: %w", err)
	}

	if err := f.SetSheetRow(exportSheet, "A1", &exportHeader); err != nil {
		return nil, fmt.Errorf("write header: %w", err)
	}
	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, fmt.Errorf("header style: %w", err)
	}
	lastCol, _ := excelize.ColumnNumberToName(len(exportHeader))
	if err := f.SetCellStyle(exportSheet, "A1", lastCol+"1", bold); err != nil {
		return nil, fmt.Errorf("style header: %w", err)
	}

	for i, b := range bookings {
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		row := []interface{}{
			b.Reference,
			b.Title,
			b.Location,
			b.CheckIn.Format(utils.DateLayout),
			b.CheckOut.Format(utils.DateLayout),
			b.Nights,
			b.Guests,
			b.Rooms,
			b.TotalPrice,
			string(b.Status),
			b.CreatedAt.Format(utils.DateLayout),
		}
		if err := f.SetSheetRow(exportSheet, cell, &row); err != nil {
			return nil, fmt.Errorf("write booking %s: %w", b.Reference, err)
		}
	}

	if err := f.SetColWidth(exportSheet, "A", lastCol, 16); err != nil {
		return nil, fmt.Errorf("column width: %w", err)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	return buf, nil
}
