package export

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/xuri/excelize/v2"

	"po-tracker/constants"
	"po-tracker/internal/entity"
	"po-tracker/internal/extract"
	"po-tracker/internal/repository"
	"po-tracker/internal/storage"
)

// Service renders extraction results as CSV/XLSX and pushes the CSVs back to
// the bucket next to the source documents.
type Service struct {
	repo   repository.PORepository
	bucket storage.Bucket
	logger *slog.Logger
}

func NewService(repo repository.PORepository, bucket storage.Bucket, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{repo: repo, bucket: bucket, logger: logger}
}

// HeadersCSVName and LinesCSVName derive the bucket object names for a
// document's exports.
func HeadersCSVName(poDocName string) string {
	return poDocName + "_headers_" + constants.CSVExtension
}

func LinesCSVName(poDocName string) string {
	return poDocName + "_lines_" + constants.CSVExtension
}

// BuildHeadersCSV renders the single header record as CSV. The first column
// is a numeric row index; the rest follow extract.HeaderFieldNames order.
func BuildHeadersCSV(h extract.HeaderRecord) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(append([]string{""}, extract.HeaderFieldNames...)); err != nil {
		return nil, err
	}
	if err := w.Write(append([]string{"0"}, h.Values()...)); err != nil {
		return nil, err
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("write headers csv: %w", err)
	}
	return buf.Bytes(), nil
}

// BuildLinesCSV renders the line-item records as CSV, one row per item with a
// leading numeric index column.
func BuildLinesCSV(lines []extract.LineItemRecord) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(append([]string{""}, extract.LineItemFieldNames...)); err != nil {
		return nil, err
	}
	for i, li := range lines {
		if err := w.Write(append([]string{strconv.Itoa(i)}, li.Values()...)); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("write lines csv: %w", err)
	}
	return buf.Bytes(), nil
}

// UploadExtractionCSVs builds both CSVs for one document and uploads them to
// the bucket's csv-ps/ folder.
func (s *Service) UploadExtractionCSVs(ctx context.Context, poDocName string, header extract.HeaderRecord, lines []extract.LineItemRecord) error {
	start := time.Now()

	headersCSV, err := BuildHeadersCSV(header)
	if err != nil {
		return err
	}
	linesCSV, err := BuildLinesCSV(lines)
	if err != nil {
		return err
	}

	if err := s.bucket.PutCSV(ctx, HeadersCSVName(poDocName), bytes.NewReader(headersCSV)); err != nil {
		return fmt.Errorf("upload headers csv: %w", err)
	}
	if err := s.bucket.PutCSV(ctx, LinesCSVName(poDocName), bytes.NewReader(linesCSV)); err != nil {
		return fmt.Errorf("upload lines csv: %w", err)
	}

	s.logger.Info("export.csv.ok",
		"po_doc_name", poDocName,
		"line_rows", len(lines),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return nil
}

// ExportWorkbookXLSX returns an XLSX workbook (as bytes) with persisted
// headers on one sheet and line items on another. The optional from/to window
// filters headers by creation date; line items are unfiltered.
func (s *Service) ExportWorkbookXLSX(ctx context.Context, from, to *time.Time) ([]byte, error) {
	start := time.Now()

	headers, err := s.repo.ListHeaders(ctx, from, to)
	if err != nil {
		return nil, fmt.Errorf("query headers: %w", err)
	}
	lines, err := s.repo.ListLineItems(ctx, "")
	if err != nil {
		return nil, fmt.Errorf("query line items: %w", err)
	}

	f := excelize.NewFile()

	const headerSheet = "Headers"
	if err := f.SetSheetName("Sheet1", headerSheet); err != nil {
		return nil, err
	}
	writeHeaderSheet(f, headerSheet, headers)

	const lineSheet = "LineItems"
	if _, err := f.NewSheet(lineSheet); err != nil {
		return nil, err
	}
	writeLineSheet(f, lineSheet, lines)

	idx, _ := f.GetSheetIndex(headerSheet)
	f.SetActiveSheet(idx)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx write: %w", err)
	}

	s.logger.Info("export.xlsx.ok",
		"headers", len(headers),
		"line_items", len(lines),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return buf.Bytes(), nil
}

func writeHeaderSheet(f *excelize.File, sheet string, headers []*entity.POHeader) {
	cols := []string{
		"PO Number", "PO Date", "Due Date", "Buyer Info", "Bill To",
		"Vendor ID", "Vendor Name", "Vendor Address", "Vendor Contact",
		"Ship To", "Ship From", "Ship Date", "Ship Via", "Shipping Instruction",
		"Total Amount", "Document", "Response ms",
	}
	for i, h := range cols {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}

	row := 2
	for _, h := range headers {
		write := func(col int, v any) {
			cell, _ := excelize.CoordinatesToCellName(col, row)
			_ = f.SetCellValue(sheet, cell, v)
		}
		write(1, h.PONumber)
		write(2, formatDate(h.PODate))
		write(3, formatDate(h.DueDate))
		write(4, h.BuyerInfo)
		write(5, h.BillTo)
		write(6, h.VendorID)
		write(7, h.Name)
		write(8, h.Address)
		write(9, h.Contact)
		write(10, h.ShipTo)
		write(11, h.ShipFrom)
		write(12, formatDate(h.ShipDate))
		write(13, h.ShipVia)
		write(14, h.ShippingInstruction)
		if h.TotalAmount != nil {
			write(15, *h.TotalAmount)
		} else {
			write(15, "")
		}
		write(16, h.PODocName)
		write(17, h.ResponseMs)
		row++
	}

	_ = f.SetColWidth(sheet, "A", "C", 14)
	_ = f.SetColWidth(sheet, "D", "N", 28)
	_ = f.SetColWidth(sheet, "P", "P", 32)
}

func writeLineSheet(f *excelize.File, sheet string, lines []*entity.POLineItem) {
	cols := []string{
		"PO Number", "Item Description", "Timeline", "Rate Type", "Total Price",
		"Serial No", "Item Code", "Quantity", "UOM", "Unit Price", "Page", "Document",
	}
	for i, h := range cols {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}

	row := 2
	for _, li := range lines {
		write := func(col int, v any) {
			cell, _ := excelize.CoordinatesToCellName(col, row)
			_ = f.SetCellValue(sheet, cell, v)
		}
		write(1, li.PONumber)
		write(2, li.ItemDescription)
		write(3, li.Timeline)
		write(4, li.RateType)
		write(5, li.TotalPrice)
		write(6, li.ItemSerialNo)
		write(7, li.ItemCode)
		write(8, li.Quantity)
		write(9, li.UOM)
		write(10, li.UnitPrice)
		write(11, li.PageNo)
		write(12, li.PODocName)
		row++
	}

	_ = f.SetColWidth(sheet, "B", "B", 42)
	_ = f.SetColWidth(sheet, "L", "L", 32)
}

func formatDate(t *time.Time) string {
	if t == nil || t.IsZero() {
		return ""
	}
	return t.Format("2006-01-02")
}
