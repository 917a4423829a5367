package constants

import "strings"

// Bucket layout: source PDFs live under PDFFolder, exported CSVs are written
// back under CSVFolder.
const (
	PDFFolder = "pdf/"
	CSVFolder = "csv-ps/"

	PDFExtension = ".pdf"
	CSVExtension = ".csv"
)

// AllowedExtensions holds the file extensions accepted for ingestion.
var AllowedExtensions = map[string]struct{}{
	"pdf": {},
}

// NormalizeExt lowercases and trims the dot from a file extension.
func NormalizeExt(ext string) string {
	return strings.ToLower(strings.TrimPrefix(ext, "."))
}

// CleanPDFName strips the bucket folder prefix and the .pdf extension from an
// object name, yielding the document name used everywhere downstream.
func CleanPDFName(objectName string) string {
	name := strings.TrimPrefix(objectName, PDFFolder)
	return strings.TrimSuffix(name, PDFExtension)
}
