package models

// UploadForm holds the fields of the add-certificate form. PDFPath is a
// local file sent as the pdf_file part; it may be empty.
type UploadForm struct {
	Name           string
	AssetID        string
	FormType       string
	Equipment      string
	Site           string
	InspectionDate string
	ExpiryDate     string
	PDFPath        string
}
