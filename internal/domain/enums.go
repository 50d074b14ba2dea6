package domain

// Category identifies an emission source. The set is fixed at eight entries.
type Category string

const (
	CategoryElectricity    Category = "electricity"
	CategoryNaturalGas     Category = "natural_gas"
	CategoryFuel           Category = "fuel"
	CategoryWater          Category = "water"
	CategoryWaste          Category = "waste"
	CategoryPaper          Category = "paper"
	CategoryTransport      Category = "transport"
	CategoryOfficeSupplies Category = "office_supplies"
)

// DocumentSource records how a processed document entered the store.
type DocumentSource string

const (
	SourceUpload DocumentSource = "upload"
	SourceManual DocumentSource = "manual"
)

// FileType represents the image types accepted for OCR.
type FileType string

const (
	FileTypeJPG FileType = "jpg"
	FileTypePNG FileType = "png"
)

// AllowedContentTypes maps detected MIME content types to FileType.
var AllowedContentTypes = map[string]FileType{
	"image/jpeg": FileTypeJPG,
	"image/png":  FileTypePNG,
}

// ExportFormat is the output format for a session export.
type ExportFormat string

const (
	ExportFormatXLSX ExportFormat = "xlsx"
	ExportFormatCSV  ExportFormat = "csv"
)
