package model

// ExportArtifact is the finished, downloadable report: a multi-page PDF
// plus its generated filename.
type ExportArtifact struct {
	Filename    string
	ContentType string
	PageCount   int
	Data        []byte
}
