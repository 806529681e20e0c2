package responses

type UploadDocumentResponse struct {
	ObjectName string `json:"objectName"`
	Bucket     string `json:"bucket"`
	Size       int64  `json:"size"`
}

type DocumentURLResponse struct {
	ObjectName string `json:"objectName"`
	URL        string `json:"url"`
}
