package exports

// PageData drives the export page render.
type PageData struct {
	NavName      string
	TotalUsers   int64
	LoadFailed   bool
	ErrorMessage string
}
