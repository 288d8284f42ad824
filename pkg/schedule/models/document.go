package models

// PageKind discriminates the two page layouts in a document plan.
type PageKind int

const (
	// TitlePage holds static institutional text only.
	TitlePage PageKind = iota
	// TablePage holds one rendered timetable with optional decoration.
	TablePage
)

// Signer is one signature column in the page footer.
type Signer struct {
	Title string
	Name  string
}

// HeaderBlock is the page-header text for one table page.
type HeaderBlock struct {
	University   string
	Faculty      string
	Department   string
	Title        string
	AcademicYear string
	Semester     string
	// GroupLine identifies the page's group, e.g. level and division.
	GroupLine string
}

// FooterBlock is the page-footer text for one table page.
type FooterBlock struct {
	Signers     []Signer
	GeneratedAt string
	SystemName  string
}

// Page is one page of the document plan. Title pages use TitleLines
// only; table pages use the remaining fields. A legacy single-table
// page leaves Header, Footer and Title zero and renders the bare table.
type Page struct {
	Kind       PageKind
	TitleLines []string
	Header     HeaderBlock
	Title      string
	Table      TableDescription
	Footer     FooterBlock
}

// DocumentPlan is the ordered page sequence handed to the document
// writer. It is consumed once and discarded.
type DocumentPlan struct {
	Pages []Page
}
