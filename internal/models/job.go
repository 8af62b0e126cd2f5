package models

// JobRecord is one job listing parsed from a single detail response.
// Field order matches the CSV column order.
type JobRecord struct {
	Company      string   `json:"company"`
	Title        string   `json:"title"`
	Location     string   `json:"location"`
	Salary       string   `json:"salary_range"`
	Experience   string   `json:"experience"`
	Degree       string   `json:"degree"`
	Tags         string   `json:"tags"`
	Skills       []string `json:"-"`
	CompanySize  string   `json:"company_size"`
	CompanyStage string   `json:"company_stage"`
	Industry     string   `json:"industry"`
	Description  string   `json:"description"`
}

// CombinedRecord is the JSONL emission form: the 12 record fields plus
// the category tags added at merge time. Skills are comma-joined so the
// combined dataset mirrors the CSV cell exactly.
type CombinedRecord struct {
	Company      string `json:"company"`
	Title        string `json:"title"`
	Location     string `json:"location"`
	Salary       string `json:"salary_range"`
	Experience   string `json:"experience"`
	Degree       string `json:"degree"`
	Tags         string `json:"tags"`
	Skills       string `json:"skills"`
	CompanySize  string `json:"company_size"`
	CompanyStage string `json:"company_stage"`
	Industry     string `json:"industry"`
	Description  string `json:"description"`
	JobCategory  string `json:"job_category"`
	JobCode      string `json:"job_code"`
}

// CrawlSpec is the immutable per-category job description. It is built
// once by the orchestrator and never mutated after the crawl starts.
type CrawlSpec struct {
	CategoryName         string
	CategoryCode         string
	SearchURL            string
	MaxRecords           int
	MinDescriptionLength int
	ForeignRatioLimit    float64
	OutputDir            string
}
