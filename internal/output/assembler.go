// Crash-safe dataset assembly. The per-category CSV is created
// header-only at crawl start and receives all accepted records in one
// batch append at crawl completion, so the file is either header-only
// or complete — never truncated mid-record.

package output

import (
	"bufio"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go-jobcrawl/internal/models"
)

// Header is the fixed 12-column schema of the per-category CSV.
var Header = []string{
	"company",
	"title",
	"location",
	"salary_range",
	"experience",
	"degree",
	"tags",
	"skills",
	"company_size",
	"company_stage",
	"industry",
	"description",
}

const utf8BOM = "\xef\xbb\xbf"

// NewCategoryCSV creates the category output file with a BOM and the
// column header. Called at crawl start, before navigation, so even a
// failed crawl leaves a consistent header-only file.
func NewCategoryCSV(dir string) (string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create output directory: %w", err)
	}

	path := filepath.Join(dir, fmt.Sprintf("job_details_%d.csv", time.Now().Unix()))
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create csv: %w", err)
	}
	defer f.Close()

	if _, err := f.WriteString(utf8BOM); err != nil {
		return "", fmt.Errorf("failed to write BOM: %w", err)
	}

	w := csv.NewWriter(f)
	if err := w.Write(Header); err != nil {
		return "", fmt.Errorf("failed to write header: %w", err)
	}
	w.Flush()
	return path, w.Error()
}

// AppendRecords writes all accepted records in a single batch at crawl
// completion.
func AppendRecords(path string, records []*models.JobRecord) error {
	if len(records) == 0 {
		return nil
	}

	f, err := os.OpenFile(path, os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("failed to open csv for append: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	for _, rec := range records {
		if err := w.Write(csvRow(rec)); err != nil {
			return fmt.Errorf("failed to write record: %w", err)
		}
	}
	w.Flush()
	return w.Error()
}

func csvRow(rec *models.JobRecord) []string {
	return []string{
		rec.Company,
		rec.Title,
		rec.Location,
		rec.Salary,
		rec.Experience,
		rec.Degree,
		rec.Tags,
		strings.Join(rec.Skills, ","),
		rec.CompanySize,
		rec.CompanyStage,
		rec.Industry,
		rec.Description,
	}
}

// MergeIntoCombined streams the category CSV into the combined JSONL
// dataset, tagging every row with the category name and code. Returns
// the number of rows merged.
func MergeIntoCombined(csvPath string, combined io.Writer, categoryName, categoryCode string) (int, error) {
	f, err := os.Open(csvPath)
	if err != nil {
		return 0, fmt.Errorf("failed to open category csv: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(stripBOM(f))
	header, err := r.Read()
	if err == io.EOF {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("failed to read csv header: %w", err)
	}
	if len(header) != len(Header) {
		return 0, fmt.Errorf("unexpected csv header width %d", len(header))
	}

	enc := json.NewEncoder(combined)
	enc.SetEscapeHTML(false)

	count := 0
	for {
		row, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return count, fmt.Errorf("failed to read csv row: %w", err)
		}

		rec := models.CombinedRecord{
			Company:      row[0],
			Title:        row[1],
			Location:     row[2],
			Salary:       row[3],
			Experience:   row[4],
			Degree:       row[5],
			Tags:         row[6],
			Skills:       row[7],
			CompanySize:  row[8],
			CompanyStage: row[9],
			Industry:     row[10],
			Description:  row[11],
			JobCategory:  categoryName,
			JobCode:      categoryCode,
		}
		if err := enc.Encode(rec); err != nil {
			return count, fmt.Errorf("failed to encode combined record: %w", err)
		}
		count++
	}
	return count, nil
}

// OpenCombined opens the combined JSONL file in append or truncate mode.
func OpenCombined(path string, appendMode bool) (*os.File, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create combined directory: %w", err)
	}

	flags := os.O_CREATE | os.O_WRONLY
	if appendMode {
		flags |= os.O_APPEND
	} else {
		flags |= os.O_TRUNC
	}
	return os.OpenFile(path, flags, 0644)
}

func stripBOM(r io.Reader) io.Reader {
	br := bufio.NewReader(r)
	if b, err := br.Peek(len(utf8BOM)); err == nil && string(b) == utf8BOM {
		br.Discard(len(utf8BOM))
	}
	return br
}
