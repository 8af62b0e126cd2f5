package output

import (
	"bufio"
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-jobcrawl/internal/models"
)

func sampleRecords() []*models.JobRecord {
	return []*models.JobRecord{
		{
			Company:      "某科技",
			Title:        "大模型算法工程师",
			Location:     "北京",
			Salary:       "30-60K",
			Experience:   "3-5年",
			Degree:       "硕士",
			Tags:         "3-5年",
			Skills:       []string{"PyTorch", "RLHF"},
			CompanySize:  "1000-9999人",
			CompanyStage: "D轮及以上",
			Industry:     "人工智能",
			Description:  "负责大模型训练, 包含\"对齐\"方向",
		},
		{
			Company: "另一家",
			Title:   "搜索算法工程师",
		},
	}
}

func TestNewCategoryCSVHeaderOnly(t *testing.T) {
	dir := t.TempDir()

	path, err := NewCategoryCSV(dir)
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	assert.True(t, bytes.HasPrefix(data, []byte(utf8BOM)), "file must start with a BOM")

	lines := strings.Split(strings.TrimRight(string(data[len(utf8BOM):]), "\n"), "\n")
	require.Len(t, lines, 1, "a crawl that produced nothing leaves a header-only file")
	assert.Equal(t, strings.Join(Header, ","), lines[0])
}

func TestAppendRecordsBatch(t *testing.T) {
	dir := t.TempDir()
	path, err := NewCategoryCSV(dir)
	require.NoError(t, err)

	require.NoError(t, AppendRecords(path, sampleRecords()))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	scanner := bufio.NewScanner(f)
	count := 0
	for scanner.Scan() {
		count++
	}
	assert.Equal(t, 3, count, "header plus two records")

	//appending nothing changes nothing
	info, err := os.Stat(path)
	require.NoError(t, err)
	before := info.Size()
	require.NoError(t, AppendRecords(path, nil))
	info, err = os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, before, info.Size())
}

func TestMergeIntoCombined(t *testing.T) {
	dir := t.TempDir()
	path, err := NewCategoryCSV(dir)
	require.NoError(t, err)
	require.NoError(t, AppendRecords(path, sampleRecords()))

	var combined bytes.Buffer
	count, err := MergeIntoCombined(path, &combined, "大模型算法", "101310")
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	lines := strings.Split(strings.TrimRight(combined.String(), "\n"), "\n")
	require.Len(t, lines, 2)

	var rec models.CombinedRecord
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &rec))
	assert.Equal(t, "某科技", rec.Company)
	assert.Equal(t, "PyTorch,RLHF", rec.Skills)
	assert.Equal(t, "大模型算法", rec.JobCategory)
	assert.Equal(t, "101310", rec.JobCode)

	//non-ASCII text must survive unescaped
	assert.Contains(t, lines[0], "某科技")
}

func TestMergeHeaderOnlyFile(t *testing.T) {
	dir := t.TempDir()
	path, err := NewCategoryCSV(dir)
	require.NoError(t, err)

	var combined bytes.Buffer
	count, err := MergeIntoCombined(path, &combined, "Golang", "100116")
	require.NoError(t, err)
	assert.Equal(t, 0, count)
	assert.Empty(t, combined.String())
}

func TestOpenCombinedAppendAndTruncate(t *testing.T) {
	dir := t.TempDir()
	combinedPath := filepath.Join(dir, "combined", "jobs.jsonl")

	csvPath, err := NewCategoryCSV(dir)
	require.NoError(t, err)
	require.NoError(t, AppendRecords(csvPath, sampleRecords()))

	//first run: overwrite mode, N rows
	f, err := OpenCombined(combinedPath, false)
	require.NoError(t, err)
	n, err := MergeIntoCombined(csvPath, f, "Golang", "100116")
	require.NoError(t, err)
	require.NoError(t, f.Close())
	assert.Equal(t, 2, n)

	//second run with append=true: N+M rows
	f, err = OpenCombined(combinedPath, true)
	require.NoError(t, err)
	_, err = MergeIntoCombined(csvPath, f, "Golang", "100116")
	require.NoError(t, err)
	require.NoError(t, f.Close())
	assert.Equal(t, 4, countLines(t, combinedPath))

	//third run with append=false truncates back to M rows
	f, err = OpenCombined(combinedPath, false)
	require.NoError(t, err)
	_, err = MergeIntoCombined(csvPath, f, "Golang", "100116")
	require.NoError(t, err)
	require.NoError(t, f.Close())
	assert.Equal(t, 2, countLines(t, combinedPath))
}

func countLines(t *testing.T, path string) int {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	if len(data) == 0 {
		return 0
	}
	return len(strings.Split(strings.TrimRight(string(data), "\n"), "\n"))
}
