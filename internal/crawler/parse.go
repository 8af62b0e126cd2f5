package crawler

import (
	"encoding/json"
	"fmt"
	"strings"

	"go-jobcrawl/internal/models"
)

// DetailEndpoint is the URL fragment of the async response carrying the
// full record for a clicked card.
const DetailEndpoint = "job/detail.json"

type detailPayload struct {
	ZpData struct {
		JobInfo struct {
			JobName         string   `json:"jobName"`
			Address         string   `json:"address"`
			SalaryDesc      string   `json:"salaryDesc"`
			JobExperience   string   `json:"jobExperience"`
			DegreeName      string   `json:"degreeName"`
			ExperienceName  string   `json:"experienceName"`
			ShowSkills      []string `json:"showSkills"`
			PostDescription string   `json:"postDescription"`
		} `json:"jobInfo"`
		BrandComInfo struct {
			BrandName    string `json:"brandName"`
			ScaleName    string `json:"scaleName"`
			StageName    string `json:"stageName"`
			IndustryName string `json:"industryName"`
		} `json:"brandComInfo"`
	} `json:"zpData"`
}

// ParseDetail turns one captured detail payload into a JobRecord.
func ParseDetail(body []byte) (*models.JobRecord, error) {
	var payload detailPayload
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("failed to parse detail payload: %w", err)
	}

	job := payload.ZpData.JobInfo
	brand := payload.ZpData.BrandComInfo

	experience := job.JobExperience
	if experience == "" {
		experience = "无要求"
	}

	return &models.JobRecord{
		Company:      brand.BrandName,
		Title:        job.JobName,
		Location:     job.Address,
		Salary:       job.SalaryDesc,
		Experience:   experience,
		Degree:       job.DegreeName,
		Tags:         job.ExperienceName,
		Skills:       job.ShowSkills,
		CompanySize:  brand.ScaleName,
		CompanyStage: brand.StageName,
		Industry:     brand.IndustryName,
		Description:  strings.TrimSpace(job.PostDescription),
	}, nil
}
