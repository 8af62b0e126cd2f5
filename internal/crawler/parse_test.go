package crawler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const samplePayload = `{
	"zpData": {
		"jobInfo": {
			"jobName": "大模型算法工程师",
			"address": "北京·海淀区",
			"salaryDesc": "30-60K·15薪",
			"jobExperience": "3-5年",
			"degreeName": "硕士",
			"experienceName": "3-5年",
			"showSkills": ["PyTorch", "Transformer", "RLHF"],
			"postDescription": "  负责大模型训练与对齐。  "
		},
		"brandComInfo": {
			"brandName": "某科技",
			"scaleName": "1000-9999人",
			"stageName": "D轮及以上",
			"industryName": "人工智能"
		}
	}
}`

func TestParseDetail(t *testing.T) {
	rec, err := ParseDetail([]byte(samplePayload))
	require.NoError(t, err)

	assert.Equal(t, "某科技", rec.Company)
	assert.Equal(t, "大模型算法工程师", rec.Title)
	assert.Equal(t, "北京·海淀区", rec.Location)
	assert.Equal(t, "30-60K·15薪", rec.Salary)
	assert.Equal(t, "3-5年", rec.Experience)
	assert.Equal(t, "硕士", rec.Degree)
	assert.Equal(t, "3-5年", rec.Tags)
	assert.Equal(t, []string{"PyTorch", "Transformer", "RLHF"}, rec.Skills)
	assert.Equal(t, "1000-9999人", rec.CompanySize)
	assert.Equal(t, "D轮及以上", rec.CompanyStage)
	assert.Equal(t, "人工智能", rec.Industry)
	assert.Equal(t, "负责大模型训练与对齐。", rec.Description, "description should be trimmed")
}

func TestParseDetailDefaultsExperience(t *testing.T) {
	rec, err := ParseDetail([]byte(`{"zpData":{"jobInfo":{"jobName":"x"},"brandComInfo":{}}}`))
	require.NoError(t, err)
	assert.Equal(t, "无要求", rec.Experience)
}

func TestParseDetailRejectsMalformedPayload(t *testing.T) {
	_, err := ParseDetail([]byte(`not json`))
	assert.Error(t, err)
}

func TestParseDetailToleratesMissingSections(t *testing.T) {
	rec, err := ParseDetail([]byte(`{}`))
	require.NoError(t, err)
	assert.Empty(t, rec.Title)
	assert.Empty(t, rec.Skills)
}
