// Static category catalog for the target job board.
// Codes are the board's position codes; the list mirrors the search UI.

package category

import (
	"fmt"
	"strings"
)

type Category struct {
	Name string
	Code string
}

// catalog order is stable so an empty selection crawls in a
// predictable sequence.
var catalog = []Category{
	{"Java", "100101"},
	{"C/C++", "100102"},
	{"Python", "100109"},
	{"Golang", "100116"},
	{"Node.js", "100114"},
	{"图像算法", "101306"},
	{"自然语言处理算法", "100117"},
	{"大模型算法", "101310"},
	{"数据挖掘", "100104"},
	{"规控算法", "101311"},
	{"SLAM算法", "101312"},
	{"推荐算法", "100118"},
	{"搜索算法", "100115"},
}

var byName = func() map[string]Category {
	m := make(map[string]Category, len(catalog))
	for _, c := range catalog {
		m[c.Name] = c
	}
	return m
}()

// All returns the full catalog in declaration order.
func All() []Category {
	out := make([]Category, len(catalog))
	copy(out, catalog)
	return out
}

// Parse resolves a comma-separated list of category names. An empty
// input selects the whole catalog. Unknown names are a hard error so
// validation fails before any browser session opens.
func Parse(raw string) ([]Category, error) {
	if strings.TrimSpace(raw) == "" {
		return All(), nil
	}

	var selected []Category
	var unknown []string
	for _, part := range strings.Split(raw, ",") {
		name := strings.TrimSpace(part)
		if name == "" {
			continue
		}
		c, ok := byName[name]
		if !ok {
			unknown = append(unknown, name)
			continue
		}
		selected = append(selected, c)
	}

	if len(unknown) > 0 {
		return nil, fmt.Errorf("unknown job categories: %s", strings.Join(unknown, ", "))
	}
	return selected, nil
}

// SearchURL builds the listing search URL for a category code.
// city defaults to nationwide, jobType to full-time.
func SearchURL(code, city, jobType string) string {
	return fmt.Sprintf("https://www.zhipin.com/web/geek/jobs?city=%s&position=%s&jobType=%s", city, code, jobType)
}
