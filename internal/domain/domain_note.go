// Package domain 定义领域模型和接口
package domain

import (
	"strings"
	"time"
)

// Note 笔记领域模型
type Note struct {
	ID        int64
	OwnerUID  int64
	Title     string
	Content   string
	Tags      string
	Period    string
	Region    string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NoteFilter holds the structured search predicate; zero values mean "not filtered"
// NoteFilter 结构化检索条件；零值表示不过滤
type NoteFilter struct {
	Text   string   // matches title or content as substring // 标题或正文子串匹配
	Period string   // exact match // 精确匹配
	Region string   // substring match // 子串匹配
	Tags   []string // OR across terms, each a substring of the tags field // 各词项按子串 OR 匹配
}

// IsEmpty 判断是否无任何过滤条件
func (f *NoteFilter) IsEmpty() bool {
	return f.Text == "" && f.Period == "" && f.Region == "" && len(f.Tags) == 0
}

// ParseTagTerms splits a comma-separated tag expression into trimmed non-empty terms
// ParseTagTerms 将逗号分隔的标签表达式拆分为去空格的非空词项
func ParseTagTerms(expr string) []string {
	if expr == "" {
		return nil
	}
	var terms []string
	for _, t := range strings.Split(expr, ",") {
		t = strings.TrimSpace(t)
		if t != "" {
			terms = append(terms, t)
		}
	}
	return terms
}
