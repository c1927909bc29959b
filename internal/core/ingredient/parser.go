package ingredient

import (
	"strings"
	"unicode/utf8"
)

// Parser 食材行解析器。
// 同一個 Parser 共用一組去重集合，不可跨 goroutine 共用；每次擷取請建立新的 Parser。
type Parser struct {
	rules []Rule
	seen  map[string]struct{}
}

// NewParser 建立解析器；未指定規則時使用 DefaultRules
func NewParser(rules ...Rule) *Parser {
	if len(rules) == 0 {
		rules = DefaultRules
	}
	return &Parser{
		rules: rules,
		seen:  make(map[string]struct{}),
	}
}

// Parse 解析一行食材文字。
// 依序嘗試規則，第一個結構吻合的規則決定結果；重複名稱或不合格的結果回傳 false。
func (p *Parser) Parse(line string) (ParsedIngredient, bool) {
	line = strings.ToLower(strings.TrimSpace(line))
	if utf8.RuneCountInString(line) < 3 {
		return ParsedIngredient{}, false
	}

	for _, rule := range p.rules {
		ing, matched, ok := rule.Match(line)
		if !matched {
			continue
		}
		if !ok {
			return ParsedIngredient{}, false
		}
		if _, dup := p.seen[ing.Name]; dup {
			return ParsedIngredient{}, false
		}
		p.seen[ing.Name] = struct{}{}
		return ing, true
	}
	return ParsedIngredient{}, false
}

// ParseLine 解析單行食材文字（獨立的去重集合）
func ParseLine(line string) (ParsedIngredient, bool) {
	return NewParser().Parse(line)
}

// Extract 解析整段食材文字（以換行分隔），保留原始順序並最多回傳 MaxIngredients 筆
func Extract(text string) []ParsedIngredient {
	return ExtractWith(NewParser(), text)
}

// ExtractWith 使用指定解析器擷取食材
func ExtractWith(p *Parser, text string) []ParsedIngredient {
	result := make([]ParsedIngredient, 0)
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if ing, ok := p.Parse(line); ok {
			result = append(result, ing)
			if len(result) == MaxIngredients {
				break
			}
		}
	}
	return result
}
