// Package classify holds the heuristic classification logic of the import
// pipeline: mapping Qianji category names onto the internal two-level
// hierarchy and inferring account types from account names. Classification
// is total: every input terminates in a usable result.
package classify

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultChildName is the synthesized child category used when a Qianji
// record carries no sub-category.
const DefaultChildName = "一般"

// CategoryPair is a resolved (parent, child) category name pair.
type CategoryPair struct {
	Parent string `yaml:"parent"`
	Child  string `yaml:"child"`
}

// CategoryClassifier maps Qianji (category, sub-category, kind) triples to
// internal category pairs via static lookup tables. The tables ship with
// built-in defaults and may be extended from a YAML file.
type CategoryClassifier struct {
	expense map[string]CategoryPair
	income  map[string]CategoryPair
}

// NewCategoryClassifier returns a classifier with the built-in tables.
func NewCategoryClassifier() *CategoryClassifier {
	return &CategoryClassifier{
		expense: cloneTable(defaultExpenseTable),
		income:  cloneTable(defaultIncomeTable),
	}
}

// mappingFile is the on-disk shape of a table override file.
type mappingFile struct {
	Expense map[string]CategoryPair `yaml:"expense"`
	Income  map[string]CategoryPair `yaml:"income"`
}

// LoadOverrides merges table entries from a YAML file over the built-in
// defaults. Entries in the file win on key collision.
func (c *CategoryClassifier) LoadOverrides(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("error reading category mapping file: %w", err)
	}
	var file mappingFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return fmt.Errorf("error parsing category mapping file: %w", err)
	}
	for k, v := range file.Expense {
		c.expense[k] = v
	}
	for k, v := range file.Income {
		c.income[k] = v
	}
	return nil
}

// Classify resolves a Qianji (category, sub-category, kind) triple to a
// (parent, child) pair. The sub-category is tried as a table key first,
// then the category; when neither matches, the pair is synthesized from the
// external names so classification never fails.
func (c *CategoryClassifier) Classify(category, subCategory, kind string) CategoryPair {
	table := c.expense
	if kind == "收入" {
		table = c.income
	}

	if subCategory != "" {
		if pair, ok := table[subCategory]; ok {
			return pair
		}
	}
	if pair, ok := table[category]; ok {
		return pair
	}

	if subCategory != "" {
		return CategoryPair{Parent: category, Child: subCategory}
	}
	return CategoryPair{Parent: category, Child: DefaultChildName}
}

// SuggestCategoryIcon returns a display glyph for a new category. The child
// name is tried first, then the parent, then a generic fallback. Applied
// only at creation time, never to existing categories.
func SuggestCategoryIcon(parent string, child string) string {
	if child != "" {
		if icon, ok := categoryIcons[child]; ok {
			return icon
		}
	}
	if icon, ok := categoryIcons[parent]; ok {
		return icon
	}
	return defaultCategoryIcon
}

// SuggestCategoryColor returns a hex color for a new parent category, with
// a generic fallback for unknown names.
func SuggestCategoryColor(parent string) string {
	if color, ok := categoryColors[parent]; ok {
		return color
	}
	return defaultCategoryColor
}

func cloneTable(src map[string]CategoryPair) map[string]CategoryPair {
	dst := make(map[string]CategoryPair, len(src))
	for k, v := range src {
		dst[k] = v
	}
	return dst
}
