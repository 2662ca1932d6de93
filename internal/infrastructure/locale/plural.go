package locale

import (
	"golang.org/x/text/feature/plural"
	"golang.org/x/text/language"
)

var formNames = map[plural.Form]string{
	plural.Zero:  "zero",
	plural.One:   "one",
	plural.Two:   "two",
	plural.Few:   "few",
	plural.Many:  "many",
	plural.Other: "other",
}

// pluralForms reports whether node is a plural set: a map whose keys are all
// CLDR category names and which defines at least "other".
func pluralForms(node map[string]any) (map[string]string, bool) {
	if _, ok := node["other"]; !ok {
		return nil, false
	}

	forms := make(map[string]string, len(node))
	for k, v := range node {
		if !isFormName(k) {
			return nil, false
		}
		s, ok := v.(string)
		if !ok {
			return nil, false
		}
		forms[k] = s
	}
	return forms, true
}

func isFormName(name string) bool {
	for _, n := range formNames {
		if n == name {
			return true
		}
	}
	return false
}

// selectPlural picks the form for count. An explicit "zero" entry is used for
// a count of 0 even in languages whose rules have no zero category.
func selectPlural(tag language.Tag, forms map[string]string, count any) string {
	n, ok := toInt(count)
	if !ok {
		return forms["other"]
	}
	if n == 0 {
		if s, ok := forms["zero"]; ok {
			return s
		}
	}

	abs := n
	if abs < 0 {
		abs = -abs
	}
	form := plural.Cardinal.MatchPlural(tag, abs, 0, 0, 0, 0)
	if s, ok := forms[formNames[form]]; ok {
		return s
	}
	return forms["other"]
}

func toInt(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int32:
		return int(n), true
	case int64:
		return int(n), true
	case uint:
		return int(n), true
	case uint32:
		return int(n), true
	case uint64:
		return int(n), true
	case float64:
		if n == float64(int(n)) {
			return int(n), true
		}
	}
	return 0, false
}
