package analytics

import "strings"

// KeywordSet is a vocabulary matched case-insensitively as substrings against
// transaction categories.
type KeywordSet []string

// DefaultDebtKeywords covers English and Indonesian debt-related category
// names. Callers can supply their own set to the *With variants.
var DefaultDebtKeywords = KeywordSet{
	"debt",
	"loan",
	"credit",
	"utang",
	"hutang",
	"cicilan",
	"pinjaman",
	"kredit",
}

// Matches reports whether category contains any keyword, ignoring case.
func (k KeywordSet) Matches(category string) bool {
	lower := strings.ToLower(category)
	for _, kw := range k {
		if strings.Contains(lower, strings.ToLower(kw)) {
			return true
		}
	}
	return false
}
