package model

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// DailyRecord one day of activity for one salesperson
type DailyRecord struct {
	Day             int     `json:"day"`             // 1..days in the reference month
	DayLabel        string  `json:"dayLabel"`        // display only
	NewLeads        int     `json:"newLeads"`        // novos leads
	QualifiedLeads  int     `json:"qualifiedLeads"`  // SQL
	ContractsClosed int     `json:"contractsClosed"` // sum of the three closed tiers
	ContractsSigned int     `json:"contractsSigned"` // sum of the three signed tiers
	PaidWithin5Days float64 `json:"paidWithin5Days"` // subset of Paid
	Paid            float64 `json:"paid"`
	ContractsValue  float64 `json:"contractsValue"` // tier count × tier price
}

// Salesperson a seller and the daily records it owns
type Salesperson struct {
	ID       string        `json:"id"`
	Name     string        `json:"name"`
	Initial  string        `json:"initial"`
	PhotoURL string        `json:"photoUrl"`
	SheetID  string        `json:"googleSheetId,omitempty"`
	Records  []DailyRecord `json:"data"`
}

// HasRecords reports whether the salesperson carries any daily data.
func (s *Salesperson) HasRecords() bool {
	return len(s.Records) > 0
}

// Clone returns a deep copy so callers can mutate without touching the snapshot.
func (s Salesperson) Clone() Salesperson {
	out := s
	if s.Records != nil {
		out.Records = make([]DailyRecord, len(s.Records))
		copy(out.Records, s.Records)
	}
	return out
}

// InitialOf uppercased first letter of the name
func InitialOf(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return ""
	}
	r, _ := utf8.DecodeRuneInString(name)
	return string(unicode.ToUpper(r))
}

// DefaultPhotoURL placeholder avatar used when a salesperson is created without a photo
func DefaultPhotoURL(name string) string {
	return "https://i.pravatar.cc/150?u=" + name
}
