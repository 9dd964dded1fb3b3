package grievance

import (
	"fmt"
	"strings"
	"time"

	"jalmitra/internal/lang"
)

var statusLabels = map[string]map[string]string{
	lang.English: {
		"id":       "Grievance ID",
		"status":   "Status",
		"logged":   "Registered on",
		"category": "Category",
		"village":  "Village",
		"district": "District",
		"resolved": "Resolved on",
		"pending":  "Pending",
	},
	lang.Hindi: {
		"id":       "शिकायत आईडी",
		"status":   "स्थिति",
		"logged":   "दर्ज तिथि",
		"category": "श्रेणी",
		"village":  "गाँव",
		"district": "जिला",
		"resolved": "समाधान तिथि",
		"pending":  "लंबित",
	},
	lang.Marathi: {
		"id":       "तक्रार आयडी",
		"status":   "स्थिती",
		"logged":   "नोंदणी दिनांक",
		"category": "श्रेणी",
		"village":  "गाव",
		"district": "जिल्हा",
		"resolved": "निराकरण दिनांक",
		"pending":  "प्रलंबित",
	},
}

func label(key, language string) string {
	if t, ok := statusLabels[language]; ok {
		if s, ok := t[key]; ok {
			return s
		}
	}
	return statusLabels[lang.English][key]
}

// FormatStatus renders one grievance as a localized multi-line reply.
func FormatStatus(rec *Record, language string) string {
	status := rec.Status
	if strings.TrimSpace(status) == "" {
		status = label("pending", language)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s: %s\n", label("id", language), rec.GrievanceID)
	fmt.Fprintf(&b, "%s: %s\n", label("status", language), status)
	if !rec.LoggedDate.IsZero() {
		fmt.Fprintf(&b, "%s: %s\n", label("logged", language), formatDate(rec.LoggedDate))
	}
	if rec.Category != "" {
		cat := rec.Category
		if rec.SubCategory != "" {
			cat += " / " + rec.SubCategory
		}
		fmt.Fprintf(&b, "%s: %s\n", label("category", language), cat)
	}
	if rec.VillageName != "" {
		fmt.Fprintf(&b, "%s: %s\n", label("village", language), rec.VillageName)
	}
	if rec.DistrictName != "" {
		fmt.Fprintf(&b, "%s: %s\n", label("district", language), rec.DistrictName)
	}
	if rec.ResolvedDate != nil {
		fmt.Fprintf(&b, "%s: %s\n", label("resolved", language), formatDate(*rec.ResolvedDate))
	}
	return strings.TrimRight(b.String(), "\n")
}

// FormatStatusList renders several grievances found for one mobile
// number.
func FormatStatusList(recs []Record, language string) string {
	if len(recs) == 1 {
		return FormatStatus(&recs[0], language)
	}
	parts := make([]string, 0, len(recs))
	for i := range recs {
		parts = append(parts, FormatStatus(&recs[i], language))
	}
	return strings.Join(parts, "\n\n")
}

func formatDate(t time.Time) string {
	return t.Format("02 Jan 2006")
}
