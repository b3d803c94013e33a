package service

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/footprint-app/footprint/internal/carbon"
	"github.com/footprint-app/footprint/internal/model"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// categoryTitle turns an activity type into a table heading: car_travel -> Car Travel.
// Casers are stateful, so each call gets its own.
func categoryTitle(activityType string) string {
	return cases.Title(language.English).String(strings.ReplaceAll(activityType, "_", " "))
}

// renderReportDocument builds the Markdown form of a report. A nil breakdown
// omits the per-category table and the total from the frontmatter.
func renderReportDocument(report *model.Report, totalKg float64, breakdown []carbon.TypeTotal) []byte {
	var buf bytes.Buffer

	buf.WriteString("---\n")
	fmt.Fprintf(&buf, "report_id: %q\n", report.ID)
	fmt.Fprintf(&buf, "user_id: %q\n", report.UserID)
	fmt.Fprintf(&buf, "generated_at: %q\n", report.GeneratedAt.UTC().Format(time.RFC3339))
	if breakdown != nil {
		fmt.Fprintf(&buf, "total_kg: %s\n", FormatKg(totalKg))
	}
	buf.WriteString("---\n\n")

	buf.WriteString("# Emissions report\n\n")
	buf.WriteString(report.Summary)
	buf.WriteString("\n")

	if breakdown == nil {
		return buf.Bytes()
	}

	buf.WriteString("\n## By category\n\n")
	if len(breakdown) == 0 {
		buf.WriteString("No activities logged.\n")
		return buf.Bytes()
	}

	buf.WriteString("| Category | Entries | Amount | Factor | kg CO2e |\n")
	buf.WriteString("|---|---:|---:|---:|---:|\n")
	for _, tt := range breakdown {
		factor := "n/a"
		if tt.Known {
			factor = FormatKg(tt.Factor)
		}
		fmt.Fprintf(&buf, "| %s | %d | %s | %s | %s |\n",
			categoryTitle(tt.ActivityType),
			tt.Entries,
			FormatKg(tt.Value),
			factor,
			FormatKg(tt.EmissionsKg),
		)
	}

	return buf.Bytes()
}
